package canvas

// Viewport is the camera over a canvas: the offsets are the canvas point shown
// at the centre of the view. It satisfies pan.Surface.
type Viewport struct {
	TX, TY float64

	zoom    float64
	hasZoom bool
	changes uint64
}

// NewViewport returns a viewport at the origin with the given zoom level.
func NewViewport(zoom float64) *Viewport {
	return &Viewport{zoom: zoom, hasZoom: true}
}

// Offset returns the camera position.
func (v *Viewport) Offset() (float64, float64) { return v.TX, v.TY }

// SetOffset moves the camera.
func (v *Viewport) SetOffset(x, y float64) { v.TX, v.TY = x, y }

// Zoom returns the zoom level; a viewport built as a zero value has none.
func (v *Viewport) Zoom() (float64, bool) { return v.zoom, v.hasZoom }

// MarkViewportChanged records that the view needs repainting.
func (v *Viewport) MarkViewportChanged() { v.changes++ }

// Changes counts viewport change notifications.
func (v *Viewport) Changes() uint64 { return v.changes }
