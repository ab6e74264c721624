package pan

import "math"

const (
	// zoomSentinel stands in for a surface that reports no zoom: fully zoomed out.
	zoomSentinel = -4.0
	// zoomOffset shifts the host's zoom range (-4..1) so the divisor is always >= 1.
	zoomOffset = 5.0
)

// Surface is a pannable viewport owned by the host.
type Surface interface {
	Offset() (x, y float64)
	SetOffset(x, y float64)
	// Zoom returns the zoom factor and false when the surface has none.
	Zoom() (float64, bool)
	MarkViewportChanged()
}

// SurfaceLocator finds the surface of the focused view, if it is pannable.
type SurfaceLocator interface {
	ActiveSurface() (Surface, bool)
}

// Adapter borrows the active surface from the host and applies translations to it.
type Adapter struct {
	locator SurfaceLocator
	// onAbsent runs whenever the locator reports no surface.
	onAbsent func()
}

// NewAdapter returns an adapter over locator.
func NewAdapter(locator SurfaceLocator) *Adapter {
	return &Adapter{locator: locator}
}

// ActiveSurface returns the focused surface. When there is none the pan loop
// is halted so it cannot keep ticking against nothing.
func (a *Adapter) ActiveSurface() (Surface, bool) {
	s, ok := a.locator.ActiveSurface()
	if !ok || s == nil {
		if a.onAbsent != nil {
			a.onAbsent()
		}
		return nil, false
	}
	return s, true
}

// ResetOrigin jumps the active surface to offset (0, 0).
func (a *Adapter) ResetOrigin() bool {
	s, ok := a.ActiveSurface()
	if !ok {
		return false
	}
	s.SetOffset(0, 0)
	s.MarkViewportChanged()
	return true
}

// ApplyPan translates s by (dx, dy) scaled down by its zoom so that zoomed-in
// views move by the same logical amount. NaN offsets are reset to 0.
func ApplyPan(s Surface, dx, dy float64) {
	zoom, ok := s.Zoom()
	if !ok {
		zoom = zoomSentinel
	}
	divisor := zoom + zoomOffset

	x, y := s.Offset()
	x += dx / divisor
	y += dy / divisor
	if math.IsNaN(x) {
		x = 0
	}
	if math.IsNaN(y) {
		y = 0
	}
	s.SetOffset(x, y)
	s.MarkViewportChanged()
}
