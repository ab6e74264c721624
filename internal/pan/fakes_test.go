//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package pan

type fakeSurface struct {
	x, y    float64
	zoom    float64
	hasZoom bool
	changed int
}

func (f *fakeSurface) Offset() (float64, float64) { return f.x, f.y }
func (f *fakeSurface) SetOffset(x, y float64)     { f.x, f.y = x, y }
func (f *fakeSurface) Zoom() (float64, bool)      { return f.zoom, f.hasZoom }
func (f *fakeSurface) MarkViewportChanged()       { f.changed++ }

// fakeLocator returns surface when it is non-nil.
type fakeLocator struct {
	surface *fakeSurface
	lookups int
}

func (l *fakeLocator) ActiveSurface() (Surface, bool) {
	l.lookups++
	if l.surface == nil {
		return nil, false
	}
	return l.surface, true
}

type fakeSettings struct {
	bindings Bindings
	speed    float64
}

func (f *fakeSettings) Bindings() Bindings { return f.bindings }
func (f *fakeSettings) MaxSpeed() float64  { return f.speed }

func defaultSettings() *fakeSettings {
	return &fakeSettings{bindings: DefaultBindings(), speed: 250}
}

// recordingLoop counts loop notifications from the tracker.
type recordingLoop struct {
	starts int
	stops  []bool
}

func (r *recordingLoop) Start()          { r.starts++ }
func (r *recordingLoop) Stop(force bool) { r.stops = append(r.stops, force) }
