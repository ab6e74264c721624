// Package workspace models the host around the canvases: the open views, which
// one has focus, and the events raised when that changes.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/canvas-pan/internal/canvas"
	"github.com/ensigniasec/canvas-pan/internal/pan"
)

// Workspace holds the ordered views and the focused one.
type Workspace struct {
	views     []*View
	active    int
	menuOpen  bool
	zoom      float64
	listeners []Listener
	log       *logrus.Entry
}

// New returns an empty workspace whose canvases open at zoom.
func New(zoom float64) *Workspace {
	return &Workspace{active: -1, zoom: zoom, log: logrus.WithField("component", "workspace")}
}

// Subscribe registers fn for every subsequent event.
func (w *Workspace) Subscribe(fn Listener) {
	w.listeners = append(w.listeners, fn)
}

func (w *Workspace) emit(kind EventKind, v *View) {
	w.log.WithField("event", kind.String()).Debug("workspace event")
	for _, fn := range w.listeners {
		fn(Event{Kind: kind, View: v})
	}
}

// Views returns the open views in tab order.
func (w *Workspace) Views() []*View {
	return w.views
}

// Active returns the focused view.
func (w *Workspace) Active() (*View, bool) {
	if w.active < 0 || w.active >= len(w.views) {
		return nil, false
	}
	return w.views[w.active], true
}

// ActiveIndex returns the focused tab index, or -1.
func (w *Workspace) ActiveIndex() int {
	return w.active
}

// ActiveSurface implements pan.SurfaceLocator.
func (w *Workspace) ActiveSurface() (pan.Surface, bool) {
	v, ok := w.Active()
	if !ok || !v.Pannable() {
		return nil, false
	}
	return v.Viewport, true
}

// EditorFocused reports whether keystrokes belong to a text editor.
func (w *Workspace) EditorFocused() bool {
	v, ok := w.Active()
	return ok && v.Kind == KindNote && v.Editing
}

// Focus activates tab i.
func (w *Workspace) Focus(i int) bool {
	if i < 0 || i >= len(w.views) {
		return false
	}
	if i == w.active {
		return true
	}
	w.active = i
	w.emit(ActiveViewChanged, w.views[i])
	return true
}

// Next focuses the following tab, wrapping around.
func (w *Workspace) Next() bool {
	if len(w.views) == 0 {
		return false
	}
	return w.Focus((w.active + 1) % len(w.views))
}

// Prev focuses the preceding tab, wrapping around.
func (w *Workspace) Prev() bool {
	if len(w.views) == 0 {
		return false
	}
	return w.Focus((w.active - 1 + len(w.views)) % len(w.views))
}

// Open shows the document at path, reusing its tab when already open.
func (w *Workspace) Open(path string) (*View, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	for i, v := range w.views {
		if v.Path == abs {
			w.emit(FileOpened, v)
			w.Focus(i)
			return v, nil
		}
	}

	v, err := w.load(abs)
	if err != nil {
		return nil, err
	}
	w.views = append(w.views, v)
	w.emit(FileOpened, v)
	w.Focus(len(w.views) - 1)
	return v, nil
}

func (w *Workspace) load(path string) (*View, error) {
	v := &View{ID: uuid.New(), Title: filepath.Base(path), Path: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case canvas.Extension:
		doc, err := canvas.Load(path)
		if err != nil {
			return nil, err
		}
		v.Kind = KindCanvas
		v.Doc = doc
		v.Viewport = canvas.NewViewport(w.zoom)
	case canvas.NoteExtension:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		v.Kind = KindNote
		v.Note = string(data)
	default:
		return nil, fmt.Errorf("cannot open %s: unsupported document type", path)
	}
	return v, nil
}

// OpenSettings focuses the settings tab, creating it if needed.
func (w *Workspace) OpenSettings() *View {
	for i, v := range w.views {
		if v.Kind == KindSettings {
			w.Focus(i)
			return v
		}
	}
	v := &View{ID: uuid.New(), Title: "Settings", Kind: KindSettings}
	w.views = append(w.views, v)
	w.emit(LayoutChanged, v)
	w.Focus(len(w.views) - 1)
	return v
}

// Close removes tab i.
func (w *Workspace) Close(i int) bool {
	if i < 0 || i >= len(w.views) {
		return false
	}
	closed := w.views[i]
	w.views = append(w.views[:i], w.views[i+1:]...)
	wasActive := i == w.active
	if i < w.active || w.active >= len(w.views) {
		w.active--
	}
	w.emit(LayoutChanged, closed)
	if wasActive {
		if v, ok := w.Active(); ok {
			w.emit(ActiveViewChanged, v)
		}
	}
	return true
}

// OpenMenu marks the context menu as shown.
func (w *Workspace) OpenMenu() {
	w.menuOpen = true
	v, _ := w.Active()
	w.emit(MenuOpened, v)
}

// CloseMenu hides the context menu.
func (w *Workspace) CloseMenu() {
	w.menuOpen = false
}

// MenuOpen reports whether the context menu is shown.
func (w *Workspace) MenuOpen() bool {
	return w.menuOpen
}

// SetEditing switches the focused note between reading and editing. Leaving
// edit mode writes content back to the note's file.
func (w *Workspace) SetEditing(editing bool, content string) error {
	v, ok := w.Active()
	if !ok || v.Kind != KindNote || v.Editing == editing {
		return nil
	}
	if !editing && content != v.Note {
		if err := os.WriteFile(v.Path, []byte(content), 0o600); err != nil {
			return fmt.Errorf("saving note %s: %w", v.Path, err)
		}
		v.Note = content
	}
	v.Editing = editing
	w.emit(LayoutChanged, v)
	return nil
}
