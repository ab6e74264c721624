package workspace

import (
	"github.com/google/uuid"

	"github.com/ensigniasec/canvas-pan/internal/canvas"
)

// Kind is what a view shows.
type Kind int

const (
	KindCanvas Kind = iota
	KindNote
	KindSettings
)

func (k Kind) String() string {
	switch k {
	case KindCanvas:
		return "canvas"
	case KindNote:
		return "note"
	case KindSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// View is one tab of the workspace.
type View struct {
	ID    uuid.UUID
	Title string
	Kind  Kind
	Path  string

	// Canvas views.
	Doc      *canvas.Document
	Viewport *canvas.Viewport

	// Note views. Editing marks the text-editing mode, in which panning keys
	// belong to the editor.
	Note    string
	Editing bool
}

// Pannable reports whether the view exposes a canvas surface.
func (v *View) Pannable() bool {
	return v.Kind == KindCanvas && v.Viewport != nil
}
