package workspace

// EventKind names a workspace change that invalidates held keys.
type EventKind int

const (
	ActiveViewChanged EventKind = iota
	FileOpened
	MenuOpened
	LayoutChanged
)

func (k EventKind) String() string {
	switch k {
	case ActiveViewChanged:
		return "active-view-change"
	case FileOpened:
		return "file-open"
	case MenuOpened:
		return "menu-open"
	case LayoutChanged:
		return "layout-change"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after the workspace has changed.
type Event struct {
	Kind EventKind
	// View is the view the event concerns, if any.
	View *View
}

// Listener receives workspace events.
type Listener func(Event)
