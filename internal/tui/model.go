package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/canvas-pan/internal/canvas"
	"github.com/ensigniasec/canvas-pan/internal/pan"
	"github.com/ensigniasec/canvas-pan/internal/rebind"
	"github.com/ensigniasec/canvas-pan/internal/settings"
	"github.com/ensigniasec/canvas-pan/internal/workspace"
)

// menuAction is an entry of the context menu.
type menuAction int

const (
	menuResetOrigin menuAction = iota
	menuSettings
	menuCloseView
	menuActionsCount
)

func (a menuAction) String() string {
	switch a {
	case menuResetOrigin:
		return "Reset origin"
	case menuSettings:
		return "Settings"
	case menuCloseView:
		return "Close view"
	default:
		return ""
	}
}

// Options configures the TUI.
type Options struct {
	// VaultRoot is walked for canvases and notes to offer in the file picker.
	VaultRoot string
	// Ignore lists doublestar globs excluded from the walk.
	Ignore []string
	// Open lists documents opened at startup.
	Open []string
	// ReleaseAfter is the silence after which a held key counts as released.
	ReleaseAfter time.Duration
	// Zoom is the zoom level canvases open at.
	Zoom float64
	// Clock overrides the pan loop's clock.
	Clock pan.Clock
}

// renderedNote caches a glamour rendering for one width.
type renderedNote struct {
	width int
	text  string
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx     context.Context
	ws      *workspace.Workspace
	store   *settings.Store
	ctrl    *pan.Controller
	capture *rebind.Capture
	timers  *teaTimers
	held    *releaseTracker

	opts    Options
	entries []entryItem

	picker     list.Model
	pickerOpen bool
	menuCursor int
	editor     textarea.Model
	help       help.Model
	rendered   map[uuid.UUID]renderedNote

	width    int
	height   int
	status   string
	err      error
	quitting bool

	// keymap for consistent keybindings
	keys keyMap
	log  *logrus.Entry
}

// NewModel wires the pan controller to the workspace and settings store.
func NewModel(ctx context.Context, store *settings.Store, ws *workspace.Workspace, opts Options) Model {
	if opts.ReleaseAfter <= 0 {
		opts.ReleaseAfter = DefaultReleaseAfter
	}
	log := logrus.WithField("component", "tui")
	timers := newTeaTimers()
	ctrl := pan.NewController(ws, store, timers,
		pan.WithClock(opts.Clock),
		pan.WithLogger(logrus.WithField("component", "pan")),
	)
	held := newReleaseTracker(opts.ReleaseAfter)

	// Any change of context drops held keys so they cannot leak into the next view.
	ws.Subscribe(func(e workspace.Event) {
		ctrl.ForceStop(e.Kind.String())
		held.forget()
	})

	editor := textarea.New()
	editor.ShowLineNumbers = false

	return Model{
		ctx:      ctx,
		ws:       ws,
		store:    store,
		ctrl:     ctrl,
		capture:  rebind.NewCapture(store),
		timers:   timers,
		held:     held,
		opts:     opts,
		picker:   newPicker(),
		editor:   editor,
		help:     help.New(),
		rendered: make(map[uuid.UUID]renderedNote),
		keys:     newKeyMap(),
		log:      log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.discover(),
		m.openInitial(),
	)
}

// discover walks the vault in the background.
func (m Model) discover() tea.Cmd {
	root := m.opts.VaultRoot
	if root == "" {
		return nil
	}
	ctx, ignore := m.ctx, m.opts.Ignore
	return func() tea.Msg {
		entries, err := canvas.Discover(ctx, root, ignore)
		return discoveredMsg{Entries: newEntryItems(entries), Err: err}
	}
}

// openInitial opens the startup documents on the update loop.
func (m Model) openInitial() tea.Cmd {
	if len(m.opts.Open) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.opts.Open))
	for _, path := range m.opts.Open {
		cmds = append(cmds, func() tea.Msg { return openFileMsg{Path: path} })
	}
	return tea.Sequence(cmds...)
}
