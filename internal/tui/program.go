package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/canvas-pan/internal/settings"
	"github.com/ensigniasec/canvas-pan/internal/workspace"
)

// Run starts the Bubble Tea program and blocks until it exits. Log output goes
// to logOut while the program owns the terminal.
func Run(ctx context.Context, store *settings.Store, opts Options, logOut io.Writer) error {
	if logOut == nil {
		logOut = io.Discard
	}
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(logOut)
	defer logrus.SetOutput(prevOut)

	ws := workspace.New(opts.Zoom)
	model := NewModel(ctx, store, ws, opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
