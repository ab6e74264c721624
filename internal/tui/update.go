package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	var cmd tea.Cmd
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.resize()

	case tea.KeyMsg:
		m, cmd = m.handleKey(x)

	case intervalMsg:
		cmd = m.timers.fire(x.ID)

	case releaseCheckMsg:
		if m.held.released(x) {
			m.ctrl.KeyUp(x.Key)
		}

	case discoveredMsg:
		if x.Err != nil {
			m.err = x.Err
			m.log.Warnf("vault discovery failed: %v", x.Err)
		}
		m.entries = x.Entries
		m.picker.SetItems(pickerItems(m.entries))

	case openFileMsg:
		m.openFile(x.Path)

	default:
		// Cursor blink and other component messages.
		if m.ws.EditorFocused() {
			m.editor, cmd = m.editor.Update(msg)
		}
	}

	// Intervals started while handling msg get their first tick here.
	return m, tea.Batch(cmd, m.timers.drain())
}

// enterEditor focuses the editor on the active note.
func (m *Model) enterEditor(note string) tea.Cmd {
	m.editor.SetValue(note)
	m.editor.Focus()
	return textarea.Blink
}
