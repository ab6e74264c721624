package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/canvas-pan/internal/workspace"
)

// handleKey routes a key press: host bindings first, then whichever overlay or
// view owns the keyboard, and finally the pan tracker.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn,gocyclo,cyclop
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.ctrl.ForceStop("quit")
		return m, tea.Quit
	}

	switch {
	case m.pickerOpen:
		return m.handlePickerKey(msg)
	case m.ws.MenuOpen():
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextView):
		m.leaveEditor()
		m.ws.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevView):
		m.leaveEditor()
		m.ws.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.leaveEditor()
		m.pickerOpen = true
		m.picker.ResetFilter()
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.menuCursor = 0
		m.ws.OpenMenu()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m.toggleEditor()

	case key.Matches(msg, m.keys.Reset):
		m.resetOrigin()
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.leaveEditor()
		m.ws.OpenSettings()
		return m, nil

	case key.Matches(msg, m.keys.CloseView):
		m.leaveEditor()
		m.ws.Close(m.ws.ActiveIndex())
		return m, nil
	}

	if m.ws.EditorFocused() {
		if key.Matches(msg, m.keys.Escape) {
			return m.toggleEditor()
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	if v, ok := m.ws.Active(); ok && v.Kind == workspace.KindSettings {
		if handled, cmd := m.handleSettingsKey(msg); handled {
			return m, cmd
		}
	}

	k := msg.String()
	if m.ctrl.KeyDown(k) {
		return m, m.held.pressed(k)
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	filtering := m.picker.FilterState() == list.Filtering
	switch {
	case key.Matches(msg, m.keys.Escape) && !filtering:
		m.pickerOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Select) && !filtering:
		m.pickerOpen = false
		if it, ok := m.picker.SelectedItem().(entryItem); ok {
			m.openFile(it.Path)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.ws.CloseMenu()
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = (m.menuCursor - 1 + int(menuActionsCount)) % int(menuActionsCount)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = (m.menuCursor + 1) % int(menuActionsCount)
	case key.Matches(msg, m.keys.Select):
		m.ws.CloseMenu()
		m.runMenuAction(menuAction(m.menuCursor))
	}
	return m, nil
}

func (m *Model) runMenuAction(a menuAction) {
	switch a {
	case menuResetOrigin:
		m.resetOrigin()
	case menuSettings:
		m.ws.OpenSettings()
	case menuCloseView:
		m.ws.Close(m.ws.ActiveIndex())
	case menuActionsCount:
	}
}

// handleSettingsKey drives the rebinding capture and the speed control.
func (m *Model) handleSettingsKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.capture.Active() {
		committed, err := m.capture.Press(msg.String())
		switch {
		case err != nil:
			m.err = err
		case committed:
			m.status = "Controls updated"
		}
		return true, nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Rebind):
		m.capture.Begin()
		m.status = "Press the key for north"
		return true, nil
	case key.Matches(msg, m.keys.Faster):
		err = m.store.StepSpeed(1)
	case key.Matches(msg, m.keys.Slower):
		err = m.store.StepSpeed(-1)
	case key.Matches(msg, m.keys.SpeedReset):
		err = m.store.ResetMaxSpeed()
	default:
		return false, nil
	}
	if err != nil {
		m.err = err
	} else {
		m.status = fmt.Sprintf("Maximum pan speed %.0f", m.store.MaxSpeed())
	}
	return true, nil
}

func (m Model) toggleEditor() (Model, tea.Cmd) {
	v, ok := m.ws.Active()
	if !ok || v.Kind != workspace.KindNote {
		return m, nil
	}
	if v.Editing {
		m.leaveEditor()
		return m, nil
	}
	if err := m.ws.SetEditing(true, v.Note); err != nil {
		m.err = err
		return m, nil
	}
	return m, m.enterEditor(v.Note)
}

// leaveEditor saves and closes the editor if a note is being edited.
func (m *Model) leaveEditor() {
	if !m.ws.EditorFocused() {
		return
	}
	v, _ := m.ws.Active()
	m.editor.Blur()
	if err := m.ws.SetEditing(false, m.editor.Value()); err != nil {
		m.err = err
		return
	}
	delete(m.rendered, v.ID)
}

func (m *Model) openFile(path string) {
	if _, err := m.ws.Open(path); err != nil {
		m.err = err
		m.log.Warnf("open %s: %v", path, err)
		return
	}
	m.err = nil
}

func (m *Model) resetOrigin() {
	if m.ctrl.ResetOrigin() {
		m.status = "Moved to origin"
	}
}

// resize applies the terminal size to the sized components.
func (m *Model) resize() {
	body := m.bodyHeight()
	m.editor.SetWidth(m.width)
	m.editor.SetHeight(body)
	w := min(m.width, pickerWidthMax)
	m.picker.SetSize(w, body)
	m.help.Width = m.width
	clear(m.rendered)
}

func (m Model) bodyHeight() int {
	return max(1, m.height-chromeLines)
}
