package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the host key bindings. They take precedence over panning keys.
type keyMap struct {
	Quit      key.Binding
	NextView  key.Binding
	PrevView  key.Binding
	Open      key.Binding
	Menu      key.Binding
	Edit      key.Binding
	Reset     key.Binding
	Settings  key.Binding
	CloseView key.Binding
	Escape    key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding

	// Settings view.
	Rebind     key.Binding
	Faster     key.Binding
	Slower     key.Binding
	SpeedReset key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open file"),
		),
		Menu: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "menu"),
		),
		Edit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit/read note"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset origin"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "settings"),
		),
		CloseView: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Rebind: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "update controls"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		SpeedReset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "default speed"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Open, k.Menu, k.Reset, k.Settings, k.Edit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.PrevView, k.CloseView, k.Escape},
		{k.Rebind, k.Faster, k.Slower, k.SpeedReset},
	}
}
