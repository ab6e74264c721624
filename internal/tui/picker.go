package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/canvas-pan/internal/canvas"
)

// entryItem is the list item backing a vault document row.
type entryItem struct {
	Path   string
	Rel    string
	Canvas bool
}

func newEntryItems(entries []canvas.Entry) []entryItem {
	items := make([]entryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{Path: e.Path, Rel: e.Rel, Canvas: e.IsCanvas()})
	}
	return items
}

// List item interface methods.
func (it entryItem) Title() string       { return it.Rel }
func (it entryItem) Description() string { return "" }
func (it entryItem) FilterValue() string { return it.Rel }

// entryDelegate renders entryItem rows with a kind icon on the right.
type entryDelegate struct{}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(entryItem)
	if !ok {
		return
	}
	selected := index == m.Index()
	leftPrefix := "  "
	lineStyle := lipgloss.NewStyle()
	if selected {
		leftPrefix = "> "
		lineStyle = lineStyle.Foreground(lipgloss.Color("69")).Bold(true)
	}

	left := fmt.Sprintf("%s%s", leftPrefix, it.Rel)
	right := kindIcon(it.Canvas)

	padding := m.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	line := left + spaces(padding) + right
	_, _ = fmt.Fprint(w, lineStyle.Render(line))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(n).Render("")
}

func kindIcon(isCanvas bool) string {
	if isCanvas {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render("▦ canvas")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("¶ note")
}

func newPicker() list.Model {
	lst := list.New([]list.Item{}, entryDelegate{}, 0, 0)
	lst.Title = "Open file"
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	return lst
}

func pickerItems(items []entryItem) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	return out
}
