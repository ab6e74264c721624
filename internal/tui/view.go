package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/canvas-pan/internal/canvas"
	"github.com/ensigniasec/canvas-pan/internal/pan"
	"github.com/ensigniasec/canvas-pan/internal/workspace"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	heldKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	awaitingKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	overlayStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("69"))
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var body string
	switch {
	case m.pickerOpen:
		body = m.picker.View()
	case m.ws.MenuOpen():
		body = renderMenu(m.menuCursor)
	default:
		body = m.renderBody()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	views := m.ws.Views()
	if len(views) == 0 {
		return inactiveTabStyle.Render("no open views (ctrl+o to open)")
	}
	tabs := make([]string, 0, len(views))
	for i, v := range views {
		style := inactiveTabStyle
		if i == m.ws.ActiveIndex() {
			style = activeTabStyle
		}
		title := v.Title
		if v.Editing {
			title += " ✎"
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody() string {
	v, ok := m.ws.Active()
	if !ok {
		return statusStyle.Render("Open a canvas with ctrl+o.")
	}
	switch v.Kind {
	case workspace.KindCanvas:
		return strings.Join(canvas.Render(v.Doc, v.Viewport, max(1, m.width), m.bodyHeight()), "\n")
	case workspace.KindNote:
		if v.Editing {
			return m.editor.View()
		}
		return m.renderNote(v)
	case workspace.KindSettings:
		return m.renderSettings()
	default:
		return ""
	}
}

// getGlamourRenderer creates a renderer wrapping at width.
func getGlamourRenderer(width int) (*glamour.TermRenderer, error) {
	if width < minBodyWidth {
		width = minBodyWidth
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
}

func (m Model) renderNote(v *workspace.View) string {
	if r, ok := m.rendered[v.ID]; ok && r.width == m.width {
		return r.text
	}
	text := v.Note
	if r, err := getGlamourRenderer(m.width); err == nil {
		if out, err := r.Render(v.Note); err == nil {
			text = out
		}
	}
	m.rendered[v.ID] = renderedNote{width: m.width, text: text}
	return text
}

// renderSettings draws the key diagram and the speed control. During capture
// the awaited direction shows "?" and already captured keys replace the saved ones.
func (m Model) renderSettings() string {
	b := m.store.Bindings()
	awaiting, capturing := m.capture.Awaiting()
	if capturing {
		b = m.capture.Pending()
	}
	cell := func(d pan.Direction) string {
		label := b.Key(d)
		switch {
		case capturing && d == awaiting:
			return awaitingKeyStyle.Render("[ ? ]")
		case label == "":
			label = " "
		}
		box := fmt.Sprintf("[ %s ]", label)
		if !capturing && m.ctrl.Held(d) {
			return heldKeyStyle.Render(box)
		}
		return box
	}

	indent := strings.Repeat(" ", settingsDiagramIndent)
	north := cell(pan.North)
	var s strings.Builder
	s.WriteString("Canvas keyboard panning\n\n")
	s.WriteString(indent + strings.Repeat(" ", lipgloss.Width(cell(pan.West))) + north + "\n")
	s.WriteString(indent + cell(pan.West) + cell(pan.South) + cell(pan.East) + "\n\n")
	if capturing {
		fmt.Fprintf(&s, "Press the key for %s.\n", awaiting)
	} else {
		s.WriteString("u: update controls\n")
	}
	fmt.Fprintf(&s, "\nMaximum pan speed: %.0f  (+/- to adjust, r to reset)\n", m.store.MaxSpeed())
	return s.String()
}

func renderMenu(cursor int) string {
	lines := make([]string, 0, int(menuActionsCount))
	for a := menuAction(0); a < menuActionsCount; a++ {
		prefix := "  "
		if int(a) == cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+a.String())
	}
	return overlayStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	parts := make([]string, 0, 4)
	if v, ok := m.ws.Active(); ok && v.Pannable() {
		x, y := v.Viewport.Offset()
		parts = append(parts, fmt.Sprintf("x %.0f  y %.0f", x, y))
		if z, ok := v.Viewport.Zoom(); ok {
			parts = append(parts, fmt.Sprintf("zoom %g", z))
		}
		if m.ctrl.Running() {
			parts = append(parts, "panning")
		}
	}
	b := m.store.Bindings()
	parts = append(parts, fmt.Sprintf("keys %s/%s/%s/%s", b.North, b.West, b.South, b.East))
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusStyle.Render(strings.Join(parts, " • "))
}
