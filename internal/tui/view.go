package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/todotui/internal/app"
	"github.com/jask/todotui/internal/layout"
)

const (
	// chromeRows is the banner, status bar and footer.
	chromeRows = 3
	// Below this pane width or body height the plain list is drawn instead.
	minPaneWidth  = 14
	minBodyHeight = 3

	removeModalHeight = 50
)

func (a *App) View() string {
	s := a.machine.Snapshot()
	if a.width <= 0 || a.height <= 0 {
		return renderPlain(s)
	}
	full := layout.Rect{Width: a.width, Height: a.height}
	base := a.renderMain(s)
	switch s.Screen {
	case app.ScreenNewTodo:
		r := layout.CenteredRect(a.opts.ModalWidth, a.opts.ModalHeight, full)
		if r.Width < 8 || r.Height < 3 {
			return base
		}
		return overlayAt(base, renderEntryModal(s, r), r.X, r.Y, a.width, a.height)
	case app.ScreenRemoveTodo:
		r := layout.CenteredRect(a.opts.ModalWidth, removeModalHeight, full)
		if r.Width < 8 || r.Height < 3 {
			return base
		}
		return overlayAt(base, renderRemoveModal(s, r), r.X, r.Y, a.width, a.height)
	case app.ScreenMain:
	}
	return base
}

func (a *App) renderMain(s app.Snapshot) string {
	body := layout.Rect{Y: 1, Width: a.width, Height: a.height - chromeRows}
	panes := layout.SplitEqual(body, layout.Horizontal, len(s.Columns))
	if body.Height < minBodyHeight || len(panes) == 0 || panes[len(panes)-1].Width < minPaneWidth {
		return fitCanvas(renderPlain(s), a.width, a.height)
	}

	cols := make([]string, 0, len(panes))
	for i, c := range s.Columns {
		row := -1
		if c.Status == s.Focus {
			row = s.Row
		}
		cols = append(cols, renderPane(c, panes[i], c.Status == s.Focus, row))
	}

	banner := bannerStyle.Width(a.width).Render(truncate(s.Title, a.width-2))
	msg := strings.TrimSpace(s.Message)
	if msg == "" {
		msg = "Ready"
	}
	status := renderBar(statusBarStyle, a.width, msg)
	footer := renderBar(footerStyle, a.width, a.help.ShortHelpView(a.machine.Keys().HelpBindings(s.Screen.Scope())))

	out := lipgloss.JoinVertical(lipgloss.Left,
		banner,
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		status,
		footer,
	)
	return fitCanvas(out, a.width, a.height)
}

func renderPane(c app.Column, r layout.Rect, focused bool, row int) string {
	innerW := max(r.Width-2, 0)
	innerH := max(r.Height-2, 0)
	style := paneStyle
	if focused {
		style = style.BorderForeground(colorFocus)
	}

	header := statusStyle(c.Status).Render(truncate(fmt.Sprintf("%s (%d)", c.Status, len(c.Todos)), innerW))
	lines := []string{header}
	visible := innerH - 1
	start := 0
	if row >= visible && visible > 0 {
		start = row - visible + 1
	}
	for i := start; i < len(c.Todos) && len(lines) < innerH; i++ {
		if focused && i == row {
			lines = append(lines, selectedStyle.Render(truncate("› "+c.Todos[i].Title(), innerW)))
			continue
		}
		lines = append(lines, truncate("  "+c.Todos[i].Title(), innerW))
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return style.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

func renderEntryModal(s app.Snapshot, r layout.Rect) string {
	// Border plus one column of padding on each side.
	innerW := max(r.Width-4, 1)
	innerH := max(r.Height-2, 1)
	lines := []string{
		titleStyle.Render(truncate("Enter a new todo", innerW)),
		tail("> "+s.Entry+"█", innerW),
		hintStyle.Render(truncate(fmt.Sprintf("adds to %s · enter add · backspace on empty cancels", s.Focus), innerW)),
	}
	return modalBox(modalStyle, lines, innerW, innerH)
}

func renderRemoveModal(s app.Snapshot, r layout.Rect) string {
	innerW := max(r.Width-4, 1)
	innerH := max(r.Height-2, 1)
	lines := []string{titleStyle.Render(truncate("Remove which todo?", innerW))}

	// Numbered entries sit between the banner and the trailing blank line.
	entries := s.Lines
	if len(entries) >= 2 {
		entries = entries[1 : len(entries)-1]
	}
	visible := max(innerH-2, 1)
	start := 0
	if s.Selected >= visible {
		start = s.Selected - visible + 1
	}
	for i := start; i < len(entries) && i < start+visible; i++ {
		if i == s.Selected {
			lines = append(lines, selectedStyle.Render(truncate("› "+entries[i], innerW)))
			continue
		}
		lines = append(lines, truncate("  "+entries[i], innerW))
	}
	lines = append(lines, hintStyle.Render(truncate("enter remove · backspace back", innerW)))
	return modalBox(removeStyle, lines, innerW, innerH)
}

func modalBox(style lipgloss.Style, lines []string, innerW, innerH int) string {
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return style.Width(innerW + 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

// renderPlain is the list view used before the surface size is known and on
// surfaces too small for panes.
func renderPlain(s app.Snapshot) string {
	lines := append([]string(nil), s.Lines...)
	switch s.Screen {
	case app.ScreenNewTodo:
		lines = append(lines, "New todo: "+s.Entry+"_")
	case app.ScreenRemoveTodo:
		lines = append(lines, fmt.Sprintf("Remove %d? enter yes · backspace no", s.Selected+1))
	case app.ScreenMain:
	}
	if msg := strings.TrimSpace(s.Message); msg != "" {
		lines = append(lines, msg)
	}
	return strings.Join(lines, "\n")
}

func renderBar(style lipgloss.Style, width int, text string) string {
	inner := max(width-style.GetHorizontalFrameSize(), 0)
	line := strings.ReplaceAll(text, "\n", " ")
	line = padRight(truncate(line, inner), inner)
	return style.Width(width).MaxWidth(width).Render(line)
}
