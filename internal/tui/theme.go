package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/todotui/internal/todo"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorMuted  = colorOverlay1
	colorDanger = colorRed
)

var statusColors = map[todo.Status]lipgloss.Color{
	todo.Pending:    colorYellow,
	todo.InProgress: colorBlue,
	todo.Done:       colorGreen,
}

var (
	bannerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorMauve).Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface2)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	removeStyle    = modalStyle.BorderForeground(colorDanger)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	hintStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	helpKeyStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	footerStyle    = lipgloss.NewStyle().Background(colorMantle)
)

func statusStyle(s todo.Status) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(statusColors[s])
}
