package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites overlay on top of base with its top-left corner at
// cell (x, y). Both are line based; the result is clipped to width x height.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = dropColumns(target, pos)
			if gap := width - pos - ansi.StringWidth(right); gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}
		composed := left + overlayLine + right
		if width > 0 {
			composed = ansi.Truncate(composed, width, "")
		}
		baseLines[row] = composed
	}
	return strings.Join(baseLines, "\n")
}

// fitCanvas pads or clips s to exactly width x height cells.
func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(ansi.Truncate(lines[i], width, ""), width)
	}
	return strings.Join(lines, "\n")
}

// splitToLines splits s on newlines; a positive height clips or pads the
// result to that many lines.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// dropColumns removes the first cols cells of s.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

// padRight pads s with spaces so its visual width is at least width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width cells, ending in "…" when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// tail keeps the last width cells of s, starting with "…" when cut.
func tail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	return ansi.TruncateLeft(s, w-width+1, "…")
}
