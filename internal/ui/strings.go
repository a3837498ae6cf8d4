package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to limit display cells, adding an ellipsis when
// it cuts.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || lipgloss.Width(value) <= limit {
		return value
	}
	runes := []rune(value)
	if limit <= 1 {
		return string(runes[:limit])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads a string with spaces to width display cells.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// firstLine returns the first line of a multi-line value.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
