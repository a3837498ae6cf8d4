package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐. Focused boxes use BorderFocus and FocusBg.
// Content is clipped or padded to height.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, topBorder)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	lines = append(lines, bottomBorder)
	return strings.Join(lines, "\n")
}
