package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taskpane/internal/tasks"
)

// renderHeader renders the top status line: app name, per-status counts and
// the latest notice or error.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	counts := make(map[tasks.Status]int, len(tasks.Statuses))
	for _, it := range m.binds.rows {
		counts[it.Status]++
	}

	parts := []string{bg.Render("taskpane", styles.Logo)}
	for _, s := range tasks.Statuses {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.StatusColor(s))).
			Background(lipgloss.Color(m.theme.Surface))
		parts = append(parts, bg.Render(m.statusLabel(s)+" "+strconv.Itoa(counts[s]), style))
	}

	switch {
	case m.lastErr != nil:
		parts = append(parts, bg.Render("! "+truncate(m.lastErr.Error(), m.width/2), styles.DangerText))
	case m.notice != "":
		parts = append(parts, bg.Render(truncate(m.notice, m.width/2), styles.SuccessText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the command hints for the focused pane.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.showLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"f", "Level ≥ " + m.logs.minLevel.String()},
			{"r", "Reload"},
			{"esc", "Close"},
		}
	case m.binds.editorOpen():
		commands = []cmd{
			{"tab", "Field"},
			{"←/→", "Change"},
			{"ctrl+s", "Save"},
			{"esc", "Close"},
			{"alt+f", "Full screen"},
			{"alt+w", "Widen"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Edit"},
			{"n", "New"},
			{"x", "Delete"},
			{"+/-", "Priority"},
			{"s", "Sort"},
			{"y", "Copy id"},
			{"L", "Log"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
