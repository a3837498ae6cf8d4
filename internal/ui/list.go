package ui

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taskpane/internal/tasks"
)

// clampCursor keeps the list cursor on the same task after the rows changed,
// falling back to the nearest valid row.
func (m *Model) clampCursor() {
	rows := m.binds.rows
	if len(rows) == 0 {
		m.cursor = 0
		m.cursorID = ""
		return
	}
	if m.cursorID != "" {
		for i, it := range rows {
			if it.ID == m.cursorID {
				m.cursor = i
				return
			}
		}
	}
	m.cursor = min(max(m.cursor, 0), len(rows)-1)
	m.cursorID = rows[m.cursor].ID
}

func (m *Model) moveCursor(to int) {
	if len(m.binds.rows) == 0 {
		return
	}
	m.cursor = min(max(to, 0), len(m.binds.rows)-1)
	m.cursorID = m.binds.rows[m.cursor].ID
}

// currentTask returns the task under the cursor.
func (m Model) currentTask() (tasks.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.binds.rows) {
		return tasks.Item{}, false
	}
	return m.binds.rows[m.cursor], true
}

// handleListKey processes keyboard input for the task list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.binds.rows) - 1)
	case key.Matches(msg, m.keys.New):
		return m.report(m.ctrl.newTask()), nil
	case key.Matches(msg, m.keys.Sort):
		m.tasks.SortByPriority()
		m.notice = m.text("NOTICE_SORTED")
	}

	item, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.report(m.ctrl.editTask(item.ID)), nil
	case key.Matches(msg, m.keys.Delete):
		if err := m.ctrl.deleteTask(item.ID); err != nil {
			return m.fail(err), nil
		}
		m.notice = m.text("NOTICE_DELETED", firstLine(item.Title))
	case key.Matches(msg, m.keys.PriorityUp):
		return m.report(m.ctrl.changePriority(item.ID, 1)), nil
	case key.Matches(msg, m.keys.PriorityDown):
		return m.report(m.ctrl.changePriority(item.ID, -1)), nil
	case key.Matches(msg, m.keys.CopyID):
		return m, copyCmd(m.copy, item.ID)
	}
	return m, nil
}

type copiedMsg struct {
	id  string
	err error
}

func copyCmd(write func(string) error, id string) tea.Cmd {
	if write == nil {
		write = clipboard.WriteAll
	}
	return func() tea.Msg {
		return copiedMsg{id: id, err: write(id)}
	}
}

// renderList renders the task list pane.
func (m Model) renderList(width, height int, focused bool) string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	inner := width - 2

	var content string
	if len(m.binds.rows) == 0 {
		content = NewBgStyle(bgColor).Render(m.text("LIST_EMPTY"), m.theme.Styles().MutedText)
	} else {
		lines := make([]string, 0, len(m.binds.rows))
		for i, item := range m.binds.rows {
			selected := i == m.cursor
			rowBg := bgColor
			if selected {
				rowBg = m.theme.SelectionBg
			}
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(rowBg)).
				Width(inner).
				Render(m.formatRow(item, inner, rowBg, selected))
			lines = append(lines, line)
		}
		content = strings.Join(lines, "\n")
	}

	title := m.text("LIST_TITLE") + " (" + strconv.Itoa(len(m.binds.rows)) + ")"
	return m.renderTitledBox(title, content, width, height, focused)
}

// formatRow formats one task row.
// Format: "P3 Title · Status"
func (m Model) formatRow(item tasks.Item, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	prio := padRight("P"+strconv.Itoa(item.Priority), 3)
	status := m.statusLabel(item.Status)
	titleWidth := max(width-lipgloss.Width(prio)-lipgloss.Width(status)-5, 8)

	var prioStyle, titleStyle, sepStyle, statusStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		prioStyle, titleStyle, sepStyle, statusStyle = selText, selText, selText, selText
	} else {
		styles := m.theme.Styles()
		prioStyle = styles.WarningText
		titleStyle = styles.Text
		sepStyle = styles.FaintText
		statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(item.Status)))
	}

	title := firstLine(item.Title)
	if strings.TrimSpace(title) == "" {
		title = "—"
	}

	return bg.Render(prio, prioStyle) + bg.Space() +
		bg.Render(truncate(title, titleWidth), titleStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(status, statusStyle)
}
