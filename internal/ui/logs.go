package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taskpane/internal/logtail"
)

// logRefreshInterval is how often the open overlay re-reads the log file.
const logRefreshInterval = 2 * time.Second

// logLevels is the cycle order of the overlay's minimum level.
var logLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

// logView holds the log overlay state.
type logView struct {
	viewport viewport.Model
	lines    []string
	minLevel slog.Level
	ticking  bool
}

func newLogView() logView {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle()
	return logView{viewport: vp, minLevel: slog.LevelDebug}
}

func (l *logView) resize(width, height int) {
	l.viewport.Width = max(width, 0)
	l.viewport.Height = max(height, 0)
}

// refresh re-renders the filtered lines. The view follows the newest record
// unless the user scrolled up.
func (l *logView) refresh(theme Theme) {
	follow := l.viewport.AtBottom() || l.viewport.TotalLineCount() == 0

	styles := theme.Styles().WithBackground(theme.FocusBg)
	l.viewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(theme.FocusBg))

	filtered := logtail.Filter(l.lines, l.minLevel)
	out := make([]string, 0, len(filtered))
	level := slog.LevelInfo
	for _, line := range filtered {
		if lv, ok := logtail.LineLevel(line); ok {
			level = lv
		}
		out = append(out, logLineStyle(styles, level).Render(line))
	}
	l.viewport.SetContent(strings.Join(out, "\n"))
	if follow {
		l.viewport.GotoBottom()
	}
}

func logLineStyle(styles Styles, level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return styles.DangerText
	case level >= slog.LevelWarn:
		return styles.WarningText
	case level < slog.LevelInfo:
		return styles.FaintText
	default:
		return styles.Text
	}
}

func nextLogLevel(current slog.Level) slog.Level {
	for i, lv := range logLevels {
		if lv == current {
			return logLevels[(i+1)%len(logLevels)]
		}
	}
	return logLevels[0]
}

// handleLogsKey processes keyboard input while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Logs):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.LogLevel):
		m.logs.minLevel = nextLogLevel(m.logs.minLevel)
		m.logs.refresh(m.theme)
		return m, nil
	case key.Matches(msg, m.keys.LogRefresh):
		return m, readLogsCmd(m.logPath)
	}

	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}

// renderLogs renders the log overlay.
func (m Model) renderLogs(height int) string {
	title := m.text("LOG_TITLE") + " ≥ " + m.logs.minLevel.String()

	var content string
	if len(m.logs.lines) == 0 {
		bg := NewBgStyle(m.theme.FocusBg)
		content = bg.Render(m.text("LOG_EMPTY"), m.theme.Styles().MutedText)
	} else {
		content = m.logs.viewport.View()
	}
	return m.renderTitledBox(title, content, m.width, height, true)
}

type logTickMsg time.Time

func logTickCmd() tea.Cmd {
	return tea.Tick(logRefreshInterval, func(t time.Time) tea.Msg {
		return logTickMsg(t)
	})
}

type logLinesMsg struct {
	lines []string
	err   error
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}
