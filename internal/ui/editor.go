package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taskpane/internal/tasks"
)

type editorField int

const (
	fieldTitle editorField = iota
	fieldDescription
	fieldStatus
	fieldPriority
	fieldCount
)

// editor holds the input widgets for the selected task. The store owns the
// values; the widgets only hold cursor and scroll state.
type editor struct {
	title       textinput.Model
	description textarea.Model
	focus       editorField

	// priorityEntry is the text typed into the priority field since it
	// gained focus: digits or a priority name.
	priorityEntry string
}

func newEditor() editor {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 4000
	ta.SetHeight(5)

	return editor{title: ti, description: ta}
}

// load replaces the widget values with item and resets focus to the title.
func (e *editor) load(item *tasks.Item) {
	if item == nil {
		e.title.SetValue("")
		e.description.SetValue("")
		e.setFocus(fieldTitle)
		return
	}
	e.title.SetValue(item.Title)
	e.title.CursorEnd()
	e.description.SetValue(item.Description)
	e.setFocus(fieldTitle)
}

func (e *editor) setFocus(f editorField) {
	e.focus = (f + fieldCount) % fieldCount
	e.priorityEntry = ""
	e.title.Blur()
	e.description.Blur()
	switch e.focus {
	case fieldTitle:
		e.title.Focus()
	case fieldDescription:
		e.description.Focus()
	}
}

func (e *editor) resize(width, height int) {
	inner := max(width-4, 10)
	e.title.Width = inner
	e.description.SetWidth(inner)
	e.description.SetHeight(max(height-12, 3))
}

// handleEditorKey routes keys while the editor pane has focus. Text keys go
// to the focused widget and every value change is written to the draft.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		item, err := m.ctrl.save()
		if err != nil {
			return m.fail(err), nil
		}
		m.notice = m.text("NOTICE_SAVED", firstLine(item.Title))
		return m, nil
	case key.Matches(msg, m.keys.Close):
		return m.report(m.ctrl.closeEditor()), nil
	case key.Matches(msg, m.keys.NextField):
		m.editor.setFocus(m.editor.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.editor.setFocus(m.editor.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Fullscreen):
		return m.report(m.ctrl.toggleFullscreen()), nil
	case key.Matches(msg, m.keys.SwapPanes):
		return m.report(m.ctrl.swapExpansion()), nil
	}

	var cmd tea.Cmd
	switch m.editor.focus {
	case fieldTitle:
		before := m.editor.title.Value()
		m.editor.title, cmd = m.editor.title.Update(msg)
		if v := m.editor.title.Value(); v != before {
			m = m.report(m.tasks.SetDraftTitle(v))
		}
	case fieldDescription:
		before := m.editor.description.Value()
		m.editor.description, cmd = m.editor.description.Update(msg)
		if v := m.editor.description.Value(); v != before {
			m = m.report(m.tasks.SetDraftDescription(v))
		}
	case fieldStatus:
		if sel := m.binds.selected; sel != nil {
			switch {
			case key.Matches(msg, m.keys.CycleNext):
				m = m.report(m.tasks.SetDraftStatus(sel.Status.Next()))
			case key.Matches(msg, m.keys.CyclePrev):
				m = m.report(m.tasks.SetDraftStatus(sel.Status.Prev()))
			}
		}
	case fieldPriority:
		switch {
		case key.Matches(msg, m.keys.CycleNext):
			m.editor.priorityEntry = ""
			m = m.report(m.ctrl.changeDraftPriority(1))
		case key.Matches(msg, m.keys.CyclePrev):
			m.editor.priorityEntry = ""
			m = m.report(m.ctrl.changeDraftPriority(-1))
		case msg.Type == tea.KeyBackspace:
			m = m.enterPriority(trimLastRune(m.editor.priorityEntry))
		case msg.Type == tea.KeyRunes:
			m = m.enterPriority(m.editor.priorityEntry + string(msg.Runes))
		}
	}
	return m, cmd
}

// enterPriority applies typed priority text. A number or a full name is
// written to the draft; a partial name is kept until it completes.
func (m Model) enterPriority(entry string) Model {
	if entry == "" {
		m.editor.priorityEntry = ""
		return m
	}
	p, err := tasks.ParsePriority(entry)
	if err != nil {
		if !isPriorityNamePrefix(entry) {
			return m.fail(err)
		}
		m.editor.priorityEntry = entry
		return m
	}
	m.editor.priorityEntry = entry
	return m.report(m.ctrl.setDraftPriority(p))
}

func isPriorityNamePrefix(s string) bool {
	s = strings.ToLower(s)
	for _, name := range tasks.PriorityNames {
		if strings.HasPrefix(name, s) {
			return true
		}
	}
	return false
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// renderEditor renders the editor pane for the selected task.
func (m Model) renderEditor(width, height int) string {
	sel := m.binds.selected
	title := m.text("EDITOR_TITLE_EDIT")
	if sel != nil && sel.IsDraft() {
		title = m.text("EDITOR_TITLE_NEW")
	}

	bgColor := m.theme.FocusBg
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	inner := width - 4

	label := func(field editorField, msgKey string) string {
		style := styles.MutedText
		marker := "  "
		if m.editor.focus == field {
			style = styles.AccentText.Bold(true)
			marker = "› "
		}
		return bg.Render(marker+m.text(msgKey), style)
	}

	var lines []string
	lines = append(lines, label(fieldTitle, "FIELD_TITLE"))
	lines = append(lines, "  "+m.editor.title.View())
	lines = append(lines, "")
	lines = append(lines, label(fieldDescription, "FIELD_DESCRIPTION"))
	for _, l := range strings.Split(m.editor.description.View(), "\n") {
		lines = append(lines, "  "+l)
	}
	lines = append(lines, "")

	status, priority := "", ""
	if sel != nil {
		status = m.statusLabel(sel.Status)
		priority = strconv.Itoa(sel.Priority)
		if e := m.editor.priorityEntry; e != "" && !isDigits(e) {
			priority = e + " (" + priority + ")"
		}
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Background))
	if sel != nil {
		statusStyle = statusStyle.Background(lipgloss.Color(m.theme.StatusColor(sel.Status))).Padding(0, 1)
	}
	lines = append(lines, label(fieldStatus, "FIELD_STATUS")+bg.Spaces(2)+"‹ "+statusStyle.Render(status)+" ›")
	lines = append(lines, label(fieldPriority, "FIELD_PRIORITY")+bg.Spaces(2)+bg.Render("‹ "+priority+" ›", styles.WarningText))

	if sel != nil && !sel.IsDraft() {
		lines = append(lines, "", bg.Render("  id "+truncate(sel.ID, inner-5), styles.FaintText))
	}

	for i, l := range lines {
		lines[i] = bg.FillLine(l, inner)
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, true)
}

// statusLabel returns the localized status label, or a placeholder until the
// resource text has loaded. Unknown statuses are shown as stored.
func (m Model) statusLabel(s tasks.Status) string {
	if !s.Valid() {
		return string(s)
	}
	if m.loc == nil {
		return "…"
	}
	return m.loc.Text(s.LabelKey())
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
