package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/taskpane/internal/appstate"
	"github.com/five82/taskpane/internal/i18n"
	"github.com/five82/taskpane/internal/prefs"
	"github.com/five82/taskpane/internal/tasks"
)

type testModel struct {
	m      Model
	tasks  *tasks.Store
	view   *appstate.Store
	copied string
}

func newTestModel(t *testing.T, opts Options) *testModel {
	t.Helper()
	reg, ts, vs := newTestStores(t)
	tm := &testModel{tasks: ts, view: vs}

	opts.Registry, opts.Tasks, opts.View = reg, ts, vs
	opts.NewID = func() string { return "new-id" }
	opts.Clipboard = func(s string) error {
		tm.copied = s
		return nil
	}

	m, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.binds.close)
	tm.m = m
	tm.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return tm
}

func (tm *testModel) send(msg tea.Msg) tea.Cmd {
	next, cmd := tm.m.Update(msg)
	tm.m = next.(Model)
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func (tm *testModel) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = tm.send(keyMsg(k))
	}
	return cmd
}

func (tm *testModel) typeText(s string) {
	for _, r := range s {
		tm.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewRequiresStores(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, errMissingStores) {
		t.Fatalf("New err = %v, want errMissingStores", err)
	}
}

func TestViewLoadingUntilSized(t *testing.T) {
	reg, ts, vs := newTestStores(t)
	m, err := New(Options{Registry: reg, Tasks: ts, View: vs})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.binds.close()
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q", got)
	}
}

func TestStatusLabelsWaitForBundle(t *testing.T) {
	tm := newTestModel(t, Options{Locale: "de-DE"})

	if got := tm.m.statusLabel(tasks.StatusDone); got != "…" {
		t.Fatalf("label before bundle = %q, want placeholder", got)
	}
	if view := tm.m.View(); strings.Contains(view, "Offen") {
		t.Fatal("view rendered a status label before the bundle loaded")
	}

	tm.send(loadBundleCmd(tm.m.locale)())
	if tm.m.loc == nil {
		t.Fatalf("bundle not applied: %v", tm.m.lastErr)
	}
	if got := tm.m.statusLabel(tasks.StatusDone); got != "Erledigt" {
		t.Fatalf("label = %q, want Erledigt", got)
	}
	if got := tm.m.text("HELP_TITLE"); got != "Keyboard Shortcuts" {
		t.Fatalf("fallback text = %q", got)
	}
}

func TestStatusLabelKeysMatchBundle(t *testing.T) {
	cases := map[tasks.Status]string{
		tasks.StatusOpen:       i18n.TaskStatusOpen,
		tasks.StatusInProgress: i18n.TaskStatusInProgress,
		tasks.StatusDone:       i18n.TaskStatusDone,
	}
	for status, want := range cases {
		if got := status.LabelKey(); got != want {
			t.Fatalf("%v.LabelKey() = %q, want %q", status, got, want)
		}
	}
}

func TestNewTaskFlow(t *testing.T) {
	tm := newTestModel(t, Options{})

	tm.press("n")
	if !tm.m.binds.editorOpen() {
		t.Fatal("n did not open the editor")
	}
	tm.typeText("Buy milk")
	if tm.tasks.Len() != 3 {
		t.Fatal("draft listed before save")
	}
	if got := tm.tasks.Selected().Title; got != "Buy milk" {
		t.Fatalf("draft title = %q", got)
	}

	tm.press("ctrl+s")
	if tm.m.lastErr != nil {
		t.Fatalf("save: %v", tm.m.lastErr)
	}
	item, ok := tm.tasks.Find("new-id")
	if !ok || item.Title != "Buy milk" {
		t.Fatalf("saved item = %+v (ok=%v)", item, ok)
	}
	if tm.m.binds.editorOpen() {
		t.Fatal("editor still open after save")
	}
	if len(tm.m.binds.rows) != 4 {
		t.Fatalf("cached rows = %d", len(tm.m.binds.rows))
	}
}

func TestEditKeepsListUntilSave(t *testing.T) {
	tm := newTestModel(t, Options{})

	tm.press("enter")
	if got := tm.m.editor.title.Value(); got != "Task 1" {
		t.Fatalf("editor title = %q", got)
	}
	tm.typeText("!")
	if it, _ := tm.tasks.Find("1"); it.Title != "Task 1" {
		t.Fatalf("edit reached the list: %q", it.Title)
	}

	// Move to the status field and cycle it.
	tm.press("tab", "tab", "+")
	if got := tm.tasks.Selected().Status; got != tasks.StatusInProgress {
		t.Fatalf("draft status = %v", got)
	}

	tm.press("esc")
	if tm.view.Layout() != appstate.OneColumn {
		t.Fatal("esc did not close the editor")
	}
	if it, _ := tm.tasks.Find("1"); it.Title != "Task 1" || it.Status != tasks.StatusOpen {
		t.Fatalf("closing without save changed the task: %+v", it)
	}

	// Re-opening discards the unsaved draft.
	tm.press("enter")
	if got := tm.m.editor.title.Value(); got != "Task 1" {
		t.Fatalf("editor title after reopen = %q", got)
	}
}

func TestPriorityKeysStopAtZero(t *testing.T) {
	tm := newTestModel(t, Options{})

	tm.press("-")
	if tm.m.lastErr != nil {
		t.Fatalf("first decrement: %v", tm.m.lastErr)
	}
	tm.press("-")
	if !errors.Is(tm.m.lastErr, errNegativePriority) {
		t.Fatalf("lastErr = %v, want errNegativePriority", tm.m.lastErr)
	}
	if it, _ := tm.tasks.Find("1"); it.Priority != 0 {
		t.Fatalf("priority = %d", it.Priority)
	}
	if tm.m.binds.rows[0].Priority != 0 {
		t.Fatal("row cache not refreshed")
	}
}

func TestPriorityFieldAcceptsTypedValues(t *testing.T) {
	tm := newTestModel(t, Options{})
	tm.press("n", "tab", "tab", "tab")
	if tm.m.editor.focus != fieldPriority {
		t.Fatalf("focus = %v, want priority field", tm.m.editor.focus)
	}
	draftPriority := func() int { return tm.tasks.Selected().Priority }

	tm.typeText("72")
	if got := draftPriority(); got != 72 {
		t.Fatalf("priority after 72 = %d", got)
	}
	tm.press("backspace")
	if got := draftPriority(); got != 7 {
		t.Fatalf("priority after backspace = %d", got)
	}
	tm.press("+")
	if got := draftPriority(); got != 8 || tm.m.editor.priorityEntry != "" {
		t.Fatalf("priority after + = %d (entry %q)", got, tm.m.editor.priorityEntry)
	}

	tm.typeText("x")
	if tm.m.lastErr == nil {
		t.Fatal("x was accepted as a priority")
	}
	if got := draftPriority(); got != 8 {
		t.Fatalf("rejected entry changed priority to %d", got)
	}

	tm.typeText("hig")
	if tm.m.lastErr != nil || draftPriority() != 8 {
		t.Fatalf("partial name: err = %v, priority = %d", tm.m.lastErr, draftPriority())
	}
	tm.typeText("h")
	if got := draftPriority(); got != 3 {
		t.Fatalf("priority after high = %d", got)
	}

	tm.press("ctrl+s")
	if it, ok := tm.tasks.Find("new-id"); !ok || it.Priority != 3 {
		t.Fatalf("saved item = %+v (ok=%v)", it, ok)
	}
}

func TestStatusLabelShowsUnknownStatusAsStored(t *testing.T) {
	tm := newTestModel(t, Options{})
	tm.send(loadBundleCmd(tm.m.locale)())
	if got := tm.m.statusLabel(tasks.Status("archived")); got != "archived" {
		t.Fatalf("label = %q, want archived", got)
	}
	if got := tm.m.statusLabel(tasks.StatusOpen); got == tasks.StatusOpen.LabelKey() {
		t.Fatalf("known status not localized: %q", got)
	}
}

func TestCursorFollowsTaskAcrossSort(t *testing.T) {
	tm := newTestModel(t, Options{})
	if tm.m.cursorID != "1" {
		t.Fatalf("cursorID = %q", tm.m.cursorID)
	}

	tm.press("s")
	if tm.m.cursor != 2 || tm.m.cursorID != "1" {
		t.Fatalf("cursor = %d (%q), want 2 on task 1", tm.m.cursor, tm.m.cursorID)
	}

	tm.press("g")
	if tm.m.cursorID != "3" {
		t.Fatalf("top after sort = %q, want 3", tm.m.cursorID)
	}
}

func TestDeleteKeyRemovesTask(t *testing.T) {
	tm := newTestModel(t, Options{})
	tm.press("j", "x")
	if _, ok := tm.tasks.Find("2"); ok {
		t.Fatal("task 2 not removed")
	}
	if tm.m.cursorID != "3" && tm.m.cursorID != "1" {
		t.Fatalf("cursor left on a removed task: %q", tm.m.cursorID)
	}
}

func TestCopyID(t *testing.T) {
	tm := newTestModel(t, Options{})
	tm.press("G")
	cmd := tm.press("y")
	if cmd == nil {
		t.Fatal("y returned no command")
	}
	tm.send(cmd())
	if tm.copied != "3" {
		t.Fatalf("copied = %q, want 3", tm.copied)
	}
	if tm.m.notice == "" {
		t.Fatal("no notice after copy")
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefs.FileName)
	tm := newTestModel(t, Options{PrefsPath: path})

	before := tm.m.theme.Name
	tm.press("T")
	if tm.m.theme.Name == before {
		t.Fatal("theme did not change")
	}
	if got := prefs.Load(path).Theme; got != tm.m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", got, tm.m.theme.Name)
	}
}

func TestLogOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskpane.log")
	content := strings.Join([]string{
		`time=2026-01-01T00:00:00Z level=DEBUG msg="state changed" key=task`,
		`time=2026-01-01T00:00:01Z level=INFO msg="task saved" id=1`,
		`time=2026-01-01T00:00:02Z level=ERROR msg="operation failed"`,
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	tm := newTestModel(t, Options{LogPath: path})

	if cmd := tm.press("L"); cmd == nil {
		t.Fatal("L returned no command")
	}
	if !tm.m.showLogs || !tm.m.logs.ticking {
		t.Fatal("log overlay not open")
	}
	tm.send(readLogsCmd(path)())
	if len(tm.m.logs.lines) != 3 {
		t.Fatalf("lines = %d", len(tm.m.logs.lines))
	}

	tm.press("f")
	if tm.m.logs.minLevel.String() != "INFO" {
		t.Fatalf("minLevel = %v", tm.m.logs.minLevel)
	}

	// Keys do not reach the list while the overlay is open.
	tm.press("x")
	if tm.tasks.Len() != 3 {
		t.Fatal("list key handled under the log overlay")
	}

	tm.press("esc")
	if tm.m.showLogs {
		t.Fatal("esc did not close the overlay")
	}
	if cmd := tm.send(logTickMsg{}); cmd != nil {
		t.Fatal("tick kept polling after close")
	}
	if tm.m.logs.ticking {
		t.Fatal("ticking flag not reset")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	tm := newTestModel(t, Options{})
	tm.press("?")
	if !tm.m.showHelp {
		t.Fatal("help not shown")
	}
	tm.press("n")
	if tm.m.showHelp {
		t.Fatal("help still shown")
	}
	if tm.m.binds.editorOpen() {
		t.Fatal("key that closed help was also handled")
	}
}

func TestQuitKeys(t *testing.T) {
	tm := newTestModel(t, Options{})
	tm.press("n")
	// q is text while editing; ctrl+c always quits.
	tm.press("q")
	if got := tm.tasks.Selected().Title; got != "q" {
		t.Fatalf("draft title = %q, want q", got)
	}
	cmd := tm.press("ctrl+c")
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit")
	}
}
