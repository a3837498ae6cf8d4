package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taskpane/internal/appstate"
	"github.com/five82/taskpane/internal/i18n"
	"github.com/five82/taskpane/internal/prefs"
	"github.com/five82/taskpane/internal/state"
	"github.com/five82/taskpane/internal/tasks"
)

var errMissingStores = errors.New("ui: registry, task store and view store are required")

// Options configures the UI.
type Options struct {
	Context   context.Context
	Registry  *state.Registry
	Tasks     *tasks.Store
	View      *appstate.Store
	Locale    string
	ThemeName string
	PrefsPath string
	LogPath   string
	Logger    *slog.Logger

	// NewID assigns ids to drafts on their first save. Defaults to uuid.NewString.
	NewID func() string

	// Clipboard receives copied task ids. Defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	keys      keyMap
	prefsPath string
	logPath   string
	locale    string
	logger    *slog.Logger
	copy      func(string) error

	// Stores and their cached view
	tasks *tasks.Store
	view  *appstate.Store
	ctrl  controller
	binds *bindings

	// Resource text, nil until loaded
	loc *i18n.Localizer

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	cursor   int
	cursorID string
	editor   editor
	notice   string
	lastErr  error
	showHelp bool

	// Log overlay
	showLogs bool
	logs     logView
}

// New creates a new Bubble Tea model bound to the stores in opts.
func New(opts Options) (Model, error) {
	if opts.Registry == nil || opts.Tasks == nil || opts.View == nil {
		return Model{}, errMissingStores
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	locale := opts.Locale
	if locale == "" {
		locale = i18n.BaseLocale
	}

	m := Model{
		ctx:       ctx,
		keys:      DefaultKeyMap(),
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		locale:    locale,
		logger:    logger,
		copy:      opts.Clipboard,
		tasks:     opts.Tasks,
		view:      opts.View,
		ctrl:      newController(opts.Tasks, opts.View, opts.NewID, logger),
		binds:     newBindings(opts.Registry, opts.Tasks, opts.View),
		theme:     GetTheme(themeName),
		editor:    newEditor(),
		logs:      newLogView(),
	}
	m.sync()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadBundleCmd(m.locale)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var next tea.Model
		next, cmd = m.handleKey(msg)
		m = next.(Model)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case bundleLoadedMsg:
		if msg.err != nil {
			m = m.fail(fmt.Errorf("load resource text: %w", msg.err))
			break
		}
		m.loc = msg.loc
		m.logger.Debug("resource text loaded", "locale", msg.loc.Locale())

	case copiedMsg:
		if msg.err != nil {
			m = m.fail(fmt.Errorf("copy id: %w", msg.err))
			break
		}
		m.notice = m.text("NOTICE_COPIED", msg.id)

	case logLinesMsg:
		if msg.err != nil {
			m = m.fail(fmt.Errorf("read log: %w", msg.err))
			break
		}
		m.logs.lines = msg.lines
		m.logs.refresh(m.theme)

	case logTickMsg:
		// Keep polling only while the overlay is open
		if !m.showLogs {
			m.logs.ticking = false
			break
		}
		cmd = tea.Batch(readLogsCmd(m.logPath), logTickCmd())
	}

	m.sync()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	if m.showLogs {
		b.WriteString(m.renderLogs(m.contentHeight()))
	} else {
		b.WriteString(m.renderContent())
	}
	return b.String()
}

// handleKey processes keyboard input. The editor takes every key while it is
// open; otherwise overlays and global keys come before the list.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.notice, m.lastErr = "", nil

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	if m.binds.editorOpen() {
		return m.handleEditorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme(), nil
	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		if m.logs.ticking {
			return m, readLogsCmd(m.logPath)
		}
		m.logs.ticking = true
		return m, tea.Batch(readLogsCmd(m.logPath), logTickCmd())
	}

	return m.handleListKey(msg)
}

func (m Model) cycleTheme() Model {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.logs.refresh(m.theme)
	if m.prefsPath == "" {
		return m
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		return m.fail(fmt.Errorf("save prefs: %w", err))
	}
	return m
}

// sync pulls invalidated store data into the view and keeps the widgets
// consistent with it.
func (m *Model) sync() {
	if m.binds.sync() {
		m.editor.load(m.binds.selected)
	}
	m.clampCursor()
	m.resize()
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	h := m.contentHeight()
	_, editorWidth := paneWidths(m.binds.layout, m.width, m.binds.editorOpen())
	if editorWidth > 0 {
		m.editor.resize(editorWidth, h)
	}
	m.logs.resize(m.width-4, h-2)
}

// contentHeight is the height below the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 3)
}

// renderContent renders the list and, when open, the editor side by side.
func (m Model) renderContent() string {
	h := m.contentHeight()
	listWidth, editorWidth := paneWidths(m.binds.layout, m.width, m.binds.editorOpen())
	switch {
	case editorWidth == 0:
		return m.renderList(m.width, h, true)
	case listWidth == 0:
		return m.renderEditor(editorWidth, h)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderList(listWidth, h, false),
			m.renderEditor(editorWidth, h))
	}
}

// text looks up resource text. Before the bundle arrives the key itself is
// shown.
func (m Model) text(msgKey string, args ...any) string {
	if m.loc == nil {
		return msgKey
	}
	return m.loc.Text(msgKey, args...)
}

// fail records err for the status line and logs it.
func (m Model) fail(err error) Model {
	m.lastErr = err
	m.notice = ""
	m.logger.Error("operation failed", "error", err)
	return m
}

// report is fail for optional errors.
func (m Model) report(err error) Model {
	if err == nil {
		return m
	}
	return m.fail(err)
}

// Messages

type bundleLoadedMsg struct {
	loc *i18n.Localizer
	err error
}

// Commands

func loadBundleCmd(locale string) tea.Cmd {
	return func() tea.Msg {
		bundle, err := i18n.LoadEmbedded()
		if err != nil {
			return bundleLoadedMsg{err: err}
		}
		return bundleLoadedMsg{loc: bundle.Localizer(locale)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.binds.close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
