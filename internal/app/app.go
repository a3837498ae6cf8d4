package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/taskpane/internal/appstate"
	"github.com/five82/taskpane/internal/config"
	"github.com/five82/taskpane/internal/logging"
	"github.com/five82/taskpane/internal/prefs"
	"github.com/five82/taskpane/internal/state"
	"github.com/five82/taskpane/internal/tasks"
	"github.com/five82/taskpane/internal/ui"
)

// Options configure the taskpane application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/taskpane/prefs.toml
	Locale     string // overrides config and environment when set
}

// Services are the stores behind the UI, wired to one registry.
type Services struct {
	Registry *state.Registry
	Tasks    *tasks.Store
	View     *appstate.Store
}

// NewServices creates the registry and registers both domain stores with it.
func NewServices(logger *slog.Logger) (Services, error) {
	reg := state.NewRegistry(state.WithLogger(logger))

	ts, err := tasks.New(reg)
	if err != nil {
		return Services{}, fmt.Errorf("init task store: %w", err)
	}
	vs, err := appstate.New(reg)
	if err != nil {
		return Services{}, fmt.Errorf("init view store: %w", err)
	}
	return Services{Registry: reg, Tasks: ts, View: vs}, nil
}

// Run boots the taskpane TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Locale != "" {
		cfg.Locale = opts.Locale
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger, closeLog, err := logging.New(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closeLog() }()

	svc, err := NewServices(logger)
	if err != nil {
		return err
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.PathIn(config.DefaultDir())
	}
	themeName := prefs.Load(prefsPath).Theme
	if cfg.Theme != "" {
		themeName = cfg.Theme
	}

	logger.Info("taskpane starting",
		"locale", cfg.Locale,
		"theme", themeName,
		"stores", svc.Registry.Keys(),
	)

	uiOpts := ui.Options{
		Context:   ctx,
		Registry:  svc.Registry,
		Tasks:     svc.Tasks,
		View:      svc.View,
		Locale:    cfg.Locale,
		ThemeName: themeName,
		PrefsPath: prefsPath,
		LogPath:   cfg.LogFile,
		Logger:    logger,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("taskpane stopped")
	return nil
}
