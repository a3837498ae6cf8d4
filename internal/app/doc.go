// Package app provides the orchestration layer for the taskpane application.
//
// # Overview
//
// This package wires together configuration, logging, the state registry and
// the UI. It is the composition root: every store is created here and handed
// to its consumers explicitly.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml, apply TASKPANE_* env
//	       ├─────> logging.New()        slog text log (or discard)
//	       ├─────> NewServices()        registry + task and view stores
//	       ├─────> prefs.Load()         theme (config theme wins)
//	       └─────> ui.Run()             Start TUI (blocks)
//
// There is no background work. Every store mutation happens inside the UI's
// Update, and the registry notifies the UI's bindings synchronously.
//
// # Error Handling
//
// Fatal errors (returned from Run, wrapped with %w):
//   - Config file unreadable or invalid, including a bad log_level
//   - Log file cannot be created
//   - A store fails to register
//   - The Bubble Tea program fails
//
// Recoverable errors stay in the UI: they show in the status line and are
// logged at error level. A broken prefs.toml falls back to the default theme.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatal(err)
//	}
package app
