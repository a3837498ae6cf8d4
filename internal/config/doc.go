// Package config loads taskpane's startup configuration.
//
// # Resolution Order
//
//  1. Defaults
//  2. The TOML file (an explicit path, or ~/.config/taskpane/config.toml)
//  3. TASKPANE_* environment variables
//
// A missing config file is not an error. Empty values fall back to defaults
// after trimming.
//
// # TOML Format
//
//	locale = "de-DE"
//	log_file = "~/.local/state/taskpane/taskpane.log"
//	log_level = "debug"
//	theme = "Kanagawa"
//
// All fields are optional. log_file = "-" turns file logging off. theme, when
// set, takes precedence over the theme saved in prefs.toml.
//
// # Environment
//
//   - TASKPANE_LOCALE
//   - TASKPANE_LOG_FILE
//   - TASKPANE_LOG_LEVEL
//   - TASKPANE_THEME
//
// # Errors
//
// Load fails on path expansion errors, unreadable files ("open config",
// "read config"), invalid TOML ("parse config"), and unknown log levels.
package config
