package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds taskpane's startup settings. File values are read first and
// TASKPANE_* environment variables override them.
type Config struct {
	Locale   string `toml:"locale" env:"TASKPANE_LOCALE"`
	LogFile  string `toml:"log_file" env:"TASKPANE_LOG_FILE"`
	LogLevel string `toml:"log_level" env:"TASKPANE_LOG_LEVEL"`
	Theme    string `toml:"theme" env:"TASKPANE_THEME"`
}

const (
	defaultConfigPath = "~/.config/taskpane/config.toml"
	defaultLogFile    = "~/.local/state/taskpane/taskpane.log"
	defaultLocale     = "en-US"
	defaultLogLevel   = "info"

	// logDisabled as log_file turns file logging off.
	logDisabled = "-"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Load reads the config file at path (the default location when empty),
// falling back to defaults when it does not exist, then applies environment
// overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg.normalize()
}

// Default returns the configuration used when no file or environment is set.
func Default() Config {
	cfg, _ := Config{}.normalize()
	return cfg
}

func (c Config) normalize() (Config, error) {
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = defaultLocale
	}

	c.Theme = strings.TrimSpace(c.Theme)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if !validLevel(c.LogLevel) {
		return Config{}, fmt.Errorf("invalid log_level %q (want one of %s)", c.LogLevel, strings.Join(logLevels, ", "))
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	switch c.LogFile {
	case logDisabled:
		c.LogFile = ""
	case "":
		c.LogFile = mustExpand(defaultLogFile)
	default:
		expanded, err := expandPath(c.LogFile)
		if err != nil {
			return Config{}, fmt.Errorf("log_file: %w", err)
		}
		c.LogFile = expanded
	}
	return c, nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// DefaultDir is the directory holding config.toml and prefs.toml.
func DefaultDir() string {
	return filepath.Dir(mustExpand(defaultConfigPath))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
