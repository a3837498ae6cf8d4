// Package prefs persists taskpane's UI preferences in prefs.toml next to the
// config file. Only presentation settings live here; task data is never
// written to disk.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	// FileName is the preferences file inside the config directory.
	FileName = "prefs.toml"

	// DefaultTheme is used when nothing valid is stored.
	DefaultTheme = "Nightfox"
)

// PathIn returns the preferences file path inside dir.
func PathIn(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads preferences from path. Any problem reading or parsing the file
// yields the defaults; preferences are never worth failing startup over.
func Load(path string) Prefs {
	p := Prefs{Theme: DefaultTheme}
	if strings.TrimSpace(path) == "" {
		return p
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Prefs{Theme: DefaultTheme}
	}

	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	return p
}

// Save writes p to path, creating parent directories. The file is replaced
// through a rename so a crash never leaves a truncated file behind.
func Save(path string, p Prefs) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("save prefs: path is empty")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(bytes); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
