// Package prefs persists itemdeck display preferences in
// ~/.config/itemdeck/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user display preferences.
type Prefs struct {
	Theme     string `toml:"theme"`
	CardWidth int    `toml:"card_width"`
}

const (
	defaultPrefsPath = "~/.config/itemdeck/prefs.toml"
	defaultTheme     = "Dracula"

	// Card width bounds in terminal cells.
	MinCardWidth     = 16
	MaxCardWidth     = 40
	DefaultCardWidth = 22
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the built-in preferences.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, CardWidth: DefaultCardWidth}
}

// Load reads preferences from path. Any problem reading or parsing the file
// yields defaults; preferences never block startup.
func Load(path string) Prefs {
	p := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		return p
	}

	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		p.Theme = theme
	}
	if stored.CardWidth != 0 {
		p.CardWidth = ClampCardWidth(stored.CardWidth)
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	p.CardWidth = ClampCardWidth(p.CardWidth)
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// ClampCardWidth keeps a card width within [MinCardWidth, MaxCardWidth].
func ClampCardWidth(w int) int {
	return max(MinCardWidth, min(w, MaxCardWidth))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
