package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"chemvista/internal/domain"
)

// ThemeKey is the fixed name the theme preference is stored under
const ThemeKey = "theme"

// PrefsStore persists the display theme between sessions
type PrefsStore struct {
	path string
}

// NewPrefsStore creates a store backed by path. An empty path selects
// prefs.toml in Dir().
func NewPrefsStore(path string) *PrefsStore {
	if path == "" {
		path = filepath.Join(Dir(), "prefs.toml")
	}
	return &PrefsStore{path: path}
}

// Theme reads the stored theme. Missing or unreadable files give light.
func (p *PrefsStore) Theme() domain.Theme {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return domain.ThemeLight
	}
	var prefs map[string]string
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return domain.ThemeLight
	}
	return domain.ParseTheme(prefs[ThemeKey])
}

// SetTheme writes the theme preference
func (p *PrefsStore) SetTheme(theme domain.Theme) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create prefs directory: %w", err)
	}
	data, err := toml.Marshal(map[string]string{ThemeKey: string(theme)})
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
