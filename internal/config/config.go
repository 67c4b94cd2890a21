package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"chemvista/internal/eventbus"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: CHEMVISTA_SEARCH__BASE_URL sets search.base_url.
const EnvPrefix = "CHEMVISTA_"

// Navigation modes
const (
	NavigatePager   = "pager"
	NavigateBrowser = "browser"
)

// Config represents the application configuration
type Config struct {
	Version    int                `koanf:"version" toml:"version"`
	Search     SearchSettings     `koanf:"search" toml:"search"`
	UISettings UISettings         `koanf:"ui" toml:"ui"`
	Navigation NavigationSettings `koanf:"navigation" toml:"navigation"`
	Catalog    CatalogSettings    `koanf:"catalog" toml:"catalog"`
	Log        LogSettings        `koanf:"log" toml:"log"`
}

// SearchSettings configures the suggestion endpoint and debounce
type SearchSettings struct {
	BaseURL        string `koanf:"base_url" toml:"base_url"`
	Limit          int    `koanf:"limit" toml:"limit"`
	TimeoutMs      int    `koanf:"timeout_ms" toml:"timeout_ms"`
	DebounceMs     int    `koanf:"debounce_ms" toml:"debounce_ms"`
	MinQueryLength int    `koanf:"min_query_length" toml:"min_query_length"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	BlurGraceMs  int  `koanf:"blur_grace_ms" toml:"blur_grace_ms"`
	NoticeMs     int  `koanf:"notice_ms" toml:"notice_ms"`
	ShowExamples bool `koanf:"show_examples" toml:"show_examples"`
}

// NavigationSettings selects how page navigation is performed
type NavigationSettings struct {
	Mode string `koanf:"mode" toml:"mode"` // "pager" or "browser"
}

// CatalogSettings points at an optional element data override
type CatalogSettings struct {
	ElementsFile string `koanf:"elements_file" toml:"elements_file"`
	Watch        bool   `koanf:"watch" toml:"watch"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `koanf:"file" toml:"file"`
	Debug bool   `koanf:"debug" toml:"debug"`
}

func (s SearchSettings) Timeout() time.Duration  { return time.Duration(s.TimeoutMs) * time.Millisecond }
func (s SearchSettings) Debounce() time.Duration { return time.Duration(s.DebounceMs) * time.Millisecond }
func (u UISettings) BlurGrace() time.Duration    { return time.Duration(u.BlurGraceMs) * time.Millisecond }
func (u UISettings) NoticeDuration() time.Duration {
	return time.Duration(u.NoticeMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the chemvista directory under the user config dir
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "chemvista")
}

// NewConfigService creates a config service reading path. An empty path
// selects config.toml in Dir().
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(Dir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := load(cs.filePath, true)
	if err != nil {
		return nil, err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Unlike Load, the
// file must exist.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, false)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// load layers defaults, the TOML file and CHEMVISTA_* variables
func load(path string, allowMissing bool) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), tomlParser{}); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to access config %s: %w", path, err)
	} else if !allowMissing {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// normalize restores defaults for values that cannot be zero
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	c.Search.BaseURL = strings.TrimRight(c.Search.BaseURL, "/")
	if c.Search.BaseURL == "" {
		c.Search.BaseURL = def.Search.BaseURL
	}
	if c.Search.Limit <= 0 {
		c.Search.Limit = def.Search.Limit
	}
	if c.Search.TimeoutMs <= 0 {
		c.Search.TimeoutMs = def.Search.TimeoutMs
	}
	if c.Search.DebounceMs <= 0 {
		c.Search.DebounceMs = def.Search.DebounceMs
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = def.Search.MinQueryLength
	}
	if c.UISettings.BlurGraceMs <= 0 {
		c.UISettings.BlurGraceMs = def.UISettings.BlurGraceMs
	}
	if c.UISettings.NoticeMs <= 0 {
		c.UISettings.NoticeMs = def.UISettings.NoticeMs
	}
	switch c.Navigation.Mode {
	case NavigatePager, NavigateBrowser:
	default:
		c.Navigation.Mode = def.Navigation.Mode
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			BaseURL:        "http://localhost:5000",
			Limit:          10,
			TimeoutMs:      5000,
			DebounceMs:     300,
			MinQueryLength: 2,
		},
		UISettings: UISettings{
			BlurGraceMs:  200,
			NoticeMs:     5000,
			ShowExamples: true,
		},
		Navigation: NavigationSettings{Mode: NavigatePager},
		Catalog:    CatalogSettings{Watch: true},
		Log:        LogSettings{File: filepath.Join(Dir(), "chemvista.log")},
	}
}

// tomlParser lets koanf read TOML through go-toml
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (tomlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return toml.Marshal(o)
}
