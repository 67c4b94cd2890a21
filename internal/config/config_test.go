package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chemvista/internal/domain"
	"chemvista/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
	require.Equal(t, "http://localhost:5000", cfg.Search.BaseURL)
	require.Equal(t, 300*time.Millisecond, cfg.Search.Debounce())
	require.Equal(t, 2, cfg.Search.MinQueryLength)
	require.Equal(t, 200*time.Millisecond, cfg.UISettings.BlurGrace())
	require.Equal(t, NavigatePager, cfg.Navigation.Mode)
}

func TestLoadFromPathRequiresFile(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file not found")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Search.BaseURL = "https://chem.example.org/"
	cfg.Search.Limit = 25
	cfg.Navigation.Mode = NavigateBrowser
	cfg.UISettings.ShowExamples = false
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "version = 1")

	loaded, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, "https://chem.example.org", loaded.Search.BaseURL)
	require.Equal(t, 25, loaded.Search.Limit)
	require.Equal(t, NavigateBrowser, loaded.Navigation.Mode)
	require.False(t, loaded.UISettings.ShowExamples)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nlimit = 3\n\n[navigation]\nmode = \"teleport\"\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Search.Limit)
	require.Equal(t, 300, cfg.Search.DebounceMs)
	require.Equal(t, NavigatePager, cfg.Navigation.Mode, "unknown modes fall back to the default")
	require.True(t, cfg.UISettings.ShowExamples)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nbase_url = \"http://file\"\n"), 0644))
	t.Setenv("CHEMVISTA_SEARCH__BASE_URL", "http://env:8080")
	t.Setenv("CHEMVISTA_SEARCH__LIMIT", "7")

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	require.Equal(t, "http://env:8080", cfg.Search.BaseURL)
	require.Equal(t, 7, cfg.Search.Limit)
}

func TestMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search\nlimit = "), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
}

func TestPrefsThemeRoundTrip(t *testing.T) {
	store := NewPrefsStore(filepath.Join(t.TempDir(), "prefs.toml"))
	require.Equal(t, domain.ThemeLight, store.Theme(), "missing file means light")

	require.NoError(t, store.SetTheme(domain.ThemeDark))
	require.Equal(t, domain.ThemeDark, store.Theme())

	require.NoError(t, store.SetTheme(domain.ThemeDark.Toggle()))
	require.Equal(t, domain.ThemeLight, store.Theme())
}

func TestPrefsGarbageFallsBackToLight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"sepia\"\n"), 0644))
	require.Equal(t, domain.ThemeLight, NewPrefsStore(path).Theme())
}

func TestServiceWithBusPublishesLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	bus := eventbus.New(nil)

	got := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { got <- e })

	svc := NewConfigServiceWithBus(path, bus)
	cfg, err := svc.Load()
	require.NoError(t, err)
	require.NoError(t, svc.Save(cfg))
	bus.Close()

	require.Len(t, got, 2)
	require.Equal(t, eventbus.ConfigLoadedEvent{Path: path}, <-got)
	require.Equal(t, eventbus.ConfigSavedEvent{Path: path}, <-got)
}
