package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"chemvista/internal/catalog"
	"chemvista/internal/config"
	"chemvista/internal/eventbus"
	"chemvista/internal/nav"
	"chemvista/internal/suggest"
	"chemvista/internal/ui"
)

func runTUI(ctx context.Context, opts *options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	prefs := config.NewPrefsStore("")
	theme := prefs.Theme()
	subscribePrefs(rt.bus, prefs, rt.logger)
	subscribeLogging(rt.bus, rt.logger)

	navigator := newNavigator(rt)
	model := ui.NewModel(rt.bus, rt.cfg, ui.Options{
		Catalogs:  rt.catalogs,
		Searcher:  rt.client,
		Navigator: navigator,
		Theme:     theme,
		Logger:    rt.logger.Named("ui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward the events the screen cares about
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	rt.bus.Subscribe(eventbus.EventCatalogReloaded, forward)
	rt.bus.Subscribe(eventbus.EventError, forward)

	if path := rt.cfg.Catalog.ElementsFile; path != "" && rt.cfg.Catalog.Watch {
		w := newCatalogWatcher(path, rt)
		if err := w.Start(ctx); err != nil {
			rt.logger.Warn("catalog watch disabled", zap.Error(err))
		} else {
			defer w.Stop()
		}
	}

	rt.logger.Info("starting UI", zap.String("theme", string(theme)))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		rt.logger.Error("error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	rt.logger.Info("UI exited normally")
	return nil
}

func newNavigator(rt *runtime) suggest.Navigator {
	logger := rt.logger.Named("nav")
	if rt.cfg.Navigation.Mode == config.NavigateBrowser {
		return nav.NewBrowserNavigator(rt.cfg.Search.BaseURL, nil, logger)
	}
	return nav.NewPagerNavigator(rt.pages, nil, logger)
}

func newCatalogWatcher(path string, rt *runtime) *catalog.Watcher {
	return catalog.NewWatcher(path,
		func(c *catalog.Catalog) {
			rt.catalogs.Swap(c)
			rt.bus.Publish(eventbus.CatalogReloadedEvent{Path: path, Elements: c.Len()})
		},
		func(err error) {
			rt.bus.Publish(eventbus.ErrorEvent{Message: "Element data not reloaded: " + err.Error(), Err: err})
		},
		catalog.WithLogger(rt.logger.Named("catalog")),
	)
}

// subscribePrefs persists the theme whenever it is toggled
func subscribePrefs(bus eventbus.EventBus, prefs *config.PrefsStore, logger *zap.Logger) {
	bus.Subscribe(eventbus.EventThemeChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ThemeChangedEvent)
		if !ok {
			return
		}
		if err := prefs.SetTheme(event.Theme); err != nil {
			logger.Error("failed to save theme", zap.Error(err))
			return
		}
		logger.Debug("theme saved", zap.String("theme", string(event.Theme)))
	})
}

// subscribeLogging records events that never reach the screen
func subscribeLogging(bus eventbus.EventBus, logger *zap.Logger) {
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok {
			logger.Warn("suggestion fetch failed",
				zap.String("query", event.Query), zap.Uint64("seq", event.Seq), zap.Error(event.Err))
		}
	})
	bus.Subscribe(eventbus.EventNavigated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.NavigatedEvent); ok {
			logger.Info("navigated", zap.String("path", event.Path))
		}
	})
}
