package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"chemvista/internal/catalog"
	"chemvista/internal/config"
	"chemvista/internal/eventbus"
	"chemvista/internal/logging"
	"chemvista/internal/nav"
	"chemvista/internal/searchapi"
)

// runtime holds the collaborators shared by every command
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	bus      eventbus.EventBus
	catalogs *catalog.Store
	client   *searchapi.Client
	pages    *nav.Pages
}

// setup loads the configuration and builds the shared collaborators. A
// missing config file is created with defaults.
func setup(opts *options) (*runtime, error) {
	// The log settings live in the config, so a first read happens before
	// the logger and bus exist.
	boot, err := config.NewConfigService(opts.cfgFile).Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(boot.Log.File, opts.debug || boot.Log.Debug)
	if err != nil {
		return nil, err
	}
	bus := eventbus.New(logger.Named("eventbus"))
	subscribeConfigLogging(bus, logger.Named("config"))

	fail := func(err error) (*runtime, error) {
		bus.Close()
		_ = logger.Sync()
		return nil, err
	}

	configSvc := config.NewConfigServiceWithBus(opts.cfgFile, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fail(err)
	}
	if _, statErr := os.Stat(configSvc.Path()); os.IsNotExist(statErr) {
		// First run: write the defaults so there is something to edit
		if err := configSvc.Save(cfg); err != nil {
			logger.Warn("could not write default config", zap.String("path", configSvc.Path()), zap.Error(err))
			fmt.Fprintf(os.Stderr, "Warning: could not write default config: %v\n", err)
		}
	}
	if opts.baseURL != "" {
		cfg.Search.BaseURL = opts.baseURL
	}

	logger.Info("configuration resolved",
		zap.String("path", configSvc.Path()),
		zap.String("base_url", cfg.Search.BaseURL),
		zap.String("navigation", cfg.Navigation.Mode))

	cat := catalog.Default()
	if path := cfg.Catalog.ElementsFile; path != "" {
		cat, err = catalog.LoadFile(path)
		if err != nil {
			return fail(fmt.Errorf("failed to load element data: %w", err))
		}
	}
	store := catalog.NewStore(cat)

	client := searchapi.NewClient(cfg.Search.BaseURL,
		searchapi.WithLimit(cfg.Search.Limit),
		searchapi.WithTimeout(cfg.Search.Timeout()),
		searchapi.WithLogger(logger.Named("searchapi")),
	)

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		bus:      bus,
		catalogs: store,
		client:   client,
		pages:    nav.NewPages(client, store, cfg.Search.Timeout(), logger.Named("pages")),
	}, nil
}

// subscribeConfigLogging records config file reads and writes
func subscribeConfigLogging(bus eventbus.EventBus, logger *zap.Logger) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.Info("config loaded", zap.String("path", event.Path))
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			logger.Info("config saved", zap.String("path", event.Path))
		}
	})
}

func (r *runtime) close() {
	r.bus.Close()
	_ = r.logger.Sync()
}
