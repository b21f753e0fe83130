package cmd

import (
	"fmt"

	"furnidata-manager/core/config"
	"furnidata-manager/core/database"
	"furnidata-manager/core/fetch"
	"furnidata-manager/core/furnidata"
	"furnidata-manager/core/logger"
	"furnidata-manager/core/metrics"
	"furnidata-manager/core/storage"
	"furnidata-manager/feature/audit"
	"furnidata-manager/feature/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps bundles what every command builds from the configuration.
type deps struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Recorder
	fetcher *fetch.Client
	store   storage.Client
	db      *gorm.DB
	catalog *catalog.Service
	audit   *audit.Service
}

type depsOptions struct {
	// database connects to the emulator database when set. Failure is not fatal.
	database bool
	// decoder overrides the default decoder.
	decoder *furnidata.Decoder
}

func newDeps(opts depsOptions) (*deps, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &deps{
		cfg:     cfg,
		logger:  logg,
		metrics: metrics.New(),
		fetcher: fetch.NewClient(cfg.Fetch),
	}

	// Storage is optional; URL sources work without it.
	if store, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Object storage unavailable", zap.Error(err))
	} else {
		rt.store = store
	}

	if opts.database {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			rt.db = conn
			rt.logger = logg.With(zap.String("server", cfg.Database.Emulator))
			rt.logger.Info("Connected to emulator database")
		}
	}

	defaults := catalog.Defaults{
		URL:    cfg.Fetch.URL,
		Bucket: cfg.Storage.Bucket,
		Object: cfg.Storage.Object,
	}
	rt.catalog = catalog.NewService(rt.fetcher, rt.store, defaults, opts.decoder, rt.metrics, rt.logger)
	rt.audit = audit.NewService(rt.catalog, rt.db, cfg.Database.Emulator, rt.logger)

	return rt, nil
}

func (rt *deps) Close() {
	rt.fetcher.CloseIdleConnections()
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = rt.logger.Sync()
}
