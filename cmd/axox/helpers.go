package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/config"
	"github.com/Veraticus/axox-storefront/internal/storage"
)

// loadConfig resolves the typed configuration from viper.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("invalid configuration", err)
	}
	return cfg, nil
}

// initStorage opens and migrates the catalog database at path.
func initStorage(ctx context.Context, path string) (*storage.SQLiteStorage, error) {
	if path == "" {
		return nil, common.NewUserError("catalog.database is not set", common.ErrMissingConfig)
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(path))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// loadCatalog returns the configured catalog: the database when
// catalog.database is set, otherwise the built-in dataset.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Database == "" {
		return catalog.Default(), nil
	}

	store, err := initStorage(ctx, cfg.Catalog.Database)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close catalog database", "error", closeErr)
		}
	}()

	cat, err := storage.LoadCatalog(ctx, store)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded catalog from database", "path", store.Path(), "products", cat.Len())
	return cat, nil
}

// newAdvisor builds the advisor for cat from cfg.
func newAdvisor(cfg *config.Config, cat *catalog.Catalog) (*advisor.Advisor, error) {
	adv, err := advisor.New(advisor.Config{
		BackendURL:  cfg.Advisor.BackendURL,
		Timeout:     cfg.Advisor.Timeout,
		MaxAttempts: cfg.Advisor.MaxRetries,
		RateLimit:   cfg.Advisor.RateLimit,
		CacheTTL:    cfg.Advisor.CacheTTL,
	}, cat, slog.Default())
	if err != nil {
		return nil, err
	}

	if adv.HasBackend() {
		slog.Debug("Using recommendation backend", "url", cfg.Advisor.BackendURL)
	} else {
		slog.Debug("No recommendation backend configured, answering locally")
	}
	return adv, nil
}

// setup loads config, catalog and advisor in one go for the query commands.
func setup(ctx context.Context) (*config.Config, *catalog.Catalog, *advisor.Advisor, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	adv, err := newAdvisor(cfg, cat)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, cat, adv, nil
}
