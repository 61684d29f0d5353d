package main

import (
	"context"
	"fmt"

	"github.com/kmizuta/wordbook/internal/config"
	"github.com/kmizuta/wordbook/internal/database"
	"github.com/kmizuta/wordbook/internal/dictionary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openStore builds a store for the configured backend and loads the
// persisted collection. The returned cleanup must be called when done.
func openStore(ctx context.Context, cfg *config.Config) (*dictionary.Store, func(), error) {
	var repo dictionary.Repository
	cleanup := func() {}

	switch cfg.Storage.Backend {
	case "mysql":
		db, err := database.Open(cfg.Storage.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("database.Migrate > %w", err)
		}
		repo = dictionary.NewDBRepository(db)
		cleanup = func() {
			_ = db.Close()
		}
	default:
		repo = dictionary.NewFileRepository(cfg.Storage.File.Path)
	}

	store := dictionary.NewStore(repo)
	if err := store.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("store.Load > %w", err)
	}
	return store, cleanup, nil
}
