package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/client"
	"github.com/jasperwreed/story-memory/internal/config"
	"github.com/jasperwreed/story-memory/internal/logging"
	"github.com/jasperwreed/story-memory/internal/storage"
	"github.com/jasperwreed/story-memory/internal/tui"
)

// env is what every command starts from: configuration with the persistent
// flags applied, and a logger.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadEnv() (*env, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if userSeq != 0 {
		cfg.User.Seq = userSeq
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger}, nil
}

// source opens the configured data source: the API when a base URL is set,
// the local database otherwise. The returned func releases it.
func (e *env) source() (tui.Source, func(), error) {
	if e.cfg.API.BaseURL != "" {
		c, err := client.New(e.cfg.API.BaseURL, e.cfg.API.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return c, func() {}, nil
	}

	store, err := e.store()
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			e.logger.Warn("failed to close database", zap.Error(err))
		}
	}, nil
}

func (e *env) store() (*storage.SQLiteStore, error) {
	store, err := storage.NewSQLiteStore(e.cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

func (e *env) user() (int64, error) {
	if err := NewValidator().ValidateUser(e.cfg.User.Seq); err != nil {
		return 0, err
	}
	return e.cfg.User.Seq, nil
}

func (e *env) sync() {
	_ = e.logger.Sync()
}
