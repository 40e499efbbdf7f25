package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rogelioGuerrero/apisupabase/internal/config"
)

// New creates the store selected by cfg.Driver
func New(ctx context.Context, cfg config.StoreConfig, logger *logrus.Logger) (ProductoStore, error) {
	if logger == nil {
		logger = logrus.New()
	}

	logger.WithFields(logrus.Fields{
		"driver": cfg.Driver,
		"table":  cfg.Table,
	}).Info("Initializing producto store")

	var (
		st  ProductoStore
		err error
	)
	switch cfg.Driver {
	case DriverPostgREST:
		st, err = NewPostgRESTStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Table, cfg.Timeout, nil, logger)
	case DriverPostgres:
		st, err = NewPostgresStore(ctx, cfg.DatabaseURL, cfg.Table, logger)
	case DriverSQLite:
		st, err = NewSQLiteStore(cfg.SQLitePath, logger)
	case DriverMemory:
		st = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s store: %w", cfg.Driver, err)
	}
	return st, nil
}
