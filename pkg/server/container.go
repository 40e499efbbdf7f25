package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rogelioGuerrero/apisupabase/internal/config"
	"github.com/rogelioGuerrero/apisupabase/internal/handlers"
	"github.com/rogelioGuerrero/apisupabase/internal/logging"
	"github.com/rogelioGuerrero/apisupabase/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  store.ProductoStore
}

// NewContainer creates a new dependency injection container. Logs are
// JSON in production and on serverless runtimes.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	serverless := config.GetServerlessConfig().IsServerless
	logger := logging.New(cfg.LogLevel, cfg.IsProduction() || serverless)

	st, err := store.New(ctx, cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"mode":        config.GetDeploymentMode(),
		"driver":      cfg.Store.Driver,
	}).Info("Container initialized")

	return NewContainerWithStore(cfg, logger, st), nil
}

// NewContainerWithStore creates a container around an existing store
func NewContainerWithStore(cfg *config.Config, logger *logrus.Logger, st store.ProductoStore) *Container {
	if logger == nil {
		logger = logging.New(cfg.LogLevel, cfg.IsProduction())
	}
	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  st,
	}
}

// ProductoHandler builds the productos handler over the container's store
func (c *Container) ProductoHandler() *handlers.ProductoHandler {
	return handlers.NewProductoHandler(c.Store, c.Logger)
}

// HelloHandler builds the health check handler
func (c *Container) HelloHandler() *handlers.HelloHandler {
	return handlers.NewHelloHandler()
}

// RouterConfig wires the container's handlers for the local server
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		Productos: c.ProductoHandler(),
		Hello:     c.HelloHandler(),
		Logger:    c.Logger,
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}
	return nil
}
