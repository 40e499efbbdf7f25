package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/rogelioGuerrero/apisupabase/internal/config"
	"github.com/rogelioGuerrero/apisupabase/internal/logging"
	"github.com/rogelioGuerrero/apisupabase/internal/store"
	"github.com/rogelioGuerrero/apisupabase/pkg/lambda"
)

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	cfg := &config.Config{
		Environment: "test",
		Port:        "8080",
		LogLevel:    "error",
		Store:       config.StoreConfig{Driver: store.DriverMemory},
	}

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	if container == nil {
		t.Fatal("Container is nil")
	}
	if container.Store == nil {
		t.Error("Store is nil")
	}
	if container.Logger == nil {
		t.Error("Logger is nil")
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

// TestNewContainer_InvalidStore verifies that store errors surface
func TestNewContainer_InvalidStore(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "error",
		Store:    config.StoreConfig{Driver: "unknown"},
	}

	if _, err := NewContainer(context.Background(), cfg); err == nil {
		t.Fatal("Expected an error for an unknown driver")
	}
}

// TestContainerHandlers verifies that the handlers share the container's store
func TestContainerHandlers(t *testing.T) {
	st := store.NewMemoryStore()
	container := NewContainerWithStore(&config.Config{}, logging.Discard(), st)

	resp := container.ProductoHandler().Handle(context.Background(), &lambda.Request{
		Method: http.MethodPost,
		Body:   []byte(`{"nombre":"Pan","precio":1}`),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create status = %d, body = %s", resp.StatusCode, resp.Body)
	}
	if st.Calls().Insert != 1 {
		t.Errorf("Insert calls = %d, want 1", st.Calls().Insert)
	}

	resp = container.HelloHandler().Handle(context.Background(), &lambda.Request{Method: http.MethodGet})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Hello status = %d", resp.StatusCode)
	}

	routes := container.RouterConfig()
	if routes.Productos == nil || routes.Hello == nil || routes.Logger == nil {
		t.Errorf("RouterConfig() = %+v", routes)
	}
}
