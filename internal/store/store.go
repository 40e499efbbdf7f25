// Package store holds the clients of the remote producto collection.
//
// Every backend answers the same four calls the handlers need and reports
// failures as *Error. None of them retries.
package store

import (
	"context"

	"github.com/rogelioGuerrero/apisupabase/internal/models"
)

// Drivers accepted by New
const (
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
	DriverMemory    = "memory"
)

// Operation names used in errors and logs
const (
	OpSelect = "select"
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// ProductoStore is the data-access client of the producto collection
type ProductoStore interface {
	// SelectAll returns every row, unfiltered
	SelectAll(ctx context.Context) ([]models.Producto, error)

	// Insert creates a row and returns the inserted rows
	Insert(ctx context.Context, input models.ProductoInput) ([]models.Producto, error)

	// Update applies patch to the row matching id and returns the updated rows.
	// A nonexistent id yields an empty result, not an error.
	Update(ctx context.Context, id models.ID, patch models.ProductoPatch) ([]models.Producto, error)

	// Delete removes the row matching id and returns the deleted rows
	Delete(ctx context.Context, id models.ID) ([]models.Producto, error)

	Close() error
}
