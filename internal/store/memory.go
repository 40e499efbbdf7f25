package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rogelioGuerrero/apisupabase/internal/models"
)

// Calls counts the store calls received by a MemoryStore
type Calls struct {
	Select int
	Insert int
	Update int
	Delete int
}

// Mutations returns the number of insert, update and delete calls
func (c Calls) Mutations() int {
	return c.Insert + c.Update + c.Delete
}

// MemoryStore is an in-memory implementation of ProductoStore for local
// runs and tests. It assigns uuid identifiers.
type MemoryStore struct {
	mu    sync.RWMutex
	rows  map[models.ID]models.Producto
	order []models.ID
	calls Calls
}

// NewMemoryStore creates a MemoryStore holding the given rows
func NewMemoryStore(seed ...models.Producto) *MemoryStore {
	m := &MemoryStore{
		rows: make(map[models.ID]models.Producto),
	}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = models.ID(uuid.New().String())
		}
		m.rows[p.ID] = p
		m.order = append(m.order, p.ID)
	}
	return m
}

// SelectAll returns every row in insertion order
func (m *MemoryStore) SelectAll(ctx context.Context) ([]models.Producto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Select++

	productos := make([]models.Producto, 0, len(m.order))
	for _, id := range m.order {
		productos = append(productos, copyProducto(m.rows[id]))
	}
	return productos, nil
}

// Insert stores a new row with a fresh id
func (m *MemoryStore) Insert(ctx context.Context, input models.ProductoInput) ([]models.Producto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Insert++

	p := models.Producto{
		ID:     models.ID(uuid.New().String()),
		Nombre: input.Nombre,
		Precio: input.Precio,
	}
	if input.Descripcion != nil {
		d := *input.Descripcion
		p.Descripcion = &d
	}

	m.rows[p.ID] = p
	m.order = append(m.order, p.ID)
	return []models.Producto{copyProducto(p)}, nil
}

// Update patches the row matching id. A nonexistent id matches nothing.
func (m *MemoryStore) Update(ctx context.Context, id models.ID, patch models.ProductoPatch) ([]models.Producto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Update++

	p, ok := m.rows[id]
	if !ok {
		return []models.Producto{}, nil
	}
	patch.Apply(&p)
	m.rows[id] = p
	return []models.Producto{copyProducto(p)}, nil
}

// Delete removes the row matching id. A nonexistent id matches nothing.
func (m *MemoryStore) Delete(ctx context.Context, id models.ID) ([]models.Producto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Delete++

	p, ok := m.rows[id]
	if !ok {
		return []models.Producto{}, nil
	}
	delete(m.rows, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return []models.Producto{copyProducto(p)}, nil
}

// Close implements ProductoStore.Close
func (m *MemoryStore) Close() error {
	return nil
}

// Calls returns the calls received so far
func (m *MemoryStore) Calls() Calls {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func copyProducto(p models.Producto) models.Producto {
	if p.Descripcion != nil {
		d := *p.Descripcion
		p.Descripcion = &d
	}
	return p
}
