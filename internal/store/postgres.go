package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/rogelioGuerrero/apisupabase/internal/models"
)

// PostgresStore talks to the Postgres database behind Supabase directly
type PostgresStore struct {
	pool    *pgxpool.Pool
	table   string
	ident   string
	columns string
	logger  *logrus.Logger
}

// NewPostgresStore opens a pool on databaseURL and checks it answers.
// A short timeout keeps a cold start from hanging on an unreachable database.
func NewPostgresStore(ctx context.Context, databaseURL, table string, logger *logrus.Logger) (*PostgresStore, error) {
	if table == "" {
		table = models.Table
	}
	if logger == nil {
		logger = logrus.New()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{
		pool:    pool,
		table:   table,
		ident:   pgx.Identifier{table}.Sanitize(),
		columns: "id::text, nombre, precio::float8, descripcion",
		logger:  logger,
	}, nil
}

// SelectAll returns every row ordered by id
func (s *PostgresStore) SelectAll(ctx context.Context) ([]models.Producto, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", s.columns, s.ident)
	return s.query(ctx, OpSelect, query)
}

// Insert creates a row and returns it
func (s *PostgresStore) Insert(ctx context.Context, input models.ProductoInput) ([]models.Producto, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (nombre, precio, descripcion) VALUES ($1, $2, $3) RETURNING %s",
		s.ident, s.columns,
	)
	return s.query(ctx, OpInsert, query, input.Nombre, input.Precio, input.Descripcion)
}

// Update applies the present fields of patch to the row matching id
func (s *PostgresStore) Update(ctx context.Context, id models.ID, patch models.ProductoPatch) ([]models.Producto, error) {
	cols, args := patch.Columns()
	if len(cols) == 0 {
		return nil, NewError(OpUpdate, s.table, "", errors.New("empty patch"))
	}

	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args = append(args, id.String())

	// id is compared as text so bigint and uuid keys both match
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id::text = $%d RETURNING %s",
		s.ident, strings.Join(sets, ", "), len(args), s.columns,
	)
	return s.query(ctx, OpUpdate, query, args...)
}

// Delete removes the row matching id and returns it
func (s *PostgresStore) Delete(ctx context.Context, id models.ID) ([]models.Producto, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id::text = $1 RETURNING %s", s.ident, s.columns)
	return s.query(ctx, OpDelete, query, id.String())
}

// Close closes the pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) query(ctx context.Context, op, query string, args ...any) ([]models.Producto, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, s.wrap(op, err)
	}

	productos, err := pgx.CollectRows(rows, scanProducto)
	if err != nil {
		return nil, s.wrap(op, err)
	}
	if productos == nil {
		productos = []models.Producto{}
	}
	return productos, nil
}

func (s *PostgresStore) wrap(op string, err error) error {
	s.logger.WithError(err).WithFields(logrus.Fields{"op": op, "table": s.table}).Debug("Postgres call failed")

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return NewError(op, s.table, pgErr.Code, errors.New(pgErr.Message))
	}
	return NewError(op, s.table, "", err)
}

func scanProducto(row pgx.CollectableRow) (models.Producto, error) {
	var p models.Producto
	var id string
	if err := row.Scan(&id, &p.Nombre, &p.Precio, &p.Descripcion); err != nil {
		return models.Producto{}, err
	}
	p.ID = models.ID(id)
	return p, nil
}
