package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/rogelioGuerrero/apisupabase/internal/database"
	"github.com/rogelioGuerrero/apisupabase/internal/models"
)

// SQLiteStore emulates the remote collection in a local SQLite file
type SQLiteStore struct {
	db      *sql.DB
	table   string
	columns string
	logger  *logrus.Logger
}

// NewSQLiteStore opens path, creating it if needed, and migrates the schema
func NewSQLiteStore(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logrus.New()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	migrations, err := database.NewMigrationManager(database.DialectSQLite, path, logger)
	if err != nil {
		return nil, err
	}
	if err := migrations.RunMigrations(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	logger.WithField("db_path", path).Info("SQLite store ready")

	return &SQLiteStore{
		db:      db,
		table:   models.Table,
		columns: "CAST(id AS TEXT), nombre, precio, descripcion",
		logger:  logger,
	}, nil
}

// SelectAll returns every row ordered by id
func (s *SQLiteStore) SelectAll(ctx context.Context) ([]models.Producto, error) {
	query := fmt.Sprintf("SELECT %s FROM productos ORDER BY id", s.columns)
	return s.query(ctx, OpSelect, query)
}

// Insert creates a row and returns it
func (s *SQLiteStore) Insert(ctx context.Context, input models.ProductoInput) ([]models.Producto, error) {
	query := fmt.Sprintf(
		"INSERT INTO productos (nombre, precio, descripcion) VALUES (?, ?, ?) RETURNING %s",
		s.columns,
	)
	return s.query(ctx, OpInsert, query, input.Nombre, input.Precio, input.Descripcion)
}

// Update applies the present fields of patch to the row matching id
func (s *SQLiteStore) Update(ctx context.Context, id models.ID, patch models.ProductoPatch) ([]models.Producto, error) {
	cols, args := patch.Columns()
	if len(cols) == 0 {
		return nil, NewError(OpUpdate, s.table, "", errors.New("empty patch"))
	}

	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = col + " = ?"
	}
	args = append(args, id.String())

	query := fmt.Sprintf(
		"UPDATE productos SET %s WHERE id = ? RETURNING %s",
		strings.Join(sets, ", "), s.columns,
	)
	return s.query(ctx, OpUpdate, query, args...)
}

// Delete removes the row matching id and returns it
func (s *SQLiteStore) Delete(ctx context.Context, id models.ID) ([]models.Producto, error) {
	query := fmt.Sprintf("DELETE FROM productos WHERE id = ? RETURNING %s", s.columns)
	return s.query(ctx, OpDelete, query, id.String())
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) query(ctx context.Context, op, query string, args ...any) ([]models.Producto, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap(op, err)
	}
	defer rows.Close()

	productos := []models.Producto{}
	for rows.Next() {
		var p models.Producto
		var id string
		if err := rows.Scan(&id, &p.Nombre, &p.Precio, &p.Descripcion); err != nil {
			return nil, s.wrap(op, err)
		}
		p.ID = models.ID(id)
		productos = append(productos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrap(op, err)
	}
	return productos, nil
}

func (s *SQLiteStore) wrap(op string, err error) error {
	s.logger.WithError(err).WithFields(logrus.Fields{"op": op, "table": s.table}).Debug("SQLite call failed")

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return NewError(op, s.table, strconv.Itoa(int(sqliteErr.ExtendedCode)), errors.New(sqliteErr.Error()))
	}
	return NewError(op, s.table, "", err)
}

// sqliteDSN enables WAL and waits on a busy database instead of failing
func sqliteDSN(path string) string {
	options := []string{
		"_journal_mode=WAL",
		"_foreign_keys=on",
		"_busy_timeout=5000",
	}
	return path + "?" + strings.Join(options, "&")
}
