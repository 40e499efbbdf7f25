package database

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// Dialects with embedded migrations
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// MigrationManager applies the embedded schema of the productos table
type MigrationManager struct {
	dialect     string
	databaseURL string
	logger      *logrus.Logger
}

// MigrationInfo contains the schema version of a database
type MigrationInfo struct {
	Version uint
	Dirty   bool
}

// NewMigrationManager creates a migration manager. For postgres the target
// is a postgres:// connection string, for sqlite it is a file path.
func NewMigrationManager(dialect, target string, logger *logrus.Logger) (*MigrationManager, error) {
	if logger == nil {
		logger = logrus.New()
	}

	var databaseURL string
	switch dialect {
	case DialectPostgres:
		databaseURL = pgxURL(target)
	case DialectSQLite:
		databaseURL = "sqlite3://" + target
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}

	return &MigrationManager{
		dialect:     dialect,
		databaseURL: databaseURL,
		logger:      logger,
	}, nil
}

// RunMigrations executes all pending migrations
func (m *MigrationManager) RunMigrations() error {
	m.logger.WithField("dialect", m.dialect).Info("Starting database migrations")

	mig, err := m.initMigrate()
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}

	m.logger.WithField("new_version", version).Info("Migrations completed successfully")
	return nil
}

// RollbackMigration rolls back the last migration
func (m *MigrationManager) RollbackMigration() error {
	mig, err := m.initMigrate()
	if err != nil {
		return err
	}
	defer mig.Close()

	if _, _, err := mig.Version(); err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("no migrations to rollback")
		}
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if err := mig.Steps(-1); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	m.logger.WithField("dialect", m.dialect).Info("Rolled back last migration")
	return nil
}

// GetMigrationInfo returns the current schema version.
// A database without migrations reports version 0.
func (m *MigrationManager) GetMigrationInfo() (*MigrationInfo, error) {
	mig, err := m.initMigrate()
	if err != nil {
		return nil, err
	}
	defer mig.Close()

	version, dirty, err := mig.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return &MigrationInfo{}, nil
		}
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}

	return &MigrationInfo{Version: version, Dirty: dirty}, nil
}

func (m *MigrationManager) initMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, path.Join("migrations", m.dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, m.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}
	return mig, nil
}

// pgxURL rewrites a postgres connection string for the pgx5 migrate driver
func pgxURL(databaseURL string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}
