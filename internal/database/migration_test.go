package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func tableExists(t *testing.T, path, table string) bool {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	require.NoError(t, err)
	return name == table
}

func TestMigrationManager_SQLiteUpDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productos.db")

	m, err := NewMigrationManager(DialectSQLite, path, quietLogger())
	require.NoError(t, err)

	info, err := m.GetMigrationInfo()
	require.NoError(t, err)
	assert.Equal(t, uint(0), info.Version)

	require.NoError(t, m.RunMigrations())
	assert.True(t, tableExists(t, path, "productos"))

	info, err = m.GetMigrationInfo()
	require.NoError(t, err)
	assert.Equal(t, uint(1), info.Version)
	assert.False(t, info.Dirty)

	// A second run has nothing to apply
	require.NoError(t, m.RunMigrations())

	require.NoError(t, m.RollbackMigration())
	assert.False(t, tableExists(t, path, "productos"))

	assert.Error(t, m.RollbackMigration())
}

func TestNewMigrationManager_UnknownDialect(t *testing.T) {
	_, err := NewMigrationManager("mysql", "db", nil)
	assert.Error(t, err)
}

func TestPgxURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@host:5432/db", want: "pgx5://u:p@host:5432/db"},
		{in: "postgresql://u:p@host/db?sslmode=require", want: "pgx5://u:p@host/db?sslmode=require"},
		{in: "pgx5://u@host/db", want: "pgx5://u@host/db"},
	}

	for _, tt := range tests {
		if got := pgxURL(tt.in); got != tt.want {
			t.Errorf("pgxURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
