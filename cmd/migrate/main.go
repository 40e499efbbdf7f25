package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rogelioGuerrero/apisupabase/internal/config"
	"github.com/rogelioGuerrero/apisupabase/internal/database"
	"github.com/rogelioGuerrero/apisupabase/internal/logging"
	"github.com/rogelioGuerrero/apisupabase/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	defaultDialect, defaultTarget := database.DialectSQLite, cfg.Store.SQLitePath
	if cfg.Store.Driver == store.DriverPostgres {
		defaultDialect, defaultTarget = database.DialectPostgres, cfg.Store.DatabaseURL
	}

	var (
		dialect = flag.String("dialect", defaultDialect, "Database dialect: postgres or sqlite")
		target  = flag.String("target", defaultTarget, "postgres:// URL or sqlite file path")
		action  = flag.String("action", "up", "Migration action: up, down, version")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	logger := logging.New(level, false)

	logger.WithFields(logrus.Fields{
		"dialect": *dialect,
		"action":  *action,
	}).Info("Starting migration tool")

	if *target == "" {
		logger.Fatal("No migration target; set -target, DATABASE_URL or SQLITE_PATH")
	}

	migrationManager, err := database.NewMigrationManager(*dialect, *target, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create migration manager")
	}

	switch *action {
	case "up":
		if err := migrationManager.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := migrationManager.RollbackMigration(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "version":
		info, err := migrationManager.GetMigrationInfo()
		if err != nil {
			logger.WithError(err).Fatal("Failed to get migration version")
		}
		fmt.Printf("Migration Status:\n")
		fmt.Printf("  Version: %d\n", info.Version)
		fmt.Printf("  Dirty: %t\n", info.Dirty)
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, version")
	}

	logger.Info("Migration tool completed successfully")
}
