package main

import (
	"context"
	"flag"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"contact-form-api/internal/config"
	"contact-form-api/internal/database"
	"contact-form-api/internal/repositories/ddb"
)

// Prepares local submission stores: SQLite schema migrations and the DynamoDB table
// on LocalStack or a development account.
func main() {
	var (
		store   = flag.String("store", config.StoreTypeSQLite, "Store to prepare: sqlite or dynamodb")
		action  = flag.String("action", "up", "sqlite actions: up, down, version; dynamodb actions: create-table")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Setup logger
	logger := cfg.NewLogger(false)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger.WithFields(logrus.Fields{
		"store":  *store,
		"action": *action,
	}).Info("Starting migration tool")

	switch *store {
	case config.StoreTypeSQLite:
		runSQLite(ctx, cfg, *action, logger)
	case config.StoreTypeDynamoDB:
		runDynamoDB(ctx, cfg, *action, logger)
	default:
		logger.WithField("store", *store).Fatal("Unknown store. Use: sqlite, dynamodb")
	}

	logger.Info("Migration tool completed successfully")
}

func runSQLite(ctx context.Context, cfg *config.Config, action string, logger *logrus.Logger) {
	absDBPath, err := filepath.Abs(cfg.Store.SQLitePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	connConfig := database.DefaultConnectionConfig()
	connConfig.DatabasePath = absDBPath
	connConfig.Logger = logger

	// Open applies pending migrations, which covers the "up" action
	db, err := database.Open(ctx, connConfig)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()

	manager := database.NewMigrationManager(db, logger)

	switch action {
	case "up":
	case "down":
		if err := manager.Rollback(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "version":
	default:
		logger.WithField("action", action).Fatal("Unknown action. Use: up, down, version")
	}

	version, err := manager.Version()
	if err != nil {
		logger.WithError(err).Fatal("Failed to get migration version")
	}
	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"version": version,
	}).Info("Migration status")
}

func runDynamoDB(ctx context.Context, cfg *config.Config, action string, logger *logrus.Logger) {
	if action != "create-table" {
		logger.WithField("action", action).Fatal("Unknown action. Use: create-table")
	}

	client, err := ddb.NewClient(ctx, ddb.ClientConfig{
		Region:   cfg.Store.Region,
		Endpoint: cfg.Store.Endpoint,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create DynamoDB client")
	}

	if err := ddb.EnsureTable(ctx, client, cfg.Store.TableName, logger); err != nil {
		logger.WithError(err).Fatal("Failed to create table")
	}
}
