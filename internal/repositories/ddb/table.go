package ddb

import (
	"context"
	"fmt"

	"github.com/guregu/dynamo/v2"
	"github.com/guregu/dynamo/v2/dynamodbiface"
	"github.com/sirupsen/logrus"
)

// submissionKey describes the key schema of the submissions table
type submissionKey struct {
	ID string `dynamo:"id,hash"`
}

// EnsureTable creates the submissions table with on-demand billing when it does not exist.
// Only meant for local development against LocalStack.
func EnsureTable(ctx context.Context, client dynamodbiface.DynamoDBAPI, tableName string, logger *logrus.Logger) error {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	db := dynamo.NewFromIface(client)

	tables, err := db.ListTables().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	for _, name := range tables {
		if name == tableName {
			logger.WithField("table", tableName).Debug("Table already exists")
			return nil
		}
	}

	logger.WithField("table", tableName).Info("Creating submissions table")

	if err := db.CreateTable(tableName, submissionKey{}).OnDemand(true).Wait(ctx); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return nil
}
