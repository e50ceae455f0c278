package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"contact-form-api/internal/config"
	"contact-form-api/internal/database"
	"contact-form-api/internal/handlers"
	"contact-form-api/internal/repositories"
	"contact-form-api/internal/repositories/ddb"
	"contact-form-api/internal/repositories/sqlite"
	"contact-form-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *logrus.Logger
	SubmissionService services.SubmissionService
	SubmissionHandler *handlers.SubmissionHandler

	// Internal dependencies
	repo     repositories.SubmissionRepository
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container.
// The store client is created once here and shared by every request.
func NewContainer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	repo, err := newSubmissionRepository(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission repository: %w", err)
	}

	serviceContainer, err := services.NewServiceContainer(repo, &services.ServiceConfig{Logger: logger})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"store_type":  cfg.Store.Type,
		"environment": cfg.Environment,
	}).Info("Container initialised")

	return &Container{
		Config:            cfg,
		Logger:            logger,
		SubmissionService: serviceContainer.SubmissionService,
		SubmissionHandler: handlers.NewSubmissionHandler(serviceContainer.SubmissionService, logger),
		repo:              repo,
		services:          serviceContainer,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.repo == nil {
		return nil
	}
	return c.repo.Close()
}

func newSubmissionRepository(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repositories.SubmissionRepository, error) {
	switch cfg.Store.Type {
	case config.StoreTypeDynamoDB:
		client, err := ddb.NewClient(ctx, ddb.ClientConfig{
			Region:   cfg.Store.Region,
			Endpoint: cfg.Store.Endpoint,
		})
		if err != nil {
			return nil, repositories.ConnectionError(cfg.Store.TableName, err)
		}

		if cfg.Store.AutoCreate {
			if err := ddb.EnsureTable(ctx, client, cfg.Store.TableName, logger); err != nil {
				return nil, err
			}
		}

		return ddb.NewSubmissionRepository(client, cfg.Store.TableName, logger), nil

	case config.StoreTypeSQLite:
		connConfig := database.DefaultConnectionConfig()
		connConfig.DatabasePath = cfg.Store.SQLitePath
		connConfig.Logger = logger

		db, err := database.Open(ctx, connConfig)
		if err != nil {
			return nil, repositories.ConnectionError("submissions", err)
		}
		return sqlite.NewSubmissionRepository(db, logger), nil

	case config.StoreTypeMemory:
		return repositories.NewMemorySubmissionRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported store type %q: %w", cfg.Store.Type, repositories.ErrUnsupported)
	}
}
