package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"contact-form-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	SubmissionService SubmissionService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Logger *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repo repositories.SubmissionRepository, config *ServiceConfig) (*ServiceContainer, error) {
	if repo == nil {
		return nil, fmt.Errorf("submission repository cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{Logger: logrus.StandardLogger()}
	}

	return &ServiceContainer{
		SubmissionService: NewSubmissionService(repo, config.Logger),
	}, nil
}
