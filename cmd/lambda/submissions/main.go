package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"contact-form-api/internal/config"
	"contact-form-api/pkg/lambda"
	"contact-form-api/pkg/server"
)

func main() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := cfg.NewLogger(true)

	container, err := server.NewContainer(context.Background(), cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	logger.WithFields(config.GetServerlessConfig().LogFields()).
		WithField("table", cfg.Store.TableName).
		Info("Submission function ready")

	// Every event is a submission; method and path are not inspected.
	awslambda.Start(lambda.Adapt(container.SubmissionHandler.HandleSubmit))
}
