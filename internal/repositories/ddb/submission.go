package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"contact-form-api/internal/models"
	"contact-form-api/internal/repositories"
)

// PutItemAPI is the slice of the DynamoDB client used by SubmissionRepository
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// SubmissionRepository writes submissions to a DynamoDB table keyed by "id"
type SubmissionRepository struct {
	client    PutItemAPI
	tableName string
	logger    *logrus.Logger
}

// NewSubmissionRepository creates a repository writing to tableName
func NewSubmissionRepository(client PutItemAPI, tableName string, logger *logrus.Logger) *SubmissionRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SubmissionRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Put implements repositories.SubmissionRepository.Put with a single unconditional PutItem
func (r *SubmissionRepository) Put(ctx context.Context, submission *models.Submission) error {
	if submission == nil || submission.ID == "" {
		return repositories.NewRepositoryError("put", r.tableName, "", repositories.ErrInvalidEntity)
	}

	item, err := marshalSubmission(submission)
	if err != nil {
		return repositories.NewRepositoryError("marshal", r.tableName, submission.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("put", r.tableName, submission.ID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"table":         r.tableName,
		"submission_id": submission.ID,
	}).Debug("Submission written to DynamoDB")

	return nil
}

// Close implements repositories.SubmissionRepository.Close
func (r *SubmissionRepository) Close() error {
	return nil
}

// marshalSubmission builds the flat attribute map. phone is only present when supplied.
func marshalSubmission(submission *models.Submission) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	if submission.Phone != nil {
		item["phone"] = &types.AttributeValueMemberS{Value: *submission.Phone}
	}

	return item, nil
}
