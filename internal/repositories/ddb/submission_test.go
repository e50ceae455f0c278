package ddb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-form-api/internal/models"
	"contact-form-api/internal/repositories"
)

type fakePutItemClient struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakePutItemClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func stringAttr(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	av, ok := item[key]
	require.True(t, ok, "attribute %q missing", key)
	s, ok := av.(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %q is not a string", key)
	return s.Value
}

func TestSubmissionRepository_PutWithoutPhone(t *testing.T) {
	client := &fakePutItemClient{}
	repo := NewSubmissionRepository(client, "form-submissions", nil)

	submission := &models.Submission{
		ID:        "6f1c4c57-8f43-4b43-9a4e-3c1f1f0b7d2a",
		CreatedAt: "2024-03-05T13:07:09.123456Z",
		Name:      "Jo",
		Email:     "jo@x.com",
		Problem:   "leak",
	}

	require.NoError(t, repo.Put(context.Background(), submission))
	require.Len(t, client.inputs, 1)

	input := client.inputs[0]
	assert.Equal(t, "form-submissions", *input.TableName)
	assert.Nil(t, input.ConditionExpression)
	assert.Len(t, input.Item, 5)
	assert.Equal(t, submission.ID, stringAttr(t, input.Item, "id"))
	assert.Equal(t, submission.CreatedAt, stringAttr(t, input.Item, "createdAt"))
	assert.Equal(t, "Jo", stringAttr(t, input.Item, "name"))
	assert.Equal(t, "jo@x.com", stringAttr(t, input.Item, "email"))
	assert.Equal(t, "leak", stringAttr(t, input.Item, "problem"))
	assert.NotContains(t, input.Item, "phone")
}

func TestSubmissionRepository_PutWithPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{name: "phone value", phone: "0400 000 000"},
		{name: "empty phone", phone: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakePutItemClient{}
			repo := NewSubmissionRepository(client, "form-submissions", nil)
			phone := tt.phone

			err := repo.Put(context.Background(), &models.Submission{
				ID:      "id-1",
				Name:    "Jo",
				Email:   "jo@x.com",
				Phone:   &phone,
				Problem: "leak",
			})
			require.NoError(t, err)
			require.Len(t, client.inputs, 1)
			assert.Equal(t, tt.phone, stringAttr(t, client.inputs[0].Item, "phone"))
		})
	}
}

func TestSubmissionRepository_PutError(t *testing.T) {
	storeErr := errors.New("ProvisionedThroughputExceededException")
	client := &fakePutItemClient{err: storeErr}
	repo := NewSubmissionRepository(client, "form-submissions", nil)

	err := repo.Put(context.Background(), &models.Submission{ID: "id-1", Name: "Jo", Email: "jo@x.com", Problem: "leak"})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	var repoErr *repositories.RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "put", repoErr.Op)
	assert.Equal(t, "form-submissions", repoErr.Entity)
	assert.Equal(t, "id-1", repoErr.ID)
}

func TestSubmissionRepository_PutInvalid(t *testing.T) {
	client := &fakePutItemClient{}
	repo := NewSubmissionRepository(client, "form-submissions", nil)

	err := repo.Put(context.Background(), nil)
	assert.ErrorIs(t, err, repositories.ErrInvalidEntity)
	assert.Empty(t, client.inputs)
}
