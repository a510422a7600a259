package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage"
	"github.com/chris/check-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listFixtureItems(t *testing.T) []map[string]types.AttributeValue {
	t.Helper()
	small, _ := models.AmountFromString("100")
	large, _ := models.AmountFromString("900")
	checks := []models.Check{
		{
			Id: "check-a", Ledger: models.Outgoing, CheckNumber: "100001", ContactId: "contact-1",
			Amount: small, DueDate: models.NewDate(2024, time.May, 1), Status: models.StatusPending,
			CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Id: "check-b", Ledger: models.Outgoing, CheckNumber: "100002", ContactId: "contact-1",
			Amount: large, DueDate: models.NewDate(2024, time.April, 1), Status: models.StatusPending,
			CreatedAt: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	items := make([]map[string]types.AttributeValue, len(checks))
	for i, check := range checks {
		av, err := attributevalue.MarshalMap(check)
		require.NoError(t, err)
		items[i] = av
	}
	return items
}

func contactResponses() *dynamodb.BatchGetItemOutput {
	contactAV, _ := attributevalue.MarshalMap(models.Contact{Id: "contact-1", Name: "Mordechai Cohen"})
	return &dynamodb.BatchGetItemOutput{
		Responses: map[string][]map[string]types.AttributeValue{
			"contacts": {contactAV},
		},
	}
}

func TestListChecks(t *testing.T) {
	t.Run("Default Sort Newest First", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
			return *input.TableName == "outgoing_checks" && input.FilterExpression == nil
		}), mock.Anything).Return(&dynamodb.ScanOutput{Items: listFixtureItems(t)}, nil)
		mockClient.On("BatchGetItem", mock.Anything, mock.Anything).Return(contactResponses(), nil)

		result, err := store.ListChecks(context.Background(), models.Outgoing, storage.ListChecksFilter{})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "check-b", result[0].Check.Id)
		assert.Equal(t, "check-a", result[1].Check.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Sort By Due Date", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Scan", mock.Anything, mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: listFixtureItems(t)}, nil)
		mockClient.On("BatchGetItem", mock.Anything, mock.Anything).Return(contactResponses(), nil)

		result, err := store.ListChecks(context.Background(), models.Outgoing, storage.ListChecksFilter{Sort: storage.SortByDueDate})

		require.NoError(t, err)
		assert.Equal(t, "check-b", result[0].Check.Id)
	})

	t.Run("Sort By Amount Descending", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Scan", mock.Anything, mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: listFixtureItems(t)}, nil)
		mockClient.On("BatchGetItem", mock.Anything, mock.Anything).Return(contactResponses(), nil)

		result, err := store.ListChecks(context.Background(), models.Outgoing, storage.ListChecksFilter{Sort: storage.SortByAmount})

		require.NoError(t, err)
		assert.Equal(t, "check-b", result[0].Check.Id)
	})

	t.Run("Contacts Joined", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Scan", mock.Anything, mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: listFixtureItems(t)}, nil)
		mockClient.On("BatchGetItem", mock.Anything, mock.Anything).Return(contactResponses(), nil)

		result, err := store.ListChecks(context.Background(), models.Outgoing, storage.ListChecksFilter{})

		require.NoError(t, err)
		require.NotNil(t, result[0].Contact)
		assert.Equal(t, "Mordechai Cohen", result[0].Contact.Name)
	})

	t.Run("Status Filter Expression", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
			return input.FilterExpression != nil &&
				*input.FilterExpression == "#status = :status" &&
				input.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value == string(models.StatusBounced)
		}), mock.Anything).Return(&dynamodb.ScanOutput{}, nil)

		result, err := store.ListChecks(context.Background(), models.Outgoing, storage.ListChecksFilter{Status: models.StatusBounced})

		require.NoError(t, err)
		assert.Empty(t, result)
		mockClient.AssertNotCalled(t, "BatchGetItem", mock.Anything, mock.Anything)
	})

	t.Run("Range Filters Combined", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		from := models.NewDate(2024, time.April, 1)
		min, _ := models.AmountFromString("50")
		mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
			return input.FilterExpression != nil &&
				*input.FilterExpression == "due_date >= :due_from AND amount >= :min_amount"
		}), mock.Anything).Return(&dynamodb.ScanOutput{}, nil)

		_, err := store.ListChecks(context.Background(), models.Outgoing, storage.ListChecksFilter{DueFrom: &from, MinAmount: &min})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}
