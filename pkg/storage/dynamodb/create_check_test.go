package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckFixture() *models.Check {
	amount, _ := models.AmountFromString("2500")
	return &models.Check{
		Ledger:      models.Outgoing,
		CheckNumber: "100234",
		ContactId:   "contact-1",
		Amount:      amount,
		IssueDate:   models.NewDate(2024, time.March, 1),
		DueDate:     models.NewDate(2024, time.April, 1),
		Status:      models.StatusPending,
	}
}

func conditionalCancellation() *types.TransactionCanceledException {
	return &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
		},
	}
}

func TestCreateCheck(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// One reservation put and one check put, both conditional.
			if len(input.TransactItems) != 2 {
				return false
			}
			for _, item := range input.TransactItems {
				if item.Put == nil || item.Put.ConditionExpression == nil {
					return false
				}
			}
			return true
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		created, err := store.CreateCheck(context.Background(), newCheckFixture())

		require.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, models.Currency, created.Currency)
		assert.False(t, created.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Number", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionalCancellation())

		_, err := store.CreateCheck(context.Background(), newCheckFixture())

		assert.ErrorIs(t, err, ledger.ErrDuplicateCheckNumber)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transact failed"))

		_, err := store.CreateCheck(context.Background(), newCheckFixture())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ledger.ErrDuplicateCheckNumber)
		mockClient.AssertExpectations(t)
	})
}

func TestCheckNumberExists(t *testing.T) {
	reservation := models.NumberReservation{Key: models.NumberKey(models.Outgoing, "100234"), CheckId: "abc"}

	t.Run("Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		reservationAV, _ := attributevalue.MarshalMap(reservation)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: reservationAV}, nil)

		exists, err := store.CheckNumberExists(context.Background(), models.Outgoing, "100234")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Free", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		exists, err := store.CheckNumberExists(context.Background(), models.Outgoing, "100234")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}
