package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage/dynamodb/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStore(client DynamoDBAPI) *Store {
	return New(client, Tables{
		Outgoing:   "outgoing_checks",
		Incoming:   "incoming_checks",
		Series:     "check_series",
		CheckBooks: "check_books",
		Contacts:   "contacts",
		Numbers:    "check_numbers",
	})
}

func getItemForTable(table string) interface{} {
	return mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
		return input.TableName != nil && *input.TableName == table
	})
}

func TestGetCheck(t *testing.T) {
	amount, _ := models.AmountFromString("1500")
	checkID := uuid.New().String()
	check := &models.Check{
		Id:          checkID,
		Ledger:      models.Incoming,
		CheckNumber: "100234",
		ContactId:   "contact-1",
		Amount:      amount,
		Currency:    models.Currency,
		DueDate:     models.NewDate(2024, time.April, 1),
		Status:      models.StatusWaitingDeposit,
	}
	contact := &models.Contact{Id: "contact-1", Name: "Mordechai Cohen", Phone: "050-1234567"}

	t.Run("Success With Contact", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		checkAV, _ := attributevalue.MarshalMap(check)
		contactAV, _ := attributevalue.MarshalMap(contact)
		mockClient.On("GetItem", mock.Anything, getItemForTable("incoming_checks")).Return(&dynamodb.GetItemOutput{Item: checkAV}, nil)
		mockClient.On("GetItem", mock.Anything, getItemForTable("contacts")).Return(&dynamodb.GetItemOutput{Item: contactAV}, nil)

		result, err := store.GetCheck(context.Background(), models.Incoming, checkID)

		require.NoError(t, err)
		assert.Equal(t, *check, result.Check)
		assert.Equal(t, contact, result.Contact)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing Contact Tolerated", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		checkAV, _ := attributevalue.MarshalMap(check)
		mockClient.On("GetItem", mock.Anything, getItemForTable("incoming_checks")).Return(&dynamodb.GetItemOutput{Item: checkAV}, nil)
		mockClient.On("GetItem", mock.Anything, getItemForTable("contacts")).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		result, err := store.GetCheck(context.Background(), models.Incoming, checkID)

		require.NoError(t, err)
		assert.Nil(t, result.Contact)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		_, err := store.GetCheck(context.Background(), models.Incoming, checkID)

		assert.ErrorIs(t, err, ledger.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("get item failed"))

		_, err := store.GetCheck(context.Background(), models.Incoming, checkID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get check from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}
