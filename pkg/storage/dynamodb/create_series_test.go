package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage"
	"github.com/chris/check-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seriesFixture() (*models.CheckSeries, []models.Check) {
	amount, _ := models.AmountFromString("800")
	series := &models.CheckSeries{
		Ledger:      models.Outgoing,
		ContactId:   "contact-1",
		Amount:      amount,
		StartMonth:  models.NewDate(2024, time.April, 1),
		DayOfMonth:  5,
		TotalChecks: 2,
	}
	numbers, _ := ledger.OutgoingSeriesNumbers(&models.CheckBook{
		Id:            "book-1",
		StartNumber:   100001,
		EndNumber:     100050,
		CurrentNumber: 100010,
		Status:        models.BookActive,
	}, series.TotalChecks)
	schedule := ledger.BuildSchedule(series.StartMonth, series.DayOfMonth, series.TotalChecks)
	checks := ledger.BuildSeriesChecks(series, numbers, schedule, "Leumi", "", time.Now())
	return series, checks
}

func seriesDraw() *storage.CheckBookDraw {
	return &storage.CheckBookDraw{BookId: "book-1", ExpectedCurrent: 100010, Count: 2}
}

func TestCreateSeries(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)
		series, checks := seriesFixture()

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Series put, two reservation/check pairs, book draw.
			return len(input.TransactItems) == 6 && input.TransactItems[5].Update != nil
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CreateSeries(context.Background(), series, checks, seriesDraw())

		require.NoError(t, err)
		assert.NotEmpty(t, series.Id)
		for _, check := range checks {
			assert.NotEmpty(t, check.Id)
			assert.Equal(t, series.Id, check.SeriesId)
			assert.False(t, check.CreatedAt.IsZero())
		}
		mockClient.AssertExpectations(t)
	})

	t.Run("No Draw For Incoming", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)
		series, checks := seriesFixture()

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 5
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CreateSeries(context.Background(), series, checks, nil)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Number", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)
		series, checks := seriesFixture()

		cancellation := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancellation)

		err := store.CreateSeries(context.Background(), series, checks, seriesDraw())

		var genErr *ledger.SeriesGenerationError
		require.ErrorAs(t, err, &genErr)
		assert.ErrorIs(t, err, ledger.ErrDuplicateCheckNumber)
	})

	t.Run("Book Advanced Concurrently", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)
		series, checks := seriesFixture()

		cancellation := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancellation)

		err := store.CreateSeries(context.Background(), series, checks, seriesDraw())

		var conflict *ledger.StateConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, err.Error(), "check book advanced concurrently")
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)
		series, checks := seriesFixture()

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transact failed"))

		err := store.CreateSeries(context.Background(), series, checks, nil)

		var genErr *ledger.SeriesGenerationError
		assert.ErrorAs(t, err, &genErr)
		assert.NotErrorIs(t, err, ledger.ErrDuplicateCheckNumber)
	})
}
