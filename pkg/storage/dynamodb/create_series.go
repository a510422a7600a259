package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage"
	"github.com/google/uuid"
)

// CreateSeries persists a whole series in a single transaction: the
// series row, every child check, every number reservation, and the
// check-book draw when one applies. A series of 24 checks produces 50
// transact items, within DynamoDB's 100-item transaction limit.
// All-or-nothing: a failed series leaves zero children behind.
func (s *Store) CreateSeries(ctx context.Context, series *models.CheckSeries, checks []models.Check, draw *storage.CheckBookDraw) error {
	now := time.Now()
	series.Id = uuid.New().String()
	series.CreatedAt = now
	series.UpdatedAt = now
	for i := range checks {
		checks[i].Id = uuid.New().String()
		checks[i].SeriesId = series.Id
		checks[i].CreatedAt = now
		checks[i].UpdatedAt = now
	}

	seriesAV, err := attributevalue.MarshalMap(series)
	if err != nil {
		return fmt.Errorf("failed to marshal series: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(s.SeriesTableName),
				Item:                seriesAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}

	for i := range checks {
		check := &checks[i]
		checkAV, err := attributevalue.MarshalMap(check)
		if err != nil {
			return fmt.Errorf("failed to marshal series check %d: %w", check.SeriesNumber, err)
		}
		reservationAV, err := attributevalue.MarshalMap(models.NumberReservation{
			Key:     models.NumberKey(check.Ledger, check.CheckNumber),
			CheckId: check.Id,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal series reservation %d: %w", check.SeriesNumber, err)
		}

		items = append(items,
			types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(s.NumbersTableName),
					Item:                reservationAV,
					ConditionExpression: aws.String("attribute_not_exists(number_key)"),
				},
			},
			types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(s.checksTable(check.Ledger)),
					Item:                checkAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		)
	}

	if draw != nil {
		// Advance the check book with a compare-and-set on the number
		// the caller read, so two concurrent series can never be issued
		// overlapping numbers.
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.CheckBooksTableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: draw.BookId}},
				UpdateExpression:    aws.String("SET current_number = current_number + :n, used_checks = used_checks + :n"),
				ConditionExpression: aws.String("current_number = :expected AND #status = :active"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":n":        &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", draw.Count)},
					":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", draw.ExpectedCurrent)},
					":active":   &types.AttributeValueMemberS{Value: string(models.BookActive)},
				},
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return &ledger.SeriesGenerationError{Err: classifySeriesFailure(err, len(items), draw != nil)}
	}

	return nil
}

// classifySeriesFailure turns a transaction cancellation into the
// domain error behind it. Cancellation reasons are positional: the last
// item is the check-book draw when one was included, everything else
// that can fail a condition is a number reservation.
func classifySeriesFailure(err error, itemCount int, hasDraw bool) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		if hasDraw && i == itemCount-1 {
			return ledger.StateConflictf("check book advanced concurrently, please retry")
		}
		return ledger.ErrDuplicateCheckNumber
	}
	return err
}
