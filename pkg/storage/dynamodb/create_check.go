package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/google/uuid"
)

// CreateCheck persists a new check together with its number
// reservation. Both writes ride one transaction: the reservation item
// is created with a not-exists condition, which is the authoritative
// per-ledger uniqueness guard for check numbers. The read-side
// CheckNumberExists pre-check only exists to fail fast with a nicer
// message.
func (s *Store) CreateCheck(ctx context.Context, check *models.Check) (*models.Check, error) {
	now := time.Now()
	check.Id = uuid.New().String()
	check.Currency = models.Currency
	check.CreatedAt = now
	check.UpdatedAt = now

	checkAV, err := attributevalue.MarshalMap(check)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal check: %w", err)
	}

	reservation := models.NumberReservation{
		Key:     models.NumberKey(check.Ledger, check.CheckNumber),
		CheckId: check.Id,
	}
	reservationAV, err := attributevalue.MarshalMap(reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal number reservation: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: reserve the check number.
				Put: &types.Put{
					TableName:           aws.String(s.NumbersTableName),
					Item:                reservationAV,
					ConditionExpression: aws.String("attribute_not_exists(number_key)"),
				},
			},
			{
				// Operation 2: create the check record.
				Put: &types.Put{
					TableName:           aws.String(s.checksTable(check.Ledger)),
					Item:                checkAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionalCheckFailure(err) {
			return nil, ledger.ErrDuplicateCheckNumber
		}
		return nil, fmt.Errorf("failed to create check: %w", err)
	}

	return check, nil
}

// CheckNumberExists reports whether a check number is already reserved
// within a ledger.
func (s *Store) CheckNumberExists(ctx context.Context, l models.Ledger, number string) (bool, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"number_key": models.NumberKey(l, number)})
	if err != nil {
		return false, fmt.Errorf("failed to marshal number key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.NumbersTableName),
		Key:       key,
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up check number: %w", err)
	}

	return result.Item != nil, nil
}
