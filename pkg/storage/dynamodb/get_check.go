package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
)

// GetCheck retrieves a check by id and joins its contact. A missing or
// inactive contact does not fail the read; the check is returned with a
// nil contact.
func (s *Store) GetCheck(ctx context.Context, l models.Ledger, id string) (*models.CheckWithContact, error) {
	check, err := s.getCheckRecord(ctx, l, id)
	if err != nil {
		return nil, err
	}

	joined := &models.CheckWithContact{Check: *check}
	if check.ContactId != "" {
		contact, err := s.GetContact(ctx, check.ContactId)
		if err == nil {
			joined.Contact = contact
		} else if !errors.Is(err, ledger.ErrNotFound) {
			return nil, err
		}
	}

	return joined, nil
}

// getCheckRecord fetches the bare check item.
func (s *Store) getCheckRecord(ctx context.Context, l models.Ledger, id string) (*models.Check, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal check id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.checksTable(l)),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get check from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, ledger.ErrNotFound
	}

	var check models.Check
	if err := attributevalue.UnmarshalMap(result.Item, &check); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check: %w", err)
	}

	return &check, nil
}
