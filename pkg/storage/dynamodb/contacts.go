package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
)

// GetContact retrieves a contact by id.
func (s *Store) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.ContactsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get contact from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, ledger.ErrNotFound
	}

	var contact models.Contact
	if err := attributevalue.UnmarshalMap(result.Item, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact: %w", err)
	}

	return &contact, nil
}

// dynamoBatchGetLimit is DynamoDB's per-request BatchGetItem ceiling.
const dynamoBatchGetLimit = 100

// contactsByIds batch-fetches contacts for check hydration. Unknown ids
// are simply absent from the result map.
func (s *Store) contactsByIds(ctx context.Context, ids []string) (map[string]*models.Contact, error) {
	contacts := make(map[string]*models.Contact, len(ids))

	for start := 0; start < len(ids); start += dynamoBatchGetLimit {
		end := start + dynamoBatchGetLimit
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		input := &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				s.ContactsTableName: {Keys: keys},
			},
		}

		// BatchGetItem may return unprocessed keys under load; loop
		// until the batch drains.
		for len(input.RequestItems) > 0 {
			result, err := s.Client.BatchGetItem(ctx, input)
			if err != nil {
				return nil, fmt.Errorf("failed to batch get contacts: %w", err)
			}

			for _, item := range result.Responses[s.ContactsTableName] {
				var contact models.Contact
				if err := attributevalue.UnmarshalMap(item, &contact); err != nil {
					return nil, fmt.Errorf("failed to unmarshal contact: %w", err)
				}
				contacts[contact.Id] = &contact
			}

			if len(result.UnprocessedKeys) == 0 {
				break
			}
			input = &dynamodb.BatchGetItemInput{RequestItems: result.UnprocessedKeys}
		}
	}

	return contacts, nil
}
