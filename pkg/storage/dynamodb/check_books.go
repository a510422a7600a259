package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
)

// GetActiveCheckBook retrieves the check book outgoing series draw
// numbers from. A handful of books ever exist, so a filtered scan is
// fine; with several active books the lowest-numbered one wins, the
// same tie-break the original applied.
func (s *Store) GetActiveCheckBook(ctx context.Context) (*models.CheckBook, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(s.CheckBooksTableName),
		FilterExpression:         aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(models.BookActive)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan check books: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, ledger.ErrNoActiveCheckBook
	}

	var books []models.CheckBook
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &books); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check books: %w", err)
	}

	sort.Slice(books, func(i, j int) bool { return books[i].StartNumber < books[j].StartNumber })
	return &books[0], nil
}
