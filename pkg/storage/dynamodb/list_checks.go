package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage"
)

// ListChecks scans a ledger's table with the filter translated to a
// filter expression, joins contacts and sorts the result. A small
// business's ledgers stay well within scan territory; there is no
// pagination on the original surface either.
func (s *Store) ListChecks(ctx context.Context, l models.Ledger, filter storage.ListChecksFilter) ([]models.CheckWithContact, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.checksTable(l)),
	}
	applyFilter(input, filter)

	var checks []models.Check
	paginator := dynamodb.NewScanPaginator(s.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checks: %w", err)
		}
		var pageChecks []models.Check
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageChecks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal checks: %w", err)
		}
		checks = append(checks, pageChecks...)
	}

	sortChecks(checks, filter.Sort)

	contacts, err := s.contactsByIds(ctx, contactIds(checks))
	if err != nil {
		return nil, err
	}

	joined := make([]models.CheckWithContact, len(checks))
	for i, check := range checks {
		joined[i] = models.CheckWithContact{Check: check, Contact: contacts[check.ContactId]}
	}
	return joined, nil
}

// applyFilter translates a ListChecksFilter into a scan filter expression.
func applyFilter(input *dynamodb.ScanInput, filter storage.ListChecksFilter) {
	var conditions []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if filter.Status != "" {
		conditions = append(conditions, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.ContactId != "" {
		conditions = append(conditions, "contact_id = :contact_id")
		values[":contact_id"] = &types.AttributeValueMemberS{Value: filter.ContactId}
	}
	if filter.DueFrom != nil {
		conditions = append(conditions, "due_date >= :due_from")
		values[":due_from"] = &types.AttributeValueMemberS{Value: filter.DueFrom.String()}
	}
	if filter.DueTo != nil {
		conditions = append(conditions, "due_date <= :due_to")
		values[":due_to"] = &types.AttributeValueMemberS{Value: filter.DueTo.String()}
	}
	if filter.MinAmount != nil {
		conditions = append(conditions, "amount >= :min_amount")
		values[":min_amount"] = &types.AttributeValueMemberN{Value: filter.MinAmount.String()}
	}
	if filter.MaxAmount != nil {
		conditions = append(conditions, "amount <= :max_amount")
		values[":max_amount"] = &types.AttributeValueMemberN{Value: filter.MaxAmount.String()}
	}
	if filter.NumberContains != "" {
		conditions = append(conditions, "contains(check_number, :number)")
		values[":number"] = &types.AttributeValueMemberS{Value: filter.NumberContains}
	}

	if len(conditions) == 0 {
		return
	}
	input.FilterExpression = aws.String(strings.Join(conditions, " AND "))
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
	input.ExpressionAttributeValues = values
}

// sortChecks orders a listing: due date ascending, amount descending,
// or creation time descending (the default), mirroring the listing
// surface this replaces.
func sortChecks(checks []models.Check, key storage.SortKey) {
	switch key {
	case storage.SortByDueDate:
		sort.SliceStable(checks, func(i, j int) bool {
			return checks[i].DueDate.Before(checks[j].DueDate)
		})
	case storage.SortByAmount:
		sort.SliceStable(checks, func(i, j int) bool {
			return checks[i].Amount.GreaterThan(checks[j].Amount.Decimal)
		})
	default:
		sort.SliceStable(checks, func(i, j int) bool {
			return checks[i].CreatedAt.After(checks[j].CreatedAt)
		})
	}
}

// contactIds collects the distinct contact ids referenced by checks.
func contactIds(checks []models.Check) []string {
	seen := map[string]bool{}
	var ids []string
	for _, check := range checks {
		if check.ContactId != "" && !seen[check.ContactId] {
			seen[check.ContactId] = true
			ids = append(ids, check.ContactId)
		}
	}
	return ids
}
