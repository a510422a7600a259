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

// TransitionCheck persists a status change applied by the domain layer.
// The update is conditioned on the status the caller read, so two
// concurrent transitions on the same check cannot silently overwrite
// each other: the loser gets a state conflict and re-reads.
func (s *Store) TransitionCheck(ctx context.Context, check *models.Check, expected models.CheckStatus) error {
	statusAV, err := attributevalue.Marshal(check.Status)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	updatedAV, err := attributevalue.Marshal(check.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	update := "SET #status = :status, cancellation_reason = :reason, updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     statusAV,
		":reason":     &types.AttributeValueMemberS{Value: check.CancellationReason},
		":updated_at": updatedAV,
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
	}
	if check.ClearedAt != nil {
		clearedAV, err := attributevalue.Marshal(check.ClearedAt)
		if err != nil {
			return fmt.Errorf("failed to marshal cleared_at: %w", err)
		}
		update += ", cleared_at = :cleared_at"
		values[":cleared_at"] = clearedAV
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.checksTable(check.Ledger)),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: check.Id}},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id) AND #status = :expected"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return ledger.StateConflictf("check status changed concurrently, please retry")
		}
		return fmt.Errorf("failed to update check status: %w", err)
	}

	return nil
}

// DeleteCheck removes a check and frees its number reservation in one
// transaction. The delete is conditioned on the check still being
// pending; anything further along is kept for the audit trail.
func (s *Store) DeleteCheck(ctx context.Context, l models.Ledger, id string) error {
	check, err := s.getCheckRecord(ctx, l, id)
	if err != nil {
		return err
	}
	if err := ledger.CanDelete(check); err != nil {
		return err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: delete the check while it is still pending.
				Delete: &types.Delete{
					TableName:                aws.String(s.checksTable(l)),
					Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
					ConditionExpression:      aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{"#status": "status"},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending": &types.AttributeValueMemberS{Value: string(models.StatusPending)},
					},
				},
			},
			{
				// Operation 2: free the number for reuse.
				Delete: &types.Delete{
					TableName: aws.String(s.NumbersTableName),
					Key: map[string]types.AttributeValue{
						"number_key": &types.AttributeValueMemberS{Value: models.NumberKey(l, check.CheckNumber)},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionalCheckFailure(err) {
			return ledger.StateConflictf("only pending checks can be deleted")
		}
		return fmt.Errorf("failed to delete check: %w", err)
	}

	return nil
}
