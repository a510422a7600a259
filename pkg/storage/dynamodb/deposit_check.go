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

// DepositCheck persists an immediate deposit. Conditioned on the stored
// status still being waiting_deposit so a concurrent cancel or second
// deposit loses cleanly.
func (s *Store) DepositCheck(ctx context.Context, check *models.Check) error {
	depositedAV, err := attributevalue.Marshal(check.DepositedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal deposited_at: %w", err)
	}
	updatedAV, err := attributevalue.Marshal(check.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.IncomingTableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: check.Id}},
		UpdateExpression: aws.String(
			"SET #status = :deposited, deposited_at = :deposited_at, updated_at = :updated_at REMOVE deposit_scheduled_date"),
		ConditionExpression:      aws.String("attribute_exists(id) AND #status = :waiting"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deposited":    &types.AttributeValueMemberS{Value: string(models.StatusDeposited)},
			":waiting":      &types.AttributeValueMemberS{Value: string(models.StatusWaitingDeposit)},
			":deposited_at": depositedAV,
			":updated_at":   updatedAV,
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return ledger.StateConflictf("only checks waiting for deposit can be deposited")
		}
		return fmt.Errorf("failed to deposit check: %w", err)
	}

	return nil
}

// ScheduleDeposit persists the scheduled deposit date, conditioned on
// the check still waiting for deposit.
func (s *Store) ScheduleDeposit(ctx context.Context, check *models.Check) error {
	dateAV, err := attributevalue.Marshal(check.DepositScheduledDate)
	if err != nil {
		return fmt.Errorf("failed to marshal scheduled date: %w", err)
	}
	updatedAV, err := attributevalue.Marshal(check.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.IncomingTableName),
		Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: check.Id}},
		UpdateExpression:         aws.String("SET deposit_scheduled_date = :date, updated_at = :updated_at"),
		ConditionExpression:      aws.String("attribute_exists(id) AND #status = :waiting"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date":       dateAV,
			":waiting":    &types.AttributeValueMemberS{Value: string(models.StatusWaitingDeposit)},
			":updated_at": updatedAV,
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return ledger.StateConflictf("deposits can only be scheduled for checks waiting for deposit")
		}
		return fmt.Errorf("failed to schedule deposit: %w", err)
	}

	return nil
}

// CancelScheduledDeposit removes the scheduled deposit date. No status
// condition: clearing a schedule is harmless at any point.
func (s *Store) CancelScheduledDeposit(ctx context.Context, check *models.Check) error {
	updatedAV, err := attributevalue.Marshal(check.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.IncomingTableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: check.Id}},
		UpdateExpression:    aws.String("SET updated_at = :updated_at REMOVE deposit_scheduled_date"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":updated_at": updatedAV,
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return ledger.ErrNotFound
		}
		return fmt.Errorf("failed to cancel scheduled deposit: %w", err)
	}

	return nil
}

// IssueInvoice persists the invoice stamp. Conditioned on the check not
// being cancelled, matching the domain rule that cancelled checks read
// as gone for invoicing.
func (s *Store) IssueInvoice(ctx context.Context, check *models.Check) error {
	issuedAV, err := attributevalue.Marshal(check.InvoiceIssuedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice_issued_at: %w", err)
	}
	updatedAV, err := attributevalue.Marshal(check.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.IncomingTableName),
		Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: check.Id}},
		UpdateExpression:         aws.String("SET invoice_number = :number, invoice_issued_at = :issued_at, updated_at = :updated_at"),
		ConditionExpression:      aws.String("attribute_exists(id) AND #status <> :cancelled"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number":     &types.AttributeValueMemberS{Value: check.InvoiceNumber},
			":issued_at":  issuedAV,
			":updated_at": updatedAV,
			":cancelled":  &types.AttributeValueMemberS{Value: string(models.StatusCancelled)},
		},
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return ledger.ErrNotFound
		}
		return fmt.Errorf("failed to issue invoice: %w", err)
	}

	return nil
}
