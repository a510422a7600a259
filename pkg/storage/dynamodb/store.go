package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
// Declared here so tests can mock the client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client              DynamoDBAPI
	OutgoingTableName   string
	IncomingTableName   string
	SeriesTableName     string
	CheckBooksTableName string
	ContactsTableName   string
	NumbersTableName    string
}

// Tables groups the table names the store operates on.
type Tables struct {
	Outgoing   string
	Incoming   string
	Series     string
	CheckBooks string
	Contacts   string
	Numbers    string
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client:              client,
		OutgoingTableName:   tables.Outgoing,
		IncomingTableName:   tables.Incoming,
		SeriesTableName:     tables.Series,
		CheckBooksTableName: tables.CheckBooks,
		ContactsTableName:   tables.Contacts,
		NumbersTableName:    tables.Numbers,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// checksTable maps a ledger to its table name.
func (s *Store) checksTable(ledger models.Ledger) string {
	if ledger == models.Outgoing {
		return s.OutgoingTableName
	}
	return s.IncomingTableName
}

// isConditionalCheckFailure reports whether err is a failed
// ConditionExpression, either on a single-item write or inside a
// transaction.
func isConditionalCheckFailure(err error) bool {
	var ccf *ddbtypes.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	var tce *ddbtypes.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
