package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage"
	"golang.org/x/sync/errgroup"
)

// Due-soon horizons for the stats endpoints.
const (
	dueSoonWeekDays  = 7
	dueSoonMonthDays = 30
)

// OutgoingStats fans the aggregate queries out concurrently and joins
// them, failing as a whole if any single query fails.
func (s *Store) OutgoingStats(ctx context.Context, today models.Date) (*models.OutgoingStats, error) {
	stats := &models.OutgoingStats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.countChecks(ctx, s.OutgoingTableName, "", nil)
		stats.TotalChecks = n
		return err
	})
	g.Go(func() error {
		n, err := s.countByStatus(ctx, s.OutgoingTableName, models.StatusPending)
		stats.PendingCount = n
		return err
	})
	g.Go(func() error {
		sum, err := s.sumAmountByStatus(ctx, s.OutgoingTableName, models.StatusPending)
		stats.PendingAmount = sum
		return err
	})
	g.Go(func() error {
		n, err := s.countByStatus(ctx, s.OutgoingTableName, models.StatusBounced)
		stats.BouncedCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.countDueBetween(ctx, s.OutgoingTableName, models.StatusPending, today, today.AddDays(dueSoonWeekDays))
		stats.DueThisWeek = n
		return err
	})
	g.Go(func() error {
		n, err := s.countDueBetween(ctx, s.OutgoingTableName, models.StatusPending, today, today.AddDays(dueSoonMonthDays))
		stats.DueThisMonth = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// IncomingStats fans the incoming aggregates out concurrently.
func (s *Store) IncomingStats(ctx context.Context) (*models.IncomingStats, error) {
	stats := &models.IncomingStats{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum, err := s.sumAmountByStatus(ctx, s.IncomingTableName, models.StatusWaitingDeposit)
		stats.WaitingDepositAmount = sum
		return err
	})
	g.Go(func() error {
		n, err := s.countByStatus(ctx, s.IncomingTableName, models.StatusWaitingDeposit)
		stats.WaitingDepositCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.countByStatus(ctx, s.IncomingTableName, models.StatusDeposited)
		stats.DepositedCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.countByStatus(ctx, s.IncomingTableName, models.StatusCleared)
		stats.ClearedCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.countByStatus(ctx, s.IncomingTableName, models.StatusBounced)
		stats.BouncedCount = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentChecks lists the newest checks across both ledgers.
func (s *Store) RecentChecks(ctx context.Context, limit int) ([]models.RecentCheck, error) {
	outgoing, err := s.ListChecks(ctx, models.Outgoing, listAllByCreated())
	if err != nil {
		return nil, err
	}
	incoming, err := s.ListChecks(ctx, models.Incoming, listAllByCreated())
	if err != nil {
		return nil, err
	}

	recent := make([]models.RecentCheck, 0, len(outgoing)+len(incoming))
	for _, check := range append(outgoing, incoming...) {
		recent = append(recent, models.RecentCheck{
			Type:        check.Ledger,
			CheckNumber: check.CheckNumber,
			Amount:      check.Amount,
			DueDate:     check.DueDate,
			Status:      check.Status,
			ContactName: displayName(&check),
			CreatedAt:   check.CreatedAt,
		})
	}

	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

// UpcomingDue lists open checks from both ledgers due within the given
// horizon: pending outgoing checks, and incoming checks waiting for
// deposit or already deposited.
func (s *Store) UpcomingDue(ctx context.Context, today models.Date, days int) ([]models.UpcomingCheck, error) {
	to := today.AddDays(days)

	outgoing, err := s.ListChecks(ctx, models.Outgoing, dueWindowFilter(models.StatusPending, today, to))
	if err != nil {
		return nil, err
	}
	waiting, err := s.ListChecks(ctx, models.Incoming, dueWindowFilter(models.StatusWaitingDeposit, today, to))
	if err != nil {
		return nil, err
	}
	deposited, err := s.ListChecks(ctx, models.Incoming, dueWindowFilter(models.StatusDeposited, today, to))
	if err != nil {
		return nil, err
	}

	all := append(append(outgoing, waiting...), deposited...)
	upcoming := make([]models.UpcomingCheck, 0, len(all))
	for _, check := range all {
		row := models.UpcomingCheck{
			Type:        check.Ledger,
			CheckNumber: check.CheckNumber,
			Amount:      check.Amount,
			DueDate:     check.DueDate,
			Status:      check.Status,
			ContactName: displayName(&check),
		}
		if check.Contact != nil {
			row.ContactPhone = check.Contact.Phone
		}
		upcoming = append(upcoming, row)
	}

	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].DueDate.Before(upcoming[j].DueDate) })
	return upcoming, nil
}

func listAllByCreated() storage.ListChecksFilter {
	return storage.ListChecksFilter{Sort: storage.SortByCreatedAt}
}

func dueWindowFilter(status models.CheckStatus, from, to models.Date) storage.ListChecksFilter {
	return storage.ListChecksFilter{
		Status:  status,
		DueFrom: &from,
		DueTo:   &to,
		Sort:    storage.SortByDueDate,
	}
}

// displayName prefers the joined contact's name and falls back to the
// free-text counterparty carried by physical checks.
func displayName(check *models.CheckWithContact) string {
	if check.Contact != nil {
		return check.Contact.Name
	}
	return check.CounterpartyName
}

// countChecks runs a COUNT scan with an optional status filter.
func (s *Store) countChecks(ctx context.Context, table string, filterExpr string, values map[string]types.AttributeValue) (int, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
		Select:    types.SelectCount,
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = values
	}

	total := 0
	paginator := dynamodb.NewScanPaginator(s.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count checks: %w", err)
		}
		total += int(page.Count)
	}
	return total, nil
}

func (s *Store) countByStatus(ctx context.Context, table string, status models.CheckStatus) (int, error) {
	return s.countChecks(ctx, table, "#status = :status", map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	})
}

func (s *Store) countDueBetween(ctx context.Context, table string, status models.CheckStatus, from, to models.Date) (int, error) {
	return s.countChecks(ctx, table,
		"#status = :status AND due_date BETWEEN :from AND :to",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":from":   &types.AttributeValueMemberS{Value: from.String()},
			":to":     &types.AttributeValueMemberS{Value: to.String()},
		})
}

// sumAmountByStatus scans the matching checks and sums their amounts
// with decimal arithmetic.
func (s *Store) sumAmountByStatus(ctx context.Context, table string, status models.CheckStatus) (models.Amount, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(table),
		ProjectionExpression:     aws.String("amount"),
		FilterExpression:         aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}

	var total models.Amount
	paginator := dynamodb.NewScanPaginator(s.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return models.Amount{}, fmt.Errorf("failed to sum amounts: %w", err)
		}
		var rows []struct {
			Amount models.Amount `dynamodbav:"amount"`
		}
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return models.Amount{}, fmt.Errorf("failed to unmarshal amounts: %w", err)
		}
		for _, row := range rows {
			total = total.Add(row.Amount)
		}
	}
	return total, nil
}
