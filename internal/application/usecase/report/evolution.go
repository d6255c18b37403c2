package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// Evolution granularities.
const (
	GranularityDaily   = "daily"
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
)

// GetEvolutionInput filters and buckets the expense series.
type GetEvolutionInput struct {
	Granularity string
	StartDate   *time.Time
	EndDate     *time.Time
	UserName    string
}

// EvolutionPoint is one bucket of the expense series.
type EvolutionPoint struct {
	Label string
	Total decimal.Decimal
}

// GetEvolutionOutput is the chronologically ordered series.
type GetEvolutionOutput struct {
	Points []EvolutionPoint
}

// GetEvolutionUseCase buckets expenses by day, week or month.
type GetEvolutionUseCase struct {
	source TransactionSource
}

// NewGetEvolutionUseCase creates a new GetEvolutionUseCase instance.
func NewGetEvolutionUseCase(source TransactionSource) *GetEvolutionUseCase {
	return &GetEvolutionUseCase{source: source}
}

// Execute builds the expense evolution series.
func (uc *GetEvolutionUseCase) Execute(ctx context.Context, input GetEvolutionInput) (*GetEvolutionOutput, error) {
	granularity := input.Granularity
	if granularity == "" {
		granularity = GranularityMonthly
	}
	if granularity != GranularityDaily && granularity != GranularityWeekly && granularity != GranularityMonthly {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be 'daily', 'weekly' or 'monthly'",
			domainerror.ErrInvalidGranularity,
		)
	}

	rows, err := uc.source.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	totals := map[time.Time]decimal.Decimal{}
	for _, row := range rows {
		if row.Type != entity.TransactionTypeExpense {
			continue
		}
		if input.UserName != "" && !strings.EqualFold(row.UserName, input.UserName) {
			continue
		}
		if input.StartDate != nil && row.Date.Before(*input.StartDate) {
			continue
		}
		if input.EndDate != nil && row.Date.After(*input.EndDate) {
			continue
		}

		key := bucketStart(row.Date, granularity)
		totals[key] = totals[key].Add(row.Amount)
	}

	keys := make([]time.Time, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	points := make([]EvolutionPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, EvolutionPoint{
			Label: bucketLabel(key, granularity),
			Total: totals[key],
		})
	}

	return &GetEvolutionOutput{Points: points}, nil
}

// bucketStart normalizes a date to the start of its bucket.
func bucketStart(t time.Time, granularity string) time.Time {
	switch granularity {
	case GranularityDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case GranularityWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// bucketLabel formats the display label for a bucket.
func bucketLabel(t time.Time, granularity string) string {
	switch granularity {
	case GranularityDaily:
		return t.Format("02/01")
	case GranularityWeekly:
		_, week := t.ISOWeek()
		return fmt.Sprintf("Sem %d", week)
	default:
		return t.Format("01/2006")
	}
}
