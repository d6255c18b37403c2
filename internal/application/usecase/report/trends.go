package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// MaxTrendMonths bounds the trend window so a single request cannot ask
// for an arbitrarily large allocation.
const MaxTrendMonths = 120

// GetTrendsInput selects the month window. Months defaults to 12 and is
// capped at MaxTrendMonths; Offset shifts the window end relative to the
// current month, so a positive offset includes future installment months.
type GetTrendsInput struct {
	Months int
	Offset int
}

// MonthTrend is one month of the trend window. Balance accumulates across
// the window, not across all time.
type MonthTrend struct {
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Future  bool
}

// GetTrendsOutput is the ordered month window.
type GetTrendsOutput struct {
	Trends []MonthTrend
}

// GetTrendsUseCase computes per-month income/expense with a running
// balance over a sliding window of calendar months.
type GetTrendsUseCase struct {
	source TransactionSource
	now    func() time.Time
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(source TransactionSource) *GetTrendsUseCase {
	return &GetTrendsUseCase{source: source, now: time.Now}
}

// Execute builds the trend window, oldest month first.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	months := input.Months
	if months <= 0 {
		months = 12
	}
	if months > MaxTrendMonths {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidTrendWindow,
			fmt.Sprintf("months must be between 1 and %d", MaxTrendMonths),
			domainerror.ErrInvalidTrendWindow,
		)
	}

	rows, err := uc.source.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	windowEnd := currentMonth.AddDate(0, input.Offset, 0)
	windowStart := windowEnd.AddDate(0, -(months - 1), 0)

	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := map[time.Time]*bucket{}
	for _, row := range rows {
		key := time.Date(row.Date.Year(), row.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		if key.Before(windowStart) || key.After(windowEnd) {
			continue
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{income: decimal.Zero, expense: decimal.Zero}
			buckets[key] = b
		}
		if row.Type == entity.TransactionTypeIncome {
			b.income = b.income.Add(row.Amount)
		} else {
			b.expense = b.expense.Add(row.Amount)
		}
	}

	trends := make([]MonthTrend, 0, months)
	running := decimal.Zero
	for month := windowStart; !month.After(windowEnd); month = month.AddDate(0, 1, 0) {
		income, expense := decimal.Zero, decimal.Zero
		if b, ok := buckets[month]; ok {
			income, expense = b.income, b.expense
		}
		running = running.Add(income).Sub(expense)
		trends = append(trends, MonthTrend{
			Year:    month.Year(),
			Month:   int(month.Month()),
			Income:  income,
			Expense: expense,
			Balance: running,
			Future:  month.After(currentMonth),
		})
	}

	return &GetTrendsOutput{Trends: trends}, nil
}
