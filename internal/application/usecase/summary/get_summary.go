// Package summary contains the income/expense aggregation use case.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/application/adapter"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// GetSummaryInput carries the optional period filter. Year alone selects
// the whole year; year plus month selects that month; neither selects all
// time. Month without year is rejected.
type GetSummaryInput struct {
	Month *int
	Year  *int
}

// GetSummaryOutput represents the aggregated totals for the period.
type GetSummaryOutput struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// GetSummaryUseCase computes income and expense totals over a period. The
// filter is translated into a half-open [start, end) date range so the
// aggregation stays in plain SQL.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{transactionRepo: transactionRepo}
}

// Execute validates the filter and aggregates the totals.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if input.Month != nil && input.Year == nil {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeMonthWithoutYear,
			"month filter requires a year",
			domainerror.ErrMonthWithoutYear,
		)
	}
	if input.Month != nil && (*input.Month < 1 || *input.Month > 12) {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	var start, end *time.Time
	if input.Year != nil {
		var from, to time.Time
		if input.Month != nil {
			from = time.Date(*input.Year, time.Month(*input.Month), 1, 0, 0, 0, 0, time.UTC)
			to = from.AddDate(0, 1, 0)
		} else {
			from = time.Date(*input.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
			to = from.AddDate(1, 0, 0)
		}
		start, end = &from, &to
	}

	totals, err := uc.transactionRepo.SumByTypeInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	return &GetSummaryOutput{
		TotalIncome:  totals.Income,
		TotalExpense: totals.Expense,
		Balance:      totals.Balance(),
	}, nil
}
