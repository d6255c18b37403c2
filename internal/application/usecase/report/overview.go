package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// Overview view modes.
const (
	ViewMonth = "month"
	ViewYear  = "year"
	ViewAll   = "all"
)

// GetOverviewInput selects the period the headline totals cover.
type GetOverviewInput struct {
	View string
}

// CategoryBreakdown is one slice of the expense breakdown.
type CategoryBreakdown struct {
	Name  string
	Color string
	Total decimal.Decimal
}

// GetOverviewOutput is the dashboard headline payload.
type GetOverviewOutput struct {
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	Balance       decimal.Decimal
	BalanceToDate decimal.Decimal
	Patrimony     decimal.Decimal
	Breakdown     []CategoryBreakdown
	Recent        []*entity.TransactionDetail
}

// GetOverviewUseCase computes the dashboard headline numbers. Balance to
// date and patrimony always span all time regardless of the selected view.
type GetOverviewUseCase struct {
	source TransactionSource
	now    func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(source TransactionSource) *GetOverviewUseCase {
	return &GetOverviewUseCase{source: source, now: time.Now}
}

// Execute builds the overview for the given view.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	view := input.View
	if view == "" {
		view = ViewMonth
	}
	if view != ViewMonth && view != ViewYear && view != ViewAll {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidView,
			"view must be 'month', 'year' or 'all'",
			domainerror.ErrInvalidView,
		)
	}

	rows, err := uc.source.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.now()
	inView := func(t time.Time) bool {
		switch view {
		case ViewMonth:
			return sameMonth(t, now)
		case ViewYear:
			return t.Year() == now.Year()
		default:
			return true
		}
	}

	output := &GetOverviewOutput{
		TotalIncome:   decimal.Zero,
		TotalExpense:  decimal.Zero,
		BalanceToDate: decimal.Zero,
		Patrimony:     decimal.Zero,
	}
	byCategory := map[string]*CategoryBreakdown{}

	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	for _, row := range rows {
		if !row.Date.After(endOfToday) {
			if row.Type == entity.TransactionTypeIncome {
				output.BalanceToDate = output.BalanceToDate.Add(row.Amount)
			} else {
				output.BalanceToDate = output.BalanceToDate.Sub(row.Amount)
			}
		}

		switch row.CategoryName {
		case categoryContribution:
			output.Patrimony = output.Patrimony.Add(row.Amount)
		case categoryRedemption:
			output.Patrimony = output.Patrimony.Sub(row.Amount)
		}

		if !inView(row.Date) {
			continue
		}

		if row.Type == entity.TransactionTypeIncome {
			output.TotalIncome = output.TotalIncome.Add(row.Amount)
		} else {
			output.TotalExpense = output.TotalExpense.Add(row.Amount)

			slice, ok := byCategory[row.CategoryName]
			if !ok {
				slice = &CategoryBreakdown{Name: row.CategoryName, Color: row.CategoryColor, Total: decimal.Zero}
				byCategory[row.CategoryName] = slice
			}
			slice.Total = slice.Total.Add(row.Amount)
		}

		if len(output.Recent) < 5 {
			output.Recent = append(output.Recent, row)
		}
	}

	output.Balance = output.TotalIncome.Sub(output.TotalExpense)

	output.Breakdown = make([]CategoryBreakdown, 0, len(byCategory))
	for _, slice := range byCategory {
		output.Breakdown = append(output.Breakdown, *slice)
	}
	sort.Slice(output.Breakdown, func(i, j int) bool {
		return output.Breakdown[i].Total.GreaterThan(output.Breakdown[j].Total)
	})

	return output, nil
}
