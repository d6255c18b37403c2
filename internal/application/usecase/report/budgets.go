package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
)

// Budget statuses.
const (
	BudgetHealthy  = "healthy"
	BudgetWarning  = "warning"
	BudgetExceeded = "exceeded"
)

// BudgetStatus is one category limit checked against the current month.
type BudgetStatus struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	Percent  decimal.Decimal
	Status   string
}

// GetBudgetsOutput lists every configured budget, most consumed first.
type GetBudgetsOutput struct {
	Budgets []BudgetStatus
}

// GetBudgetsUseCase checks the current month's spend per category against
// the configured monthly limits.
type GetBudgetsUseCase struct {
	source TransactionSource
	limits map[string]decimal.Decimal
	now    func() time.Time
}

// NewGetBudgetsUseCase creates a new GetBudgetsUseCase instance.
func NewGetBudgetsUseCase(source TransactionSource, limits map[string]decimal.Decimal) *GetBudgetsUseCase {
	return &GetBudgetsUseCase{source: source, limits: limits, now: time.Now}
}

// Execute builds the budget statuses.
func (uc *GetBudgetsUseCase) Execute(ctx context.Context) (*GetBudgetsOutput, error) {
	rows, err := uc.source.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.now()
	spent := map[string]decimal.Decimal{}
	for _, row := range rows {
		if row.Type != entity.TransactionTypeExpense || !sameMonth(row.Date, now) {
			continue
		}
		spent[row.CategoryName] = spent[row.CategoryName].Add(row.Amount)
	}

	hundred := decimal.NewFromInt(100)
	budgets := make([]BudgetStatus, 0, len(uc.limits))
	for category, limit := range uc.limits {
		if !limit.IsPositive() {
			continue
		}
		used := spent[category]
		percent := used.Div(limit).Mul(hundred)

		status := BudgetHealthy
		switch {
		case percent.GreaterThan(hundred):
			status = BudgetExceeded
		case percent.GreaterThan(decimal.NewFromInt(80)):
			status = BudgetWarning
		}

		budgets = append(budgets, BudgetStatus{
			Category: category,
			Limit:    limit,
			Spent:    used,
			Percent:  percent,
			Status:   status,
		})
	}
	sort.Slice(budgets, func(i, j int) bool {
		if budgets[i].Percent.Equal(budgets[j].Percent) {
			return budgets[i].Category < budgets[j].Category
		}
		return budgets[i].Percent.GreaterThan(budgets[j].Percent)
	})

	return &GetBudgetsOutput{Budgets: budgets}, nil
}
