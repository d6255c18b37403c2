package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
)

// GetProjectionOutput is the run-rate projection payload.
type GetProjectionOutput struct {
	ProjectedBalance decimal.Decimal
	DailyAverage     decimal.Decimal
	WeeklyAverage    decimal.Decimal
	MonthlyAverage   decimal.Decimal
	YearlyAverage    decimal.Decimal
}

// GetProjectionUseCase extrapolates the current month's net to a full
// month and derives expense averages from the whole history.
type GetProjectionUseCase struct {
	source TransactionSource
	now    func() time.Time
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
func NewGetProjectionUseCase(source TransactionSource) *GetProjectionUseCase {
	return &GetProjectionUseCase{source: source, now: time.Now}
}

// Execute computes the projection.
func (uc *GetProjectionUseCase) Execute(ctx context.Context) (*GetProjectionOutput, error) {
	rows, err := uc.source.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.now()

	var currentMonth []*entity.TransactionDetail
	totalExpense := decimal.Zero
	var earliest time.Time
	for _, row := range rows {
		if sameMonth(row.Date, now) {
			currentMonth = append(currentMonth, row)
		}
		if row.Type == entity.TransactionTypeExpense {
			totalExpense = totalExpense.Add(row.Amount)
		}
		if earliest.IsZero() || row.Date.Before(earliest) {
			earliest = row.Date
		}
	}

	daysPassed := decimal.NewFromInt(int64(now.Day()))
	projected := netOf(currentMonth).
		Div(daysPassed).
		Mul(decimal.NewFromInt(int64(daysInMonth(now))))

	periodDays := int64(1)
	if !earliest.IsZero() {
		if d := int64(now.Sub(earliest).Hours()/24) + 1; d > periodDays {
			periodDays = d
		}
	}
	baseDaily := totalExpense.Div(decimal.NewFromInt(periodDays))

	return &GetProjectionOutput{
		ProjectedBalance: projected,
		DailyAverage:     baseDaily,
		WeeklyAverage:    baseDaily.Mul(decimal.NewFromInt(7)),
		MonthlyAverage:   baseDaily.Mul(decimal.NewFromInt(30)),
		YearlyAverage:    baseDaily.Mul(decimal.NewFromInt(365)),
	}, nil
}
