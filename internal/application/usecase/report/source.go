// Package report contains the dashboard report use cases. Every report
// fetches the joined transaction listing once and reduces it in memory, so
// reference names are already resolved and no report needs its own query.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
)

// TransactionSource provides the joined listing the reports reduce over.
type TransactionSource interface {
	FindAllDetailed(ctx context.Context) ([]*entity.TransactionDetail, error)
}

// Category names that mark investment movements.
const (
	categoryContribution = "Investimentos - Aporte"
	categoryRedemption   = "Investimentos - Resgate"
)

// sameMonth reports whether t falls in the calendar month of ref.
func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

// netOf sums income minus expense over rows.
func netOf(rows []*entity.TransactionDetail) decimal.Decimal {
	net := decimal.Zero
	for _, row := range rows {
		if row.Type == entity.TransactionTypeIncome {
			net = net.Add(row.Amount)
		} else {
			net = net.Sub(row.Amount)
		}
	}
	return net
}

// daysInMonth returns the number of days in t's month.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
