package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
)

// AssetAllocation is one ticker slice of the contribution allocation.
type AssetAllocation struct {
	Ticker   string
	Total    decimal.Decimal
	Quantity decimal.Decimal
	Percent  decimal.Decimal
}

// GetInvestmentsOutput is the investments dashboard payload.
type GetInvestmentsOutput struct {
	TotalContributed decimal.Decimal
	TotalRedeemed    decimal.Decimal
	TotalDividends   decimal.Decimal
	Patrimony        decimal.Decimal
	Allocation       []AssetAllocation
	Recent           []*entity.TransactionDetail
}

// GetInvestmentsUseCase reduces the rows whose category marks an
// investment movement into totals and a per-ticker allocation.
type GetInvestmentsUseCase struct {
	source TransactionSource
}

// NewGetInvestmentsUseCase creates a new GetInvestmentsUseCase instance.
func NewGetInvestmentsUseCase(source TransactionSource) *GetInvestmentsUseCase {
	return &GetInvestmentsUseCase{source: source}
}

// Execute builds the investments report.
func (uc *GetInvestmentsUseCase) Execute(ctx context.Context) (*GetInvestmentsOutput, error) {
	rows, err := uc.source.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	output := &GetInvestmentsOutput{
		TotalContributed: decimal.Zero,
		TotalRedeemed:    decimal.Zero,
		TotalDividends:   decimal.Zero,
	}
	type slice struct {
		total    decimal.Decimal
		quantity decimal.Decimal
	}
	byTicker := map[string]*slice{}
	allocated := decimal.Zero

	for _, row := range rows {
		category := strings.ToLower(row.CategoryName)
		if !strings.Contains(category, "investimento") {
			continue
		}

		switch {
		case strings.Contains(category, "aporte"):
			output.TotalContributed = output.TotalContributed.Add(row.Amount)
			if row.AssetTicker != "" {
				s, ok := byTicker[row.AssetTicker]
				if !ok {
					s = &slice{total: decimal.Zero, quantity: decimal.Zero}
					byTicker[row.AssetTicker] = s
				}
				s.total = s.total.Add(row.Amount)
				if row.Quantity != nil {
					s.quantity = s.quantity.Add(*row.Quantity)
				}
				allocated = allocated.Add(row.Amount)
			}
		case strings.Contains(category, "resgate"):
			output.TotalRedeemed = output.TotalRedeemed.Add(row.Amount)
		case strings.Contains(category, "dividendo"):
			output.TotalDividends = output.TotalDividends.Add(row.Amount)
		}

		if len(output.Recent) < 10 {
			output.Recent = append(output.Recent, row)
		}
	}

	output.Patrimony = output.TotalContributed.Sub(output.TotalRedeemed)

	hundred := decimal.NewFromInt(100)
	output.Allocation = make([]AssetAllocation, 0, len(byTicker))
	for ticker, s := range byTicker {
		percent := decimal.Zero
		if allocated.IsPositive() {
			percent = s.total.Div(allocated).Mul(hundred)
		}
		output.Allocation = append(output.Allocation, AssetAllocation{
			Ticker:   ticker,
			Total:    s.total,
			Quantity: s.quantity,
			Percent:  percent,
		})
	}
	sort.Slice(output.Allocation, func(i, j int) bool {
		return output.Allocation[i].Total.GreaterThan(output.Allocation[j].Total)
	})

	return output, nil
}
