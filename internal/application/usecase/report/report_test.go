package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

type stubSource struct {
	rows []*entity.TransactionDetail
}

func (s *stubSource) FindAllDetailed(context.Context) ([]*entity.TransactionDetail, error) {
	return s.rows, nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func row(description string, amount int64, txType entity.TransactionType, date time.Time, categoryName string) *entity.TransactionDetail {
	return &entity.TransactionDetail{
		Transaction: entity.Transaction{
			ID:          uuid.New(),
			Description: description,
			Amount:      decimal.NewFromInt(amount),
			Type:        txType,
			Date:        date,
		},
		UserName:     "Gabriel",
		CategoryName: categoryName,
	}
}

func TestGetOverviewUseCase_Execute(t *testing.T) {
	june := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	source := &stubSource{rows: []*entity.TransactionDetail{
		row("Salário", 5000, entity.TransactionTypeIncome, june, "Salário"),
		row("Mercado", 800, entity.TransactionTypeExpense, june, "Supermercado"),
		row("Restaurante", 200, entity.TransactionTypeExpense, june, "Restaurante"),
		row("Mercado maio", 600, entity.TransactionTypeExpense, may, "Supermercado"),
		row("Aporte PETR4", 1000, entity.TransactionTypeExpense, lastYear, "Investimentos - Aporte"),
		row("Resgate", 300, entity.TransactionTypeIncome, may, "Investimentos - Resgate"),
	}}

	uc := NewGetOverviewUseCase(source)
	uc.now = fixedNow

	t.Run("month view only counts the current month", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetOverviewInput{View: ViewMonth})

		require.NoError(t, err)
		assert.True(t, output.TotalIncome.Equal(decimal.NewFromInt(5000)))
		assert.True(t, output.TotalExpense.Equal(decimal.NewFromInt(1000)))
		assert.True(t, output.Balance.Equal(decimal.NewFromInt(4000)))
	})

	t.Run("balance to date and patrimony span all time", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetOverviewInput{View: ViewMonth})

		require.NoError(t, err)
		// 5000 - 800 - 200 - 600 - 1000 + 300
		assert.True(t, output.BalanceToDate.Equal(decimal.NewFromInt(2700)))
		assert.True(t, output.Patrimony.Equal(decimal.NewFromInt(700)))
	})

	t.Run("breakdown groups expenses by category name, largest first", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetOverviewInput{View: ViewMonth})

		require.NoError(t, err)
		require.Len(t, output.Breakdown, 2)
		assert.Equal(t, "Supermercado", output.Breakdown[0].Name)
		assert.True(t, output.Breakdown[0].Total.Equal(decimal.NewFromInt(800)))
		assert.Equal(t, "Restaurante", output.Breakdown[1].Name)
	})

	t.Run("year view widens the window", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetOverviewInput{View: ViewYear})

		require.NoError(t, err)
		assert.True(t, output.TotalIncome.Equal(decimal.NewFromInt(5300)))
		assert.True(t, output.TotalExpense.Equal(decimal.NewFromInt(1600)))
	})

	t.Run("rejects an unknown view", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetOverviewInput{View: "quarter"})

		assert.ErrorIs(t, err, domainerror.ErrInvalidView)
	})
}

func TestGetTrendsUseCase_Execute(t *testing.T) {
	source := &stubSource{rows: []*entity.TransactionDetail{
		row("Salário abril", 4000, entity.TransactionTypeIncome, time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC), "Salário"),
		row("Mercado abril", 1000, entity.TransactionTypeExpense, time.Date(2025, time.April, 8, 0, 0, 0, 0, time.UTC), "Supermercado"),
		row("Salário maio", 4000, entity.TransactionTypeIncome, time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC), "Salário"),
		row("Parcela futura", 500, entity.TransactionTypeExpense, time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC), "Eletrônicos"),
	}}

	uc := NewGetTrendsUseCase(source)
	uc.now = fixedNow

	output, err := uc.Execute(context.Background(), GetTrendsInput{Months: 4, Offset: 1})

	require.NoError(t, err)
	require.Len(t, output.Trends, 4)

	// Window: April through July 2025.
	assert.Equal(t, 4, output.Trends[0].Month)
	assert.True(t, output.Trends[0].Balance.Equal(decimal.NewFromInt(3000)))
	assert.False(t, output.Trends[0].Future)

	assert.Equal(t, 5, output.Trends[1].Month)
	assert.True(t, output.Trends[1].Balance.Equal(decimal.NewFromInt(7000)))

	assert.Equal(t, 6, output.Trends[2].Month)
	assert.True(t, output.Trends[2].Balance.Equal(decimal.NewFromInt(7000)))
	assert.False(t, output.Trends[2].Future)

	assert.Equal(t, 7, output.Trends[3].Month)
	assert.True(t, output.Trends[3].Expense.Equal(decimal.NewFromInt(500)))
	assert.True(t, output.Trends[3].Balance.Equal(decimal.NewFromInt(6500)))
	assert.True(t, output.Trends[3].Future)

	t.Run("accepts the maximum window", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetTrendsInput{Months: MaxTrendMonths})

		require.NoError(t, err)
		assert.Len(t, output.Trends, MaxTrendMonths)
	})

	t.Run("rejects an oversized window", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetTrendsInput{Months: 100000000})

		assert.ErrorIs(t, err, domainerror.ErrInvalidTrendWindow)
	})
}

func TestGetEvolutionUseCase_Execute(t *testing.T) {
	source := &stubSource{rows: []*entity.TransactionDetail{
		row("Mercado", 100, entity.TransactionTypeExpense, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "Supermercado"),
		row("Padaria", 50, entity.TransactionTypeExpense, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), "Padaria"),
		row("Mercado", 80, entity.TransactionTypeExpense, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), "Supermercado"),
		row("Salário", 5000, entity.TransactionTypeIncome, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), "Salário"),
	}}

	uc := NewGetEvolutionUseCase(source)

	t.Run("daily buckets expenses by day", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetEvolutionInput{Granularity: GranularityDaily})

		require.NoError(t, err)
		require.Len(t, output.Points, 2)
		assert.Equal(t, "02/06", output.Points[0].Label)
		assert.True(t, output.Points[0].Total.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, "10/06", output.Points[1].Label)
	})

	t.Run("monthly is the default", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetEvolutionInput{})

		require.NoError(t, err)
		require.Len(t, output.Points, 1)
		assert.Equal(t, "06/2025", output.Points[0].Label)
		assert.True(t, output.Points[0].Total.Equal(decimal.NewFromInt(230)))
	})

	t.Run("filters by user name case-insensitively", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetEvolutionInput{UserName: "gabriel"})

		require.NoError(t, err)
		require.Len(t, output.Points, 1)
		assert.True(t, output.Points[0].Total.Equal(decimal.NewFromInt(230)))
	})

	t.Run("rejects an unknown granularity", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetEvolutionInput{Granularity: "hourly"})

		assert.ErrorIs(t, err, domainerror.ErrInvalidGranularity)
	})
}

func TestGetProjectionUseCase_Execute(t *testing.T) {
	// now is June 15, a 30-day month.
	source := &stubSource{rows: []*entity.TransactionDetail{
		row("Salário", 3000, entity.TransactionTypeIncome, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), "Salário"),
		row("Mercado", 1500, entity.TransactionTypeExpense, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), "Supermercado"),
	}}

	uc := NewGetProjectionUseCase(source)
	uc.now = fixedNow

	output, err := uc.Execute(context.Background())

	require.NoError(t, err)
	// (3000 - 1500) / 15 * 30
	assert.True(t, output.ProjectedBalance.Equal(decimal.NewFromInt(3000)))

	// 1500 expense over 15 period days.
	assert.True(t, output.DailyAverage.Equal(decimal.NewFromInt(100)))
	assert.True(t, output.WeeklyAverage.Equal(decimal.NewFromInt(700)))
	assert.True(t, output.MonthlyAverage.Equal(decimal.NewFromInt(3000)))
	assert.True(t, output.YearlyAverage.Equal(decimal.NewFromInt(36500)))
}

func TestGetInvestmentsUseCase_Execute(t *testing.T) {
	qty := decimal.NewFromInt(10)
	aporte := row("Aporte PETR4", 1000, entity.TransactionTypeExpense, time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), "Investimentos - Aporte")
	aporte.AssetTicker = "PETR4"
	aporte.Quantity = &qty

	aporte2 := row("Aporte VALE3", 3000, entity.TransactionTypeExpense, time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC), "Investimentos - Aporte")
	aporte2.AssetTicker = "VALE3"

	source := &stubSource{rows: []*entity.TransactionDetail{
		aporte,
		aporte2,
		row("Resgate", 500, entity.TransactionTypeIncome, time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), "Investimentos - Resgate"),
		row("Dividendos PETR4", 120, entity.TransactionTypeIncome, time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC), "Investimentos - Dividendos"),
		row("Mercado", 400, entity.TransactionTypeExpense, time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC), "Supermercado"),
	}}

	uc := NewGetInvestmentsUseCase(source)

	output, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, output.TotalContributed.Equal(decimal.NewFromInt(4000)))
	assert.True(t, output.TotalRedeemed.Equal(decimal.NewFromInt(500)))
	assert.True(t, output.TotalDividends.Equal(decimal.NewFromInt(120)))
	assert.True(t, output.Patrimony.Equal(decimal.NewFromInt(3500)))

	require.Len(t, output.Allocation, 2)
	assert.Equal(t, "VALE3", output.Allocation[0].Ticker)
	assert.True(t, output.Allocation[0].Percent.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, "PETR4", output.Allocation[1].Ticker)
	assert.True(t, output.Allocation[1].Quantity.Equal(qty))

	assert.Len(t, output.Recent, 4)
}

func TestGetBudgetsUseCase_Execute(t *testing.T) {
	source := &stubSource{rows: []*entity.TransactionDetail{
		row("Mercado", 1300, entity.TransactionTypeExpense, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), "Supermercado"),
		row("Jantar", 450, entity.TransactionTypeExpense, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), "Restaurante"),
		row("Mercado maio", 2000, entity.TransactionTypeExpense, time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC), "Supermercado"),
	}}

	limits := map[string]decimal.Decimal{
		"Supermercado": decimal.NewFromInt(1200),
		"Restaurante":  decimal.NewFromInt(500),
		"Farmácia":     decimal.NewFromInt(400),
	}

	uc := NewGetBudgetsUseCase(source, limits)
	uc.now = fixedNow

	output, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, output.Budgets, 3)

	assert.Equal(t, "Supermercado", output.Budgets[0].Category)
	assert.Equal(t, BudgetExceeded, output.Budgets[0].Status)
	assert.True(t, output.Budgets[0].Spent.Equal(decimal.NewFromInt(1300)))

	assert.Equal(t, "Restaurante", output.Budgets[1].Category)
	assert.Equal(t, BudgetWarning, output.Budgets[1].Status)

	assert.Equal(t, "Farmácia", output.Budgets[2].Category)
	assert.Equal(t, BudgetHealthy, output.Budgets[2].Status)
	assert.True(t, output.Budgets[2].Spent.IsZero())
}
