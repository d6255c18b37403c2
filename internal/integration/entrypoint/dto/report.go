// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/household-finance/backend/internal/application/usecase/report"

// CategoryBreakdownResponse is one slice of the expense breakdown.
type CategoryBreakdownResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Total string `json:"total"`
}

// OverviewResponse represents the dashboard overview payload.
type OverviewResponse struct {
	TotalIncome   string                      `json:"total_income"`
	TotalExpense  string                      `json:"total_expense"`
	Balance       string                      `json:"balance"`
	BalanceToDate string                      `json:"balance_to_date"`
	Patrimony     string                      `json:"patrimony"`
	Breakdown     []CategoryBreakdownResponse `json:"breakdown"`
	Recent        []TransactionDetailResponse `json:"recent"`
}

// ToOverviewResponse converts an overview output to an OverviewResponse.
func ToOverviewResponse(output *report.GetOverviewOutput) OverviewResponse {
	breakdown := make([]CategoryBreakdownResponse, len(output.Breakdown))
	for i, slice := range output.Breakdown {
		breakdown[i] = CategoryBreakdownResponse{
			Name:  slice.Name,
			Color: slice.Color,
			Total: slice.Total.String(),
		}
	}
	return OverviewResponse{
		TotalIncome:   output.TotalIncome.String(),
		TotalExpense:  output.TotalExpense.String(),
		Balance:       output.Balance.String(),
		BalanceToDate: output.BalanceToDate.String(),
		Patrimony:     output.Patrimony.String(),
		Breakdown:     breakdown,
		Recent:        ToTransactionDetailListResponse(output.Recent),
	}
}

// MonthTrendResponse is one month of the trend window.
type MonthTrendResponse struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
	Future  bool   `json:"future"`
}

// ToTrendsResponse converts a trends output to responses.
func ToTrendsResponse(output *report.GetTrendsOutput) []MonthTrendResponse {
	responses := make([]MonthTrendResponse, len(output.Trends))
	for i, trend := range output.Trends {
		responses[i] = MonthTrendResponse{
			Year:    trend.Year,
			Month:   trend.Month,
			Income:  trend.Income.String(),
			Expense: trend.Expense.String(),
			Balance: trend.Balance.String(),
			Future:  trend.Future,
		}
	}
	return responses
}

// EvolutionPointResponse is one bucket of the expense series.
type EvolutionPointResponse struct {
	Label string `json:"label"`
	Total string `json:"total"`
}

// ToEvolutionResponse converts an evolution output to responses.
func ToEvolutionResponse(output *report.GetEvolutionOutput) []EvolutionPointResponse {
	responses := make([]EvolutionPointResponse, len(output.Points))
	for i, point := range output.Points {
		responses[i] = EvolutionPointResponse{
			Label: point.Label,
			Total: point.Total.String(),
		}
	}
	return responses
}

// ProjectionResponse represents the run-rate projection payload.
type ProjectionResponse struct {
	ProjectedBalance string `json:"projected_balance"`
	DailyAverage     string `json:"daily_average"`
	WeeklyAverage    string `json:"weekly_average"`
	MonthlyAverage   string `json:"monthly_average"`
	YearlyAverage    string `json:"yearly_average"`
}

// ToProjectionResponse converts a projection output to a ProjectionResponse.
func ToProjectionResponse(output *report.GetProjectionOutput) ProjectionResponse {
	return ProjectionResponse{
		ProjectedBalance: output.ProjectedBalance.String(),
		DailyAverage:     output.DailyAverage.String(),
		WeeklyAverage:    output.WeeklyAverage.String(),
		MonthlyAverage:   output.MonthlyAverage.String(),
		YearlyAverage:    output.YearlyAverage.String(),
	}
}

// AssetAllocationResponse is one ticker slice of the allocation.
type AssetAllocationResponse struct {
	Ticker   string `json:"ticker"`
	Total    string `json:"total"`
	Quantity string `json:"quantity"`
	Percent  string `json:"percent"`
}

// InvestmentsResponse represents the investments dashboard payload.
type InvestmentsResponse struct {
	TotalContributed string                      `json:"total_contributed"`
	TotalRedeemed    string                      `json:"total_redeemed"`
	TotalDividends   string                      `json:"total_dividends"`
	Patrimony        string                      `json:"patrimony"`
	Allocation       []AssetAllocationResponse   `json:"allocation"`
	Recent           []TransactionDetailResponse `json:"recent"`
}

// ToInvestmentsResponse converts an investments output to an InvestmentsResponse.
func ToInvestmentsResponse(output *report.GetInvestmentsOutput) InvestmentsResponse {
	allocation := make([]AssetAllocationResponse, len(output.Allocation))
	for i, slice := range output.Allocation {
		allocation[i] = AssetAllocationResponse{
			Ticker:   slice.Ticker,
			Total:    slice.Total.String(),
			Quantity: slice.Quantity.String(),
			Percent:  slice.Percent.Round(2).String(),
		}
	}
	return InvestmentsResponse{
		TotalContributed: output.TotalContributed.String(),
		TotalRedeemed:    output.TotalRedeemed.String(),
		TotalDividends:   output.TotalDividends.String(),
		Patrimony:        output.Patrimony.String(),
		Allocation:       allocation,
		Recent:           ToTransactionDetailListResponse(output.Recent),
	}
}

// BudgetStatusResponse is one category limit checked against the month.
type BudgetStatusResponse struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Spent    string `json:"spent"`
	Percent  string `json:"percent"`
	Status   string `json:"status"`
}

// ToBudgetsResponse converts a budgets output to responses.
func ToBudgetsResponse(output *report.GetBudgetsOutput) []BudgetStatusResponse {
	responses := make([]BudgetStatusResponse, len(output.Budgets))
	for i, budget := range output.Budgets {
		responses[i] = BudgetStatusResponse{
			Category: budget.Category,
			Limit:    budget.Limit.String(),
			Spent:    budget.Spent.String(),
			Percent:  budget.Percent.Round(2).String(),
			Status:   budget.Status,
		}
	}
	return responses
}
