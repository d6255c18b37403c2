// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/household-finance/backend/internal/application/usecase/summary"

// SummaryResponse represents the aggregated totals for a period.
type SummaryResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

// ToSummaryResponse converts a summary output to a SummaryResponse.
func ToSummaryResponse(output *summary.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  output.TotalIncome.String(),
		TotalExpense: output.TotalExpense.String(),
		Balance:      output.Balance.String(),
	}
}
