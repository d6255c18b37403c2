// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/household-finance/backend/internal/application/usecase/summary"
	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the summary endpoint.
type SummaryController struct {
	getUseCase *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getUseCase *summary.GetSummaryUseCase) *SummaryController {
	return &SummaryController{getUseCase: getUseCase}
}

// Get handles GET /summary requests. month and year are optional query
// parameters; month without year is rejected.
func (c *SummaryController) Get(ctx *gin.Context) {
	input := summary.GetSummaryInput{}

	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "month must be a number",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		input.Month = &month
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year must be a number",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		input.Year = &year
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var summaryErr *domainerror.SummaryError
		if errors.As(err, &summaryErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: summaryErr.Message,
				Code:  string(summaryErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
