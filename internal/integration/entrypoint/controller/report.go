// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/household-finance/backend/internal/application/usecase/report"
	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

// ReportController handles the dashboard report endpoints.
type ReportController struct {
	overviewUseCase    *report.GetOverviewUseCase
	trendsUseCase      *report.GetTrendsUseCase
	evolutionUseCase   *report.GetEvolutionUseCase
	projectionUseCase  *report.GetProjectionUseCase
	investmentsUseCase *report.GetInvestmentsUseCase
	budgetsUseCase     *report.GetBudgetsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	overviewUseCase *report.GetOverviewUseCase,
	trendsUseCase *report.GetTrendsUseCase,
	evolutionUseCase *report.GetEvolutionUseCase,
	projectionUseCase *report.GetProjectionUseCase,
	investmentsUseCase *report.GetInvestmentsUseCase,
	budgetsUseCase *report.GetBudgetsUseCase,
) *ReportController {
	return &ReportController{
		overviewUseCase:    overviewUseCase,
		trendsUseCase:      trendsUseCase,
		evolutionUseCase:   evolutionUseCase,
		projectionUseCase:  projectionUseCase,
		investmentsUseCase: investmentsUseCase,
		budgetsUseCase:     budgetsUseCase,
	}
}

// Overview handles GET /dashboard/overview requests.
func (c *ReportController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), report.GetOverviewInput{
		View: ctx.Query("view"),
	})
	if err != nil {
		respondReportError(ctx, err, "Failed to build overview")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// Trends handles GET /dashboard/trends requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	input := report.GetTrendsInput{}
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		if months, err := strconv.Atoi(monthsStr); err == nil {
			input.Months = months
		}
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			input.Offset = offset
		}
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondReportError(ctx, err, "Failed to build trends")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Evolution handles GET /dashboard/evolution requests.
func (c *ReportController) Evolution(ctx *gin.Context) {
	input := report.GetEvolutionInput{
		Granularity: ctx.Query("granularity"),
		UserName:    ctx.Query("user"),
	}
	if startStr := ctx.Query("start_date"); startStr != "" {
		if start, err := time.Parse(dateLayout, startStr); err == nil {
			input.StartDate = &start
		}
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		if end, err := time.Parse(dateLayout, endStr); err == nil {
			input.EndDate = &end
		}
	}

	output, err := c.evolutionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondReportError(ctx, err, "Failed to build evolution")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvolutionResponse(output))
}

// Projection handles GET /dashboard/projection requests.
func (c *ReportController) Projection(ctx *gin.Context) {
	output, err := c.projectionUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondReportError(ctx, err, "Failed to build projection")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectionResponse(output))
}

// Investments handles GET /dashboard/investments requests.
func (c *ReportController) Investments(ctx *gin.Context) {
	output, err := c.investmentsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondReportError(ctx, err, "Failed to build investments report")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentsResponse(output))
}

// Budgets handles GET /budgets requests.
func (c *ReportController) Budgets(ctx *gin.Context) {
	output, err := c.budgetsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondReportError(ctx, err, "Failed to build budgets")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetsResponse(output))
}

// respondReportError maps report errors onto HTTP responses.
func respondReportError(ctx *gin.Context, err error, fallback string) {
	var summaryErr *domainerror.SummaryError
	if errors.As(err, &summaryErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: summaryErr.Message,
			Code:  string(summaryErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: fallback,
	})
}
