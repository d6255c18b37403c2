// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-finance/backend/internal/application/usecase/paymentmethod"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

// PaymentMethodController handles payment method endpoints.
type PaymentMethodController struct {
	listUseCase *paymentmethod.ListPaymentMethodsUseCase
}

// NewPaymentMethodController creates a new payment method controller instance.
func NewPaymentMethodController(listUseCase *paymentmethod.ListPaymentMethodsUseCase) *PaymentMethodController {
	return &PaymentMethodController{listUseCase: listUseCase}
}

// List handles GET /payment-methods requests.
func (c *PaymentMethodController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve payment methods",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodListResponse(output.PaymentMethods))
}
