// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/csv"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/application/usecase/transaction"
	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase      *transaction.CreateTransactionUseCase
	listUseCase        *transaction.ListTransactionsUseCase
	updateUseCase      *transaction.UpdateTransactionUseCase
	deleteUseCase      *transaction.DeleteTransactionUseCase
	deleteGroupUseCase *transaction.DeleteInstallmentGroupUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	deleteGroupUseCase *transaction.DeleteInstallmentGroupUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		deleteGroupUseCase: deleteGroupUseCase,
	}
}

// Create handles POST /transactions requests. The response body is the
// first installment of the generated schedule.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Date must use the YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	categoryID, _ := uuid.Parse(req.CategoryID)
	paymentMethodID, _ := uuid.Parse(req.PaymentMethodID)

	input := transaction.CreateTransactionInput{
		Description:     req.Description,
		Amount:          decimal.NewFromFloat(req.Amount),
		Type:            entity.TransactionType(req.Type),
		Date:            date,
		UserID:          userID,
		CategoryID:      categoryID,
		PaymentMethodID: paymentMethodID,
		AssetTicker:     req.AssetTicker,
	}
	if req.Installments != nil {
		input.Installments = *req.Installments
	}
	if req.Quantity != nil {
		quantity := decimal.NewFromFloat(*req.Quantity)
		input.Quantity = &quantity
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var transactionErr *domainerror.TransactionError
		if errors.As(err, &transactionErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: transactionErr.Message,
				Code:  string(transactionErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create transaction",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionDetailListResponse(output.Transactions))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		Description:   req.Description,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Date must use the YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = &date
	}
	if req.UserID != nil {
		userID, _ := uuid.Parse(*req.UserID)
		input.UserID = &userID
	}
	if req.CategoryID != nil {
		categoryID, _ := uuid.Parse(*req.CategoryID)
		input.CategoryID = &categoryID
	}
	if req.PaymentMethodID != nil {
		paymentMethodID, _ := uuid.Parse(*req.PaymentMethodID)
		input.PaymentMethodID = &paymentMethodID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Transaction not found",
				Code:  string(domainerror.ErrCodeTransactionNotFound),
			})
			return
		}
		var transactionErr *domainerror.TransactionError
		if errors.As(err, &transactionErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: transactionErr.Message,
				Code:  string(transactionErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update transaction",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Transaction not found",
				Code:  string(domainerror.ErrCodeTransactionNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete transaction",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteGroup handles DELETE /transactions/group/:groupId requests. The
// operation is idempotent: unknown or malformed groups still return 204.
func (c *TransactionController) DeleteGroup(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("groupId"))
	if err != nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	if _, err := c.deleteGroupUseCase.Execute(ctx.Request.Context(), groupID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete installment group",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ExportCSV handles GET /transactions/export requests. The listing is
// streamed as a CSV attachment with reference names resolved.
func (c *TransactionController) ExportCSV(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
		})
		return
	}

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	ctx.Status(http.StatusOK)

	writer := csv.NewWriter(ctx.Writer)
	header := []string{
		"id", "date", "description", "amount", "type",
		"user", "category", "payment_method", "asset_ticker", "quantity",
		"installment_group_id",
	}
	if err := writer.Write(header); err != nil {
		return
	}

	for _, detail := range output.Transactions {
		quantity := ""
		if detail.Quantity != nil {
			quantity = detail.Quantity.String()
		}
		group := ""
		if detail.InstallmentGroupID != nil {
			group = detail.InstallmentGroupID.String()
		}

		record := []string{
			detail.ID.String(),
			detail.Date.Format(dateLayout),
			detail.Description,
			detail.Amount.String(),
			string(detail.Type),
			detail.UserName,
			detail.CategoryName,
			detail.PaymentMethodName,
			detail.AssetTicker,
			quantity,
			group,
		}
		if err := writer.Write(record); err != nil {
			return
		}
	}
	writer.Flush()
}
