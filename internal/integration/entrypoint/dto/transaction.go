// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-finance/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount and quantity travel as JSON numbers.
type CreateTransactionRequest struct {
	Description     string   `json:"description" binding:"required,min=1,max=255"`
	Amount          float64  `json:"amount" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Date            string   `json:"date" binding:"required"`
	UserID          string   `json:"user_id" binding:"required,uuid"`
	CategoryID      string   `json:"category_id" binding:"required,uuid"`
	PaymentMethodID string   `json:"payment_method_id" binding:"required,uuid"`
	Installments    *int     `json:"installments,omitempty"`
	AssetTicker     string   `json:"asset_ticker,omitempty" binding:"omitempty,max=20"`
	Quantity        *float64 `json:"quantity,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description     *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount          *float64 `json:"amount,omitempty"`
	Type            *string  `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE"`
	Date            *string  `json:"date,omitempty"`
	UserID          *string  `json:"user_id,omitempty" binding:"omitempty,uuid"`
	CategoryID      *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	PaymentMethodID *string  `json:"payment_method_id,omitempty" binding:"omitempty,uuid"`
}

// TransactionResponse represents a single transaction row in API responses.
type TransactionResponse struct {
	ID                 string    `json:"id"`
	Description        string    `json:"description"`
	Amount             string    `json:"amount"`
	Type               string    `json:"type"`
	Date               string    `json:"date"`
	UserID             string    `json:"user_id"`
	CategoryID         string    `json:"category_id"`
	PaymentMethodID    string    `json:"payment_method_id"`
	AssetID            *string   `json:"asset_id,omitempty"`
	Quantity           *string   `json:"quantity,omitempty"`
	InstallmentGroupID *string   `json:"installment_group_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TransactionDetailResponse is a transaction row with its reference names
// denormalized, as returned by the listing.
type TransactionDetailResponse struct {
	TransactionResponse
	UserName          string `json:"user_name"`
	UserColor         string `json:"user_color"`
	CategoryName      string `json:"category_name"`
	CategoryColor     string `json:"category_color"`
	PaymentMethodName string `json:"payment_method_name"`
	AssetTicker       string `json:"asset_ticker,omitempty"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:              transaction.ID.String(),
		Description:     transaction.Description,
		Amount:          transaction.Amount.String(),
		Type:            string(transaction.Type),
		Date:            transaction.Date.Format("2006-01-02"),
		UserID:          transaction.UserID.String(),
		CategoryID:      transaction.CategoryID.String(),
		PaymentMethodID: transaction.PaymentMethodID.String(),
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
	if transaction.AssetID != nil {
		id := transaction.AssetID.String()
		response.AssetID = &id
	}
	if transaction.Quantity != nil {
		quantity := transaction.Quantity.String()
		response.Quantity = &quantity
	}
	if transaction.InstallmentGroupID != nil {
		group := transaction.InstallmentGroupID.String()
		response.InstallmentGroupID = &group
	}
	return response
}

// ToTransactionDetailListResponse converts detailed listings to responses.
func ToTransactionDetailListResponse(details []*entity.TransactionDetail) []TransactionDetailResponse {
	responses := make([]TransactionDetailResponse, len(details))
	for i, detail := range details {
		responses[i] = TransactionDetailResponse{
			TransactionResponse: ToTransactionResponse(&detail.Transaction),
			UserName:            detail.UserName,
			UserColor:           detail.UserColor,
			CategoryName:        detail.CategoryName,
			CategoryColor:       detail.CategoryColor,
			PaymentMethodName:   detail.PaymentMethodName,
			AssetTicker:         detail.AssetTicker,
		}
	}
	return responses
}
