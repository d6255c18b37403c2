// Package paymentmethod contains payment method use cases.
package paymentmethod

import (
	"context"
	"fmt"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
)

// ListPaymentMethodsOutput represents the output of listing payment methods.
type ListPaymentMethodsOutput struct {
	PaymentMethods []*entity.PaymentMethod
}

// ListPaymentMethodsUseCase handles the read-only payment method listing.
type ListPaymentMethodsUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewListPaymentMethodsUseCase creates a new ListPaymentMethodsUseCase instance.
func NewListPaymentMethodsUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *ListPaymentMethodsUseCase {
	return &ListPaymentMethodsUseCase{paymentMethodRepo: paymentMethodRepo}
}

// Execute retrieves all payment methods ordered by name.
func (uc *ListPaymentMethodsUseCase) Execute(ctx context.Context) (*ListPaymentMethodsOutput, error) {
	methods, err := uc.paymentMethodRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return &ListPaymentMethodsOutput{PaymentMethods: methods}, nil
}
