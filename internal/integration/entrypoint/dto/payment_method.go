// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-finance/backend/internal/domain/entity"
)

// PaymentMethodResponse represents a payment method in API responses.
type PaymentMethodResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPaymentMethodListResponse converts a list of PaymentMethod entities to responses.
func ToPaymentMethodListResponse(methods []*entity.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(methods))
	for i, method := range methods {
		responses[i] = PaymentMethodResponse{
			ID:        method.ID.String(),
			Name:      method.Name,
			CreatedAt: method.CreatedAt,
		}
	}
	return responses
}
