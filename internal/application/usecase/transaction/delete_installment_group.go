// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/application/adapter"
)

// DeleteInstallmentGroupOutput reports how many rows the group delete
// removed.
type DeleteInstallmentGroupOutput struct {
	Deleted int64
}

// DeleteInstallmentGroupUseCase removes every installment sharing a group
// id. An unknown group succeeds with zero rows removed.
type DeleteInstallmentGroupUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteInstallmentGroupUseCase creates a new DeleteInstallmentGroupUseCase instance.
func NewDeleteInstallmentGroupUseCase(transactionRepo adapter.TransactionRepository) *DeleteInstallmentGroupUseCase {
	return &DeleteInstallmentGroupUseCase{transactionRepo: transactionRepo}
}

// Execute deletes the whole installment group.
func (uc *DeleteInstallmentGroupUseCase) Execute(ctx context.Context, groupID uuid.UUID) (*DeleteInstallmentGroupOutput, error) {
	deleted, err := uc.transactionRepo.DeleteByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete installment group: %w", err)
	}
	return &DeleteInstallmentGroupOutput{Deleted: deleted}, nil
}
