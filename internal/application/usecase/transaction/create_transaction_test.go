package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	created     []*entity.Transaction
	assetTicker string
	createErr   error
}

func (s *stubTransactionRepo) CreateBatch(_ context.Context, transactions []*entity.Transaction, assetTicker string) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = transactions
	s.assetTicker = assetTicker
	return nil
}

func (s *stubTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *stubTransactionRepo) FindAllDetailed(context.Context) ([]*entity.TransactionDetail, error) {
	return nil, nil
}

func (s *stubTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }

func (s *stubTransactionRepo) DeleteByID(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubTransactionRepo) DeleteByGroup(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubTransactionRepo) SumByTypeInRange(context.Context, *time.Time, *time.Time) (*entity.TransactionTotals, error) {
	return &entity.TransactionTotals{}, nil
}

func validInput() CreateTransactionInput {
	return CreateTransactionInput{
		Description:     "Aluguel",
		Amount:          decimal.NewFromInt(1200),
		Type:            entity.TransactionTypeExpense,
		Date:            date(2025, time.January, 11),
		UserID:          uuid.New(),
		CategoryID:      uuid.New(),
		PaymentMethodID: uuid.New(),
	}
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	t.Run("creates a single row when installments is omitted", func(t *testing.T) {
		repo := &stubTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), validInput())

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "Aluguel", output.Transaction.Description)
		assert.True(t, output.Transaction.Amount.Equal(decimal.NewFromInt(1200)))
		assert.Nil(t, output.Transaction.InstallmentGroupID)
	})

	t.Run("splits three installments across consecutive months", func(t *testing.T) {
		repo := &stubTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo)

		input := validInput()
		input.Installments = 3

		output, err := uc.Execute(context.Background(), input)

		require.NoError(t, err)
		require.Len(t, repo.created, 3)

		per := decimal.NewFromInt(400)
		group := repo.created[0].InstallmentGroupID
		require.NotNil(t, group)

		for i, row := range repo.created {
			assert.True(t, row.Amount.Equal(per), "installment %d amount", i+1)
			require.NotNil(t, row.InstallmentGroupID)
			assert.Equal(t, *group, *row.InstallmentGroupID)
		}

		assert.Equal(t, "Aluguel (1/3)", repo.created[0].Description)
		assert.Equal(t, "Aluguel (2/3)", repo.created[1].Description)
		assert.Equal(t, "Aluguel (3/3)", repo.created[2].Description)

		assert.Equal(t, date(2025, time.January, 11), repo.created[0].Date)
		assert.Equal(t, date(2025, time.February, 11), repo.created[1].Date)
		assert.Equal(t, date(2025, time.March, 11), repo.created[2].Date)

		assert.Equal(t, repo.created[0].ID, output.Transaction.ID)
	})

	t.Run("divides without remainder correction", func(t *testing.T) {
		repo := &stubTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo)

		input := validInput()
		input.Amount = decimal.NewFromInt(100)
		input.Installments = 3

		_, err := uc.Execute(context.Background(), input)

		require.NoError(t, err)
		expected := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
		for _, row := range repo.created {
			assert.True(t, row.Amount.Equal(expected))
		}
	})

	t.Run("normalizes the asset ticker", func(t *testing.T) {
		repo := &stubTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo)

		qty := decimal.NewFromInt(10)
		input := validInput()
		input.Description = "Aporte PETR4"
		input.AssetTicker = " petr4 "
		input.Quantity = &qty

		_, err := uc.Execute(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "PETR4", repo.assetTicker)
		require.NotNil(t, repo.created[0].Quantity)
		assert.True(t, repo.created[0].Quantity.Equal(qty))
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&stubTransactionRepo{})

		input := validInput()
		input.Description = "   "

		_, err := uc.Execute(context.Background(), input)

		assert.ErrorIs(t, err, domainerror.ErrMissingTransactionFields)
	})

	t.Run("rejects an invalid type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&stubTransactionRepo{})

		input := validInput()
		input.Type = "TRANSFER"

		_, err := uc.Execute(context.Background(), input)

		assert.ErrorIs(t, err, domainerror.ErrInvalidTransactionType)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&stubTransactionRepo{})

		input := validInput()
		input.Amount = decimal.Zero

		_, err := uc.Execute(context.Background(), input)

		assert.ErrorIs(t, err, domainerror.ErrInvalidTransactionAmount)
	})

	t.Run("rejects a negative installment count", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&stubTransactionRepo{})

		input := validInput()
		input.Installments = -2

		_, err := uc.Execute(context.Background(), input)

		assert.ErrorIs(t, err, domainerror.ErrInvalidInstallmentCount)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := &stubTransactionRepo{createErr: errors.New("connection reset")}
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), validInput())

		assert.ErrorContains(t, err, "failed to create transaction")
	})
}
