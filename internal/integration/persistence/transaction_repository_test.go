package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/persistence/model"
)

type transactionFixture struct {
	db              *gorm.DB
	userID          uuid.UUID
	categoryID      uuid.UUID
	paymentMethodID uuid.UUID
}

func newTransactionFixture(t *testing.T) transactionFixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	user := entity.NewUser("Gabriel", "")
	require.NoError(t, NewUserRepository(db).Upsert(ctx, user))

	category := entity.NewCategory("Supermercado", entity.CategoryTypeExpense, "")
	require.NoError(t, NewCategoryRepository(db).Upsert(ctx, category))

	method := entity.NewPaymentMethod("Pix")
	require.NoError(t, NewPaymentMethodRepository(db).EnsureExists(ctx, method))

	return transactionFixture{
		db:              db,
		userID:          user.ID,
		categoryID:      category.ID,
		paymentMethodID: method.ID,
	}
}

func (f transactionFixture) transaction(description string, amount int64, txType entity.TransactionType, day time.Time) *entity.Transaction {
	return entity.NewTransaction(
		description,
		decimal.NewFromInt(amount),
		txType,
		day,
		f.userID,
		f.categoryID,
		f.paymentMethodID,
	)
}

func TestTransactionRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a plain batch", func(t *testing.T) {
		f := newTransactionFixture(t)
		repo := NewTransactionRepository(f.db)

		tx := f.transaction("Mercado", 250, entity.TransactionTypeExpense, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{tx}, ""))

		found, err := repo.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mercado", found.Description)
		assert.Nil(t, found.AssetID)
	})

	t.Run("creates the asset once and links every row", func(t *testing.T) {
		f := newTransactionFixture(t)
		repo := NewTransactionRepository(f.db)

		first := f.transaction("Aporte PETR4", 1000, entity.TransactionTypeExpense, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{first}, "PETR4"))

		second := f.transaction("Aporte PETR4", 500, entity.TransactionTypeExpense, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
		require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{second}, "PETR4"))

		require.NotNil(t, first.AssetID)
		require.NotNil(t, second.AssetID)
		assert.Equal(t, *first.AssetID, *second.AssetID)

		assets, err := NewAssetRepository(f.db).FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, "PETR4", assets[0].Ticker)
	})
}

func TestTransactionRepository_FindAllDetailed(t *testing.T) {
	ctx := context.Background()
	f := newTransactionFixture(t)
	repo := NewTransactionRepository(f.db)

	older := f.transaction("Mercado", 250, entity.TransactionTypeExpense, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	newer := f.transaction("Salário", 5000, entity.TransactionTypeIncome, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{older}, ""))
	require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{newer}, ""))

	details, err := repo.FindAllDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, "Salário", details[0].Description)
	assert.Equal(t, "Gabriel", details[0].UserName)
	assert.Equal(t, "Supermercado", details[0].CategoryName)
	assert.Equal(t, "Pix", details[0].PaymentMethodName)
	assert.Empty(t, details[0].AssetTicker)
}

func TestTransactionRepository_FindAllDetailed_FallsBackForMissingReferences(t *testing.T) {
	ctx := context.Background()
	f := newTransactionFixture(t)
	repo := NewTransactionRepository(f.db)

	tx := f.transaction("Mercado", 100, entity.TransactionTypeExpense, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	tx.UserID = uuid.New()
	tx.CategoryID = uuid.New()
	require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{tx}, ""))

	details, err := repo.FindAllDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)

	assert.Equal(t, entity.InactiveUserName, details[0].UserName)
	assert.Equal(t, entity.InactiveCategoryName, details[0].CategoryName)
	assert.Equal(t, entity.DefaultCategoryColor, details[0].CategoryColor)
}

func TestTransactionRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	f := newTransactionFixture(t)
	repo := NewTransactionRepository(f.db)

	tx := f.transaction("Mercado", 100, entity.TransactionTypeExpense, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{tx}, ""))

	deleted, err := repo.DeleteByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, tx.ID)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
}

func TestTransactionRepository_DeleteByGroup(t *testing.T) {
	ctx := context.Background()
	f := newTransactionFixture(t)
	repo := NewTransactionRepository(f.db)

	groupID := uuid.New()
	var batch []*entity.Transaction
	for i := 0; i < 3; i++ {
		tx := f.transaction("Notebook", 400, entity.TransactionTypeExpense, time.Date(2025, time.Month(6+i), 11, 0, 0, 0, 0, time.UTC))
		tx.InstallmentGroupID = &groupID
		batch = append(batch, tx)
	}
	loner := f.transaction("Mercado", 100, entity.TransactionTypeExpense, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	batch = append(batch, loner)
	require.NoError(t, repo.CreateBatch(ctx, batch, ""))

	deleted, err := repo.DeleteByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	deleted, err = repo.DeleteByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	remaining, err := repo.FindAllDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Mercado", remaining[0].Description)
}

func TestTransactionRepository_SumByTypeInRange(t *testing.T) {
	ctx := context.Background()
	f := newTransactionFixture(t)
	repo := NewTransactionRepository(f.db)

	rows := []*entity.Transaction{
		f.transaction("Salário", 5000, entity.TransactionTypeIncome, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)),
		f.transaction("Mercado", 800, entity.TransactionTypeExpense, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
		f.transaction("Mercado maio", 600, entity.TransactionTypeExpense, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, repo.CreateBatch(ctx, rows, ""))

	t.Run("bounded range", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

		totals, err := repo.SumByTypeInRange(ctx, &start, &end)
		require.NoError(t, err)
		assert.True(t, totals.Income.Equal(decimal.NewFromInt(5000)))
		assert.True(t, totals.Expense.Equal(decimal.NewFromInt(800)))
	})

	t.Run("open range covers everything", func(t *testing.T) {
		totals, err := repo.SumByTypeInRange(ctx, nil, nil)
		require.NoError(t, err)
		assert.True(t, totals.Income.Equal(decimal.NewFromInt(5000)))
		assert.True(t, totals.Expense.Equal(decimal.NewFromInt(1400)))
	})

	t.Run("empty range coerces to zero", func(t *testing.T) {
		start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		totals, err := repo.SumByTypeInRange(ctx, &start, nil)
		require.NoError(t, err)
		assert.True(t, totals.Income.IsZero())
		assert.True(t, totals.Expense.IsZero())
	})
}

func TestCategoryRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	first := entity.NewCategory("Restaurante", entity.CategoryTypeExpense, "#e91e63")
	require.NoError(t, repo.Upsert(ctx, first))

	second := entity.NewCategory("Restaurante", entity.CategoryTypeExpense, "#ff5722")
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)

	categories, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "#ff5722", categories[0].Color)
}

func TestPaymentMethodRepository_EnsureExists(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentMethodRepository(newTestDB(t))

	first := entity.NewPaymentMethod("Pix")
	require.NoError(t, repo.EnsureExists(ctx, first))

	second := entity.NewPaymentMethod("Pix")
	require.NoError(t, repo.EnsureExists(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	methods, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 1)
}

// Guards the raw listing query against column drift in the models.
func TestDetailedRowMatchesModelColumns(t *testing.T) {
	db := newTestDB(t)

	stmt := &gorm.Statement{DB: db}
	require.NoError(t, stmt.Parse(&model.TransactionModel{}))

	for _, column := range []string{
		"id", "description", "amount", "type", "date",
		"user_id", "category_id", "payment_method_id", "asset_id",
		"quantity", "installment_group_id", "created_at", "updated_at",
	} {
		assert.NotNil(t, stmt.Schema.LookUpField(column), "missing column %s", column)
	}
}
