package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/persistence/models"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TransactionModel{}, &models.MerchantClassificationModel{})
	require.NoError(t, err)

	return db
}

func mustNewTransaction(t *testing.T, amount float64, merchant, category string, date time.Time) *ledger.Transaction {
	tx, err := ledger.NewTransaction("", decimal.NewFromFloat(amount), merchant, date, category)
	require.NoError(t, err)
	return tx
}

func TestGormTransactionRepository_CRUD(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	date := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	tx := mustNewTransaction(t, -55.90, "iFood", "Alimentação", date)
	tx.RawText = "Compra de R$ 55,90 no iFood"

	require.NoError(t, repo.Create(ctx, tx))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, "iFood", found.Merchant)
		assert.Equal(t, "Alimentação", found.Category)
		assert.True(t, found.Amount.Equal(decimal.NewFromFloat(-55.90)))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		other := mustNewTransaction(t, -1, "x", "Outros", date)
		_, err := repo.FindByID(ctx, other.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("updates fields", func(t *testing.T) {
		tx.Category = "Lazer"
		tx.Amount = decimal.NewFromFloat(-60)
		require.NoError(t, repo.Update(ctx, tx))

		found, err := repo.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lazer", found.Category)
		assert.True(t, found.Amount.Equal(decimal.NewFromFloat(-60)))
	})

	t.Run("update of missing row returns not found", func(t *testing.T) {
		ghost := mustNewTransaction(t, -1, "ghost", "Outros", date)
		assert.ErrorIs(t, repo.Update(ctx, ghost), shared.ErrNotFound)
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, tx.ID))
		_, err := repo.FindByID(ctx, tx.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, tx.ID), shared.ErrNotFound)
	})
}

func TestGormTransactionRepository_FindAll(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -100, "Uber", "Transporte", base)))
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -25, "Uber", "Transporte", base.AddDate(0, 0, 5))))
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -50, "Netflix", "Lazer", base.AddDate(0, 0, 10))))

	t.Run("filters by category", func(t *testing.T) {
		txs, err := repo.FindAll(ctx, ledger.TransactionFilter{Category: "Transporte"})
		require.NoError(t, err)
		assert.Len(t, txs, 2)
	})

	t.Run("filters by merchant", func(t *testing.T) {
		txs, err := repo.FindAll(ctx, ledger.TransactionFilter{Merchant: "Netflix"})
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, "Lazer", txs[0].Category)
	})

	t.Run("filters by date range and orders newest first", func(t *testing.T) {
		from := base.AddDate(0, 0, 1)
		txs, err := repo.FindAll(ctx, ledger.TransactionFilter{From: &from})
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, "Netflix", txs[0].Merchant)
	})

	t.Run("applies limit", func(t *testing.T) {
		txs, err := repo.FindAll(ctx, ledger.TransactionFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("count ignores pagination", func(t *testing.T) {
		count, err := repo.Count(ctx, ledger.TransactionFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("count honors filter predicates", func(t *testing.T) {
		count, err := repo.Count(ctx, ledger.TransactionFilter{Category: "Transporte"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormTransactionRepository_SumByCategory(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	date := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -100, "Uber", "Transporte", date)))
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -25, "99", "Transporte", date)))
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -50, "Netflix", "Lazer", date)))

	totals, err := repo.SumByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byCategory := make(map[string]decimal.Decimal)
	for _, ct := range totals {
		byCategory[ct.Category] = ct.Total
	}
	assert.True(t, byCategory["Transporte"].Equal(decimal.NewFromInt(-125)))
	assert.True(t, byCategory["Lazer"].Equal(decimal.NewFromInt(-50)))
}

func TestGormTransactionRepository_FindByDateRange(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -10, "a", "Outros", base)))
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -20, "b", "Outros", base.AddDate(0, 0, 15))))
	require.NoError(t, repo.Create(ctx, mustNewTransaction(t, -30, "c", "Outros", base.AddDate(0, 1, 0))))

	txs, err := repo.FindByDateRange(ctx, base, base.AddDate(0, 0, 20))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "a", txs[0].Merchant)
	assert.Equal(t, "b", txs[1].Merchant)
}
