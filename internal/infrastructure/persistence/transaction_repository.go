package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/persistence/models"
)

// GormTransactionRepository implements ledger.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a new transaction
func (r *GormTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds transactions matching the filter, newest first
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.Transaction, error) {
	var txModels []models.TransactionModel
	query := r.db.WithContext(ctx).Model(&models.TransactionModel{})
	query = r.applyFilter(query, filter)

	if err := query.Order("date DESC, created_at DESC").Find(&txModels).Error; err != nil {
		return nil, err
	}
	txs := make([]ledger.Transaction, len(txModels))
	for i, model := range txModels {
		txs[i] = *model.ToDomain()
	}
	return txs, nil
}

// Count returns the number of transactions matching the filter,
// ignoring pagination.
func (r *GormTransactionRepository) Count(ctx context.Context, filter ledger.TransactionFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.TransactionModel{})
	query = r.applyConditions(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update persists changes to an existing transaction
func (r *GormTransactionRepository) Update(ctx context.Context, tx *ledger.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	result := r.db.WithContext(ctx).Model(&models.TransactionModel{}).
		Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"raw_text":   model.RawText,
			"amount":     model.Amount,
			"merchant":   model.Merchant,
			"date":       model.Date,
			"category":   model.Category,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a transaction by its ID
func (r *GormTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumByCategory aggregates transaction amounts per category
func (r *GormTransactionRepository) SumByCategory(ctx context.Context) ([]ledger.CategoryTotal, error) {
	type row struct {
		Category string
		Total    decimal.Decimal
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	totals := make([]ledger.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = ledger.CategoryTotal{Category: row.Category, Total: row.Total}
	}
	return totals, nil
}

// FindByDateRange finds transactions dated within [from, to], oldest first
func (r *GormTransactionRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]ledger.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}
	txs := make([]ledger.Transaction, len(txModels))
	for i, model := range txModels {
		txs[i] = *model.ToDomain()
	}
	return txs, nil
}

func (r *GormTransactionRepository) applyFilter(query *gorm.DB, filter ledger.TransactionFilter) *gorm.DB {
	query = r.applyConditions(query, filter)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

// applyConditions applies the filter predicates without pagination so
// Count sees the full matching set.
func (r *GormTransactionRepository) applyConditions(query *gorm.DB, filter ledger.TransactionFilter) *gorm.DB {
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Merchant != "" {
		query = query.Where("merchant = ?", filter.Merchant)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	return query
}
