package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/persistence/models"
)

// GormClassificationRepository implements ledger.ClassificationRepository using GORM
type GormClassificationRepository struct {
	db *gorm.DB
}

// NewGormClassificationRepository creates a new GormClassificationRepository
func NewGormClassificationRepository(db *gorm.DB) *GormClassificationRepository {
	return &GormClassificationRepository{db: db}
}

// FindByMerchant looks up the cached category for a merchant
func (r *GormClassificationRepository) FindByMerchant(ctx context.Context, merchant string) (*ledger.MerchantClassification, error) {
	var model models.MerchantClassificationModel
	if err := r.db.WithContext(ctx).
		Where("merchant = ?", ledger.NormalizeMerchant(merchant)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveIfAbsent inserts the classification unless the merchant already has
// one. The conflict clause makes concurrent inserts for the same merchant
// collapse into a single winner; losers are silently dropped.
func (r *GormClassificationRepository) SaveIfAbsent(ctx context.Context, c *ledger.MerchantClassification) (bool, error) {
	model := models.ClassificationModelFromDomain(c)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "merchant"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Seed inserts the given classifications, skipping merchants already present
func (r *GormClassificationRepository) Seed(ctx context.Context, entries []ledger.MerchantClassification) error {
	for i := range entries {
		if _, err := r.SaveIfAbsent(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}
