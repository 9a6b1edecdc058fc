package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
)

// Classifier resolves a merchant to a spending category. Known
// merchants come from the classification cache; unknown ones fall back
// to the built-in keyword table and then to the default category. The
// resolved category is written back so the merchant stays on the same
// category forever.
type Classifier struct {
	classifications ledger.ClassificationRepository
	logger          *zap.Logger
}

// NewClassifier creates a Classifier.
func NewClassifier(classifications ledger.ClassificationRepository, logger *zap.Logger) *Classifier {
	return &Classifier{
		classifications: classifications,
		logger:          logger.Named("classifier"),
	}
}

// Classify fills Category on the state. Failures are recorded on the
// state, never returned. A state that already failed passes through.
func (c *Classifier) Classify(ctx context.Context, state *State) {
	if state.Failed() {
		return
	}
	if state.Merchant == "" {
		state.Err = "Empresa não identificada para classificação."
		return
	}

	category, err := c.Resolve(ctx, state.Merchant)
	if err != nil {
		state.Err = fmt.Sprintf("Falha na classificação: %v", err)
		return
	}
	state.Category = category
}

// Resolve returns the sticky category for a merchant, creating the
// cache entry on first sight.
func (c *Classifier) Resolve(ctx context.Context, merchant string) (string, error) {
	existing, err := c.classifications.FindByMerchant(ctx, merchant)
	if err == nil {
		return existing.Category, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return "", err
	}

	category, matched := ledger.FallbackCategory(merchant)
	if !matched {
		category = ledger.CategoryOther
	}

	classification, err := ledger.NewMerchantClassification(merchant, category)
	if err != nil {
		return "", err
	}
	inserted, err := c.classifications.SaveIfAbsent(ctx, classification)
	if err != nil {
		return "", err
	}
	if !inserted {
		// A concurrent writer won; their category is the sticky one.
		winner, err := c.classifications.FindByMerchant(ctx, merchant)
		if err != nil {
			return "", err
		}
		return winner.Category, nil
	}

	c.logger.Info("merchant classified",
		zap.String("merchant", classification.Merchant),
		zap.String("category", category),
		zap.Bool("fallback_match", matched),
	)
	return category, nil
}
