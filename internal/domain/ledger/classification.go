package ledger

import (
	"strings"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
)

// MerchantClassification maps a normalized merchant name to a category.
// The first classification written for a merchant wins; later attempts
// for the same merchant are no-ops so a merchant never flips category.
type MerchantClassification struct {
	shared.BaseEntity
	Merchant string
	Category string
}

// NormalizeMerchant is the canonical key for classification lookups.
func NormalizeMerchant(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewMerchantClassification builds a classification with a normalized key.
func NewMerchantClassification(merchant, category string) (*MerchantClassification, error) {
	key := NormalizeMerchant(merchant)
	if key == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "merchant is required")
	}
	if category == "" {
		category = CategoryOther
	}
	return &MerchantClassification{
		BaseEntity: shared.NewBaseEntity(),
		Merchant:   key,
		Category:   category,
	}, nil
}

// FallbackCategories is the built-in merchant substring table consulted
// when the language model cannot classify a merchant.
var FallbackCategories = []struct {
	Keyword  string
	Category string
}{
	{"ifood", "Alimentação"},
	{"uber", "Transporte"},
	{"netflix", "Lazer"},
	{"amazon", "Compras"},
	{"mcdonald's", "Alimentação"},
}

// FallbackCategory scans the built-in table in order and returns the first
// category whose keyword occurs in the normalized merchant name.
func FallbackCategory(merchant string) (string, bool) {
	key := NormalizeMerchant(merchant)
	for _, entry := range FallbackCategories {
		if strings.Contains(key, entry.Keyword) {
			return entry.Category, true
		}
	}
	return "", false
}
