package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
)

// TransactionModel is the persistence model for ledger transactions
type TransactionModel struct {
	BaseModel
	RawText  string          `gorm:"type:text"`
	Amount   decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Merchant string          `gorm:"type:varchar(255);not null;index"`
	Date     time.Time       `gorm:"not null;index"`
	Category string          `gorm:"type:varchar(100);not null;index"`
}

// TableName specifies the table name
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the model to a domain transaction
func (m *TransactionModel) ToDomain() *ledger.Transaction {
	return &ledger.Transaction{
		BaseEntity: m.BaseModel.ToDomain(),
		RawText:    m.RawText,
		Amount:     m.Amount,
		Merchant:   m.Merchant,
		Date:       m.Date,
		Category:   m.Category,
	}
}

// TransactionModelFromDomain converts a domain transaction to its model
func TransactionModelFromDomain(t *ledger.Transaction) *TransactionModel {
	m := &TransactionModel{
		RawText:  t.RawText,
		Amount:   t.Amount,
		Merchant: t.Merchant,
		Date:     t.Date,
		Category: t.Category,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// MerchantClassificationModel is the persistence model for the
// merchant classification cache
type MerchantClassificationModel struct {
	BaseModel
	Merchant string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category string `gorm:"type:varchar(100);not null"`
}

// TableName specifies the table name
func (MerchantClassificationModel) TableName() string {
	return "merchant_classifications"
}

// ToDomain converts the model to a domain classification
func (m *MerchantClassificationModel) ToDomain() *ledger.MerchantClassification {
	return &ledger.MerchantClassification{
		BaseEntity: m.BaseModel.ToDomain(),
		Merchant:   m.Merchant,
		Category:   m.Category,
	}
}

// ClassificationModelFromDomain converts a domain classification to its model
func ClassificationModelFromDomain(c *ledger.MerchantClassification) *MerchantClassificationModel {
	m := &MerchantClassificationModel{
		Merchant: c.Merchant,
		Category: c.Category,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
