package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a stored payment card and its ledger balance.
// The card number is the business identity; debits are the only balance
// mutation during the rental flow and never take the balance below zero.
type Payment struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	CardNumber          string          `json:"card_number" gorm:"size:19;uniqueIndex;not null"`
	CardHolder          string          `json:"card_holder" gorm:"size:255;not null"`
	CardExpirationYear  int             `json:"card_expiration_year" gorm:"not null"`
	CardExpirationMonth int             `json:"card_expiration_month" gorm:"not null"`
	CardCVV             string          `json:"card_cvv" gorm:"size:4;not null"`
	Balance             decimal.Decimal `json:"balance" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
