package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a write-once billing snapshot taken when a rental is created.
// Car and card holder fields are denormalized copies as of that moment;
// the row is never updated by the rental flow.
type Invoice struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CardHolder    string          `json:"card_holder" gorm:"size:255;not null"`
	ModelName     string          `json:"model_name" gorm:"size:255;not null"`
	BrandName     string          `json:"brand_name" gorm:"size:255;not null"`
	Plate         string          `json:"plate" gorm:"size:16;not null"`
	ModelYear     int             `json:"model_year" gorm:"not null"`
	DailyPrice    decimal.Decimal `json:"daily_price" gorm:"type:decimal(20,2);not null"`
	RentedForDays int             `json:"rented_for_days" gorm:"not null"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(20,2);not null"`
	RentedAt      time.Time       `json:"rented_at" gorm:"not null"`
	CreatedAt     time.Time       `json:"created_at"`
}
