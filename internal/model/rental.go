package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental represents an active car rental. It references the car by id and
// the paying account by card number; it owns neither. TotalPrice is computed
// once at creation (days times the daily price snapshot) and never
// recomputed afterwards.
type Rental struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CarID         uint            `json:"car_id" gorm:"not null;index"`
	CardNumber    string          `json:"card_number" gorm:"size:19;not null;index"`
	StartDate     time.Time       `json:"start_date" gorm:"not null"`
	RentedForDays int             `json:"rented_for_days" gorm:"not null"`
	DailyPrice    decimal.Decimal `json:"daily_price" gorm:"type:decimal(20,2);not null"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(20,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relations
	Car Car `json:"-" gorm:"foreignKey:CarID"`
}
