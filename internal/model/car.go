package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarState is the availability state of a car.
type CarState int

const (
	CarStateAvailable   CarState = 1
	CarStateRented      CarState = 2
	CarStateMaintenance CarState = 3
)

// String returns the lowercase name of the state.
func (s CarState) String() string {
	switch s {
	case CarStateAvailable:
		return "available"
	case CarStateRented:
		return "rented"
	case CarStateMaintenance:
		return "maintenance"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three known states.
func (s CarState) Valid() bool {
	return s >= CarStateAvailable && s <= CarStateMaintenance
}

// Car represents a rentable car. Model and brand descriptive fields are
// carried flat on the row; invoices snapshot them at rental time.
type Car struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Plate      string          `json:"plate" gorm:"size:16;uniqueIndex;not null"`
	ModelName  string          `json:"model_name" gorm:"size:255;not null"`
	BrandName  string          `json:"brand_name" gorm:"size:255;not null"`
	ModelYear  int             `json:"model_year" gorm:"not null"`
	DailyPrice decimal.Decimal `json:"daily_price" gorm:"type:decimal(20,2);not null"`
	State      CarState        `json:"state" gorm:"type:tinyint;not null;default:1;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
