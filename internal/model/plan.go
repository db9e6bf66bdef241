package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is immutable subscription reference data: a named tier with a duration
// in calendar days and a price.
type Plan struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"size:255;uniqueIndex;not null"`
	DurationDays int             `json:"duration_days" gorm:"not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
}
