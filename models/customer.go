package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery slots and preferred-time values.
const (
	SlotMorning = "morning"
	SlotEvening = "evening"
	TimeBoth    = "both"
)

// Behavior tags used for customer badges.
const (
	BehaviorVeryGood = "very_good"
	BehaviorGood     = "good"
	BehaviorOk       = "ok"
	BehaviorBad      = "bad"
)

type Customer struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	NameHi        string          `gorm:"size:255" json:"name_hi,omitempty"`
	Phone         string          `gorm:"size:20" json:"phone"`
	Address       string          `gorm:"type:text" json:"address"`
	DefaultQty    decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"default_qty"`
	RatePerKg     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rate_per_kg"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	PreferredTime string          `gorm:"size:10;not null;default:'morning'" json:"preferred_time"` // morning, evening, both
	Behavior      string          `gorm:"size:10;default:'good'" json:"behavior"`                   // very_good, good, ok, bad
}

// TableName overrides the table name
func (Customer) TableName() string {
	return "customers"
}

// WantsSlot reports whether the customer expects a delivery in the
// given slot.
func (c Customer) WantsSlot(slot string) bool {
	return c.PreferredTime == slot || c.PreferredTime == TimeBoth
}
