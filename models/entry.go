package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryEntry records one delivery slot for one customer on one day.
// At most one row exists per (customer, date, slot); writes for the
// same key replace quantity, delivery flag and note. IsDelivered=false
// is an explicit absence marker, distinct from no row at all.
type DeliveryEntry struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CustomerID  uint            `gorm:"not null;uniqueIndex:idx_entries_key,priority:1" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Date        Date            `gorm:"not null;uniqueIndex:idx_entries_key,priority:2;index" json:"date"`
	Slot        string          `gorm:"size:10;uniqueIndex:idx_entries_key,priority:3" json:"slot,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,3)" json:"quantity"`
	IsDelivered bool            `json:"is_delivered"`
	Note        string          `gorm:"type:text" json:"note,omitempty"`
}

// TableName overrides the table name
func (DeliveryEntry) TableName() string {
	return "delivery_entries"
}

// EffectiveSlot resolves the stored slot, treating records written
// before slots existed as morning deliveries.
func (e DeliveryEntry) EffectiveSlot() string {
	if e.Slot == "" {
		return SlotMorning
	}
	return e.Slot
}
