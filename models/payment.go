package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment types.
const (
	PaymentCash   = "cash"
	PaymentOnline = "online"
)

// Payment is money received from a customer. Rows carry a stable id
// so identical payments on the same day remain individually
// addressable for deletion.
type Payment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	CustomerID uint            `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Date       Date            `gorm:"not null;index" json:"date"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type       string          `gorm:"size:10;default:'cash'" json:"type"` // cash, online
	Note       string          `gorm:"type:text" json:"note,omitempty"`
}

// TableName overrides the table name
func (Payment) TableName() string {
	return "payments"
}
