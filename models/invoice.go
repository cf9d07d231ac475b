package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a persisted monthly statement for one customer. The
// totals are a snapshot of the ledger at generation time; the live
// figures are always recomputed from entries and payments.
type Invoice struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CustomerID    uint            `gorm:"not null;index" json:"customer_id"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	InvoiceNo     string          `gorm:"uniqueIndex;size:50;not null" json:"invoice_no"`
	Month         string          `gorm:"size:7;not null;index" json:"month"` // YYYY-MM
	IssueDate     Date            `json:"issue_date"`
	DueDate       Date            `json:"due_date"`
	MilkTotal     decimal.Decimal `gorm:"type:decimal(12,3)" json:"milk_total"`
	CurrentBill   decimal.Decimal `gorm:"type:decimal(12,2)" json:"current_bill"`
	PreviousDue   decimal.Decimal `gorm:"type:decimal(12,2)" json:"previous_due"`
	PaidThisMonth decimal.Decimal `gorm:"type:decimal(12,2)" json:"paid_this_month"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(12,2)" json:"grand_total"`
}

// TableName overrides the table name
func (Invoice) TableName() string {
	return "invoices"
}
