package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/dairy-ledger/models"
)

// InvoiceBreakdown is the monthly statement math: what this month's
// deliveries cost, what was carried in from before, and what was paid
// during the month.
type InvoiceBreakdown struct {
	Month         string          `json:"month"` // YYYY-MM
	MilkTotal     decimal.Decimal `json:"milk_total"`
	CurrentBill   decimal.Decimal `json:"current_bill"`
	PreviousDue   decimal.Decimal `json:"previous_due"`
	PaidThisMonth decimal.Decimal `json:"paid_this_month"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// InvoiceTotals evaluates two adjacent windows against the selected
// month: everything strictly before its first day (previous due), and
// the month itself. A negative PreviousDue is advance credit and
// reduces the grand total.
func InvoiceTotals(rate decimal.Decimal, entries []models.DeliveryEntry, payments []models.Payment, year int, month time.Month) InvoiceBreakdown {
	monthStart := models.NewDate(year, month, 1)
	monthEnd := EndOfMonth(monthStart)

	past := ComputeSummary(rate, entries, payments, models.Date{}, monthStart.AddDays(-1))
	current := ComputeSummary(rate, entries, payments, monthStart, monthEnd)

	return InvoiceBreakdown{
		Month:         monthStart.Format("2006-01"),
		MilkTotal:     current.MilkTotal,
		CurrentBill:   current.Billed,
		PreviousDue:   past.Due,
		PaidThisMonth: current.Collected,
		GrandTotal:    past.Due.Add(current.Billed).Sub(current.Collected),
	}
}
