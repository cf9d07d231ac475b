// Package ledger computes billing figures for dairy customers. Every
// function here is pure: it takes explicit record slices and returns
// derived totals, never reading storage or caching running balances.
// All figures are recomputed from full history on every call.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/yourusername/dairy-ledger/models"
)

// Summary is the billed/collected breakdown for one customer over one
// date window.
type Summary struct {
	Billed    decimal.Decimal `json:"billed"`
	Collected decimal.Decimal `json:"collected"`
	Due       decimal.Decimal `json:"due"`
	MilkTotal decimal.Decimal `json:"milk_total"`
}

// DueStatus classifies a customer's outstanding balance.
type DueStatus string

const (
	// StatusPastDue means unpaid balance remains from months before
	// the current one.
	StatusPastDue DueStatus = "pastDue"
	// StatusCurrentBill means the customer owes money for the current
	// month only; prior months are covered.
	StatusCurrentBill DueStatus = "currentBill"
	// StatusSettled means nothing is owed. Amount holds the advance
	// credit when payments exceed the bill.
	StatusSettled DueStatus = "settled"
)

type Classification struct {
	Status DueStatus       `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

// ComputeSummary totals delivered quantity, bill and collections over
// [start, end] inclusive. A zero start or end leaves that side
// unbounded. Entries marked absent (IsDelivered=false) and days with
// no entry at all both contribute zero.
func ComputeSummary(rate decimal.Decimal, entries []models.DeliveryEntry, payments []models.Payment, start, end models.Date) Summary {
	milk := decimal.Zero
	for _, e := range entries {
		if !e.IsDelivered || !e.Date.Within(start, end) {
			continue
		}
		milk = milk.Add(e.Quantity)
	}

	collected := decimal.Zero
	for _, p := range payments {
		if !p.Date.Within(start, end) {
			continue
		}
		collected = collected.Add(p.Amount)
	}

	billed := milk.Mul(rate)
	return Summary{
		Billed:    billed,
		Collected: collected,
		Due:       billed.Sub(collected),
		MilkTotal: milk,
	}
}

// ClassifyDues derives the three-way due status from full history.
// Payments are assumed to cover the oldest debt first, so the customer
// is past-due exactly when all payments ever made fall short of the
// bill accumulated before the current month. The reported amount is
// always the all-time due (or the advance credit when settled).
func ClassifyDues(rate decimal.Decimal, entries []models.DeliveryEntry, payments []models.Payment, today models.Date) Classification {
	allTime := ComputeSummary(rate, entries, payments, models.Date{}, models.Date{})
	if allTime.Due.Sign() <= 0 {
		return Classification{Status: StatusSettled, Amount: allTime.Due.Abs()}
	}

	monthStart := StartOfMonth(today)
	past := ComputeSummary(rate, entries, payments, models.Date{}, monthStart.AddDays(-1))
	if allTime.Collected.LessThan(past.Billed) {
		return Classification{Status: StatusPastDue, Amount: allTime.Due}
	}
	return Classification{Status: StatusCurrentBill, Amount: allTime.Due}
}

// SlotForHour maps a clock hour to the active delivery slot. Before
// 14:00 is the morning round; 14:00 onward is the evening round. The
// threshold is business policy.
func SlotForHour(hour int) string {
	if hour < 14 {
		return models.SlotMorning
	}
	return models.SlotEvening
}

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d models.Date) models.Date {
	return models.NewDate(d.Year(), d.Month(), 1)
}

// EndOfMonth returns the last day of d's month.
func EndOfMonth(d models.Date) models.Date {
	return models.NewDate(d.Year(), d.Month()+1, 1).AddDays(-1)
}
