package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yourusername/dairy-ledger/ledger"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db, now: time.Now}
}

// Summary aggregates today's deliveries, the running month and the
// outstanding balance across all active customers.
func (h *DashboardHandler) Summary(c *gin.Context) {
	customers, entries, payments, ok := h.loadAll(c)
	if !ok {
		return
	}

	now := h.now()
	today := models.DateOf(now)
	monthStart := ledger.StartOfMonth(today)
	monthEnd := ledger.EndOfMonth(today)

	entriesByCustomer := make(map[uint][]models.DeliveryEntry)
	for _, e := range entries {
		entriesByCustomer[e.CustomerID] = append(entriesByCustomer[e.CustomerID], e)
	}
	paymentsByCustomer := make(map[uint][]models.Payment)
	for _, p := range payments {
		paymentsByCustomer[p.CustomerID] = append(paymentsByCustomer[p.CustomerID], p)
	}

	milkToday := decimal.Zero
	billedMonth := decimal.Zero
	collectedMonth := decimal.Zero
	outstanding := decimal.Zero
	pastDueCount := 0

	for _, cust := range customers {
		if !cust.IsActive {
			continue
		}
		ce := entriesByCustomer[cust.ID]
		cp := paymentsByCustomer[cust.ID]

		todaySummary := ledger.ComputeSummary(cust.RatePerKg, ce, cp, today, today)
		milkToday = milkToday.Add(todaySummary.MilkTotal)

		month := ledger.ComputeSummary(cust.RatePerKg, ce, cp, monthStart, monthEnd)
		billedMonth = billedMonth.Add(month.Billed)
		collectedMonth = collectedMonth.Add(month.Collected)

		fin := ledger.ClassifyDues(cust.RatePerKg, ce, cp, today)
		if fin.Status != ledger.StatusSettled {
			outstanding = outstanding.Add(fin.Amount)
		}
		if fin.Status == ledger.StatusPastDue {
			pastDueCount++
		}
	}

	slot := ledger.SlotForHour(now.Hour())
	route := ledger.BuildRoute(customers, entries, today, slot)

	c.JSON(http.StatusOK, gin.H{
		"date":            today,
		"active_slot":     slot,
		"milk_today":      milkToday,
		"billed_month":    billedMonth,
		"collected_month": collectedMonth,
		"outstanding":     outstanding,
		"past_due_count":  pastDueCount,
		"route": gin.H{
			"slot":      route.Slot,
			"total":     route.Total,
			"delivered": route.Delivered,
			"pending":   len(route.Pending),
		},
	})
}

// Route returns the pending delivery round. ?slot= overrides the
// clock-derived slot.
func (h *DashboardHandler) Route(c *gin.Context) {
	customers, entries, _, ok := h.loadAll(c)
	if !ok {
		return
	}

	slot, errMsg := h.resolveSlot(c.Query("slot"))
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	today := models.DateOf(h.now())
	c.JSON(http.StatusOK, ledger.BuildRoute(customers, entries, today, slot))
}

type MarkAllRequest struct {
	Slot string `json:"slot"`
}

// MarkAll records a delivered entry at the default quantity for every
// pending customer in the target slot. Customers already marked today,
// delivered or absent, are left untouched.
func (h *DashboardHandler) MarkAll(c *gin.Context) {
	var req MarkAllRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	slot, errMsg := h.resolveSlot(req.Slot)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	customers, entries, _, ok := h.loadAll(c)
	if !ok {
		return
	}

	today := models.DateOf(h.now())
	route := ledger.BuildRoute(customers, entries, today, slot)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, cust := range route.Pending {
			entry := models.DeliveryEntry{
				CustomerID:  cust.ID,
				Date:        today,
				Slot:        slot,
				Quantity:    cust.DefaultQty,
				IsDelivered: true,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark deliveries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slot":   slot,
		"marked": len(route.Pending),
	})
}

func (h *DashboardHandler) resolveSlot(slot string) (string, string) {
	switch slot {
	case "":
		return ledger.SlotForHour(h.now().Hour()), ""
	case models.SlotMorning, models.SlotEvening:
		return slot, ""
	default:
		return "", "slot must be morning or evening"
	}
}

func (h *DashboardHandler) loadAll(c *gin.Context) ([]models.Customer, []models.DeliveryEntry, []models.Payment, bool) {
	var customers []models.Customer
	if err := h.db.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return nil, nil, nil, false
	}
	var entries []models.DeliveryEntry
	if err := h.db.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return nil, nil, nil, false
	}
	var payments []models.Payment
	if err := h.db.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return nil, nil, nil, false
	}
	return customers, entries, payments, true
}
