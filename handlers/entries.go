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

type EntryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEntryHandler(db *gorm.DB) *EntryHandler {
	return &EntryHandler{db: db, now: time.Now}
}

type UpsertEntryRequest struct {
	CustomerID  uint             `json:"customer_id" binding:"required"`
	Date        models.Date      `json:"date" binding:"required"`
	Slot        string           `json:"slot"`
	Quantity    *decimal.Decimal `json:"quantity"`
	IsDelivered bool             `json:"is_delivered"`
	Note        string           `json:"note"`
}

// Upsert writes one delivery record. The key is (customer, date,
// slot); a second write for the same key replaces quantity, delivery
// flag and note on the existing row. Omitting the slot targets the
// currently active round; omitting the quantity falls back to the
// customer's default.
func (h *EntryHandler) Upsert(c *gin.Context) {
	var req UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, req.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	slot := req.Slot
	switch slot {
	case "":
		slot = ledger.SlotForHour(h.now().Hour())
	case models.SlotMorning, models.SlotEvening:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be morning or evening"})
		return
	}

	qty := customer.DefaultQty
	if req.Quantity != nil {
		if req.Quantity.Sign() < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
			return
		}
		qty = *req.Quantity
	}

	// Legacy rows may carry an empty slot; a morning write replaces
	// them instead of creating a duplicate.
	var entry models.DeliveryEntry
	query := h.db.Where("customer_id = ? AND date = ?", req.CustomerID, req.Date)
	if slot == models.SlotMorning {
		query = query.Where("slot IN ?", []string{models.SlotMorning, ""})
	} else {
		query = query.Where("slot = ?", slot)
	}

	err := query.First(&entry).Error
	switch {
	case err == nil:
		entry.Slot = slot
		entry.Quantity = qty
		entry.IsDelivered = req.IsDelivered
		entry.Note = req.Note
		if err := h.db.Save(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
			return
		}
		c.JSON(http.StatusOK, entry)
	case err == gorm.ErrRecordNotFound:
		entry = models.DeliveryEntry{
			CustomerID:  req.CustomerID,
			Date:        req.Date,
			Slot:        slot,
			Quantity:    qty,
			IsDelivered: req.IsDelivered,
			Note:        req.Note,
		}
		if err := h.db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
			return
		}
		c.JSON(http.StatusCreated, entry)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up entry"})
	}
}

type RangeEntriesRequest struct {
	CustomerID  uint             `json:"customer_id" binding:"required"`
	StartDate   models.Date      `json:"start_date" binding:"required"`
	EndDate     models.Date      `json:"end_date" binding:"required"`
	IsDelivered bool             `json:"is_delivered"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Note        string           `json:"note"`
}

// UpsertRange bulk-writes one entry per day per preferred slot across
// [start_date, end_date] inclusive, for vacations ("absent for two
// weeks") or catch-up marking. Customers preferring both slots get
// morning and evening rows per day. Each day follows the single-entry
// upsert key, so existing rows in the window are replaced, not
// duplicated.
func (h *EntryHandler) UpsertRange(c *gin.Context) {
	var req RangeEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EndDate.Time.Before(req.StartDate.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}
	if req.Quantity != nil && req.Quantity.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, req.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	qty := customer.DefaultQty
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	slots := []string{customer.PreferredTime}
	if customer.PreferredTime == models.TimeBoth {
		slots = []string{models.SlotMorning, models.SlotEvening}
	}

	written := 0
	err := h.db.Transaction(func(tx *gorm.DB) error {
		for d := req.StartDate; !d.Time.After(req.EndDate.Time); d = d.AddDays(1) {
			for _, slot := range slots {
				query := tx.Where("customer_id = ? AND date = ?", customer.ID, d)
				if slot == models.SlotMorning {
					query = query.Where("slot IN ?", []string{models.SlotMorning, ""})
				} else {
					query = query.Where("slot = ?", slot)
				}

				var entry models.DeliveryEntry
				err := query.First(&entry).Error
				switch {
				case err == nil:
					entry.Slot = slot
					entry.Quantity = qty
					entry.IsDelivered = req.IsDelivered
					entry.Note = req.Note
					if err := tx.Save(&entry).Error; err != nil {
						return err
					}
				case err == gorm.ErrRecordNotFound:
					entry = models.DeliveryEntry{
						CustomerID:  customer.ID,
						Date:        d,
						Slot:        slot,
						Quantity:    qty,
						IsDelivered: req.IsDelivered,
						Note:        req.Note,
					}
					if err := tx.Create(&entry).Error; err != nil {
						return err
					}
				default:
					return err
				}
				written++
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write range"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
		"written":    written,
	})
}

// ListByCustomer returns a customer's entries, optionally narrowed to
// one month via ?month=YYYY-MM.
func (h *EntryHandler) ListByCustomer(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	query := h.db.Where("customer_id = ?", customer.ID)
	if month := c.Query("month"); month != "" {
		start, err := models.ParseDate(month + "-01")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
			return
		}
		query = query.Where("date BETWEEN ? AND ?", start, ledger.EndOfMonth(start))
	}

	var entries []models.DeliveryEntry
	if err := query.Order("date, slot").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	var entry models.DeliveryEntry
	if err := h.db.First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	if err := h.db.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
