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

type CustomerHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db, now: time.Now}
}

type CustomerRequest struct {
	Name          string          `json:"name" binding:"required"`
	NameHi        string          `json:"name_hi"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	DefaultQty    decimal.Decimal `json:"default_qty"`
	RatePerKg     decimal.Decimal `json:"rate_per_kg"`
	IsActive      *bool           `json:"is_active"`
	PreferredTime string          `json:"preferred_time"`
	Behavior      string          `json:"behavior"`
}

func (r *CustomerRequest) validate() string {
	if r.RatePerKg.Sign() <= 0 {
		return "rate_per_kg must be a positive amount"
	}
	if r.DefaultQty.Sign() < 0 {
		return "default_qty cannot be negative"
	}
	switch r.PreferredTime {
	case "", models.SlotMorning, models.SlotEvening, models.TimeBoth:
	default:
		return "preferred_time must be morning, evening or both"
	}
	return ""
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	customer := models.Customer{
		Name:          req.Name,
		NameHi:        req.NameHi,
		Phone:         req.Phone,
		Address:       req.Address,
		DefaultQty:    req.DefaultQty,
		RatePerKg:     req.RatePerKg,
		IsActive:      true,
		PreferredTime: req.PreferredTime,
		Behavior:      req.Behavior,
	}
	if customer.PreferredTime == "" {
		customer.PreferredTime = models.SlotMorning
	}
	if customer.Behavior == "" {
		customer.Behavior = models.BehaviorGood
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := h.db.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// CustomerRow is a list row with the derived financial badge.
type CustomerRow struct {
	models.Customer
	Financial ledger.Classification `json:"financial"`
}

// List returns all customers with their due classification. The
// status query param filters by active, inactive or pastDue.
func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Order("name").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	var entries []models.DeliveryEntry
	var payments []models.Payment
	if err := h.db.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}
	if err := h.db.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	entriesByCustomer := make(map[uint][]models.DeliveryEntry)
	for _, e := range entries {
		entriesByCustomer[e.CustomerID] = append(entriesByCustomer[e.CustomerID], e)
	}
	paymentsByCustomer := make(map[uint][]models.Payment)
	for _, p := range payments {
		paymentsByCustomer[p.CustomerID] = append(paymentsByCustomer[p.CustomerID], p)
	}

	today := models.DateOf(h.now())
	filter := c.Query("status")
	rows := []CustomerRow{}
	for _, cust := range customers {
		fin := ledger.ClassifyDues(cust.RatePerKg, entriesByCustomer[cust.ID], paymentsByCustomer[cust.ID], today)
		switch filter {
		case "active":
			if !cust.IsActive {
				continue
			}
		case "inactive":
			if cust.IsActive {
				continue
			}
		case "pastDue":
			if fin.Status != ledger.StatusPastDue {
				continue
			}
		}
		rows = append(rows, CustomerRow{Customer: cust, Financial: fin})
	}

	c.JSON(http.StatusOK, rows)
}

// Get returns one customer with all-time and current-month summaries.
func (h *CustomerHandler) Get(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	entries, payments, err := h.customerRecords(customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	today := models.DateOf(h.now())
	monthStart := ledger.StartOfMonth(today)
	monthEnd := ledger.EndOfMonth(today)

	c.JSON(http.StatusOK, gin.H{
		"customer":  customer,
		"all_time":  ledger.ComputeSummary(customer.RatePerKg, entries, payments, models.Date{}, models.Date{}),
		"month":     ledger.ComputeSummary(customer.RatePerKg, entries, payments, monthStart, monthEnd),
		"financial": ledger.ClassifyDues(customer.RatePerKg, entries, payments, today),
	})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	customer.Name = req.Name
	customer.NameHi = req.NameHi
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.DefaultQty = req.DefaultQty
	customer.RatePerKg = req.RatePerKg
	if req.PreferredTime != "" {
		customer.PreferredTime = req.PreferredTime
	}
	if req.Behavior != "" {
		customer.Behavior = req.Behavior
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := h.db.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete removes the customer and everything they own: entries,
// payments and invoices go with them. Hard delete, no tombstone.
func (h *CustomerHandler) Delete(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.DeliveryEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

func (h *CustomerHandler) customerRecords(customerID uint) ([]models.DeliveryEntry, []models.Payment, error) {
	var entries []models.DeliveryEntry
	if err := h.db.Where("customer_id = ?", customerID).Find(&entries).Error; err != nil {
		return nil, nil, err
	}
	var payments []models.Payment
	if err := h.db.Where("customer_id = ?", customerID).Find(&payments).Error; err != nil {
		return nil, nil, err
	}
	return entries, payments, nil
}
