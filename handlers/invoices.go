package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yourusername/dairy-ledger/config"
	"github.com/yourusername/dairy-ledger/ledger"
	"github.com/yourusername/dairy-ledger/models"
	"github.com/yourusername/dairy-ledger/utils"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	render func(utils.InvoiceDocument) ([]byte, error)
}

func NewInvoiceHandler(db *gorm.DB, cfg *config.Config) *InvoiceHandler {
	return &InvoiceHandler{db: db, cfg: cfg, render: utils.RenderInvoicePDF}
}

type CreateInvoiceRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Month      string `json:"month" binding:"required"` // YYYY-MM
}

// Create assembles the monthly statement for one customer. The ledger
// windows are evaluated as of the last day of the selected month, so
// generating January's invoice in March gives the same figures it
// would have given on January 31st.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	monthStart, err := models.ParseDate(req.Month + "-01")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, req.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var entries []models.DeliveryEntry
	if err := h.db.Where("customer_id = ?", customer.ID).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}
	var payments []models.Payment
	if err := h.db.Where("customer_id = ?", customer.ID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	breakdown := ledger.InvoiceTotals(customer.RatePerKg, entries, payments, monthStart.Year(), monthStart.Month())
	monthEnd := ledger.EndOfMonth(monthStart)

	invoiceNo := fmt.Sprintf("INV-%s-%s", strings.ReplaceAll(req.Month, "-", ""), uuid.NewString()[:8])
	invoice := models.Invoice{
		CustomerID:    customer.ID,
		InvoiceNo:     invoiceNo,
		Month:         req.Month,
		IssueDate:     monthEnd,
		DueDate:       monthEnd.AddDays(10),
		MilkTotal:     breakdown.MilkTotal,
		CurrentBill:   breakdown.CurrentBill,
		PreviousDue:   breakdown.PreviousDue,
		PaidThisMonth: breakdown.PaidThisMonth,
		GrandTotal:    breakdown.GrandTotal,
	}

	if err := h.db.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	var invoice models.Invoice
	if err := h.db.Preload("Customer").First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) ListByCustomer(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var invoices []models.Invoice
	if err := h.db.Where("customer_id = ?", customer.ID).Order("month desc").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// PDF renders the invoice through headless chrome and streams it back.
func (h *InvoiceHandler) PDF(c *gin.Context) {
	var invoice models.Invoice
	if err := h.db.Preload("Customer").First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var profile models.BusinessProfile
	if err := h.db.First(&profile).Error; err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch business profile"})
		return
	}

	doc := utils.InvoiceDocument{
		Business:   profile,
		Invoice:    invoice,
		Customer:   *invoice.Customer,
		TotalWords: utils.NumberToCurrencyWords(invoice.GrandTotal.InexactFloat64()),
		Generated:  time.Now().Format("02-Jan-2006"),
	}

	pdfBytes, err := h.render(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.InvoiceNo))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
