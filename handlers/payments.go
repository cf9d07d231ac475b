package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type CreatePaymentRequest struct {
	CustomerID uint            `json:"customer_id" binding:"required"`
	Date       models.Date     `json:"date" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Note       string          `json:"note"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount cannot be negative"})
		return
	}
	switch req.Type {
	case "", models.PaymentCash, models.PaymentOnline:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be cash or online"})
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, req.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	payment := models.Payment{
		CustomerID: req.CustomerID,
		Date:       req.Date,
		Amount:     req.Amount,
		Type:       req.Type,
		Note:       req.Note,
	}
	if payment.Type == "" {
		payment.Type = models.PaymentCash
	}

	if err := h.db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) ListByCustomer(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var payments []models.Payment
	if err := h.db.Where("customer_id = ?", customer.ID).Order("date desc, id desc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// Delete removes a payment by its id. Identical payments on the same
// day are separate rows, so each one is individually deletable.
func (h *PaymentHandler) Delete(c *gin.Context) {
	var payment models.Payment
	if err := h.db.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	if err := h.db.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
