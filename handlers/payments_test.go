package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/dairy-ledger/models"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payments", h.Create)
	router.GET("/customers/:id/payments", h.ListByCustomer)
	router.DELETE("/payments/:id", h.Delete)
	return router
}

func TestCreatePayment(t *testing.T) {
	db := setupTestDB(t)
	router := paymentRouter(NewPaymentHandler(db))

	seedCustomer(t, db, "Ramesh", "60", "2", models.SlotMorning)

	t.Run("Valid Request", func(t *testing.T) {
		w := doJSON(router, "POST", "/payments", gin.H{
			"customer_id": 1,
			"date":        "2024-01-10",
			"amount":      "120",
			"type":        "online",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var payment models.Payment
		db.First(&payment)
		assert.True(t, payment.Amount.Equal(dec("120")))
		assert.Equal(t, models.PaymentOnline, payment.Type)
	})

	t.Run("Type Defaults To Cash", func(t *testing.T) {
		w := doJSON(router, "POST", "/payments", gin.H{
			"customer_id": 1,
			"date":        "2024-01-11",
			"amount":      "50",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var payment models.Payment
		db.Order("id desc").First(&payment)
		assert.Equal(t, models.PaymentCash, payment.Type)
	})

	t.Run("Negative Amount Rejected", func(t *testing.T) {
		w := doJSON(router, "POST", "/payments", gin.H{
			"customer_id": 1,
			"date":        "2024-01-10",
			"amount":      "-10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Customer", func(t *testing.T) {
		w := doJSON(router, "POST", "/payments", gin.H{
			"customer_id": 42,
			"date":        "2024-01-10",
			"amount":      "10",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeletePaymentById(t *testing.T) {
	db := setupTestDB(t)
	router := paymentRouter(NewPaymentHandler(db))

	seedCustomer(t, db, "Ramesh", "60", "2", models.SlotMorning)

	// two identical payments must stay individually addressable
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Payment{
			CustomerID: 1, Date: day("2024-01-10"), Amount: dec("100"), Type: models.PaymentCash,
		}).Error)
	}

	w := doJSON(router, "DELETE", "/payments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var remaining []models.Payment
	db.Find(&remaining)
	require.Len(t, remaining, 1)
	assert.EqualValues(t, 2, remaining[0].ID)

	w = doJSON(router, "DELETE", "/payments/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPayments(t *testing.T) {
	db := setupTestDB(t)
	router := paymentRouter(NewPaymentHandler(db))

	seedCustomer(t, db, "Ramesh", "60", "2", models.SlotMorning)
	other := seedCustomer(t, db, "Other", "60", "2", models.SlotMorning)

	require.NoError(t, db.Create(&models.Payment{
		CustomerID: 1, Date: day("2024-01-10"), Amount: dec("100"), Type: models.PaymentCash,
	}).Error)
	require.NoError(t, db.Create(&models.Payment{
		CustomerID: other.ID, Date: day("2024-01-10"), Amount: dec("999"), Type: models.PaymentCash,
	}).Error)

	w := doJSON(router, "GET", "/customers/1/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payments []models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Amount.Equal(dec("100")))
}
