package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/dairy-ledger/models"
)

func reportRouter(h *ReportHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/reports/monthly", h.Monthly)
	return router
}

func TestMonthlyReport(t *testing.T) {
	db := setupTestDB(t)
	h := NewReportHandler(db)
	router := reportRouter(h)

	active := seedCustomer(t, db, "Ramesh", "60", "2", models.SlotMorning)
	seedCustomer(t, db, "Idle", "60", "2", models.SlotMorning)

	require.NoError(t, db.Create(&models.DeliveryEntry{
		CustomerID: active.ID, Date: day("2024-03-05"), Slot: models.SlotMorning,
		Quantity: dec("2"), IsDelivered: true,
	}).Error)
	require.NoError(t, db.Create(&models.Payment{
		CustomerID: active.ID, Date: day("2024-03-08"), Amount: dec("100"), Type: models.PaymentCash,
	}).Error)
	// outside the month, must not appear
	require.NoError(t, db.Create(&models.DeliveryEntry{
		CustomerID: active.ID, Date: day("2024-02-20"), Slot: models.SlotMorning,
		Quantity: dec("5"), IsDelivered: true,
	}).Error)

	w := doJSON(router, "GET", "/reports/monthly?month=2024-03", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ledger_2024-03.xlsx")

	x, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer x.Close()

	rows, err := x.GetRows("Ledger 2024-03")
	require.NoError(t, err)
	// header, one customer row, totals; customers with no activity are skipped
	require.Len(t, rows, 3)
	assert.Equal(t, "Customer", rows[0][0])
	assert.Equal(t, "Ramesh", rows[1][0])
	assert.Equal(t, "2", rows[1][2])
	assert.Equal(t, "120", rows[1][3])
	assert.Equal(t, "100", rows[1][4])
	assert.Equal(t, "20", rows[1][5])
	assert.Equal(t, "Total", rows[2][0])
}

func TestMonthlyReportBadMonth(t *testing.T) {
	db := setupTestDB(t)
	router := reportRouter(NewReportHandler(db))

	w := doJSON(router, "GET", "/reports/monthly?month=March", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
