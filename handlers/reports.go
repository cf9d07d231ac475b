package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/dairy-ledger/ledger"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/gorm"
)

type ReportHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db, now: time.Now}
}

// Monthly streams an xlsx ledger for the month: one row per customer
// with milk total, billed, collected and due, plus a totals row.
// ?month=YYYY-MM defaults to the current month.
func (h *ReportHandler) Monthly(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = h.now().Format("2006-01")
	}
	monthStart, err := models.ParseDate(month + "-01")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}
	monthEnd := ledger.EndOfMonth(monthStart)

	var customers []models.Customer
	if err := h.db.Order("name").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	var entries []models.DeliveryEntry
	if err := h.db.Where("date BETWEEN ? AND ?", monthStart, monthEnd).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}
	var payments []models.Payment
	if err := h.db.Where("date BETWEEN ? AND ?", monthStart, monthEnd).Find(&payments).Error; err != nil {
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

	x := excelize.NewFile()
	defer x.Close()

	sheet := "Ledger " + month
	x.SetSheetName("Sheet1", sheet)

	headers := []string{"Customer", "Phone", "Milk (L)", "Billed", "Collected", "Due"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		x.SetCellValue(sheet, cell, head)
	}

	row := 2
	var milkSum, billedSum, collectedSum, dueSum float64
	for _, cust := range customers {
		s := ledger.ComputeSummary(cust.RatePerKg, entriesByCustomer[cust.ID], paymentsByCustomer[cust.ID], monthStart, monthEnd)
		if s.MilkTotal.IsZero() && s.Collected.IsZero() {
			continue
		}
		values := []interface{}{
			cust.Name,
			cust.Phone,
			s.MilkTotal.InexactFloat64(),
			s.Billed.InexactFloat64(),
			s.Collected.InexactFloat64(),
			s.Due.InexactFloat64(),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			x.SetCellValue(sheet, cell, v)
		}
		milkSum += s.MilkTotal.InexactFloat64()
		billedSum += s.Billed.InexactFloat64()
		collectedSum += s.Collected.InexactFloat64()
		dueSum += s.Due.InexactFloat64()
		row++
	}

	totals := []interface{}{"Total", "", milkSum, billedSum, collectedSum, dueSum}
	for i, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		x.SetCellValue(sheet, cell, v)
	}

	buf, err := x.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	filename := fmt.Sprintf("ledger_%s.xlsx", month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
