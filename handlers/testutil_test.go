package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yourusername/dairy-ledger/config"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fixedNow pins handler clocks to a known moment for route and
// classification tests.
func fixedNow(s string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func seedCustomer(t *testing.T, db *gorm.DB, name, rate, defaultQty, preferred string) models.Customer {
	t.Helper()
	c := models.Customer{
		Name:          name,
		DefaultQty:    dec(defaultQty),
		RatePerKg:     dec(rate),
		IsActive:      true,
		PreferredTime: preferred,
		Behavior:      models.BehaviorGood,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
