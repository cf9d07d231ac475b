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

func backupRouter(h *BackupHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/backup/export", h.Export)
	router.POST("/backup/import", h.Import)
	return router
}

func TestBackupRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	h := NewBackupHandler(db)
	h.now = fixedNow("2024-03-10 12:00")
	router := backupRouter(h)

	cust := seedCustomer(t, db, "Ramesh", "60", "2", models.SlotMorning)
	require.NoError(t, db.Create(&models.DeliveryEntry{
		CustomerID: cust.ID, Date: day("2024-03-01"), Slot: models.SlotMorning,
		Quantity: dec("2"), IsDelivered: true,
	}).Error)
	require.NoError(t, db.Create(&models.Payment{
		CustomerID: cust.ID, Date: day("2024-03-05"), Amount: dec("100"), Type: models.PaymentCash,
	}).Error)
	require.NoError(t, db.Create(&models.Invoice{
		CustomerID: cust.ID, InvoiceNo: "INV-202403-abcd1234", Month: "2024-03",
		IssueDate: day("2024-03-31"), DueDate: day("2024-04-10"),
		MilkTotal: dec("2"), CurrentBill: dec("120"), GrandTotal: dec("120"),
	}).Error)
	require.NoError(t, db.Create(&models.BusinessProfile{BusinessName: "Shree Dairy"}).Error)

	w := doJSON(router, "GET", "/backup/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dairy_backup_2024-03-10.json")

	var backup BackupFile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &backup))
	assert.Equal(t, backupSignature, backup.Meta.AppName)
	assert.Equal(t, backupSchemaVersion, backup.Meta.Version)
	require.Len(t, backup.Data.Customers, 1)
	require.Len(t, backup.Data.Entries, 1)
	require.Len(t, backup.Data.Payments, 1)
	require.Len(t, backup.Data.Invoices, 1)
	require.NotNil(t, backup.Data.Profile)

	// wipe everything, then restore from the exported file
	freshDB := setupTestDB(t)
	freshRouter := backupRouter(NewBackupHandler(freshDB))

	w = doJSON(freshRouter, "POST", "/backup/import", backup)
	require.Equal(t, http.StatusOK, w.Code)

	var customers []models.Customer
	freshDB.Find(&customers)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ramesh", customers[0].Name)

	var entries []models.DeliveryEntry
	freshDB.Find(&entries)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Quantity.Equal(dec("2")))

	var invoices []models.Invoice
	freshDB.Find(&invoices)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-202403-abcd1234", invoices[0].InvoiceNo)
	assert.True(t, invoices[0].GrandTotal.Equal(dec("120")))

	var profile models.BusinessProfile
	require.NoError(t, freshDB.First(&profile).Error)
	assert.Equal(t, "Shree Dairy", profile.BusinessName)
}

func TestImportReplacesExistingData(t *testing.T) {
	db := setupTestDB(t)
	router := backupRouter(NewBackupHandler(db))

	old := seedCustomer(t, db, "Old Customer", "50", "1", models.SlotMorning)
	require.NoError(t, db.Create(&models.Payment{
		CustomerID: old.ID, Date: day("2024-01-01"), Amount: dec("40"), Type: models.PaymentCash,
	}).Error)

	backup := BackupFile{
		Meta: BackupMeta{Version: backupSchemaVersion, AppName: backupSignature},
		Data: BackupData{
			Customers: []models.Customer{{
				Name: "Restored", DefaultQty: dec("2"), RatePerKg: dec("60"),
				IsActive: true, PreferredTime: models.SlotEvening, Behavior: models.BehaviorGood,
			}},
		},
	}

	w := doJSON(router, "POST", "/backup/import", backup)
	require.Equal(t, http.StatusOK, w.Code)

	var customers []models.Customer
	db.Find(&customers)
	require.Len(t, customers, 1)
	assert.Equal(t, "Restored", customers[0].Name)

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.EqualValues(t, 0, paymentCount)
}

func TestImportRejectsForeignOrUnsupportedFiles(t *testing.T) {
	db := setupTestDB(t)
	router := backupRouter(NewBackupHandler(db))

	seedCustomer(t, db, "Keep Me", "60", "2", models.SlotMorning)

	tests := []struct {
		name string
		meta BackupMeta
	}{
		{"wrong signature", BackupMeta{Version: backupSchemaVersion, AppName: "SomeOtherApp"}},
		{"future version", BackupMeta{Version: backupSchemaVersion + 1, AppName: backupSignature}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/backup/import", BackupFile{Meta: tt.meta})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// rejected imports leave the data alone
	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
