package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/gorm"
)

const (
	backupSchemaVersion = 1
	backupSignature     = "DairyLedger"
)

type BackupHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBackupHandler(db *gorm.DB) *BackupHandler {
	return &BackupHandler{db: db, now: time.Now}
}

type BackupMeta struct {
	Version   int    `json:"version"`
	AppName   string `json:"app_name"`
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
}

type BackupData struct {
	Profile       *models.BusinessProfile     `json:"business_profile,omitempty"`
	Customers     []models.Customer           `json:"customers"`
	Entries       []models.DeliveryEntry      `json:"entries"`
	Payments      []models.Payment            `json:"payments"`
	Invoices      []models.Invoice            `json:"invoices"`
	Inseminations []models.InseminationRecord `json:"inseminations"`
}

type BackupFile struct {
	Meta BackupMeta `json:"meta"`
	Data BackupData `json:"data"`
}

// Export streams the whole dataset as a downloadable JSON file.
func (h *BackupHandler) Export(c *gin.Context) {
	var data BackupData
	var profile models.BusinessProfile
	if err := h.db.First(&profile).Error; err == nil {
		data.Profile = &profile
	}
	if err := h.db.Find(&data.Customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read customers"})
		return
	}
	if err := h.db.Find(&data.Entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read entries"})
		return
	}
	if err := h.db.Find(&data.Payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read payments"})
		return
	}
	if err := h.db.Find(&data.Invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read invoices"})
		return
	}
	if err := h.db.Find(&data.Inseminations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read insemination records"})
		return
	}

	now := h.now()
	backup := BackupFile{
		Meta: BackupMeta{
			Version:   backupSchemaVersion,
			AppName:   backupSignature,
			Timestamp: now.UnixMilli(),
			Date:      now.Format(time.RFC3339),
		},
		Data: data,
	}

	filename := fmt.Sprintf("dairy_backup_%s.json", now.Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, backup)
}

// Import validates the backup signature and version, then replaces
// the dataset wholesale inside one transaction. A failed import leaves
// the existing data untouched.
func (h *BackupHandler) Import(c *gin.Context) {
	var backup BackupFile
	if err := c.ShouldBindJSON(&backup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not a valid backup file"})
		return
	}

	if backup.Meta.AppName != backupSignature {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This file does not belong to this app"})
		return
	}
	if backup.Meta.Version != backupSchemaVersion {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported backup version %d", backup.Meta.Version)})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.DeliveryEntry{}, &models.Payment{}, &models.Invoice{},
			&models.Customer{}, &models.InseminationRecord{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(backup.Data.Customers) > 0 {
			if err := tx.Create(&backup.Data.Customers).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.Entries) > 0 {
			if err := tx.Create(&backup.Data.Entries).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.Payments) > 0 {
			if err := tx.Create(&backup.Data.Payments).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.Invoices) > 0 {
			if err := tx.Create(&backup.Data.Invoices).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.Inseminations) > 0 {
			if err := tx.Create(&backup.Data.Inseminations).Error; err != nil {
				return err
			}
		}
		if backup.Data.Profile != nil {
			if err := tx.Where("1 = 1").Delete(&models.BusinessProfile{}).Error; err != nil {
				return err
			}
			if err := tx.Create(backup.Data.Profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed, existing data kept"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Backup restored",
		"customers":     len(backup.Data.Customers),
		"entries":       len(backup.Data.Entries),
		"payments":      len(backup.Data.Payments),
		"invoices":      len(backup.Data.Invoices),
		"inseminations": len(backup.Data.Inseminations),
	})
}
