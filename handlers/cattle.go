package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/gorm"
)

type CattleHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCattleHandler(db *gorm.DB) *CattleHandler {
	return &CattleHandler{db: db, now: time.Now}
}

type CreateInseminationRequest struct {
	CowName          string      `json:"cow_name" binding:"required"`
	CowColor         string      `json:"cow_color"`
	InseminationDate models.Date `json:"insemination_date" binding:"required"`
	Note             string      `json:"note"`
}

func (h *CattleHandler) Create(c *gin.Context) {
	var req CreateInseminationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := models.InseminationRecord{
		CowName:          req.CowName,
		CowColor:         req.CowColor,
		InseminationDate: req.InseminationDate,
		Note:             req.Note,
	}
	if err := h.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *CattleHandler) List(c *gin.Context) {
	var records []models.InseminationRecord
	if err := h.db.Order("insemination_date desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Reminder is one upcoming (or recently passed) calving date.
type Reminder struct {
	Record   models.InseminationRecord `json:"record"`
	DueDate  models.Date               `json:"due_date"`
	DaysLeft int                       `json:"days_left"`
}

// Reminders lists calving dates from 30 days past onward, soonest
// first.
func (h *CattleHandler) Reminders(c *gin.Context) {
	var records []models.InseminationRecord
	if err := h.db.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	today := models.DateOf(h.now())
	reminders := []Reminder{}
	for _, r := range records {
		due := r.CalvingDue()
		daysLeft := int(due.Sub(today.Time).Hours() / 24)
		if daysLeft < -30 {
			continue
		}
		reminders = append(reminders, Reminder{Record: r, DueDate: due, DaysLeft: daysLeft})
	}

	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].DaysLeft < reminders[j].DaysLeft
	})

	c.JSON(http.StatusOK, reminders)
}

func (h *CattleHandler) Delete(c *gin.Context) {
	var record models.InseminationRecord
	if err := h.db.First(&record, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	if err := h.db.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
