package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/dairy-ledger/models"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	var profile models.BusinessProfile
	if err := h.db.First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, models.BusinessProfile{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type ProfileRequest struct {
	BusinessName   string `json:"business_name" binding:"required"`
	BusinessNameHi string `json:"business_name_hi"`
	OwnerName      string `json:"owner_name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

// Update writes the single letterhead row, creating it on first use.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.BusinessProfile
	err := h.db.First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	profile.BusinessName = req.BusinessName
	profile.BusinessNameHi = req.BusinessNameHi
	profile.OwnerName = req.OwnerName
	profile.Address = req.Address
	profile.Phone = req.Phone
	profile.Email = req.Email

	if err := h.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
