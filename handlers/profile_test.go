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

func profileRouter(h *ProfileHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/profile", h.Get)
	router.PUT("/profile", h.Update)
	return router
}

func TestProfileLifecycle(t *testing.T) {
	db := setupTestDB(t)
	router := profileRouter(NewProfileHandler(db))

	// empty profile before first save, not an error
	w := doJSON(router, "GET", "/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile models.BusinessProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Empty(t, profile.BusinessName)

	w = doJSON(router, "PUT", "/profile", gin.H{
		"business_name":    "Shree Dairy",
		"business_name_hi": "श्री डेयरी",
		"owner_name":       "Ramesh Patel",
		"phone":            "9876543210",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// second save updates the same row
	w = doJSON(router, "PUT", "/profile", gin.H{
		"business_name": "Shree Dairy Farm",
		"owner_name":    "Ramesh Patel",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.BusinessProfile{}).Count(&count)
	assert.EqualValues(t, 1, count)

	w = doJSON(router, "GET", "/profile", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Shree Dairy Farm", profile.BusinessName)

	// business name is mandatory
	w = doJSON(router, "PUT", "/profile", gin.H{"owner_name": "Someone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
