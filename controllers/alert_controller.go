package controllers

import (
	"net/http"
	"strconv"

	"github.com/Vijay-C-S/zenzone-sub001/config"
	"github.com/Vijay-C-S/zenzone-sub001/models"

	"github.com/gin-gonic/gin"
)

// ListAlerts returns the user's recent in-app alerts, newest first.
func ListAlerts(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 {
		limit = 20
	}

	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
