package controllers

import (
	"net/http"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

func (h *AnalyticsController) GetSummary(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	fromStr := c.DefaultQuery("from", first.Format("2006-01-02"))
	toStr := c.DefaultQuery("to", last.Format("2006-01-02"))
	includeMissing := c.DefaultQuery("includeMissingDays", "false") == "true"

	from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid from date"})
		return
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "`to` must be on/after `from`"})
		return
	}

	out, err := h.Svc.Summary(c.Request.Context(), uid, from, to, includeMissing)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
