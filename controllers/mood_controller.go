package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	Svc *services.MoodService
}

func NewMoodController(svc *services.MoodService) *MoodController {
	return &MoodController{Svc: svc}
}

type moodReq struct {
	Mood int      `json:"mood" binding:"required,min=1,max=5"`
	Note string   `json:"note" binding:"max=500"`
	Date string   `json:"date"` // YYYY-MM-DD, defaults to today
	Tags []string `json:"tags"`
}

// Record upserts today's (or the given day's) mood entry.
func (h *MoodController) Record(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req moodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	in := services.MoodInput{Mood: req.Mood, Note: req.Note, Tags: req.Tags}
	if req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format, use YYYY-MM-DD"})
			return
		}
		in.Date = d
	}

	entry, err := h.Svc.RecordForDay(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *MoodController) List(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	start, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "endDate")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.Svc.List(uid, start, end, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *MoodController) Stats(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	period, _ := strconv.Atoi(c.DefaultQuery("period", "30"))

	stats, err := h.Svc.Stats(uid, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
