package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	Svc *services.HabitService
}

func NewHabitController(svc *services.HabitService) *HabitController {
	return &HabitController{Svc: svc}
}

type createHabitReq struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Category    string `json:"category"`
	Frequency   string `json:"frequency" binding:"required,oneof=daily weekly monthly"`
	TargetCount int    `json:"targetCount" binding:"required,min=1"`
	Unit        string `json:"unit"`
	Icon        string `json:"icon"`
}

func (h *HabitController) Create(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req createHabitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	habit, err := h.Svc.Create(uid, services.HabitInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Frequency:   req.Frequency,
		TargetCount: req.TargetCount,
		Unit:        req.Unit,
		Icon:        req.Icon,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

func (h *HabitController) List(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	habits, err := h.Svc.List(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

type updateHabitReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	TargetCount *int    `json:"targetCount"`
	Unit        *string `json:"unit"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"isActive"`
}

func (h *HabitController) Update(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateHabitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	habit, err := h.Svc.Update(id, uid, services.HabitUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		TargetCount: req.TargetCount,
		Unit:        req.Unit,
		Icon:        req.Icon,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

func (h *HabitController) Delete(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(id, uid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "habit deleted"})
}

type habitEntryReq struct {
	HabitID   uint   `json:"habitId" binding:"required"`
	Date      string `json:"date"` // YYYY-MM-DD, defaults to today
	Completed bool   `json:"completed"`
	Count     int    `json:"count" binding:"min=0"`
}

// RecordEntry upserts the day's completion and triggers the streak recompute.
func (h *HabitController) RecordEntry(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req habitEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var day time.Time
	if req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format, use YYYY-MM-DD"})
			return
		}
		day = d
	}

	entry, err := h.Svc.RecordEntry(uid, req.HabitID, day, req.Completed, req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *HabitController) ListEntries(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	habitID, _ := strconv.ParseUint(c.DefaultQuery("habitId", "0"), 10, 32)
	start, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "endDate")
	if !ok {
		return
	}

	entries, err := h.Svc.ListEntries(uid, uint(habitID), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *HabitController) Stats(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	stats, err := h.Svc.Stats(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
