package controllers

import (
	"net/http"
	"strconv"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type MeditationController struct {
	Svc *services.MeditationService
}

func NewMeditationController(svc *services.MeditationService) *MeditationController {
	return &MeditationController{Svc: svc}
}

type startSessionReq struct {
	Type       string `json:"type" binding:"required,oneof=timer guided breathing"`
	Duration   int    `json:"duration" binding:"required,min=1"`
	MoodBefore *int   `json:"moodBefore" binding:"omitempty,min=1,max=5"`
}

func (h *MeditationController) Start(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.Svc.Start(uid, services.SessionInput{
		Type:       req.Type,
		Duration:   req.Duration,
		MoodBefore: req.MoodBefore,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

type completeSessionReq struct {
	CompletedDuration int  `json:"completedDuration" binding:"min=0"`
	MoodAfter         *int `json:"moodAfter" binding:"omitempty,min=1,max=5"`
}

func (h *MeditationController) Complete(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req completeSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.Svc.Complete(id, uid, req.CompletedDuration, req.MoodAfter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *MeditationController) List(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	sessions, err := h.Svc.List(uid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *MeditationController) Stats(c *gin.Context) {
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
