package controllers

import (
	"net/http"
	"strconv"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	Svc *services.JournalService
}

func NewJournalController(svc *services.JournalService) *JournalController {
	return &JournalController{Svc: svc}
}

type journalReq struct {
	Title     string   `json:"title" binding:"required,max=200"`
	Content   string   `json:"content" binding:"required,max=10000"`
	IsPrivate *bool    `json:"isPrivate"`
	Tags      []string `json:"tags"`
	Mood      *int     `json:"mood" binding:"omitempty,min=1,max=5"`
}

func (h *JournalController) Create(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req journalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.Svc.Create(uid, services.JournalInput{
		Title:     req.Title,
		Content:   req.Content,
		IsPrivate: req.IsPrivate,
		Tags:      req.Tags,
		Mood:      req.Mood,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *JournalController) List(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := h.Svc.List(uid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *JournalController) Get(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.Svc.Get(id, uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

type journalUpdateReq struct {
	Title     string   `json:"title" binding:"omitempty,max=200"`
	Content   string   `json:"content" binding:"omitempty,max=10000"`
	IsPrivate *bool    `json:"isPrivate"`
	Tags      []string `json:"tags"`
	Mood      *int     `json:"mood" binding:"omitempty,min=1,max=5"`
}

func (h *JournalController) Update(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req journalUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.Svc.Update(id, uid, services.JournalInput{
		Title:     req.Title,
		Content:   req.Content,
		IsPrivate: req.IsPrivate,
		Tags:      req.Tags,
		Mood:      req.Mood,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *JournalController) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

func (h *JournalController) Stats(c *gin.Context) {
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
