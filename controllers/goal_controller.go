package controllers

import (
	"net/http"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

type createGoalReq struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"max=1000"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	TargetDate  string   `json:"targetDate" binding:"required"`
	Milestones  []string `json:"milestones"`
}

func (h *GoalController) Create(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	target, err := time.ParseInLocation("2006-01-02", req.TargetDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid targetDate, use YYYY-MM-DD"})
		return
	}

	goal, err := h.Svc.Create(uid, services.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		TargetDate:  target,
		Milestones:  req.Milestones,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

func (h *GoalController) List(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	goals, err := h.Svc.List(uid, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (h *GoalController) Get(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.Svc.Get(id, uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

type updateGoalReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	TargetDate  *string `json:"targetDate"`
	Progress    *int    `json:"progress"`
	Status      *string `json:"status" binding:"omitempty,oneof=active paused completed cancelled"`
}

// Update handles progress sets, field edits and status transitions; the status
// machine lives in the service.
func (h *GoalController) Update(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	upd := services.GoalUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Progress:    req.Progress,
		Status:      req.Status,
	}
	if req.TargetDate != nil {
		target, err := time.ParseInLocation("2006-01-02", *req.TargetDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid targetDate, use YYYY-MM-DD"})
			return
		}
		upd.TargetDate = &target
	}

	goal, err := h.Svc.Update(id, uid, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

type milestoneReq struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *GoalController) ToggleMilestone(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	mid, ok := parseIDParam(c, "mid")
	if !ok {
		return
	}

	var req milestoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.Svc.ToggleMilestone(id, uid, mid, *req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

func (h *GoalController) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}

func (h *GoalController) Stats(c *gin.Context) {
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
