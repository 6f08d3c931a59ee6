package controllers

import (
	"net/http"
	"strconv"

	"github.com/Vijay-C-S/zenzone-sub001/models"
	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type CrisisController struct {
	Svc *services.CrisisService
}

func NewCrisisController(svc *services.CrisisService) *CrisisController {
	return &CrisisController{Svc: svc}
}

func (h *CrisisController) List(c *gin.Context) {
	resources, err := h.Svc.List(c.Query("category"), c.Query("region"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

func (h *CrisisController) Emergency(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	resources, err := h.Svc.Emergency(c.Query("region"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

func (h *CrisisController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing 'q' query param"})
		return
	}
	resources, err := h.Svc.Search(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

type accessLogReq struct {
	ResourceID *uint  `json:"resourceId"`
	ActionType string `json:"actionType" binding:"required"`
}

func (h *CrisisController) LogAccess(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req accessLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.Svc.LogAccess(uid, req.ResourceID, req.ActionType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "logged"})
}

// ---- admin routes ----

type crisisResourceReq struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Category    string `json:"category" binding:"required,oneof=hotline text chat local"`
	Phone       string `json:"phone"`
	TextNumber  string `json:"textNumber"`
	Website     string `json:"website"`
	Region      string `json:"region"`
	Priority    int    `json:"priority" binding:"min=0,max=10"`
	IsVerified  bool   `json:"isVerified"`
	Available   string `json:"available"`
}

func (r crisisResourceReq) toModel() *models.CrisisResource {
	return &models.CrisisResource{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Phone:       r.Phone,
		TextNumber:  r.TextNumber,
		Website:     r.Website,
		Region:      r.Region,
		Priority:    r.Priority,
		IsVerified:  r.IsVerified,
		Available:   r.Available,
	}
}

func (h *CrisisController) Create(c *gin.Context) {
	var req crisisResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res := req.toModel()
	if err := h.Svc.Create(res); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"resource": res})
}

func (h *CrisisController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req crisisResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.Svc.Update(id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resource": res})
}

func (h *CrisisController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resource deleted"})
}

func (h *CrisisController) Seed(c *gin.Context) {
	if err := h.Svc.Seed(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "directory seeded"})
}
