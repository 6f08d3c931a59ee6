package controllers

import (
	"net/http"
	"strconv"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

type chatReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

func (h *ChatController) Send(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reply, err := h.Svc.Send(c.Request.Context(), uid, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *ChatController) History(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	messages, err := h.Svc.History(uid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
