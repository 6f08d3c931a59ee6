package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/services"
	"github.com/Vijay-C-S/zenzone-sub001/utils"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

// respondError maps service errors onto the HTTP status table. Ownership
// failures already arrive as ErrNotFound.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "validation failed",
		"errors":  utils.FormatValidationErrors(err),
	})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name + ", use YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
