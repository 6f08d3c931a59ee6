package controllers

import (
	"net/http"

	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	user, err := services.GetUserByID(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"fullName":   user.FullName,
		"mfaEnabled": user.MFAEnabled,
	})
}

func UpdateProfile(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input struct {
		FullName   string `json:"fullName"`
		MFAEnabled *bool  `json:"mfaEnabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := services.UpdateUserProfile(uid, input.FullName, input.MFAEnabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"fullName":   user.FullName,
		"mfaEnabled": user.MFAEnabled,
	})
}
