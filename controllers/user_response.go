package controllers

import (
	"github.com/Sheras-art/fashionArt/models"
	"github.com/gin-gonic/gin"
)

// userResponse strips password and token fields from an identity
func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"full_name":  user.FullName,
		"username":   user.Username,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
		"is_active":  user.IsActive,
		"created_at": user.CreatedAt,
	}
}
