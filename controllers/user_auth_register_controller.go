package controllers

import (
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	utils.LogInfo("Registration attempt for email: %s, username: %s", req.Email, req.Username)

	if req.FullName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		utils.LogError("Registration attempt failed - Missing required fields")
		utils.BadRequest(c, "All fields are required", "full_name, username, email and password must not be empty")
		return
	}

	if valid, msg := utils.ValidateFullName(req.FullName); !valid {
		utils.BadRequest(c, "Invalid full name", msg)
		return
	}
	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.BadRequest(c, "Invalid username", msg)
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if valid, msg := utils.ValidatePhone(req.Phone); !valid {
		utils.BadRequest(c, "Invalid phone", msg)
		return
	}

	// Case-folded uniqueness check across both identifiers
	var existingUser models.User
	if err := config.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existingUser).Error; err == nil {
		utils.LogError("Registration attempt failed - Duplicate identity: %s / %s", req.Email, req.Username)
		utils.Conflict(c, "User with this email or username already exists", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Registration attempt failed - Password hashing error: %v", err)
		utils.InternalServerError(c, "Failed to process password", err.Error())
		return
	}

	user := models.User{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Phone:    req.Phone,
		Role:     models.RoleUser,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user account for %s: %v", req.Email, err)
		// sqlite reports "UNIQUE constraint failed", postgres "duplicate key"
		errText := strings.ToLower(err.Error())
		if strings.Contains(errText, "unique") || strings.Contains(errText, "duplicate") {
			utils.Conflict(c, "User with this email or username already exists", nil)
			return
		}
		utils.InternalServerError(c, "Failed to create user account", err.Error())
		return
	}

	// Best effort; registration must not fail on mail problems
	if err := utils.SendWelcomeEmail(user.Email, user.FullName); err != nil {
		utils.LogDebug("Welcome email not sent to %s: %v", user.Email, err)
	}

	utils.LogInfo("User registered successfully: %s", user.Email)
	utils.Created(c, "User registered successfully", gin.H{
		"user": userResponse(&user),
	})
}
