package controllers

import (
	"net/http"
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request body. Either email or username
// identifies the account.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// issueTokenPair generates a fresh access/refresh pair and persists the
// refresh token on the identity
func issueTokenPair(user *models.User) (string, string, error) {
	accessToken, err := utils.GenerateAccessToken(user)
	if err != nil {
		return "", "", utils.WrapError(err, "failed to generate access token")
	}
	refreshToken, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return "", "", utils.WrapError(err, "failed to generate refresh token")
	}
	if err := config.DB.Model(user).Updates(map[string]interface{}{
		"refresh_token": refreshToken,
		"is_active":     true,
	}).Error; err != nil {
		return "", "", utils.WrapError(err, "failed to persist refresh token")
	}
	user.RefreshToken = refreshToken
	user.IsActive = true
	return accessToken, refreshToken, nil
}

func setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utils.AccessTokenCookie, accessToken, int(utils.AccessTokenTTL().Seconds()), "/", "", true, true)
	c.SetCookie(utils.RefreshTokenCookie, refreshToken, int(utils.RefreshTokenTTL().Seconds()), "/", "", true, true)
}

func clearTokenCookies(c *gin.Context) {
	c.SetCookie(utils.AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(utils.RefreshTokenCookie, "", -1, "/", "", true, true)
}

// LoginUser handles user login by email or username
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	identifier := strings.ToLower(strings.TrimSpace(req.Email))
	if identifier == "" {
		identifier = strings.ToLower(strings.TrimSpace(req.Username))
	}
	if identifier == "" || req.Password == "" {
		utils.BadRequest(c, "Email or username and password are required", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error; err != nil {
		utils.LogError("Login attempt failed - User not found: %s", identifier)
		utils.NotFound(c, utils.ErrUserNotFound)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login attempt failed - Invalid password for: %s", identifier)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	accessToken, refreshToken, err := issueTokenPair(&user)
	if err != nil {
		utils.LogError("Login failed for %s: %v", identifier, err)
		utils.InternalServerError(c, "Failed to generate tokens", err.Error())
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session for user %d: %v", user.ID, err)
	}

	setTokenCookies(c, accessToken, refreshToken)

	utils.LogInfo("User logged in successfully: %s", user.Email)
	utils.Success(c, "User logged in successfully", gin.H{
		"user":         userResponse(&user),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
