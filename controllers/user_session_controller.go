package controllers

import (
	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// LogoutUser clears the stored refresh token and ends the session
func LogoutUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"refresh_token": "",
		"is_active":     false,
	}).Error; err != nil {
		utils.LogError("Failed to clear refresh token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to log out", err.Error())
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear session for user %d: %v", user.ID, err)
	}

	clearTokenCookies(c)

	utils.LogInfo("User logged out: %d", user.ID)
	utils.Success(c, "User logged out successfully", nil)
}

// RefreshTokenRequest carries the refresh token when it is not sent as a cookie
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshAccessToken rotates the token pair when the presented refresh token
// matches the one stored on the identity
func RefreshAccessToken(c *gin.Context) {
	presented, _ := c.Cookie(utils.RefreshTokenCookie)
	if presented == "" {
		var req RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}
	if presented == "" {
		utils.LogError("Token refresh failed - No refresh token presented")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	userID, err := utils.ValidateRefreshToken(presented)
	if err != nil {
		utils.LogError("Token refresh failed - Invalid refresh token: %v", err)
		utils.Unauthorized(c, utils.ErrInvalidToken)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.LogError("Token refresh failed - User %d not found: %v", userID, err)
		utils.Unauthorized(c, utils.ErrInvalidToken)
		return
	}

	if user.RefreshToken == "" || user.RefreshToken != presented {
		utils.LogError("Token refresh failed - Token does not match stored token for user %d", user.ID)
		utils.Unauthorized(c, "Refresh token is expired or already used")
		return
	}

	accessToken, refreshToken, err := issueTokenPair(&user)
	if err != nil {
		utils.LogError("Token refresh failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to refresh tokens", err.Error())
		return
	}

	setTokenCookies(c, accessToken, refreshToken)

	utils.LogInfo("Tokens refreshed for user %d", user.ID)
	utils.Success(c, "Access token refreshed successfully", gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// GetCurrentUser returns the authenticated identity
func GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	utils.Success(c, "Current user fetched successfully", gin.H{
		"user": userResponse(&user),
	})
}
