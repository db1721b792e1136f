package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// GoogleUserInfo is the profile returned by Google's userinfo endpoint
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleLogin redirects the browser to Google's consent screen
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		utils.InternalServerError(c, "Google login is not configured", nil)
		return
	}
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the authorization code, provisions the account on
// first login and issues the usual token pair
func GoogleCallback(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		utils.InternalServerError(c, "Google login is not configured", nil)
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Google login failed - Code exchange error: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(googleUser.Email))
	if email == "" {
		utils.BadRequest(c, "Google account has no email", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// First Google login provisions the account with a throwaway password
		password := fmt.Sprintf("%s%d", googleUser.ID, time.Now().Unix())
		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			utils.InternalServerError(c, "Failed to process password", err.Error())
			return
		}

		user = models.User{
			FullName: googleUser.Name,
			Username: strings.Split(email, "@")[0] + googleUser.ID[:minInt(6, len(googleUser.ID))],
			Email:    email,
			Password: hashedPassword,
			Role:     models.RoleUser,
			GoogleID: googleUser.ID,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Google login failed - Account provisioning error: %v", err)
			utils.InternalServerError(c, "Failed to create user", err.Error())
			return
		}
		utils.LogInfo("Google account provisioned: %s", email)
	} else if user.GoogleID == "" {
		if err := config.DB.Model(&user).Update("google_id", googleUser.ID).Error; err != nil {
			utils.LogError("Failed to link Google ID for user %d: %v", user.ID, err)
		}
	}

	accessToken, refreshToken, err := issueTokenPair(&user)
	if err != nil {
		utils.LogError("Google login failed for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to generate tokens", err.Error())
		return
	}

	setTokenCookies(c, accessToken, refreshToken)

	utils.LogInfo("User logged in via Google: %s", email)
	utils.Success(c, "User logged in successfully", gin.H{
		"user":         userResponse(&user),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
