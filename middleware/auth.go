package middleware

import (
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// tokenFromRequest extracts the access token from the cookie or the
// Authorization header
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware verifies the access token and loads the user into context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			utils.LogError("Missing access token for %s", c.Request.URL.Path)
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}

		userID, err := utils.ValidateAccessToken(tokenString)
		if err != nil {
			utils.LogError("Invalid access token: %v", err)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.LogError("User %d from token not found: %v", userID, err)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated user's
// role is in the allow-list. Denial deliberately answers 404 rather than 403
// so unauthorized callers cannot probe which routes exist.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			utils.LogError("RequireRoles called without authenticated user")
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}

		userModel, ok := user.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			utils.InternalServerError(c, utils.ErrInternalServer, nil)
			c.Abort()
			return
		}

		if !allowed[userModel.Role] {
			utils.LogError("Role %q denied for %s %s (user %d)",
				userModel.Role, c.Request.Method, c.Request.URL.Path, userModel.ID)
			utils.NotFound(c, utils.ErrPageNotFound)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser fetches the authenticated user from the gin context
func CurrentUser(c *gin.Context) (models.User, bool) {
	user, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	userModel, ok := user.(models.User)
	return userModel, ok
}
