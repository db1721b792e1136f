package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func setupMiddlewareTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "mw-test-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "mw-test-refresh")

	dsn := fmt.Sprintf("file:mwtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
}

func seedUser(t *testing.T, role string) (models.User, string) {
	t.Helper()
	user := models.User{
		FullName: "Middleware Tester",
		Username: "mw_" + role,
		Email:    role + "@mw.test",
		Password: "irrelevant",
		Role:     role,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateAccessToken(&user)
	require.NoError(t, err)
	return user, token
}

func TestAuthMiddleware(t *testing.T) {
	setupMiddlewareTest(t)
	user, token := seedUser(t, models.RoleUser)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		current, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": current.ID})
	})

	// No token
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid bearer token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Valid cookie token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: token})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Token for a deleted user
	require.NoError(t, config.DB.Unscoped().Delete(&user).Error)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	setupMiddlewareTest(t)
	_, userToken := seedUser(t, models.RoleUser)
	_, adminToken := seedUser(t, models.RoleAdmin)

	router := gin.New()
	router.GET("/staff-only", AuthMiddleware(), RequireRoles(models.RoleAdmin, models.RoleOwner),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	// Denial masquerades as a missing page
	req := httptest.NewRequest(http.MethodGet, "/staff-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")

	req = httptest.NewRequest(http.MethodGet, "/staff-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
