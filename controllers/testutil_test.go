package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/routes"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

// envelope mirrors the standard response shape
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

// setupTest wires an isolated in-memory database and a full router
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")
	t.Setenv("SESSION_SECRET", "test-session-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("ASSET_BASE_URL", "http://assets.test")

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter()
}

// createTestUser persists a user with the given role and returns it with a
// valid access token
func createTestUser(t *testing.T, role, email, username string) (models.User, string) {
	t.Helper()

	hashed, err := utils.HashPassword("Password1")
	require.NoError(t, err)

	user := models.User{
		FullName: "Test User",
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateAccessToken(&user)
	require.NoError(t, err)
	return user, token
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" &&
		w.Header().Get("Content-Type") != "application/pdf" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

// productForm builds a multipart form for product creation
func productForm(t *testing.T, fields map[string]string, withImages bool) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withImages {
		cover, err := writer.CreateFormFile("cover_image", "cover.jpg")
		require.NoError(t, err)
		_, err = cover.Write([]byte("fake-cover-bytes"))
		require.NoError(t, err)

		gallery, err := writer.CreateFormFile("images", "gallery1.png")
		require.NoError(t, err)
		_, err = gallery.Write([]byte("fake-gallery-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

// doMultipart performs a multipart POST with a bearer token
func doMultipart(t *testing.T, router *gin.Engine, path, token string, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

// createTestProduct persists a product directly
func createTestProduct(t *testing.T, ownerID uint, title, category string, price float64, stock, buyCount int) models.Product {
	t.Helper()

	product := models.Product{
		OwnerID:     ownerID,
		Title:       title,
		Category:    category,
		Description: "A " + title + " for testing",
		Price:       price,
		Stock:       stock,
		CoverImage:  "http://assets.test/cover.jpg",
		IsActive:    true,
		BuyCount:    buyCount,
	}
	require.NoError(t, config.DB.Create(&product).Error)
	return product
}
