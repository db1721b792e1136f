package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/controllers"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProduct(t *testing.T) {
	router := setupTest(t)
	admin, adminToken := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	_, userToken := createTestUser(t, models.RoleUser, "user@example.com", "plainuser")

	fields := map[string]string{
		"title":       "Linen Shirt",
		"category":    "Shirts",
		"description": "A breathable summer shirt",
		"price":       "49.99",
		"stock":       "20",
	}

	// Plain users hit the 404 gate
	body, contentType := productForm(t, fields, true)
	w, _ := doMultipart(t, router, "/products/add-product", userToken, body, contentType)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing description
	short := map[string]string{"title": "X", "category": "Y", "price": "1", "stock": "1"}
	body, contentType = productForm(t, short, true)
	w, _ = doMultipart(t, router, "/products/add-product", adminToken, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price
	bad := map[string]string{
		"title": "X", "category": "Y", "description": "Z", "price": "-5", "stock": "1"}
	body, contentType = productForm(t, bad, true)
	w, _ = doMultipart(t, router, "/products/add-product", adminToken, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No images
	body, contentType = productForm(t, fields, false)
	w, _ = doMultipart(t, router, "/products/add-product", adminToken, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Successful create
	body, contentType = productForm(t, fields, true)
	w, env := doMultipart(t, router, "/products/add-product", adminToken, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, admin.ID, data.Product.OwnerID)
	assert.NotEmpty(t, data.Product.CoverImage)
	assert.NotEmpty(t, data.Product.Images)
	assert.True(t, data.Product.IsActive)

	// Same title and category, case-folded, is a conflict
	dup := map[string]string{
		"title": "LINEN shirt", "category": "shirts",
		"description": "Copycat", "price": "10", "stock": "5"}
	body, contentType = productForm(t, dup, true)
	w, _ = doMultipart(t, router, "/products/add-product", adminToken, body, contentType)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same title in a different category is fine
	other := map[string]string{
		"title": "Linen Shirt", "category": "Outlet",
		"description": "Discounted run", "price": "10", "stock": "5"}
	body, contentType = productForm(t, other, true)
	w, _ = doMultipart(t, router, "/products/add-product", adminToken, body, contentType)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAddProductGalleryCap(t *testing.T) {
	router := setupTest(t)
	_, adminToken := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range map[string]string{
		"title":       "Capped Shirt",
		"category":    "Shirts",
		"description": "Ships with too many pictures",
		"price":       "19.99",
		"stock":       "5",
	} {
		require.NoError(t, writer.WriteField(k, v))
	}
	cover, err := writer.CreateFormFile("cover_image", "cover.jpg")
	require.NoError(t, err)
	_, err = cover.Write([]byte("fake-cover-bytes"))
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		part, err := writer.CreateFormFile("images", fmt.Sprintf("gallery%d.png", i))
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-gallery-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w, env := doMultipart(t, router, "/products/add-product", adminToken, buf, writer.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "gallery")

	var n int64
	require.NoError(t, config.DB.Model(&models.Product{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestCatalogReadsAreStaffOnly(t *testing.T) {
	router := setupTest(t)
	admin, _ := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	_, userToken := createTestUser(t, models.RoleUser, "user@example.com", "plainuser")
	createTestProduct(t, admin.ID, "Linen Shirt", "Shirts", 49, 20, 0)

	gated := []string{
		"/products/get-products-by-pagination",
		"/products/get-single-product/1",
		"/products/get-products-by-category?category=Shirts",
		"/products/get-new-arrivals",
		"/products/get-best-sellers",
		"/products/get-products-by-price-range",
		"/products/get-lower-stock-products",
		"/products/get-product-stats/1",
	}
	for _, path := range gated {
		w, env := doJSON(t, router, http.MethodGet, path, userToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "Page not found", env.Message, path)
	}

	// Search stays open to any authenticated user
	w, _ := doJSON(t, router, http.MethodGet, "/products/search-products?query=shirt", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateProduct(t *testing.T) {
	router := setupTest(t)
	admin, adminToken := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	product := createTestProduct(t, admin.ID, "Wool Coat", "Coats", 120, 8, 0)

	// Unknown id
	fields := map[string]string{"price": "99.50"}
	body, contentType := productForm(t, fields, false)
	w, _ := doMultipart(t, router, "/products/update-product/99999", adminToken, body, contentType)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Partial update touches only the supplied field
	body, contentType = productForm(t, fields, false)
	w, env := doMultipart(t, router, "/products/update-product/"+itoa(product.ID), adminToken, body, contentType)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 99.50, data.Product.Price)
	assert.Equal(t, "Wool Coat", data.Product.Title)
	assert.Equal(t, 8, data.Product.Stock)

	// Invalid numeric field
	body, contentType = productForm(t, map[string]string{"stock": "-3"}, false)
	w, _ = doMultipart(t, router, "/products/update-product/"+itoa(product.ID), adminToken, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	router := setupTest(t)
	admin, adminToken := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	product := createTestProduct(t, admin.ID, "Silk Scarf", "Accessories", 25, 30, 0)
	require.NoError(t, config.DB.Create(&models.ProductImage{ProductID: product.ID, URL: "http://assets.test/1.jpg"}).Error)

	// Absent product
	w, _ := doJSON(t, router, http.MethodDelete, "/products/delete-product/99999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/products/delete-product/"+itoa(product.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Hard delete: the row and its gallery are gone
	var n int64
	require.NoError(t, config.DB.Unscoped().Model(&models.Product{}).Where("id = ?", product.ID).Count(&n).Error)
	assert.EqualValues(t, 0, n)
	require.NoError(t, config.DB.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestGetProductsByPagination(t *testing.T) {
	router := setupTest(t)
	admin, token := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")

	for i := 1; i <= 12; i++ {
		createTestProduct(t, admin.ID, fmt.Sprintf("Item %02d", i), "Misc", float64(i), 5, 0)
	}

	w, env := doJSON(t, router, http.MethodGet,
		"/products/get-products-by-pagination?page=2&limit=5", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Items       []models.Product `json:"items"`
		TotalCount  int64            `json:"totalCount"`
		CurrentPage int              `json:"currentPage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 5)
	assert.EqualValues(t, 12, data.TotalCount)
	assert.Equal(t, 2, data.CurrentPage)

	// Defaults: page 1, limit 10, newest first
	w, env = doJSON(t, router, http.MethodGet, "/products/get-products-by-pagination", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 10)
	assert.Equal(t, 1, data.CurrentPage)
	assert.Equal(t, "Item 12", data.Items[0].Title)
}

func TestGetSingleProduct(t *testing.T) {
	router := setupTest(t)
	admin, token := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	product := createTestProduct(t, admin.ID, "Denim Jacket", "Jackets", 80, 15, 0)

	w, _ := doJSON(t, router, http.MethodGet, "/products/get-single-product/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/products/get-single-product/99999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/products/get-single-product/"+itoa(product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Denim Jacket", data.Product.Title)
}

func TestGetProductsByCategory(t *testing.T) {
	router := setupTest(t)
	admin, token := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	createTestProduct(t, admin.ID, "Linen Shirt", "Shirts", 49, 20, 0)
	createTestProduct(t, admin.ID, "Oxford Shirt", "Shirts", 59, 10, 0)

	// Zero matches answers 404
	w, _ := doJSON(t, router, http.MethodGet, "/products/get-products-by-category?category=Hats", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/products/get-products-by-category?category=shirts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Products []controllers.ProductWithOwner `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Products, 2)
	assert.Equal(t, admin.ID, data.Products[0].OwnerID)
	assert.Equal(t, "admin@example.com", data.Products[0].OwnerEmail)
	assert.Equal(t, "adminuser", data.Products[0].OwnerUser)
}

func TestSearchProducts(t *testing.T) {
	router := setupTest(t)
	admin, token := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	titleHit := createTestProduct(t, admin.ID, "Running Shoe", "Footwear", 90, 12, 0)
	createTestProduct(t, admin.ID, "Trail Sock", "Shoe Accessories", 12, 40, 0)

	descHit := models.Product{OwnerID: admin.ID, Title: "Insole Pad", Category: "Comfort",
		Description: "Fits any shoe size", Price: 8, Stock: 50,
		CoverImage: "http://assets.test/c.jpg", IsActive: true}
	require.NoError(t, config.DB.Create(&descHit).Error)

	// Empty query
	w, _ := doJSON(t, router, http.MethodGet, "/products/search-products?query=", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Purely numeric query
	w, _ = doJSON(t, router, http.MethodGet, "/products/search-products?query=42", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No matches
	w, _ = doJSON(t, router, http.MethodGet, "/products/search-products?query=zeppelin", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Title hits outrank category hits which outrank description hits
	w, env := doJSON(t, router, http.MethodGet, "/products/search-products?query=shoe", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Products, 3)
	assert.Equal(t, titleHit.ID, data.Products[0].ID)
	assert.Equal(t, descHit.ID, data.Products[2].ID)
}

func TestCatalogShelves(t *testing.T) {
	router := setupTest(t)
	admin, token := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")

	cheap := createTestProduct(t, admin.ID, "Basic Tee", "Tees", 9, 100, 3)
	mid := createTestProduct(t, admin.ID, "Premium Tee", "Tees", 29, 4, 10)
	pricey := createTestProduct(t, admin.ID, "Designer Tee", "Tees", 99, 2, 0)

	hidden := createTestProduct(t, admin.ID, "Retired Tee", "Tees", 5, 0, 50)
	require.NoError(t, config.DB.Model(&hidden).Update("is_active", false).Error)

	t.Run("best sellers", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodGet, "/products/get-best-sellers", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Products []models.Product `json:"products"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		// Hidden and zero-purchase products are excluded
		require.Len(t, data.Products, 2)
		assert.Equal(t, mid.ID, data.Products[0].ID)
		assert.Equal(t, cheap.ID, data.Products[1].ID)
	})

	t.Run("price range", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodGet,
			"/products/get-products-by-price-range?fetchingType=lowtohigh", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Products []models.Product `json:"products"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Products, 3)
		assert.Equal(t, cheap.ID, data.Products[0].ID)
		assert.Equal(t, pricey.ID, data.Products[2].ID)

		// Default direction is high to low
		w, env = doJSON(t, router, http.MethodGet, "/products/get-products-by-price-range", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, pricey.ID, data.Products[0].ID)

		w, _ = doJSON(t, router, http.MethodGet,
			"/products/get-products-by-price-range?fetchingType=sideways", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("low stock", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodGet, "/products/get-lower-stock-products", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Products []models.Product `json:"products"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		// Under the default threshold of 10, ascending by stock
		require.Len(t, data.Products, 3)
		assert.Equal(t, hidden.ID, data.Products[0].ID)
		assert.Equal(t, pricey.ID, data.Products[1].ID)
		assert.Equal(t, mid.ID, data.Products[2].ID)
	})

	t.Run("new arrivals", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodGet, "/products/get-new-arrivals?limit=2", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Products []models.Product `json:"products"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data.Products, 2)
		for _, p := range data.Products {
			assert.True(t, p.IsActive)
		}
	})
}

func TestProductStatsAndVisibility(t *testing.T) {
	router := setupTest(t)
	admin, token := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	product := createTestProduct(t, admin.ID, "Canvas Bag", "Bags", 40, 25, 7)

	w, env := doJSON(t, router, http.MethodGet, "/products/get-product-stats/"+itoa(product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Stats struct {
			Purchases    int     `json:"purchases"`
			TotalRevenue float64 `json:"totalRevenue"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 7, data.Stats.Purchases)
	assert.Equal(t, 280.0, data.Stats.TotalRevenue)

	w, _ = doJSON(t, router, http.MethodGet, "/products/get-product-stats/99999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Toggling flips the flag and the message names the new state
	w, env = doJSON(t, router, http.MethodPost, "/products/toggle-product-visibility/"+itoa(product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.Message, "deactivated")

	var reloaded models.Product
	require.NoError(t, config.DB.First(&reloaded, product.ID).Error)
	assert.False(t, reloaded.IsActive)

	w, env = doJSON(t, router, http.MethodPost, "/products/toggle-product-visibility/"+itoa(product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.Message, "activated")
}

func TestExportCatalog(t *testing.T) {
	router := setupTest(t)
	admin, token := createTestUser(t, models.RoleAdmin, "admin@example.com", "adminuser")
	_, userToken := createTestUser(t, models.RoleUser, "user@example.com", "plainuser")
	createTestProduct(t, admin.ID, "Linen Shirt", "Shirts", 49, 20, 2)

	// Gated
	w, _ := doJSON(t, router, http.MethodGet, "/products/export-catalog", userToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bad format
	w, _ = doJSON(t, router, http.MethodGet, "/products/export-catalog?format=csv", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// PDF
	w, _ = doJSON(t, router, http.MethodGet, "/products/export-catalog?format=pdf", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())

	// Excel
	w, _ = doJSON(t, router, http.MethodGet, "/products/export-catalog?format=excel", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheet")
	assert.NotZero(t, w.Body.Len())
}
