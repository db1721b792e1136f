package controllers

import (
	"strconv"
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// limitFromQuery parses the limit query parameter with a default
func limitFromQuery(c *gin.Context, fallback int) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > utils.MaxPaginationLimit {
				return utils.MaxPaginationLimit
			}
			return n
		}
	}
	return fallback
}

// ProductWithOwner is a catalog item joined with the owner's public profile
type ProductWithOwner struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	CoverImage  string  `json:"cover_image"`
	IsActive    bool    `json:"is_active"`
	BuyCount    int     `json:"buy_count"`
	Rating      float64 `json:"rating"`
	OwnerID     uint    `json:"owner_id"`
	OwnerName   string  `json:"owner_name"`
	OwnerUser   string  `json:"owner_username"`
	OwnerEmail  string  `json:"owner_email"`
}

// GetProductsByCategory lists products in one category with the owner's
// public profile attached
func GetProductsByCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		utils.BadRequest(c, "Category query parameter is required", nil)
		return
	}

	utils.LogInfo("GetProductsByCategory called for: %s", category)

	var products []ProductWithOwner
	err := config.DB.Model(&models.Product{}).
		Select(`products.id, products.title, products.category, products.price,
			products.description, products.stock, products.cover_image,
			products.is_active, products.buy_count, products.rating,
			products.owner_id, users.full_name AS owner_name,
			users.username AS owner_user, users.email AS owner_email`).
		Joins("JOIN users ON users.id = products.owner_id").
		Where("LOWER(products.category) = ?", strings.ToLower(category)).
		Order("products.created_at DESC").
		Scan(&products).Error
	if err != nil {
		utils.LogError("Failed to fetch products for category %s: %v", category, err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	if len(products) == 0 {
		utils.LogError("No products found in category: %s", category)
		utils.NotFound(c, "No products found in this category")
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
	})
}

// SearchProducts ranks matches by where the term appears: title hits score
// highest, then category, then description
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		utils.LogError("Search rejected - Empty query")
		utils.BadRequest(c, "Search query must not be empty", nil)
		return
	}
	if utils.IsNumericOnly(query) {
		utils.LogError("Search rejected - Purely numeric query: %s", query)
		utils.BadRequest(c, "Search query must not be purely numeric", nil)
		return
	}

	utils.LogInfo("SearchProducts called with query: %s", query)

	term := "%" + strings.ToLower(query) + "%"

	type rankedProduct struct {
		models.Product
		Relevance int `json:"-"`
	}

	var ranked []rankedProduct
	err := config.DB.Model(&models.Product{}).
		Select(`products.*,
			(CASE WHEN LOWER(title) LIKE ? THEN 4 ELSE 0 END +
			 CASE WHEN LOWER(category) LIKE ? THEN 2 ELSE 0 END +
			 CASE WHEN LOWER(description) LIKE ? THEN 1 ELSE 0 END) AS relevance`,
			term, term, term).
		Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term).
		Order("relevance DESC, created_at DESC").
		Scan(&ranked).Error
	if err != nil {
		utils.LogError("Search failed for %s: %v", query, err)
		utils.InternalServerError(c, "Failed to search products", err.Error())
		return
	}

	if len(ranked) == 0 {
		utils.NotFound(c, "No products matched your search")
		return
	}

	products := make([]models.Product, 0, len(ranked))
	for _, r := range ranked {
		products = append(products, r.Product)
	}

	utils.LogInfo("Search for %s returned %d products", query, len(products))
	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
	})
}

// GetNewArrivals lists the most recently added visible products
func GetNewArrivals(c *gin.Context) {
	limit := limitFromQuery(c, utils.DefaultPaginationLimit)

	var products []models.Product
	if err := config.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch new arrivals: %v", err)
		utils.InternalServerError(c, "Failed to fetch new arrivals", err.Error())
		return
	}

	utils.Success(c, "New arrivals retrieved successfully", gin.H{
		"products": products,
	})
}

// GetBestSellers lists visible products with at least one purchase, most
// purchased first
func GetBestSellers(c *gin.Context) {
	limit := limitFromQuery(c, utils.DefaultPaginationLimit)

	var products []models.Product
	if err := config.DB.Where("is_active = ? AND buy_count > 0", true).
		Order("buy_count DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch best sellers: %v", err)
		utils.InternalServerError(c, "Failed to fetch best sellers", err.Error())
		return
	}

	utils.Success(c, "Best sellers retrieved successfully", gin.H{
		"products": products,
	})
}

// GetProductsByPriceRange lists products sorted by price in the requested
// direction
func GetProductsByPriceRange(c *gin.Context) {
	limit := limitFromQuery(c, utils.DefaultPaginationLimit)

	fetchingType := strings.ToLower(strings.TrimSpace(c.Query("fetchingType")))
	order := "price DESC"
	switch fetchingType {
	case "", "hightolow":
		order = "price DESC"
	case "lowtohigh":
		order = "price ASC"
	default:
		utils.BadRequest(c, "Invalid fetchingType", "fetchingType must be hightolow or lowtohigh")
		return
	}

	var products []models.Product
	if err := config.DB.Where("is_active = ?", true).
		Order(order).
		Limit(limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products by price range: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
	})
}

// GetLowStockProducts lists products under the stock threshold, lowest first
func GetLowStockProducts(c *gin.Context) {
	limit := limitFromQuery(c, utils.DefaultPaginationLimit)

	threshold := utils.DefaultLowStockThreshold
	if v := c.Query("stock"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			threshold = n
		}
	}

	var products []models.Product
	if err := config.DB.Where("stock < ?", threshold).
		Order("stock ASC").
		Limit(limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch low stock products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Low stock products retrieved successfully", gin.H{
		"products":  products,
		"threshold": threshold,
	})
}
