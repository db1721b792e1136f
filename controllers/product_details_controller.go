package controllers

import (
	"strconv"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// GetProductByID returns a single product with its gallery
func GetProductByID(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var product models.Product
	if err := config.DB.Preload("Images").First(&product, uint(productID)).Error; err != nil {
		utils.LogError("Product %d not found", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": product,
	})
}

// GetProductStats reports purchase count and revenue for one product
func GetProductStats(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		utils.LogError("Product stats failed - Product %d not found", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product stats retrieved successfully", gin.H{
		"stats": gin.H{
			"purchases":    product.BuyCount,
			"totalRevenue": product.Price * float64(product.BuyCount),
		},
	})
}

// ToggleProductVisibility flips a product's active flag
func ToggleProductVisibility(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		utils.LogError("Visibility toggle failed - Product %d not found", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	newState := !product.IsActive
	if err := config.DB.Model(&product).Update("is_active", newState).Error; err != nil {
		utils.LogError("Visibility toggle failed for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to toggle product visibility", err.Error())
		return
	}
	product.IsActive = newState

	action := "deactivated"
	if newState {
		action = "activated"
	}

	utils.LogInfo("Product %d %s", product.ID, action)
	utils.Success(c, "Product "+action+" successfully", gin.H{
		"product": product,
	})
}
