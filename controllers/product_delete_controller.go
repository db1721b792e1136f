package controllers

import (
	"strconv"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// DeleteProduct removes a product and its gallery rows permanently
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		utils.LogError("Product delete failed - Product %d not found", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to delete product", tx.Error.Error())
		return
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete images for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	if err := tx.Unscoped().Delete(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Product %d deleted", product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}
