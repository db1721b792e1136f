package controllers

import (
	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// GetProductsByPagination lists the catalog newest first
func GetProductsByPagination(c *gin.Context) {
	utils.LogInfo("GetProductsByPagination called with query params: %v", c.Request.URL.Query())

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Product{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to count products", err.Error())
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := config.DB.Preload("Images").
		Order("created_at DESC, id DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.LogInfo("Fetched %d products (page %d)", len(products), pagination.Page)
	utils.Success(c, "Products retrieved successfully", gin.H{
		"items":       products,
		"totalCount":  total,
		"currentPage": pagination.Page,
		"lastPage":    pagination.LastPage,
	})
}
