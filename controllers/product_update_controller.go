package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// UpdateProduct applies a partial update to a product. Only fields present in
// the form are touched; new images replace the old set only when supplied.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		utils.LogError("Product update failed - Product %d not found", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	updates := map[string]interface{}{}

	if title, exists := c.GetPostForm("title"); exists {
		title = strings.TrimSpace(title)
		if title == "" {
			utils.BadRequest(c, "Title must not be empty", nil)
			return
		}
		updates["title"] = title
	}
	if category, exists := c.GetPostForm("category"); exists {
		category = utils.Title(strings.TrimSpace(category))
		if category == "" {
			utils.BadRequest(c, "Category must not be empty", nil)
			return
		}
		updates["category"] = category
	}
	if description, exists := c.GetPostForm("description"); exists {
		updates["description"] = strings.TrimSpace(description)
	}
	if priceStr, exists := c.GetPostForm("price"); exists {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			utils.BadRequest(c, "Invalid price", "price must be a number")
			return
		}
		if valid, msg := utils.ValidatePrice(price); !valid {
			utils.BadRequest(c, "Invalid price", msg)
			return
		}
		updates["price"] = price
	}
	if stockStr, exists := c.GetPostForm("stock"); exists {
		stock, err := strconv.Atoi(stockStr)
		if err != nil {
			utils.BadRequest(c, "Invalid stock", "stock must be an integer")
			return
		}
		if valid, msg := utils.ValidateStock(stock); !valid {
			utils.BadRequest(c, "Invalid stock", msg)
			return
		}
		updates["stock"] = stock
	}

	// Duplicate check only when the identity pair changes
	newTitle := product.Title
	newCategory := product.Category
	if v, ok := updates["title"].(string); ok {
		newTitle = v
	}
	if v, ok := updates["category"].(string); ok {
		newCategory = v
	}
	if newTitle != product.Title || newCategory != product.Category {
		var existing models.Product
		if err := config.DB.Where("LOWER(title) = ? AND LOWER(category) = ? AND id <> ?",
			strings.ToLower(newTitle), strings.ToLower(newCategory), product.ID).First(&existing).Error; err == nil {
			utils.Conflict(c, "A product with this title already exists in this category", nil)
			return
		}
	}

	form, formErr := c.MultipartForm()

	var newCoverURL string
	var newGalleryURLs []string
	if formErr == nil && form != nil {
		if coverFiles := form.File["cover_image"]; len(coverFiles) > 0 {
			urls, uploadErr := uploadProductImages(coverFiles[:1])
			if uploadErr != "" {
				utils.BadRequest(c, "Failed to upload cover image", uploadErr)
				return
			}
			newCoverURL = urls[0]
		}
		if galleryFiles := form.File["images"]; len(galleryFiles) > 0 {
			if len(galleryFiles) > utils.MaxGalleryImages {
				utils.BadRequest(c, "Too many gallery images",
					fmt.Sprintf("at most %d gallery images are allowed", utils.MaxGalleryImages))
				return
			}
			urls, uploadErr := uploadProductImages(galleryFiles)
			if uploadErr != "" {
				utils.BadRequest(c, "Failed to upload gallery images", uploadErr)
				return
			}
			newGalleryURLs = urls
		}
	}

	if len(updates) == 0 && newCoverURL == "" && len(newGalleryURLs) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if newCoverURL != "" {
		updates["cover_image"] = newCoverURL
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to update product", tx.Error.Error())
		return
	}

	if len(updates) > 0 {
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			tx.Rollback()
			utils.LogError("Product update failed for %d: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to update product", err.Error())
			return
		}
	}

	if len(newGalleryURLs) > 0 {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear old images for product %d: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to update product images", err.Error())
			return
		}
		for _, url := range newGalleryURLs {
			if err := tx.Create(&models.ProductImage{ProductID: product.ID, URL: url}).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to insert product image: %v", err)
				utils.InternalServerError(c, "Failed to update product images", err.Error())
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	if err := config.DB.Preload("Images").First(&product, product.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch updated product", err.Error())
		return
	}

	utils.LogInfo("Product %d updated successfully", product.ID)
	utils.Success(c, "Product updated successfully", gin.H{
		"product": product,
	})
}
