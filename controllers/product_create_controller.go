package controllers

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// uploadProductImages validates and stores the given files, returning their
// public URLs. An empty URL from the upload helper is treated as a validation
// failure.
func uploadProductImages(files []*multipart.FileHeader) ([]string, string) {
	var urls []string
	for _, file := range files {
		url, err := utils.UploadImage(file)
		if err != nil {
			if appErr := utils.GetAppError(err); appErr != nil {
				return nil, appErr.Message
			}
			return nil, err.Error()
		}
		if url == "" {
			return nil, "Image upload failed for " + file.Filename
		}
		urls = append(urls, url)
	}
	return urls, ""
}

// AddProduct handles product creation from a multipart form
func AddProduct(c *gin.Context) {
	utils.LogInfo("AddProduct called")

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	category := utils.Title(strings.TrimSpace(c.PostForm("category")))
	description := strings.TrimSpace(c.PostForm("description"))
	priceStr := strings.TrimSpace(c.PostForm("price"))
	stockStr := strings.TrimSpace(c.PostForm("stock"))

	if title == "" || category == "" || description == "" {
		utils.LogError("Product creation failed - Missing required fields")
		utils.BadRequest(c, "Title, category and description are required", nil)
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid price", "price must be a number")
		return
	}
	if valid, msg := utils.ValidatePrice(price); !valid {
		utils.BadRequest(c, "Invalid price", msg)
		return
	}

	stock, err := strconv.Atoi(stockStr)
	if err != nil {
		utils.BadRequest(c, "Invalid stock", "stock must be an integer")
		return
	}
	if valid, msg := utils.ValidateStock(stock); !valid {
		utils.BadRequest(c, "Invalid stock", msg)
		return
	}

	// Case-folded uniqueness on (title, category)
	var existing models.Product
	if err := config.DB.Where("LOWER(title) = ? AND LOWER(category) = ?",
		strings.ToLower(title), strings.ToLower(category)).First(&existing).Error; err == nil {
		utils.LogError("Product creation failed - Duplicate: %s / %s", title, category)
		utils.Conflict(c, "A product with this title already exists in this category", gin.H{
			"title":    title,
			"category": category,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequest(c, "Invalid multipart form", err.Error())
		return
	}

	coverFiles := form.File["cover_image"]
	if len(coverFiles) == 0 {
		utils.LogError("Product creation failed - No cover image")
		utils.BadRequest(c, "Cover image is required", nil)
		return
	}
	galleryFiles := form.File["images"]
	if len(galleryFiles) == 0 {
		utils.LogError("Product creation failed - No gallery images")
		utils.BadRequest(c, "At least one gallery image is required", nil)
		return
	}
	if len(galleryFiles) > utils.MaxGalleryImages {
		utils.LogError("Product creation failed - %d gallery images exceeds the cap", len(galleryFiles))
		utils.BadRequest(c, "Too many gallery images",
			fmt.Sprintf("at most %d gallery images are allowed", utils.MaxGalleryImages))
		return
	}

	coverURLs, uploadErr := uploadProductImages(coverFiles[:1])
	if uploadErr != "" {
		utils.LogError("Product creation failed - Cover upload: %s", uploadErr)
		utils.BadRequest(c, "Failed to upload cover image", uploadErr)
		return
	}
	galleryURLs, uploadErr := uploadProductImages(galleryFiles)
	if uploadErr != "" {
		utils.LogError("Product creation failed - Gallery upload: %s", uploadErr)
		utils.BadRequest(c, "Failed to upload gallery images", uploadErr)
		return
	}
	utils.LogDebug("Uploaded %d gallery images", len(galleryURLs))

	product := models.Product{
		OwnerID:     actor.ID,
		Title:       title,
		Category:    category,
		Description: description,
		Price:       price,
		Stock:       stock,
		CoverImage:  coverURLs[0],
		IsActive:    true,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to create product", tx.Error.Error())
		return
	}

	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create product: %v", err)
		errText := strings.ToLower(err.Error())
		if strings.Contains(errText, "unique") || strings.Contains(errText, "duplicate") {
			utils.Conflict(c, "A product with this title already exists in this category", nil)
			return
		}
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	for _, url := range galleryURLs {
		if err := tx.Create(&models.ProductImage{ProductID: product.ID, URL: url}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to insert product image: %v", err)
			utils.InternalServerError(c, "Failed to create product images", err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	if err := config.DB.Preload("Images").First(&product, product.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch created product", err.Error())
		return
	}

	utils.LogInfo("Product created successfully: %s by user %d", product.Title, actor.ID)
	utils.Created(c, "Product created successfully", gin.H{
		"product": product,
	})
}
