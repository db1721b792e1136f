package controllers

import (
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// AddressRequest represents the address create request body
type AddressRequest struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Type       string `json:"type"`
	IsDefault  bool   `json:"is_default"`
}

// AddAddress creates an address for the authenticated user, subject to the
// per-user cap
func AddAddress(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if req.Type == "" {
		req.Type = models.AddressTypeShipping
	}

	if errs := utils.ValidateAddressFields(req.FullName, req.Phone, req.Street, req.City, req.State, req.PostalCode, req.Country, req.Type); len(errs) > 0 {
		utils.LogError("Address creation failed - Validation errors for user %d", user.ID)
		utils.BadRequest(c, "Invalid address", errs)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Failed to count addresses", err.Error())
		return
	}
	if count >= int64(config.MaxAddressesPerUser()) {
		utils.LogError("Address creation failed - Cap reached for user %d", user.ID)
		utils.BadRequest(c, utils.ErrAddressLimit, nil)
		return
	}

	address := models.Address{
		UserID:     user.ID,
		FullName:   strings.TrimSpace(req.FullName),
		Phone:      strings.TrimSpace(req.Phone),
		Street:     strings.TrimSpace(req.Street),
		City:       strings.TrimSpace(req.City),
		State:      strings.TrimSpace(req.State),
		PostalCode: strings.TrimSpace(req.PostalCode),
		Country:    strings.TrimSpace(req.Country),
		Type:       req.Type,
		IsDefault:  req.IsDefault,
	}

	// First address becomes the default regardless of the flag
	if count == 0 {
		address.IsDefault = true
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", tx.Error.Error())
		return
	}

	if address.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.LogError("Address creation failed - Default reset error for user %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to save address", err.Error())
			return
		}
	}

	if err := tx.Create(&address).Error; err != nil {
		tx.Rollback()
		utils.LogError("Address creation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save address", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to save address", err.Error())
		return
	}

	utils.LogInfo("Address %d created for user %d", address.ID, user.ID)
	utils.Created(c, "Address added successfully", gin.H{
		"address": address,
	})
}

// UpdateAddressRequest represents the address update request body
type UpdateAddressRequest struct {
	AddressID  uint   `json:"address_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Type       string `json:"type"`
}

// UpdateAddress applies a partial update to one of the user's addresses
func UpdateAddress(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.AddressID == 0 {
		utils.BadRequest(c, "address_id is required", nil)
		return
	}

	// Scoped to the caller so one user can never reach another's address
	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", req.AddressID, user.ID).First(&address).Error; err != nil {
		utils.LogError("Address update failed - Address %d not found for user %d", req.AddressID, user.ID)
		utils.NotFound(c, "Address not found")
		return
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(req.FullName); v != "" {
		updates["full_name"] = v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		updates["phone"] = v
	}
	if v := strings.TrimSpace(req.Street); v != "" {
		updates["street"] = v
	}
	if v := strings.TrimSpace(req.City); v != "" {
		updates["city"] = v
	}
	if v := strings.TrimSpace(req.State); v != "" {
		updates["state"] = v
	}
	if v := strings.TrimSpace(req.PostalCode); v != "" {
		updates["postal_code"] = v
	}
	if v := strings.TrimSpace(req.Country); v != "" {
		updates["country"] = v
	}
	if v := strings.ToLower(strings.TrimSpace(req.Type)); v != "" {
		if v != models.AddressTypeShipping && v != models.AddressTypeBilling {
			utils.BadRequest(c, "Invalid address type", "type must be shipping or billing")
			return
		}
		updates["type"] = v
	}

	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&address).Updates(updates).Error; err != nil {
		utils.LogError("Address update failed for address %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to update address", err.Error())
		return
	}

	if err := config.DB.First(&address, address.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch updated address", err.Error())
		return
	}

	utils.LogInfo("Address %d updated for user %d", address.ID, user.ID)
	utils.Success(c, "Address updated successfully", gin.H{
		"address": address,
	})
}

// DeleteAddressRequest represents the address delete request body
type DeleteAddressRequest struct {
	AddressID uint `json:"address_id"`
}

// DeleteAddress removes one of the user's addresses
func DeleteAddress(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	var req DeleteAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.AddressID == 0 {
		utils.BadRequest(c, "address_id is required", nil)
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", req.AddressID, user.ID).First(&address).Error; err != nil {
		utils.LogError("Address delete failed - Address %d not found for user %d", req.AddressID, user.ID)
		utils.NotFound(c, "Address not found")
		return
	}

	if err := config.DB.Delete(&address).Error; err != nil {
		utils.LogError("Address delete failed for address %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to delete address", err.Error())
		return
	}

	utils.LogInfo("Address %d deleted for user %d", address.ID, user.ID)
	utils.Success(c, "Address deleted successfully", nil)
}

// GetAddresses lists the user's addresses, default first
func GetAddresses(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", user.ID).Order("is_default DESC, created_at DESC").Find(&addresses).Error; err != nil {
		utils.LogError("Failed to fetch addresses for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch addresses", err.Error())
		return
	}

	utils.Success(c, "Addresses fetched successfully", gin.H{
		"addresses": addresses,
	})
}
