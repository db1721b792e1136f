package controllers

import (
	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// SetDefaultAddressRequest represents the set-default request body
type SetDefaultAddressRequest struct {
	AddressID uint `json:"address_id"`
}

// SetDefaultAddress marks one address as the user's default. All other
// defaults are cleared first inside the same transaction, so at most one
// address per user is ever flagged.
func SetDefaultAddress(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	var req SetDefaultAddressRequest
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
		utils.LogError("Set default failed - Address %d not found for user %d", req.AddressID, user.ID)
		utils.NotFound(c, "Address not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", tx.Error.Error())
		return
	}

	if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
		tx.Rollback()
		utils.LogError("Set default failed - Reset error for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to set default address", err.Error())
		return
	}

	if err := tx.Model(&models.Address{}).Where("id = ?", address.ID).Update("is_default", true).Error; err != nil {
		tx.Rollback()
		utils.LogError("Set default failed - Set error for address %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to set default address", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.InternalServerError(c, "Failed to set default address", err.Error())
		return
	}

	address.IsDefault = true

	utils.LogInfo("Address %d set as default for user %d", address.ID, user.ID)
	utils.Success(c, "Default address set successfully", gin.H{
		"address": address,
	})
}
