package controllers

import (
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// AssignRoleRequest represents the role assignment request body
type AssignRoleRequest struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// AssignUserRole sets a user's role. Only the owner reaches this handler; the
// single-owner invariant is enforced by refusing to mint a second owner.
func AssignUserRole(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	if actor.Role != models.RoleOwner {
		utils.NotFound(c, utils.ErrPageNotFound)
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !models.ValidRoles[role] {
		utils.LogError("Role assignment failed - Unknown role: %s", req.Role)
		utils.BadRequest(c, "Unknown role", "role must be one of user, admin, owner")
		return
	}

	if req.UserID == actor.ID {
		utils.LogError("Role assignment failed - Owner %d targeted themself", actor.ID)
		utils.BadRequest(c, "You cannot change your own role; use ownership transfer instead", nil)
		return
	}

	if role == models.RoleOwner {
		var ownerCount int64
		if err := config.DB.Model(&models.User{}).Where("role = ?", models.RoleOwner).Count(&ownerCount).Error; err != nil {
			utils.InternalServerError(c, "Failed to verify owner count", err.Error())
			return
		}
		if ownerCount > 0 {
			utils.LogError("Role assignment failed - Owner already exists")
			utils.Conflict(c, "An owner already exists; use ownership transfer instead", nil)
			return
		}
	}

	var target models.User
	if err := config.DB.First(&target, req.UserID).Error; err != nil {
		utils.NotFound(c, utils.ErrUserNotFound)
		return
	}

	if err := config.DB.Model(&target).Update("role", role).Error; err != nil {
		utils.LogError("Role assignment failed for user %d: %v", target.ID, err)
		utils.InternalServerError(c, "Failed to assign role", err.Error())
		return
	}
	target.Role = role

	utils.LogInfo("Role %s assigned to user %d by owner %d", role, target.ID, actor.ID)
	utils.Success(c, "Role assigned successfully", gin.H{
		"user": userResponse(&target),
	})
}

// TransferOwnershipRequest represents the ownership transfer request body
type TransferOwnershipRequest struct {
	NewOwnerID uint `json:"new_owner_id"`
}

// TransferOwnership demotes the current owner to admin and promotes the
// target to owner. Both writes happen in one transaction so no reader can
// observe zero or two owners.
func TransferOwnership(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	if actor.Role != models.RoleOwner {
		utils.NotFound(c, utils.ErrPageNotFound)
		return
	}

	var req TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.NewOwnerID == 0 {
		utils.BadRequest(c, "new_owner_id is required", nil)
		return
	}
	if req.NewOwnerID == actor.ID {
		utils.LogError("Ownership transfer failed - Owner %d targeted themself", actor.ID)
		utils.BadRequest(c, "You already are the owner", nil)
		return
	}

	var newOwner models.User
	if err := config.DB.First(&newOwner, req.NewOwnerID).Error; err != nil {
		utils.LogError("Ownership transfer failed - Target %d not found", req.NewOwnerID)
		utils.NotFound(c, utils.ErrUserNotFound)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start ownership transfer transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", tx.Error.Error())
		return
	}

	if err := tx.Model(&models.User{}).Where("id = ?", actor.ID).Update("role", models.RoleAdmin).Error; err != nil {
		tx.Rollback()
		utils.LogError("Ownership transfer failed - Demotion error: %v", err)
		utils.InternalServerError(c, "Failed to transfer ownership", err.Error())
		return
	}

	if err := tx.Model(&models.User{}).Where("id = ?", newOwner.ID).Update("role", models.RoleOwner).Error; err != nil {
		tx.Rollback()
		utils.LogError("Ownership transfer failed - Promotion error: %v", err)
		utils.InternalServerError(c, "Failed to transfer ownership", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Ownership transfer failed - Commit error: %v", err)
		utils.InternalServerError(c, "Failed to commit ownership transfer", err.Error())
		return
	}

	newOwner.Role = models.RoleOwner

	utils.LogInfo("Ownership transferred from user %d to user %d", actor.ID, newOwner.ID)
	utils.Success(c, "Ownership transferred successfully", gin.H{
		"new_owner": userResponse(&newOwner),
	})
}

// EnsureOwnerExists promotes or creates the configured owner account when no
// owner is present. Called once at startup.
func EnsureOwnerExists() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.OwnerEmail == "" {
		return nil
	}

	var ownerCount int64
	if err := config.DB.Model(&models.User{}).Where("role = ?", models.RoleOwner).Count(&ownerCount).Error; err != nil {
		return utils.WrapError(err, "failed to count owners")
	}
	if ownerCount > 0 {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.OwnerEmail))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err == nil {
		utils.LogInfo("Promoting existing user %d to owner", user.ID)
		return config.DB.Model(&user).Update("role", models.RoleOwner).Error
	}

	if cfg.OwnerPassword == "" {
		utils.LogError("OWNER_EMAIL set but no matching user and OWNER_PASSWORD empty; skipping owner bootstrap")
		return nil
	}

	hashedPassword, err := utils.HashPassword(cfg.OwnerPassword)
	if err != nil {
		return utils.WrapError(err, "failed to hash owner password")
	}

	owner := models.User{
		FullName: "Store Owner",
		Username: strings.Split(email, "@")[0],
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleOwner,
	}
	if err := config.DB.Create(&owner).Error; err != nil {
		return utils.WrapError(err, "failed to create owner account")
	}

	utils.LogInfo("Owner account created: %s", email)
	return nil
}
