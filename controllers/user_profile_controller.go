package controllers

import (
	"strconv"
	"strings"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
	"github.com/gin-gonic/gin"
)

// ChangePasswordRequest represents the change password request body
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangeUserPassword rehashes and persists a new password
func ChangeUserPassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if !utils.CheckPassword(req.OldPassword, user.Password) {
		utils.LogError("Password change failed - Wrong old password for user %d", user.ID)
		utils.Unauthorized(c, "Old password is incorrect")
		return
	}

	if req.NewPassword == req.OldPassword {
		utils.BadRequest(c, "New password must be different from the old password", nil)
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Password change failed - Hashing error for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to process password", err.Error())
		return
	}

	if err := config.DB.Model(&user).Update("password", hashedPassword).Error; err != nil {
		utils.LogError("Password change failed - Persist error for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update password", err.Error())
		return
	}

	if err := utils.SendPasswordChangedEmail(user.Email); err != nil {
		utils.LogDebug("Password-changed email not sent to %s: %v", user.Email, err)
	}

	utils.LogInfo("Password changed for user %d", user.ID)
	utils.Success(c, "Password changed successfully", nil)
}

// EditUserDetailsRequest represents the partial identity update body
type EditUserDetailsRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// EditUserDetails applies a partial update to the authenticated identity
func EditUserDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	var req EditUserDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	updates := map[string]interface{}{}

	if fullName := strings.TrimSpace(req.FullName); fullName != "" {
		if valid, msg := utils.ValidateFullName(fullName); !valid {
			utils.BadRequest(c, "Invalid full name", msg)
			return
		}
		updates["full_name"] = fullName
	}

	if username := strings.ToLower(strings.TrimSpace(req.Username)); username != "" && username != user.Username {
		if valid, msg := utils.ValidateUsername(username); !valid {
			utils.BadRequest(c, "Invalid username", msg)
			return
		}
		var other models.User
		if err := config.DB.Where("username = ? AND id <> ?", username, user.ID).First(&other).Error; err == nil {
			utils.LogError("Detail edit failed - Username taken: %s", username)
			utils.Conflict(c, "Username already in use", nil)
			return
		}
		updates["username"] = username
	}

	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != user.Email {
		if valid, msg := utils.ValidateEmail(email); !valid {
			utils.BadRequest(c, "Invalid email", msg)
			return
		}
		var other models.User
		if err := config.DB.Where("email = ? AND id <> ?", email, user.ID).First(&other).Error; err == nil {
			utils.LogError("Detail edit failed - Email taken: %s", email)
			utils.Conflict(c, "Email already in use", nil)
			return
		}
		updates["email"] = email
	}

	if phone := strings.TrimSpace(req.Phone); phone != "" {
		if valid, msg := utils.ValidatePhone(phone); !valid {
			utils.BadRequest(c, "Invalid phone", msg)
			return
		}
		updates["phone"] = phone
	}

	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Detail edit failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user details", err.Error())
		return
	}

	if err := config.DB.First(&user, user.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch updated user", err.Error())
		return
	}

	utils.LogInfo("User details updated for user %d", user.ID)
	utils.Success(c, "User details updated successfully", gin.H{
		"user": userResponse(&user),
	})
}

// GetUserByEmail returns a user's public profile by email (staff only route)
func GetUserByEmail(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		utils.BadRequest(c, "Email query parameter is required", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.NotFound(c, utils.ErrUserNotFound)
		return
	}

	utils.Success(c, "User fetched successfully", gin.H{
		"user": userResponse(&user),
	})
}

// DeleteUser removes an account. Users may delete themselves; the owner may
// delete anyone but themselves (ownership must be transferred first).
func DeleteUser(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user id", nil)
		return
	}

	if uint(targetID) != actor.ID && actor.Role != models.RoleOwner {
		utils.NotFound(c, utils.ErrPageNotFound)
		return
	}

	var target models.User
	if err := config.DB.First(&target, uint(targetID)).Error; err != nil {
		utils.NotFound(c, utils.ErrUserNotFound)
		return
	}

	if target.Role == models.RoleOwner && actor.ID != target.ID {
		utils.BadRequest(c, "Ownership must be transferred before deleting the owner", nil)
		return
	}
	if target.Role == models.RoleOwner && actor.ID == target.ID {
		utils.BadRequest(c, "Transfer ownership before deleting your account", nil)
		return
	}

	if err := config.DB.Where("user_id = ?", target.ID).Delete(&models.Address{}).Error; err != nil {
		utils.LogError("Failed to delete addresses for user %d: %v", target.ID, err)
		utils.InternalServerError(c, "Failed to delete user", err.Error())
		return
	}
	// Hard delete; a soft-deleted row would keep holding the unique email and
	// username and block re-registration forever
	if err := config.DB.Unscoped().Delete(&target).Error; err != nil {
		utils.LogError("Failed to delete user %d: %v", target.ID, err)
		utils.InternalServerError(c, "Failed to delete user", err.Error())
		return
	}

	utils.LogInfo("User %d deleted by %d", target.ID, actor.ID)
	utils.Success(c, "User deleted successfully", nil)
}
