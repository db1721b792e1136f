package routes

import (
	"github.com/Sheras-art/fashionArt/controllers"
	"github.com/Sheras-art/fashionArt/middleware"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/gin-gonic/gin"
)

// initUserRoutes registers identity, session, role and address routes
func initUserRoutes(router *gin.Engine) {
	users := router.Group("/users")
	{
		users.POST("/register", controllers.RegisterUser)
		users.POST("/login", controllers.LoginUser)
		users.POST("/refresh-token", controllers.RefreshAccessToken)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/logout", controllers.LogoutUser)
			authed.POST("/current-user", controllers.GetCurrentUser)
			authed.POST("/change-password", controllers.ChangeUserPassword)
			authed.POST("/edit-user-details", controllers.EditUserDetails)
			authed.DELETE("/delete/:id", controllers.DeleteUser)

			// Address book
			authed.POST("/add-user-address", controllers.AddAddress)
			authed.POST("/set-default-user-address", controllers.SetDefaultAddress)
			authed.POST("/update-user-address", controllers.UpdateAddress)
			authed.POST("/delete-user-address", controllers.DeleteAddress)
			authed.POST("/user-addresses", controllers.GetAddresses)

			staff := authed.Group("")
			staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleOwner))
			{
				staff.GET("/get-user-by-email", controllers.GetUserByEmail)
			}

			owner := authed.Group("")
			owner.Use(middleware.RequireRoles(models.RoleOwner))
			{
				owner.POST("/assign-user-role", controllers.AssignUserRole)
				owner.POST("/transfer-ownership", controllers.TransferOwnership)
			}
		}
	}
}
