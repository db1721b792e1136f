package main

import (
	"log"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/controllers"
	"github.com/Sheras-art/fashionArt/routes"
	"github.com/Sheras-art/fashionArt/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Bootstrap the owner account when none exists
	if err := controllers.EnsureOwnerExists(); err != nil {
		utils.LogError("Failed to bootstrap owner account: %v", err)
		log.Fatal("Failed to bootstrap owner account:", err)
	}

	// Initialize Google OAuth
	config.InitGoogleOAuth()

	// Set up router with middleware and routes
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
