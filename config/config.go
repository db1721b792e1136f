package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	JWTSecret           string
	RefreshTokenSecret  string
	Port                string
	Env                 string
	AssetBaseURL        string
	MaxAddressesPerUser int
	OwnerEmail          string
	OwnerPassword       string
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; the process environment is used as-is.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "fashionart"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		RefreshTokenSecret:  os.Getenv("REFRESH_TOKEN_SECRET"),
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		AssetBaseURL:        getEnv("ASSET_BASE_URL", "http://localhost:8080"),
		MaxAddressesPerUser: MaxAddressesPerUser(),
		OwnerEmail:          os.Getenv("OWNER_EMAIL"),
		OwnerPassword:       os.Getenv("OWNER_PASSWORD"),
	}

	return config, nil
}

// MaxAddressesPerUser returns the configured per-user address cap
func MaxAddressesPerUser() int {
	if v := os.Getenv("MAX_ADDRESSES_PER_USER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 5
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
