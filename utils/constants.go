package utils

// Application constants
const (
	// Application name
	AppName = "fashionArt"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Maximum gallery images per product
	MaxGalleryImages = 5

	// Default low-stock threshold
	DefaultLowStockThreshold = 10

	// Cookie names for the token pair
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid user credentials"
	ErrUserNotFound       = "User does not exist"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized request"
	ErrPageNotFound       = "Page not found"
	ErrAddressLimit       = "Address limit reached"
	ErrInternalServer     = "Internal server error"
)
