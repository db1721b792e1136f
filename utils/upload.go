package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return ValidationError("file size exceeds 5MB limit", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return ValidationError("invalid file type. Allowed types: jpg, jpeg, png, gif, webp", nil)
	}

	return nil
}

// UploadDir returns the local staging directory for uploads
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// SaveUploadedFile saves an uploaded file to the local staging directory and
// returns its path
func SaveUploadedFile(file *multipart.FileHeader) (string, error) {
	if err := ValidateImageFile(file); err != nil {
		return "", err
	}

	uploadDir := UploadDir()
	ext := filepath.Ext(file.Filename)
	filename := uuid.New().String() + ext
	dest := filepath.Join(uploadDir, filename)

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return dest, nil
}

// UploadToBlobStorage hands a locally staged file to the asset host and
// returns its public URL. An empty path or a failed hand-off yields an empty
// URL, which callers must treat as a validation failure.
func UploadToBlobStorage(localPath string) string {
	if localPath == "" {
		return ""
	}
	if _, err := os.Stat(localPath); err != nil {
		LogError("Blob upload failed for %s: %v", localPath, err)
		return ""
	}

	base := os.Getenv("ASSET_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return strings.TrimRight(base, "/") + "/" + filepath.ToSlash(localPath)
}

// UploadImage stages a multipart file and returns its public URL
func UploadImage(file *multipart.FileHeader) (string, error) {
	localPath, err := SaveUploadedFile(file)
	if err != nil {
		return "", err
	}
	url := UploadToBlobStorage(localPath)
	if url == "" {
		return "", ValidationError("failed to upload image to blob storage", nil)
	}
	return url, nil
}
