package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	numericRegex  = regexp.MustCompile(`^[0-9]+$`)

	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername checks the case-folded username against format rules
func ValidateUsername(username string) (bool, string) {
	username = strings.ToLower(strings.TrimSpace(username))
	if len(username) < 3 {
		return false, "Username must be at least 3 characters long"
	}
	if len(username) > 20 {
		return false, "Username must not exceed 20 characters"
	}
	if !usernameRegex.MatchString(username) {
		return false, "Username can only contain letters, numbers, and underscores"
	}
	return true, ""
}

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidatePhone checks if the phone number is valid. Phone is optional.
func ValidatePhone(phone string) (bool, string) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true, ""
	}
	if !phoneRegex.MatchString(phone) {
		return false, "Invalid phone number format"
	}
	return true, ""
}

// ValidateFullName checks if the name is valid
func ValidateFullName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return false, "Full name must be at least 2 characters long"
	}
	if matched, _ := regexp.MatchString(`[0-9!@#$%^&*(),?":{}|<>]`, name); matched {
		return false, "Full name cannot contain numbers or special characters"
	}
	return true, ""
}

// IsNumericOnly reports whether the input consists solely of digits
func IsNumericOnly(s string) bool {
	return numericRegex.MatchString(strings.TrimSpace(s))
}

// ValidatePrice validates a product price
func ValidatePrice(price float64) (bool, string) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return false, "Price must be a valid number"
	}
	if price < 0 {
		return false, "Price must be a non-negative number"
	}
	return true, ""
}

// ValidateStock validates a stock quantity
func ValidateStock(stock int) (bool, string) {
	if stock < 0 {
		return false, "Stock cannot be negative"
	}
	return true, ""
}
