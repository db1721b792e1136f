package utils

import (
	"strings"

	"github.com/Sheras-art/fashionArt/models"
)

var validAddressTypes = map[string]bool{
	models.AddressTypeShipping: true,
	models.AddressTypeBilling:  true,
}

// ValidateAddressFields validates address fields according to business rules
func ValidateAddressFields(fullName, phone, street, city, state, postalCode, country, addrType string) []FieldValidationError {
	errs := []FieldValidationError{}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		errs = append(errs, FieldValidationError{"full_name", "Full name is required"})
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		errs = append(errs, FieldValidationError{"phone", "Phone number is required"})
	} else if ok, msg := ValidatePhone(phone); !ok {
		errs = append(errs, FieldValidationError{"phone", msg})
	}

	street = strings.TrimSpace(street)
	if street == "" {
		errs = append(errs, FieldValidationError{"street", "Street is required"})
	} else if len(street) > 150 {
		errs = append(errs, FieldValidationError{"street", "Street must not exceed 150 characters"})
	}

	city = strings.TrimSpace(city)
	if city == "" {
		errs = append(errs, FieldValidationError{"city", "City is required"})
	} else if len(city) > 100 {
		errs = append(errs, FieldValidationError{"city", "City must not exceed 100 characters"})
	}

	state = strings.TrimSpace(state)
	if state == "" {
		errs = append(errs, FieldValidationError{"state", "State is required"})
	} else if len(state) > 100 {
		errs = append(errs, FieldValidationError{"state", "State must not exceed 100 characters"})
	}

	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		errs = append(errs, FieldValidationError{"postal_code", "Postal code is required"})
	} else if len(postalCode) > 20 {
		errs = append(errs, FieldValidationError{"postal_code", "Postal code must not exceed 20 characters"})
	}

	country = strings.TrimSpace(country)
	if country == "" {
		errs = append(errs, FieldValidationError{"country", "Country is required"})
	} else if len(country) > 100 {
		errs = append(errs, FieldValidationError{"country", "Country must not exceed 100 characters"})
	}

	if addrType != "" && !validAddressTypes[addrType] {
		errs = append(errs, FieldValidationError{"type", "Type must be either shipping or billing"})
	}

	return errs
}
