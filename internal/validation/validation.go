package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	cityPattern    = regexp.MustCompile(`^[a-zA-Z\s.-]+$`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// ValidateSearchQuery normalizes and validates a product search query.
// Returns the cleaned query on success.
func ValidateSearchQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	query = whitespaceRun.ReplaceAllString(query, " ")

	if query == "" {
		return "", fmt.Errorf("search query must not be empty")
	}
	if len(query) > 100 {
		return "", fmt.Errorf("search query must be at most 100 characters")
	}

	return query, nil
}

// ValidatePincode validates an Indian postal code (6 digits, no leading zero)
func ValidatePincode(pincode string) error {
	if !pincodePattern.MatchString(pincode) {
		return fmt.Errorf("pincode must be a 6-digit Indian postal code")
	}
	return nil
}

// ValidateCity validates a city name for history lookups
func ValidateCity(city string) error {
	if len(city) < 2 || len(city) > 50 {
		return fmt.Errorf("city must be between 2 and 50 characters")
	}
	if !cityPattern.MatchString(city) {
		return fmt.Errorf("city contains invalid characters")
	}
	return nil
}

// ValidateCoordinates validates a latitude/longitude pair
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
