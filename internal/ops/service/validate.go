package service

import (
	"regexp"
	"strings"
)

var (
	// Indian mobile numbers: optional +91/91 prefix, first digit 6-9.
	phoneRe = regexp.MustCompile(`^(\+91|91)?[6-9]\d{9}$`)
	// Characters stripped from phone input before matching.
	phoneJunkRe = regexp.MustCompile(`[\s\-()]`)
	pinRe       = regexp.MustCompile(`^\d{6}$`)
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	skuRe       = regexp.MustCompile(`^PROD\d{5}$`)
	personRe    = regexp.MustCompile(`^[a-zA-Z\s.&-]+$`)
	placeRe     = regexp.MustCompile(`^[a-zA-Z\s.-]+$`)
	catNameRe   = regexp.MustCompile(`^[a-zA-Z0-9\s.&-]+$`)
	userPhoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// NormalizePhone strips spaces, dashes and parentheses from the raw input.
// Validation and storage both use the normalized form.
func NormalizePhone(raw string) string {
	return phoneJunkRe.ReplaceAllString(strings.TrimSpace(raw), "")
}

func ValidatePhone(raw string) (string, error) {
	phone := NormalizePhone(raw)
	if !phoneRe.MatchString(phone) {
		return "", invalidf("invalid phone number: must be a valid Indian mobile number")
	}
	return phone, nil
}

func ValidateEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return invalidf("invalid email address")
	}
	return nil
}

func ValidatePinCode(pin string) error {
	if !pinRe.MatchString(strings.TrimSpace(pin)) {
		return invalidf("invalid PIN code: must be 6 digits")
	}
	return nil
}

func ValidateProductCode(code string) error {
	if !skuRe.MatchString(code) {
		return invalidf("invalid product code: must match PROD followed by 5 digits")
	}
	return nil
}

// ValidateContactPerson checks name length and allowed characters.
func ValidateContactPerson(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return invalidf("contact person must be 2 to 100 characters")
	}
	if !personRe.MatchString(name) {
		return invalidf("contact person contains invalid characters")
	}
	return nil
}

// ValidatePlace checks a city or state value.
func ValidatePlace(field, value string) error {
	value = strings.TrimSpace(value)
	if len(value) < 2 {
		return invalidf("%s must be at least 2 characters", field)
	}
	if !placeRe.MatchString(value) {
		return invalidf("%s contains invalid characters", field)
	}
	return nil
}

func ValidateAddress(address string) error {
	if len(strings.TrimSpace(address)) < 10 {
		return invalidf("address must be at least 10 characters")
	}
	return nil
}

// ValidateCategoryName checks a product category name.
func ValidateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return invalidf("category name must be 2 to 100 characters")
	}
	if !catNameRe.MatchString(name) {
		return invalidf("category name contains invalid characters")
	}
	return nil
}

// ValidateUserPhone checks a staff phone: 10 digits starting 6-9, no prefix.
func ValidateUserPhone(phone string) error {
	if !userPhoneRe.MatchString(strings.TrimSpace(phone)) {
		return invalidf("phone must be 10 digits starting with 6-9")
	}
	return nil
}

// ValidateOfferPrice enforces offer < price when an offer is set.
func ValidateOfferPrice(price float64, offer *float64) error {
	if offer == nil {
		return nil
	}
	if *offer <= 0 {
		return invalidf("offer price must be positive")
	}
	if *offer >= price {
		return invalidf("offer price must be less than regular price")
	}
	return nil
}

// ValidateTrendingPosition enforces position in [1,100] for trending products.
func ValidateTrendingPosition(isTrending bool, position *int) error {
	if !isTrending || position == nil {
		return nil
	}
	if *position < 1 || *position > 100 {
		return invalidf("trending position must be between 1 and 100")
	}
	return nil
}
