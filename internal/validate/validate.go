package validate

import (
	"regexp"
	"strings"

	"tekbir/internal/domain"
)

var (
	rePhoneChars = regexp.MustCompile(`^[\d+]+$`)
	reDigits     = regexp.MustCompile(`\D`)
)

// Phone normalizes a Russian phone number to canonical 8XXXXXXXXXX form.
// Only digits and '+' may appear in the input; after stripping the '+' there
// must be exactly 11 digits starting with 7 or 8. Anything else is rejected.
func Phone(s string) (string, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" || !rePhoneChars.MatchString(raw) {
		return "", false
	}
	digits := reDigits.ReplaceAllString(raw, "")
	if len(digits) != 11 {
		return "", false
	}
	if digits[0] != '7' && digits[0] != '8' {
		return "", false
	}
	return "8" + digits[1:], true
}

// ID validates a product identifier. Sheet ids are free-form, so only
// presence and a length cap are enforced.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 64
}

// Delta clamps a signed quantity change to a sane window.
func Delta(n int) int {
	if n > 50 {
		return 50
	}
	if n < -50 {
		return -50
	}
	return n
}

// Condition validates a listing condition filter.
func Condition(s string) (string, bool) {
	switch s {
	case domain.ConditionNew, domain.ConditionUsed:
		return s, true
	}
	return "", false
}

// Category validates a category filter against the closed set.
func Category(s string) (string, bool) {
	switch s {
	case domain.CategoryIPhone, domain.CategoryXiaomi, domain.CategorySamsung,
		domain.CategoryAirPods, domain.CategoryWatch, domain.CategoryIPad,
		domain.CategoryMacBook, domain.CategoryOther:
		return s, true
	}
	return "", false
}

// Form checks the enum fields of a checkout draft, leaving free text alone.
func Form(f domain.CheckoutForm) bool {
	switch f.ContactMethod {
	case domain.ContactWhatsApp, domain.ContactTelegram, domain.ContactCall:
	default:
		return false
	}
	switch f.DeliveryMethod {
	case domain.DeliveryCourier, domain.DeliveryStore:
	default:
		return false
	}
	switch f.DeliveryType {
	case domain.DeliveryZoneMoscow, domain.DeliveryZoneOther:
	default:
		return false
	}
	return true
}

// Search trims and caps a search query; it is matched case-insensitively
// against product names downstream.
func Search(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
