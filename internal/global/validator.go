package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the process-wide validator instance, initialised once at
// startup via InitValidator.
var Validate *validator.Validate

// InitValidator creates the validator and registers custom rules used by the
// DTOs.
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("uhrzeit", validateUhrzeit)
}

// validateNoXSS rejects values containing obvious script injection markers.
// Order and supplier names end up rendered in the admin pages.
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"<iframe",
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateUhrzeit accepts HH:MM clock values (leading zero optional).
func validateUhrzeit(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is handled by required tags
	}
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return false
	}
	h, m := parts[0], parts[1]
	if len(h) < 1 || len(h) > 2 || len(m) != 2 {
		return false
	}
	for _, r := range h + m {
		if r < '0' || r > '9' {
			return false
		}
	}
	hour := int(h[0]-'0')
	if len(h) == 2 {
		hour = hour*10 + int(h[1]-'0')
	}
	minute := int(m[0]-'0')*10 + int(m[1]-'0')
	return hour <= 23 && minute <= 59
}
