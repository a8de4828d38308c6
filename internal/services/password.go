package services

import (
	"strings"
	"unicode"
)

const passwordSpecialChars = "!@#$%^&"

// ValidatePassword checks a candidate password against the registration
// policy. Rules are applied in a fixed order and the first violation
// wins: minimum length 8, maximum length 72 (the bcrypt input limit),
// no leading or trailing space, then one of each character class.
// Returns nil when the password is acceptable.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &PasswordPolicyError{msg: "Password must be at least eight characters"}
	}
	if len(password) > 72 {
		return &PasswordPolicyError{msg: "Password must be no more than 72 characters"}
	}
	if strings.HasPrefix(password, " ") || strings.HasSuffix(password, " ") {
		return &PasswordPolicyError{msg: "Password must not start or end with empty spaces"}
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return &PasswordPolicyError{msg: "Password must contain 1 of each: uppercase, lowercase, numerical, and special character"}
	}
	return nil
}
