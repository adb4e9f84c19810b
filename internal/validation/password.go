package validation

import (
	"errors"
	"regexp"
)

var specialChars = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

// HasSpecialChar checks if a string contains at least one special character.
func HasSpecialChar(s string) bool {
	return specialChars.MatchString(s)
}

// Password checks the password rules applied at registration and on
// password change.
func Password(s string) error {
	if len(s) < MinPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	if len(s) > MaxPasswordLength {
		return errors.New("password is too long")
	}
	if !HasSpecialChar(s) {
		return errors.New("password must contain a special character")
	}
	return nil
}
