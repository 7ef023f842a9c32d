package utils

import "strings"

// NormalizeEmail trims and lowercases an email before lookups and writes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsSpecialNumber checks the organization identifier format: exactly 6 digits.
func IsSpecialNumber(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
