package utils

import "strings"

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeString(value string) string {
	return strings.TrimSpace(value)
}
