// Package sharedvo holds value objects used by more than one aggregate.
package sharedvo

import (
	"fmt"
	"net/mail"
	"strings"
)

// NormalizeEmail lowercases and trims an address and rejects malformed ones.
func NormalizeEmail(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return "", fmt.Errorf("email cannot exceed 255 characters")
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return "", fmt.Errorf("invalid email format: %s", value)
	}
	return normalized, nil
}
