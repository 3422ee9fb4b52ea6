package account

import (
	"regexp"
	"strings"
)

// Validation limits.
const (
	MaxEmailLength    = 254
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail trims and lowercases. Applied on write and on read so
// lookups never compare raw input.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
