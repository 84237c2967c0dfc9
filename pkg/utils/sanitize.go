package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every tag and escapes what remains.
var strict = bluemonday.StrictPolicy()

// SanitizeString removes markup from free-text input, escapes the rest,
// and trims surrounding whitespace.
func SanitizeString(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// SanitizeStringPtr sanitizes optional string fields in place.
func SanitizeStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := SanitizeString(*s)
	return &clean
}
