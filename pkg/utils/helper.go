package utils

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// IsValidDate reports whether value is a well-formed YYYY-MM-DD date.
func IsValidDate(value string) bool {
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
