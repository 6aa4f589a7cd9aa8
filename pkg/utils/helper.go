package utils

import (
	"fmt"
	"strconv"
	"time"
)

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

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// ValidTimeOfDay reports whether value parses as HH:MM.
func ValidTimeOfDay(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// FormatAmount renders a monetary amount with a currency prefix and two
// decimal places, e.g. "RM 150.00".
func FormatAmount(prefix string, amount float64) string {
	return fmt.Sprintf("%s %.2f", prefix, amount)
}
