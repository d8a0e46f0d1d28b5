package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ConfigurationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ConfigurationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateExtensions checks that every entry looks like ".ext".
// Returns a ConfigurationError naming the first bad entry.
func ValidateExtensions(fieldName string, exts []string) error {
	for _, ext := range exts {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\ `) {
			return &ConfigurationError{
				Field:   fieldName,
				Message: fmt.Sprintf("invalid extension %q (expected a leading dot, e.g. \".pdf\")", ext),
			}
		}
	}
	return nil
}

// ValidateNonNegative checks that an integer field is zero or greater
func ValidateNonNegative(fieldName string, value int) error {
	if value < 0 {
		return &ConfigurationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be non-negative, got %d", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// formatFieldName converts config keys to space-separated words
// for more readable error messages (e.g., "retention_days" -> "retention days")
func formatFieldName(fieldName string) string {
	return strings.ReplaceAll(fieldName, "_", " ")
}
