package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "taskText" -> "task text")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "sourcePath" -> "source path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"sourcePath":    "source path",
		"taskText":      "task text",
		"sectionHeader": "section header",
		"line":          "line",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateLine checks that a 0-based line index lies within a document of lineCount lines
func ValidateLine(line, lineCount int) error {
	if line < 0 || line >= lineCount {
		return &ValidationError{
			Field:   "line",
			Message: fmt.Sprintf("line %d is out of range (document has %d lines)", line+1, lineCount),
		}
	}
	return nil
}

// ValidateSectionHeader rejects headers that could never match a single line
func ValidateSectionHeader(header string) error {
	if strings.ContainsAny(header, "\r\n") {
		return &ValidationError{
			Field:   "sectionHeader",
			Message: fmt.Sprintf("%s must be a single line", formatFieldName("sectionHeader")),
		}
	}
	return nil
}
