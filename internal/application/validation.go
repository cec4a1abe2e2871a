package application

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxLabelNameLength bounds a single tag or folder name, in runes
const MaxLabelNameLength = 255

var (
	labelNamePattern = regexp.MustCompile(`^[^/]+$`)
	// A leading "#" is the display prefix and is stripped from references
	labelLeadPattern = regexp.MustCompile(`^[^#]`)
	colorHexPattern  = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateLabelName checks a single path segment: required, bounded length
// free of the path separator and not starting with "#"
func ValidateLabelName(fieldName, name string) error {
	err := validation.Validate(strings.TrimSpace(name),
		validation.Required.Error(fmt.Sprintf("%s is required", formatFieldName(fieldName))),
		validation.RuneLength(1, MaxLabelNameLength).Error(fmt.Sprintf("%s must be at most %d characters", formatFieldName(fieldName), MaxLabelNameLength)),
		validation.Match(labelNamePattern).Error(fmt.Sprintf("%s cannot contain slashes", formatFieldName(fieldName))),
		validation.Match(labelLeadPattern).Error(fmt.Sprintf("%s cannot start with #", formatFieldName(fieldName))),
	)
	if err != nil {
		return &ValidationError{Field: fieldName, Message: err.Error()}
	}
	return nil
}

// ValidateLabelPath checks every segment of a "/"-separated label path
func ValidateLabelPath(fieldName, path string) error {
	if err := ValidateRequired(fieldName, strings.Trim(path, "/ ")); err != nil {
		return err
	}
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		if err := ValidateLabelName(fieldName, segment); err != nil {
			return err
		}
	}
	return nil
}

// ValidateColorHex checks the shape of an optional color such as "#FF8800"
// or "ff8800cc". The value is stored as given.
func ValidateColorHex(fieldName, color string) error {
	err := validation.Validate(color,
		validation.Match(colorHexPattern).Error("must look like #RRGGBB or #RRGGBBAA"),
	)
	if err != nil {
		return &ValidationError{Field: fieldName, Message: err.Error()}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "parentRef" -> "parent")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"name":      "name",
		"newName":   "new name",
		"path":      "path",
		"ref":       "label",
		"parentRef": "parent",
		"colorHex":  "color",
		"query":     "search query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
