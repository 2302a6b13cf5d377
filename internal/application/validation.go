package application

import (
	"fmt"
	"strings"

	"jd/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateNumber parses value as a JD number of one of the allowed levels.
// With no levels given, any level is accepted.
func ValidateNumber(fieldName, value string, levels ...domain.Level) (domain.Number, error) {
	if err := ValidateRequired(fieldName, value); err != nil {
		return domain.Number{}, err
	}

	n, err := domain.ParseNumber(value)
	if err != nil {
		return domain.Number{}, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("not a Johnny Decimal number: %q", strings.TrimSpace(value)),
		}
	}

	if len(levels) == 0 {
		return n, nil
	}
	for _, l := range levels {
		if n.Level() == l {
			return n, nil
		}
	}

	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return domain.Number{}, &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("expected %s number, got %s %s", strings.Join(names, " or "), n.Level(), n),
	}
}

// ValidateLabel checks a label can become part of a folder name
func ValidateLabel(fieldName, label string) error {
	if err := ValidateRequired(fieldName, label); err != nil {
		return err
	}
	if !domain.ValidLabel(label) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%q cannot be used in a folder name (no slashes or line breaks)", label),
		}
	}
	return nil
}
