package application

import (
	"fmt"

	"jd/internal/domain"
)

// Sentinel errors re-exported for the CLI and MCP layers
var (
	ErrNotFound       = domain.ErrNotFound
	ErrCategoryFull   = domain.ErrCategoryFull
	ErrAreaFull       = domain.ErrAreaFull
	ErrNoSuchCategory = domain.ErrNoSuchCategory
	ErrNoSuchArea     = domain.ErrNoSuchArea
	ErrCorruptIndex   = domain.ErrCorruptIndex
	ErrIndexMissing   = domain.ErrIndexMissing
	ErrIoFailure      = domain.ErrIoFailure
	ErrInvalidLabel   = domain.ErrInvalidLabel
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RenameError represents a rename that could not be carried out
type RenameError struct {
	Number string
	Reason string
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("cannot rename %s: %s", e.Number, e.Reason)
}
