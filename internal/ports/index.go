package ports

import (
	"context"

	"jd/internal/domain"
)

// LoadOptions controls how a persisted index is read
type LoadOptions struct {
	// Strict runs validation after loading and fails on any finding
	Strict bool
}

// IndexStore persists the index model of one root
type IndexStore interface {
	// Path returns where the index of root is stored
	Path(root string) string

	// Load reads the index of root. It never writes.
	Load(root string, opts LoadOptions) (*domain.Model, error)

	// Save replaces the index of root atomically
	Save(root string, m *domain.Model) error

	// ReadRaw returns the stored bytes, or nil when there is no index yet
	ReadRaw(root string) ([]byte, error)
}

// TreeScanner builds a model by walking a JD directory tree
type TreeScanner interface {
	Scan(ctx context.Context, root string) (*domain.Model, []domain.Diagnostic, error)
}
