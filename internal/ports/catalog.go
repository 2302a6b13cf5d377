package ports

import "jd/internal/domain"

// Catalog is a cross-root cache of indexed entries, used for label search
// and for finding the last indexed root. It is rebuilt from index models and
// never consulted for resolution or allocation.
type Catalog interface {
	// Lifecycle
	Open() error
	Close() error

	// Sync replaces everything recorded for m.Root with the entries of m
	Sync(m *domain.Model) (*domain.SyncStats, error)

	// Forget removes a root and its entries
	Forget(root string) error

	// Queries
	Search(text string, limit int) ([]domain.CatalogEntry, error)
	Roots() ([]domain.CatalogRoot, error)
	LastRoot() (string, error)
}
