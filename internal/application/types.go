package application

import "jd/internal/domain"

// Re-export domain types for use by adapters
type (
	Number       = domain.Number
	Level        = domain.Level
	Entry        = domain.Entry
	Model        = domain.Model
	Line         = domain.Line
	Resolution   = domain.Resolution
	Diagnostic   = domain.Diagnostic
	CatalogEntry = domain.CatalogEntry
	CatalogRoot  = domain.CatalogRoot
)

const (
	LevelArea     = domain.LevelArea
	LevelCategory = domain.LevelCategory
	LevelID       = domain.LevelID
)

// Summary counts what an index holds
type Summary struct {
	Areas      int
	Categories int
	IDs        int
}

// Summarize counts the entries of a model
func Summarize(m *domain.Model) Summary {
	areas, categories, ids := m.Counts()
	return Summary{Areas: areas, Categories: categories, IDs: ids}
}

// ParseNumber parses a bare JD number such as 10-19, 11 or 11.04
func ParseNumber(s string) (Number, error) {
	return domain.ParseNumber(s)
}
