package commands

import (
	"context"
	"fmt"

	"jd/internal/application"
	"jd/internal/domain"
	"jd/internal/logger"
	"jd/internal/ports"
)

// IndexResult contains the result of rebuilding an index
type IndexResult struct {
	Model       *domain.Model
	Summary     application.Summary
	Diagnostics []domain.Diagnostic
	Message     string

	// Before and After hold the index file bytes around the save when Diff
	// was requested; Before is nil for a first index
	Before []byte
	After  []byte
}

// IndexCommand scans a root, validates the result and saves it
type IndexCommand struct {
	scanner ports.TreeScanner
	store   ports.IndexStore
	catalog ports.Catalog
	log     logger.Logger
	Root    string
	Diff    bool
}

// NewIndexCommand creates a new IndexCommand. catalog may be nil.
func NewIndexCommand(scanner ports.TreeScanner, store ports.IndexStore, catalog ports.Catalog, log logger.Logger, root string) *IndexCommand {
	return &IndexCommand{
		scanner: scanner,
		store:   store,
		catalog: catalog,
		log:     orNop(log),
		Root:    root,
	}
}

// Validate checks if the index operation is valid
func (c *IndexCommand) Validate() error {
	return application.ValidateRequired("root", c.Root)
}

// Execute runs the index command. Diagnostics never fail it.
func (c *IndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var before []byte
	if c.Diff {
		raw, err := c.store.ReadRaw(c.Root)
		if err != nil {
			return nil, err
		}
		before = raw
	}

	m, scanned, err := c.scanner.Scan(ctx, c.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	diags := domain.MergeDiagnostics(scanned, domain.Validate(m))

	if err := c.store.Save(m.Root, m); err != nil {
		return nil, fmt.Errorf("failed to save index: %w", err)
	}

	result := &IndexResult{
		Model:       m,
		Summary:     application.Summarize(m),
		Diagnostics: diags,
	}

	if c.Diff {
		after, err := c.store.ReadRaw(m.Root)
		if err != nil {
			return nil, err
		}
		result.Before, result.After = before, after
	}

	syncCatalog(c.catalog, c.log, m)

	result.Message = fmt.Sprintf("Indexed %d areas, %d categories, %d IDs in %s",
		result.Summary.Areas, result.Summary.Categories, result.Summary.IDs, m.Root)
	if n := len(diags); n > 0 {
		result.Message += fmt.Sprintf(" (%d %s)", n, plural(n, "warning", "warnings"))
	}
	return result, nil
}

// syncCatalog refreshes the catalog. The catalog is a cache, so a failure
// is logged and otherwise ignored.
func syncCatalog(catalog ports.Catalog, log logger.Logger, m *domain.Model) {
	if catalog == nil {
		return
	}
	stats, err := catalog.Sync(m)
	if err != nil {
		log.Warnf("catalog not updated: %v", err)
		return
	}
	log.Debugf("catalog: %d added, %d updated, %d removed in %s",
		stats.EntriesAdded, stats.EntriesUpdated, stats.EntriesDeleted, stats.Duration)
}

func orNop(log logger.Logger) logger.Logger {
	if log == nil {
		return logger.Nop()
	}
	return log
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
