package sqlite

import (
	"fmt"
	"time"

	"jd/internal/domain"
)

// Sync makes the catalog's view of m.Root match m. Unchanged entries are
// left alone, so the stats describe what actually moved.
func (c *Catalog) Sync(m *domain.Model) (*domain.SyncStats, error) {
	start := c.now()
	stats := &domain.SyncStats{}

	tx, err := c.beginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin sync: %w", err)
	}
	defer tx.Rollback()

	before, err := tx.existing(m.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	seen := make(map[string]bool)
	for _, e := range m.Entries() {
		if seen[e.Path] {
			continue
		}
		seen[e.Path] = true

		old, ok := before[e.Path]
		switch {
		case !ok:
			stats.EntriesAdded++
		case old.Number != e.Number || old.Label != e.Label:
			stats.EntriesUpdated++
		default:
			continue
		}
		if err := tx.upsertEntry(m.Root, e); err != nil {
			return nil, fmt.Errorf("failed to record %s: %w", e.Path, err)
		}
	}

	for p := range before {
		if seen[p] {
			continue
		}
		if err := tx.deleteEntry(m.Root, p); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", p, err)
		}
		stats.EntriesDeleted++
	}

	if err := tx.touchRoot(m.Root, start.UnixNano()); err != nil {
		return nil, fmt.Errorf("failed to record root: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sync: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
