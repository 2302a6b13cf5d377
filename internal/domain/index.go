package domain

import "time"

// CatalogEntry is one indexed entry as recorded in the cross-root catalog
type CatalogEntry struct {
	Root   string // absolute index root the entry belongs to
	Number Number
	Label  string
	Path   string // relative to Root
}

// AbsPath joins the entry path onto its root
func (e CatalogEntry) AbsPath() string {
	return JoinRoot(e.Root, e.Path)
}

// CatalogRoot is an index root known to the catalog
type CatalogRoot struct {
	Path      string
	IndexedAt time.Time
	Entries   int
}

// SyncStats holds statistics from a catalog sync
type SyncStats struct {
	EntriesAdded   int
	EntriesUpdated int
	EntriesDeleted int
	Duration       time.Duration
}
