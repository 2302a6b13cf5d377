package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jd/internal/domain"
	"jd/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// DatabaseName is the catalog file inside the data directory
const DatabaseName = "catalog.db"

// Catalog implements ports.Catalog using SQLite. One catalog serves every
// index root on the machine.
type Catalog struct {
	db      *sql.DB
	dataDir string
	dbPath  string
	now     func() time.Time
}

// Ensure Catalog implements ports.Catalog
var _ ports.Catalog = (*Catalog)(nil)

// NewCatalog creates a catalog stored under dataDir
func NewCatalog(dataDir string) *Catalog {
	return &Catalog{
		dataDir: dataDir,
		dbPath:  filepath.Join(dataDir, DatabaseName),
		now:     time.Now,
	}
}

// Open creates the database and its schema if needed
func (c *Catalog) Open() error {
	if err := os.MkdirAll(c.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	// WAL lets a reader (e.g. search) run while another jd process syncs
	db, err := sql.Open("sqlite", c.dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	c.db = db

	// Performance pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup catalog: %w", err)
	}

	if c.needsRebuild() {
		if err := c.rebuildSchema(); err != nil {
			db.Close()
			return fmt.Errorf("failed to create catalog schema: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the database file location
func (c *Catalog) Path() string {
	return c.dbPath
}

// needsRebuild reports whether the stored schema is missing or outdated.
// The catalog is a cache, so an outdated schema is simply dropped.
func (c *Catalog) needsRebuild() bool {
	var version string
	err := c.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	return err != nil || version != schemaVersion
}

func (c *Catalog) rebuildSchema() error {
	_, err := c.db.Exec(`
		DROP TABLE IF EXISTS entries;
		DROP TABLE IF EXISTS roots;

		CREATE TABLE roots (
			path TEXT PRIMARY KEY,
			indexed_at INTEGER NOT NULL
		);
		CREATE TABLE entries (
			root TEXT NOT NULL,
			path TEXT NOT NULL,
			level TEXT NOT NULL,
			number TEXT NOT NULL,
			label TEXT NOT NULL,
			search_key TEXT NOT NULL,
			PRIMARY KEY (root, path)
		);
		CREATE INDEX idx_entries_number ON entries(number);
	`)
	if err != nil {
		return err
	}

	_, err = c.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	return err
}

// Roots lists every indexed root, most recently indexed first
func (c *Catalog) Roots() ([]domain.CatalogRoot, error) {
	rows, err := c.db.Query(`
		SELECT r.path, r.indexed_at, COUNT(e.path)
		FROM roots r LEFT JOIN entries e ON e.root = r.path
		GROUP BY r.path
		ORDER BY r.indexed_at DESC, r.path
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roots: %w", err)
	}
	defer rows.Close()

	var roots []domain.CatalogRoot
	for rows.Next() {
		var r domain.CatalogRoot
		var indexedAt int64
		if err := rows.Scan(&r.Path, &indexedAt, &r.Entries); err != nil {
			return nil, err
		}
		r.IndexedAt = time.Unix(0, indexedAt)
		roots = append(roots, r)
	}
	return roots, rows.Err()
}

// LastRoot returns the most recently indexed root, or "" when there is none
func (c *Catalog) LastRoot() (string, error) {
	var root string
	err := c.db.QueryRow(`SELECT path FROM roots ORDER BY indexed_at DESC LIMIT 1`).Scan(&root)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last root: %w", err)
	}
	return root, nil
}

// Forget removes a root and its entries
func (c *Catalog) Forget(root string) error {
	tx, err := c.beginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.deleteRoot(root); err != nil {
		return fmt.Errorf("failed to forget %s: %w", root, err)
	}
	return tx.Commit()
}
