package sqlite

import (
	"database/sql"

	"jd/internal/domain"
)

// catalogTx groups the writes of one sync
type catalogTx struct {
	tx *sql.Tx
}

func (c *Catalog) beginTx() (*catalogTx, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, err
	}
	return &catalogTx{tx: tx}, nil
}

// existing returns the entries currently recorded for root, keyed by path
func (t *catalogTx) existing(root string) (map[string]domain.Entry, error) {
	rows, err := t.tx.Query(`SELECT path, number, label FROM entries WHERE root = ?`, root)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.Entry)
	for rows.Next() {
		var p, number, label string
		if err := rows.Scan(&p, &number, &label); err != nil {
			return nil, err
		}
		n, _ := domain.ParseNumber(number)
		out[p] = domain.Entry{Number: n, Label: label, Path: p}
	}
	return out, rows.Err()
}

// upsertEntry inserts or replaces one entry
func (t *catalogTx) upsertEntry(root string, e domain.Entry) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO entries (root, path, level, number, label, search_key)
		VALUES (?, ?, ?, ?, ?, ?)
	`, root, e.Path, e.Number.Level().String(), e.Number.String(), e.Label, SearchKey(e.Label))
	return err
}

// deleteEntry removes one entry
func (t *catalogTx) deleteEntry(root, p string) error {
	_, err := t.tx.Exec(`DELETE FROM entries WHERE root = ? AND path = ?`, root, p)
	return err
}

// touchRoot records that root was just indexed
func (t *catalogTx) touchRoot(root string, indexedAt int64) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO roots (path, indexed_at) VALUES (?, ?)`, root, indexedAt)
	return err
}

// deleteRoot removes a root and all of its entries
func (t *catalogTx) deleteRoot(root string) error {
	if _, err := t.tx.Exec(`DELETE FROM entries WHERE root = ?`, root); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM roots WHERE path = ?`, root)
	return err
}

// Commit commits the transaction
func (t *catalogTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction; it is a no-op after Commit
func (t *catalogTx) Rollback() error {
	return t.tx.Rollback()
}
