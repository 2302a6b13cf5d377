package sqlite

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"jd/internal/domain"
)

// DefaultSearchLimit caps results when the caller passes no limit
const DefaultSearchLimit = 50

// SearchKey normalizes a label for case-insensitive matching:
// NFC composition then Unicode case folding
func SearchKey(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// Search finds entries whose label contains text, across every root.
// A query that is a JD number also matches that number exactly.
func (c *Catalog) Search(text string, limit int) ([]domain.CatalogEntry, error) {
	key := SearchKey(text)
	if key == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	number := ""
	if n, err := domain.ParseNumber(text); err == nil {
		number = n.String()
	}

	rows, err := c.db.Query(`
		SELECT root, number, label, path
		FROM entries
		WHERE search_key LIKE ? ESCAPE '\' OR number = ?
		ORDER BY root, path
		LIMIT ?
	`, "%"+escapeLike(key)+"%", number, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}
	defer rows.Close()

	var results []domain.CatalogEntry
	for rows.Next() {
		var r domain.CatalogEntry
		var num string
		if err := rows.Scan(&r.Root, &num, &r.Label, &r.Path); err != nil {
			return nil, err
		}
		if r.Number, err = domain.ParseNumber(num); err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
