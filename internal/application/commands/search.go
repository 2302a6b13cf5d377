package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"jd/internal/domain"
	"jd/internal/ports"
)

// SearchResult wraps a catalog entry with a relevance score
type SearchResult struct {
	domain.CatalogEntry
	Score int
}

// SearchCommand searches labels across every indexed root
type SearchCommand struct {
	catalog ports.Catalog
	Text    string
	Limit   int
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(catalog ports.Catalog, text string, limit int) *SearchCommand {
	return &SearchCommand{
		catalog: catalog,
		Text:    text,
		Limit:   limit,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Text)
	if len(query) < 2 {
		return nil, nil
	}

	entries, err := c.catalog.Search(query, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	return FuzzySort(entries, query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort orders catalog entries by relevance to the query. The catalog
// has already matched them, so every entry is kept.
func FuzzySort(entries []domain.CatalogEntry, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(entries))

	for _, e := range entries {
		best := max(FuzzyScore(e.Number.String(), query), FuzzyScore(e.Label, query), 1)
		scored = append(scored, SearchResult{CatalogEntry: e, Score: best})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
