package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jd/internal/domain"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c := NewCatalog(t.TempDir())
	clock := time.Unix(1700000000, 0)
	c.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	require.NoError(t, c.Open())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func mustNumber(t *testing.T, s string) domain.Number {
	t.Helper()
	n, err := domain.ParseNumber(s)
	require.NoError(t, err)
	return n
}

func testModel(t *testing.T, root string) *domain.Model {
	t.Helper()
	m := domain.NewModel(root)

	a := m.AddArea(domain.Entry{Number: mustNumber(t, "10-19"), Label: "Finance", Path: "10-19 Finance"})
	c := a.AddCategory(domain.Entry{Number: mustNumber(t, "11"), Label: "Taxes", Path: "10-19 Finance/11 Taxes"})
	c.AddID(domain.Entry{Number: mustNumber(t, "11.01"), Label: "Receipts", Path: "10-19 Finance/11 Taxes/11.01 Receipts"})
	c.AddID(domain.Entry{Number: mustNumber(t, "11.02"), Label: "Straße", Path: "10-19 Finance/11 Taxes/11.02 Straße"})
	return m
}

func TestCatalog_SyncStats(t *testing.T) {
	c := openTestCatalog(t)
	m := testModel(t, "/jd")

	stats, err := c.Sync(m)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.EntriesAdded)
	assert.Zero(t, stats.EntriesUpdated)
	assert.Zero(t, stats.EntriesDeleted)

	// Unchanged model: nothing to do
	stats, err = c.Sync(m)
	require.NoError(t, err)
	assert.Zero(t, stats.EntriesAdded+stats.EntriesUpdated+stats.EntriesDeleted)

	// One rename, one removal
	taxes := m.Category(mustNumber(t, "11"))
	taxes.IDs[0].Label = "Invoices"
	taxes.IDs = taxes.IDs[:1]

	stats, err = c.Sync(m)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.EntriesAdded)
	assert.Equal(t, 1, stats.EntriesUpdated)
	assert.Equal(t, 1, stats.EntriesDeleted)
}

func TestCatalog_Search(t *testing.T) {
	c := openTestCatalog(t)
	_, err := c.Sync(testModel(t, "/jd"))
	require.NoError(t, err)

	t.Run("case insensitive substring", func(t *testing.T) {
		results, err := c.Search("RECEIPT", 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "11.01", results[0].Number.String())
		assert.Equal(t, "/jd", results[0].Root)
	})

	t.Run("unicode folding", func(t *testing.T) {
		results, err := c.Search("STRASSE", 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Straße", results[0].Label)
	})

	t.Run("number", func(t *testing.T) {
		results, err := c.Search("11", 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Taxes", results[0].Label)
	})

	t.Run("like wildcards are literal", func(t *testing.T) {
		results, err := c.Search("%", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty query", func(t *testing.T) {
		results, err := c.Search("   ", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("limit", func(t *testing.T) {
		results, err := c.Search("e", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestCatalog_SearchAcrossRoots(t *testing.T) {
	c := openTestCatalog(t)
	_, err := c.Sync(testModel(t, "/home/a/jd"))
	require.NoError(t, err)
	_, err = c.Sync(testModel(t, "/home/b/jd"))
	require.NoError(t, err)

	results, err := c.Search("receipts", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "/home/a/jd", results[0].Root)
	assert.Equal(t, "/home/b/jd", results[1].Root)
}

func TestCatalog_RootsAndLastRoot(t *testing.T) {
	c := openTestCatalog(t)

	last, err := c.LastRoot()
	require.NoError(t, err)
	assert.Empty(t, last)

	_, err = c.Sync(testModel(t, "/first"))
	require.NoError(t, err)
	_, err = c.Sync(domain.NewModel("/second"))
	require.NoError(t, err)

	last, err = c.LastRoot()
	require.NoError(t, err)
	assert.Equal(t, "/second", last)

	roots, err := c.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "/second", roots[0].Path)
	assert.Equal(t, 0, roots[0].Entries)
	assert.Equal(t, "/first", roots[1].Path)
	assert.Equal(t, 4, roots[1].Entries)

	require.NoError(t, c.Forget("/second"))
	last, err = c.LastRoot()
	require.NoError(t, err)
	assert.Equal(t, "/first", last)
}

func TestCatalog_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	c := NewCatalog(dir)
	require.NoError(t, c.Open())
	_, err := c.Sync(testModel(t, "/jd"))
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c = NewCatalog(dir)
	require.NoError(t, c.Open())
	defer c.Close()

	results, err := c.Search("taxes", 0)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchKey(t *testing.T) {
	assert.Equal(t, "strasse", SearchKey("  Straße "))
	assert.Equal(t, SearchKey("é"), SearchKey("É"))
}
