package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"jd/internal/adapters/filesystem"
	"jd/internal/adapters/indexfile"
	"jd/internal/adapters/sqlite"
	"jd/internal/logger"
)

// fixture wires the real adapters against a temp tree
type fixture struct {
	root    string
	store   *indexfile.Store
	scanner *filesystem.Scanner
	folders *filesystem.Repository
	catalog *sqlite.Catalog
}

func newFixture(t *testing.T, dirs ...string) *fixture {
	t.Helper()

	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
	}

	catalog := sqlite.NewCatalog(t.TempDir())
	require.NoError(t, catalog.Open())
	t.Cleanup(func() { _ = catalog.Close() })

	return &fixture{
		root:    root,
		store:   indexfile.NewStore(logger.Nop()),
		scanner: filesystem.NewScanner(logger.Nop()),
		folders: filesystem.NewRepository(),
		catalog: catalog,
	}
}

func (f *fixture) index(t *testing.T) *IndexResult {
	t.Helper()
	res, err := NewIndexCommand(f.scanner, f.store, f.catalog, logger.Nop(), f.root).Execute(context.Background())
	require.NoError(t, err)
	return res
}

func (f *fixture) add(parent, label string) (*AddResult, error) {
	return NewAddCommand(f.store, f.folders, f.catalog, logger.Nop(), f.root, parent, label).Execute(context.Background())
}

func (f *fixture) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(f.root, filepath.FromSlash(rel)))
	return err == nil
}
