package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jd/internal/adapters/filesystem"
	"jd/internal/adapters/indexfile"
	"jd/internal/adapters/sqlite"
	"jd/internal/logger"
)

func setupDeps(t *testing.T, dirs ...string) Deps {
	t.Helper()

	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
	}

	catalog := sqlite.NewCatalog(t.TempDir())
	require.NoError(t, catalog.Open())
	t.Cleanup(func() { _ = catalog.Close() })

	return Deps{
		Root:    root,
		Store:   indexfile.NewStore(logger.Nop()),
		Scanner: filesystem.NewScanner(logger.Nop()),
		Folders: filesystem.NewRepository(),
		Catalog: catalog,
		Log:     logger.Nop(),
	}
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Arguments = args

	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content %T", res.Content[0])
	return text.Text, res.IsError
}

func TestTools_IndexThenRead(t *testing.T) {
	d := setupDeps(t,
		"10-19 Finance/11 Taxes/11.01 Receipts",
		"10-19 Finance/11 Taxes/11.03 Returns",
		"Misc",
	)

	out, isErr := call(t, indexHandler(d), nil)
	require.False(t, isErr, out)
	assert.Contains(t, out, "Indexed 1 areas")
	assert.Contains(t, out, "warning:")

	out, isErr = call(t, showHandler(d), map[string]any{"number": "11"})
	require.False(t, isErr, out)
	assert.Equal(t, "10-19 Finance\n  11 Taxes\n    11.01 Receipts\n    11.03 Returns\n", out)

	out, isErr = call(t, resolvePathHandler(d), map[string]any{"number": "11.03"})
	require.False(t, isErr, out)
	assert.Equal(t, filepath.Join(d.Root, "10-19 Finance", "11 Taxes", "11.03 Returns"), out)

	out, isErr = call(t, nextFreeIDHandler(d), map[string]any{"parent": "11"})
	require.False(t, isErr, out)
	assert.Equal(t, "11.02", out)

	out, isErr = call(t, searchHandler(d), map[string]any{"query": "returns"})
	require.False(t, isErr, out)
	assert.True(t, strings.HasPrefix(out, "11.03  Returns  "), out)
}

func TestTools_AddAndRename(t *testing.T) {
	d := setupDeps(t, "10-19 Finance/11 Taxes/11.01 Receipts")
	_, isErr := call(t, indexHandler(d), nil)
	require.False(t, isErr)

	out, isErr := call(t, addHandler(d), map[string]any{"parent": "11", "label": "Letters"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "11.02 Letters")
	assert.DirExists(t, filepath.Join(d.Root, "10-19 Finance", "11 Taxes", "11.02 Letters"))

	out, isErr = call(t, renameHandler(d), map[string]any{"number": "11.02", "label": "Mail"})
	require.False(t, isErr, out)
	assert.DirExists(t, filepath.Join(d.Root, "10-19 Finance", "11 Taxes", "11.02 Mail"))
}

func TestTools_Errors(t *testing.T) {
	d := setupDeps(t, "10-19 Finance/11 Taxes")

	// No index file yet
	out, isErr := call(t, showHandler(d), nil)
	assert.True(t, isErr, out)

	_, isErr = call(t, indexHandler(d), nil)
	require.False(t, isErr)

	tests := []struct {
		name string
		h    server.ToolHandlerFunc
		args map[string]any
	}{
		{"resolve unknown", resolvePathHandler(d), map[string]any{"number": "99.01"}},
		{"resolve missing arg", resolvePathHandler(d), nil},
		{"next under an ID", nextFreeIDHandler(d), map[string]any{"parent": "11.01"}},
		{"add bad label", addHandler(d), map[string]any{"parent": "11", "label": "a/b"}},
		{"search missing query", searchHandler(d), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, isErr := call(t, tt.h, tt.args)
			assert.True(t, isErr, out)
		})
	}
}
