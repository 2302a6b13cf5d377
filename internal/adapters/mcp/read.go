package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jd/internal/application/commands"
	"jd/internal/domain"
	"jd/internal/logger"
	"jd/internal/ports"
)

// Deps are the adapters every tool runs against. Catalog may be nil, in
// which case search is unavailable.
type Deps struct {
	Root    string
	Store   ports.IndexStore
	Scanner ports.TreeScanner
	Folders ports.FolderStore
	Catalog ports.Catalog
	Log     logger.Logger
	Strict  bool // fail on an index with diagnostics
}

// RegisterReadTools adds all read-only index tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, d Deps) {
	s.AddTool(showTool(), showHandler(d))
	s.AddTool(resolvePathTool(), resolvePathHandler(d))
	s.AddTool(nextFreeIDTool(), nextFreeIDHandler(d))
	s.AddTool(searchTool(), searchHandler(d))
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show the Johnny Decimal index as an outline. With a number, shows that entry with its ancestors and children."),
		mcp.WithString("number",
			mcp.Description("JD number to focus on (e.g. 10-19, 11, 11.04). Omit to show everything."),
		),
	)
}

func showHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number := req.GetString("number", "")

		cmd := commands.NewShowCommand(d.Store, d.Root, number)
		cmd.Strict = d.Strict
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Lines) == 0 {
			return mcp.NewToolResultText("The index is empty."), nil
		}

		var sb strings.Builder
		for _, l := range result.Lines {
			sb.WriteString(strings.Repeat("  ", l.Depth))
			sb.WriteString(l.Entry.Name())
			if l.Orphan {
				sb.WriteString("  (orphan)")
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- resolve_path ---

func resolvePathTool() mcp.Tool {
	return mcp.NewTool("resolve_path",
		mcp.WithDescription("Get the absolute filesystem path for a JD number."),
		mcp.WithString("number",
			mcp.Description("JD number (e.g. 10-19, 11, 11.04)"),
			mcp.Required(),
		),
	)
}

func resolvePathHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number := req.GetString("number", "")
		if number == "" {
			return toolError(fmt.Errorf("number is required"))
		}

		cmd := commands.NewResolveCommand(d.Store, d.Root, number)
		cmd.Strict = d.Strict
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Path), nil
	}
}

// --- next_free_id ---

func nextFreeIDTool() mcp.Tool {
	return mcp.NewTool("next_free_id",
		mcp.WithDescription("Get the number that add would allocate next: the lowest free ID of a category, or the lowest free category of an area. Nothing is created."),
		mcp.WithString("parent",
			mcp.Description("Category (e.g. 11) or area (e.g. 10-19)"),
			mcp.Required(),
		),
	)
}

func nextFreeIDHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parent := req.GetString("parent", "")
		if parent == "" {
			return toolError(fmt.Errorf("parent is required"))
		}

		cmd := commands.NewNextCommand(d.Store, d.Root, parent)
		cmd.Strict = d.Strict
		n, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(n.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search labels across every indexed tree. Returns matching entries with their JD numbers and paths."),
		mcp.WithString("query",
			mcp.Description("Search query (at least two characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		if d.Catalog == nil {
			return toolError(fmt.Errorf("search is unavailable: the catalog could not be opened"))
		}

		results, err := commands.NewSearchCommand(d.Catalog, query, 0).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", r.Number, r.Label, r.AbsPath())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatDiagnostics(sb *strings.Builder, ds []domain.Diagnostic) {
	for _, d := range ds {
		fmt.Fprintf(sb, "warning: %s\n", d)
	}
}
