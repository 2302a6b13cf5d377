package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jd/internal/application/commands"
)

// RegisterWriteTools adds the tools that change the tree or the index file.
func RegisterWriteTools(s *server.MCPServer, d Deps) {
	s.AddTool(addTool(), addHandler(d))
	s.AddTool(renameTool(), renameHandler(d))
	s.AddTool(indexTool(), indexHandler(d))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Allocate the next free number and create its folder. A category parent gets a new ID; an area parent gets a new category."),
		mcp.WithString("parent",
			mcp.Description("Category (e.g. 11) or area (e.g. 10-19)"),
			mcp.Required(),
		),
		mcp.WithString("label",
			mcp.Description("Label for the new folder"),
			mcp.Required(),
		),
	)
}

func addHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parent := req.GetString("parent", "")
		label := req.GetString("label", "")

		cmd := commands.NewAddCommand(d.Store, d.Folders, d.Catalog, d.Log, d.Root, parent, label)
		cmd.Strict = d.Strict
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message + "\n" + result.Path), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Change the label of an area, category or ID. The number stays the same."),
		mcp.WithString("number",
			mcp.Description("JD number of the entry to rename"),
			mcp.Required(),
		),
		mcp.WithString("label",
			mcp.Description("New label"),
			mcp.Required(),
		),
	)
}

func renameHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number := req.GetString("number", "")
		label := req.GetString("label", "")

		cmd := commands.NewRenameCommand(d.Store, d.Folders, d.Catalog, d.Log, d.Root, number, label)
		cmd.Strict = d.Strict
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- index ---

func indexTool() mcp.Tool {
	return mcp.NewTool("index",
		mcp.WithDescription("Rescan the tree and rewrite the index file. Numbering problems are reported as warnings."),
	)
}

func indexHandler(d Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewIndexCommand(d.Scanner, d.Store, d.Catalog, d.Log, d.Root)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		formatDiagnostics(&sb, result.Diagnostics)
		return mcp.NewToolResultText(sb.String()), nil
	}
}
