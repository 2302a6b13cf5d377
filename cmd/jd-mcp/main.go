package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jd/internal/adapters/filesystem"
	"jd/internal/adapters/indexfile"
	mcpadapter "jd/internal/adapters/mcp"
	"jd/internal/adapters/sqlite"
	"jd/internal/config"
	"jd/internal/logger"
	"jd/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jd-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}

	rootFlag := flag.String("root", cfg.Root, "index root (default: nearest .JdIndex above the working directory)")
	strictFlag := flag.Bool("strict", cfg.Strict, "refuse to use an index that has numbering problems")
	flag.Parse()
	cfg.Root = *rootFlag
	cfg.Strict = *strictFlag

	// stdout carries the protocol; logs go to stderr
	log := logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)

	var catalog ports.Catalog
	if dir, err := cfg.DataPath(); err != nil {
		log.Warnf("catalog unavailable: %v", err)
	} else {
		c := sqlite.NewCatalog(dir)
		if err := c.Open(); err != nil {
			log.Warnf("catalog unavailable: %v", err)
		} else {
			defer c.Close()
			catalog = c
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	var lastRoot func() (string, error)
	if catalog != nil {
		lastRoot = catalog.LastRoot
	}
	root, err := cfg.ResolveRoot(wd, lastRoot)
	if err != nil {
		return err
	}
	log.Infof("serving %s", root)

	deps := mcpadapter.Deps{
		Root:    root,
		Store:   indexfile.NewStore(log),
		Scanner: filesystem.NewScanner(log),
		Folders: filesystem.NewRepository(),
		Catalog: catalog,
		Log:     log,
		Strict:  cfg.Strict,
	}

	mcpServer := server.NewMCPServer(
		"jd-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	return server.ServeStdio(mcpServer)
}
