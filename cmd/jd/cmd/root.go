package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"jd/internal/adapters/filesystem"
	"jd/internal/adapters/indexfile"
	"jd/internal/adapters/sqlite"
	"jd/internal/config"
	"jd/internal/logger"
	"jd/internal/ports"
)

var (
	rootFlag    string
	strictFlag  bool
	verboseFlag bool
	quietFlag   bool

	cfg config.Config
	log logger.Logger = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "jd",
	Short: "Johnny Decimal folder index",
	Long: `jd indexes a folder tree organized with the Johnny Decimal system and
resolves JD numbers to folders.

Areas (10-19), categories (11) and IDs (11.04) are folders whose names
start with their number. "jd index" scans the tree and writes a .JdIndex
file at its root; the other commands read that file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, path, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("root") {
			cfg.Root = rootFlag
		}
		if strictFlag {
			cfg.Strict = true
		}
		switch {
		case verboseFlag:
			cfg.LogLevel = logger.LevelDebug
		case quietFlag:
			cfg.LogLevel = logger.LevelError
		}

		log = logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
		if path != "" {
			log.Debugf("config loaded from %s", path)
		}
		return nil
	},
}

// Execute runs the root command. Ctrl-C cancels a running scan.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "", "index root (default: nearest .JdIndex above the working directory)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "treat numbering problems in the index file as errors")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "log errors only")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

func newStore() *indexfile.Store {
	return indexfile.NewStore(log)
}

func newScanner() *filesystem.Scanner {
	return filesystem.NewScanner(log)
}

// openCatalog opens the shared catalog. The catalog is a cache: when it
// cannot be opened the command runs without it and the returned Catalog is
// nil.
func openCatalog() (ports.Catalog, func()) {
	dir, err := cfg.DataPath()
	if err != nil {
		log.Warnf("catalog unavailable: %v", err)
		return nil, func() {}
	}

	c := sqlite.NewCatalog(dir)
	if err := c.Open(); err != nil {
		log.Warnf("catalog unavailable: %v", err)
		return nil, func() {}
	}
	return c, func() {
		if err := c.Close(); err != nil {
			log.Debugf("failed to close catalog: %v", err)
		}
	}
}

// resolveRoot finds the root of the tree to work on. The catalog is only
// opened when neither the config nor the working directory names a root.
func resolveRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	lastRoot := func() (string, error) {
		catalog, closeCatalog := openCatalog()
		defer closeCatalog()
		if catalog == nil {
			return "", nil
		}
		return catalog.LastRoot()
	}

	root, err := cfg.ResolveRoot(wd, lastRoot)
	if err != nil {
		return "", err
	}
	log.Debugf("using index root %s", root)
	return root, nil
}

// indexRoot is the tree "jd index" scans: the configured root, else the
// working directory
func indexRoot() (string, error) {
	if cfg.Root != "" {
		root, err := config.ExpandHome(cfg.Root)
		if err != nil {
			return "", err
		}
		return filepath.Abs(root)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
