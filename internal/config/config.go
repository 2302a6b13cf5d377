// Package config loads jd settings from defaults, a JSON-with-comments file
// and the environment, and finds the index root a command should work on.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"jd/internal/logger"
)

// Environment variables read by Load
const (
	EnvRoot     = "JD_ROOT"
	EnvLogLevel = "JD_LOG_LEVEL"
	EnvDataDir  = "JD_DATA_DIR"
)

// IndexFileName marks the root of a Johnny Decimal tree
const IndexFileName = ".JdIndex"

var (
	// ErrNoRoot is returned when no index root is configured or can be found
	ErrNoRoot = errors.New("no index root found (run \"jd index\" in your tree, or pass --root)")

	errConfigInvalid = errors.New("invalid config file")
)

// Config holds all configuration options
type Config struct {
	Root     string `json:"root,omitempty"`
	Strict   bool   `json:"strict,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
	DataDir  string `json:"data_dir,omitempty"`
	Editor   string `json:"editor,omitempty"`
}

// Default returns the default configuration
func Default() Config {
	return Config{LogLevel: logger.LevelInfo}
}

// GlobalPath returns $XDG_CONFIG_HOME/jd/config.json, or
// ~/.config/jd/config.json. It is empty when no home directory is known.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jd", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jd", "config.json")
}

// Load returns the configuration with the following precedence (highest wins):
// 1. Defaults
// 2. The global config file, if it exists
// 3. JD_ROOT, JD_LOG_LEVEL and JD_DATA_DIR
//
// Command line flags are applied by the caller. The returned path is the
// config file that was read, or empty.
func Load() (Config, string, error) {
	cfg := Default()

	path := GlobalPath()
	fileCfg, loaded, err := loadFile(path)
	if err != nil {
		return Config{}, "", err
	}
	if !loaded {
		path = ""
	}
	cfg = merge(cfg, fileCfg)

	cfg = merge(cfg, Config{
		Root:     os.Getenv(EnvRoot),
		LogLevel: os.Getenv(EnvLogLevel),
		DataDir:  os.Getenv(EnvDataDir),
	})

	if !logger.ValidLevel(cfg.LogLevel) {
		return Config{}, "", fmt.Errorf("%w: unknown log_level %q", errConfigInvalid, cfg.LogLevel)
	}
	cfg.LogLevel = logger.NormalizeLevel(cfg.LogLevel)

	return cfg, path, nil
}

// loadFile reads one config file. A missing file is not an error.
func loadFile(path string) (Config, bool, error) {
	if path == "" {
		return Config{}, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	return cfg, true, nil
}

// Parse decodes JSON with comments and trailing commas
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Root != "" {
		base.Root = overlay.Root
	}
	if overlay.Strict {
		base.Strict = true
	}
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}
	if overlay.DataDir != "" {
		base.DataDir = overlay.DataDir
	}
	if overlay.Editor != "" {
		base.Editor = overlay.Editor
	}
	return base
}

// DataPath returns the directory holding the catalog: data_dir if set,
// else $XDG_DATA_HOME/jd, else ~/.local/share/jd
func (c Config) DataPath() (string, error) {
	if c.DataDir != "" {
		return ExpandHome(c.DataDir)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "jd"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "jd"), nil
}

// ResolveRoot picks the index root: the configured root, else the nearest
// directory at or above workDir holding an index file, else the root that
// was indexed last. lastRoot may be nil.
func (c Config) ResolveRoot(workDir string, lastRoot func() (string, error)) (string, error) {
	if c.Root != "" {
		root, err := ExpandHome(c.Root)
		if err != nil {
			return "", err
		}
		return filepath.Abs(root)
	}

	if root, ok := FindRoot(workDir); ok {
		return root, nil
	}

	if lastRoot != nil {
		root, err := lastRoot()
		if err != nil {
			return "", err
		}
		if root != "" {
			return root, nil
		}
	}
	return "", ErrNoRoot
}

// FindRoot walks up from dir looking for an index file
func FindRoot(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		info, err := os.Stat(filepath.Join(dir, IndexFileName))
		if err == nil && info.Mode().IsRegular() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Format returns the config as indented JSON
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}
	return string(data), nil
}
