// Package indexfile persists index models as the .JdIndex file at the root
// of a Johnny Decimal tree.
package indexfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"jd/internal/domain"
	"jd/internal/logger"
	"jd/internal/ports"
)

// FileName is the name of the index file inside a root
const FileName = ".JdIndex"

const filePerms = 0644

// Store implements ports.IndexStore
type Store struct {
	log logger.Logger
}

var _ ports.IndexStore = (*Store)(nil)

// NewStore creates an index file store
func NewStore(log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{log: log}
}

// Path returns the index file location for root
func (s *Store) Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads and decodes the index of root. The model's Root is the
// absolute form of root. In strict mode any validation finding fails the
// load with a *domain.DiagnosticsError.
func (s *Store) Load(root string, opts ports.LoadOptions) (*domain.Model, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w: %w", root, domain.ErrIoFailure, err)
	}

	p := s.Path(abs)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (run \"jd index\" first)", domain.ErrIndexMissing, p)
		}
		return nil, fmt.Errorf("failed to read index %q: %w: %w", p, domain.ErrIoFailure, err)
	}

	m, err := Decode(data, abs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	s.log.Debugf("loaded %d entries from %s", len(m.Entries()), p)

	if opts.Strict {
		if diags := domain.Validate(m); len(diags) > 0 {
			return nil, &domain.DiagnosticsError{Diagnostics: diags}
		}
	}
	return m, nil
}

// Save writes the model atomically: the file is written next to the index
// and renamed over it, so readers see either the old or the new index.
func (s *Store) Save(root string, m *domain.Model) error {
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIoFailure, err)
	}

	p := s.Path(root)
	if err := atomic.WriteFile(p, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write index %q: %w: %w", p, domain.ErrIoFailure, err)
	}

	// atomic.WriteFile creates the temp file with 0600
	if err := os.Chmod(p, filePerms); err != nil {
		return fmt.Errorf("failed to set permissions on %q: %w: %w", p, domain.ErrIoFailure, err)
	}

	s.log.Debugf("saved %d entries to %s", len(m.Entries()), p)
	return nil
}

// ReadRaw returns the current index bytes, or nil when root has no index
func (s *Store) ReadRaw(root string) ([]byte, error) {
	p := s.Path(root)
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read index %q: %w: %w", p, domain.ErrIoFailure, err)
	}
	return data, nil
}
