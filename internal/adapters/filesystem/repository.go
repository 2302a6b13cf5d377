package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"jd/internal/domain"
	"jd/internal/ports"
)

// Repository implements ports.FolderStore using the filesystem
type Repository struct{}

var _ ports.FolderStore = (*Repository)(nil)

// NewRepository creates a new filesystem repository
func NewRepository() *Repository {
	return &Repository{}
}

// CreateFolder creates a single directory. The parent must exist and the
// target must not.
func (r *Repository) CreateFolder(root, rel string) error {
	full := domain.JoinRoot(root, rel)
	if err := os.Mkdir(full, 0755); err != nil {
		return fmt.Errorf("failed to create %q: %w: %w", full, domain.ErrIoFailure, err)
	}
	return nil
}

// RenameFolder renames an entry in place and refuses to overwrite
func (r *Repository) RenameFolder(root, oldRel, newRel string) error {
	src := domain.JoinRoot(root, oldRel)
	dst := domain.JoinRoot(root, newRel)

	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("failed to rename %q: %w: %q already exists", src, domain.ErrIoFailure, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %q: %w: %w", dst, domain.ErrIoFailure, err)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename %q: %w: %w", src, domain.ErrIoFailure, err)
	}
	return nil
}

// IsFile follows symlinks, like the scanner does
func (r *Repository) IsFile(root, rel string) (bool, error) {
	full := domain.JoinRoot(root, rel)
	info, err := os.Stat(full)
	if err != nil {
		return false, fmt.Errorf("failed to stat %q: %w: %w", full, domain.ErrIoFailure, err)
	}
	return info.Mode().IsRegular(), nil
}
