package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jd/internal/domain"
)

func TestCreateFolder(t *testing.T) {
	root := setupTestTree(t, "10-19 Finance/11 Taxes/")
	repo := NewRepository()

	rel := "10-19 Finance/11 Taxes/11.01 Receipts"
	if err := repo.CreateFolder(root, rel); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected folder to exist: %v", err)
	}

	if err := repo.CreateFolder(root, rel); !errors.Is(err, domain.ErrIoFailure) {
		t.Errorf("expected ErrIoFailure for an existing folder, got %v", err)
	}
}

func TestRenameFolder(t *testing.T) {
	root := setupTestTree(t,
		"10-19 Finance/11 Taxes/11.01 Receipts/",
		"10-19 Finance/11 Taxes/11.02 Other/",
	)
	repo := NewRepository()

	err := repo.RenameFolder(root, "10-19 Finance/11 Taxes/11.01 Receipts", "10-19 Finance/11 Taxes/11.01 Invoices")
	if err != nil {
		t.Fatalf("RenameFolder failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "10-19 Finance", "11 Taxes", "11.01 Invoices")); err != nil {
		t.Errorf("renamed folder missing: %v", err)
	}

	err = repo.RenameFolder(root, "10-19 Finance/11 Taxes/11.01 Invoices", "10-19 Finance/11 Taxes/11.02 Other")
	if !errors.Is(err, domain.ErrIoFailure) {
		t.Errorf("expected ErrIoFailure when the target exists, got %v", err)
	}
}

func TestIsFile(t *testing.T) {
	root := setupTestTree(t,
		"10-19 Finance/11 Taxes/11.01 Receipts/",
		"10-19 Finance/11 Taxes/11.02 scan.pdf",
	)
	repo := NewRepository()

	isFile, err := repo.IsFile(root, "10-19 Finance/11 Taxes/11.02 scan.pdf")
	if err != nil || !isFile {
		t.Errorf("IsFile(scan.pdf) = %v, %v; want true", isFile, err)
	}

	isFile, err = repo.IsFile(root, "10-19 Finance/11 Taxes/11.01 Receipts")
	if err != nil || isFile {
		t.Errorf("IsFile(folder) = %v, %v; want false", isFile, err)
	}

	if _, err := repo.IsFile(root, "10-19 Finance/11 Taxes/11.09 Missing"); !errors.Is(err, domain.ErrIoFailure) {
		t.Errorf("expected ErrIoFailure for a missing entry, got %v", err)
	}
}
