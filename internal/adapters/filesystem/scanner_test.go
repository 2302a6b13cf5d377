package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jd/internal/adapters/indexfile"
	"jd/internal/domain"
	"jd/internal/logger"
	"jd/internal/ports"
)

// setupTestTree creates the given folders and files under a temp root.
// Paths ending in "/" are folders; everything else is an empty file.
func setupTestTree(t *testing.T, paths ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("failed to create folder %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", p, err)
		}
		if err := os.WriteFile(full, nil, 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", p, err)
		}
	}
	return root
}

type finding struct {
	Kind  domain.DiagnosticKind
	Paths []string
}

func findings(ds []domain.Diagnostic) []finding {
	out := []finding{}
	for _, d := range ds {
		out = append(out, finding{Kind: d.Kind, Paths: d.Paths})
	}
	return out
}

func paths(m *domain.Model) []string {
	out := []string{}
	for _, e := range m.Entries() {
		out = append(out, e.Path)
	}
	return out
}

func scanTree(t *testing.T, root string) (*domain.Model, []domain.Diagnostic) {
	t.Helper()
	m, diags, err := NewScanner(logger.Nop()).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return m, diags
}

func TestScan_FreshTree(t *testing.T) {
	root := setupTestTree(t,
		"10-19 Finance/11 Taxes/11.01 Receipts/",
		"10-19 Finance/11 Taxes/11.02 scan.pdf",
		"10-19 Finance/12 Bills/",
		"20-29 Home/",
	)

	m, diags := scanTree(t, root)

	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}

	want := []string{
		"10-19 Finance",
		"10-19 Finance/11 Taxes",
		"10-19 Finance/11 Taxes/11.01 Receipts",
		"10-19 Finance/11 Taxes/11.02 scan.pdf",
		"10-19 Finance/12 Bills",
		"20-29 Home",
	}
	if diff := cmp.Diff(want, paths(m)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	id := m.Category(mustNumber(t, "11")).IDs[1]
	if id.Label != "scan.pdf" {
		t.Errorf("file ID label = %q, want scan.pdf", id.Label)
	}
}

func TestScan_Duplicates(t *testing.T) {
	root := setupTestTree(t,
		"10-19 Finance/11 Taxes/11.01 First/",
		"10-19 Finance/11 Taxes/11.01 Second/",
		"10-19 Finance/11 Taxes/11.02 Kept/",
		"10-19 Finance/11 Taxes/12.02 Same slot/",
		"10-19 Money/13 Hidden by duplicate area/",
	)

	m, diags := scanTree(t, root)

	want := []finding{
		{domain.DuplicateNumber, []string{"10-19 Finance", "10-19 Money"}},
		{domain.DuplicateNumber, []string{"10-19 Finance/11 Taxes/11.01 First", "10-19 Finance/11 Taxes/11.01 Second"}},
		{domain.DuplicateNumber, []string{"10-19 Finance/11 Taxes/11.02 Kept", "10-19 Finance/11 Taxes/12.02 Same slot"}},
	}
	if diff := cmp.Diff(want, findings(diags)); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	wantPaths := []string{
		"10-19 Finance",
		"10-19 Finance/11 Taxes",
		"10-19 Finance/11 Taxes/11.01 First",
		"10-19 Finance/11 Taxes/11.02 Kept",
	}
	if diff := cmp.Diff(wantPaths, paths(m)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_UnparseableAndIgnored(t *testing.T) {
	root := setupTestTree(t,
		"Misc/",
		"notes.txt",
		"10-19 Finance/Stuff/",
		"10-19 Finance/readme.md",
		"10-19 Finance/11 Taxes/random/",
		"10-19 Finance/11 Taxes/todo.txt",
	)

	m, diags := scanTree(t, root)

	want := []finding{
		{domain.Unparseable, []string{"10-19 Finance/11 Taxes/random"}},
		{domain.Unparseable, []string{"10-19 Finance/Stuff"}},
		{domain.Unparseable, []string{"Misc"}},
	}
	if diff := cmp.Diff(want, findings(diags)); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	if _, _, ids := m.Counts(); ids != 0 {
		t.Errorf("expected no IDs, got %d", ids)
	}
}

// mkdirRaw creates a folder whose name may not be valid UTF-8, skipping
// the test on filesystems that refuse such names.
func mkdirRaw(t *testing.T, root, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
		t.Skipf("filesystem does not accept %q: %v", rel, err)
	}
}

func TestScan_InvalidUTF8NamesAreSkipped(t *testing.T) {
	root := setupTestTree(t, "10-19 Finance/11 Taxes/11.01 Receipts/")
	mkdirRaw(t, root, "10-19 Finance/11 Taxes/11.02 bad\xffutf8/inner")
	mkdirRaw(t, root, "10-19 Finance/12 Bills\xfe/12.01 Power")
	mkdirRaw(t, root, "20-29 H\xc3ome/21 Garden")

	m, diags := scanTree(t, root)

	want := []finding{
		{domain.Unparseable, []string{"10-19 Finance/11 Taxes/11.02 bad\xffutf8"}},
		{domain.Unparseable, []string{"10-19 Finance/12 Bills\xfe"}},
		{domain.Unparseable, []string{"20-29 H\xc3ome"}},
	}
	if diff := cmp.Diff(want, findings(diags)); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	for _, d := range diags {
		if !strings.Contains(d.Message, "UTF-8") {
			t.Errorf("diagnostic %q should mention UTF-8", d.Message)
		}
	}

	wantPaths := []string{
		"10-19 Finance",
		"10-19 Finance/11 Taxes",
		"10-19 Finance/11 Taxes/11.01 Receipts",
	}
	if diff := cmp.Diff(wantPaths, paths(m)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_UnusualLabelsSurviveSave(t *testing.T) {
	labels := []string{
		"null", "~", "#hash", "a: b", "- dash", "[list]", "{map}", "'quoted'", `"double"`,
		"  padded ", "tab\there", "emoji 📁", "\ufeffbom", "esc\x1b[0m", "123", "true", "1e3",
	}

	root := setupTestTree(t, "10-19 Finance/11 Taxes/")
	for i, l := range labels {
		mkdirRaw(t, root, fmt.Sprintf("10-19 Finance/11 Taxes/11.%02d %s", i+1, l))
	}
	mkdirRaw(t, root, "10-19 Finance/11 Taxes/11.99 bad\xffutf8")

	scanned, diags := scanTree(t, root)
	if len(diags) != 1 || diags[0].Kind != domain.Unparseable {
		t.Fatalf("expected one unparseable diagnostic, got %v", diags)
	}

	store := indexfile.NewStore(nil)
	if err := store.Save(root, scanned); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load(root, ports.LoadOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(scanned, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if got := len(loaded.Category(mustNumber(t, "11")).IDs); got != len(labels) {
		t.Errorf("loaded %d IDs, want %d", got, len(labels))
	}
}

func TestScan_Orphans(t *testing.T) {
	root := setupTestTree(t,
		"11 Taxes/",
		"12.01 Loose/",
		"10-19 Finance/11.01 Receipts/",
	)

	m, diags := scanTree(t, root)

	want := []finding{
		{domain.OrphanEntry, []string{"10-19 Finance/11.01 Receipts"}},
		{domain.OrphanEntry, []string{"11 Taxes"}},
		{domain.OrphanEntry, []string{"12.01 Loose"}},
	}
	if diff := cmp.Diff(want, findings(diags)); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"10-19 Finance"}, paths(m)); diff != "" {
		t.Errorf("orphans must not be indexed (-want +got):\n%s", diff)
	}
}

func TestScan_OutOfRangeIsRecorded(t *testing.T) {
	root := setupTestTree(t,
		"10-19 Finance/25 Misfiled/",
		"10-19 Finance/11 Taxes/12.01 Wrong prefix/",
	)

	m, diags := scanTree(t, root)

	want := []finding{
		{domain.OutOfRange, []string{"10-19 Finance/11 Taxes/12.01 Wrong prefix"}},
		{domain.OutOfRange, []string{"10-19 Finance/25 Misfiled"}},
	}
	if diff := cmp.Diff(want, findings(diags)); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	if _, categories, ids := m.Counts(); categories != 2 || ids != 1 {
		t.Errorf("expected out-of-range entries to be recorded, got %d categories %d ids", categories, ids)
	}
}

func TestScan_SkipsHiddenEntries(t *testing.T) {
	root := setupTestTree(t,
		".JdIndex",
		".git/",
		".00-09 Hidden/",
		"10-19 Finance/.DS_Store",
		"10-19 Finance/.11 Hidden/",
		"10-19 Finance/11 Taxes/.11.01 Hidden/",
	)

	m, diags := scanTree(t, root)

	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
	if diff := cmp.Diff([]string{"10-19 Finance", "10-19 Finance/11 Taxes"}, paths(m)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	_, _, err := NewScanner(nil).Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, domain.ErrIoFailure) {
		t.Errorf("expected ErrIoFailure, got %v", err)
	}
}

func TestScan_Cancelled(t *testing.T) {
	root := setupTestTree(t, "10-19 Finance/11 Taxes/")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewScanner(nil).Scan(ctx, root)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func mustNumber(t *testing.T, s string) domain.Number {
	t.Helper()
	n, err := domain.ParseNumber(s)
	if err != nil {
		t.Fatalf("ParseNumber(%q) failed: %v", s, err)
	}
	return n
}
