package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"jd/internal/domain"
	"jd/internal/logger"
	"jd/internal/ports"
)

// Scanner implements ports.TreeScanner by walking the directory tree
type Scanner struct {
	log logger.Logger
}

var _ ports.TreeScanner = (*Scanner)(nil)

// NewScanner creates a scanner that reports indexed entries at debug level
func NewScanner(log logger.Logger) *Scanner {
	if log == nil {
		log = logger.Nop()
	}
	return &Scanner{log: log}
}

// scan holds the state of one walk
type scan struct {
	ctx   context.Context
	root  string
	model *domain.Model
	diags []domain.Diagnostic
	log   logger.Logger
}

// Scan walks root three levels deep and builds a fresh model. It never
// modifies the filesystem. Only a failure to read root itself is an error;
// everything else becomes a diagnostic.
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.Model, []domain.Diagnostic, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve root %q: %w: %w", root, domain.ErrIoFailure, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read root %q: %w: %w", abs, domain.ErrIoFailure, err)
	}

	sc := &scan{ctx: ctx, root: abs, model: domain.NewModel(abs), log: s.log}
	if err := sc.areas(entries); err != nil {
		return nil, nil, err
	}

	domain.SortDiagnostics(sc.diags)
	return sc.model, sc.diags, nil
}

func (sc *scan) areas(entries []fs.DirEntry) error {
	for _, de := range entries {
		name := de.Name()
		if hidden(name) || !sc.isDir("", de) || !sc.validName(name, name, domain.LevelArea) {
			continue
		}

		n, label, ok := domain.ParseFolderName(domain.LevelArea, name)
		if !ok {
			sc.misplaced(name, name, domain.LevelArea)
			continue
		}

		if existing := sc.model.Area(n); existing != nil {
			sc.report(domain.DuplicateDiagnostic(n, existing.Path, name))
			continue
		}

		area := sc.model.AddArea(domain.Entry{Number: n, Label: label, Path: name})
		sc.log.Debugf("indexed area %s %q", n, name)

		if err := sc.categories(area); err != nil {
			return err
		}
	}
	return nil
}

func (sc *scan) categories(area *domain.Area) error {
	entries, ok, err := sc.readDir(area.Path)
	if !ok {
		return err
	}

	for _, de := range entries {
		name := de.Name()
		if hidden(name) || !sc.isDir(area.Path, de) {
			continue
		}
		rel := path.Join(area.Path, name)
		if !sc.validName(rel, name, domain.LevelCategory) {
			continue
		}

		n, label, ok := domain.ParseFolderName(domain.LevelCategory, name)
		if !ok {
			sc.misplaced(rel, name, domain.LevelCategory)
			continue
		}

		if existing := area.Category(n); existing != nil {
			sc.report(domain.DuplicateDiagnostic(n, existing.Path, rel))
			continue
		}

		category := area.AddCategory(domain.Entry{Number: n, Label: label, Path: rel})
		if !area.InRange(category) {
			sc.report(domain.OutOfRangeDiagnostic(category.Entry, area.Number))
		}
		sc.log.Debugf("indexed category %s %q", n, rel)

		if err := sc.ids(category); err != nil {
			return err
		}
	}
	return nil
}

func (sc *scan) ids(category *domain.Category) error {
	entries, ok, err := sc.readDir(category.Path)
	if !ok {
		return err
	}

	for _, de := range entries {
		name := de.Name()
		if hidden(name) {
			continue
		}
		rel := path.Join(category.Path, name)

		n, label, ok := domain.ParseFolderName(domain.LevelID, name)
		if !ok {
			// Loose files in a category are allowed; stray folders are not
			if sc.isDir(category.Path, de) {
				sc.report(domain.UnparseableDiagnostic(rel, domain.LevelID))
			}
			continue
		}
		if !sc.validName(rel, name, domain.LevelID) {
			continue
		}

		if existing, taken := category.Slot(n.ID()); taken {
			sc.report(domain.DuplicateDiagnostic(n, existing.Path, rel))
			continue
		}

		e := domain.Entry{Number: n, Label: label, Path: rel}
		category.AddID(e)
		if !category.InRange(e) {
			sc.report(domain.OutOfRangeDiagnostic(e, category.Number))
		}
		sc.log.Debugf("indexed id %s %q", n, rel)
	}
	return nil
}

// readDir lists a subdirectory. A read failure is reported as a diagnostic
// and ok is false; err is only set when the context is done.
func (sc *scan) readDir(rel string) (entries []fs.DirEntry, ok bool, err error) {
	if err := sc.ctx.Err(); err != nil {
		return nil, false, err
	}

	entries, readErr := os.ReadDir(domain.JoinRoot(sc.root, rel))
	if readErr != nil {
		d := domain.UnparseableDiagnostic(rel, domain.LevelUnknown)
		d.Message = fmt.Sprintf("cannot read directory: %v", readErr)
		sc.report(d)
		return nil, false, nil
	}
	return entries, true, nil
}

// misplaced reports a folder that does not parse at the expected level. A
// name that parses one or two levels deeper is an orphan; anything else is
// unparseable.
func (sc *scan) misplaced(rel, name string, expected domain.Level) {
	for lv := expected + 1; lv <= domain.LevelID; lv++ {
		if n, _, ok := domain.ParseFolderName(lv, name); ok {
			sc.report(domain.OrphanDiagnostic(rel, n, fmt.Sprintf("is not inside its %s", lv-1)))
			return
		}
	}
	sc.report(domain.UnparseableDiagnostic(rel, expected))
}

// validName reports names the index file cannot hold. The folder and its
// subtree are skipped.
func (sc *scan) validName(rel, name string, level domain.Level) bool {
	if utf8.ValidString(name) {
		return true
	}
	sc.report(domain.InvalidNameDiagnostic(rel, level))
	return false
}

func (sc *scan) report(d domain.Diagnostic) {
	sc.log.Debugf("%s", d)
	sc.diags = append(sc.diags, d)
}

// isDir follows symlinks so that a linked folder counts as a folder
func (sc *scan) isDir(parent string, de fs.DirEntry) bool {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.IsDir()
	}
	info, err := os.Stat(domain.JoinRoot(sc.root, path.Join(parent, de.Name())))
	return err == nil && info.IsDir()
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
