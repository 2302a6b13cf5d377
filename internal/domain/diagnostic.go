package domain

import (
	"fmt"
	"slices"
	"strings"
)

// DiagnosticKind classifies a non-fatal finding about the tree or the index
type DiagnosticKind int

const (
	DuplicateNumber DiagnosticKind = iota + 1
	OutOfRange
	Unparseable
	OrphanEntry
)

func (k DiagnosticKind) String() string {
	switch k {
	case DuplicateNumber:
		return "duplicate-number"
	case OutOfRange:
		return "out-of-range"
	case Unparseable:
		return "unparseable"
	case OrphanEntry:
		return "orphan-entry"
	default:
		return "unknown"
	}
}

// Diagnostic is a finding produced by scanning or validation. Diagnostics
// are data: they never abort an operation, callers decide how to present them.
type Diagnostic struct {
	Kind    DiagnosticKind
	Paths   []string // offending paths relative to the root
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Message, strings.Join(d.Paths, ", "))
}

func newDiagnostic(kind DiagnosticKind, message string, paths ...string) Diagnostic {
	return Diagnostic{Kind: kind, Paths: paths, Message: message}
}

// DuplicateDiagnostic reports two siblings that share a number
func DuplicateDiagnostic(n Number, kept, dropped string) Diagnostic {
	return newDiagnostic(DuplicateNumber,
		fmt.Sprintf("%s %s is used more than once; keeping %q", n.Level(), n, kept),
		kept, dropped)
}

// OutOfRangeDiagnostic reports a child whose number lies outside its parent's span
func OutOfRangeDiagnostic(child Entry, parent Number) Diagnostic {
	return newDiagnostic(OutOfRange,
		fmt.Sprintf("%s %s does not belong to %s %s", child.Number.Level(), child.Number, parent.Level(), parent),
		child.Path)
}

// UnparseableDiagnostic reports a folder without a well-formed prefix for its level
func UnparseableDiagnostic(p string, expected Level) Diagnostic {
	return newDiagnostic(Unparseable,
		fmt.Sprintf("expected a %s folder name", expected),
		p)
}

// InvalidNameDiagnostic reports a folder whose name is not valid UTF-8
func InvalidNameDiagnostic(p string, expected Level) Diagnostic {
	return newDiagnostic(Unparseable,
		fmt.Sprintf("%s folder name is not valid UTF-8", expected),
		p)
}

// OrphanDiagnostic reports an entry whose parent is missing
func OrphanDiagnostic(p string, n Number, reason string) Diagnostic {
	return newDiagnostic(OrphanEntry,
		fmt.Sprintf("%s %s %s", n.Level(), n, reason),
		p)
}

// MergeDiagnostics concatenates lists, drops repeats of the same kind and
// paths, and sorts the result by kind then first path
func MergeDiagnostics(lists ...[]Diagnostic) []Diagnostic {
	seen := make(map[string]bool)
	var out []Diagnostic

	for _, list := range lists {
		for _, d := range list {
			key := d.Kind.String() + "\x00" + strings.Join(d.Paths, "\x00")
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, d)
		}
	}

	SortDiagnostics(out)
	return out
}

// SortDiagnostics orders diagnostics by kind then first path, stably
func SortDiagnostics(ds []Diagnostic) {
	slices.SortStableFunc(ds, func(a, b Diagnostic) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return strings.Compare(firstPath(a), firstPath(b))
	})
}

func firstPath(d Diagnostic) string {
	if len(d.Paths) == 0 {
		return ""
	}
	return d.Paths[0]
}

// DiagnosticsError is returned by a strict load when validation reports findings.
// It matches ErrCorruptIndex.
type DiagnosticsError struct {
	Diagnostics []Diagnostic
}

func (e *DiagnosticsError) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return ErrCorruptIndex.Error()
	case 1:
		return fmt.Sprintf("%s: %s", ErrCorruptIndex, e.Diagnostics[0])
	}
	return fmt.Sprintf("%s: %d problems, first: %s", ErrCorruptIndex, len(e.Diagnostics), e.Diagnostics[0])
}

func (e *DiagnosticsError) Is(target error) bool {
	return target == ErrCorruptIndex
}
