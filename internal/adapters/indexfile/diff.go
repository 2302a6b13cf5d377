package indexfile

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between two versions of an index file.
// It returns an empty string when they are identical.
func Diff(before, after []byte) string {
	if string(before) == string(after) {
		return ""
	}

	from := "a/" + FileName
	if before == nil {
		from = "/dev/null"
	}

	s, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(before)),
		B:        splitLinesKeepNL(string(after)),
		FromFile: from,
		ToFile:   "b/" + FileName,
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return s
}

func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
