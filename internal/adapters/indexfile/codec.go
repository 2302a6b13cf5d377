package indexfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"jd/internal/domain"
)

// Version is the newest index format this package reads and the one it writes
const Version = 1

const header = `# Johnny Decimal index. Maps numbers to folders below this directory.
# Rebuild with "jd index". Hand edits are checked by "jd validate".
`

type indexFile struct {
	Version int      `yaml:"version"`
	Entries []record `yaml:"entries"`
}

type record struct {
	Level  string `yaml:"level"`
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
	Path   string `yaml:"path"`
}

// Encode renders a model in the index file format. The output depends only
// on the model, so encoding the same model twice gives identical bytes.
func Encode(m *domain.Model) ([]byte, error) {
	entries := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range m.Entries() {
		entries.Content = append(entries.Content, recordNode(e))
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("version", "!!str"), scalar(fmt.Sprint(Version), "!!int"),
			scalar("entries", "!!str"), entries,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return buf.Bytes(), nil
}

// recordNode renders one entry as a single-line flow mapping
func recordNode(e domain.Entry) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.MappingNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			scalar("level", "!!str"), scalar(e.Number.Level().String(), "!!str"),
			scalar("number", "!!str"), scalar(e.Number.String(), "!!str"),
			scalar("label", "!!str"), scalar(e.Label, "!!str"),
			scalar("path", "!!str"), scalar(e.Path, "!!str"),
		},
	}
}

// scalar with an explicit tag; the encoder quotes values such as "11" or
// "11.04" that would otherwise read back as numbers
func scalar(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// Decode parses index file bytes into a model anchored at root. Every
// problem with the content is reported as ErrCorruptIndex.
func Decode(data []byte, root string) (*domain.Model, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	var probe struct {
		Version int `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, corrupt("invalid YAML: %v", err)
	}
	switch {
	case probe.Version == 0:
		return nil, corrupt("missing version")
	case probe.Version > Version:
		return nil, corrupt("unsupported version %d (this jd reads up to %d)", probe.Version, Version)
	}

	var file indexFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, corrupt("empty file")
		}
		return nil, corrupt("%v", err)
	}

	return build(file.Entries, root)
}

// build links records to their parents by path. Records whose parent is
// absent become orphans, in file order.
func build(records []record, root string) (*domain.Model, error) {
	m := domain.NewModel(root)

	entries := make([]domain.Entry, 0, len(records))
	for i, r := range records {
		e, err := r.entry()
		if err != nil {
			return nil, corrupt("entry %d: %v", i+1, err)
		}
		entries = append(entries, e)
	}

	areas := make(map[string]*domain.Area)
	categories := make(map[string]*domain.Category)
	orphan := make([]bool, len(entries))

	for _, level := range []domain.Level{domain.LevelArea, domain.LevelCategory, domain.LevelID} {
		for i, e := range entries {
			if e.Number.Level() != level {
				continue
			}
			parent := path.Dir(e.Path)

			switch level {
			case domain.LevelArea:
				if parent != "." {
					orphan[i] = true
					continue
				}
				a := m.AddArea(e)
				if _, seen := areas[e.Path]; !seen {
					areas[e.Path] = a
				}
			case domain.LevelCategory:
				a, ok := areas[parent]
				if !ok {
					orphan[i] = true
					continue
				}
				c := a.AddCategory(e)
				if _, seen := categories[e.Path]; !seen {
					categories[e.Path] = c
				}
			case domain.LevelID:
				c, ok := categories[parent]
				if !ok {
					orphan[i] = true
					continue
				}
				c.AddID(e)
			}
		}
	}

	for i, e := range entries {
		if orphan[i] {
			m.Orphans = append(m.Orphans, e)
		}
	}
	return m, nil
}

func (r record) entry() (domain.Entry, error) {
	level := domain.ParseLevel(r.Level)
	if level == domain.LevelUnknown {
		return domain.Entry{}, fmt.Errorf("unknown level %q", r.Level)
	}

	n, err := domain.ParseNumberAt(level, r.Number)
	if err != nil {
		return domain.Entry{}, err
	}

	if r.Label == "" {
		return domain.Entry{}, fmt.Errorf("%s %s has an empty label", level, n)
	}
	if err := checkPath(r.Path); err != nil {
		return domain.Entry{}, fmt.Errorf("%s %s: %w", level, n, err)
	}

	return domain.Entry{Number: n, Label: r.Label, Path: r.Path}, nil
}

// checkPath accepts clean, relative, slash-separated paths only
func checkPath(p string) error {
	switch {
	case p == "":
		return errors.New("empty path")
	case strings.HasPrefix(p, "/") || strings.Contains(p, `\`):
		return fmt.Errorf("path %q must be relative and use forward slashes", p)
	case path.Clean(p) != p || p == "." || p == ".." || strings.HasPrefix(p, "../"):
		return fmt.Errorf("path %q is not clean or leaves the root", p)
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrCorruptIndex, fmt.Sprintf(format, args...))
}
