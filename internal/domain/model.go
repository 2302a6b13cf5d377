package domain

import (
	"path"
	"path/filepath"
	"slices"
)

// Entry is one indexed node: a number, the label that follows the number in
// the folder name, and the slash-separated path relative to the index root
type Entry struct {
	Number Number
	Label  string
	Path   string
}

// Name returns the folder name the entry is expected to have on disk
func (e Entry) Name() string {
	return path.Base(e.Path)
}

// JoinRoot turns a root-relative slash path into an absolute OS path
func JoinRoot(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// Abs returns the absolute path of an entry of this model
func (m *Model) Abs(e Entry) string {
	return JoinRoot(m.Root, e.Path)
}

// Area owns its categories, kept sorted by number
type Area struct {
	Entry
	Categories []*Category
}

// Category owns its IDs, kept sorted by number
type Category struct {
	Entry
	IDs []Entry
}

// Model is the in-memory index of one root. Ownership is strictly
// hierarchical: an Area owns Categories which own IDs. Lookups go by number.
//
// A model loaded from a hand-edited file may contain sibling duplicates and
// orphans; the scanner never produces either. Use Validate to find them.
type Model struct {
	Root    string // absolute path the model was scanned or loaded from
	Areas   []*Area
	Orphans []Entry // records whose parent is missing
}

// NewModel returns an empty model anchored at root
func NewModel(root string) *Model {
	return &Model{Root: root}
}

// AddArea inserts an area in number order. Duplicates are inserted after
// existing equal numbers.
func (m *Model) AddArea(e Entry) *Area {
	a := &Area{Entry: e}
	i := upperBound(m.Areas, e.Number, func(x *Area) Number { return x.Number })
	m.Areas = slices.Insert(m.Areas, i, a)
	return a
}

// AddCategory inserts a category in number order
func (a *Area) AddCategory(e Entry) *Category {
	c := &Category{Entry: e}
	i := upperBound(a.Categories, e.Number, func(x *Category) Number { return x.Number })
	a.Categories = slices.Insert(a.Categories, i, c)
	return c
}

// AddID inserts an ID in slot order
func (c *Category) AddID(e Entry) {
	i := upperBound(c.IDs, e.Number, func(x Entry) Number { return x.Number })
	c.IDs = slices.Insert(c.IDs, i, e)
}

// Area returns the first area with the given number
func (m *Model) Area(n Number) *Area {
	i, ok := slices.BinarySearchFunc(m.Areas, n, func(a *Area, t Number) int { return a.Number.Compare(t) })
	if !ok {
		return nil
	}
	return m.Areas[i]
}

// Category returns the first category numbered n inside area a
func (a *Area) Category(n Number) *Category {
	i, ok := slices.BinarySearchFunc(a.Categories, n, func(c *Category, t Number) int { return c.Number.Compare(t) })
	if !ok {
		return nil
	}
	return a.Categories[i]
}

// Slot returns the first ID occupying slot id, whatever its category prefix
func (c *Category) Slot(id int) (Entry, bool) {
	for _, e := range c.IDs {
		if e.Number.ID() == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Category returns category n when it is indexed inside its own area
func (m *Model) Category(n Number) *Category {
	a := m.Area(n.AreaNumber())
	if a == nil {
		return nil
	}
	return a.Category(n.CategoryNumber())
}

// FindCategories returns every category numbered n, in-range or not
func (m *Model) FindCategories(n Number) []*Category {
	var found []*Category
	for _, a := range m.Areas {
		for _, c := range a.Categories {
			if c.Number == n {
				found = append(found, c)
			}
		}
	}
	return found
}

// FindIDs returns every ID numbered n, whichever category holds it
func (m *Model) FindIDs(n Number) []Entry {
	var found []Entry
	for _, a := range m.Areas {
		for _, c := range a.Categories {
			for _, e := range c.IDs {
				if e.Number == n {
					found = append(found, e)
				}
			}
		}
	}
	return found
}

// FindAreas returns every area numbered n
func (m *Model) FindAreas(n Number) []*Area {
	var found []*Area
	for _, a := range m.Areas {
		if a.Number == n {
			found = append(found, a)
		}
	}
	return found
}

// Counts returns the number of areas, categories and IDs in the tree
func (m *Model) Counts() (areas, categories, ids int) {
	for _, a := range m.Areas {
		areas++
		for _, c := range a.Categories {
			categories++
			ids += len(c.IDs)
		}
	}
	return areas, categories, ids
}

// Entries returns every entry depth-first: each area, then each of its
// categories followed by that category's IDs. Orphans come last.
func (m *Model) Entries() []Entry {
	var out []Entry
	for _, a := range m.Areas {
		out = append(out, a.Entry)
		for _, c := range a.Categories {
			out = append(out, c.Entry)
			out = append(out, c.IDs...)
		}
	}
	return append(out, m.Orphans...)
}

// InRange reports whether category c belongs to area a's numeric span
func (a *Area) InRange(c *Category) bool {
	return c.Number.Area() == a.Number.Area()
}

// InRange reports whether an ID carries this category's number
func (c *Category) InRange(e Entry) bool {
	return e.Number.Category() == c.Number.Category()
}

// upperBound returns the index after the last element whose number is <= n
func upperBound[T any](s []T, n Number, num func(T) Number) int {
	i, _ := slices.BinarySearchFunc(s, n, func(x T, t Number) int {
		if num(x).Compare(t) <= 0 {
			return -1
		}
		return 1
	})
	return i
}
