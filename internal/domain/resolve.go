package domain

import "fmt"

// ResultKind describes what a resolution produced
type ResultKind int

const (
	// ResultExact means the query named an ID
	ResultExact ResultKind = iota + 1
	// ResultChildren means the query named a container with children
	ResultChildren
	// ResultEmpty means the query named a container with no children
	ResultEmpty
)

func (k ResultKind) String() string {
	switch k {
	case ResultExact:
		return "exact"
	case ResultChildren:
		return "children"
	case ResultEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Resolution is the answer to a query
type Resolution struct {
	Kind     ResultKind
	Target   Entry
	Children []Entry
}

// Location points at one node of a model: an area, a category inside it, or
// an ID inside that category. Unused fields are nil or -1.
type Location struct {
	Area     *Area
	Category *Category
	IDIndex  int
}

// Entry returns the entry the location points at
func (l Location) Entry() Entry {
	switch {
	case l.IDIndex >= 0:
		return l.Category.IDs[l.IDIndex]
	case l.Category != nil:
		return l.Category.Entry
	default:
		return l.Area.Entry
	}
}

// locateAll returns every node numbered n, in tree order
func locateAll(m *Model, n Number) []Location {
	var found []Location
	for _, a := range m.Areas {
		if n.Level() == LevelArea {
			if a.Number == n {
				found = append(found, Location{Area: a, IDIndex: -1})
			}
			continue
		}
		for _, c := range a.Categories {
			if n.Level() == LevelCategory {
				if c.Number == n {
					found = append(found, Location{Area: a, Category: c, IDIndex: -1})
				}
				continue
			}
			for i, e := range c.IDs {
				if e.Number == n {
					found = append(found, Location{Area: a, Category: c, IDIndex: i})
				}
			}
		}
	}
	return found
}

// Locate finds the single node numbered by query. A query that does not
// parse, matches nothing, or matches more than one node fails with ErrNotFound.
func Locate(m *Model, query string) (Location, error) {
	n, err := ParseQuery(query)
	if err != nil {
		return Location{}, err
	}

	found := locateAll(m, n)
	switch len(found) {
	case 0:
		return Location{}, fmt.Errorf("%w: %s %s is not in the index", ErrNotFound, n.Level(), n)
	case 1:
		return found[0], nil
	default:
		return Location{}, fmt.Errorf("%w: %s %s is ambiguous (%d entries)", ErrNotFound, n.Level(), n, len(found))
	}
}

// Resolve maps a query to a node of the model and its children
func Resolve(m *Model, query string) (Resolution, error) {
	loc, err := Locate(m, query)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Target: loc.Entry()}
	switch {
	case loc.IDIndex >= 0:
		res.Kind = ResultExact
		return res, nil
	case loc.Category != nil:
		res.Children = append([]Entry(nil), loc.Category.IDs...)
	default:
		for _, c := range loc.Area.Categories {
			res.Children = append(res.Children, c.Entry)
		}
	}

	if len(res.Children) == 0 {
		res.Kind = ResultEmpty
	} else {
		res.Kind = ResultChildren
	}
	return res, nil
}

// NextFreeID returns the smallest unoccupied ID slot (01-99) of a category.
// Every child occupies its slot, including children whose number belongs to
// another category. Slot 00 is never handed out.
func NextFreeID(m *Model, category Number) (Number, error) {
	if category.Level() != LevelCategory {
		return Number{}, fmt.Errorf("%w: %q is not a category number", ErrNoSuchCategory, category)
	}

	a := m.Area(category.AreaNumber())
	if a == nil {
		return Number{}, fmt.Errorf("category %s: %w: %w %s", category, ErrNoSuchCategory, ErrNoSuchArea, category.AreaNumber())
	}
	c := a.Category(category)
	if c == nil {
		return Number{}, fmt.Errorf("%w: %s", ErrNoSuchCategory, category)
	}

	var used [MaxID + 1]bool
	for _, e := range c.IDs {
		used[e.Number.ID()] = true
	}

	for id := FirstID; id <= MaxID; id++ {
		if !used[id] {
			return NewID(category.Category(), id)
		}
	}
	return Number{}, fmt.Errorf("%w: %s", ErrCategoryFull, category)
}

// NextFreeCategory returns the smallest unoccupied category of an area,
// skipping the area's first number (X0), which is kept for the area itself
func NextFreeCategory(m *Model, area Number) (Number, error) {
	if area.Level() != LevelArea {
		return Number{}, fmt.Errorf("%w: %q is not an area number", ErrNoSuchArea, area)
	}

	a := m.Area(area)
	if a == nil {
		return Number{}, fmt.Errorf("%w: %s", ErrNoSuchArea, area)
	}

	used := make(map[int]bool)
	for _, c := range a.Categories {
		used[c.Number.Category()] = true
	}

	start := area.Area()
	for c := start + 1; c <= start+9; c++ {
		if !used[c] {
			return NewCategory(c)
		}
	}
	return Number{}, fmt.Errorf("%w: %s", ErrAreaFull, area)
}

// Line is one row of a listing
type Line struct {
	Depth  int
	Kind   Level
	Entry  Entry
	Orphan bool
}

// Listing flattens the model for display. Without a query it lists the
// whole tree followed by orphans. With a query it lists the ancestors of the
// matched node, the node, and its subtree.
func Listing(m *Model, query string) ([]Line, error) {
	if query == "" {
		var lines []Line
		for _, a := range m.Areas {
			lines = appendArea(lines, a)
		}
		for _, o := range m.Orphans {
			lines = append(lines, Line{Kind: o.Number.Level(), Entry: o, Orphan: true})
		}
		return lines, nil
	}

	loc, err := Locate(m, query)
	if err != nil {
		return nil, err
	}

	switch {
	case loc.IDIndex >= 0:
		e := loc.Category.IDs[loc.IDIndex]
		return []Line{
			{Depth: 0, Kind: LevelArea, Entry: loc.Area.Entry},
			{Depth: 1, Kind: LevelCategory, Entry: loc.Category.Entry},
			{Depth: 2, Kind: LevelID, Entry: e},
		}, nil
	case loc.Category != nil:
		lines := []Line{{Depth: 0, Kind: LevelArea, Entry: loc.Area.Entry}}
		return appendCategory(lines, loc.Category), nil
	default:
		return appendArea(nil, loc.Area), nil
	}
}

func appendArea(lines []Line, a *Area) []Line {
	lines = append(lines, Line{Depth: 0, Kind: LevelArea, Entry: a.Entry})
	for _, c := range a.Categories {
		lines = appendCategory(lines, c)
	}
	return lines
}

func appendCategory(lines []Line, c *Category) []Line {
	lines = append(lines, Line{Depth: 1, Kind: LevelCategory, Entry: c.Entry})
	for _, e := range c.IDs {
		lines = append(lines, Line{Depth: 2, Kind: LevelID, Entry: e})
	}
	return lines
}
