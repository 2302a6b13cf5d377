package views

import "jd/internal/domain"

// Node is one row of the browser tree
type Node struct {
	Entry    domain.Entry
	Level    domain.Level
	Orphan   bool
	Expanded bool
	Parent   *Node
	Children []*Node
}

// Depth returns the nesting level, 0 for areas and orphans
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// HasChildren reports whether the node can be expanded
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// BuildTree converts a model into collapsed browser nodes. Orphans follow
// the areas at the top level.
func BuildTree(m *domain.Model) []*Node {
	var roots []*Node
	for _, a := range m.Areas {
		an := &Node{Entry: a.Entry, Level: domain.LevelArea}
		for _, c := range a.Categories {
			cn := &Node{Entry: c.Entry, Level: domain.LevelCategory, Parent: an}
			for _, id := range c.IDs {
				cn.Children = append(cn.Children, &Node{Entry: id, Level: domain.LevelID, Parent: cn})
			}
			an.Children = append(an.Children, cn)
		}
		roots = append(roots, an)
	}
	for _, o := range m.Orphans {
		roots = append(roots, &Node{Entry: o, Level: o.Number.Level(), Orphan: true})
	}
	return roots
}

// Flatten lists the visible nodes in display order
func Flatten(roots []*Node) []*Node {
	var out []*Node
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n)
			if n.Expanded {
				walk(n.Children)
			}
		}
	}
	walk(roots)
	return out
}

// All lists every node regardless of expansion
func All(roots []*Node) []*Node {
	var out []*Node
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n)
			walk(n.Children)
		}
	}
	walk(roots)
	return out
}
