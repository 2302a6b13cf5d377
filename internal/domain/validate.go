package domain

// Validate checks a model for numbering invariants without mutating it:
// sibling duplicates, children outside their parent's span, and orphans.
// It is meant for models loaded from a file that may have been edited by hand.
func Validate(m *Model) []Diagnostic {
	var out []Diagnostic

	areaSeen := make(map[Number]string)
	for _, a := range m.Areas {
		if kept, dup := areaSeen[a.Number]; dup {
			out = append(out, DuplicateDiagnostic(a.Number, kept, a.Path))
		} else {
			areaSeen[a.Number] = a.Path
		}

		catSeen := make(map[Number]string)
		for _, c := range a.Categories {
			if kept, dup := catSeen[c.Number]; dup {
				out = append(out, DuplicateDiagnostic(c.Number, kept, c.Path))
			} else {
				catSeen[c.Number] = c.Path
			}
			if !a.InRange(c) {
				out = append(out, OutOfRangeDiagnostic(c.Entry, a.Number))
			}

			slotSeen := make(map[int]string)
			for _, e := range c.IDs {
				if kept, dup := slotSeen[e.Number.ID()]; dup {
					out = append(out, DuplicateDiagnostic(e.Number, kept, e.Path))
				} else {
					slotSeen[e.Number.ID()] = e.Path
				}
				if !c.InRange(e) {
					out = append(out, OutOfRangeDiagnostic(e, c.Number))
				}
			}
		}
	}

	for _, o := range m.Orphans {
		out = append(out, OrphanDiagnostic(o.Path, o.Number, "has no parent in the index"))
	}

	SortDiagnostics(out)
	return out
}
