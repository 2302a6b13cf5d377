package domain

import (
	"path/filepath"
	"testing"
)

func TestModel_ChildrenStaySorted(t *testing.T) {
	m := NewModel("/jd")
	m.AddArea(entry(t, "30-39", "C", "30-39 C"))
	m.AddArea(entry(t, "10-19", "A", "10-19 A"))
	a := m.AddArea(entry(t, "20-29", "B", "20-29 B"))

	a.AddCategory(entry(t, "23", "z", "20-29 B/23 z"))
	c := a.AddCategory(entry(t, "21", "x", "20-29 B/21 x"))
	a.AddCategory(entry(t, "22", "y", "20-29 B/22 y"))

	c.AddID(entry(t, "21.10", "j", "20-29 B/21 x/21.10 j"))
	c.AddID(entry(t, "21.02", "i", "20-29 B/21 x/21.02 i"))
	c.AddID(entry(t, "21.00", "h", "20-29 B/21 x/21.00 h"))

	var got []string
	for _, e := range m.Entries() {
		got = append(got, e.Number.String())
	}
	want := []string{"10-19", "20-29", "21", "21.00", "21.02", "21.10", "22", "23", "30-39"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestModel_DuplicatesKeepInsertionOrder(t *testing.T) {
	m := NewModel("/jd")
	a := m.AddArea(entry(t, "10-19", "A", "10-19 A"))
	c := a.AddCategory(entry(t, "11", "x", "10-19 A/11 x"))
	c.AddID(entry(t, "11.01", "first", "10-19 A/11 x/11.01 first"))
	c.AddID(entry(t, "11.01", "second", "10-19 A/11 x/11.01 second"))

	if c.IDs[0].Label != "first" || c.IDs[1].Label != "second" {
		t.Errorf("expected stable order, got %q then %q", c.IDs[0].Label, c.IDs[1].Label)
	}

	e, ok := c.Slot(1)
	if !ok || e.Label != "first" {
		t.Errorf("Slot(1) = %+v, %v", e, ok)
	}
}

func TestModel_Lookups(t *testing.T) {
	m := testModel(t)

	if a := m.Area(mustNumber(t, "20-29")); a == nil || a.Label != "Home" {
		t.Errorf("Area(20-29) = %+v", a)
	}
	if a := m.Area(mustNumber(t, "50-59")); a != nil {
		t.Errorf("Area(50-59) should be nil")
	}
	if c := m.Category(mustNumber(t, "11")); c == nil || c.Label != "Taxes" {
		t.Errorf("Category(11) = %+v", c)
	}
	if c := m.Category(mustNumber(t, "13")); c != nil {
		t.Errorf("Category(13) should be nil")
	}

	areas, categories, ids := m.Counts()
	if areas != 2 || categories != 3 || ids != 3 {
		t.Errorf("Counts = %d %d %d, want 2 3 3", areas, categories, ids)
	}
}

func TestModel_Abs(t *testing.T) {
	m := NewModel(filepath.FromSlash("/jd"))
	got := m.Abs(Entry{Path: "10-19 A/11 x"})
	want := filepath.Join(filepath.FromSlash("/jd"), "10-19 A", "11 x")
	if got != want {
		t.Errorf("Abs = %q, want %q", got, want)
	}
}
