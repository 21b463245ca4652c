package roster

import (
	"testing"

	"tableflip.dev/hajz/pkg/session"
)

func sampleRoster() []*session.Student {
	return []*session.Student{
		{ID: "st-1", Name: "Omar Farouk", Phone: "0101234567"},
		{ID: "st-2", Name: "laila hassan", Phone: "0119876543"},
		{ID: "st-3", Name: "Yusuf Omar", Phone: "0123450000"},
	}
}

func TestEmptyQueryReturnsFullRosterInOrder(t *testing.T) {
	f := NewFilter(sampleRoster())
	got := f.Matches()
	if len(got) != 3 {
		t.Fatalf("expected 3 students, got %d", len(got))
	}
	for i, id := range []string{"st-1", "st-2", "st-3"} {
		if got[i].ID != id {
			t.Fatalf("order broken at %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestNameMatchIsCaseInsensitive(t *testing.T) {
	f := NewFilter(sampleRoster())
	f.SetQuery("LAILA")
	got := f.Matches()
	if len(got) != 1 || got[0].ID != "st-2" {
		t.Fatalf("unexpected matches: %v", got)
	}
	f.SetQuery("omar")
	if got := f.Matches(); len(got) != 2 {
		t.Fatalf("expected both Omars, got %d", len(got))
	}
}

func TestPhoneSubstringMatch(t *testing.T) {
	f := NewFilter(sampleRoster())
	f.SetQuery("98765")
	got := f.Matches()
	if len(got) != 1 || got[0].ID != "st-2" {
		t.Fatalf("unexpected matches: %v", got)
	}
}

func TestNoMatchReturnsEmpty(t *testing.T) {
	f := NewFilter(sampleRoster())
	f.SetQuery("zzz")
	if got := f.Matches(); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestRosterChangeRestartsView(t *testing.T) {
	f := NewFilter(sampleRoster())
	f.SetQuery("omar")
	f.SetRoster([]*session.Student{{ID: "st-9", Name: "Omar Adel", Phone: "0100000000"}})
	got := f.Matches()
	if len(got) != 1 || got[0].ID != "st-9" {
		t.Fatalf("filter did not recompute over new roster: %v", got)
	}
	if f.Query() != "omar" {
		t.Fatalf("query should survive roster swap")
	}
}

func TestFind(t *testing.T) {
	students := sampleRoster()
	if s, ok := Find(students, "st-2"); !ok || s.Name != "laila hassan" {
		t.Fatalf("Find(st-2) = %v, %v", s, ok)
	}
	if _, ok := Find(students, "missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if _, ok := Find(students, ""); ok {
		t.Fatalf("empty id must not resolve")
	}
}
