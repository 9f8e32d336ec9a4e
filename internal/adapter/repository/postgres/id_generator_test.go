package postgres

import (
	"sort"
	"testing"
)

func TestULIDGeneratorIssuesSortedIDs(t *testing.T) {
	g := NewULIDGenerator()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = g.Generate()
	}

	if !sort.StringsAreSorted(ids) {
		t.Fatal("expected IDs in issue order")
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestULIDGeneratorIDLength(t *testing.T) {
	g := NewULIDGenerator()

	if id := g.Generate(); len(id) != 26 {
		t.Fatalf("expected 26-char ULID, got %q", id)
	}
}
