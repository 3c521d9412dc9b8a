package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	old := newTestRegistry(t,
		entry("MI_MALE", 11),
		entry("MI_FEMALE", 12),
		entry("MI_BUFF", 15),
		entry("CI_CHEST01", 25),
		entry("CI_DOOR01", 27),
		retired("MI_HEROINE", 16),
	)
	next := newTestRegistry(t,
		entry("MI_MALE", 11),
		entry("MI_FEMALE", 13),
		retired("MI_BUFF", 15),
		entry("CI_CHEST01", 25),
		entry("MI_HEROINE", 16),
		entry("RI_PLACE", 15),
	)

	want := []Change{
		{Kind: Removed, Name: "CI_DOOR01", OldValue: 27},
		{Kind: Renumbered, Name: "MI_FEMALE", OldValue: 12, NewValue: 13},
		{Kind: Retired, Name: "MI_BUFF", OldValue: 15, NewValue: 15},
		{Kind: Restored, Name: "MI_HEROINE", OldValue: 16, NewValue: 16},
		{Kind: Added, Name: "RI_PLACE", NewValue: 15},
	}
	got := Diff(old, next)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff() mismatch; diff:\n%s", diff)
	}

	breaking := Breaking(got)
	if len(breaking) != 2 {
		t.Fatalf("Breaking() returned %d changes, want 2: %v", len(breaking), breaking)
	}
	if len(Diff(old, old)) != 0 {
		t.Error("Diff() of a registry against itself reported changes")
	}
}
