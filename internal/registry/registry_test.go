package registry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func entry(name string, value int) Entry {
	ns, _ := NamespaceOf(name)
	return Entry{Namespace: ns, Name: name, Value: value}
}

func retired(name string, value int) Entry {
	e := entry(name, value)
	e.Deprecated = true
	return e
}

func newTestRegistry(t *testing.T, entries ...Entry) *Registry {
	t.Helper()
	r, err := New(entries)
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}
	return r
}

func TestNamespaceOf(t *testing.T) {
	tests := []struct {
		name   string
		want   Namespace
		wantOK bool
	}{
		{name: "CI_CHEST01", want: Ctrl, wantOK: true},
		{name: "MI_MALE", want: Mover, wantOK: true},
		{name: "XI_DEFAULT", want: Sfx, wantOK: true},
		{name: "RI_TRIGGER", want: Region, wantOK: true},
		{name: "OI_DEFAULT", want: Object, wantOK: true},
		{name: "II_WEA_SWO_WOODEN", wantOK: false},
		{name: "ZZ_1", wantOK: false},
		{name: "EVIL_PREFIX_x", wantOK: false},
		{name: "__DEFINE_OBJ", wantOK: false},
		{name: "MI_", wantOK: false},
		{name: "MI", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NamespaceOf(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NamespaceOf(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseNamespace(t *testing.T) {
	for input, want := range map[string]Namespace{
		"MI": Mover, "mi": Mover, "MI_": Mover, "mover": Mover,
		"ctrl": Ctrl, "XI": Sfx, " region ": Region, "obj": Object,
	} {
		got, err := ParseNamespace(input)
		if err != nil {
			t.Fatalf("ParseNamespace(%q) returned an unexpected error: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseNamespace(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := ParseNamespace("II"); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("ParseNamespace(II) error = %v, want ErrUnknownNamespace", err)
	}
}

func TestNew_RejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "empty name", entry: Entry{Namespace: Mover}},
		{name: "unknown prefix", entry: Entry{Namespace: Mover, Name: "II_SWORD", Value: 1}},
		{name: "namespace mismatch", entry: Entry{Namespace: Ctrl, Name: "MI_MALE", Value: 11}},
		{name: "negative value", entry: Entry{Namespace: Mover, Name: "MI_MALE", Value: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Entry{tt.entry}); !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("New() error = %v, want ErrInvalidEntry", err)
			}
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := newTestRegistry(t,
		entry("CI_CHEST01", 25),
		entry("MI_MALE", 11),
		entry("MI_FEMALE", 12),
		retired("MI_BUFF", 15),
	)

	value, err := r.Value("CI_CHEST01")
	if err != nil || value != 25 {
		t.Errorf("Value(CI_CHEST01) = %d, %v; want 25", value, err)
	}
	if _, err := r.Value("MI_BUFF"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("Value(MI_BUFF) error = %v, want ErrUnknownName for retired entries", err)
	}
	if _, ok := r.Lookup("MI_NOPE"); ok {
		t.Error("Lookup(MI_NOPE) found an entry that does not exist")
	}

	if name, ok := r.NameOf(Mover, 12); !ok || name != "MI_FEMALE" {
		t.Errorf("NameOf(MI, 12) = %q, %v; want MI_FEMALE", name, ok)
	}
	// Values are scoped per namespace.
	if _, ok := r.NameOf(Ctrl, 12); ok {
		t.Error("NameOf(CI, 12) resolved a value that only exists in MI")
	}
	if !r.IsReserved(Mover, 15) || r.IsReserved(Mover, 12) {
		t.Error("IsReserved() did not report exactly the retired slot")
	}
}

func TestRegistry_Entries(t *testing.T) {
	r := newTestRegistry(t,
		entry("MI_FEMALE", 12),
		entry("MI_DEFAULT", 10),
		retired("MI_HEROINE", 16),
		entry("MI_MALE", 11),
		retired("MI_BUFF", 15),
		entry("RI_TRIGGER", 10),
	)

	var got []string
	for _, e := range r.Entries(Mover) {
		got = append(got, e.Name)
	}
	if diff := cmp.Diff([]string{"MI_DEFAULT", "MI_MALE", "MI_FEMALE"}, got); diff != "" {
		t.Errorf("Entries(MI) returned the wrong order; diff:\n%s", diff)
	}

	got = nil
	for _, e := range r.Retired(Mover) {
		got = append(got, e.Name)
	}
	if diff := cmp.Diff([]string{"MI_BUFF", "MI_HEROINE"}, got); diff != "" {
		t.Errorf("Retired(MI) returned the wrong entries; diff:\n%s", diff)
	}

	want := map[Namespace]int{Object: 0, Ctrl: 0, Sfx: 0, Mover: 3, Region: 1}
	if diff := cmp.Diff(want, r.Counts()); diff != "" {
		t.Errorf("Counts() mismatch; diff:\n%s", diff)
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	if len(r.All()) != 6 {
		t.Errorf("All() returned %d entries, want 6", len(r.All()))
	}

	// Mutating a returned slice must not leak into the registry.
	list := r.Entries(Mover)
	list[0].Value = 999
	if v, _ := r.Value("MI_DEFAULT"); v != 10 {
		t.Errorf("registry was mutated through Entries(); MI_DEFAULT = %d", v)
	}
}

func TestRegistry_NextID(t *testing.T) {
	r := newTestRegistry(t,
		entry("MI_DEFAULT", 10),
		entry("MI_MALE", 11),
		retired("MI_OLDBOSS", 40),
		entry("CI_CHEST01", 25),
		entry("RI_TRIGGER", 10),
		entry("RI_PLACE", 15),
	)

	tests := []struct {
		ns   Namespace
		want int
	}{
		// Retired slots are never reclaimed.
		{ns: Mover, want: 41},
		{ns: Ctrl, want: 26},
		{ns: Region, want: 16},
		{ns: Sfx, want: 0},
	}
	for _, tt := range tests {
		if got := r.NextID(tt.ns); got != tt.want {
			t.Errorf("NextID(%s) = %d, want %d", tt.ns, got, tt.want)
		}
	}
	if got := r.LastID(); got != 40 {
		t.Errorf("LastID() = %d, want 40", got)
	}
	if got := r.NextGlobalID(); got != 41 {
		t.Errorf("NextGlobalID() = %d, want 41", got)
	}
}

func TestRegistry_RedefinitionLastWins(t *testing.T) {
	r := newTestRegistry(t,
		entry("MI_AIBATT1", 20),
		entry("MI_AIBATT1", 30),
	)
	if v, _ := r.Value("MI_AIBATT1"); v != 30 {
		t.Errorf("Value(MI_AIBATT1) = %d, want the later definition 30", v)
	}
	if r.Count(Mover) != 1 {
		t.Errorf("Count(MI) = %d, want 1", r.Count(Mover))
	}
}

func TestRegistry_CheckCounts(t *testing.T) {
	r := newTestRegistry(t, entry("MI_MALE", 11), entry("MI_FEMALE", 12), entry("CI_CHEST01", 25))

	if err := r.CheckCounts(map[Namespace]int{Mover: 2, Ctrl: 1}); err != nil {
		t.Errorf("CheckCounts() returned an unexpected error: %v", err)
	}
	if err := r.CheckCounts(map[Namespace]int{Mover: 3, Ctrl: 1}); err == nil {
		t.Error("CheckCounts() did not detect a lost entry")
	}
}
