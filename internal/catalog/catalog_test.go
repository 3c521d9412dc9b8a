package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dcrodman/objdefs/internal/defines"
	"github.com/dcrodman/objdefs/internal/registry"
)

const defineObjFile = "../defines/testdata/defineObj.h"

func loadDefault(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() returned an unexpected error: %v", err)
	}
	return reg
}

func TestDefault_Counts(t *testing.T) {
	reg := loadDefault(t)
	if err := reg.CheckCounts(SnapshotCounts); err != nil {
		t.Errorf("active counts drifted from the migration snapshot: %v", err)
	}
	for _, ns := range registry.Namespaces {
		if got, want := reg.RetiredCount(ns), RetiredCounts[ns]; got != want {
			t.Errorf("RetiredCount(%s) = %d, want %d", ns, got, want)
		}
	}
	if reg.DeclaredLastID() != 3230 {
		t.Errorf("DeclaredLastID() = %d, want 3230", reg.DeclaredLastID())
	}
	if reg.NextGlobalID() != 3432 {
		t.Errorf("NextGlobalID() = %d, want 3432", reg.NextGlobalID())
	}

	again, _ := Default()
	if again != reg {
		t.Error("Default() built a second registry")
	}
}

func TestDefault_Values(t *testing.T) {
	reg := loadDefault(t)
	for name, want := range map[string]int{
		"OI_DEFAULT":        10,
		"CI_CHEST01":        25,
		"CI_CRAFTMATS01":    3231,
		"XI_HIT_CRITICAL01": 11,
		"XI_ITEM_WAND_ATK2": 101,
		"MI_MALE":           11,
		"MI_FEMALE":         12,
		"MI_PET_098_1":      3431,
		"RI_TRIGGER":        10,
	} {
		if got, err := reg.Value(name); err != nil || got != want {
			t.Errorf("Value(%s) = %d, %v; want %d", name, got, err, want)
		}
	}
	if e, _ := reg.Lookup("XI_ITEM_WAND_ATK2"); e.Comment != "2003-10-27" {
		t.Errorf("XI_ITEM_WAND_ATK2 comment = %q, want %q", e.Comment, "2003-10-27")
	}
}

func TestDefault_ActiveValuesAreUnique(t *testing.T) {
	reg := loadDefault(t)
	for _, ns := range registry.Namespaces {
		seen := make(map[int]string)
		for _, e := range reg.Entries(ns) {
			if other, ok := seen[e.Value]; ok {
				t.Errorf("%s and %s share %s value %d", other, e.Name, ns, e.Value)
			}
			seen[e.Value] = e.Name
		}
	}
	if report := reg.Validate(); report.HasErrors() {
		t.Errorf("Validate() reported errors: %v", report.Err())
	}
}

func TestDefault_RegionBlock(t *testing.T) {
	reg := loadDefault(t)
	var got []int
	for _, e := range reg.Entries(registry.Region) {
		got = append(got, e.Value)
	}
	want := []int{10, 11, 12, 13, 14, 15}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RI_ values are not the contiguous block 10-15; diff:\n%s", diff)
	}
}

// The embedded table must stay in lockstep with the header it was migrated
// from: same names, values and retirement flags, in the same order.
func TestDefault_MatchesHeader(t *testing.T) {
	doc, err := defines.ParseFile(defineObjFile)
	if err != nil {
		t.Fatalf("ParseFile() returned an unexpected error: %v", err)
	}
	fromHeader := doc.Entries()
	fromData := loadDefault(t).All()
	if len(fromHeader) != len(fromData) {
		t.Fatalf("header has %d entries, data file has %d", len(fromHeader), len(fromData))
	}

	for i := range fromHeader {
		h, d := fromHeader[i], fromData[i]
		if h.Namespace != d.Namespace || h.Name != d.Name || h.Value != d.Value || h.Deprecated != d.Deprecated {
			t.Errorf("entry %d: header has %v, data file has %v", i, h, d)
		}
		if isASCII(h.Comment) && h.Comment != d.Comment {
			t.Errorf("%s comment: header has %q, data file has %q", h.Name, h.Comment, d.Comment)
		}
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
