package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name     string
		entries  []Entry
		lastID   int
		want     []Finding
		wantErrs bool
	}{
		{
			name:    "clean",
			entries: []Entry{entry("MI_MALE", 11), entry("MI_FEMALE", 12), entry("CI_CHEST01", 11)},
		},
		{
			name:    "collision",
			entries: []Entry{entry("MI_MALE", 11), entry("MI_FEMALE", 11)},
			want: []Finding{{
				Kind: Collision, Severity: Error, Namespace: Mover, Value: 11,
				Names: []string{"MI_MALE", "MI_FEMALE"},
			}},
			wantErrs: true,
		},
		{
			name:    "redefinition",
			entries: []Entry{entry("CI_CHEST01", 25), entry("CI_CHEST01", 26)},
			want: []Finding{{
				Kind: Redefinition, Severity: Error, Namespace: Ctrl, Value: 26,
				Names: []string{"CI_CHEST01"},
			}},
			wantErrs: true,
		},
		{
			name: "retired name is active again",
			entries: []Entry{
				retired("CI_CRAFTMATS01", 188),
				entry("CI_CRAFTMATS01", 3231),
			},
			want: []Finding{{
				Kind: RetiredRedefinition, Severity: Warning, Namespace: Ctrl, Value: 3231,
				Names: []string{"CI_CRAFTMATS01"},
			}},
		},
		{
			name: "restored at the same value is fine",
			entries: []Entry{
				retired("MI_AIBATT1", 20),
				entry("MI_AIBATT1", 20),
			},
		},
		{
			name: "retired slot reused",
			entries: []Entry{
				retired("XI_EXPLOSION", 11),
				entry("XI_HIT_CRITICAL01", 11),
			},
			want: []Finding{{
				Kind: RetiredValueReuse, Severity: Warning, Namespace: Sfx, Value: 11,
				Names: []string{"XI_HIT_CRITICAL01", "XI_EXPLOSION"},
			}},
		},
		{
			name:    "stale last id",
			entries: []Entry{entry("MI_PET_098_1", 3431)},
			lastID:  3097,
			want:    []Finding{{Kind: StaleLastID, Severity: Warning, Value: 3431}},
		},
		{
			name:    "current last id",
			entries: []Entry{entry("MI_PET_098_1", 3431)},
			lastID:  3431,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.entries, WithDeclaredLastID(tt.lastID))
			if err != nil {
				t.Fatalf("New() returned an unexpected error: %v", err)
			}

			report := r.Validate()
			if diff := cmp.Diff(tt.want, report.Findings, cmpopts.IgnoreFields(Finding{}, "Message"), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Validate() findings mismatch; diff:\n%s", diff)
			}
			if report.HasErrors() != tt.wantErrs {
				t.Errorf("HasErrors() = %v, want %v", report.HasErrors(), tt.wantErrs)
			}
			if (report.Err() != nil) != tt.wantErrs {
				t.Errorf("Err() = %v, wantErrs %v", report.Err(), tt.wantErrs)
			}
		})
	}
}

func TestReport_ErrorsSortedFirst(t *testing.T) {
	r := newTestRegistry(t,
		retired("XI_EXPLOSION", 11),
		entry("XI_HIT_CRITICAL01", 11),
		entry("MI_MALE", 11),
		entry("MI_FEMALE", 11),
	)
	report := r.Validate()
	if len(report.Findings) != 2 {
		t.Fatalf("Validate() returned %d findings, want 2", len(report.Findings))
	}
	if report.Findings[0].Kind != Collision {
		t.Errorf("first finding = %s, want the collision", report.Findings[0].Kind)
	}
	if len(report.Warnings()) != 1 || report.Count(RetiredValueReuse) != 1 {
		t.Errorf("Warnings() = %v, want the single slot reuse", report.Warnings())
	}
}
