package defines

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dcrodman/objdefs/internal/registry"
)

func TestDocument_SetValue(t *testing.T) {
	doc := mustParse(t, sampleHeader)

	if err := doc.SetValue("CI_CHEST01", 125, false); err != nil {
		t.Fatalf("SetValue() returned an unexpected error: %v", err)
	}
	if !doc.Modified() {
		t.Error("Modified() = false after SetValue()")
	}

	// Only the digits change; the tabs around them survive.
	want := strings.Replace(sampleHeader, "#define CI_CHEST01\t\t\t\t\t\t\t25\t\t\t", "#define CI_CHEST01\t\t\t\t\t\t\t125\t\t\t", 1)
	if got := string(doc.Bytes()); got != want {
		t.Errorf("SetValue() produced unexpected output:\n%s", got)
	}

	reg, err := doc.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	if v, _ := reg.Value("CI_CHEST01"); v != 125 {
		t.Errorf("Value(CI_CHEST01) = %d after SetValue(), want 125", v)
	}

	// Shrinking the value back keeps the rest of the line intact too.
	if err := doc.SetValue("CI_CHEST01", 25, false); err != nil {
		t.Fatalf("SetValue() returned an unexpected error: %v", err)
	}
	if got := string(doc.Bytes()); got != sampleHeader {
		t.Errorf("restoring the old value did not restore the file:\n%s", got)
	}
}

func TestDocument_SetValue_Errors(t *testing.T) {
	tests := []struct {
		name    string
		define  string
		value   int
		force   bool
		wantErr error
	}{
		{name: "unknown name", define: "MI_NOPE", value: 1, wantErr: ErrNotActive},
		{name: "retired name", define: "MI_BUFF", value: 99, wantErr: ErrNotActive},
		{name: "negative", define: "MI_MALE", value: -1, wantErr: registry.ErrInvalidEntry},
		{name: "collision", define: "MI_MALE", value: 12, wantErr: ErrValueInUse},
		{name: "retired slot", define: "MI_MALE", value: 15, wantErr: ErrValueReserved},
		{name: "forced retired slot", define: "MI_MALE", value: 15, force: true},
		// Values are per namespace, so CI 11 does not clash with MI_MALE.
		{name: "other namespace", define: "CI_CHEST01", value: 11},
		{name: "unchanged", define: "MI_MALE", value: 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, sampleHeader)
			err := doc.SetValue(tt.define, tt.value, tt.force)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("SetValue() returned an unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetValue() error = %v, want %v", err, tt.wantErr)
			}
			if doc.Modified() {
				t.Error("a rejected SetValue() modified the document")
			}
		})
	}
}

func TestDocument_Append(t *testing.T) {
	doc := mustParse(t, sampleHeader)

	e, err := doc.Append("MI_NPC_NEWGUIDE", "tutorial guide", AllocateGlobal)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	// The global counter runs past the highest value in any namespace,
	// retired slots included (CI_CRAFTMATS02 at 189).
	if e.Value != 190 {
		t.Errorf("Append() allocated %d, want 190", e.Value)
	}
	// Inserted straight after MI_AIBATT1 on line 17.
	if e.Line != 18 {
		t.Errorf("Append() inserted at line %d, want 18", e.Line)
	}

	r, err := doc.Append("RI_SPAWN", "", AllocateNamespace)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if r.Value != 11 {
		t.Errorf("Append(RI_SPAWN) allocated %d, want 11", r.Value)
	}

	x, err := doc.Append("XI_NEWFX", "", AllocateNamespace)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if x.Value != 0 {
		t.Errorf("Append(XI_NEWFX) allocated %d in an empty namespace, want 0", x.Value)
	}

	reparsed := mustParse(t, string(doc.Bytes()))
	reg, err := reparsed.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	got, ok := reg.Lookup("MI_NPC_NEWGUIDE")
	if !ok || got.Value != 190 || got.Comment != "tutorial guide" {
		t.Errorf("appended define did not survive a reparse: %+v", got)
	}
	if v, _ := reg.Value("RI_SPAWN"); v != 11 {
		t.Errorf("Value(RI_SPAWN) = %d, want 11", v)
	}
	// The empty namespace goes right before #endif.
	lines := strings.Split(strings.TrimSuffix(string(doc.Bytes()), "\n"), "\n")
	if lines[len(lines)-2] != "#define XI_NEWFX\t0" || lines[len(lines)-1] != "#endif" {
		t.Errorf("unexpected tail of document: %q", lines[len(lines)-2:])
	}
	// Line numbers of the defines after the insertion point moved down.
	if e, _ := reg.Lookup("RI_TRIGGER"); e.Line != 19 {
		t.Errorf("RI_TRIGGER moved to line %d, want 19", e.Line)
	}
	for _, e := range doc.Entries() {
		if e.Name == "RI_TRIGGER" && e.Line != 19 {
			t.Errorf("document kept stale line %d for RI_TRIGGER", e.Line)
		}
	}

	if _, err := doc.Append("MI_MALE", "", AllocateGlobal); !errors.Is(err, ErrNameInUse) {
		t.Errorf("Append(MI_MALE) error = %v, want ErrNameInUse", err)
	}
	if _, err := doc.Append("II_SWORD", "", AllocateGlobal); !errors.Is(err, registry.ErrInvalidEntry) {
		t.Errorf("Append(II_SWORD) error = %v, want ErrInvalidEntry", err)
	}
}

func TestDocument_AppendThenSetValue(t *testing.T) {
	doc := mustParse(t, "#define MI_MALE 11\r\n#define MI_FEMALE 12")
	if _, err := doc.Append("MI_HERO", "", AllocateNamespace); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if err := doc.SetValue("MI_HERO", 1000, false); err != nil {
		t.Fatalf("SetValue() returned an unexpected error: %v", err)
	}
	want := "#define MI_MALE 11\r\n#define MI_FEMALE 12\r\n#define MI_HERO\t1000"
	if got := string(doc.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestDocument_SetValue_DefineObj(t *testing.T) {
	doc, err := ParseFile(defineObjFile)
	if err != nil {
		t.Fatalf("ParseFile() returned an unexpected error: %v", err)
	}
	before := doc.Bytes()

	if err := doc.SetValue("MI_PET_098_1", 3432, false); err != nil {
		t.Fatalf("SetValue() returned an unexpected error: %v", err)
	}
	after := doc.Bytes()
	if len(after) != len(before) {
		t.Fatalf("SetValue() changed the file size from %d to %d", len(before), len(after))
	}
	if n := bytes.Count(after, []byte("3432")); n != 1 {
		t.Errorf("found %d occurrences of the new value, want 1", n)
	}
	if !bytes.Equal(bytes.Replace(after, []byte("3432"), []byte("3431"), 1), before) {
		t.Error("SetValue() touched more than the value digits")
	}
}

func TestDocument_Append_SkipsOpenBlockComment(t *testing.T) {
	doc := mustParse(t, "#define CI_A 10 /* old ones\n#define CI_B 11\n*/\n#endif\n")

	e, err := doc.Append("CI_NEW", "", AllocateGlobal)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if e.Value != 12 || e.Line != 4 {
		t.Errorf("Append() = %+v at line %d, want value 12 at line 4", e, e.Line)
	}
	want := "#define CI_A 10 /* old ones\n#define CI_B 11\n*/\n#define CI_NEW\t12\n#endif\n"
	if got := string(doc.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}

	reparsed := mustParse(t, string(doc.Bytes()))
	reg, err := reparsed.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	if got, ok := reg.Lookup("CI_NEW"); !ok || got.Value != 12 {
		t.Errorf("appended define is not active after a reparse: %+v", got)
	}

	// The #endif fallback must not land inside a block either.
	doc = mustParse(t, "#define CI_A 10\n/*\n#endif\n*/\n")
	x, err := doc.Append("XI_NEW", "", AllocateNamespace)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if x.Line != 5 {
		t.Errorf("Append(XI_NEW) inserted at line %d, want 5", x.Line)
	}
}

func TestDocument_Append_UnclosedBlockComment(t *testing.T) {
	doc := mustParse(t, "#define CI_A 10 /* never closed\n#define CI_B 11\n")
	if _, err := doc.Append("CI_NEW", "", AllocateGlobal); !errors.Is(err, ErrOpenComment) {
		t.Errorf("Append() error = %v, want ErrOpenComment", err)
	}
	if doc.Modified() {
		t.Error("a failed Append() modified the document")
	}
}

func TestDocument_Append_CommentStaysOnOneLine(t *testing.T) {
	doc := mustParse(t, "#define CI_A 10\n")
	if _, err := doc.Append("CI_B", "first\r\n#define CI_EVIL 99", AllocateGlobal); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	reparsed := mustParse(t, string(doc.Bytes()))
	if n := len(reparsed.Entries()); n != 2 {
		t.Fatalf("reparsed document has %d entries, want 2: %v", n, reparsed.Entries())
	}
	if got := reparsed.Entries()[1].Comment; got != "first #define CI_EVIL 99" {
		t.Errorf("Comment = %q", got)
	}
}
