package defines

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dcrodman/objdefs/internal/registry"
)

const defineObjFile = "testdata/defineObj.h"

const sampleHeader = "#ifndef __DEFINE_OBJ\n" +
	"#define __DEFINE_OBJ\n" +
	"\n" +
	"//  LAST ID = 30   #\n" +
	"// ctrl\n" +
	"#define CI_DEFAULT                            10\n" +
	"#define CI_CHEST01\t\t\t\t\t\t\t25\t\t\t\n" +
	"#define\tCI_DOOR01 \t\t0x1B\n" +
	"/*\n" +
	"#define CI_CRAFTMATS01 \t                            188\n" +
	"#define CI_CRAFTMATS02 \t                            189 // old mats\n" +
	"*/\n" +
	"// Mover\n" +
	"#define MI_MALE                              11\n" +
	"#define MI_FEMALE                            12 // heroine\n" +
	"//#define MI_BUFF                              15\n" +
	"#define MI_AIBATT1 20 /* inline */ \n" +
	"#define RI_TRIGGER 10\n" +
	"#endif\n"

func mustParse(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse() returned an unexpected error: %v", err)
	}
	return doc
}

func TestParse(t *testing.T) {
	doc := mustParse(t, sampleHeader)

	want := []registry.Entry{
		{Namespace: registry.Ctrl, Name: "CI_DEFAULT", Value: 10, Line: 6},
		{Namespace: registry.Ctrl, Name: "CI_CHEST01", Value: 25, Line: 7},
		{Namespace: registry.Ctrl, Name: "CI_DOOR01", Value: 27, Line: 8},
		{Namespace: registry.Ctrl, Name: "CI_CRAFTMATS01", Value: 188, Deprecated: true, Line: 10},
		{Namespace: registry.Ctrl, Name: "CI_CRAFTMATS02", Value: 189, Deprecated: true, Comment: "old mats", Line: 11},
		{Namespace: registry.Mover, Name: "MI_MALE", Value: 11, Line: 14},
		{Namespace: registry.Mover, Name: "MI_FEMALE", Value: 12, Comment: "heroine", Line: 15},
		{Namespace: registry.Mover, Name: "MI_BUFF", Value: 15, Deprecated: true, Line: 16},
		{Namespace: registry.Mover, Name: "MI_AIBATT1", Value: 20, Line: 17},
		{Namespace: registry.Region, Name: "RI_TRIGGER", Value: 10, Line: 18},
	}
	if diff := cmp.Diff(want, doc.Entries()); diff != "" {
		t.Errorf("Parse() entries mismatch; diff:\n%s", diff)
	}
	if doc.DeclaredLastID() != 30 {
		t.Errorf("DeclaredLastID() = %d, want 30", doc.DeclaredLastID())
	}
	if doc.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1 (the include guard)", doc.Skipped())
	}
	if got := string(doc.Bytes()); got != sampleHeader {
		t.Errorf("unmodified document did not round trip; got:\n%s", got)
	}
}

func TestParse_LineCommentInsideBlock(t *testing.T) {
	doc := mustParse(t, "#define CI_A 10\n/*\n//#define CI_X 7\t// spare\n*/\n")

	want := []registry.Entry{
		{Namespace: registry.Ctrl, Name: "CI_A", Value: 10, Line: 1},
		{Namespace: registry.Ctrl, Name: "CI_X", Value: 7, Deprecated: true, Comment: "spare", Line: 3},
	}
	if diff := cmp.Diff(want, doc.Entries()); diff != "" {
		t.Errorf("Parse() entries mismatch; diff:\n%s", diff)
	}

	reg, err := doc.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	if !reg.IsReserved(registry.Ctrl, 7) {
		t.Error("IsReserved(CI, 7) = false for a define retired inside a block")
	}
	if got := reg.NextID(registry.Ctrl); got != 11 {
		t.Errorf("NextID(CI) = %d, want 11", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{name: "expression value", content: "#define MI_MALE\t(10+1)\n", wantLine: 1},
		{name: "missing value", content: "\n#define XI_DEFAULT\n", wantLine: 2},
		{name: "negative value", content: "\n\n#define RI_PLACE -15\n", wantLine: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.content))
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse() error = %v, want a *ParseError", err)
			}
			if parseErr.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", parseErr.Line, tt.wantLine)
			}
		})
	}

	// Unreadable values inside comments are not compiled and are ignored.
	doc := mustParse(t, "/*\n#define MI_MALE (10+1)\n*/\n//#define MI_FEMALE\n")
	if len(doc.Entries()) != 0 {
		t.Errorf("Parse() returned entries for commented-out garbage: %v", doc.Entries())
	}
}

func TestParse_PreservesLineEndingsAndBOM(t *testing.T) {
	content := "\xEF\xBB\xBF#define MI_MALE 11\r\n#define MI_FEMALE 12\r\n#define MI_DEFAULT 10"
	doc := mustParse(t, content)
	if len(doc.Entries()) != 3 {
		t.Fatalf("Parse() returned %d entries, want 3", len(doc.Entries()))
	}
	if got := string(doc.Bytes()); got != content {
		t.Errorf("Bytes() = %q, want %q", got, content)
	}
}

func TestParse_DecodesComments(t *testing.T) {
	// "보스" in EUC-KR.
	doc := mustParse(t, "#define MI_BOSS 3058 // \xba\xb8\xbd\xba\n")
	if got := doc.Entries()[0].Comment; got != "보스" {
		t.Errorf("Comment = %q, want %q", got, "보스")
	}

	enc, err := LookupEncoding("windows-1252")
	if err != nil {
		t.Fatalf("LookupEncoding() returned an unexpected error: %v", err)
	}
	doc, err = Parse(strings.NewReader("#define MI_CAFE 1 // caf\xe9\n"), WithEncoding(enc))
	if err != nil {
		t.Fatalf("Parse() returned an unexpected error: %v", err)
	}
	if got := doc.Entries()[0].Comment; got != "café" {
		t.Errorf("Comment = %q, want %q", got, "café")
	}

	if _, err := LookupEncoding("klingon"); err == nil {
		t.Error("LookupEncoding() accepted an unknown label")
	}
}

func TestParse_DefineObj(t *testing.T) {
	raw, err := os.ReadFile(defineObjFile)
	if err != nil {
		t.Fatalf("error opening %s: %v", defineObjFile, err)
	}
	doc, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse() returned an unexpected error: %v", err)
	}
	if !bytes.Equal(doc.Bytes(), raw) {
		t.Fatal("unmodified defineObj.h did not round trip byte for byte")
	}
	if doc.NumLines() != 4670 {
		t.Errorf("NumLines() = %d, want 4670", doc.NumLines())
	}
	if doc.DeclaredLastID() != 3230 {
		t.Errorf("DeclaredLastID() = %d, want 3230", doc.DeclaredLastID())
	}

	reg, err := doc.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	wantActive := map[registry.Namespace]int{
		registry.Object: 1, registry.Ctrl: 398, registry.Sfx: 1496, registry.Mover: 1714, registry.Region: 6,
	}
	if diff := cmp.Diff(wantActive, reg.Counts()); diff != "" {
		t.Errorf("active counts mismatch; diff:\n%s", diff)
	}
	wantRetired := map[registry.Namespace]int{registry.Ctrl: 199, registry.Sfx: 16, registry.Mover: 74}
	for ns, want := range wantRetired {
		if got := reg.RetiredCount(ns); got != want {
			t.Errorf("RetiredCount(%s) = %d, want %d", ns, got, want)
		}
	}

	for name, want := range map[string]int{
		"OI_DEFAULT":               10,
		"CI_CHEST01":               25,
		"CI_CRAFTMATS01":           3231,
		"CI_CRAFTMATS199":          3429,
		"XI_HIT_CRITICAL01":        11,
		"XI_SKILL_TRO_PARTYPOWER":  1510,
		"MI_MALE":                  11,
		"MI_FEMALE":                12,
		"MI_NPC_PRIESTACHIEVEMENT": 3430,
		"MI_PET_098_1":             3431,
		"RI_TRIGGER":               10,
		"RI_PLACE":                 15,
	} {
		if got, err := reg.Value(name); err != nil || got != want {
			t.Errorf("Value(%s) = %d, %v; want %d", name, got, err, want)
		}
	}
	if e, _ := reg.Lookup("XI_SKILL_TRO_PARTYPOWER"); e.Comment != "Party Power Skill - Kiyo" {
		t.Errorf("XI_SKILL_TRO_PARTYPOWER comment = %q", e.Comment)
	}
	if _, ok := reg.Lookup("MI_BUFF"); ok {
		t.Error("retired MI_BUFF resolved as an active entry")
	}

	report := reg.Validate()
	wantFindings := map[registry.FindingKind]int{
		registry.Collision:           0,
		registry.Redefinition:        0,
		registry.RetiredRedefinition: 265,
		registry.RetiredValueReuse:   80,
		registry.StaleLastID:         1,
	}
	for kind, want := range wantFindings {
		if got := report.Count(kind); got != want {
			t.Errorf("Validate() found %d %s, want %d", got, kind, want)
		}
	}
	if report.HasErrors() {
		t.Errorf("Validate() reported errors: %v", report.Err())
	}
	if reg.LastID() != 3431 || reg.NextGlobalID() != 3432 {
		t.Errorf("LastID() = %d, NextGlobalID() = %d; want 3431, 3432", reg.LastID(), reg.NextGlobalID())
	}
}

func TestParseFile(t *testing.T) {
	doc, err := ParseFile(defineObjFile)
	if err != nil {
		t.Fatalf("ParseFile() returned an unexpected error: %v", err)
	}
	if len(doc.Entries()) != 3615+289 {
		t.Errorf("ParseFile() returned %d entries, want %d", len(doc.Entries()), 3615+289)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.h")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestDocument_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defineObj.h")
	if err := os.WriteFile(path, []byte(sampleHeader), 0600); err != nil {
		t.Fatalf("error writing test header: %v", err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() returned an unexpected error: %v", err)
	}
	if err := doc.SetValue("MI_FEMALE", 13, false); err != nil {
		t.Fatalf("SetValue() returned an unexpected error: %v", err)
	}
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() returned an unexpected error: %v", err)
	}
	if doc.Modified() {
		t.Error("Modified() still true after WriteFile()")
	}

	reread, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff(doc.Entries(), reread.Entries(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("rewritten header parsed differently; diff:\n%s", diff)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("error reading file info: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("WriteFile() changed the file mode to %v", info.Mode().Perm())
	}
}
