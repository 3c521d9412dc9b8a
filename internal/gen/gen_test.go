package gen

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/registry"
)

const wantSource = `// Code generated by objdefs export; DO NOT EDIT.

package ids

// Version of the identifier table these constants were generated from.
const Version = "test"

// Object holds generic object IDs (OI_).
type Object int32

// Ctrl holds item, container and furniture IDs (CI_).
type Ctrl int32

// Sfx holds visual and sound effect IDs (XI_).
type Sfx int32

// Mover holds NPC, monster and pet IDs (MI_).
type Mover int32

const (
	MI_MALE   Mover = 11
	MI_FEMALE Mover = 12
)

// Region holds region and trigger IDs (RI_).
type Region int32

const (
	RI_TRIGGER Region = 10
)
`

func TestSource(t *testing.T) {
	reg, err := registry.New([]registry.Entry{
		{Namespace: registry.Mover, Name: "MI_FEMALE", Value: 12},
		{Namespace: registry.Mover, Name: "MI_MALE", Value: 11},
		{Namespace: registry.Mover, Name: "MI_BUFF", Value: 15, Deprecated: true},
		{Namespace: registry.Region, Name: "RI_TRIGGER", Value: 10},
	})
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}

	src, err := Source(reg, Options{Package: "ids", Version: "test"})
	if err != nil {
		t.Fatalf("Source() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff(wantSource, string(src)); diff != "" {
		t.Errorf("Source() mismatch; diff:\n%s", diff)
	}

	if _, err := Source(reg, Options{Package: "not a package"}); err == nil {
		t.Error("Source() accepted an invalid package name")
	}
}

// pkg/objid is committed; regenerate it whenever the embedded table changes.
func TestGeneratedPackageIsCurrent(t *testing.T) {
	reg, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default() returned an unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Generate(&buf, reg, Options{Version: catalog.Version}); err != nil {
		t.Fatalf("Generate() returned an unexpected error: %v", err)
	}

	committed, err := os.ReadFile("../../pkg/objid/objid_gen.go")
	if err != nil {
		t.Fatalf("error opening objid_gen.go: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), committed) {
		t.Error("pkg/objid/objid_gen.go is out of date; run go generate ./pkg/objid")
	}
}
