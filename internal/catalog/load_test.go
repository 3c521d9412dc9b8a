package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dcrodman/objdefs/internal/registry"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("error creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("error writing %s: %v", path, err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "movers.yaml"), "version: \"3\"\nlast_id: 20\nentries:\n"+
		"- namespace: MI\n  name: MI_MALE\n  value: 11\n"+
		"- namespace: MI\n  name: MI_BUFF\n  value: 15\n  deprecated: true\n")
	writeFile(t, filepath.Join(dir, "regions.json"), `{"version":"3","entries":[{"namespace":"RI","name":"RI_TRIGGER","value":10}]}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "nothing to see")

	f, err := LoadFile(filepath.Join(dir, "movers.yaml"), "")
	if err != nil {
		t.Fatalf("LoadFile() returned an unexpected error: %v", err)
	}
	if f.Version != "3" || f.LastID != 20 || len(f.Entries) != 2 || !f.Entries[1].Deprecated {
		t.Errorf("LoadFile(movers.yaml) = %+v", f)
	}

	f, err = LoadFile(filepath.Join(dir, "regions.json"), "")
	if err != nil {
		t.Fatalf("LoadFile() returned an unexpected error: %v", err)
	}
	if len(f.Entries) != 1 || f.Entries[0].Name != "RI_TRIGGER" {
		t.Errorf("LoadFile(regions.json) = %+v", f)
	}

	if _, err := LoadFile(filepath.Join(dir, "notes.txt"), ""); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadFile(notes.txt) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.csv"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing.csv) error = %v, want os.ErrNotExist", err)
	}
	if _, err := LoadFile(defineObjFile, "klingon"); err == nil {
		t.Error("LoadFile() accepted an unknown text encoding")
	}
}

func TestLoadFile_Header(t *testing.T) {
	f, err := LoadFile(defineObjFile, "windows-949")
	if err != nil {
		t.Fatalf("LoadFile() returned an unexpected error: %v", err)
	}
	if f.LastID != 3230 {
		t.Errorf("LastID = %d, want 3230", f.LastID)
	}
	reg, err := f.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	if err := reg.CheckCounts(SnapshotCounts); err != nil {
		t.Errorf("header counts drifted from the migration snapshot: %v", err)
	}
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "nested", "movers.csv"), "# LAST ID = 30\nname,value\nMI_MALE,11\nMI_FEMALE,12\n")
	writeFile(t, filepath.Join(dir, "a", "ctrl.csv"), "# version: 7\n# LAST ID = 25\nname,value\nCI_CHEST01,25\n")
	writeFile(t, filepath.Join(dir, "a", "ignored.json"), `{"entries":[{"namespace":"OI","name":"OI_DEFAULT","value":10}]}`)

	f, err := LoadGlob(filepath.Join(dir, "**", "*.csv"), "")
	if err != nil {
		t.Fatalf("LoadGlob() returned an unexpected error: %v", err)
	}
	if f.Version != "7" || f.LastID != 30 {
		t.Errorf("LoadGlob() version, last ID = %q, %d; want \"7\", 30", f.Version, f.LastID)
	}
	var names []string
	for _, e := range f.Entries {
		names = append(names, e.Name)
	}
	want := []string{"CI_CHEST01", "MI_MALE", "MI_FEMALE"}
	if len(names) != len(want) {
		t.Fatalf("LoadGlob() entries = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("LoadGlob() entries = %v, want %v", names, want)
			break
		}
	}

	if _, err := LoadGlob(filepath.Join(dir, "**", "*.yaml"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadGlob() with no matches error = %v, want os.ErrNotExist", err)
	}
}

func TestOpen(t *testing.T) {
	reg, err := Open("", "")
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	if reg.Count(registry.Mover) != SnapshotCounts[registry.Mover] {
		t.Errorf("Open(\"\") did not return the embedded table")
	}

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.csv"), "name,value\nMI_MALE,11\n")
	writeFile(t, filepath.Join(dir, "two.csv"), "name,value\nMI_FEMALE,11\n")

	reg, err = Open(filepath.Join(dir, "*.csv"), "")
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	// Files are merged as-is; the clash is left to validation.
	if n := reg.Validate().Count(registry.Collision); n != 1 {
		t.Errorf("merged registry has %d collisions, want 1", n)
	}

	reg, err = Open(filepath.Join(dir, "one.csv"), "")
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Open(one.csv) Len() = %d, want 1", reg.Len())
	}
}
