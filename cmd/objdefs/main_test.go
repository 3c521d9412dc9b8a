package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/defines"
	"github.com/dcrodman/objdefs/internal/registry"
)

const testHeader = "// mover\n" +
	"#define MI_MALE\t\t11\n" +
	"#define MI_FEMALE\t\t12\n" +
	"//#define MI_BUFF\t\t15\n"

// run executes the command line and returns everything written to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("objdefs %s returned an unexpected error: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("error writing %s: %v", path, err)
	}
	return path
}

func TestLookupCommands(t *testing.T) {
	if out := mustRun(t, "lookup", "MI_MALE", "CI_CHEST01", "RI_TRIGGER"); out != "MI_MALE = 11\nCI_CHEST01 = 25\nRI_TRIGGER = 10\n" {
		t.Errorf("lookup output = %q", out)
	}
	if out := mustRun(t, "lookup", "--dump", "MI_FEMALE"); !strings.Contains(out, "Value: (int) 12") {
		t.Errorf("lookup --dump output = %q", out)
	}
	if _, err := run(t, "lookup", "MI_MALE", "MI_NOT_A_THING"); err == nil {
		t.Error("lookup of an unknown name succeeded")
	}

	if out := mustRun(t, "name", "mover", "11"); out != "MI_MALE\n" {
		t.Errorf("name output = %q, want MI_MALE", out)
	}
	if _, err := run(t, "name", "MI", "eleven"); err == nil {
		t.Error("name accepted a non-numeric value")
	}
	if _, err := run(t, "name", "ZZ", "11"); err == nil {
		t.Error("name accepted an unknown namespace")
	}

	if out := mustRun(t, "next", "RI"); out != "RI\t16\nglobal\t3432\n" {
		t.Errorf("next output = %q", out)
	}
	out := mustRun(t, "list", "RI")
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 6 || !strings.HasPrefix(lines[0], "RI_TRIGGER") {
		t.Errorf("list RI output = %q", out)
	}
}

func TestValidateCommand(t *testing.T) {
	// The embedded table only carries historical warnings.
	if out := mustRun(t, "validate"); !strings.Contains(out, "0 errors") {
		t.Errorf("validate output = %q", out)
	}
	if _, err := run(t, "validate", "--strict"); err == nil {
		t.Error("validate --strict passed despite warnings")
	}

	collisions := writeFile(t, "ids.csv", "name,value\nMI_MALE,11\nMI_HERO,11\n")
	out, err := run(t, "--source", collisions, "validate")
	if err == nil {
		t.Fatal("validate passed a registry with a collision")
	}
	if !strings.Contains(out, "MI_MALE, MI_HERO") {
		t.Errorf("validate output does not name the colliding identifiers: %q", out)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ids.csv", "ids.json", "ids.yaml", "ids.h"} {
		path := filepath.Join(dir, name)
		mustRun(t, "export", "--output", path)

		f, err := catalog.LoadFile(path, "")
		if err != nil {
			t.Fatalf("LoadFile(%s) returned an unexpected error: %v", name, err)
		}
		if len(f.Entries) != len(mustDefault(t).All()) {
			t.Errorf("%s has %d entries, want %d", name, len(f.Entries), len(mustDefault(t).All()))
		}
		if out := mustRun(t, "diff", path); !strings.HasSuffix(out, "0 changes, 0 breaking\n") {
			t.Errorf("diff against exported %s = %q", name, out)
		}
	}

	out := mustRun(t, "export", "--format", "go", "--package", "ids")
	if !strings.Contains(out, "package ids") || !strings.Contains(out, "MI_MALE") {
		t.Errorf("Go export is missing the package clause or constants")
	}
	if _, err := run(t, "export"); err == nil {
		t.Error("export to stdout without --format succeeded")
	}
	if _, err := run(t, "export", "--format", "xml"); !errors.Is(err, catalog.ErrUnknownFormat) {
		t.Errorf("export --format xml error = %v, want ErrUnknownFormat", err)
	}
}

func TestDiffCommand(t *testing.T) {
	old := writeFile(t, "old.csv", "name,value\nMI_MALE,11\nMI_FEMALE,12\n")
	next := writeFile(t, "next.csv", "name,value\nMI_MALE,11\nMI_FEMALE,13\nMI_HERO,14\n")

	out, err := run(t, "--source", next, "diff", old)
	if !errors.Is(err, errBreakingChanges) {
		t.Errorf("diff error = %v, want errBreakingChanges", err)
	}
	if !strings.Contains(out, "! MI_FEMALE 12 -> 13") || !strings.Contains(out, "+ MI_HERO = 14") {
		t.Errorf("diff output = %q", out)
	}
	if _, err := run(t, "--source", next, "diff", "--allow-breaking", old); err != nil {
		t.Errorf("diff --allow-breaking returned an unexpected error: %v", err)
	}
}

func TestEditCommands(t *testing.T) {
	header := writeFile(t, "defineObj.h", testHeader)

	if out := mustRun(t, "--source", header, "add", "--per-namespace", "--comment", "hero", "MI_HERO"); out != "MI_HERO = 16\n" {
		t.Errorf("add output = %q, want MI_HERO = 16", out)
	}
	if _, err := run(t, "--source", header, "set", "MI_HERO", "12"); !errors.Is(err, defines.ErrValueInUse) {
		t.Errorf("set to a used value error = %v, want ErrValueInUse", err)
	}
	if _, err := run(t, "--source", header, "set", "MI_HERO", "15"); !errors.Is(err, defines.ErrValueReserved) {
		t.Errorf("set to a retired value error = %v, want ErrValueReserved", err)
	}
	mustRun(t, "--source", header, "set", "MI_HERO", "20")

	f, err := catalog.LoadFile(header, "")
	if err != nil {
		t.Fatalf("LoadFile() returned an unexpected error: %v", err)
	}
	reg, err := f.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	if e, ok := reg.Lookup("MI_HERO"); !ok || e.Value != 20 || e.Comment != "hero" {
		t.Errorf("edited header has MI_HERO = %+v", e)
	}

	if _, err := run(t, "set", "MI_MALE", "30"); err == nil {
		t.Error("set edited the embedded table")
	}
	csv := writeFile(t, "ids.csv", "name,value\nMI_MALE,11\n")
	if _, err := run(t, "--source", csv, "add", "MI_HERO"); err == nil {
		t.Error("add edited a data file")
	}
}

func TestAddCommand_Allocation(t *testing.T) {
	header := writeFile(t, "defineObj.h", "#define CI_DOOR01\t\t27\n"+testHeader)

	// The file-wide counter runs past CI_DOOR01.
	if out := mustRun(t, "--source", header, "add", "MI_HERO"); out != "MI_HERO = 28\n" {
		t.Errorf("add output = %q, want MI_HERO = 28", out)
	}
	if out := mustRun(t, "--source", header, "add", "--per-namespace", "RI_SPAWN"); out != "RI_SPAWN = 0\n" {
		t.Errorf("add --per-namespace output = %q, want RI_SPAWN = 0", out)
	}
	if out := mustRun(t, "add", "--help"); !strings.Contains(out, "file-wide LAST ID counter") {
		t.Errorf("add --help does not describe the default numbering:\n%s", out)
	}
}

func TestDBCommands(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "-c", dir, "db", "verify"); err == nil {
		t.Fatal("db verify succeeded without a snapshot")
	}

	out := mustRun(t, "-c", dir, "db", "import")
	fields := strings.Fields(out)
	if len(fields) < 3 || fields[0] != "created" {
		t.Fatalf("unexpected db import output %q", out)
	}
	id := fields[2]

	if out := mustRun(t, "-c", dir, "db", "verify"); !strings.Contains(out, "registry matches snapshot "+id) {
		t.Errorf("db verify output = %q", out)
	}
	if out := mustRun(t, "-c", dir, "db", "list"); !strings.Contains(out, id) || !strings.Contains(out, "embedded") {
		t.Errorf("db list output = %q", out)
	}

	// Dropping every identifier but one is a breaking change.
	small := writeFile(t, "ids.csv", "name,value\nMI_MALE,11\n")
	out, err := run(t, "-c", dir, "--source", small, "db", "verify", "--snapshot", id)
	if !errors.Is(err, errBreakingChanges) {
		t.Errorf("db verify of a shrunken registry error = %v, want errBreakingChanges", err)
	}
	if !strings.Contains(out, "- CI_CHEST01 = 25") {
		t.Errorf("db verify does not list removed identifiers")
	}

	if out := mustRun(t, "-c", dir, "db", "drop", id); !strings.Contains(out, "deleted snapshot "+id) {
		t.Errorf("db drop output = %q", out)
	}
	if _, err := run(t, "-c", dir, "db", "drop", id); err == nil {
		t.Error("db drop of a deleted snapshot succeeded")
	}
}

func mustDefault(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default() returned an unexpected error: %v", err)
	}
	return reg
}
