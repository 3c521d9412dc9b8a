package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dcrodman/objdefs/internal/registry"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "csv", want: CSV},
		{in: ".JSON", want: JSON},
		{in: "yml", want: YAML},
		{in: "yaml", want: YAML},
		{in: ".h", want: Header},
		{in: "txt", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := FormatOf("identifiers"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatOf() error = %v, want ErrUnknownFormat", err)
	}
	if f, _ := FormatOf("data/defineObj.h"); f != Header {
		t.Errorf("FormatOf(defineObj.h) = %q, want %q", f, Header)
	}
}

func TestDecode_CSV(t *testing.T) {
	content := "# version: 2.1\n" +
		"# Last ID - 40\n" +
		"name,value,comment,deprecated\n" +
		"MI_MALE,11,hero,\n" +
		"MI_FEMALE,12,\"heroine, the\",false\n" +
		"MI_BUFF,15,,true\n"

	f, err := Decode(strings.NewReader(content), CSV)
	if err != nil {
		t.Fatalf("Decode() returned an unexpected error: %v", err)
	}
	want := &File{
		Version: "2.1",
		LastID:  40,
		Entries: []registry.Entry{
			{Namespace: registry.Mover, Name: "MI_MALE", Value: 11, Comment: "hero"},
			{Namespace: registry.Mover, Name: "MI_FEMALE", Value: 12, Comment: "heroine, the"},
			{Namespace: registry.Mover, Name: "MI_BUFF", Value: 15, Deprecated: true},
		},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("Decode() mismatch; diff:\n%s", diff)
	}
}

func TestDecode_CSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "missing value column", content: "namespace,name\nMI,MI_MALE\n", wantErr: `missing the "value" column`},
		{name: "bad value", content: "name,value\nMI_MALE,eleven\n", wantErr: "line 2: MI_MALE has invalid value"},
		{name: "bad flag", content: "name,value,deprecated\nMI_MALE,11,maybe\n", wantErr: "invalid deprecated flag"},
		{name: "bad namespace", content: "namespace,name,value\nZZ,MI_MALE,11\n", wantErr: "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content), CSV)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Decode() error = %v, want one containing %q", err, tt.wantErr)
			}
		})
	}

	// A namespace column that disagrees with the prefix is caught when the
	// registry is built.
	f, err := Decode(strings.NewReader("namespace,name,value\nCI,MI_MALE,11\n"), CSV)
	if err != nil {
		t.Fatalf("Decode() returned an unexpected error: %v", err)
	}
	if _, err := f.Registry(); !errors.Is(err, registry.ErrInvalidEntry) {
		t.Errorf("Registry() error = %v, want ErrInvalidEntry", err)
	}
}

func TestCodecs_PreserveEmbeddedTable(t *testing.T) {
	reg := loadDefault(t)
	original := FromRegistry(reg, Version)

	for _, format := range []Format{CSV, JSON, YAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, format, original); err != nil {
				t.Fatalf("Encode() returned an unexpected error: %v", err)
			}
			decoded, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode() returned an unexpected error: %v", err)
			}
			if diff := cmp.Diff(original, decoded, cmpopts.IgnoreFields(registry.Entry{}, "Line")); diff != "" {
				t.Errorf("%s round trip mismatch; diff:\n%s", format, diff)
			}

			rebuilt, err := decoded.Registry()
			if err != nil {
				t.Fatalf("Registry() returned an unexpected error: %v", err)
			}
			if changes := registry.Diff(reg, rebuilt); len(changes) != 0 {
				t.Errorf("%s round trip changed identifiers: %v", format, changes)
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, Header, original); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(Header) error = %v, want ErrUnknownFormat", err)
	}
}
