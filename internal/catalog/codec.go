package catalog

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/dcrodman/objdefs/internal/registry"
)

// Format is the serialization of a data file.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
	// Header is a C header of #define lines. It is read and written by the
	// defines package rather than by Decode and Encode.
	Header Format = "h"
)

var ErrUnknownFormat = errors.New("unknown data file format")

var csvColumns = []string{"namespace", "name", "value", "deprecated", "comment"}

var (
	versionRegex = regexp.MustCompile(`(?i)^version\s*:\s*(\S+)`)
	lastIDRegex  = regexp.MustCompile(`(?i)^last\s+id\s*[=:-]\s*(\d+)`)
)

// ParseFormat accepts a format name or a file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "h", "hpp", "header":
		return Header, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf picks the format of path from its extension.
func FormatOf(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// File is the versioned, language neutral form of the identifier table.
type File struct {
	Version string `json:"version" yaml:"version"`
	// LastID is the "LAST ID" the table's source declared, if any.
	LastID  int              `json:"last_id,omitempty" yaml:"last_id,omitempty"`
	Entries []registry.Entry `json:"entries" yaml:"entries"`
}

// FromRegistry captures every entry of reg, retired ones included, in source
// order.
func FromRegistry(reg *registry.Registry, version string) *File {
	return &File{
		Version: version,
		LastID:  reg.DeclaredLastID(),
		Entries: reg.All(),
	}
}

// Registry builds a registry from the file's entries.
func (f *File) Registry() (*registry.Registry, error) {
	return registry.New(f.Entries, registry.WithDeclaredLastID(f.LastID))
}

// Decode reads a data file in the given format.
func Decode(r io.Reader, format Format) (*File, error) {
	switch format {
	case CSV:
		return decodeCSV(r)
	case JSON:
		var f File
		if err := json.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("error decoding JSON data file: %w", err)
		}
		return &f, nil
	case YAML:
		var f File
		if err := yaml.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("error decoding YAML data file: %w", err)
		}
		return &f, nil
	}
	return nil, fmt.Errorf("%w: cannot decode %q", ErrUnknownFormat, format)
}

// Encode writes f in the given format.
func Encode(w io.Writer, format Format, f *File) error {
	switch format {
	case CSV:
		return encodeCSV(w, f)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, format)
}

// CSV data files carry the version and last ID as leading # comments.
func decodeCSV(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading CSV data file: %w", err)
	}

	f := &File{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(text, "#") {
			break
		}
		text = strings.TrimSpace(strings.TrimPrefix(text, "#"))
		if m := versionRegex.FindStringSubmatch(text); m != nil {
			f.Version = m[1]
		} else if m := lastIDRegex.FindStringSubmatch(text); m != nil {
			f.LastID, _ = strconv.Atoi(m[1])
		}
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comment = '#'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "value"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV data file is missing the %q column", required)
		}
	}
	field := func(record []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV data file: %w", err)
		}
		line, _ := cr.FieldPos(0)

		e := registry.Entry{Name: field(record, "name"), Comment: field(record, "comment")}
		if e.Value, err = strconv.Atoi(field(record, "value")); err != nil {
			return nil, fmt.Errorf("line %d: %s has invalid value %q", line, e.Name, field(record, "value"))
		}
		if s := field(record, "deprecated"); s != "" {
			if e.Deprecated, err = strconv.ParseBool(s); err != nil {
				return nil, fmt.Errorf("line %d: %s has invalid deprecated flag %q", line, e.Name, s)
			}
		}
		if s := field(record, "namespace"); s != "" {
			if e.Namespace, err = registry.ParseNamespace(s); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		} else {
			e.Namespace, _ = registry.NamespaceOf(e.Name)
		}
		f.Entries = append(f.Entries, e)
	}
	return f, nil
}

func encodeCSV(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	if f.Version != "" {
		fmt.Fprintf(bw, "# version: %s\n", f.Version)
	}
	if f.LastID > 0 {
		fmt.Fprintf(bw, "# LAST ID = %d\n", f.LastID)
	}

	cw := csv.NewWriter(bw)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, e := range f.Entries {
		record := []string{
			string(e.Namespace),
			e.Name,
			strconv.Itoa(e.Value),
			strconv.FormatBool(e.Deprecated),
			e.Comment,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
