package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dcrodman/objdefs/internal/defines"
	"github.com/dcrodman/objdefs/internal/registry"
)

// LoadFile reads a header or data file, picking the parser from the file's
// extension. textEncoding only applies to header comments; empty selects
// the default.
func LoadFile(path, textEncoding string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	if format == Header {
		enc, err := defines.LookupEncoding(textEncoding)
		if err != nil {
			return nil, err
		}
		doc, err := defines.ParseFile(path, defines.WithEncoding(enc))
		if err != nil {
			return nil, err
		}
		return &File{LastID: doc.DeclaredLastID(), Entries: doc.Entries()}, nil
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Decode(fd, format)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return f, nil
}

// LoadGlob merges every file matching pattern, which may use ** to match
// any number of directories. Files are read in lexical order and the
// largest declared last ID is kept.
func LoadGlob(pattern, textEncoding string) (*File, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q: %w", pattern, os.ErrNotExist)
	}
	sort.Strings(matches)

	merged := &File{}
	for _, path := range matches {
		f, err := LoadFile(path, textEncoding)
		if err != nil {
			return nil, err
		}
		if merged.Version == "" {
			merged.Version = f.Version
		}
		if f.LastID > merged.LastID {
			merged.LastID = f.LastID
		}
		merged.Entries = append(merged.Entries, f.Entries...)
	}
	return merged, nil
}

// Open resolves a registry source: the embedded table when source is empty,
// a glob when it contains pattern characters, a single file otherwise.
func Open(source, textEncoding string) (*registry.Registry, error) {
	if source == "" {
		return Default()
	}

	var (
		f   *File
		err error
	)
	if strings.ContainsAny(source, "*?[{") {
		f, err = LoadGlob(source, textEncoding)
	} else {
		f, err = LoadFile(source, textEncoding)
	}
	if err != nil {
		return nil, err
	}
	reg, err := f.Registry()
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", source, err)
	}
	return reg, nil
}
