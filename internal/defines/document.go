// Package defines reads, edits and writes C headers made of #define
// identifier tables such as defineObj.h.
package defines

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/text/encoding"

	"github.com/dcrodman/objdefs/internal/registry"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	defineRegex = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s+(\S+))?`)
	lastIDRegex = regexp.MustCompile(`(?i)last\s+id\s*[=:-]\s*(\d+)`)
)

// ParseError is returned for a define that belongs to a known namespace but
// whose value is not an integer literal.
type ParseError struct {
	Line  int
	Name  string
	Value string
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d: %s has no value", e.Line, e.Name)
	}
	return fmt.Sprintf("line %d: %s has non-integer value %q", e.Line, e.Name, e.Value)
}

type line struct {
	text []byte
	eol  string
	// A /* comment is still open at the end of the line.
	inComment bool
}

// Location of a define's value within the document.
type valueRef struct {
	line       int
	start, end int
}

// Document is a parsed header. Every line is kept verbatim so that writing an
// unmodified document reproduces the input byte for byte.
type Document struct {
	lines   []line
	bom     bool
	enc     encoding.Encoding
	entries []registry.Entry
	refs    []valueRef

	lastID   int
	skipped  int
	modified bool
}

// Option configures Parse.
type Option func(*Document)

// WithEncoding sets the encoding used for comments. Defaults to EUC-KR.
func WithEncoding(enc encoding.Encoding) Option {
	return func(d *Document) { d.enc = enc }
}

// ParseFile is a convenience wrapper around Parse.
func ParseFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a header. Entries inside /* */ blocks or on //#define lines are
// returned as deprecated.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	if d.enc == nil {
		if d.enc, err = LookupEncoding(""); err != nil {
			return nil, err
		}
	}

	if bytes.HasPrefix(data, utf8BOM) {
		d.bom = true
		data = data[len(utf8BOM):]
	}
	d.lines = splitLines(data)

	inBlock := false
	for i := range d.lines {
		if inBlock, err = d.scanLine(i, inBlock); err != nil {
			return nil, err
		}
		d.lines[i].inComment = inBlock
	}
	return d, nil
}

func splitLines(data []byte) []line {
	var lines []line
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, line{text: data})
			break
		}
		text, eol := data[:i], "\n"
		if bytes.HasSuffix(text, []byte{'\r'}) {
			text, eol = text[:len(text)-1], "\r\n"
		}
		lines = append(lines, line{text: text, eol: eol})
		data = data[i+1:]
	}
	return lines
}

// scanLine extracts the defines of one line and returns whether a block
// comment is still open at its end.
func (d *Document) scanLine(idx int, inBlock bool) (bool, error) {
	text := d.lines[idx].text
	if m := lastIDRegex.FindSubmatch(text); m != nil {
		if n, err := strconv.Atoi(string(m[1])); err == nil && n > d.lastID {
			d.lastID = n
		}
	}

	pos := 0
	for pos < len(text) {
		rest := text[pos:]
		if inBlock {
			end := bytes.Index(rest, []byte("*/"))
			segment := rest
			if end >= 0 {
				segment = rest[:end]
			}
			code, comment := splitComment(segment)
			if !defineRegex.Match(code) && comment != nil {
				// A //#define inside the block is retired all the same.
				start := pos + len(segment) - len(comment)
				code, comment = splitComment(comment)
				if err := d.addDefine(idx, start, code, comment, true); err != nil {
					return inBlock, err
				}
			} else if err := d.addDefine(idx, pos, code, comment, true); err != nil {
				return inBlock, err
			}
			if end < 0 {
				return true, nil
			}
			inBlock = false
			pos += end + 2
			continue
		}

		lineComment := bytes.Index(rest, []byte("//"))
		blockComment := bytes.Index(rest, []byte("/*"))
		if blockComment >= 0 && (lineComment < 0 || blockComment < lineComment) {
			if err := d.addDefine(idx, pos, rest[:blockComment], nil, false); err != nil {
				return false, err
			}
			inBlock = true
			pos += blockComment + 2
			continue
		}
		if lineComment >= 0 {
			code, comment := rest[:lineComment], rest[lineComment+2:]
			if defineRegex.Match(code) {
				return false, d.addDefine(idx, pos, code, comment, false)
			}
			// //#define NAME VALUE retires a single entry.
			inner, innerComment := splitComment(comment)
			return false, d.addDefine(idx, pos+lineComment+2, inner, innerComment, true)
		}
		return false, d.addDefine(idx, pos, rest, nil, false)
	}
	return inBlock, nil
}

func splitComment(b []byte) ([]byte, []byte) {
	if i := bytes.Index(b, []byte("//")); i >= 0 {
		return b[:i], b[i+2:]
	}
	return b, nil
}

// addDefine records the define in code, if any. offset is the position of
// code within the line.
func (d *Document) addDefine(idx, offset int, code, comment []byte, deprecated bool) error {
	m := defineRegex.FindSubmatchIndex(code)
	if m == nil {
		return nil
	}
	name := string(code[m[2]:m[3]])
	ns, ok := registry.NamespaceOf(name)
	if !ok {
		d.skipped++
		return nil
	}
	if m[4] < 0 {
		if deprecated {
			return nil
		}
		return &ParseError{Line: idx + 1, Name: name}
	}

	raw := string(code[m[4]:m[5]])
	value, err := strconv.ParseInt(raw, 0, 64)
	if err != nil || value < 0 {
		if deprecated {
			// Commented-out text is not compiled; ignore what can't be read.
			return nil
		}
		return &ParseError{Line: idx + 1, Name: name, Value: raw}
	}

	d.entries = append(d.entries, registry.Entry{
		Namespace:  ns,
		Name:       name,
		Value:      int(value),
		Deprecated: deprecated,
		Comment:    decodeText(d.enc, comment),
		Line:       idx + 1,
	})
	d.refs = append(d.refs, valueRef{line: idx, start: offset + m[4], end: offset + m[5]})
	return nil
}

// Entries returns every define in source order.
func (d *Document) Entries() []registry.Entry {
	return append([]registry.Entry(nil), d.entries...)
}

// Registry builds an immutable registry from the document's entries.
func (d *Document) Registry() (*registry.Registry, error) {
	return registry.New(d.entries, registry.WithDeclaredLastID(d.lastID))
}

// DeclaredLastID returns the largest "LAST ID" marker in the header's
// comments, or 0 when there is none.
func (d *Document) DeclaredLastID() int { return d.lastID }

// Skipped is the number of defines ignored because their names carry no
// known namespace prefix (include guards, other tables).
func (d *Document) Skipped() int { return d.skipped }

// Modified reports whether the document was edited since it was parsed.
func (d *Document) Modified() bool { return d.modified }

// NumLines returns the number of lines in the document.
func (d *Document) NumLines() int { return len(d.lines) }

// WriteTo writes the document in its original encoding and line endings.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if d.bom {
		n, err := w.Write(utf8BOM)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, l := range d.lines {
		n, err := w.Write(l.text)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, l.eol)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

// WriteFile replaces path with the document's contents.
func (d *Document) WriteFile(path string) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, d.Bytes(), mode); err != nil {
		return fmt.Errorf("error writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error replacing %s: %w", path, err)
	}
	d.modified = false
	return nil
}
