package defines

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/dcrodman/objdefs/internal/registry"
)

var (
	ErrNotActive     = errors.New("no active define with that name")
	ErrValueInUse    = errors.New("value already in use")
	ErrValueReserved = errors.New("value reserved by a retired define")
	ErrNameInUse     = errors.New("name already defined")
	ErrOpenComment   = errors.New("block comment is never closed")
)

// Allocation selects how Append numbers new defines.
type Allocation int

const (
	// AllocateGlobal continues the file-wide LAST ID counter, which is how
	// defineObj.h has been numbered since the namespaces started sharing it.
	AllocateGlobal Allocation = iota
	// AllocateNamespace takes the next value after the namespace's maximum.
	AllocateNamespace
)

func (d *Document) activeIndex(name string) int {
	for i := len(d.entries) - 1; i >= 0; i-- {
		if d.entries[i].Name == name && !d.entries[i].Deprecated {
			return i
		}
	}
	return -1
}

// SetValue rewrites the value of the active define called name, touching
// only the digits of that line. Values held by another active define are
// always rejected; values reserved by retired defines are rejected unless
// force is set.
func (d *Document) SetValue(name string, value int, force bool) error {
	idx := d.activeIndex(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotActive, name)
	}
	if value < 0 {
		return fmt.Errorf("%w: %s cannot be set to negative value %d", registry.ErrInvalidEntry, name, value)
	}
	target := d.entries[idx]
	if target.Value == value {
		return nil
	}
	if err := d.checkValue(target.Namespace, name, value, force); err != nil {
		return err
	}

	ref := d.refs[idx]
	l := &d.lines[ref.line]
	digits := []byte(strconv.Itoa(value))
	text := make([]byte, 0, len(l.text)-(ref.end-ref.start)+len(digits))
	text = append(text, l.text[:ref.start]...)
	text = append(text, digits...)
	text = append(text, l.text[ref.end:]...)
	l.text = text

	// Other defines on the same line shift with the new width.
	shift := len(digits) - (ref.end - ref.start)
	for i := range d.refs {
		if i != idx && d.refs[i].line == ref.line && d.refs[i].start > ref.start {
			d.refs[i].start += shift
			d.refs[i].end += shift
		}
	}
	d.refs[idx].end = ref.start + len(digits)
	d.entries[idx].Value = value
	d.modified = true
	return nil
}

func (d *Document) checkValue(ns registry.Namespace, name string, value int, force bool) error {
	for i, e := range d.entries {
		if e.Namespace != ns || e.Value != value || e.Name == name {
			continue
		}
		if !e.Deprecated && d.activeIndex(e.Name) == i {
			return fmt.Errorf("%w: %s %d is %s", ErrValueInUse, ns, value, e.Name)
		}
		if e.Deprecated && !force {
			return fmt.Errorf("%w: %s %d was %s", ErrValueReserved, ns, value, e.Name)
		}
	}
	return nil
}

// Append adds a new define numbered according to policy. It is inserted after
// the last active define of its namespace, or before the closing #endif when
// the namespace has none.
func (d *Document) Append(name, comment string, policy Allocation) (registry.Entry, error) {
	ns, ok := registry.NamespaceOf(name)
	if !ok {
		return registry.Entry{}, fmt.Errorf("%w: %s has no known namespace prefix", registry.ErrInvalidEntry, name)
	}
	if d.activeIndex(name) >= 0 {
		return registry.Entry{}, fmt.Errorf("%w: %s", ErrNameInUse, name)
	}

	reg, err := d.Registry()
	if err != nil {
		return registry.Entry{}, err
	}
	value := reg.NextGlobalID()
	if policy == AllocateNamespace {
		value = reg.NextID(ns)
	}

	at, err := d.insertionPoint(ns)
	if err != nil {
		return registry.Entry{}, err
	}
	text := []byte("#define " + name + "\t")
	valueStart := len(text)
	text = append(text, strconv.Itoa(value)...)
	valueEnd := len(text)
	if comment != "" {
		text = append(text, "\t// "...)
		text = append(text, encodeText(d.enc, comment)...)
	}
	d.insertLine(at, text)

	e := registry.Entry{Namespace: ns, Name: name, Value: value, Comment: comment, Line: at + 1}
	d.entries = append(d.entries, e)
	d.refs = append(d.refs, valueRef{line: at, start: valueStart, end: valueEnd})
	d.modified = true
	return e, nil
}

// insertionPoint returns the line a new define of ns goes on. It is never
// inside a /* */ block, which would retire the define as soon as it is written.
func (d *Document) insertionPoint(ns registry.Namespace) (int, error) {
	last := -1
	for i, e := range d.entries {
		if e.Namespace == ns && !e.Deprecated && d.refs[i].line > last {
			last = d.refs[i].line
		}
	}
	if last >= 0 {
		at := last + 1
		for at <= len(d.lines) && d.lines[at-1].inComment {
			at++
		}
		if at > len(d.lines) {
			return 0, fmt.Errorf("%w: opened on line %d", ErrOpenComment, last+1)
		}
		return at, nil
	}
	for i := len(d.lines) - 1; i >= 0; i-- {
		if i > 0 && d.lines[i-1].inComment {
			continue
		}
		if bytes.HasPrefix(bytes.TrimSpace(d.lines[i].text), []byte("#endif")) {
			return i, nil
		}
	}
	if n := len(d.lines); n > 0 && d.lines[n-1].inComment {
		return 0, fmt.Errorf("%w: at the end of the file", ErrOpenComment)
	}
	return len(d.lines), nil
}

func (d *Document) insertLine(at int, text []byte) {
	eol := d.newline()
	if at == len(d.lines) && at > 0 && d.lines[at-1].eol == "" {
		// Keep the missing trailing newline at the end of the file.
		d.lines[at-1].eol = eol
		eol = ""
	}

	d.lines = append(d.lines, line{})
	copy(d.lines[at+1:], d.lines[at:])
	d.lines[at] = line{text: text, eol: eol}

	for i := range d.refs {
		if d.refs[i].line >= at {
			d.refs[i].line++
			d.entries[i].Line++
		}
	}
}

// newline returns the dominant line ending of the document.
func (d *Document) newline() string {
	crlf, lf := 0, 0
	for _, l := range d.lines {
		switch l.eol {
		case "\r\n":
			crlf++
		case "\n":
			lf++
		}
	}
	if crlf > lf {
		return "\r\n"
	}
	return "\n"
}
