// Package registry holds the immutable name to integer mapping of object,
// control, effect, mover and region identifiers.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownName      = errors.New("unknown identifier")
	ErrUnknownNamespace = errors.New("unknown namespace")
	ErrInvalidEntry     = errors.New("invalid entry")
)

// Entry is a single identifier definition.
type Entry struct {
	Namespace Namespace `json:"namespace" yaml:"namespace"`
	Name      string    `json:"name" yaml:"name"`
	Value     int       `json:"value" yaml:"value"`
	// Deprecated entries were soft-deleted in the source. Their values stay
	// reserved and are never handed out again.
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Comment    string `json:"comment,omitempty" yaml:"comment,omitempty"`
	// 1-based line in the header the entry was parsed from, 0 otherwise.
	Line int `json:"-" yaml:"-"`
}

func (e Entry) String() string {
	if e.Deprecated {
		return fmt.Sprintf("%s = %d (deprecated)", e.Name, e.Value)
	}
	return fmt.Sprintf("%s = %d", e.Name, e.Value)
}

// Check verifies that the entry is well formed.
func (e Entry) Check() error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	ns, ok := NamespaceOf(e.Name)
	if !ok {
		return fmt.Errorf("%w: %s has no known namespace prefix", ErrInvalidEntry, e.Name)
	}
	if e.Namespace != ns {
		return fmt.Errorf("%w: %s is tagged %q but its prefix is %q", ErrInvalidEntry, e.Name, e.Namespace, ns)
	}
	if e.Value < 0 {
		return fmt.Errorf("%w: %s has negative value %d", ErrInvalidEntry, e.Name, e.Value)
	}
	return nil
}

// Registry is an immutable view over a set of entries. It is safe for use by
// multiple goroutines.
type Registry struct {
	all     []Entry
	active  map[string]int
	byValue map[Namespace]map[int]string
	ordered map[Namespace][]Entry
	retired map[Namespace][]Entry
	slots   map[Namespace]map[int]string

	declaredLastID int
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithDeclaredLastID records the "LAST ID" a source file claims to have
// handed out so that validation can tell when it went stale.
func WithDeclaredLastID(id int) Option {
	return func(r *Registry) { r.declaredLastID = id }
}

// New builds a registry from entries in source order. Malformed entries are
// rejected; duplicates and collisions are kept and reported by Validate.
// When an active name is defined twice the later definition wins.
func New(entries []Entry, opts ...Option) (*Registry, error) {
	r := &Registry{
		all:     make([]Entry, 0, len(entries)),
		active:  make(map[string]int),
		byValue: make(map[Namespace]map[int]string),
		ordered: make(map[Namespace][]Entry),
		retired: make(map[Namespace][]Entry),
		slots:   make(map[Namespace]map[int]string),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, e := range entries {
		if err := e.Check(); err != nil {
			if e.Line > 0 {
				return nil, fmt.Errorf("line %d: %w", e.Line, err)
			}
			return nil, err
		}
		r.all = append(r.all, e)
		idx := len(r.all) - 1

		if e.Deprecated {
			r.retired[e.Namespace] = append(r.retired[e.Namespace], e)
			if r.slots[e.Namespace] == nil {
				r.slots[e.Namespace] = make(map[int]string)
			}
			if _, ok := r.slots[e.Namespace][e.Value]; !ok {
				r.slots[e.Namespace][e.Value] = e.Name
			}
			continue
		}
		r.active[e.Name] = idx
	}

	for i, e := range r.all {
		if idx, ok := r.active[e.Name]; ok && idx == i {
			r.ordered[e.Namespace] = append(r.ordered[e.Namespace], e)
		}
	}
	for ns, list := range r.ordered {
		sortEntries(list)
		values := make(map[int]string, len(list))
		for _, e := range list {
			// The first name in source order owns the value for
			// reverse lookups; collisions are surfaced by Validate.
			if _, ok := values[e.Value]; !ok {
				values[e.Value] = e.Name
			}
		}
		r.byValue[ns] = values
	}
	for _, list := range r.retired {
		sortEntries(list)
	}
	return r, nil
}

func sortEntries(list []Entry) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Value < list[j].Value })
}

// Lookup returns the active entry called name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	idx, ok := r.active[name]
	if !ok {
		return Entry{}, false
	}
	return r.all[idx], true
}

// Value resolves name to its integer value.
func (r *Registry) Value(name string) (int, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	return e.Value, nil
}

// NameOf is the reverse of Lookup for a single namespace.
func (r *Registry) NameOf(ns Namespace, value int) (string, bool) {
	name, ok := r.byValue[ns][value]
	return name, ok
}

// Entries returns the active entries of ns ordered by value.
func (r *Registry) Entries(ns Namespace) []Entry {
	return append([]Entry(nil), r.ordered[ns]...)
}

// Retired returns the soft-deleted entries of ns ordered by value.
func (r *Registry) Retired(ns Namespace) []Entry {
	return append([]Entry(nil), r.retired[ns]...)
}

// All returns every entry, active and retired, in source order.
func (r *Registry) All() []Entry {
	return append([]Entry(nil), r.all...)
}

// Count returns the number of distinct active names in ns.
func (r *Registry) Count(ns Namespace) int { return len(r.ordered[ns]) }

// RetiredCount returns the number of soft-deleted definitions in ns.
func (r *Registry) RetiredCount(ns Namespace) int { return len(r.retired[ns]) }

// Counts returns the active entry count of every known namespace.
func (r *Registry) Counts() map[Namespace]int {
	counts := make(map[Namespace]int, len(Namespaces))
	for _, ns := range Namespaces {
		counts[ns] = r.Count(ns)
	}
	return counts
}

// Len is the number of distinct active names across all namespaces.
func (r *Registry) Len() int { return len(r.active) }

// IsReserved reports whether value is held by a retired entry of ns.
func (r *Registry) IsReserved(ns Namespace, value int) bool {
	_, ok := r.slots[ns][value]
	return ok
}

// MaxValue returns the highest value used in ns by active or retired entries,
// or -1 when the namespace is empty.
func (r *Registry) MaxValue(ns Namespace) int {
	highest := -1
	for _, e := range r.ordered[ns] {
		if e.Value > highest {
			highest = e.Value
		}
	}
	for _, e := range r.retired[ns] {
		if e.Value > highest {
			highest = e.Value
		}
	}
	return highest
}

// NextID returns the next value to hand out in ns. Retired slots are never
// reclaimed, so this is always above every value the namespace has used.
func (r *Registry) NextID(ns Namespace) int {
	if highest := r.MaxValue(ns); highest >= 0 {
		return highest + 1
	}
	return 0
}

// LastID is the highest value in use across every namespace. New defines in
// defineObj.h draw from this single counter.
func (r *Registry) LastID() int {
	last := -1
	for _, ns := range Namespaces {
		if highest := r.MaxValue(ns); highest > last {
			last = highest
		}
	}
	return last
}

// NextGlobalID returns LastID()+1.
func (r *Registry) NextGlobalID() int { return r.LastID() + 1 }

// DeclaredLastID is the LAST ID recorded in the source banner, or 0.
func (r *Registry) DeclaredLastID() int { return r.declaredLastID }

// CheckCounts compares the active counts against a recorded snapshot and
// returns an error describing every namespace that drifted.
func (r *Registry) CheckCounts(want map[Namespace]int) error {
	var errs []error
	for _, ns := range Namespaces {
		expected, ok := want[ns]
		if !ok {
			continue
		}
		if got := r.Count(ns); got != expected {
			errs = append(errs, fmt.Errorf("namespace %s: have %d active entries, snapshot has %d", ns, got, expected))
		}
	}
	return errors.Join(errs...)
}
