package registry

import "fmt"

type ChangeKind string

const (
	Added      ChangeKind = "added"
	Removed    ChangeKind = "removed"
	Retired    ChangeKind = "retired"
	Restored   ChangeKind = "restored"
	Renumbered ChangeKind = "renumbered"
)

// Change describes how a single name differs between two registries.
type Change struct {
	Kind     ChangeKind `json:"kind" yaml:"kind"`
	Name     string     `json:"name" yaml:"name"`
	OldValue int        `json:"old_value" yaml:"old_value"`
	NewValue int        `json:"new_value" yaml:"new_value"`
}

// Breaking reports whether consumers holding the old value would silently
// resolve to something else.
func (c Change) Breaking() bool {
	return c.Kind == Renumbered || c.Kind == Removed
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s = %d", c.Name, c.NewValue)
	case Removed:
		return fmt.Sprintf("- %s = %d", c.Name, c.OldValue)
	case Renumbered:
		return fmt.Sprintf("! %s %d -> %d", c.Name, c.OldValue, c.NewValue)
	default:
		return fmt.Sprintf("~ %s %s (%d)", c.Name, c.Kind, c.NewValue)
	}
}

// Diff compares every name of old against next. Retiring a name keeps its
// slot reserved and is not breaking; dropping it entirely is.
func Diff(old, next *Registry) []Change {
	var changes []Change
	seen := make(map[string]bool)

	for _, ns := range Namespaces {
		for _, e := range old.ordered[ns] {
			seen[e.Name] = true
			if cur, ok := next.Lookup(e.Name); ok {
				if cur.Value != e.Value {
					changes = append(changes, Change{Kind: Renumbered, Name: e.Name, OldValue: e.Value, NewValue: cur.Value})
				}
				continue
			}
			if ret, ok := next.retiredEntry(e.Name); ok {
				kind := Retired
				if ret.Value != e.Value {
					kind = Renumbered
				}
				changes = append(changes, Change{Kind: kind, Name: e.Name, OldValue: e.Value, NewValue: ret.Value})
				continue
			}
			changes = append(changes, Change{Kind: Removed, Name: e.Name, OldValue: e.Value})
		}
	}

	for _, ns := range Namespaces {
		for _, e := range next.ordered[ns] {
			if seen[e.Name] {
				continue
			}
			if ret, ok := old.retiredEntry(e.Name); ok {
				changes = append(changes, Change{Kind: Restored, Name: e.Name, OldValue: ret.Value, NewValue: e.Value})
				continue
			}
			changes = append(changes, Change{Kind: Added, Name: e.Name, NewValue: e.Value})
		}
	}
	return changes
}

// Breaking filters changes down to the breaking ones.
func Breaking(changes []Change) []Change {
	var out []Change
	for _, c := range changes {
		if c.Breaking() {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) retiredEntry(name string) (Entry, bool) {
	ns, ok := NamespaceOf(name)
	if !ok {
		return Entry{}, false
	}
	for _, e := range r.retired[ns] {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
