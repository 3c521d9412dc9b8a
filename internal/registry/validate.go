package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s Severity) MarshalYAML() (interface{}, error) { return s.String(), nil }

// FindingKind classifies a validation finding.
type FindingKind string

const (
	// Two active names share one value within a namespace.
	Collision FindingKind = "collision"
	// An active name is defined more than once.
	Redefinition FindingKind = "redefinition"
	// A retired name is active again under a different value.
	RetiredRedefinition FindingKind = "retired-redefinition"
	// An active entry occupies a value reserved by a retired entry.
	RetiredValueReuse FindingKind = "retired-value-reuse"
	// The declared LAST ID is lower than the highest value in use.
	StaleLastID FindingKind = "stale-last-id"
)

var findingSeverity = map[FindingKind]Severity{
	Collision:           Error,
	Redefinition:        Error,
	RetiredRedefinition: Warning,
	RetiredValueReuse:   Warning,
	StaleLastID:         Warning,
}

// Finding is a single problem detected by Validate.
type Finding struct {
	Kind      FindingKind `json:"kind" yaml:"kind"`
	Severity  Severity    `json:"severity" yaml:"severity"`
	Namespace Namespace   `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Value     int         `json:"value" yaml:"value"`
	Names     []string    `json:"names,omitempty" yaml:"names,omitempty"`
	Message   string      `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s [%s] %s", f.Severity, f.Kind, f.Message)
}

// Report is the result of a validation pass.
type Report struct {
	Findings []Finding `json:"findings" yaml:"findings"`
}

func (r Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

func (r Report) Errors() []Finding   { return r.filter(Error) }
func (r Report) Warnings() []Finding { return r.filter(Warning) }

func (r Report) HasErrors() bool { return len(r.Errors()) > 0 }

// Count returns the number of findings of kind.
func (r Report) Count(kind FindingKind) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Err joins every error-level finding, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, f := range r.Errors() {
		errs = append(errs, errors.New(f.Message))
	}
	return errors.Join(errs...)
}

// Validate checks the registry for collisions and for the historical
// hazards soft deletion leaves behind. Nothing is resolved automatically.
func (r *Registry) Validate() Report {
	var report Report
	add := func(kind FindingKind, ns Namespace, value int, names []string, format string, args ...interface{}) {
		report.Findings = append(report.Findings, Finding{
			Kind:      kind,
			Severity:  findingSeverity[kind],
			Namespace: ns,
			Value:     value,
			Names:     names,
			Message:   fmt.Sprintf(format, args...),
		})
	}

	for _, ns := range Namespaces {
		byValue := make(map[int][]string)
		var values []int
		for _, e := range r.ordered[ns] {
			if _, ok := byValue[e.Value]; !ok {
				values = append(values, e.Value)
			}
			byValue[e.Value] = append(byValue[e.Value], e.Name)
		}
		for _, v := range values {
			if names := byValue[v]; len(names) > 1 {
				add(Collision, ns, v, names, "%s value %d is shared by %s", ns, v, strings.Join(names, ", "))
			}
		}
	}

	definitions := make(map[string][]Entry)
	var order []string
	for _, e := range r.all {
		if e.Deprecated {
			continue
		}
		if _, ok := definitions[e.Name]; !ok {
			order = append(order, e.Name)
		}
		definitions[e.Name] = append(definitions[e.Name], e)
	}
	for _, name := range order {
		defs := definitions[name]
		if len(defs) < 2 {
			continue
		}
		values := make([]string, len(defs))
		for i, d := range defs {
			values[i] = fmt.Sprint(d.Value)
		}
		last := defs[len(defs)-1]
		add(Redefinition, last.Namespace, last.Value, []string{name},
			"%s is defined %d times (values %s); the last definition wins", name, len(defs), strings.Join(values, ", "))
	}

	reported := make(map[string]bool)
	for _, ns := range Namespaces {
		for _, old := range r.retired[ns] {
			current, ok := r.Lookup(old.Name)
			if !ok || current.Value == old.Value || reported[old.Name] {
				continue
			}
			reported[old.Name] = true
			add(RetiredRedefinition, ns, current.Value, []string{old.Name},
				"%s was retired at %d and is active again at %d", old.Name, old.Value, current.Value)
		}
	}

	for _, ns := range Namespaces {
		for _, e := range r.ordered[ns] {
			holder, ok := r.slots[ns][e.Value]
			if !ok || holder == e.Name {
				continue
			}
			add(RetiredValueReuse, ns, e.Value, []string{e.Name, holder},
				"%s reuses %s value %d retired with %s", e.Name, ns, e.Value, holder)
		}
	}

	if last := r.LastID(); r.declaredLastID > 0 && r.declaredLastID < last {
		add(StaleLastID, "", last, nil, "declared LAST ID %d is below the highest value in use (%d)", r.declaredLastID, last)
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		return report.Findings[i].Severity > report.Findings[j].Severity
	})
	return report
}
