package registry

import (
	"fmt"
	"strings"
)

// Namespace partitions the identifier space. Values only need to be unique
// within a single namespace, so the same integer may legitimately appear
// once per namespace.
type Namespace string

const (
	Object Namespace = "OI"
	Ctrl   Namespace = "CI"
	Sfx    Namespace = "XI"
	Mover  Namespace = "MI"
	Region Namespace = "RI"
)

// Namespaces lists every known namespace in the order they appear in
// defineObj.h.
var Namespaces = []Namespace{Object, Ctrl, Sfx, Mover, Region}

var namespaceInfo = map[Namespace]struct {
	alias       string
	description string
}{
	Object: {"obj", "generic object IDs"},
	Ctrl:   {"ctrl", "item, container and furniture IDs"},
	Sfx:    {"sfx", "visual and sound effect IDs"},
	Mover:  {"mover", "NPC, monster and pet IDs"},
	Region: {"region", "region and trigger IDs"},
}

// NamespaceOf returns the namespace encoded in the prefix of name
// (e.g. MI_MALE belongs to Mover).
func NamespaceOf(name string) (Namespace, bool) {
	i := strings.IndexByte(name, '_')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	ns := Namespace(name[:i])
	if _, ok := namespaceInfo[ns]; !ok {
		return "", false
	}
	return ns, true
}

// ParseNamespace accepts a prefix ("MI", "mi", "MI_") or an alias ("mover").
func ParseNamespace(s string) (Namespace, error) {
	key := strings.TrimSuffix(strings.TrimSpace(s), "_")
	for ns, info := range namespaceInfo {
		if strings.EqualFold(key, string(ns)) || strings.EqualFold(key, info.alias) {
			return ns, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNamespace, s)
}

// Prefix returns the name prefix used by entries of the namespace.
func (n Namespace) Prefix() string { return string(n) + "_" }

// Alias is the short lowercase name of the namespace.
func (n Namespace) Alias() string { return namespaceInfo[n].alias }

func (n Namespace) Description() string { return namespaceInfo[n].description }

func (n Namespace) Valid() bool {
	_, ok := namespaceInfo[n]
	return ok
}

func (n Namespace) String() string { return string(n) }
