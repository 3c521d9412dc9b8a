// Package catalog holds the migrated identifier table and the codecs for
// reading and writing it.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/dcrodman/objdefs/internal/registry"
)

// Version of the embedded data file. Bump it whenever identifiers.csv changes.
const Version = "1.0.0"

var (
	// The migrated table, generated from defineObj.h and embedded so that
	// every binary starts with the same identifiers.
	//
	//go:embed identifiers.csv
	identifiersCSV []byte

	defaultInitLock sync.Once
	defaultRegistry *registry.Registry
	defaultErr      error
)

// Active entries per namespace at the time of the migration.
var SnapshotCounts = map[registry.Namespace]int{
	registry.Object: 1,
	registry.Ctrl:   398,
	registry.Sfx:    1496,
	registry.Mover:  1714,
	registry.Region: 6,
}

// Retired entries per namespace at the time of the migration.
var RetiredCounts = map[registry.Namespace]int{
	registry.Object: 0,
	registry.Ctrl:   199,
	registry.Sfx:    16,
	registry.Mover:  74,
	registry.Region: 0,
}

// Default returns the registry built from the embedded data file. It is
// loaded once and shared.
func Default() (*registry.Registry, error) {
	defaultInitLock.Do(func() {
		f, err := Decode(bytes.NewReader(identifiersCSV), CSV)
		if err != nil {
			defaultErr = fmt.Errorf("error decoding embedded identifiers: %w", err)
			return
		}
		if defaultRegistry, err = f.Registry(); err != nil {
			defaultErr = fmt.Errorf("error loading embedded identifiers: %w", err)
		}
	})
	return defaultRegistry, defaultErr
}

// Embedded returns a copy of the raw embedded data file.
func Embedded() []byte {
	return append([]byte(nil), identifiersCSV...)
}
