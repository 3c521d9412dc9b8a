// Package gen generates Go source declaring one typed constant per active
// identifier.
package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"text/template"

	"github.com/dcrodman/objdefs/internal/registry"
)

//go:embed "templates/objid.go.tmpl"
var constantsTemplate string

var tmpl = template.Must(template.New("objid").Parse(constantsTemplate))

// Go type used for the constants of each namespace.
var typeNames = map[registry.Namespace]string{
	registry.Object: "Object",
	registry.Ctrl:   "Ctrl",
	registry.Sfx:    "Sfx",
	registry.Mover:  "Mover",
	registry.Region: "Region",
}

// Options controls the generated file.
type Options struct {
	// Package name of the generated file. Defaults to "objid".
	Package string
	// Version of the table, recorded in the generated Version constant.
	Version string
}

type section struct {
	Type        string
	Prefix      string
	Description string
	Entries     []registry.Entry
}

// TypeName returns the Go type generated for ns.
func TypeName(ns registry.Namespace) string { return typeNames[ns] }

// Source returns the formatted Go source for the active entries of reg,
// ordered by value within each namespace.
func Source(reg *registry.Registry, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "objid"
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}

	data := struct {
		Package  string
		Version  string
		Sections []section
	}{Package: opts.Package, Version: opts.Version}
	for _, ns := range registry.Namespaces {
		entries := reg.Entries(ns)
		for _, e := range entries {
			if !token.IsIdentifier(e.Name) || token.IsKeyword(e.Name) {
				return nil, fmt.Errorf("%s is not a valid Go identifier", e.Name)
			}
		}
		data.Sections = append(data.Sections, section{
			Type:        typeNames[ns],
			Prefix:      ns.Prefix(),
			Description: ns.Description(),
			Entries:     entries,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error formatting generated source: %w", err)
	}
	return src, nil
}

// Generate writes the output of Source to w.
func Generate(w io.Writer, reg *registry.Registry, opts Options) error {
	src, err := Source(reg, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}
