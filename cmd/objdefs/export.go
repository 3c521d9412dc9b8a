package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/core"
	"github.com/dcrodman/objdefs/internal/defines"
	"github.com/dcrodman/objdefs/internal/gen"
	"github.com/dcrodman/objdefs/internal/registry"
)

// Go source is exported by the generator rather than the data file codecs.
const goFormat = "go"

var (
	FormatFlag  string
	OutputFlag  string
	PackageFlag string
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Writes the registry as a data file, a header or Go constants",
		Args:  cobra.NoArgs,
		RunE:  ExportCommand,
	}
	cmd.Flags().StringVarP(&FormatFlag, "format", "f", "", "csv, json, yaml, h or go (defaults to the output file's extension)")
	cmd.Flags().StringVarP(&OutputFlag, "output", "o", "", "File to write (defaults to stdout)")
	cmd.Flags().StringVar(&PackageFlag, "package", "objid", "Package name of generated Go source")
	return cmd
}

func ExportCommand(cmd *cobra.Command, args []string) error {
	format := strings.TrimPrefix(strings.ToLower(FormatFlag), ".")
	if format == "" {
		if OutputFlag == "" {
			return fmt.Errorf("--format is required when writing to stdout")
		}
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(OutputFlag)), ".")
	}

	cfg, reg, err := loadRegistry()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export(&buf, cfg, reg, format); err != nil {
		return err
	}
	if OutputFlag == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(OutputFlag, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", OutputFlag, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d identifiers to %s\n", len(reg.All()), OutputFlag)
	return nil
}

func export(buf *bytes.Buffer, cfg *core.Config, reg *registry.Registry, format string) error {
	if format == goFormat {
		return gen.Generate(buf, reg, gen.Options{Package: PackageFlag, Version: catalog.Version})
	}

	f, err := catalog.ParseFormat(format)
	if err != nil {
		return err
	}
	if f == catalog.Header {
		enc, err := defines.LookupEncoding(cfg.Registry.Encoding)
		if err != nil {
			return err
		}
		return defines.Render(buf, reg, defines.RenderOptions{Encoding: enc})
	}
	return catalog.Encode(buf, f, catalog.FromRegistry(reg, catalog.Version))
}
