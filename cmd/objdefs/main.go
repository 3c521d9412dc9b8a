// The objdefs tool looks up, validates, edits and serves the object, control,
// effect, mover and region identifiers originally kept in defineObj.h.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/core"
	"github.com/dcrodman/objdefs/internal/registry"
)

var (
	ConfigFlag string
	SourceFlag string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "objdefs error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "objdefs",
		Short:         "Object identifier registry and related tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", "", "Path to the config directory")
	rootCmd.PersistentFlags().StringVarP(&SourceFlag, "source", "s", "", "Header, data file or glob to read identifiers from (overrides registry.source)")

	rootCmd.AddCommand(
		newLookupCmd(),
		newNameCmd(),
		newListCmd(),
		newNextCmd(),
		newValidateCmd(),
		newDiffCmd(),
		newExportCmd(),
		newSetCmd(),
		newAddCmd(),
		newDBCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config directory named by --config. A --source given
// on the command line is resolved against the working directory rather than
// the config directory.
func loadConfig() (*core.Config, error) {
	cfg, err := core.LoadConfig(ConfigFlag)
	if err != nil {
		return nil, err
	}
	if SourceFlag != "" {
		source, err := filepath.Abs(SourceFlag)
		if err != nil {
			return nil, fmt.Errorf("error resolving source %s: %w", SourceFlag, err)
		}
		cfg.Registry.Source = source
	}
	return cfg, nil
}

func sourcePath(cfg *core.Config) string {
	return cfg.QualifiedPath(cfg.Registry.Source)
}

// sourceName describes the registry source for messages and snapshots.
func sourceName(cfg *core.Config) string {
	if path := sourcePath(cfg); path != "" {
		return path
	}
	return "embedded"
}

func loadRegistry() (*core.Config, *registry.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	reg, err := catalog.Open(sourcePath(cfg), cfg.Registry.Encoding)
	if err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}

// parseNamespaces resolves namespace arguments, defaulting to all of them.
func parseNamespaces(args []string) ([]registry.Namespace, error) {
	if len(args) == 0 {
		return registry.Namespaces, nil
	}
	namespaces := make([]registry.Namespace, 0, len(args))
	for _, arg := range args {
		ns, err := registry.ParseNamespace(arg)
		if err != nil {
			return nil, err
		}
		namespaces = append(namespaces, ns)
	}
	return namespaces, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the embedded identifier table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := catalog.Default()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "objdefs table version %s (%d active identifiers, last ID %d)\n",
				catalog.Version, reg.Len(), reg.LastID())
			return nil
		},
	}
}
