package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/registry"
)

var (
	DumpFlag          bool
	RetiredFlag       bool
	StrictFlag        bool
	AllowBreakingFlag bool
)

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Resolves identifier names to their values",
		Args:  cobra.MinimumNArgs(1),
		RunE:  LookupCommand,
	}
	cmd.Flags().BoolVar(&DumpFlag, "dump", false, "Dump the full entry instead of NAME = VALUE")
	return cmd
}

func LookupCommand(cmd *cobra.Command, args []string) error {
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	missing := 0
	for _, name := range args {
		e, ok := reg.Lookup(name)
		if !ok {
			missing++
			if retired, ok := findRetired(reg, name); ok {
				fmt.Fprintf(out, "%s is retired (was %d)\n", name, retired.Value)
			} else {
				fmt.Fprintf(out, "%s: %s\n", registry.ErrUnknownName, name)
			}
			continue
		}
		if DumpFlag {
			spew.Fdump(out, e)
			continue
		}
		fmt.Fprintln(out, e)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d names not found", missing, len(args))
	}
	return nil
}

func findRetired(reg *registry.Registry, name string) (registry.Entry, bool) {
	ns, ok := registry.NamespaceOf(name)
	if !ok {
		return registry.Entry{}, false
	}
	for _, e := range reg.Retired(ns) {
		if e.Name == name {
			return e, true
		}
	}
	return registry.Entry{}, false
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name NAMESPACE VALUE",
		Short: "Finds the identifier holding a value in a namespace",
		Args:  cobra.ExactArgs(2),
		RunE:  NameCommand,
	}
}

func NameCommand(cmd *cobra.Command, args []string) error {
	ns, err := registry.ParseNamespace(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid value %q", args[1])
	}
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if name, ok := reg.NameOf(ns, value); ok {
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}
	if reg.IsReserved(ns, value) {
		for _, e := range reg.Retired(ns) {
			if e.Value == value {
				return fmt.Errorf("%s value %d is reserved by retired %s", ns, value, e.Name)
			}
		}
	}
	return fmt.Errorf("no active %s identifier has value %d", ns, value)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [NAMESPACE...]",
		Short: "Lists identifiers ordered by value",
		RunE:  ListCommand,
	}
	cmd.Flags().BoolVar(&RetiredFlag, "retired", false, "List retired identifiers instead of active ones")
	return cmd
}

func ListCommand(cmd *cobra.Command, args []string) error {
	namespaces, err := parseNamespaces(args)
	if err != nil {
		return err
	}
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	for _, ns := range namespaces {
		entries := reg.Entries(ns)
		if RetiredFlag {
			entries = reg.Retired(ns)
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%s\n", e.Name, e.Value, e.Comment)
		}
	}
	return w.Flush()
}

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next [NAMESPACE...]",
		Short: "Shows the next free ID per namespace and overall",
		RunE:  NextCommand,
	}
}

func NextCommand(cmd *cobra.Command, args []string) error {
	namespaces, err := parseNamespaces(args)
	if err != nil {
		return err
	}
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, ns := range namespaces {
		fmt.Fprintf(out, "%s\t%d\n", ns, reg.NextID(ns))
	}
	fmt.Fprintf(out, "global\t%d\n", reg.NextGlobalID())
	return nil
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Reports collisions and retired-slot hazards",
		Args:  cobra.NoArgs,
		RunE:  ValidateCommand,
	}
	cmd.Flags().BoolVar(&StrictFlag, "strict", false, "Fail on warnings as well as errors")
	return cmd
}

func ValidateCommand(cmd *cobra.Command, args []string) error {
	cfg, reg, err := loadRegistry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := reg.Validate()
	for _, f := range report.Findings {
		fmt.Fprintln(out, f)
	}
	// The embedded table must keep the counts it was migrated with.
	if sourcePath(cfg) == "" {
		if err := reg.CheckCounts(catalog.SnapshotCounts); err != nil {
			return err
		}
	}
	errs, warnings := len(report.Errors()), len(report.Warnings())
	fmt.Fprintf(out, "%s: %d identifiers, %d errors, %d warnings\n", sourceName(cfg), reg.Len(), errs, warnings)

	if report.HasErrors() {
		return report.Err()
	}
	if StrictFlag && warnings > 0 {
		return fmt.Errorf("%d warnings", warnings)
	}
	return nil
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff OLD",
		Short: "Compares an older header or data file against the current source",
		Args:  cobra.ExactArgs(1),
		RunE:  DiffCommand,
	}
	cmd.Flags().BoolVar(&AllowBreakingFlag, "allow-breaking", false, "Do not fail when identifiers were renumbered or removed")
	return cmd
}

func DiffCommand(cmd *cobra.Command, args []string) error {
	cfg, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	old, err := catalog.Open(args[0], cfg.Registry.Encoding)
	if err != nil {
		return err
	}
	return printChanges(cmd.OutOrStdout(), registry.Diff(old, reg))
}

var errBreakingChanges = errors.New("breaking changes found")

func printChanges(out io.Writer, changes []registry.Change) error {
	for _, c := range changes {
		fmt.Fprintln(out, c)
	}
	breaking := registry.Breaking(changes)
	fmt.Fprintf(out, "%d changes, %d breaking\n", len(changes), len(breaking))
	if len(breaking) > 0 && !AllowBreakingFlag {
		return fmt.Errorf("%w: %d", errBreakingChanges, len(breaking))
	}
	return nil
}
