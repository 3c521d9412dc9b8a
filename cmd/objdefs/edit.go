package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/core"
	"github.com/dcrodman/objdefs/internal/defines"
)

var (
	ForceFlag        bool
	CommentFlag      string
	PerNamespaceFlag bool
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Changes the value of a define in the source header",
		Args:  cobra.ExactArgs(2),
		RunE:  SetCommand,
	}
	cmd.Flags().BoolVar(&ForceFlag, "force", false, "Allow values already in use or reserved by retired defines")
	return cmd
}

func SetCommand(cmd *cobra.Command, args []string) error {
	value, err := strconv.Atoi(args[1])
	if err != nil || value < 0 {
		return fmt.Errorf("invalid value %q", args[1])
	}

	path, doc, err := openHeader()
	if err != nil {
		return err
	}
	if err := doc.SetValue(args[0], value, ForceFlag); err != nil {
		return err
	}
	if err := doc.WriteFile(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", args[0], value)
	return nil
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Appends a define to the source header with the next free ID",
		Long: `Appends a define to the source header with the next free ID.

By default the ID continues the header's file-wide LAST ID counter, one past
the highest value in any namespace, retired slots included. This is how
defineObj.h has always been numbered. With --per-namespace the ID is the next
free value of the define's own namespace instead.`,
		Args: cobra.ExactArgs(1),
		RunE:  AddCommand,
	}
	cmd.Flags().StringVar(&CommentFlag, "comment", "", "Trailing comment for the new define")
	cmd.Flags().BoolVar(&PerNamespaceFlag, "per-namespace", false, "Number from the namespace's maximum instead of the global LAST ID")
	return cmd
}

func AddCommand(cmd *cobra.Command, args []string) error {
	path, doc, err := openHeader()
	if err != nil {
		return err
	}

	policy := defines.AllocateGlobal
	if PerNamespaceFlag {
		policy = defines.AllocateNamespace
	}
	e, err := doc.Append(args[0], CommentFlag, policy)
	if err != nil {
		return err
	}
	if err := doc.WriteFile(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), e)
	return nil
}

// openHeader parses the configured source, which must be a single header.
func openHeader() (string, *defines.Document, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", nil, err
	}
	path, err := headerPath(cfg)
	if err != nil {
		return "", nil, err
	}
	enc, err := defines.LookupEncoding(cfg.Registry.Encoding)
	if err != nil {
		return "", nil, err
	}
	doc, err := defines.ParseFile(path, defines.WithEncoding(enc))
	if err != nil {
		return "", nil, err
	}
	return path, doc, nil
}

func headerPath(cfg *core.Config) (string, error) {
	path := sourcePath(cfg)
	if path == "" {
		return "", fmt.Errorf("the embedded table is read-only; pass a header with --source")
	}
	if format, err := catalog.FormatOf(path); err != nil || format != catalog.Header {
		return "", fmt.Errorf("%s is not a header file", path)
	}
	return path, nil
}
