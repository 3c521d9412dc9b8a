package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/core/data"
	"github.com/dcrodman/objdefs/internal/registry"
)

var (
	SnapshotFlag  string
	PermanentFlag bool
)

func newDBCmd() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Registry snapshot management",
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Stores the current registry as a new snapshot",
		Args:  cobra.NoArgs,
		RunE:  DBImportCommand,
	}
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Fails if identifiers were renumbered or removed since a snapshot",
		Args:  cobra.NoArgs,
		RunE:  DBVerifyCommand,
	}
	verifyCmd.Flags().StringVar(&SnapshotFlag, "snapshot", "", "Snapshot ID to compare against (defaults to the latest)")
	verifyCmd.Flags().BoolVar(&AllowBreakingFlag, "allow-breaking", false, "Report breaking changes without failing")
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE:  DBListCommand,
	}
	dropCmd := &cobra.Command{
		Use:   "drop ID",
		Short: "Deletes a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  DBDropCommand,
	}
	dropCmd.Flags().BoolVar(&PermanentFlag, "permanent", false, "Permanently delete the snapshot (as opposed to a soft delete)")

	dbCmd.AddCommand(importCmd, verifyCmd, listCmd, dropCmd)
	return dbCmd
}

// withDB opens the configured database for the duration of fn.
func withDB(fn func(db *gorm.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := data.Connect(cfg)
	if err != nil {
		return err
	}
	defer data.Shutdown(db)
	return fn(db)
}

func DBImportCommand(cmd *cobra.Command, args []string) error {
	cfg, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	return withDB(func(db *gorm.DB) error {
		snapshot := &data.Snapshot{
			Source:  sourceName(cfg),
			Version: catalog.Version,
			LastID:  reg.DeclaredLastID(),
		}
		if err := data.CreateSnapshot(db, snapshot, reg.All()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created snapshot %s (%d identifiers, checksum %s)\n",
			snapshot.ID, snapshot.Size, snapshot.Checksum)
		return nil
	})
}

func DBVerifyCommand(cmd *cobra.Command, args []string) error {
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	return withDB(func(db *gorm.DB) error {
		snapshot, err := findSnapshot(db, SnapshotFlag)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if data.Checksum(reg.All()) == snapshot.Checksum {
			fmt.Fprintf(out, "registry matches snapshot %s\n", snapshot.ID)
			return nil
		}

		counts, err := data.CountIdentifiers(db, snapshot.ID)
		if err != nil {
			return err
		}
		if err := reg.CheckCounts(counts); err != nil {
			fmt.Fprintln(out, err)
		}
		stored, err := data.LoadRegistry(db, snapshot)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "changes since snapshot %s:\n", snapshot.ID)
		return printChanges(out, registry.Diff(stored, reg))
	})
}

func findSnapshot(db *gorm.DB, id string) (*data.Snapshot, error) {
	var (
		snapshot *data.Snapshot
		err      error
	)
	if id == "" {
		snapshot, err = data.FindLatestSnapshot(db)
	} else {
		snapshot, err = data.FindSnapshot(db, id)
	}
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		if id == "" {
			return nil, fmt.Errorf("no snapshots found; run db import first")
		}
		return nil, fmt.Errorf("snapshot %s not found", id)
	}
	return snapshot, nil
}

func DBListCommand(cmd *cobra.Command, args []string) error {
	return withDB(func(db *gorm.DB) error {
		snapshots, err := data.ListSnapshots(db)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tVERSION\tSIZE\tLAST ID\tSOURCE")
		for _, s := range snapshots {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
				s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Version, s.Size, s.LastID, s.Source)
		}
		return w.Flush()
	})
}

func DBDropCommand(cmd *cobra.Command, args []string) error {
	return withDB(func(db *gorm.DB) error {
		snapshot, err := findSnapshot(db, args[0])
		if err != nil {
			return err
		}
		if err := data.DeleteSnapshot(db, snapshot, PermanentFlag); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted snapshot %s\n", snapshot.ID)
		return nil
	})
}
