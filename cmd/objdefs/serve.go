package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dcrodman/objdefs/internal/core"
	"github.com/dcrodman/objdefs/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the HTTP lookup service",
		Args:  cobra.NoArgs,
		RunE:  ServeCommand,
	}
}

func ServeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := core.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Infof("loading identifiers from %s", sourceName(cfg))
	s, err := server.New(cfg, logger, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Start(ctx)
}
