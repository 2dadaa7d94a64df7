package main

import (
	"context"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved resume",
	Long:  "Deletes the persisted resume so the next start begins from a blank document.",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	st.Reset(ctx)
	logger.WithField("backend", cfg.StorageBackend).Info("saved resume discarded")
	return st.Close(ctx)
}
