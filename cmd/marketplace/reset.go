package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edge-marketplace/marketplace/internal/core/seed"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the persisted snapshot with the seed data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd.Context())
		},
	}
}

func runReset(ctx context.Context) error {
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	snap, closeSnap, err := openSnapshot(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSnap()

	if err := snap.Save(ctx, seed.State()); err != nil {
		return fmt.Errorf("reset snapshot: %w", err)
	}
	log.Info().Str("backend", cfg.Store.Backend).Msg("snapshot reset to seed data")
	return nil
}
