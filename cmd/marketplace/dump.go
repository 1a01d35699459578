package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/seed"
)

func newDumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the persisted snapshot, or the seed data when none exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd.Context(), cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func runDump(ctx context.Context, w io.Writer, format string) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("dump: unsupported format %q", format)
	}

	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	snap, closeSnap, err := openSnapshot(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSnap()

	st, err := snap.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		seeded := seed.State()
		st = &seeded
	case err != nil:
		return fmt.Errorf("dump: %w", err)
	}

	return writeState(w, *st, format)
}

func writeState(w io.Writer, st domain.State, format string) error {
	if format == "yaml" {
		// Go through JSON so keys keep their persisted camelCase names.
		b, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("dump yaml: %w", err)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return fmt.Errorf("dump yaml: %w", err)
		}
		blockStyle(&doc)

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("dump yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("dump json: %w", err)
	}
	return nil
}

// blockStyle drops the flow and quoting styles inherited from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
