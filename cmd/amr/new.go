package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/adaptive-recall/amr"
)

func newNewCmd() *cobra.Command {
	var (
		strength float64
		box      int
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Mint a new card record",
		Long:  "Creates an unreviewed card with a fresh ID and prints it as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			card := amr.NewCard(uuid.NewString())
			if strength != 0 {
				card.Strength = strength
			}
			if box != 0 {
				card.Box = box
			}
			return printJSON(cmd.OutOrStdout(), card)
		},
	}

	cmd.Flags().Float64Var(&strength, "strength", 0, "Initial strength in days (default 1.0)")
	cmd.Flags().IntVar(&box, "box", 0, "Initial box (default 1)")

	return cmd
}
