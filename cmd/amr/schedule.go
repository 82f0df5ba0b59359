package main

import (
	"github.com/spf13/cobra"

	"github.com/adaptive-recall/amr"
)

func newScheduleCmd() *cobra.Command {
	var strength float64

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the next review time for a strength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildScheduler()
			if err != nil {
				return err
			}
			now, err := resolveNow()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"next_review": amr.FormatTimestamp(s.NextReviewAt(strength, now)),
			})
		},
	}

	cmd.Flags().Float64Var(&strength, "strength", amr.DefaultStrength, "Memory strength in days")

	return cmd
}
