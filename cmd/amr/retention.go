package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaptive-recall/amr"
)

func newRetentionCmd() *cobra.Command {
	var (
		strength   float64
		lastReview string
	)

	cmd := &cobra.Command{
		Use:   "retention",
		Short: "Predict present recall probability",
		Long:  "Evaluates the forgetting curve for the given strength and last review time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRetention(cmd, strength, lastReview)
		},
	}

	cmd.Flags().Float64Var(&strength, "strength", amr.DefaultStrength, "Memory strength in days")
	cmd.Flags().StringVar(&lastReview, "last-review", "", "Timestamp of the most recent review; omit for never reviewed")

	return cmd
}

func runRetention(cmd *cobra.Command, strength float64, lastReview string) error {
	s, err := buildScheduler()
	if err != nil {
		return err
	}
	now, err := resolveNow()
	if err != nil {
		return err
	}

	var last *time.Time
	if lastReview != "" {
		t, err := amr.ParseTimestamp(lastReview)
		if err != nil {
			return fmt.Errorf("parsing --last-review: %w", err)
		}
		last = &t
	}

	return printJSON(cmd.OutOrStdout(), map[string]float64{
		"retention": s.PredictRetention(strength, last, now),
	})
}
