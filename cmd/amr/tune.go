package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaptive-recall/amr/tuner"
)

func newTuneCmd() *cobra.Command {
	var (
		eventsPath string
		minReviews int
	)

	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Calibrate scheduling constants from review history",
		Long:  "Reads a JSON map of card ID to review events and recommends a multiplier scale and retention target.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTune(cmd, eventsPath, minReviews)
		},
	}

	cmd.Flags().StringVar(&eventsPath, "events", "", "Path to the review events JSON file (required)")
	cmd.Flags().IntVar(&minReviews, "min-reviews", 0, "Minimum labeled reviews required (default 100)")
	_ = cmd.MarkFlagRequired("events")

	return cmd
}

func runTune(cmd *cobra.Command, eventsPath string, minReviews int) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(eventsPath)
	if err != nil {
		return fmt.Errorf("reading events file: %w", err)
	}
	var histories tuner.Histories
	if err := json.Unmarshal(data, &histories); err != nil {
		return fmt.Errorf("parsing events file: %w", err)
	}

	base, err := loadTuning(globalTuning)
	if err != nil {
		return err
	}

	tn := tuner.NewTuner(tuner.TunerConfig{Config: base, MinReviews: minReviews})

	scale, err := tn.ComputeOptimalScale(ctx, histories)
	if err != nil {
		return fmt.Errorf("calibrating multiplier scale: %w", err)
	}
	target, err := tn.ComputeOptimalRetention(ctx, histories)
	if err != nil {
		return fmt.Errorf("calibrating retention target: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), map[string]float64{
		"multiplier_scale": scale,
		"retention_target": target,
	})
}
