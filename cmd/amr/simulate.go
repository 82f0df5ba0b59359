package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/adaptive-recall/amr"
)

func newSimulateCmd() *cobra.Command {
	var (
		qualities string
		strength  float64
		box       int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a sequence of review qualities",
		Long:  "Runs a fresh card through the given quality sequence, reviewing each time the card falls due, and prints the trajectory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, qualities, strength, box)
		},
	}

	cmd.Flags().StringVar(&qualities, "qualities", "", "Comma-separated review qualities, e.g. 4,5,3,2 (required)")
	cmd.Flags().Float64Var(&strength, "strength", 0, "Initial strength (default 1.0)")
	cmd.Flags().IntVar(&box, "box", 0, "Initial box (default 1)")
	_ = cmd.MarkFlagRequired("qualities")

	return cmd
}

func runSimulate(cmd *cobra.Command, qualities string, strength float64, box int) error {
	qs, err := parseQualities(qualities)
	if err != nil {
		return err
	}

	s, err := buildScheduler()
	if err != nil {
		return err
	}
	now, err := resolveNow()
	if err != nil {
		return err
	}

	card := amr.NewCard(uuid.NewString())
	if strength != 0 {
		card.Strength = strength
	}
	if box != 0 {
		card.Box = box
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTIME\tQUALITY\tSTRENGTH\tBOX\tRETENTION\tNEXT REVIEW")

	for i, q := range qs {
		retention := s.Retention(card, now)
		card, err = s.ApplyReview(card, q, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\t%d\t%.3f\t%s\n",
			i+1, amr.FormatTimestamp(now), q, card.Strength, card.Box,
			retention, amr.FormatTimestamp(*card.NextReview))
		now = *card.NextReview
	}

	return w.Flush()
}

// parseQualities parses a comma-separated list of 0-5 grades.
func parseQualities(s string) ([]amr.Quality, error) {
	parts := strings.Split(s, ",")
	qs := make([]amr.Quality, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid quality %q: %w", part, err)
		}
		q := amr.Quality(n)
		if !q.IsValid() {
			return nil, fmt.Errorf("%w: %d", amr.ErrInvalidQuality, n)
		}
		qs = append(qs, q)
	}
	return qs, nil
}
