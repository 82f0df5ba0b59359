package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaptive-recall/amr"
)

func newReviewCmd() *cobra.Command {
	var (
		cardPath string
		quality  int
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Apply a graded review to a card record",
		Long:  "Reads a card record from a JSON file (or stdin with -), applies the review, and prints the updated record.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, cardPath, quality, write)
		},
	}

	cmd.Flags().StringVar(&cardPath, "card", "", "Path to the card JSON file, or - for stdin (required)")
	cmd.Flags().IntVar(&quality, "quality", 0, "Review quality 0-5 (required)")
	cmd.Flags().BoolVar(&write, "write", false, "Write the updated record back to the card file (not valid with --card -)")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("quality")

	return cmd
}

func runReview(cmd *cobra.Command, cardPath string, quality int, write bool) error {
	if write && cardPath == "-" {
		return fmt.Errorf("--write requires --card to be a file path, not stdin")
	}

	s, err := buildScheduler()
	if err != nil {
		return err
	}
	now, err := resolveNow()
	if err != nil {
		return err
	}

	card, err := readCard(cmd.InOrStdin(), cardPath)
	if err != nil {
		return err
	}

	updated, err := s.ApplyReview(card, amr.Quality(quality), now)
	if err != nil {
		return err
	}

	if write {
		data, err := json.MarshalIndent(updated, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(cardPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing card file: %w", err)
		}
	}

	return printJSON(cmd.OutOrStdout(), updated)
}

// readCard loads a card record from path, or from stdin when path is "-".
func readCard(stdin io.Reader, path string) (amr.Card, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return amr.Card{}, fmt.Errorf("reading card: %w", err)
	}

	var card amr.Card
	if err := json.Unmarshal(data, &card); err != nil {
		return amr.Card{}, fmt.Errorf("parsing card: %w", err)
	}
	return card, nil
}
