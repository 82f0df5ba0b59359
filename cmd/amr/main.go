// Package main provides the entry point for the amr CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalTuning string
	globalNow    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "amr",
		Short:   "Adaptive Memory Retention flashcard scheduling",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&globalTuning, "tuning", "", "YAML file overriding the scheduling constants")
	rootCmd.PersistentFlags().StringVar(&globalNow, "now", "", "Current time as ISO-8601 UTC (default wall clock)")

	rootCmd.AddCommand(
		newNewCmd(),
		newRetentionCmd(),
		newScheduleCmd(),
		newReviewCmd(),
		newSimulateCmd(),
		newTuneCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// printJSON writes v as indented JSON, the output shape of every command.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
