// Command polsim runs the POLITBURO governance simulation.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:     "polsim",
		Short:   "Soviet council simulation: ministers, purges, coups, succession",
		Version: version,
	}
	root.AddCommand(
		newRunCmd(),
		newEventsCmd(),
		newSnapshotCmd(),
	)

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
