package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/politburo/internal/config"
	"github.com/talgya/politburo/internal/persistence"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print recent chronicle events from the save database",
		RunE:  runEvents,
	}
	cmd.Flags().IntP("limit", "n", 30, "Number of events to show")
	return cmd
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	events, err := db.RecentEvents(limit)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No events recorded yet.")
		return nil
	}

	// RecentEvents returns newest-first; print oldest-first for reading.
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		fmt.Printf("%d/%02d [%s] %s — %s\n", e.Year, e.Month, e.Severity, e.Title, e.Description)
	}
	return nil
}
