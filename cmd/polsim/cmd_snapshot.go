package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/politburo/internal/config"
	"github.com/talgya/politburo/internal/persistence"
)

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot [save-id]",
		Short: "Dump a saved snapshot as JSON (latest when no ID given)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	var snap any
	if len(args) == 1 {
		snap, err = db.LoadSave(args[0])
	} else {
		snap, err = db.LoadLatest()
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
