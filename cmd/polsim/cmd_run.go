package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/politburo/internal/api"
	"github.com/talgya/politburo/internal/config"
	"github.com/talgya/politburo/internal/engine"
	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/persistence"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the simulation loop with the HTTP API",
		RunE:  runSim,
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.Info("POLITBURO — Council Governance Simulation",
		"seed", cfg.Seed,
		"start_year", cfg.StartYear,
		"tick", cfg.TickInterval.String(),
	)

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// Events emitted during a tick are buffered here, then logged and
	// persisted after the tick completes.
	var pending []engine.Event
	emit := func(e engine.Event) { pending = append(pending, e) }

	src := entropy.NewSource(cfg.Seed)

	// ── Load or Create Simulation ─────────────────────────────────────
	var sim *engine.Simulation
	snap, err := db.LoadLatest()
	switch {
	case err == nil:
		sim = engine.Restore(snap, emit, src)
		slog.Info("saved game restored",
			"year", sim.Year,
			"month", sim.Month,
			"general_secretary", sim.GeneralSecretary().Name,
		)
	case errors.Is(err, persistence.ErrNoSave):
		sim = engine.New(cfg.StartYear, src, emit)
		slog.Info("new game started",
			"year", sim.Year,
			"general_secretary", sim.GeneralSecretary().Name,
			"personality", sim.GeneralSecretary().Personality.String(),
		)
		if _, err := db.SaveState(sim.Serialize(), "initial"); err != nil {
			slog.Error("initial save failed", "error", err)
		}
	default:
		return fmt.Errorf("load save: %w", err)
	}
	pending = pending[:0] // discard construction noise

	// ── HTTP API ──────────────────────────────────────────────────────
	var mu sync.Mutex
	if cfg.Port > 0 {
		if cfg.AdminKey == "" {
			slog.Warn("POLSIM_ADMIN_KEY not set — admin POST endpoints will be disabled")
		}
		server := &api.Server{
			Sim:      sim,
			DB:       db,
			Mu:       &mu,
			Port:     cfg.Port,
			AdminKey: cfg.AdminKey,
		}
		server.Start()
	}

	// ── Main Loop ─────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	fmt.Printf("\nThe council is in session: %s presiding, year %d.\n",
		sim.GeneralSecretary().Name, sim.Year)
	if cfg.Port > 0 {
		fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.Port)
	}
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	for {
		select {
		case sig := <-sigCh:
			slog.Info("received signal, shutting down", "signal", sig)
			mu.Lock()
			if _, err := db.SaveState(sim.Serialize(), "shutdown"); err != nil {
				slog.Error("final save failed", "error", err)
			}
			mu.Unlock()
			fmt.Println("Simulation stopped. State saved.")
			return nil

		case <-ticker.C:
			mu.Lock()
			b := engine.Boundaries{
				NewMonth: true,
				NewYear:  sim.Month == 12,
			}
			sim.Tick(b)

			for _, e := range pending {
				slog.Info("event",
					"type", e.Type,
					"severity", e.Severity,
					"title", e.Title,
					"year", sim.Year,
					"month", sim.Month,
				)
			}
			if len(pending) > 0 {
				if err := db.AppendEvents(pending, sim.Year, sim.Month); err != nil {
					slog.Error("persist events failed", "error", err)
				}
				pending = pending[:0]
			}

			// Auto-save at every year boundary.
			if b.NewYear {
				label := fmt.Sprintf("year-%d", sim.Year)
				if _, err := db.SaveState(sim.Serialize(), label); err != nil {
					slog.Error("autosave failed", "error", err)
				} else {
					slog.Info("autosaved", "label", label)
				}
			}
			mu.Unlock()
		}
	}
}
