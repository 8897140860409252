// Package api provides the HTTP API for observing the simulation.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/talgya/politburo/internal/engine"
	"github.com/talgya/politburo/internal/persistence"
	"github.com/talgya/politburo/internal/politburo"
)

// Server serves the politburo state over HTTP. Handlers take the shared
// mutex before touching the simulation: the engine mutates the graph only
// inside a tick, and external readers may only read between ticks.
type Server struct {
	Sim      *engine.Simulation
	DB       *persistence.DB
	Mu       *sync.Mutex
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/politburo", s.handlePolitburo)
	mux.HandleFunc("/api/v1/minister/", s.handleMinister)
	mux.HandleFunc("/api/v1/modifiers", s.handleModifiers)
	mux.HandleFunc("/api/v1/factions", s.handleFactions)
	mux.HandleFunc("/api/v1/tensions", s.handleTensions)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/history", s.handleHistory)

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/succession", s.adminOnly(s.handleSuccession))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// adminOnly wraps a handler with bearer-token auth for POST endpoints.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "admin endpoints disabled", http.StatusForbidden)
			return
		}
		auth := r.Header.Get("Authorization")
		if auth != "Bearer "+s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	writeJSON(w, map[string]any{
		"year":              s.Sim.Year,
		"month":             s.Sim.Month,
		"general_secretary": s.Sim.GeneralSecretary(),
		"factions":          len(s.Sim.Factions),
		"purges_recorded":   len(s.Sim.PurgeHistory),
		"leaders_buried":    len(s.Sim.LeaderHistory),
	})
}

func (s *Server) handlePolitburo(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	ministers := make([]*politburo.Minister, 0, politburo.NumPortfolios)
	for _, seat := range politburo.Portfolios {
		ministers = append(ministers, s.Sim.Minister(seat))
	}
	writeJSON(w, map[string]any{
		"general_secretary": s.Sim.GeneralSecretary(),
		"ministers":         ministers,
	})
}

// portfolioSlugs maps URL path segments to seats.
var portfolioSlugs = map[string]politburo.Portfolio{
	"state-security":  politburo.StateSecurity,
	"defense":         politburo.Defense,
	"agriculture":     politburo.Agriculture,
	"heavy-industry":  politburo.HeavyIndustry,
	"consumer-goods":  politburo.ConsumerGoods,
	"planning":        politburo.Planning,
	"foreign-affairs": politburo.ForeignAffairs,
	"propaganda":      politburo.Propaganda,
	"transport":       politburo.Transport,
	"energy":          politburo.Energy,
}

func (s *Server) handleMinister(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/v1/minister/")
	seat, ok := portfolioSlugs[slug]
	if !ok {
		http.Error(w, "unknown portfolio", http.StatusNotFound)
		return
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()
	writeJSON(w, s.Sim.Minister(seat))
}

func (s *Server) handleModifiers(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	writeJSON(w, s.Sim.Modifiers())
}

func (s *Server) handleFactions(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	writeJSON(w, s.Sim.Factions)
}

func (s *Server) handleTensions(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	// Flattened, same shape as the save format.
	snap := s.Sim.Serialize()
	writeJSON(w, snap.Tensions)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	events, err := s.DB.RecentEvents(limit)
	if err != nil {
		slog.Error("recent events", "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, events)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	writeJSON(w, map[string]any{
		"leaders": s.Sim.LeaderHistory,
		"purges":  s.Sim.PurgeHistory,
	})
}

// handleSuccession triggers a scripted leadership transition.
func (s *Server) handleSuccession(w http.ResponseWriter, r *http.Request) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	s.Sim.ForceSuccession(politburo.CauseScripted)
	slog.Info("forced succession", "new_leader", s.Sim.GeneralSecretary().Name)
	writeJSON(w, map[string]any{
		"general_secretary": s.Sim.GeneralSecretary(),
	})
}
