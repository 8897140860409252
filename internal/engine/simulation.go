// Package engine runs the governance simulation: a ruling council of one
// General Secretary and ten portfolio ministers whose personalities produce
// the policy state and whose internal dynamics produce purges, coups,
// successions, and alliances.
//
// The engine is single-threaded and cooperatively driven. The host scheduler
// calls Tick once per simulation step; external readers (the policy-state
// consumer and the save path) may only touch the graph between ticks.
package engine

import (
	"fmt"

	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/policy"
	"github.com/talgya/politburo/internal/politburo"
)

// PurgeRecord archives a removed minister. Append-only; never read back by
// the simulation itself.
type PurgeRecord struct {
	Minister politburo.Minister `json:"minister"`
	Year     int                `json:"year"`
	Month    int                `json:"month"`
	Reason   string             `json:"reason"`
}

// ResourceSnapshot is the read-only view of the external resource ledger,
// used only for narrative text interpolation.
type ResourceSnapshot struct {
	Population int `json:"population"`
	Food       int `json:"food"`
	Money      int `json:"money"`
}

// Simulation holds the complete agent graph and wires the subsystems
// together. There is exactly one writer: the engine itself.
type Simulation struct {
	Leader    *politburo.Leader
	Ministers map[politburo.Portfolio]*politburo.Minister
	Factions  []*politburo.Faction

	// Tensions is the pairwise conflict/cooperation ledger. Entries are
	// created lazily and persist across periods.
	Tensions map[TensionKey]float64

	// Append-only archives.
	LeaderHistory []politburo.Leader
	PurgeHistory  []PurgeRecord

	// Policy is the current composed state, rebuilt from scratch on every
	// composition.
	Policy policy.State

	Year  int
	Month int // 1–12

	Resources ResourceSnapshot

	src     *entropy.Source
	spawner *politburo.Spawner
	emit    func(Event)
}

// New creates a simulation at the start of the given year with a fresh
// leader and a full cabinet. The emit callback receives every narrative
// event synchronously; it may be nil.
func New(startYear int, src *entropy.Source, emit func(Event)) *Simulation {
	s := &Simulation{
		Ministers: make(map[politburo.Portfolio]*politburo.Minister, politburo.NumPortfolios),
		Tensions:  make(map[TensionKey]float64),
		Year:      startYear,
		Month:     1,
		src:       src,
		spawner:   politburo.NewSpawner(src),
		emit:      emit,
	}

	s.Leader = s.spawner.Leader(startYear)
	strat := strategyFor(s.Leader.Personality)
	for _, seat := range politburo.Portfolios {
		s.Ministers[seat] = s.freshMinister(seat, strat, 0)
	}

	s.rebuildFactions()
	s.Policy = policy.Compose(s.Leader, s.Ministers)
	s.checkInvariants()
	return s
}

// GeneralSecretary returns the sitting leader.
func (s *Simulation) GeneralSecretary() *politburo.Leader {
	return s.Leader
}

// Minister returns the current holder of a portfolio.
func (s *Simulation) Minister(seat politburo.Portfolio) *politburo.Minister {
	return s.Ministers[seat]
}

// Modifiers returns the current composed policy state.
func (s *Simulation) Modifiers() policy.State {
	return s.Policy
}

// SetResources updates the resource view used for narrative interpolation.
// Call between ticks only.
func (s *Simulation) SetResources(r ResourceSnapshot) {
	s.Resources = r
}

// State returns a read-only snapshot of the full agent graph. The snapshot
// shares nothing with the live graph.
func (s *Simulation) State() *Snapshot {
	return s.Serialize()
}

// factionOf returns the faction a minister belongs to, or nil.
func (s *Simulation) factionOf(m *politburo.Minister) *politburo.Faction {
	if m.FactionID == "" {
		return nil
	}
	for _, f := range s.Factions {
		if f.ID == m.FactionID {
			return f
		}
	}
	return nil
}

// checkInvariants verifies the structural invariants of the agent graph.
// A violation is a programming error: the graph can no longer be trusted
// for probabilistic decisions, so fail loudly rather than repair silently.
func (s *Simulation) checkInvariants() {
	if s.Leader == nil || !s.Leader.Alive {
		panic("politburo: no living general secretary")
	}
	for _, past := range s.LeaderHistory {
		if past.Alive {
			panic(fmt.Sprintf("politburo: archived leader %s still marked alive", past.ID))
		}
	}

	seen := make(map[string]politburo.Portfolio, politburo.NumPortfolios)
	for _, seat := range politburo.Portfolios {
		m, ok := s.Ministers[seat]
		if !ok || m == nil {
			panic(fmt.Sprintf("politburo: portfolio %s has no minister", seat))
		}
		if m.Portfolio != seat {
			panic(fmt.Sprintf("politburo: minister %s filed under %s but holds %s", m.ID, seat, m.Portfolio))
		}
		if prior, dup := seen[m.ID]; dup {
			panic(fmt.Sprintf("politburo: minister %s holds both %s and %s", m.ID, prior, seat))
		}
		seen[m.ID] = seat
	}
}
