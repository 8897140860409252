// Appointment mechanics — how an incoming General Secretary staffs the
// cabinet, and how single purged seats are refilled.
package engine

import (
	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/policy"
	"github.com/talgya/politburo/internal/politburo"
)

// strategy describes how a leader archetype staffs a cabinet.
type strategy struct {
	// Retention is the probability an eligible incumbent keeps the seat.
	Retention float64
	// Preferred ranks the personalities drawn for fresh appointees,
	// strongest preference first.
	Preferred []politburo.Personality
	// MinLoyalty is the loyalty floor below which no incumbent survives.
	MinLoyalty int
	// MeritBased additionally requires competence >= 40 for retention.
	MeritBased bool
	// PurgeSecurity sweeps out the security chief along with everyone
	// else; most leaders dare not.
	PurgeSecurity bool
}

var strategies = map[politburo.Personality]strategy{
	politburo.Hardliner: {
		Retention:  0.30,
		Preferred:  []politburo.Personality{politburo.Hardliner, politburo.Ideologue, politburo.Apparatchik},
		MinLoyalty: 60,
	},
	politburo.Reformer: {
		Retention:     0.50,
		Preferred:     []politburo.Personality{politburo.Reformer, politburo.Technocrat, politburo.Populist},
		MinLoyalty:    40,
		MeritBased:    true,
		PurgeSecurity: true,
	},
	politburo.Technocrat: {
		Retention:  0.70,
		Preferred:  []politburo.Personality{politburo.Technocrat, politburo.Apparatchik, politburo.Reformer},
		MinLoyalty: 30,
		MeritBased: true,
	},
	politburo.Apparatchik: {
		Retention:  0.80,
		Preferred:  []politburo.Personality{politburo.Apparatchik, politburo.Opportunist},
		MinLoyalty: 40,
	},
	politburo.Opportunist: {
		Retention:  0.60,
		Preferred:  []politburo.Personality{politburo.Opportunist, politburo.Apparatchik, politburo.Populist},
		MinLoyalty: 50,
	},
	politburo.Ideologue: {
		Retention:  0.35,
		Preferred:  []politburo.Personality{politburo.Ideologue, politburo.Hardliner},
		MinLoyalty: 70,
	},
	politburo.Populist: {
		Retention:     0.45,
		Preferred:     []politburo.Personality{politburo.Populist, politburo.Reformer, politburo.Opportunist},
		MinLoyalty:    45,
		PurgeSecurity: true,
	},
	politburo.Militarist: {
		Retention:  0.40,
		Preferred:  []politburo.Personality{politburo.Militarist, politburo.Hardliner},
		MinLoyalty: 55,
		MeritBased: true,
	},
}

func strategyFor(p politburo.Personality) strategy {
	return strategies[p]
}

// restaffCabinet rebuilds the full portfolio mapping for the sitting
// leader. Incumbents are retained or replaced per the leader's strategy;
// vacant seats (a plotter who moved up) are always staffed fresh. Ends by
// rebuilding factions and recomposing policy.
func (s *Simulation) restaffCabinet() {
	strat := strategyFor(s.Leader.Personality)

	for _, seat := range politburo.Portfolios {
		incumbent, occupied := s.Ministers[seat]

		if !occupied {
			s.Ministers[seat] = s.freshMinister(seat, strat, 15)
			continue
		}

		if seat == politburo.StateSecurity && !strat.PurgeSecurity {
			// The security chief stays regardless of loyalty: they know
			// too much, and know it.
			incumbent.Loyalty = politburo.ClampStat(incumbent.Loyalty - 10)
			incumbent.Ambition = politburo.ClampStat(incumbent.Ambition + 10)
			s.markRetained(incumbent)
			continue
		}

		retained := s.src.Float() < strat.Retention &&
			incumbent.Loyalty >= strat.MinLoyalty &&
			(!strat.MeritBased || incumbent.Competence >= 40)

		if retained {
			incumbent.Loyalty = politburo.ClampStat(incumbent.Loyalty + s.src.IntRange(-10, 10))
			s.markRetained(incumbent)
			continue
		}

		s.Ministers[seat] = s.freshMinister(seat, strat, 15)
	}

	s.rebuildFactions()
	s.Policy = policy.Compose(s.Leader, s.Ministers)
}

func (s *Simulation) markRetained(m *politburo.Minister) {
	m.SurvivedTransition = true
	m.PurgeRisk /= 2
}

// freshMinister generates an appointee whose personality is drawn from the
// strategy's preference list (inverse-rank weighted) with a honeymoon
// loyalty bonus.
func (s *Simulation) freshMinister(seat politburo.Portfolio, strat strategy, honeymoon int) *politburo.Minister {
	preferred := strat.Preferred
	if len(preferred) == 0 {
		preferred = politburo.Personalities[:]
	}

	n := len(preferred)
	personality := entropy.Weighted(s.src, preferred, func(p politburo.Personality) float64 {
		for i, cand := range preferred {
			if cand == p {
				return float64(n - i)
			}
		}
		return 0
	})

	m := s.spawner.Minister(seat, personality)
	m.Loyalty = politburo.ClampStat(m.Loyalty + honeymoon)
	return m
}

// replaceSeat fills one purged seat from the sitting leader's preference
// list with the given loyalty boost, then recomposes.
func (s *Simulation) replaceSeat(seat politburo.Portfolio, loyaltyBoost int) {
	strat := strategyFor(s.Leader.Personality)
	s.Ministers[seat] = s.freshMinister(seat, strat, loyaltyBoost)
	s.Policy = policy.Compose(s.Leader, s.Ministers)
}
