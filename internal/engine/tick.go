// The tick entry point and the monthly stat drift that keeps a cabinet from
// standing still.
package engine

import (
	"github.com/talgya/politburo/internal/policy"
	"github.com/talgya/politburo/internal/politburo"
)

// Boundaries describes which period boundaries the external calendar crossed
// this tick.
type Boundaries struct {
	NewMonth bool `json:"new_month"`
	NewYear  bool `json:"new_year"`
}

// Tick advances the simulation by one step. Monthly boundaries drive stat
// drift and flavor-event sampling; every third month drives tension and
// purge evaluation; yearly boundaries drive aging, coup evaluation, death
// checks, tenure, faction re-formation, and policy recomposition.
//
// Tick never recovers from a fault: a panic mid-tick leaves the graph
// partially mutated, which is not safely resumable — callers must treat it
// as fatal rather than retry.
func (s *Simulation) Tick(b Boundaries) {
	// A year boundary is always also a month boundary; normalize so the
	// calendar never lags the year-end processing.
	if b.NewYear {
		b.NewMonth = true
	}

	if b.NewMonth {
		s.advanceMonth(b.NewYear)
		if s.driftStats() {
			// Composition is a pure rebuild, re-run whenever competence
			// or personality shifted under it.
			s.Policy = policy.Compose(s.Leader, s.Ministers)
		}
		s.sampleFlavorEvent()

		if s.Month%3 == 0 {
			s.processTensions()
			s.evaluatePurges()
		}
	}

	if b.NewYear {
		s.processYearEnd()
	}

	s.checkInvariants()
}

func (s *Simulation) advanceMonth(newYear bool) {
	if newYear {
		s.Year++
		s.Month = 1
		return
	}
	s.Month++
	if s.Month > 12 {
		s.Month = 1
	}
}

// processYearEnd runs the annual sequence in fixed order: leader aging,
// coup evaluation, mortality, tenure, faction rebuild, recomposition.
func (s *Simulation) processYearEnd() {
	s.ageLeader()

	couped := s.evaluateCoup()
	if !couped {
		// A coup already replaced the leader this year; the mortality
		// check applies only to a leader who kept the chair.
		s.checkLeaderMortality()
	}

	for _, seat := range politburo.Portfolios {
		s.Ministers[seat].Tenure++
	}

	s.rebuildFactions()
	s.Policy = policy.Compose(s.Leader, s.Ministers)
}

// ambitionBaseline is the level each archetype's ambition drifts back
// toward, one point per month.
var ambitionBaseline = map[politburo.Personality]int{
	politburo.Hardliner:   55,
	politburo.Reformer:    50,
	politburo.Technocrat:  35,
	politburo.Apparatchik: 40,
	politburo.Opportunist: 75,
	politburo.Ideologue:   45,
	politburo.Populist:    65,
	politburo.Militarist:  60,
}

// driftStats applies monthly wear to every minister: corruption creeps up
// with tenure and a permissive drain policy, loyalty erodes under high fear,
// ambition regresses toward the archetype baseline, and competence takes a
// rare jitter. Reports whether any competence changed.
func (s *Simulation) driftStats() bool {
	competenceChanged := false
	highFear := s.Policy.FearLevel > 55

	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]

		corruptChance := 0.10 + float64(m.Tenure)*0.01
		if s.Policy.CorruptionDrain > 1.2 {
			corruptChance += 0.10
		}
		if s.src.Float() < corruptChance {
			m.Corruption = politburo.ClampStat(m.Corruption + 1)
		}

		if highFear && s.src.Float() < 0.20 {
			m.Loyalty = politburo.ClampStat(m.Loyalty - 1)
		}

		if base := ambitionBaseline[m.Personality]; m.Ambition != base && s.src.Float() < 0.30 {
			if m.Ambition > base {
				m.Ambition--
			} else {
				m.Ambition++
			}
		}

		if s.src.Float() < 0.05 {
			before := m.Competence
			m.Competence = politburo.ClampStat(m.Competence + s.src.IntRange(-1, 1))
			if m.Competence != before {
				competenceChanged = true
			}
		}
	}
	return competenceChanged
}
