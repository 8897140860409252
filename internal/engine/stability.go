// Stability mechanics — coup, purge, and succession checks.
// Each check is an independent stochastic evaluation per agent per covering
// period, capable of terminating a tenure.
package engine

import (
	"fmt"

	"github.com/talgya/politburo/internal/politburo"
)

// CoupChance returns the annual probability that the given minister moves
// against the General Secretary.
//
// Inputs: ambition against disloyalty, a bonus for holding the security
// organs, a bonus per fellow faction member, offset by the leader's
// paranoia (a watched cabinet is a careful cabinet).
func (s *Simulation) CoupChance(m *politburo.Minister) float64 {
	chance := float64(m.Ambition) * float64(100-m.Loyalty) / 10000

	if m.Portfolio == politburo.StateSecurity {
		chance += 0.15
	}
	if f := s.factionOf(m); f != nil {
		chance += 0.05 * float64(len(f.MemberIDs)-1)
	}
	chance -= float64(s.Leader.Paranoia) / 200

	return politburo.Clamp01(chance)
}

// PurgeChance returns the annual probability that the General Secretary
// removes the given minister. The quarterly evaluation draws against a
// quarter of this value.
//
// Paranoia amplifies disloyalty; visible incompetence and corruption add
// risk; the security chief is partly shielded — they know too much.
func (s *Simulation) PurgeChance(m *politburo.Minister) float64 {
	chance := float64(s.Leader.Paranoia) / 100 * (1 - float64(m.Loyalty)/100)

	if m.Competence < 30 {
		chance += 0.1
	}
	chance += float64(m.Corruption) / 200
	if m.Portfolio == politburo.StateSecurity {
		chance -= 0.2
	}

	return politburo.Clamp01(chance)
}

// evaluateCoup runs the annual coup check in canonical portfolio order.
// The first minister whose draw succeeds takes power and evaluation stops:
// at most one coup per year. Reports whether a coup occurred.
func (s *Simulation) evaluateCoup() bool {
	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]
		chance := s.CoupChance(m)
		if chance <= 0 {
			continue
		}
		if s.src.Float() < chance {
			s.executeCoup(m)
			return true
		}
	}
	return false
}

// executeCoup deposes the leader and installs the plotter.
func (s *Simulation) executeCoup(plotter *politburo.Minister) {
	old := s.Leader
	old.Alive = false
	old.Departure = politburo.CauseCoup
	s.LeaderHistory = append(s.LeaderHistory, *old)

	delete(s.Ministers, plotter.Portfolio)
	s.Leader = s.spawner.LeaderFromMinister(plotter, s.Year)

	s.emitEvent(Event{
		ID:       s.src.ID(),
		Type:     EventCoup,
		Category: CategoryPolitical,
		Severity: SeverityCritical,
		Title:    "Coup in the Kremlin",
		Description: fmt.Sprintf("%s of %s has seized power. %s has been removed from all posts.",
			s.Leader.Name, plotter.Portfolio, old.Name),
		Effects: map[string]float64{
			"fear_level": 15,
			"stability":  -20,
		},
	})

	s.restaffCabinet()
}

// checkLeaderMortality runs the annual death check: certain at zero health,
// increasingly likely past seventy.
func (s *Simulation) checkLeaderMortality() {
	if s.Leader.Health <= 0 {
		s.succeed(politburo.CauseNaturalDeath)
		return
	}
	if s.Leader.Age > 70 {
		chance := float64(s.Leader.Age-70) / 100
		if s.src.Float() < chance {
			s.succeed(politburo.CauseNaturalDeath)
		}
	}
}

// ForceSuccession ends the sitting leader's tenure for a scripted or
// host-triggered reason and restaffs the cabinet. Call between ticks only.
func (s *Simulation) ForceSuccession(cause politburo.Cause) {
	if cause == "" {
		cause = politburo.CauseScripted
	}
	s.succeed(cause)
	s.checkInvariants()
}

// succeed archives the sitting leader, installs a fresh one, and restaffs.
func (s *Simulation) succeed(cause politburo.Cause) {
	old := s.Leader
	old.Alive = false
	old.Departure = cause
	s.LeaderHistory = append(s.LeaderHistory, *old)

	s.Leader = s.spawner.Leader(s.Year)

	s.emitEvent(Event{
		ID:       s.src.ID(),
		Type:     EventSuccession,
		Category: CategoryPolitical,
		Severity: SeverityCritical,
		Title:    "A New General Secretary",
		Description: fmt.Sprintf("%s is dead. After deliberation, %s emerges as General Secretary.",
			old.Name, s.Leader.Name),
		Effects: map[string]float64{
			"stability": -10,
		},
	})

	s.restaffCabinet()
}

// ageLeader advances the leader's age and decays health. The annual decay is
// random within [1, 1 + (age−50)/5 + paranoia/30]: paranoid, elderly leaders
// die fastest — purges and old age compound.
func (s *Simulation) ageLeader() {
	s.Leader.Age++

	maxDecay := 1
	if s.Leader.Age > 50 {
		maxDecay += (s.Leader.Age - 50) / 5
	}
	maxDecay += s.Leader.Paranoia / 30

	decay := s.src.IntRange(1, maxDecay)
	s.Leader.Health = politburo.ClampStat(s.Leader.Health - decay)
}

// evaluatePurges runs the quarterly purge check for every minister in
// canonical order, drawing against the quarterly-scaled chance. Unlike
// coups, several ministers can fall in the same quarter.
func (s *Simulation) evaluatePurges() {
	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]
		quarterly := s.PurgeChance(m) / 4
		m.PurgeRisk += quarterly

		if quarterly > 0 && s.src.Float() < quarterly {
			s.purgeMinister(m)
		}
	}
}

// purgeMinister removes a minister, archives the snapshot, raises the
// leader's paranoia, and fills the seat with a nervously loyal replacement.
func (s *Simulation) purgeMinister(m *politburo.Minister) {
	reason := purgeReason(m)
	s.PurgeHistory = append(s.PurgeHistory, PurgeRecord{
		Minister: *m,
		Year:     s.Year,
		Month:    s.Month,
		Reason:   reason,
	})

	s.emitEvent(Event{
		ID:       s.src.ID(),
		Type:     EventPurge,
		Category: CategoryPolitical,
		Severity: SeverityWarning,
		Title:    "Purge",
		Description: fmt.Sprintf("%s, Minister of %s, has been removed for %s. The seat will not stay empty.",
			m.Name, m.Portfolio, reason),
		Effects: map[string]float64{
			"fear_level": 5,
		},
	})

	s.replaceSeat(m.Portfolio, 20)
	s.Leader.Paranoia = politburo.ClampStat(s.Leader.Paranoia + s.src.IntRange(3, 8))
}

// purgeReason names the principal driver of a purge for the record.
func purgeReason(m *politburo.Minister) string {
	switch {
	case m.Loyalty < 40:
		return "suspected disloyalty"
	case m.Corruption > 60:
		return "corruption and abuse of office"
	case m.Competence < 30:
		return "sabotage of the plan"
	default:
		return "activities incompatible with the party line"
	}
}
