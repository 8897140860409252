// Tension mechanics — pairwise conflict and cooperation between portfolio
// holders, accumulated quarterly against a fixed rule catalogue.
package engine

import (
	"fmt"
	"sort"

	"github.com/talgya/politburo/internal/politburo"
)

// Tension thresholds. The ledger is relaxed, never reset: tension is sticky,
// and a pair can oscillate between conflict and alliance over a long game.
const (
	conflictThreshold    = 50.0
	conflictRelax        = 30.0
	conflictLoyaltyHit   = 5
	cooperationThreshold = -30.0
	cooperationRelax     = 15.0
)

// TensionKey identifies an unordered portfolio pair; A is always the lower
// seat in canonical order.
type TensionKey struct {
	A politburo.Portfolio `json:"a"`
	B politburo.Portfolio `json:"b"`
}

func pairKey(a, b politburo.Portfolio) TensionKey {
	if b < a {
		a, b = b, a
	}
	return TensionKey{A: a, B: b}
}

// tensionRule fires when its two named portfolios are simultaneously held
// by ministers of the named personalities. Delta is the annual rate; a
// quarter of it lands per evaluation. Negative deltas accumulate
// cooperation.
type tensionRule struct {
	SeatA politburo.Portfolio
	PersA politburo.Personality
	SeatB politburo.Portfolio
	PersB politburo.Personality
	Delta float64
	Desc  string
}

var tensionRules = []tensionRule{
	{politburo.StateSecurity, politburo.Hardliner, politburo.ForeignAffairs, politburo.Reformer, 10,
		"the organs distrust the diplomat's western contacts"},
	{politburo.StateSecurity, politburo.Hardliner, politburo.ConsumerGoods, politburo.Reformer, 8,
		"market experiments look like ideological contamination"},
	{politburo.StateSecurity, politburo.Ideologue, politburo.Propaganda, politburo.Populist, 6,
		"doctrinal purity against crowd-pleasing slogans"},
	{politburo.StateSecurity, politburo.Opportunist, politburo.Planning, politburo.Technocrat, 7,
		"the planners keep finding discrepancies in security accounts"},
	{politburo.Defense, politburo.Militarist, politburo.ForeignAffairs, politburo.Reformer, 9,
		"detente undercuts the marshals' budget"},
	{politburo.Defense, politburo.Militarist, politburo.ConsumerGoods, politburo.Populist, 7,
		"guns against butter"},
	{politburo.Defense, politburo.Hardliner, politburo.Planning, politburo.Reformer, 6,
		"the plan keeps shaving the arms allocation"},
	{politburo.Agriculture, politburo.Reformer, politburo.Planning, politburo.Ideologue, 8,
		"private plots against collective orthodoxy"},
	{politburo.Agriculture, politburo.Ideologue, politburo.ConsumerGoods, politburo.Reformer, 6,
		"requisition quotas starve the shelves"},
	{politburo.HeavyIndustry, politburo.Hardliner, politburo.ConsumerGoods, politburo.Reformer, 7,
		"steel first, refrigerators never"},
	{politburo.HeavyIndustry, politburo.Opportunist, politburo.Planning, politburo.Technocrat, 8,
		"inflated output reports poison the plan"},
	{politburo.ForeignAffairs, politburo.Reformer, politburo.Propaganda, politburo.Ideologue, 8,
		"every opening abroad is denounced at home"},
	{politburo.Propaganda, politburo.Ideologue, politburo.ConsumerGoods, politburo.Opportunist, 5,
		"the posters promise what the stores cannot hold"},
	{politburo.Transport, politburo.Apparatchik, politburo.HeavyIndustry, politburo.Technocrat, 5,
		"freight never arrives where the engineers need it"},
	{politburo.Energy, politburo.Opportunist, politburo.HeavyIndustry, politburo.Hardliner, 6,
		"diverted fuel stalls the foundries"},

	// Cooperative pairings accumulate negative tension.
	{politburo.Defense, politburo.Militarist, politburo.HeavyIndustry, politburo.Militarist, -8,
		"arms production runs like a parade"},
	{politburo.Defense, politburo.Militarist, politburo.HeavyIndustry, politburo.Technocrat, -6,
		"the design bureaus and the marshals understand each other"},
	{politburo.Agriculture, politburo.Reformer, politburo.ConsumerGoods, politburo.Reformer, -7,
		"a quiet alliance for fuller shelves"},
	{politburo.Planning, politburo.Technocrat, politburo.Energy, politburo.Technocrat, -6,
		"the grid and the plan drawn by the same hand"},
	{politburo.StateSecurity, politburo.Hardliner, politburo.Propaganda, politburo.Ideologue, -5,
		"fear and faith reinforcing each other"},
	{politburo.Transport, politburo.Technocrat, politburo.Planning, politburo.Technocrat, -5,
		"timetables that actually hold"},
	{politburo.ForeignAffairs, politburo.Opportunist, politburo.ConsumerGoods, politburo.Opportunist, -4,
		"import licenses greasing both ministries"},
}

// processTensions applies every matching rule at a quarter of its annual
// rate, then walks the ledger for threshold crossings. Ledger iteration is
// in sorted key order so replays are draw-for-draw identical.
func (s *Simulation) processTensions() {
	for _, r := range tensionRules {
		ma := s.Ministers[r.SeatA]
		mb := s.Ministers[r.SeatB]
		if ma.Personality != r.PersA || mb.Personality != r.PersB {
			continue
		}
		s.Tensions[pairKey(r.SeatA, r.SeatB)] += r.Delta / 4
	}

	keys := make([]TensionKey, 0, len(s.Tensions))
	for k := range s.Tensions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})

	for _, k := range keys {
		v := s.Tensions[k]
		switch {
		case v > conflictThreshold:
			s.fireConflict(k)
		case v < cooperationThreshold:
			s.fireCooperation(k)
		}
	}
}

// fireConflict emits a conflict event, bruises both ministers' loyalty, and
// relaxes the pair's ledger entry.
func (s *Simulation) fireConflict(k TensionKey) {
	ma := s.Ministers[k.A]
	mb := s.Ministers[k.B]
	ma.Loyalty = politburo.ClampStat(ma.Loyalty - conflictLoyaltyHit)
	mb.Loyalty = politburo.ClampStat(mb.Loyalty - conflictLoyaltyHit)
	s.Tensions[k] -= conflictRelax

	s.emitEvent(Event{
		ID:       s.src.ID(),
		Type:     EventTensionConflict,
		Category: CategoryPolitical,
		Severity: SeverityWarning,
		Title:    "Open Feud in the Politburo",
		Description: fmt.Sprintf("The feud between %s (%s) and %s (%s) has burst into the open. Both emerge diminished.",
			ma.Name, k.A, mb.Name, k.B),
		Effects: map[string]float64{
			"stability": -5,
		},
	})
}

// fireCooperation emits an alliance event and relaxes the entry upward.
func (s *Simulation) fireCooperation(k TensionKey) {
	ma := s.Ministers[k.A]
	mb := s.Ministers[k.B]
	s.Tensions[k] += cooperationRelax

	s.emitEvent(Event{
		ID:       s.src.ID(),
		Type:     EventTensionAlliance,
		Category: CategoryPolitical,
		Severity: SeverityInfo,
		Title:    "A Working Alliance",
		Description: fmt.Sprintf("%s (%s) and %s (%s) have built a working alliance across their ministries.",
			ma.Name, k.A, mb.Name, k.B),
		Effects: map[string]float64{
			"stability": 3,
		},
	})
}
