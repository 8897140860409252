// Faction formation — the annual discard-and-rebuild grouping of ministers
// by personality alignment. Factions are a derived view of the cabinet, not
// independently mutated state; identity never survives a rebuild.
package engine

import (
	"fmt"

	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/politburo"
)

var factionEpithets = []string{
	"Bloc", "Circle", "Group", "Faction", "Network", "Clique",
}

// rebuildFactions discards the previous faction view entirely and regroups
// the cabinet by archetype. Any group of two or more ministers becomes a
// faction; singletons stay unaffiliated. Influence is the sum of members'
// competence and ambition; support follows the compatibility table against
// the sitting leader.
func (s *Simulation) rebuildFactions() {
	for _, seat := range politburo.Portfolios {
		s.Ministers[seat].FactionID = ""
	}
	s.Factions = s.Factions[:0]

	// Group in canonical seat order so member lists are stable.
	groups := make(map[politburo.Personality][]*politburo.Minister)
	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]
		groups[m.Personality] = append(groups[m.Personality], m)
	}

	for _, p := range politburo.Personalities {
		members := groups[p]
		if len(members) < 2 {
			continue
		}

		f := &politburo.Faction{
			ID:        s.src.ID(),
			Name:      fmt.Sprintf("The %s %s", p, entropy.Pick(s.src, factionEpithets)),
			Alignment: p,
			Supports:  politburo.Compatible(s.Leader.Personality, p),
		}
		for _, m := range members {
			f.MemberIDs = append(f.MemberIDs, m.ID)
			f.Influence += m.Competence + m.Ambition
			m.FactionID = f.ID
		}
		s.Factions = append(s.Factions, f)
	}
}
