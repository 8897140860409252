// Agent spawning — creates leaders and ministers with personality-dependent
// starting stats. All draws come from the shared entropy source.
package politburo

import (
	"github.com/talgya/politburo/internal/entropy"
)

// Spawner creates agents for the simulation.
type Spawner struct {
	src *entropy.Source
}

// NewSpawner creates a spawner drawing from the given source.
func NewSpawner(src *entropy.Source) *Spawner {
	return &Spawner{src: src}
}

// Name generates a full name in the first-patronymic-surname pattern.
func (s *Spawner) Name() string {
	first := entropy.Pick(s.src, firstNames)
	patronymic := entropy.Pick(s.src, patronymics)
	last := entropy.Pick(s.src, surnames)
	return first + " " + patronymic + " " + last
}

// Leader creates a fresh head of state appointed in the given year.
func (s *Spawner) Leader(year int) *Leader {
	return &Leader{
		ID:          s.src.ID(),
		Name:        s.Name(),
		Personality: Personality(s.src.IntRange(0, NumPersonalities-1)),
		Paranoia:    s.src.IntRange(15, 50),
		Health:      s.src.IntRange(65, 95),
		Age:         s.src.IntRange(52, 68),
		Appointed:   year,
		Alive:       true,
	}
}

// LeaderFromMinister promotes a minister who seized power. The new leader
// keeps the minister's personality and identity and starts deeply paranoid:
// whoever takes the chair by force knows exactly how it can be taken.
func (s *Spawner) LeaderFromMinister(m *Minister, year int) *Leader {
	return &Leader{
		ID:          m.ID,
		Name:        m.Name,
		Personality: m.Personality,
		Paranoia:    ClampStat(50 + s.src.IntRange(10, 30)),
		Health:      s.src.IntRange(70, 95),
		Age:         s.src.IntRange(48, 62),
		Appointed:   year,
		Alive:       true,
	}
}

// Minister creates a fresh appointee for a seat with the given personality.
func (s *Spawner) Minister(seat Portfolio, personality Personality) *Minister {
	m := &Minister{
		ID:          s.src.ID(),
		Name:        s.Name(),
		Portfolio:   seat,
		Personality: personality,
		Loyalty:     s.src.IntRange(40, 80),
		Competence:  s.src.IntRange(30, 85),
		Ambition:    s.src.IntRange(20, 75),
		Corruption:  s.src.IntRange(5, 40),
	}
	s.applyPersonalityBias(m)
	return m
}

// applyPersonalityBias nudges starting stats toward archetype tendencies.
func (s *Spawner) applyPersonalityBias(m *Minister) {
	switch m.Personality {
	case Hardliner:
		m.Loyalty = ClampStat(m.Loyalty + 10)
		m.Corruption = ClampStat(m.Corruption - 10)
	case Reformer:
		m.Competence = ClampStat(m.Competence + 10)
		m.Loyalty = ClampStat(m.Loyalty - 5)
	case Technocrat:
		m.Competence = ClampStat(m.Competence + 15)
		m.Ambition = ClampStat(m.Ambition - 10)
	case Apparatchik:
		m.Loyalty = ClampStat(m.Loyalty + 5)
		m.Competence = ClampStat(m.Competence - 10)
	case Opportunist:
		m.Ambition = ClampStat(m.Ambition + 15)
		m.Corruption = ClampStat(m.Corruption + 15)
	case Ideologue:
		m.Loyalty = ClampStat(m.Loyalty + 15)
		m.Competence = ClampStat(m.Competence - 5)
	case Populist:
		m.Ambition = ClampStat(m.Ambition + 10)
	case Militarist:
		m.Ambition = ClampStat(m.Ambition + 5)
		m.Loyalty = ClampStat(m.Loyalty + 5)
	}
}
