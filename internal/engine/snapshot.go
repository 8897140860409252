// Save-game snapshots. The serialized form is plain nested records and
// arrays — no maps — so it survives a JSON encode/decode cycle unchanged,
// and serializing a freshly restored engine reproduces the prior bytes
// exactly.
package engine

import (
	"sort"

	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/policy"
	"github.com/talgya/politburo/internal/politburo"
)

// SnapshotVersion identifies the save format.
const SnapshotVersion = 1

// TensionEntry is one flattened ledger entry. A is always the lower seat.
type TensionEntry struct {
	A     politburo.Portfolio `json:"a"`
	B     politburo.Portfolio `json:"b"`
	Value float64             `json:"value"`
}

// Snapshot is the complete plain-data image of the agent graph.
type Snapshot struct {
	Version int `json:"version"`
	Year    int `json:"year"`
	Month   int `json:"month"`

	Leader        politburo.Leader     `json:"leader"`
	Ministers     []politburo.Minister `json:"ministers"`
	Factions      []politburo.Faction  `json:"factions"`
	Tensions      []TensionEntry       `json:"tensions"`
	LeaderHistory []politburo.Leader   `json:"leader_history"`
	PurgeHistory  []PurgeRecord        `json:"purge_history"`

	Policy    policy.State     `json:"policy"`
	Resources ResourceSnapshot `json:"resources"`
}

// Serialize captures the full agent graph. The result shares no memory with
// the live simulation. Ordering is canonical: ministers by seat, tensions by
// pair, factions and histories in their stored order.
func (s *Simulation) Serialize() *Snapshot {
	snap := &Snapshot{
		Version:       SnapshotVersion,
		Year:          s.Year,
		Month:         s.Month,
		Leader:        *s.Leader,
		Ministers:     make([]politburo.Minister, 0, politburo.NumPortfolios),
		Factions:      make([]politburo.Faction, 0, len(s.Factions)),
		Tensions:      make([]TensionEntry, 0, len(s.Tensions)),
		LeaderHistory: append([]politburo.Leader(nil), s.LeaderHistory...),
		PurgeHistory:  append([]PurgeRecord(nil), s.PurgeHistory...),
		Policy:        s.Policy,
		Resources:     s.Resources,
	}

	for _, seat := range politburo.Portfolios {
		if m, ok := s.Ministers[seat]; ok {
			snap.Ministers = append(snap.Ministers, *m)
		}
	}

	for _, f := range s.Factions {
		cp := *f
		cp.MemberIDs = append([]string(nil), f.MemberIDs...)
		snap.Factions = append(snap.Factions, cp)
	}

	for k, v := range s.Tensions {
		snap.Tensions = append(snap.Tensions, TensionEntry{A: k.A, B: k.B, Value: v})
	}
	sort.Slice(snap.Tensions, func(i, j int) bool {
		if snap.Tensions[i].A != snap.Tensions[j].A {
			return snap.Tensions[i].A < snap.Tensions[j].A
		}
		return snap.Tensions[i].B < snap.Tensions[j].B
	})

	return snap
}

// Restore builds a tickable engine from a snapshot. A save file is user
// data: out-of-range stats are clamped and missing pieces are substituted
// with documented defaults rather than aborting the load. Well-formed
// snapshots restore value-for-value.
//
// The random source is the host-injected one; pass nil to fall back to a
// zero-seeded source.
func Restore(snap *Snapshot, emit func(Event), src *entropy.Source) *Simulation {
	if src == nil {
		src = entropy.NewSource(0)
	}

	s := &Simulation{
		Ministers: make(map[politburo.Portfolio]*politburo.Minister, politburo.NumPortfolios),
		Tensions:  make(map[TensionKey]float64),
		Year:      snap.Year,
		Month:     snap.Month,
		Resources: snap.Resources,
		Policy:    snap.Policy,
		src:       src,
		spawner:   politburo.NewSpawner(src),
		emit:      emit,
	}
	if s.Month < 1 || s.Month > 12 {
		s.Month = 1
	}

	leader := snap.Leader
	if leader.ID == "" {
		l := s.spawner.Leader(s.Year)
		leader = *l
	}
	sanitizeLeader(&leader)
	leader.Alive = true
	leader.Departure = ""
	s.Leader = &leader

	seenIDs := make(map[string]bool, politburo.NumPortfolios)
	for i := range snap.Ministers {
		m := snap.Ministers[i]
		if int(m.Portfolio) >= politburo.NumPortfolios {
			continue
		}
		if _, dup := s.Ministers[m.Portfolio]; dup {
			continue
		}
		sanitizeMinister(&m)
		// A file with missing or repeated minister IDs would corrupt the
		// ID-uniqueness invariant; reissue rather than abort the load.
		if m.ID == "" || seenIDs[m.ID] {
			m.ID = src.ID()
		}
		seenIDs[m.ID] = true
		s.Ministers[m.Portfolio] = &m
	}
	// Any seat the file failed to staff gets a fresh appointee; the mapping
	// must stay total.
	strat := strategyFor(s.Leader.Personality)
	for _, seat := range politburo.Portfolios {
		if _, ok := s.Ministers[seat]; !ok {
			s.Ministers[seat] = s.freshMinister(seat, strat, 0)
		}
	}

	for i := range snap.Factions {
		f := snap.Factions[i]
		f.MemberIDs = append([]string(nil), snap.Factions[i].MemberIDs...)
		s.Factions = append(s.Factions, &f)
	}

	for _, e := range snap.Tensions {
		if int(e.A) >= politburo.NumPortfolios || int(e.B) >= politburo.NumPortfolios {
			continue
		}
		s.Tensions[pairKey(e.A, e.B)] += e.Value
	}

	s.LeaderHistory = append([]politburo.Leader(nil), snap.LeaderHistory...)
	for i := range s.LeaderHistory {
		s.LeaderHistory[i].Alive = false
	}
	s.PurgeHistory = append([]PurgeRecord(nil), snap.PurgeHistory...)

	s.checkInvariants()
	return s
}

func sanitizeLeader(l *politburo.Leader) {
	l.Paranoia = politburo.ClampStat(l.Paranoia)
	l.Health = politburo.ClampStat(l.Health)
	if l.Age < 0 {
		l.Age = 0
	}
	if l.Health == 0 {
		// A dead-on-load leader cannot run the next tick; give the check a
		// chance to retire them properly.
		l.Health = 1
	}
}

func sanitizeMinister(m *politburo.Minister) {
	m.Loyalty = politburo.ClampStat(m.Loyalty)
	m.Competence = politburo.ClampStat(m.Competence)
	m.Ambition = politburo.ClampStat(m.Ambition)
	m.Corruption = politburo.ClampStat(m.Corruption)
	if int(m.Personality) >= politburo.NumPersonalities {
		m.Personality = politburo.Apparatchik
	}
	if m.Tenure < 0 {
		m.Tenure = 0
	}
	if m.PurgeRisk < 0 {
		m.PurgeRisk = 0
	}
}
