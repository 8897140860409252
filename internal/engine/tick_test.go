package engine

import (
	"testing"

	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/policy"
	"github.com/talgya/politburo/internal/politburo"
)

// benignSnapshot builds a save of a cabinet that cannot plot, fail, or fall:
// total loyalty, no ambition, no corruption, a calm leader in good health.
// Restoring it gives a deterministic baseline for boundary mechanics.
func benignSnapshot() *Snapshot {
	seatPersonalities := [politburo.NumPortfolios]politburo.Personality{
		politburo.Hardliner, // security chief, deliberately unaffiliated
		politburo.Reformer, politburo.Reformer,
		politburo.Technocrat, politburo.Technocrat,
		politburo.Apparatchik, politburo.Apparatchik,
		politburo.Opportunist, politburo.Opportunist,
		politburo.Ideologue,
	}

	snap := &Snapshot{
		Version: SnapshotVersion,
		Year:    1950,
		Month:   12,
		Leader: politburo.Leader{
			ID: "leader-1", Name: "Pavel Sergeyevich Morozov",
			Personality: politburo.Technocrat,
			Paranoia:    50, Health: 100, Age: 50,
			Appointed: 1948, Alive: true,
		},
		Policy: policy.Neutral(),
	}

	for i, seat := range politburo.Portfolios {
		snap.Ministers = append(snap.Ministers, politburo.Minister{
			ID:          string(rune('a' + i)),
			Name:        "Comrade Minister",
			Portfolio:   seat,
			Personality: seatPersonalities[i],
			Loyalty:     100,
			Competence:  50,
			Tenure:      3,
		})
	}
	return snap
}

func TestTickAdvancesTenureOncePerYear(t *testing.T) {
	s := Restore(benignSnapshot(), nil, entropy.NewSource(1))

	ids := make(map[politburo.Portfolio]string)
	for _, seat := range politburo.Portfolios {
		ids[seat] = s.Ministers[seat].ID
	}

	s.Tick(Boundaries{NewMonth: true, NewYear: true})
	s.Tick(Boundaries{NewMonth: true, NewYear: true})

	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]
		if m.ID != ids[seat] {
			t.Fatalf("seat %s changed hands in a benign cabinet", seat)
		}
		if m.Tenure != 5 {
			t.Fatalf("seat %s tenure = %d, want 5 (started at 3, two year ticks)", seat, m.Tenure)
		}
	}
	if len(s.LeaderHistory) != 0 {
		t.Fatal("a calm, healthy leader should survive two years")
	}
	if s.Year != 1952 || s.Month != 1 {
		t.Fatalf("calendar = %d/%d, want 1952/1", s.Year, s.Month)
	}
}

func TestTickYearBoundaryImpliesMonth(t *testing.T) {
	// A host sending only the year boundary still gets a full monthly
	// step; the calendar must not lag the year-end processing.
	s := Restore(benignSnapshot(), nil, entropy.NewSource(5))

	s.Tick(Boundaries{NewYear: true})

	if s.Year != 1951 || s.Month != 1 {
		t.Fatalf("calendar = %d/%d, want 1951/1", s.Year, s.Month)
	}
	for _, seat := range politburo.Portfolios {
		if got := s.Ministers[seat].Tenure; got != 4 {
			t.Fatalf("seat %s tenure = %d, want 4 after one year tick", seat, got)
		}
	}
}

func TestTickCalendar(t *testing.T) {
	s := Restore(benignSnapshot(), nil, entropy.NewSource(2))
	s.Month = 1
	s.Year = 1950

	for i := 0; i < 11; i++ {
		s.Tick(Boundaries{NewMonth: true})
	}
	if s.Year != 1950 || s.Month != 12 {
		t.Fatalf("calendar = %d/%d after 11 monthly ticks, want 1950/12", s.Year, s.Month)
	}

	s.Tick(Boundaries{NewMonth: true, NewYear: true})
	if s.Year != 1951 || s.Month != 1 {
		t.Fatalf("calendar = %d/%d after year boundary, want 1951/1", s.Year, s.Month)
	}
}

func TestTickNoBoundaries(t *testing.T) {
	s := Restore(benignSnapshot(), nil, entropy.NewSource(3))
	before := *s.Serialize()

	s.Tick(Boundaries{})

	after := *s.Serialize()
	if before.Year != after.Year || before.Month != after.Month {
		t.Fatal("a tick crossing no boundary must not advance the calendar")
	}
	for i := range before.Ministers {
		if before.Ministers[i] != after.Ministers[i] {
			t.Fatal("a tick crossing no boundary must not touch the cabinet")
		}
	}
}

// A decade of unconstrained simulation: whatever the dice decide, the
// structural invariants must hold after every single tick.
func TestTickLongRunInvariants(t *testing.T) {
	var events []Event
	s := New(1950, entropy.NewSource(1917), func(e Event) { events = append(events, e) })

	for tick := 0; tick < 120; tick++ {
		s.Tick(Boundaries{NewMonth: true, NewYear: s.Month == 12})

		if s.Month < 1 || s.Month > 12 {
			t.Fatalf("month %d out of range at tick %d", s.Month, tick)
		}
		for _, seat := range politburo.Portfolios {
			m := s.Ministers[seat]
			if m == nil {
				t.Fatalf("seat %s empty at tick %d", seat, tick)
			}
			if m.Portfolio != seat {
				t.Fatalf("minister filed under %s holds %s", seat, m.Portfolio)
			}
		}
		if !s.Leader.Alive {
			t.Fatalf("sitting leader dead at tick %d", tick)
		}
	}

	if s.Year != 1960 {
		t.Fatalf("year = %d after 120 monthly ticks, want 1960", s.Year)
	}
	for _, past := range s.LeaderHistory {
		if past.Alive || past.Departure == "" {
			t.Fatalf("archived leader inconsistent: %+v", past)
		}
	}
	for _, rec := range s.PurgeHistory {
		if rec.Reason == "" || rec.Year < 1950 {
			t.Fatalf("purge record inconsistent: %+v", rec)
		}
	}
	for _, e := range events {
		if e.ID == "" || e.Type == "" || e.Title == "" || e.Severity == "" {
			t.Fatalf("malformed event emitted: %+v", e)
		}
	}
}

func TestDriftKeepsStatsBounded(t *testing.T) {
	s := New(1950, entropy.NewSource(21), nil)

	for i := 0; i < 240; i++ {
		s.driftStats()
	}
	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]
		for name, stat := range map[string]int{
			"loyalty": m.Loyalty, "competence": m.Competence,
			"ambition": m.Ambition, "corruption": m.Corruption,
		} {
			if stat < 0 || stat > 100 {
				t.Fatalf("seat %s %s = %d after prolonged drift", seat, name, stat)
			}
		}
	}
}
