package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/politburo"
)

// roundTrip encodes a snapshot to JSON, decodes it, restores an engine from
// the decoded form, and re-serializes. Both byte strings are returned.
func roundTrip(t *testing.T, snap *Snapshot) (first, second []byte) {
	t.Helper()

	first, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := Restore(&decoded, nil, entropy.NewSource(0))
	second, err = json.Marshal(restored.Serialize())
	if err != nil {
		t.Fatalf("marshal restored: %v", err)
	}
	return first, second
}

func TestSnapshotRoundTripFreshGame(t *testing.T) {
	s := New(1950, entropy.NewSource(7), nil)

	first, second := roundTrip(t, s.Serialize())
	if !bytes.Equal(first, second) {
		t.Fatalf("round trip not byte-identical:\n%s\n---\n%s", first, second)
	}
}

func TestSnapshotRoundTripAgedGame(t *testing.T) {
	s := New(1950, entropy.NewSource(8), nil)
	for i := 0; i < 60; i++ {
		s.Tick(Boundaries{NewMonth: true, NewYear: s.Month == 12})
	}

	first, second := roundTrip(t, s.Serialize())
	if !bytes.Equal(first, second) {
		t.Fatalf("round trip after five years not byte-identical:\n%s\n---\n%s", first, second)
	}
}

// The stored policy state is restored verbatim, never recomposed: a saved
// CorruptionDrain of 2.5 survives the trip even though no cabinet could
// compose it.
func TestSnapshotPolicyVerbatim(t *testing.T) {
	s := New(1950, entropy.NewSource(9), nil)
	snap := s.Serialize()
	snap.Policy.CorruptionDrain = 2.5

	first, second := roundTrip(t, snap)
	if !bytes.Equal(first, second) {
		t.Fatal("round trip with out-of-band policy not byte-identical")
	}

	restored := Restore(snap, nil, entropy.NewSource(0))
	if restored.Policy.CorruptionDrain != 2.5 {
		t.Fatalf("CorruptionDrain = %v after restore, want 2.5", restored.Policy.CorruptionDrain)
	}
}

func TestSnapshotSharesNoMemory(t *testing.T) {
	s := New(1950, entropy.NewSource(10), nil)
	snap := s.Serialize()

	snap.Ministers[0].Loyalty = -999
	snap.Leader.Name = "Nobody"
	if len(snap.Factions) > 0 {
		snap.Factions[0].MemberIDs[0] = "tampered"
	}

	if s.Ministers[politburo.StateSecurity].Loyalty == -999 {
		t.Fatal("snapshot shares minister memory with the live graph")
	}
	if s.Leader.Name == "Nobody" {
		t.Fatal("snapshot shares leader memory with the live graph")
	}
	for _, f := range s.Factions {
		for _, id := range f.MemberIDs {
			if id == "tampered" {
				t.Fatal("snapshot shares faction member slices with the live graph")
			}
		}
	}
}

func TestSnapshotTensionsSorted(t *testing.T) {
	s := New(1950, entropy.NewSource(11), nil)
	s.Tensions[pairKey(politburo.Energy, politburo.Transport)] = 5
	s.Tensions[pairKey(politburo.Defense, politburo.StateSecurity)] = 3
	s.Tensions[pairKey(politburo.Planning, politburo.Agriculture)] = 7

	snap := s.Serialize()
	for i := 1; i < len(snap.Tensions); i++ {
		prev, cur := snap.Tensions[i-1], snap.Tensions[i]
		if prev.A > cur.A || (prev.A == cur.A && prev.B >= cur.B) {
			t.Fatalf("tensions not in canonical order: %+v before %+v", prev, cur)
		}
	}
	for _, e := range snap.Tensions {
		if e.A >= e.B {
			t.Fatalf("tension entry not normalized: %+v", e)
		}
	}
}

func TestRestoreClampsMalformedData(t *testing.T) {
	snap := &Snapshot{
		Version: SnapshotVersion,
		Year:    1960,
		Month:   0, // invalid
		Leader: politburo.Leader{
			ID: "L1", Name: "Test Leader",
			Paranoia: 500, Health: -20, Age: 60, Alive: false,
		},
		Ministers: []politburo.Minister{
			{
				ID: "m1", Name: "First", Portfolio: politburo.Agriculture,
				Personality: politburo.Personality(99),
				Loyalty:     150, Competence: -5, Ambition: 40, Corruption: 30,
				Tenure: -2, PurgeRisk: -1,
			},
			{
				// Duplicate seat: must be dropped, first claim wins.
				ID: "m2", Name: "Second", Portfolio: politburo.Agriculture,
				Loyalty: 50, Competence: 50,
			},
		},
	}

	s := Restore(snap, nil, entropy.NewSource(1))

	if s.Month != 1 {
		t.Fatalf("month = %d, want 1", s.Month)
	}
	if !s.Leader.Alive || s.Leader.Departure != "" {
		t.Fatal("restored leader must be alive")
	}
	if s.Leader.Paranoia != 100 {
		t.Fatalf("paranoia = %d, want clamped 100", s.Leader.Paranoia)
	}
	if s.Leader.Health != 1 {
		t.Fatalf("health = %d, want 1 (dead-on-load floor)", s.Leader.Health)
	}

	agri := s.Ministers[politburo.Agriculture]
	if agri.ID != "m1" {
		t.Fatalf("seat went to %s, first claim should win", agri.ID)
	}
	if agri.Loyalty != 100 || agri.Competence != 0 {
		t.Fatalf("stats not clamped: loyalty=%d competence=%d", agri.Loyalty, agri.Competence)
	}
	if agri.Personality != politburo.Apparatchik {
		t.Fatalf("invalid personality should fall back to Apparatchik, got %s", agri.Personality)
	}
	if agri.Tenure != 0 || agri.PurgeRisk != 0 {
		t.Fatal("negative tenure and purge risk must floor at zero")
	}

	// The other nine seats were missing from the file and must be staffed.
	for _, seat := range politburo.Portfolios {
		if s.Ministers[seat] == nil {
			t.Fatalf("seat %s left empty after restore", seat)
		}
	}
}

func TestRestoreReissuesMissingMinisterIDs(t *testing.T) {
	// A hand-edited or truncated file can come back with every minister's
	// ID decoding to "". The load must reissue IDs, not abort.
	snap := &Snapshot{
		Version: SnapshotVersion,
		Year:    1958,
		Month:   4,
		Leader:  politburo.Leader{ID: "L1", Name: "Test Leader", Health: 80, Age: 55, Alive: true},
	}
	for i, seat := range politburo.Portfolios {
		snap.Ministers = append(snap.Ministers, politburo.Minister{
			Name: "Nameless", Portfolio: seat,
			Loyalty: 60 + i, Competence: 50, Ambition: 40,
		})
	}

	s := Restore(snap, nil, entropy.NewSource(3))

	seen := make(map[string]bool)
	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]
		if m.ID == "" {
			t.Fatalf("seat %s restored with an empty ID", seat)
		}
		if seen[m.ID] {
			t.Fatalf("ID %s assigned to two seats", m.ID)
		}
		seen[m.ID] = true
	}
	// Stats from the file survive the reissue.
	if s.Ministers[politburo.StateSecurity].Loyalty != 60 {
		t.Fatalf("loyalty = %d, want 60", s.Ministers[politburo.StateSecurity].Loyalty)
	}
}

func TestRestoreReissuesDuplicateMinisterIDs(t *testing.T) {
	snap := &Snapshot{
		Version: SnapshotVersion,
		Year:    1958,
		Month:   4,
		Leader:  politburo.Leader{ID: "L1", Name: "Test Leader", Health: 80, Age: 55, Alive: true},
		Ministers: []politburo.Minister{
			{ID: "same", Name: "One", Portfolio: politburo.StateSecurity, Loyalty: 70, Competence: 50},
			{ID: "same", Name: "Two", Portfolio: politburo.Defense, Loyalty: 70, Competence: 50},
		},
	}

	s := Restore(snap, nil, entropy.NewSource(4))

	kgb := s.Ministers[politburo.StateSecurity]
	army := s.Ministers[politburo.Defense]
	if kgb.ID != "same" {
		t.Fatalf("first claim on an ID should win, got %s", kgb.ID)
	}
	if army.ID == "same" || army.ID == "" {
		t.Fatalf("second holder of a duplicate ID must be reissued, got %q", army.ID)
	}
}

func TestRestoreGeneratesMissingLeader(t *testing.T) {
	snap := &Snapshot{Version: SnapshotVersion, Year: 1955, Month: 6}

	s := Restore(snap, nil, entropy.NewSource(2))
	if s.Leader == nil || s.Leader.ID == "" || !s.Leader.Alive {
		t.Fatal("restore must generate a leader when the file has none")
	}
	if s.Year != 1955 || s.Month != 6 {
		t.Fatalf("calendar = %d/%d, want 1955/6", s.Year, s.Month)
	}
}

func TestRestoreNilSource(t *testing.T) {
	s := New(1950, entropy.NewSource(3), nil)
	restored := Restore(s.Serialize(), nil, nil)
	if restored == nil {
		t.Fatal("restore with nil source must fall back to a default")
	}
	restored.Tick(Boundaries{NewMonth: true})
}

func TestRestoreIsTickable(t *testing.T) {
	s := New(1950, entropy.NewSource(4), nil)
	for i := 0; i < 30; i++ {
		s.Tick(Boundaries{NewMonth: true, NewYear: s.Month == 12})
	}

	restored := Restore(s.Serialize(), nil, entropy.NewSource(4))
	for i := 0; i < 30; i++ {
		restored.Tick(Boundaries{NewMonth: true, NewYear: restored.Month == 12})
	}
}
