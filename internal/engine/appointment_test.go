package engine

import (
	"testing"

	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/politburo"
)

func TestEveryArchetypeHasStrategy(t *testing.T) {
	for _, p := range politburo.Personalities {
		strat := strategyFor(p)
		if strat.Retention <= 0 || strat.Retention > 1 {
			t.Errorf("%s retention = %v, outside (0, 1]", p, strat.Retention)
		}
		if len(strat.Preferred) == 0 {
			t.Errorf("%s has no preferred appointee list", p)
		}
		if strat.MinLoyalty < 0 || strat.MinLoyalty > 100 {
			t.Errorf("%s loyalty floor = %d, out of range", p, strat.MinLoyalty)
		}
	}
}

func TestFreshMinisterDrawsFromPreferences(t *testing.T) {
	s := New(1950, entropy.NewSource(1), nil)
	strat := strategyFor(politburo.Hardliner)

	allowed := make(map[politburo.Personality]bool)
	for _, p := range strat.Preferred {
		allowed[p] = true
	}

	counts := make(map[politburo.Personality]int)
	for i := 0; i < 500; i++ {
		m := s.freshMinister(politburo.Planning, strat, 0)
		if !allowed[m.Personality] {
			t.Fatalf("appointee personality %s not in the preference list", m.Personality)
		}
		counts[m.Personality]++
	}

	// Inverse-rank weighting: the first preference dominates the last.
	first := counts[strat.Preferred[0]]
	last := counts[strat.Preferred[len(strat.Preferred)-1]]
	if first <= last {
		t.Fatalf("first preference drawn %d times, last %d; want first > last", first, last)
	}
}

func TestFreshMinisterHoneymoon(t *testing.T) {
	base := New(1950, entropy.NewSource(2), nil)
	boosted := New(1950, entropy.NewSource(2), nil)
	strat := strategyFor(politburo.Technocrat)

	// Identical sources, so the draws match; only the honeymoon differs.
	a := base.freshMinister(politburo.Energy, strat, 0)
	b := boosted.freshMinister(politburo.Energy, strat, 15)

	if b.Loyalty != politburo.ClampStat(a.Loyalty+15) {
		t.Fatalf("honeymoon loyalty = %d, want %d", b.Loyalty, politburo.ClampStat(a.Loyalty+15))
	}
}

func TestRestaffSparesSecurityChief(t *testing.T) {
	s := New(1950, entropy.NewSource(3), nil)
	s.Leader.Personality = politburo.Hardliner // does not purge the organs

	kgb := s.Ministers[politburo.StateSecurity]
	kgb.Loyalty = 5 // far below any floor, irrelevant for the organs
	kgb.Ambition = 50
	kgbID := kgb.ID

	s.restaffCabinet()

	kept := s.Ministers[politburo.StateSecurity]
	if kept.ID != kgbID {
		t.Fatal("the security chief must survive a transition under this leader")
	}
	if !kept.SurvivedTransition {
		t.Fatal("the retained chief must be marked as a survivor")
	}
	if kept.Loyalty != 0 {
		t.Fatalf("chief loyalty = %d, want 0 (5 − 10, clamped)", kept.Loyalty)
	}
	if kept.Ambition != 60 {
		t.Fatalf("chief ambition = %d, want 60 (+10)", kept.Ambition)
	}
}

func TestRestaffPurgeSecurityLeader(t *testing.T) {
	s := New(1950, entropy.NewSource(4), nil)
	s.Leader.Personality = politburo.Reformer // sweeps the organs too

	kgb := s.Ministers[politburo.StateSecurity]
	kgb.Loyalty = 0 // below any floor: cannot be retained
	kgbID := kgb.ID

	s.restaffCabinet()

	if s.Ministers[politburo.StateSecurity].ID == kgbID {
		t.Fatal("a Reformer leader must not automatically spare a disloyal security chief")
	}
}

func TestRestaffLoyaltyFloor(t *testing.T) {
	s := New(1950, entropy.NewSource(5), nil)
	s.Leader.Personality = politburo.Apparatchik // highest retention, floor 40

	ids := make(map[politburo.Portfolio]string)
	for _, seat := range politburo.Portfolios {
		m := s.Ministers[seat]
		m.Loyalty = 10 // below the floor: retention probability is irrelevant
		ids[seat] = m.ID
	}

	s.restaffCabinet()

	for _, seat := range politburo.Portfolios {
		if seat == politburo.StateSecurity {
			continue // retained unconditionally by this leader
		}
		if s.Ministers[seat].ID == ids[seat] {
			t.Fatalf("seat %s retained a minister below the loyalty floor", seat)
		}
	}
}

func TestRestaffKeepsCabinetTotal(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		s := New(1950, entropy.NewSource(seed), nil)
		s.restaffCabinet()
		s.checkInvariants()

		for _, seat := range politburo.Portfolios {
			if s.Ministers[seat] == nil || s.Ministers[seat].Portfolio != seat {
				t.Fatalf("seed %d: seat %s broken after restaff", seed, seat)
			}
		}
	}
}

func TestReplaceSeat(t *testing.T) {
	s := New(1950, entropy.NewSource(6), nil)
	old := s.Ministers[politburo.Transport].ID

	s.replaceSeat(politburo.Transport, 20)

	m := s.Ministers[politburo.Transport]
	if m.ID == old {
		t.Fatal("replaceSeat must install a new minister")
	}
	if m.Tenure != 0 {
		t.Fatal("a fresh appointee starts with zero tenure")
	}
}
