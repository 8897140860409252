package politburo

import "testing"

func TestEnumTables(t *testing.T) {
	if len(Personalities) != NumPersonalities {
		t.Fatalf("Personalities table has %d entries, want %d", len(Personalities), NumPersonalities)
	}
	if len(Portfolios) != NumPortfolios {
		t.Fatalf("Portfolios table has %d entries, want %d", len(Portfolios), NumPortfolios)
	}

	// Declaration order is the canonical iteration order.
	if Portfolios[0] != StateSecurity {
		t.Fatal("the security organs must come first in canonical order")
	}
}

func TestPersonalityString(t *testing.T) {
	tests := []struct {
		p    Personality
		want string
	}{
		{Hardliner, "Hardliner"},
		{Militarist, "Militarist"},
		{Personality(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Personality(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPortfolioString(t *testing.T) {
	tests := []struct {
		p    Portfolio
		want string
	}{
		{StateSecurity, "State Security"},
		{HeavyIndustry, "Heavy Industry"},
		{Energy, "Energy"},
		{Portfolio(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Portfolio(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestClampStat(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{150, 100},
	}
	for _, tt := range tests {
		if got := ClampStat(tt.in); got != tt.want {
			t.Errorf("ClampStat(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.3, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.1025, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
