// Package politburo provides the governing-council data model: the General
// Secretary, the ten portfolio ministers, and the derived faction view.
package politburo

// Personality is one of the 8 fixed archetypes that anchor appointment,
// compatibility, and policy behavior.
type Personality uint8

const (
	Hardliner Personality = iota
	Reformer
	Technocrat
	Apparatchik
	Opportunist
	Ideologue
	Populist
	Militarist
)

// NumPersonalities is the number of fixed archetypes.
const NumPersonalities = 8

// Personalities lists every archetype in declaration order.
var Personalities = [NumPersonalities]Personality{
	Hardliner, Reformer, Technocrat, Apparatchik,
	Opportunist, Ideologue, Populist, Militarist,
}

var personalityNames = [NumPersonalities]string{
	"Hardliner", "Reformer", "Technocrat", "Apparatchik",
	"Opportunist", "Ideologue", "Populist", "Militarist",
}

func (p Personality) String() string {
	if int(p) < len(personalityNames) {
		return personalityNames[p]
	}
	return "Unknown"
}

// Portfolio is one of the 10 fixed cabinet seats. Declaration order is the
// canonical iteration order for every per-minister evaluation; the security
// organs deliberately come first.
type Portfolio uint8

const (
	StateSecurity Portfolio = iota
	Defense
	Agriculture
	HeavyIndustry
	ConsumerGoods
	Planning
	ForeignAffairs
	Propaganda
	Transport
	Energy
)

// NumPortfolios is the number of fixed cabinet seats.
const NumPortfolios = 10

// Portfolios lists every seat in canonical iteration order.
var Portfolios = [NumPortfolios]Portfolio{
	StateSecurity, Defense, Agriculture, HeavyIndustry, ConsumerGoods,
	Planning, ForeignAffairs, Propaganda, Transport, Energy,
}

var portfolioNames = [NumPortfolios]string{
	"State Security", "Defense", "Agriculture", "Heavy Industry",
	"Consumer Goods", "Planning", "Foreign Affairs", "Propaganda",
	"Transport", "Energy",
}

func (p Portfolio) String() string {
	if int(p) < len(portfolioNames) {
		return portfolioNames[p]
	}
	return "Unknown"
}

// Cause records why a leader's tenure ended. Empty while the leader lives.
type Cause string

const (
	CauseNaturalDeath Cause = "natural_causes"
	CauseCoup         Cause = "coup"
	CauseScripted     Cause = "scripted"
)

// Leader is the head of state. Exactly one Leader is alive at a time; all
// prior leaders persist, frozen, in the leader history.
type Leader struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Personality Personality `json:"personality"`
	Paranoia    int         `json:"paranoia"` // 0–100
	Health      int         `json:"health"`   // 0–100, zero means death
	Age         int         `json:"age"`
	Appointed   int         `json:"appointed"` // year of appointment
	Alive       bool        `json:"alive"`
	Departure   Cause       `json:"departure,omitempty"`
}

// Minister holds one portfolio. The portfolio→minister mapping is total:
// every seat is occupied at all times, with no duplicates.
type Minister struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Portfolio   Portfolio   `json:"portfolio"`
	Personality Personality `json:"personality"`

	Loyalty    int `json:"loyalty"`    // 0–100
	Competence int `json:"competence"` // 0–100
	Ambition   int `json:"ambition"`   // 0–100
	Corruption int `json:"corruption"` // 0–100

	Tenure int `json:"tenure"` // years served in the seat

	// FactionID references the derived faction view; lookup-only, rebuilt
	// every year.
	FactionID string `json:"faction_id,omitempty"`

	// SurvivedTransition marks ministers retained through the most recent
	// leadership change.
	SurvivedTransition bool `json:"survived_transition"`

	// PurgeRisk accumulates with every purge evaluation. Narrative-only:
	// the stochastic checks never read it back.
	PurgeRisk float64 `json:"purge_risk"`
}

// Faction is a derived grouping of ministers sharing a personality
// alignment. Factions are discarded and rebuilt wholesale each year; IDs are
// never preserved across rebuilds.
type Faction struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Alignment Personality `json:"alignment"`
	MemberIDs []string    `json:"member_ids"`
	Influence int         `json:"influence"` // sum of members' competence+ambition
	Supports  bool        `json:"supports_leader"`
}

// ClampStat bounds a 0–100 stat.
func ClampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Clamp01 bounds a probability to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
