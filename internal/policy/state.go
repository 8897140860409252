// Package policy derives the aggregate policy state of the current cabinet.
// The state is a pure function of the leader and ministers, recomputed from
// scratch on every composition — never patched incrementally.
package policy

// State is the combined effect of the sitting cabinet, consumed read-only by
// the production and consumption systems outside the engine.
//
// Multiplier fields are neutral at 1.0. Level fields are 0–100 scales with
// the neutral defaults noted per field. Flags apply verbatim.
type State struct {
	// Output multipliers, neutral 1.0.
	FarmOutput          float64 `json:"farm_output"`
	IndustryOutput      float64 `json:"industry_output"`
	ConsumerGoods       float64 `json:"consumer_goods"`
	EnergyOutput        float64 `json:"energy_output"`
	TransportEfficiency float64 `json:"transport_efficiency"`
	ResearchSpeed       float64 `json:"research_speed"`
	MilitaryStrength    float64 `json:"military_strength"`
	ConstructionSpeed   float64 `json:"construction_speed"`
	CorruptionDrain     float64 `json:"corruption_drain"`
	QuotaDifficulty     float64 `json:"quota_difficulty"`

	// Level fields, 0–100.
	FearLevel           float64 `json:"fear_level"`           // neutral 20
	Surveillance        float64 `json:"surveillance"`         // neutral 30
	PropagandaIntensity float64 `json:"propaganda_intensity"` // neutral 40
	LaborDiscipline     float64 `json:"labor_discipline"`     // neutral 50
	ForeignTension      float64 `json:"foreign_tension"`      // neutral 40

	// Policy flags.
	PrivatePlotsAllowed   bool `json:"private_plots_allowed"`   // default true
	WesternImportsAllowed bool `json:"western_imports_allowed"` // default false
	CulturalThaw          bool `json:"cultural_thaw"`           // default false
	ReligionTolerated     bool `json:"religion_tolerated"`      // default false
	BorderOpen            bool `json:"border_open"`             // default false
}

// Neutral returns the documented defaults a cabinet of perfectly average
// ministers would leave untouched.
func Neutral() State {
	return State{
		FarmOutput:          1.0,
		IndustryOutput:      1.0,
		ConsumerGoods:       1.0,
		EnergyOutput:        1.0,
		TransportEfficiency: 1.0,
		ResearchSpeed:       1.0,
		MilitaryStrength:    1.0,
		ConstructionSpeed:   1.0,
		CorruptionDrain:     1.0,
		QuotaDifficulty:     1.0,

		FearLevel:           20,
		Surveillance:        30,
		PropagandaIntensity: 40,
		LaborDiscipline:     50,
		ForeignTension:      40,

		PrivatePlotsAllowed: true,
	}
}
