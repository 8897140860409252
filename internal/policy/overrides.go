// The portfolio × personality interaction table. Each entry is a sparse
// partial override: only the fields a minister of that temperament actually
// bends are present. A combination with no entry leaves the aggregate alone.
package policy

import (
	"github.com/talgya/politburo/internal/politburo"
)

// Override is a partial record of policy field overrides. Nil fields are
// untouched. Multiplier and level overrides are blended under competence
// scaling; flag overrides apply verbatim.
type Override struct {
	FarmOutput          *float64
	IndustryOutput      *float64
	ConsumerGoods       *float64
	EnergyOutput        *float64
	TransportEfficiency *float64
	ResearchSpeed       *float64
	MilitaryStrength    *float64
	ConstructionSpeed   *float64
	CorruptionDrain     *float64
	QuotaDifficulty     *float64

	FearLevel           *float64
	Surveillance        *float64
	PropagandaIntensity *float64
	LaborDiscipline     *float64
	ForeignTension      *float64

	PrivatePlotsAllowed   *bool
	WesternImportsAllowed *bool
	CulturalThaw          *bool
	ReligionTolerated     *bool
	BorderOpen            *bool
}

// Lookup returns the override for a seat/personality combination.
func Lookup(seat politburo.Portfolio, p politburo.Personality) (Override, bool) {
	byPersonality, ok := overrides[seat]
	if !ok {
		return Override{}, false
	}
	o, ok := byPersonality[p]
	return o, ok
}

func fv(v float64) *float64 { return &v }
func bv(v bool) *bool       { return &v }

var overrides = map[politburo.Portfolio]map[politburo.Personality]Override{
	politburo.StateSecurity: {
		politburo.Hardliner: {
			FearLevel:         fv(65),
			Surveillance:      fv(80),
			LaborDiscipline:   fv(65),
			ReligionTolerated: bv(false),
		},
		politburo.Reformer: {
			FearLevel:    fv(10),
			Surveillance: fv(35),
			CulturalThaw: bv(true),
		},
		politburo.Technocrat: {
			Surveillance:    fv(55),
			CorruptionDrain: fv(0.8),
		},
		politburo.Apparatchik: {
			FearLevel:       fv(35),
			Surveillance:    fv(50),
			CorruptionDrain: fv(1.15),
		},
		politburo.Opportunist: {
			Surveillance:    fv(45),
			CorruptionDrain: fv(1.5),
		},
		politburo.Ideologue: {
			FearLevel:         fv(55),
			Surveillance:      fv(70),
			ReligionTolerated: bv(false),
			CulturalThaw:      bv(false),
		},
		politburo.Militarist: {
			FearLevel:       fv(50),
			Surveillance:    fv(60),
			LaborDiscipline: fv(60),
		},
	},

	politburo.Defense: {
		politburo.Hardliner: {
			MilitaryStrength: fv(1.2),
			ForeignTension:   fv(55),
		},
		politburo.Reformer: {
			MilitaryStrength: fv(0.9),
			ForeignTension:   fv(28),
		},
		politburo.Technocrat: {
			MilitaryStrength: fv(1.15),
			ResearchSpeed:    fv(1.1),
		},
		politburo.Opportunist: {
			MilitaryStrength: fv(0.95),
			CorruptionDrain:  fv(1.3),
		},
		politburo.Militarist: {
			MilitaryStrength: fv(1.35),
			ForeignTension:   fv(65),
			QuotaDifficulty:  fv(1.15),
		},
	},

	politburo.Agriculture: {
		politburo.Hardliner: {
			FarmOutput:          fv(0.9),
			LaborDiscipline:     fv(60),
			PrivatePlotsAllowed: bv(false),
		},
		politburo.Reformer: {
			FarmOutput:          fv(1.2),
			PrivatePlotsAllowed: bv(true),
		},
		politburo.Technocrat: {
			FarmOutput: fv(1.15),
		},
		politburo.Apparatchik: {
			FarmOutput:      fv(0.95),
			QuotaDifficulty: fv(1.1),
		},
		politburo.Ideologue: {
			FarmOutput:          fv(0.85),
			PrivatePlotsAllowed: bv(false),
			QuotaDifficulty:     fv(1.2),
		},
		politburo.Populist: {
			FarmOutput:          fv(1.1),
			PrivatePlotsAllowed: bv(true),
			QuotaDifficulty:     fv(0.9),
		},
	},

	politburo.HeavyIndustry: {
		politburo.Hardliner: {
			IndustryOutput:  fv(1.1),
			QuotaDifficulty: fv(1.2),
			LaborDiscipline: fv(60),
		},
		politburo.Technocrat: {
			IndustryOutput:    fv(1.2),
			ConstructionSpeed: fv(1.1),
		},
		politburo.Apparatchik: {
			IndustryOutput:  fv(0.95),
			CorruptionDrain: fv(1.2),
		},
		politburo.Opportunist: {
			IndustryOutput:  fv(0.9),
			CorruptionDrain: fv(1.4),
		},
		politburo.Militarist: {
			IndustryOutput:   fv(1.1),
			MilitaryStrength: fv(1.1),
			ConsumerGoods:    fv(0.9),
		},
	},

	politburo.ConsumerGoods: {
		politburo.Reformer: {
			ConsumerGoods:         fv(1.25),
			WesternImportsAllowed: bv(true),
		},
		politburo.Technocrat: {
			ConsumerGoods: fv(1.15),
		},
		politburo.Apparatchik: {
			ConsumerGoods:   fv(0.9),
			CorruptionDrain: fv(1.2),
		},
		politburo.Opportunist: {
			ConsumerGoods:   fv(1.05),
			CorruptionDrain: fv(1.35),
		},
		politburo.Ideologue: {
			ConsumerGoods: fv(0.8),
		},
		politburo.Populist: {
			ConsumerGoods:   fv(1.2),
			QuotaDifficulty: fv(0.9),
		},
	},

	politburo.Planning: {
		politburo.Hardliner: {
			QuotaDifficulty: fv(1.25),
			LaborDiscipline: fv(60),
		},
		politburo.Reformer: {
			QuotaDifficulty: fv(0.85),
			ConsumerGoods:   fv(1.1),
		},
		politburo.Technocrat: {
			QuotaDifficulty: fv(0.95),
			IndustryOutput:  fv(1.1),
			ResearchSpeed:   fv(1.05),
		},
		politburo.Apparatchik: {
			QuotaDifficulty: fv(1.1),
			CorruptionDrain: fv(1.15),
		},
		politburo.Ideologue: {
			QuotaDifficulty: fv(1.3),
		},
	},

	politburo.ForeignAffairs: {
		politburo.Hardliner: {
			ForeignTension:        fv(60),
			WesternImportsAllowed: bv(false),
			BorderOpen:            bv(false),
		},
		politburo.Reformer: {
			ForeignTension:        fv(25),
			WesternImportsAllowed: bv(true),
			CulturalThaw:          bv(true),
		},
		politburo.Technocrat: {
			ForeignTension:        fv(35),
			WesternImportsAllowed: bv(true),
			ResearchSpeed:         fv(1.1),
		},
		politburo.Opportunist: {
			ForeignTension: fv(35),
			BorderOpen:     bv(true),
		},
		politburo.Ideologue: {
			ForeignTension: fv(65),
			CulturalThaw:   bv(false),
		},
		politburo.Militarist: {
			ForeignTension: fv(70),
			BorderOpen:     bv(false),
		},
	},

	politburo.Propaganda: {
		politburo.Hardliner: {
			PropagandaIntensity: fv(70),
			FearLevel:           fv(30),
		},
		politburo.Reformer: {
			PropagandaIntensity: fv(25),
			CulturalThaw:        bv(true),
		},
		politburo.Apparatchik: {
			PropagandaIntensity: fv(50),
		},
		politburo.Ideologue: {
			PropagandaIntensity: fv(80),
			ReligionTolerated:   bv(false),
		},
		politburo.Populist: {
			PropagandaIntensity: fv(60),
			FearLevel:           fv(15),
		},
	},

	politburo.Transport: {
		politburo.Technocrat: {
			TransportEfficiency: fv(1.2),
		},
		politburo.Apparatchik: {
			TransportEfficiency: fv(0.95),
			CorruptionDrain:     fv(1.15),
		},
		politburo.Opportunist: {
			TransportEfficiency: fv(0.9),
			CorruptionDrain:     fv(1.3),
		},
		politburo.Militarist: {
			TransportEfficiency: fv(1.1),
			MilitaryStrength:    fv(1.05),
		},
		politburo.Populist: {
			TransportEfficiency: fv(1.05),
		},
	},

	politburo.Energy: {
		politburo.Hardliner: {
			EnergyOutput:    fv(1.05),
			QuotaDifficulty: fv(1.1),
		},
		politburo.Reformer: {
			EnergyOutput:  fv(1.1),
			ResearchSpeed: fv(1.05),
		},
		politburo.Technocrat: {
			EnergyOutput:      fv(1.2),
			ConstructionSpeed: fv(1.1),
		},
		politburo.Apparatchik: {
			EnergyOutput:    fv(0.95),
			CorruptionDrain: fv(1.1),
		},
		politburo.Opportunist: {
			EnergyOutput:    fv(0.9),
			CorruptionDrain: fv(1.25),
		},
	},
}
