package policy

import (
	"github.com/talgya/politburo/internal/politburo"
)

// Compose folds every minister's override record into one aggregate state.
// Pure: no randomness, no side effects. Re-run wholesale whenever a
// minister's personality, portfolio, or competence changes, and at minimum
// once per year.
//
// Overridden multiplier fields blend as current + (override − 1) × scale,
// level fields as current + (override − current) × scale, where
// scale = 0.5 + competence/200. Flags apply verbatim: an incompetent
// minister still legally bans or allows a policy, they merely execute it
// poorly.
func Compose(leader *politburo.Leader, ministers map[politburo.Portfolio]*politburo.Minister) State {
	st := Neutral()

	for _, seat := range politburo.Portfolios {
		m, ok := ministers[seat]
		if !ok {
			continue
		}
		o, ok := Lookup(seat, m.Personality)
		if !ok {
			continue
		}

		scale := 0.5 + float64(m.Competence)/200

		blendMult(&st.FarmOutput, o.FarmOutput, scale)
		blendMult(&st.IndustryOutput, o.IndustryOutput, scale)
		blendMult(&st.ConsumerGoods, o.ConsumerGoods, scale)
		blendMult(&st.EnergyOutput, o.EnergyOutput, scale)
		blendMult(&st.TransportEfficiency, o.TransportEfficiency, scale)
		blendMult(&st.ResearchSpeed, o.ResearchSpeed, scale)
		blendMult(&st.MilitaryStrength, o.MilitaryStrength, scale)
		blendMult(&st.ConstructionSpeed, o.ConstructionSpeed, scale)
		blendMult(&st.CorruptionDrain, o.CorruptionDrain, scale)
		blendMult(&st.QuotaDifficulty, o.QuotaDifficulty, scale)

		blendLevel(&st.FearLevel, o.FearLevel, scale)
		blendLevel(&st.Surveillance, o.Surveillance, scale)
		blendLevel(&st.PropagandaIntensity, o.PropagandaIntensity, scale)
		blendLevel(&st.LaborDiscipline, o.LaborDiscipline, scale)
		blendLevel(&st.ForeignTension, o.ForeignTension, scale)

		applyFlag(&st.PrivatePlotsAllowed, o.PrivatePlotsAllowed)
		applyFlag(&st.WesternImportsAllowed, o.WesternImportsAllowed)
		applyFlag(&st.CulturalThaw, o.CulturalThaw)
		applyFlag(&st.ReligionTolerated, o.ReligionTolerated)
		applyFlag(&st.BorderOpen, o.BorderOpen)
	}

	// The General Secretary's temperament presses on the repression dials
	// directly, on top of whatever the cabinet produces.
	if leader != nil {
		st.FearLevel += float64(leader.Paranoia) * 0.3
		st.Surveillance += float64(leader.Paranoia) * 0.25
	}

	clampLevels(&st)
	return st
}

// blendMult blends a multiplicative-style field toward an override.
func blendMult(current *float64, override *float64, scale float64) {
	if override == nil {
		return
	}
	*current += (*override - 1.0) * scale
}

// blendLevel blends a flat-delta field toward an override.
func blendLevel(current *float64, override *float64, scale float64) {
	if override == nil {
		return
	}
	*current += (*override - *current) * scale
}

func applyFlag(current *bool, override *bool) {
	if override != nil {
		*current = *override
	}
}

func clampLevels(st *State) {
	for _, f := range []*float64{
		&st.FearLevel, &st.Surveillance, &st.PropagandaIntensity,
		&st.LaborDiscipline, &st.ForeignTension,
	} {
		if *f < 0 {
			*f = 0
		}
		if *f > 100 {
			*f = 100
		}
	}
	for _, f := range []*float64{
		&st.FarmOutput, &st.IndustryOutput, &st.ConsumerGoods,
		&st.EnergyOutput, &st.TransportEfficiency, &st.ResearchSpeed,
		&st.MilitaryStrength, &st.ConstructionSpeed, &st.CorruptionDrain,
		&st.QuotaDifficulty,
	} {
		if *f < 0.1 {
			*f = 0.1
		}
	}
}
