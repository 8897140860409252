// Narrative events — the structured records pushed synchronously to the
// host's event channel, and the monthly ministry-flavor sampler.
package engine

import (
	"fmt"

	"github.com/talgya/politburo/internal/entropy"
	"github.com/talgya/politburo/internal/politburo"
)

// Event types.
const (
	EventPurge           = "purge"
	EventCoup            = "coup"
	EventSuccession      = "succession"
	EventTensionConflict = "tension_conflict"
	EventTensionAlliance = "tension_alliance"
	EventFlavor          = "ministry_flavor"
)

// Event categories and severities.
const (
	CategoryPolitical = "political"
	CategoryMinistry  = "ministry"

	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Event is a notable occurrence, delivered synchronously to the host's
// callback the moment it happens.
type Event struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Severity    string             `json:"severity"`
	Effects     map[string]float64 `json:"effects,omitempty"`
	Type        string             `json:"type"`
}

func (s *Simulation) emitEvent(e Event) {
	if s.emit != nil {
		s.emit(e)
	}
}

// flavorTemplate is one entry in the ministry-flavor catalogue. A template
// is eligible when its portfolio's current holder has the named personality
// (or the template accepts any). Render receives the holder and the current
// resource view.
type flavorTemplate struct {
	Seat     politburo.Portfolio
	Pers     politburo.Personality
	AnyPers  bool
	Weight   float64
	Title    string
	Severity string
	Effects  map[string]float64
	Render   func(m *politburo.Minister, r ResourceSnapshot) string
}

var flavorTemplates = []flavorTemplate{
	{
		Seat: politburo.Agriculture, Pers: politburo.Reformer, Weight: 3,
		Title: "Private Plots Flourish", Severity: SeverityInfo,
		Effects: map[string]float64{"food": 5},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s tours the kolkhoz markets and pronounces the private plots a triumph of socialist initiative.", m.Name)
		},
	},
	{
		Seat: politburo.Agriculture, Pers: politburo.Ideologue, Weight: 3,
		Title: "Requisition Brigades Dispatched", Severity: SeverityWarning,
		Effects: map[string]float64{"food": -5, "fear_level": 3},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s sends requisition brigades to the countryside. The quotas will be met, whatever the harvest says.", m.Name)
		},
	},
	{
		Seat: politburo.Agriculture, AnyPers: true, Weight: 1,
		Title: "Harvest Report", Severity: SeverityInfo,
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s reports the harvest figures to a population of %d. The figures are, as always, encouraging.", m.Name, r.Population)
		},
	},
	{
		Seat: politburo.StateSecurity, Pers: politburo.Hardliner, Weight: 3,
		Title: "Night Arrests", Severity: SeverityWarning,
		Effects: map[string]float64{"fear_level": 5},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("Unmarked cars move through the capital after midnight. %s assures the Politburo the lists are accurate.", m.Name)
		},
	},
	{
		Seat: politburo.StateSecurity, Pers: politburo.Opportunist, Weight: 2,
		Title: "Files Go Missing", Severity: SeverityInfo,
		Effects: map[string]float64{"corruption": 3},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("Several compromising files have vanished from the archives. %s expresses complete bafflement.", m.Name)
		},
	},
	{
		Seat: politburo.Defense, Pers: politburo.Militarist, Weight: 3,
		Title: "Missile Parade", Severity: SeverityInfo,
		Effects: map[string]float64{"military": 3, "money": -5},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s reviews four hours of armor through the square. Foreign attachés count the new launchers twice.", m.Name)
		},
	},
	{
		Seat: politburo.Defense, Pers: politburo.Reformer, Weight: 2,
		Title: "Conscription Eased", Severity: SeverityInfo,
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s quietly shortens the conscription term. The marshals grumble; the villages exhale.", m.Name)
		},
	},
	{
		Seat: politburo.HeavyIndustry, Pers: politburo.Hardliner, Weight: 2,
		Title: "Shock Workers Mobilized", Severity: SeverityInfo,
		Effects: map[string]float64{"industry": 3},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s declares a month of shock labor. Banners go up; safety inspections come down.", m.Name)
		},
	},
	{
		Seat: politburo.HeavyIndustry, Pers: politburo.Opportunist, Weight: 2,
		Title: "Output Figures Questioned", Severity: SeverityWarning,
		Effects: map[string]float64{"corruption": 3},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("An auditor notes that %s's combine reports more steel than its furnaces could physically produce.", m.Name)
		},
	},
	{
		Seat: politburo.ConsumerGoods, Pers: politburo.Populist, Weight: 3,
		Title: "Queues Shorten", Severity: SeverityInfo,
		Effects: map[string]float64{"morale": 5},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s diverts a freight of televisions to the regional stores. For one week, the queues move.", m.Name)
		},
	},
	{
		Seat: politburo.ConsumerGoods, Pers: politburo.Ideologue, Weight: 2,
		Title: "Austerity Is Virtue", Severity: SeverityInfo,
		Effects: map[string]float64{"morale": -3},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s lectures that consumer appetite is a bourgeois residue. The shelves agree to remain ideologically pure.", m.Name)
		},
	},
	{
		Seat: politburo.Planning, Pers: politburo.Technocrat, Weight: 2,
		Title: "The Plan Balances", Severity: SeverityInfo,
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s presents a five-year table in which every column, astonishingly, sums.", m.Name)
		},
	},
	{
		Seat: politburo.ForeignAffairs, Pers: politburo.Reformer, Weight: 2,
		Title: "Cultural Delegation Abroad", Severity: SeverityInfo,
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s sends the ballet west. The reviews are excellent; two dancers are not on the return flight.", m.Name)
		},
	},
	{
		Seat: politburo.ForeignAffairs, Pers: politburo.Militarist, Weight: 2,
		Title: "Ultimatum Delivered", Severity: SeverityWarning,
		Effects: map[string]float64{"foreign_tension": 5},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s summons three ambassadors before breakfast. The communiqué speaks of 'consequences'.", m.Name)
		},
	},
	{
		Seat: politburo.Propaganda, Pers: politburo.Ideologue, Weight: 3,
		Title: "New Portraits Issued", Severity: SeverityInfo,
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s unveils the revised portrait series. Certain faces from last year's series are no longer available.", m.Name)
		},
	},
	{
		Seat: politburo.Transport, AnyPers: true, Weight: 1,
		Title: "Timetable Reform", Severity: SeverityInfo,
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s announces the new rail timetable. It is identical to the old one, but thicker.", m.Name)
		},
	},
	{
		Seat: politburo.Energy, Pers: politburo.Technocrat, Weight: 2,
		Title: "Turbines Ahead of Schedule", Severity: SeverityInfo,
		Effects: map[string]float64{"energy": 3},
		Render: func(m *politburo.Minister, r ResourceSnapshot) string {
			return fmt.Sprintf("%s brings the new turbine hall online a quarter early. The grid holds through the cold snap.", m.Name)
		},
	},
}

// flavorEventChance is the monthly probability that any ministry-flavor
// event fires at all.
const flavorEventChance = 0.25

// sampleFlavorEvent rolls the monthly flavor gate, then weighted-picks one
// eligible template for the current cabinet. No eligible template is an
// expected, non-error outcome: the month simply passes without incident.
func (s *Simulation) sampleFlavorEvent() {
	if s.src.Float() >= flavorEventChance {
		return
	}

	eligible := make([]flavorTemplate, 0, len(flavorTemplates))
	for _, t := range flavorTemplates {
		m := s.Ministers[t.Seat]
		if t.AnyPers || m.Personality == t.Pers {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return
	}

	t := entropy.Weighted(s.src, eligible, func(t flavorTemplate) float64 { return t.Weight })
	m := s.Ministers[t.Seat]

	s.emitEvent(Event{
		ID:          s.src.ID(),
		Type:        EventFlavor,
		Category:    CategoryMinistry,
		Severity:    t.Severity,
		Title:       t.Title,
		Description: t.Render(m, s.Resources),
		Effects:     t.Effects,
	})
}
