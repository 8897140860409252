// Personality compatibility — which archetypes consider each other allies.
// Drives faction support for the sitting leader.
package politburo

// allies maps each archetype to the archetypes it considers allies.
// The relation is not required to be symmetric: an Opportunist counts the
// Apparatchik establishment as useful allies; the establishment trusts the
// Opportunist rather less.
var allies = map[Personality][]Personality{
	Hardliner:   {Militarist, Ideologue, Apparatchik},
	Reformer:    {Technocrat, Populist},
	Technocrat:  {Reformer, Apparatchik},
	Apparatchik: {Hardliner, Technocrat},
	Opportunist: {Apparatchik, Populist},
	Ideologue:   {Hardliner, Militarist},
	Populist:    {Reformer, Opportunist},
	Militarist:  {Hardliner, Ideologue},
}

// Compatible reports whether archetype a counts archetype b as an ally.
// Every archetype is compatible with itself.
func Compatible(a, b Personality) bool {
	if a == b {
		return true
	}
	for _, p := range allies[a] {
		if p == b {
			return true
		}
	}
	return false
}
