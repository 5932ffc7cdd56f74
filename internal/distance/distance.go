// Package distance scores how well a supported language serves a user
// who asked for another one, following the CLDR language matching
// rules. The score is asymmetric: a Swiss German speaker reads standard
// German far better than the other way around, and the rule data
// encodes such one-way facts.
package distance

import (
	"sync"

	"langtag/internal/langdata"
)

// Max is the largest distance the engine reports: a complete mismatch
// of language, script, and territory.
const Max = 134

// Triple is the maximized (language, script, territory) form a tag is
// reduced to before matching. The wildcard triple (und, Zzzz, ZZ)
// stands for a side that specified nothing at all.
type Triple struct {
	Language  string
	Script    string
	Territory string
}

// WildcardTriple matches anything at every tier.
var WildcardTriple = Triple{Language: "und", Script: "Zzzz", Territory: "ZZ"}

type pairKey struct {
	desired   Triple
	supported Triple
}

var memo sync.Map // pairKey -> int

// Between returns the distance from a desired triple to a supported
// one, in [0, Max]. Results are memoized; the rule tables never change
// at runtime, so a cached entry stays valid for the process lifetime.
func Between(desired, supported Triple) int {
	if desired == supported {
		return 0
	}
	key := pairKey{desired, supported}
	if d, ok := memo.Load(key); ok {
		return d.(int)
	}

	total := 0
	if desired.Language != supported.Language || desired.Script != supported.Script {
		if d, ok := combined(desired, supported); ok {
			total += d
		} else {
			if desired.Language != supported.Language {
				total += languageDistance(desired.Language, supported.Language)
			}
			if desired.Script != supported.Script {
				total += int(langdata.MatchDistances["*_*"]["*_*"])
			}
		}
	}
	if desired.Territory != supported.Territory {
		total += territoryDistance(desired, supported)
	}
	if total > Max {
		total = Max
	}

	memo.Store(key, total)
	return total
}

// combined looks for a pre-combined language+script rule, which
// replaces both the language and script tiers for the pair. Keys are
// probed from most to least specific; the global "*_*" default is the
// plain script tier, not a combined rule, so it is never probed here.
func combined(desired, supported Triple) (int, bool) {
	desiredKeys := [2]string{
		desired.Language + "_" + desired.Script,
		desired.Language + "_*",
	}
	supportedKeys := [2]string{
		supported.Language + "_" + supported.Script,
		supported.Language + "_*",
	}
	for _, dk := range desiredKeys {
		row, ok := langdata.MatchDistances[dk]
		if !ok {
			continue
		}
		for _, sk := range supportedKeys {
			if d, ok := row[sk]; ok {
				return int(d), true
			}
		}
	}
	return 0, false
}

func languageDistance(desired, supported string) int {
	if d, ok := langdata.MatchDistances[desired][supported]; ok {
		return int(d)
	}
	return int(langdata.MatchDistances["*"]["*"])
}

// territoryDistance applies the ordered territory rules; they are
// scoped to a single language and only meaningful when both sides
// resolved to it. Anything else gets the flat default.
func territoryDistance(desired, supported Triple) int {
	if desired.Language == supported.Language {
		for _, rule := range langdata.TerritoryRules {
			if rule.Language != desired.Language {
				continue
			}
			if matchTerritory(rule.Desired, desired.Territory) &&
				matchTerritory(rule.Supported, supported.Territory) {
				return int(rule.Distance)
			}
		}
	}
	return langdata.DefaultTerritoryDistance
}

func matchTerritory(pattern, territory string) bool {
	switch {
	case pattern == "*":
		return true
	case len(pattern) > 1 && pattern[0] == '$':
		if pattern[1] == '!' {
			return !langdata.TerritoryClusters[pattern[2:]][territory]
		}
		return langdata.TerritoryClusters[pattern[1:]][territory]
	default:
		return pattern == territory
	}
}
