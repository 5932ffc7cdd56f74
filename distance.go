package langtag

import (
	"langtag/internal/distance"
)

// MaxDistance is the largest value Distance reports: the languages
// have nothing in common.
const MaxDistance = distance.Max

// Distance measures how well the supported language serves a user who
// asked for t, from 0 (the same language once likely subtags are
// filled in) to MaxDistance. The relation is asymmetric: a Swiss
// German speaker reads standard German far better than the reverse, so
// Distance("gsw","de") is 8 while Distance("de","gsw") is 84.
func (t *Tag) Distance(supported *Tag) int {
	if t == supported {
		return 0
	}
	return distance.Between(t.triple(), supported.triple())
}

// TagDistance is Distance over tag strings.
func TagDistance(desired, supported string) (int, error) {
	d, err := Parse(desired)
	if err != nil {
		return 0, err
	}
	s, err := Parse(supported)
	if err != nil {
		return 0, err
	}
	return d.Distance(s), nil
}

// triple reduces the tag to the (language, script, territory) form the
// matching rules speak about. A tag that specifies none of the three
// becomes the explicit wildcard triple: maximizing it would turn "give
// me anything" into "give me English", which is not what it means.
func (t *Tag) triple() distance.Triple {
	if t.language == "" && t.script == "" && t.territory == "" {
		return distance.WildcardTriple
	}
	full := t.PreferMacrolanguage().Maximize()
	return distance.Triple{
		Language:  full.language,
		Script:    full.script,
		Territory: full.territory,
	}
}
