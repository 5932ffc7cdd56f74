package langtag

import (
	"sort"
)

// DefaultMaxDistance is the matching cutoff used when the caller does
// not supply one. Matches further away than this are more likely to
// annoy users than to help them.
const DefaultMaxDistance = 25

// NoMatchDistance is the distance reported alongside the "und" result
// when nothing in the supported list was close enough.
const NoMatchDistance = 1000

// ClosestMatch picks, out of the supported tags, the one closest to
// the desired tag. maxDistance bounds how bad a match may still be
// accepted; zero or negative means DefaultMaxDistance. When no
// candidate qualifies the result is ("und", NoMatchDistance), never an
// empty string. Ties go to the candidate listed first.
func ClosestMatch(desired string, supported []string, maxDistance int) (string, int, error) {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}

	// A literal hit needs no table lookups at all.
	for _, s := range supported {
		if s == desired {
			return s, 0, nil
		}
	}
	std, err := StandardizeTag(desired, false)
	if err != nil {
		return "", 0, err
	}
	for _, s := range supported {
		if s == std {
			return s, 0, nil
		}
	}

	desiredTag, err := Parse(desired)
	if err != nil {
		return "", 0, err
	}

	type match struct {
		tag  string
		dist int
	}
	matches := make([]match, 0, len(supported)+1)
	for _, s := range supported {
		supportedTag, err := Parse(s)
		if err != nil {
			return "", 0, err
		}
		if d := desiredTag.Distance(supportedTag); d <= maxDistance {
			matches = append(matches, match{s, d})
		}
	}
	matches = append(matches, match{"und", NoMatchDistance})

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	return matches[0].tag, matches[0].dist, nil
}

// Score reports match quality on the legacy 0-100 scale, higher being
// better.
//
// Deprecated: use Distance, which is based on current CLDR matching
// data and is lower for better matches.
func (t *Tag) Score(supported *Tag) int {
	return max(0, 100-t.Distance(supported))
}

// BestMatch picks the best supported tag on the legacy 0-100 scale,
// returning the tag and its score; ("und", 0) when nothing reaches
// minScore (default 75).
//
// Deprecated: use ClosestMatch, which works in distances.
func BestMatch(desired string, supported []string, minScore int) (string, int, error) {
	if minScore <= 0 {
		minScore = 75
	}
	tag, dist, err := ClosestMatch(desired, supported, 100-minScore)
	if err != nil {
		return "", 0, err
	}
	if tag == "und" && dist == NoMatchDistance {
		return "und", 0, nil
	}
	return tag, 100 - dist, nil
}
