// Package tagparse splits a raw language tag into typed subtags.
//
// Only the syntax is handled here, per the BCP 47 grammar: each
// hyphen-delimited piece is classified by its shape and position. What
// the subtags mean, and how deprecated codes get replaced, is the
// caller's concern. Input is normalized to lowercase with hyphen
// separators before parsing; case conventions (Latn, US) are restored
// downstream.
package tagparse

// Kind classifies a subtag by the grammar position it was accepted at.
type Kind uint8

const (
	KindLanguage Kind = iota
	KindExtlang
	KindScript
	KindTerritory
	KindVariant
	// KindExtension carries a whole extension block: the singleton plus
	// its payload, joined by hyphens ("u-co-phonebk").
	KindExtension
	// KindPrivate carries the whole private-use block starting with the
	// "x" singleton ("x-pig-latin"). Always the last subtag.
	KindPrivate
	// KindGrandfathered carries a complete legacy tag that predates the
	// current grammar and must not be split ("i-klingon").
	KindGrandfathered
)

var kindNames = [...]string{
	KindLanguage:      "language",
	KindExtlang:       "extlang",
	KindScript:        "script",
	KindTerritory:     "territory",
	KindVariant:       "variant",
	KindExtension:     "extension",
	KindPrivate:       "private",
	KindGrandfathered: "grandfathered",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Subtag is one classified piece of a parsed tag. Value is in the
// normalized (lowercase, hyphen-separated) form; Offset is the byte
// offset of the piece within the normalized tag.
type Subtag struct {
	Kind   Kind
	Value  string
	Offset uint32
}
