package langtag

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"langtag/internal/langdata"
	"langtag/internal/tagparse"
)

// ParseError reports a tag that does not fit the BCP 47 grammar.
// Subtag is the piece that was rejected and Reason the full
// explanation of what was expected in its place.
type ParseError struct {
	Input  string
	Subtag string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse language tag %q: %s", e.Input, e.Reason)
}

// Parse builds the Tag for a tag string, replacing deprecated subtags
// with their modern equivalents along the way: "iw" becomes "he",
// "en-uk" becomes "en-GB", the legacy "sh" expands to "sr-Latn".
// Separators may be "-" or "_"; case is ignored.
func Parse(tag string) (*Tag, error) {
	return parseTag(tag, true)
}

// ParseRaw is Parse without any subtag replacement: deprecated codes
// come back exactly as given, up to case normalization.
func ParseRaw(tag string) (*Tag, error) {
	return parseTag(tag, false)
}

// MustParse is Parse for tags known to be valid, such as literals. It
// panics on a malformed tag.
func MustParse(tag string) *Tag {
	t, err := Parse(tag)
	if err != nil {
		panic(err)
	}
	return t
}

type parseKey struct {
	tag       string
	normalize bool
}

var parseCache sync.Map // parseKey -> *Tag

func parseTag(tag string, normalize bool) (*Tag, error) {
	key := parseKey{tag, normalize}
	if cached, ok := parseCache.Load(key); ok {
		return cached.(*Tag), nil
	}

	input := tag
	if normalize {
		// Whole-tag aliases ("sh", "en-gb-oed") are replaced before the
		// grammar ever sees them.
		if repl, ok := langdata.LanguageReplacements[strings.ToLower(tag)]; ok {
			tag = repl
		}
	}

	subtags, err := tagparse.Parse(tag)
	if err != nil {
		var perr *tagparse.Error
		if errors.As(err, &perr) {
			return nil, &ParseError{Input: input, Subtag: perr.Subtag, Reason: perr.Msg}
		}
		return nil, err
	}

	var f Fields
	for _, st := range subtags {
		switch st.Kind {
		case tagparse.KindLanguage:
			if st.Value == "und" {
				// "und" states that the language is unknown; it is the
				// absence of a language, not a code.
				continue
			}
			if normalize {
				if repl, ok := langdata.LanguageReplacements[st.Value]; ok {
					// Replacements may be whole tags ("mo" is "ro-MD"),
					// so parse them and let their fields take over.
					if err := overlayReplacement(&f, repl); err != nil {
						return nil, err
					}
					continue
				}
			}
			f.Language = st.Value
		case tagparse.KindExtlang:
			if normalize && f.Language != "" {
				// Legacy language-extlang pairs collapse to a single
				// modern code: "zh-yue" is just "yue".
				minitag := f.Language + "-" + st.Value
				if repl, ok := langdata.LanguageReplacements[minitag]; ok {
					if err := overlayReplacement(&f, repl); err != nil {
						return nil, err
					}
					continue
				}
			}
			f.Extlangs = append(f.Extlangs, st.Value)
		case tagparse.KindScript:
			if normalize {
				if repl, ok := langdata.ScriptReplacements[st.Value]; ok {
					f.Script = repl
					continue
				}
			}
			f.Script = st.Value
		case tagparse.KindTerritory:
			if normalize {
				if repl, ok := langdata.TerritoryReplacements[st.Value]; ok {
					f.Territory = repl
					continue
				}
			}
			f.Territory = st.Value
		case tagparse.KindVariant:
			f.Variants = append(f.Variants, st.Value)
		case tagparse.KindExtension:
			f.Extensions = append(f.Extensions, st.Value)
		case tagparse.KindPrivate:
			f.Private = st.Value
		case tagparse.KindGrandfathered:
			// Either normalization was off or the data has no modern
			// reading for this legacy tag. Keep the whole tag as the
			// language, the best structure it fits.
			f.Language = st.Value
		}
	}

	result := Make(f)
	parseCache.Store(key, result)
	return result, nil
}

// overlayReplacement parses a replacement tag from the alias data and
// copies its fields over f.
func overlayReplacement(f *Fields, replacement string) error {
	overlay, err := parseTag(replacement, true)
	if err != nil {
		return fmt.Errorf("bad alias replacement %q: %w", replacement, err)
	}
	overlayTag(f, overlay)
	return nil
}

// StandardizeTag returns the preferred form of a tag: deprecated
// subtags replaced, redundant script dropped, case conventions
// applied. With macro set, a dominant macrolanguage member is folded
// into the macrolanguage code ("cmn" into "zh"), as the CLDR requires.
func StandardizeTag(tag string, macro bool) (string, error) {
	t, err := Parse(tag)
	if err != nil {
		return "", err
	}
	if macro {
		t = t.PreferMacrolanguage()
	}
	return t.SimplifyScript().String(), nil
}
