// Package langtag parses, normalizes, and compares IETF BCP 47
// language tags.
//
// A Tag is an immutable, interned decomposition of a tag string into
// its subtags. On top of it the package offers the Unicode CLDR
// operations that make tags comparable: filling in likely subtags
// (Maximize), dropping redundant ones (SimplifyScript), preferring
// macrolanguage codes, measuring how well one language serves a
// speaker of another (Distance), and picking the best of a set of
// supported languages (ClosestMatch).
package langtag

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"langtag/internal/langdata"
)

// Fields names every attribute of a tag. Any subset may be set;
// everything left empty means "unspecified". Case does not matter,
// it is normalized by Make.
type Fields struct {
	Language   string
	Extlangs   []string
	Script     string
	Territory  string
	Variants   []string
	Extensions []string
	Private    string
}

// Tag is a parsed language tag. Tags are interned: Make and Parse
// return the same instance for the same attribute set, so two tags are
// equal exactly when their pointers are. A Tag is never mutated after
// construction; derived forms are computed on first use and cached on
// the instance.
type Tag struct {
	language   string   // lowercase; "" when unspecified ("und")
	extlangs   []string // sorted, lowercase
	script     string   // title case
	territory  string   // uppercase
	variants   []string // sorted, lowercase
	extensions []string // insertion order, lowercase
	private    string   // lowercase, starts with "x-"

	str string // canonical serialization

	simplified memo[*Tag]
	assumed    memo[*Tag]
	macro      memo[*Tag]
	broader    memo[[]*Tag]
	maximized  memo[*Tag]
}

// memo computes a derived value once per instance. Races at most
// recompute nothing: the winning fill runs alone under the Once.
type memo[T any] struct {
	once sync.Once
	val  T
}

func (m *memo[T]) get(fill func() T) T {
	m.once.Do(func() { m.val = fill() })
	return m.val
}

var instances sync.Map // canonical tag string -> *Tag

var scriptCaser = cases.Title(language.Und)

// Make builds the interned Tag for the given attributes. The language
// code "und" means "unspecified" and is stored as the empty language.
func Make(f Fields) *Tag {
	t := &Tag{
		language:  normLanguage(f.Language),
		script:    normScript(f.Script),
		territory: strings.ToUpper(f.Territory),
		private:   strings.ToLower(f.Private),
	}
	if len(f.Extlangs) > 0 {
		t.extlangs = lowerSorted(f.Extlangs)
	}
	if len(f.Variants) > 0 {
		t.variants = lowerSorted(f.Variants)
	}
	if len(f.Extensions) > 0 {
		t.extensions = make([]string, len(f.Extensions))
		for i, ext := range f.Extensions {
			t.extensions[i] = strings.ToLower(ext)
		}
	}
	t.str = t.serialize()

	if prev, ok := instances.Load(t.str); ok {
		return prev.(*Tag)
	}
	actual, _ := instances.LoadOrStore(t.str, t)
	return actual.(*Tag)
}

func normLanguage(s string) string {
	s = strings.ToLower(s)
	if s == "und" {
		return ""
	}
	return s
}

func normScript(s string) string {
	if s == "" {
		return ""
	}
	return scriptCaser.String(s)
}

func lowerSorted(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	slices.Sort(out)
	return out
}

// serialize renders the canonical form: language (or "und"), sorted
// extlangs, script, territory, sorted variants, extensions in their
// original order, private use last.
func (t *Tag) serialize() string {
	parts := make([]string, 1, 8)
	parts[0] = "und"
	if t.language != "" {
		parts[0] = t.language
	}
	parts = append(parts, t.extlangs...)
	if t.script != "" {
		parts = append(parts, t.script)
	}
	if t.territory != "" {
		parts = append(parts, t.territory)
	}
	parts = append(parts, t.variants...)
	parts = append(parts, t.extensions...)
	if t.private != "" {
		parts = append(parts, t.private)
	}
	return strings.Join(parts, "-")
}

// String returns the canonical tag, e.g. "zh-Hant-TW".
func (t *Tag) String() string { return t.str }

// Language returns the primary language subtag, or "" when the tag
// does not specify one.
func (t *Tag) Language() string { return t.language }

// Script returns the script subtag in title case, or "".
func (t *Tag) Script() string { return t.script }

// Territory returns the territory subtag in upper case, or "".
func (t *Tag) Territory() string { return t.territory }

// Extlangs returns the extended language subtags, sorted.
func (t *Tag) Extlangs() []string { return slices.Clone(t.extlangs) }

// Variants returns the variant subtags, sorted.
func (t *Tag) Variants() []string { return slices.Clone(t.variants) }

// Extensions returns the extension blocks in their original order.
func (t *Tag) Extensions() []string { return slices.Clone(t.extensions) }

// Private returns the private-use block including its "x-" prefix,
// or "".
func (t *Tag) Private() string { return t.private }

// Fields returns a copy of every attribute, suitable for building a
// modified tag with Make.
func (t *Tag) Fields() Fields {
	return Fields{
		Language:   t.language,
		Extlangs:   slices.Clone(t.extlangs),
		Script:     t.script,
		Territory:  t.territory,
		Variants:   slices.Clone(t.variants),
		Extensions: slices.Clone(t.extensions),
		Private:    t.private,
	}
}

// Update merges other onto t: for every attribute, other's value wins
// when it is set, otherwise t's is kept.
func (t *Tag) Update(other *Tag) *Tag {
	f := t.Fields()
	overlayTag(&f, other)
	return Make(f)
}

// overlayTag copies other's non-empty attributes over f.
func overlayTag(f *Fields, other *Tag) {
	if other.language != "" {
		f.Language = other.language
	}
	if len(other.extlangs) > 0 {
		f.Extlangs = slices.Clone(other.extlangs)
	}
	if other.script != "" {
		f.Script = other.script
	}
	if other.territory != "" {
		f.Territory = other.territory
	}
	if len(other.variants) > 0 {
		f.Variants = slices.Clone(other.variants)
	}
	if len(other.extensions) > 0 {
		f.Extensions = slices.Clone(other.extensions)
	}
	if other.private != "" {
		f.Private = other.private
	}
}

// SimplifyScript drops the script when it is the registered default
// for the language: "en-Latn" simplifies to "en", while "yi-Latn"
// stays because Yiddish defaults to Hebrew script.
func (t *Tag) SimplifyScript() *Tag {
	return t.simplified.get(func() *Tag {
		if t.language != "" && t.script != "" && langdata.DefaultScripts[t.language] == t.script {
			f := t.Fields()
			f.Script = ""
			return Make(f)
		}
		return t
	})
}

// AssumeScript fills in the registered default script when the
// language is set and the script is not. Languages written in several
// scripts, like Serbian, have no default and are left alone.
func (t *Tag) AssumeScript() *Tag {
	return t.assumed.get(func() *Tag {
		if t.language == "" || t.script != "" {
			return t
		}
		script, ok := langdata.DefaultScripts[t.language]
		if !ok {
			return t
		}
		f := t.Fields()
		f.Script = script
		return Make(f)
	})
}

// PreferMacrolanguage replaces the language with its macrolanguage
// code when CLDR designates it the dominant member: "cmn" (Mandarin)
// becomes "zh", while "yue" (Cantonese) stays "yue".
func (t *Tag) PreferMacrolanguage() *Tag {
	return t.macro.get(func() *Tag {
		lang := t.language
		if lang == "" {
			lang = "und"
		}
		macro, ok := langdata.NormalizedMacrolanguages[lang]
		if !ok {
			return t
		}
		f := t.Fields()
		f.Language = macro
		return Make(f)
	})
}

type attrMask uint8

const (
	maskLanguage attrMask = 1 << iota
	maskScript
	maskTerritory
)

// broaderMasks lists the attribute sets to fall back to, in the order
// given by UTS 35 section 4.3, "Likely Subtags".
var broaderMasks = [...]attrMask{
	maskLanguage | maskScript | maskTerritory,
	maskLanguage | maskTerritory,
	maskLanguage | maskScript,
	maskLanguage,
	maskScript,
	0,
}

func (t *Tag) filter(mask attrMask) *Tag {
	var f Fields
	if mask&maskLanguage != 0 {
		f.Language = t.language
	}
	if mask&maskScript != 0 {
		f.Script = t.script
	}
	if mask&maskTerritory != 0 {
		f.Territory = t.territory
	}
	return Make(f)
}

// Broaden returns the tag followed by increasingly general versions of
// it, ending with the empty "und". Duplicates that arise when a field
// was never set are skipped.
func (t *Tag) Broaden() []*Tag {
	return t.broader.get(func() []*Tag {
		out := []*Tag{t}
		seen := map[string]bool{t.str: true}
		for _, mask := range broaderMasks {
			filtered := t.filter(mask)
			if !seen[filtered.str] {
				seen[filtered.str] = true
				out = append(out, filtered)
			}
		}
		return out
	})
}

// Maximize fills in the most likely script and territory for the tag
// from the CLDR likely-subtags data: "zh-Hant" and "zh-TW" both
// maximize to "zh-Hant-TW". Attributes the tag already specifies are
// always kept.
//
// The likely-subtags table carries an entry for the empty tag, so
// Maximize cannot fail on well-formed data; it panics if the table is
// incomplete, which is a packaging bug rather than a user error.
func (t *Tag) Maximize() *Tag {
	return t.maximized.get(func() *Tag {
		for _, broader := range t.Broaden() {
			likely, ok := langdata.LikelySubtags[broader.str]
			if !ok {
				continue
			}
			full, err := ParseRaw(likely)
			if err != nil {
				panic(fmt.Sprintf("langtag: bad likely-subtags entry %q -> %q: %v", broader.str, likely, err))
			}
			return full.Update(t)
		}
		panic(fmt.Sprintf("langtag: likely-subtags data has no entry for %q or any broader form", t.str))
	})
}
