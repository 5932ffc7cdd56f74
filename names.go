package langtag

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"langtag/internal/langdata"
)

// ErrLookup reports that a name-to-tag lookup found nothing.
var ErrLookup = errors.New("no language found by that name")

// LanguageName returns the English name of the language, "Unknown
// language" for an unspecified one, and "Unknown language [xyz]" for
// a language the name data does not cover.
func (t *Tag) LanguageName() string {
	lang := t.language
	if lang == "" {
		lang = "und"
	}
	if name, ok := langdata.LanguageNames[lang]; ok {
		return name
	}
	return fmt.Sprintf("Unknown language [%s]", lang)
}

// ScriptName returns the English name of the script, or "" when the
// tag has none.
func (t *Tag) ScriptName() string {
	if t.script == "" {
		return ""
	}
	if name, ok := langdata.ScriptNames[t.script]; ok {
		return name
	}
	return t.script
}

// TerritoryName returns the English name of the territory, or "" when
// the tag has none.
func (t *Tag) TerritoryName() string {
	if t.territory == "" {
		return ""
	}
	if name, ok := langdata.TerritoryNames[t.territory]; ok {
		return name
	}
	return t.territory
}

// DisplayName renders the whole tag in English, in the usual CLDR
// shape: "Chinese (Traditional, Taiwan)", "English (United States)".
func (t *Tag) DisplayName() string {
	name := t.LanguageName()
	var quals []string
	if s := t.ScriptName(); s != "" {
		quals = append(quals, s)
	}
	if r := t.TerritoryName(); r != "" {
		quals = append(quals, r)
	}
	for _, v := range t.variants {
		if vn, ok := langdata.VariantNames[v]; ok {
			quals = append(quals, vn)
		} else {
			quals = append(quals, v)
		}
	}
	if len(quals) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(quals, ", "))
}

// Describe breaks the display name into its parts, keyed by attribute:
// {"language": "Chinese", "script": "Traditional", "territory":
// "Taiwan"}. Absent attributes are absent from the map.
func (t *Tag) Describe() map[string]string {
	out := map[string]string{"language": t.LanguageName()}
	if s := t.ScriptName(); s != "" {
		out["script"] = s
	}
	if r := t.TerritoryName(); r != "" {
		out["territory"] = r
	}
	return out
}

var (
	nameIndexOnce sync.Once
	nameIndex     map[string]*Tag
)

func buildNameIndex() {
	nameIndex = make(map[string]*Tag, len(langdata.LanguageNames)+len(langdata.ExtraNameTags))
	for code, name := range langdata.LanguageNames {
		nameIndex[strings.ToLower(name)] = Make(Fields{Language: code})
	}
	for name, tag := range langdata.ExtraNameTags {
		nameIndex[name] = MustParse(tag)
	}
}

// FindName looks a language up by its English name, case-insensitively:
// "FRENCH" finds fr, "Brazilian Portuguese" finds pt-BR. It returns
// an error wrapping ErrLookup when the name is unknown.
func FindName(name string) (*Tag, error) {
	nameIndexOnce.Do(buildNameIndex)
	key := strings.ToLower(strings.TrimSpace(name))
	if tag, ok := nameIndex[key]; ok {
		return tag, nil
	}
	return nil, fmt.Errorf("find %q: %w", name, ErrLookup)
}
