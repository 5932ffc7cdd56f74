package langdata

import (
	"strings"
	"testing"
)

func TestLikelySubtagsWellFormed(t *testing.T) {
	if _, ok := LikelySubtags["und"]; !ok {
		t.Fatal("missing the fallback entry for \"und\"")
	}
	for key, value := range LikelySubtags {
		parts := strings.Split(value, "-")
		if len(parts) != 3 {
			t.Errorf("LikelySubtags[%q] = %q: want language-script-territory", key, value)
			continue
		}
		lang, script, territory := parts[0], parts[1], parts[2]
		if lang != strings.ToLower(lang) || len(lang) < 2 || len(lang) > 3 {
			t.Errorf("LikelySubtags[%q]: bad language %q", key, lang)
		}
		if len(script) != 4 || script[0] < 'A' || script[0] > 'Z' {
			t.Errorf("LikelySubtags[%q]: bad script %q", key, script)
		}
		if territory != strings.ToUpper(territory) || len(territory) < 2 || len(territory) > 3 {
			t.Errorf("LikelySubtags[%q]: bad territory %q", key, territory)
		}
	}
}

func TestDefaultScriptsShape(t *testing.T) {
	for lang, script := range DefaultScripts {
		if len(script) != 4 {
			t.Errorf("DefaultScripts[%q] = %q: want a 4-letter script code", lang, script)
		}
	}
	// Languages written in more than one script must not carry a default.
	for _, lang := range []string{"zh", "sr", "az", "uz", "ku"} {
		if script, ok := DefaultScripts[lang]; ok {
			t.Errorf("DefaultScripts[%q] = %q: multi-script language should have no default", lang, script)
		}
	}
}

func TestReplacementTableKeysLowercase(t *testing.T) {
	for key := range LanguageReplacements {
		if key != strings.ToLower(key) {
			t.Errorf("LanguageReplacements key %q is not lowercase", key)
		}
	}
	for key := range TerritoryReplacements {
		if key != strings.ToLower(key) {
			t.Errorf("TerritoryReplacements key %q is not lowercase", key)
		}
	}
}

func TestMatchDistancesDefaults(t *testing.T) {
	if got := MatchDistances["*"]["*"]; got != 80 {
		t.Errorf("language fallback distance = %d, want 80", got)
	}
	if got := MatchDistances["*_*"]["*_*"]; got != 50 {
		t.Errorf("script fallback distance = %d, want 50", got)
	}
}

func TestTerritoryRulesClustersExist(t *testing.T) {
	for i, rule := range TerritoryRules {
		for _, pattern := range []string{rule.Desired, rule.Supported} {
			name, ok := strings.CutPrefix(pattern, "$")
			if !ok {
				continue
			}
			name = strings.TrimPrefix(name, "!")
			if _, ok := TerritoryClusters[name]; !ok {
				t.Errorf("TerritoryRules[%d] references unknown cluster %q", i, name)
			}
		}
	}
}
