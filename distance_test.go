package langtag_test

import (
	"testing"

	"langtag"
)

func TestTagDistanceAnchors(t *testing.T) {
	tests := []struct {
		desired   string
		supported string
		want      int
	}{
		// Tags that mean the same thing once likely subtags are filled in.
		{"en", "en", 0},
		{"en", "en-US", 0},
		{"zh-Hant", "zh-TW", 0},
		{"ru-Cyrl", "ru", 0},
		{"nb", "no", 0},
		{"sh", "sr-Latn", 0},

		// Highly similar languages.
		{"no", "nn", 10},
		{"no", "da", 12},
		{"sh", "hr", 9},
		{"sr-Latn", "sr-Cyrl", 5},

		// Script differences within a language.
		{"zh-Hans", "zh-Hant", 19},
		{"zh-Hant", "zh-Hans", 23},
		{"zh-CN", "zh-HK", 19},
		{"ja", "ja-Latn-US-hepburn", 54},

		// Territory differences.
		{"en-AU", "en-GB", 3},
		{"en-US", "en-GB", 5},
		{"es-PE", "es-419", 1},
		{"es-419", "es-PE", 4},
		{"es-ES", "es-419", 5},
		{"pt", "pt-PT", 5},
		{"zh-HK", "zh-MO", 4},

		// One-way intelligibility.
		{"gsw", "de", 8},
		{"de", "gsw", 84},
		{"arz", "ar", 10},
		{"wuu", "zh", 10},
		{"yue", "zh", 64},

		// Fallback to a widespread second language.
		{"ta", "en", 24},
		{"af", "nl", 14},
		{"ms", "id", 14},
		{"eu", "es", 10},
		{"mr", "hi", 10},
		{"mg", "fr", 14},

		// Unrelated languages.
		{"es", "fr", 84},
		{"fr-CH", "de-CH", 80},
		{"en", "zh", 134},
	}
	for _, tt := range tests {
		got, err := langtag.TagDistance(tt.desired, tt.supported)
		if err != nil {
			t.Errorf("TagDistance(%q, %q): %v", tt.desired, tt.supported, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TagDistance(%q, %q) = %d, want %d", tt.desired, tt.supported, got, tt.want)
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	for _, s := range []string{
		"en", "en-US", "zh-Hant-TW", "sr-Latn", "und", "x-dothraki",
		"ja-Latn-US-hepburn", "pt-BR",
	} {
		tag := langtag.MustParse(s)
		if d := tag.Distance(tag); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestDistanceWildcard(t *testing.T) {
	// A fully unspecified tag is a wildcard, not English.
	und := langtag.MustParse("und")
	en := langtag.MustParse("en")
	if d := und.Distance(en); d != langtag.MaxDistance {
		t.Errorf("Distance(und, en) = %d, want %d", d, langtag.MaxDistance)
	}
	if d := und.Distance(und); d != 0 {
		t.Errorf("Distance(und, und) = %d, want 0", d)
	}
}

func TestDistanceRange(t *testing.T) {
	langs := []string{"en", "zh", "ar", "hi", "ja", "sr-Latn", "und-Zzzz"}
	for _, d := range langs {
		for _, s := range langs {
			got, err := langtag.TagDistance(d, s)
			if err != nil {
				t.Fatalf("TagDistance(%q, %q): %v", d, s, err)
			}
			if got < 0 || got > langtag.MaxDistance {
				t.Errorf("TagDistance(%q, %q) = %d, outside [0, %d]", d, s, got, langtag.MaxDistance)
			}
		}
	}
}
