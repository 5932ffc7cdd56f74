package langtag_test

import (
	"testing"

	"langtag"
)

func TestClosestMatch(t *testing.T) {
	tests := []struct {
		name      string
		desired   string
		supported []string
		maxDist   int
		wantTag   string
		wantDist  int
	}{
		{
			name:      "literal hit",
			desired:   "fr",
			supported: []string{"de", "fr", "en"},
			wantTag:   "fr",
			wantDist:  0,
		},
		{
			name:      "literal hit after standardizing",
			desired:   "en_US",
			supported: []string{"en-GB", "en-US"},
			wantTag:   "en-US",
			wantDist:  0,
		},
		{
			name:      "legacy tag standardizes onto a candidate",
			desired:   "sh",
			supported: []string{"hr", "sr-Latn"},
			wantTag:   "sr-Latn",
			wantDist:  0,
		},
		{
			name:      "closest regional variant wins",
			desired:   "pt",
			supported: []string{"nl", "pt-PT", "en"},
			wantTag:   "pt-PT",
			wantDist:  5,
		},
		{
			name:      "ties go to the first listed",
			desired:   "es-MX",
			supported: []string{"es-AR", "es-CL"},
			wantTag:   "es-AR",
			wantDist:  4,
		},
		{
			name:      "nothing close enough",
			desired:   "de",
			supported: []string{"ja", "ko", "th"},
			wantTag:   "und",
			wantDist:  langtag.NoMatchDistance,
		},
		{
			name:     "empty candidate list",
			desired:  "en",
			wantTag:  "und",
			wantDist: langtag.NoMatchDistance,
		},
		{
			name:      "raised cutoff admits a distant match",
			desired:   "ta",
			supported: []string{"en"},
			maxDist:   30,
			wantTag:   "en",
			wantDist:  24,
		},
		{
			name:      "default cutoff still admits the same match",
			desired:   "ta",
			supported: []string{"en"},
			wantTag:   "en",
			wantDist:  24,
		},
		{
			name:      "lowered cutoff rejects the same match",
			desired:   "ta",
			supported: []string{"en"},
			maxDist:   20,
			wantTag:   "und",
			wantDist:  langtag.NoMatchDistance,
		},
	}
	for _, tt := range tests {
		tag, dist, err := langtag.ClosestMatch(tt.desired, tt.supported, tt.maxDist)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if tag != tt.wantTag || dist != tt.wantDist {
			t.Errorf("%s: ClosestMatch = (%q, %d), want (%q, %d)",
				tt.name, tag, dist, tt.wantTag, tt.wantDist)
		}
	}
}

func TestClosestMatchBadInput(t *testing.T) {
	if _, _, err := langtag.ClosestMatch("spa-mx-latn", []string{"es"}, 0); err == nil {
		t.Error("expected an error for a malformed desired tag")
	}
	if _, _, err := langtag.ClosestMatch("es", []string{"spa-mx-latn"}, 0); err == nil {
		t.Error("expected an error for a malformed supported tag")
	}
}

func TestBestMatchLegacyScale(t *testing.T) {
	tag, score, err := langtag.BestMatch("no", []string{"nn", "da"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "nn" || score != 90 {
		t.Errorf("BestMatch = (%q, %d), want (nn, 90)", tag, score)
	}

	tag, score, err = langtag.BestMatch("de", []string{"ja"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "und" || score != 0 {
		t.Errorf("BestMatch = (%q, %d), want (und, 0)", tag, score)
	}
}

func TestScoreLegacyScale(t *testing.T) {
	en := langtag.MustParse("en")
	if got := en.Score(langtag.MustParse("en-US")); got != 100 {
		t.Errorf("Score(en, en-US) = %d, want 100", got)
	}
	gsw := langtag.MustParse("gsw")
	if got := gsw.Score(langtag.MustParse("de")); got != 92 {
		t.Errorf("Score(gsw, de) = %d, want 92", got)
	}
	if got := en.Score(langtag.MustParse("zh")); got != 0 {
		t.Errorf("Score(en, zh) = %d, want 0", got)
	}
}
