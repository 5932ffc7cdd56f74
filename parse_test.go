package langtag_test

import (
	"errors"
	"testing"

	"langtag"
)

func TestParseNormalizes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en-US", "en-US"},
		{"en_US", "en-US"},
		{"zh-hant-tw", "zh-Hant-TW"},
		{"es-419", "es-419"},
		{"iw", "he"},
		{"in", "id"},
		{"eng", "en"},
		{"tl", "fil"},
		{"mo", "ro-MD"},
		{"sh", "sr-Latn"},
		{"sh-QU", "sr-Latn-EU"},
		{"en-uk", "en-GB"},
		{"sgn-US", "ase"},
		{"zh-min-nan", "nan"},
		{"zh-min", "nan-x-zh-min"},
		{"zh-yue", "yue"},
		{"zh-yue-Hant", "yue-Hant"},
		{"en-gb-oed", "en-GB-oxendict"},
		{"root", "und"},
		{"und", "und"},
		{"und-ibe", "und-ibe"},
		{"ja-latn-hepburn", "ja-Latn-hepburn"},
		{"en-u-co-backwards-x-pig-latin", "en-u-co-backwards-x-pig-latin"},
	}
	for _, tt := range tests {
		tag, err := langtag.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if tag.String() != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, tag.String(), tt.want)
		}
	}
}

func TestParseRawKeepsDeprecated(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"iw", "iw"},
		{"sgn-US", "sgn-US"},
		{"en-uk", "en-UK"},
		{"zh-yue", "zh-yue"},
		{"en-gb-oed", "en-gb-oed"}, // grandfathered tags keep their whole shape
	}
	for _, tt := range tests {
		tag, err := langtag.ParseRaw(tt.in)
		if err != nil {
			t.Errorf("ParseRaw(%q): %v", tt.in, err)
			continue
		}
		if tag.String() != tt.want {
			t.Errorf("ParseRaw(%q) = %q, want %q", tt.in, tag.String(), tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Already-canonical tags survive a raw parse unchanged.
	for _, in := range []string{
		"en", "en-US", "zh-Hant-TW", "sr-Latn-RS", "de-DE-1901",
		"hy-Latn-IT-arevela", "en-u-co-backwards-x-pig-latin",
		"und-419",
	} {
		tag, err := langtag.ParseRaw(in)
		if err != nil {
			t.Errorf("ParseRaw(%q): %v", in, err)
			continue
		}
		if tag.String() != in {
			t.Errorf("ParseRaw(%q).String() = %q", in, tag.String())
		}
	}
}

func TestParsePrivateOnlySerializesWithUnd(t *testing.T) {
	// A tag with no language still serializes with the "und" anchor.
	tag, err := langtag.ParseRaw("x-dothraki")
	if err != nil {
		t.Fatal(err)
	}
	if got := tag.String(); got != "und-x-dothraki" {
		t.Errorf("ParseRaw(\"x-dothraki\").String() = %q, want %q", got, "und-x-dothraki")
	}
}

func TestParseIdempotent(t *testing.T) {
	for _, in := range []string{"sh-QU", "iw", "zh-min", "en_US"} {
		once := langtag.MustParse(in)
		twice := langtag.MustParse(once.String())
		if once != twice {
			t.Errorf("normalization of %q not idempotent: %q then %q", in, once, twice)
		}
	}
}

func TestParseErrorDetail(t *testing.T) {
	_, err := langtag.Parse("spa-mx-latn")
	if err == nil {
		t.Fatal("expected an error")
	}
	var perr *langtag.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *langtag.ParseError", err)
	}
	if perr.Subtag != "latn" {
		t.Errorf("offending subtag = %q, want %q", perr.Subtag, "latn")
	}
	want := `this script subtag, "latn", is out of place: expected variant, extension, or end of string`
	if perr.Reason != want {
		t.Errorf("reason = %q, want %q", perr.Reason, want)
	}
}

func TestStandardizeTag(t *testing.T) {
	tests := []struct {
		in    string
		macro bool
		want  string
	}{
		{"en_US", false, "en-US"},
		{"en-Latn", false, "en"},
		{"en-uk", false, "en-GB"},
		{"eng", false, "en"},
		{"arb-Arab", true, "ar"},
		{"arb-Arab", false, "arb-Arab"},
		{"sh-QU", false, "sr-Latn-EU"},
	}
	for _, tt := range tests {
		got, err := langtag.StandardizeTag(tt.in, tt.macro)
		if err != nil {
			t.Errorf("StandardizeTag(%q, %v): %v", tt.in, tt.macro, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StandardizeTag(%q, %v) = %q, want %q", tt.in, tt.macro, got, tt.want)
		}
	}
}
