package langtag_test

import (
	"testing"

	"langtag"
)

func TestMakeInterning(t *testing.T) {
	a := langtag.Make(langtag.Fields{Language: "EN", Territory: "us"})
	b := langtag.Make(langtag.Fields{Language: "en", Territory: "US"})
	if a != b {
		t.Error("same attribute set built two instances")
	}
	c := langtag.MustParse("en-US")
	if a != c {
		t.Error("Parse and Make built different instances for en-US")
	}
	if a.String() != "en-US" {
		t.Errorf("canonical form = %q, want %q", a.String(), "en-US")
	}
}

func TestMakeUndIsEmpty(t *testing.T) {
	und := langtag.Make(langtag.Fields{Language: "und"})
	empty := langtag.Make(langtag.Fields{})
	if und != empty {
		t.Error(`Make(language: "und") and Make() differ`)
	}
	if und.Language() != "" {
		t.Errorf("Language() = %q, want empty", und.Language())
	}
	if und.String() != "und" {
		t.Errorf("String() = %q, want %q", und.String(), "und")
	}
}

func TestSerializationOrder(t *testing.T) {
	tag := langtag.Make(langtag.Fields{
		Language:   "zh",
		Script:     "hant",
		Territory:  "tw",
		Variants:   []string{"pinyin", "1901"},
		Extensions: []string{"u-co-pinyin"},
		Private:    "x-wadegile",
	})
	want := "zh-Hant-TW-1901-pinyin-u-co-pinyin-x-wadegile"
	if tag.String() != want {
		t.Errorf("String() = %q, want %q", tag.String(), want)
	}
}

func TestSimplifyScript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en-Latn", "en"},
		{"yi-Latn", "yi-Latn"},
		{"yi-Hebr", "yi"},
		{"sr-Cyrl", "sr-Cyrl"}, // Serbian has no default script
		{"und-Latn", "und-Latn"},
	}
	for _, tt := range tests {
		got := langtag.MustParse(tt.in).SimplifyScript().String()
		if got != tt.want {
			t.Errorf("SimplifyScript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAssumeScript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en-Latn"},
		{"yi", "yi-Hebr"},
		{"sr", "sr"},
		{"und-US", "und-US"},
	}
	for _, tt := range tests {
		got := langtag.MustParse(tt.in).AssumeScript().String()
		if got != tt.want {
			t.Errorf("AssumeScript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPreferMacrolanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"arb", "ar"},
		{"cmn-Hant", "zh-Hant"},
		{"yue-Hant", "yue-Hant"}, // not the dominant member of zh
		{"no", "nb"},
		{"en", "en"},
	}
	for _, tt := range tests {
		got := langtag.MustParse(tt.in).PreferMacrolanguage().String()
		if got != tt.want {
			t.Errorf("PreferMacrolanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBroaden(t *testing.T) {
	tag := langtag.MustParse("nn-Latn-NO-x-thingy")
	var got []string
	for _, b := range tag.Broaden() {
		got = append(got, b.String())
	}
	want := []string{
		"nn-Latn-NO-x-thingy",
		"nn-Latn-NO",
		"nn-NO",
		"nn-Latn",
		"nn",
		"und-Latn",
		"und",
	}
	if len(got) != len(want) {
		t.Fatalf("Broaden() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Broaden()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMaximize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zh-Hant", "zh-Hant-TW"},
		{"zh-TW", "zh-Hant-TW"},
		{"ja", "ja-Jpan-JP"},
		{"pt", "pt-Latn-BR"},
		{"und-Arab", "ar-Arab-EG"},
		{"und-CH", "de-Latn-CH"},
		{"und", "en-Latn-US"},
	}
	for _, tt := range tests {
		got := langtag.MustParse(tt.in).Maximize().String()
		if got != tt.want {
			t.Errorf("Maximize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaximizeKeepsExplicitFields(t *testing.T) {
	tag := langtag.Make(langtag.Fields{Territory: "IN"}).Maximize()
	if tag.Territory() != "IN" {
		t.Errorf("territory = %q, want IN", tag.Territory())
	}
	if tag.Language() == "" || tag.Script() == "" {
		t.Errorf("language and script should be filled in, got %q", tag)
	}
}

func TestMaximizeIdempotent(t *testing.T) {
	for _, in := range []string{"zh-Hant", "en", "und", "sr-ME", "pt-PT"} {
		once := langtag.MustParse(in).Maximize()
		if twice := once.Maximize(); twice != once {
			t.Errorf("Maximize(%q) not idempotent: %q then %q", in, once, twice)
		}
	}
}

func TestUpdate(t *testing.T) {
	base := langtag.MustParse("en-US")
	other := langtag.Make(langtag.Fields{Script: "Shaw"})
	got := base.Update(other)
	if got.String() != "en-Shaw-US" {
		t.Errorf("Update = %q, want en-Shaw-US", got)
	}
	override := langtag.MustParse("fr")
	if got := base.Update(override); got.String() != "fr-US" {
		t.Errorf("Update = %q, want fr-US", got)
	}
}
