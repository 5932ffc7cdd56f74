package distance_test

import (
	"testing"

	"langtag/internal/distance"
)

func triple(lang, script, territory string) distance.Triple {
	return distance.Triple{Language: lang, Script: script, Territory: territory}
}

func TestBetweenTiers(t *testing.T) {
	tests := []struct {
		name      string
		desired   distance.Triple
		supported distance.Triple
		want      int
	}{
		{"identical", triple("en", "Latn", "US"), triple("en", "Latn", "US"), 0},
		{"territory only", triple("en", "Latn", "US"), triple("en", "Latn", "GB"), 5},
		{"regional english", triple("en", "Latn", "AU"), triple("en", "Latn", "GB"), 3},
		{"unrelated languages", triple("en", "Latn", "US"), triple("zh", "Hans", "CN"), 134},
		{"script within language", triple("zh", "Hans", "CN"), triple("zh", "Hant", "TW"), 19},
		{"script within language, reversed", triple("zh", "Hant", "TW"), triple("zh", "Hans", "CN"), 23},
		{"one-way intelligibility", triple("gsw", "Latn", "CH"), triple("de", "Latn", "DE"), 8},
		{"one-way intelligibility, reversed", triple("de", "Latn", "DE"), triple("gsw", "Latn", "CH"), 84},
		{"lingua franca fallback", triple("ta", "Taml", "IN"), triple("en", "Latn", "US"), 24},
		{"macrolanguage member", triple("wuu", "Hans", "CN"), triple("zh", "Hans", "CN"), 10},
		{"wildcard desired", distance.WildcardTriple, triple("en", "Latn", "US"), 134},
		{"latin american spanish", triple("es", "Latn", "PE"), triple("es", "Latn", "419"), 1},
		{"latin american spanish, reversed", triple("es", "Latn", "419"), triple("es", "Latn", "PE"), 4},
		{"european spanish to regional", triple("es", "Latn", "ES"), triple("es", "Latn", "419"), 5},
	}
	for _, tt := range tests {
		if got := distance.Between(tt.desired, tt.supported); got != tt.want {
			t.Errorf("%s: Between(%v, %v) = %d, want %d",
				tt.name, tt.desired, tt.supported, got, tt.want)
		}
	}
}

func TestBetweenMemoized(t *testing.T) {
	d := triple("ja", "Jpan", "JP")
	s := triple("ja", "Latn", "US")
	first := distance.Between(d, s)
	second := distance.Between(d, s)
	if first != second {
		t.Errorf("memoized result changed: %d then %d", first, second)
	}
	if first != 54 {
		t.Errorf("Between = %d, want 54", first)
	}
}
