// Code generated from CLDR supplemental languageInfo data
// (languageMatches type="written_new"). DO NOT EDIT.

package langdata

// MatchDistances maps a desired key to a supported key to the distance
// contribution for that pair. Keys are either a bare language subtag
// ("gsw") or a language and script joined by an underscore ("zh_Hans"),
// where either half may be the wildcard "*". A language+script entry is
// a pre-combined contribution replacing both the language and script
// tiers. Symmetric rules appear in both directions; one-way rules
// appear only in the direction they hold.
//
// The entries for "sr" paired with "bs"/"hr" carry the +1 adjustment
// for the legacy tag "sh", which normalizes to "sr-Latn"; the raw "sh"
// entries are retained for unnormalized lookups.
var MatchDistances = map[string]map[string]uint8{
	// Norwegian.
	"no": {"nb": 1, "nn": 10, "da": 8},
	"nb": {"no": 1, "nn": 10, "da": 8},
	"nn": {"nb": 10, "no": 10},
	"da": {"no": 8, "nb": 8},

	// Serbo-Croatian cluster.
	"sh": {"bs": 4, "hr": 4, "sr": 4},
	"bs": {"hr": 4, "sh": 4, "sr": 5},
	"hr": {"bs": 4, "sh": 4, "sr": 5},
	"sr": {"bs": 5, "hr": 5, "sh": 4},

	// Mutually intelligible pairs.
	"ssy": {"aa": 4},
	"aa":  {"ssy": 4},

	// One-way intelligibility facts.
	"gsw": {"de": 4},
	"lb":  {"de": 4},

	// Languages encompassed by a macrolanguage.
	"arz": {"ar": 10},
	"ary": {"ar": 10},
	"wuu": {"zh": 10},
	"yue": {"zh": 10},
	"hak": {"zh": 10},
	"nan": {"zh": 10},
	"hsn": {"zh": 10},
	"gan": {"zh": 10},

	// Fallbacks to a widespread second language, pre-combined with the
	// script tier so a customary-script difference is not double
	// counted.
	"ab_*":  {"ru_*": 30},
	"af_*":  {"nl_*": 10},
	"am_*":  {"en_*": 30},
	"az_*":  {"ru_*": 30},
	"be_*":  {"ru_*": 20},
	"eu_*":  {"es_*": 10},
	"gl_*":  {"es_*": 10},
	"kk_*":  {"ru_*": 30},
	"ky_*":  {"ru_*": 30},
	"mg_*":  {"fr_*": 10},
	"mr_*":  {"hi_*": 10},
	"ms_*":  {"id_*": 10},
	"ta_*":  {"en_*": 20},
	"tg_*":  {"ru_*": 30},
	"uk_*":  {"ru_*": 20},
	"uz_*":  {"ru_*": 30},

	// Script preferences within a language.
	"zh_Hans": {"zh_Hant": 15},
	"zh_Hant": {"zh_Hans": 19},
	"sr_Latn": {"sr_Cyrl": 5},
	"sr_Cyrl": {"sr_Latn": 5},

	// Defaults for complete mismatches at each tier.
	"*":   {"*": 80},
	"*_*": {"*_*": 50},
}

// TerritoryClusters names sets of territories the territory-tier rules
// refer to. "419" and the listed countries together form the Americas;
// "enUS" is the cluster of territories whose English follows American
// conventions.
var TerritoryClusters = map[string]map[string]bool{
	"enUS": setOf(
		"AS", "CA", "GU", "MH", "MP", "PH", "PR", "UM", "US", "VI",
	),
	"americas": setOf(
		"419", "AG", "AI", "AR", "AW", "BB", "BL", "BM", "BO", "BQ",
		"BR", "BS", "BZ", "CA", "CL", "CO", "CR", "CU", "CW", "DM",
		"DO", "EC", "FK", "GD", "GF", "GP", "GT", "GY", "HN", "HT",
		"JM", "KN", "KY", "LC", "MF", "MQ", "MS", "MX", "NI", "PA",
		"PE", "PR", "PY", "SR", "SV", "SX", "TC", "TT", "US", "UY",
		"VC", "VE", "VG", "VI",
	),
}

// TerritoryRule gives the territory-tier distance for a desired and
// supported territory under a given language. Patterns are a literal
// territory code, "*", a cluster reference "$name", or its complement
// "$!name". Rules are evaluated in order; the first match wins. They
// apply only when both sides resolved to the same language.
type TerritoryRule struct {
	Language  string
	Desired   string
	Supported string
	Distance  uint8
}

// DefaultTerritoryDistance applies when no TerritoryRule matches and
// the territories differ.
const DefaultTerritoryDistance = 4

// TerritoryRules holds the ordered territory-tier rules. Symmetric
// rules are pre-expanded into both directions.
var TerritoryRules = []TerritoryRule{
	{"en", "$enUS", "$enUS", 4},
	{"en", "$!enUS", "GB", 3},
	{"en", "GB", "$!enUS", 3},
	{"en", "$!enUS", "$!enUS", 4},
	{"en", "*", "*", 5},
	{"es", "$americas", "419", 1},
	{"es", "$americas", "$americas", 4},
	{"es", "*", "*", 5},
	{"pt", "$americas", "$americas", 4},
	{"pt", "*", "*", 5},
}

func setOf(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}
