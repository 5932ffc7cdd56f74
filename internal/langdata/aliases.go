// Code generated from the IANA language subtag registry and CLDR
// supplemental alias data. DO NOT EDIT.

package langdata

// LanguageReplacements maps deprecated or non-canonical language codes
// and whole tags (lowercased) to their preferred values. A value may be
// a full tag ("sh" becomes "sr-Latn"), in which case the caller is
// expected to re-parse it. Keys containing a hyphen are whole-tag or
// language+extlang replacements.
var LanguageReplacements = map[string]string{
	// ISO 639-1 codes that were renamed.
	"in":   "id",
	"iw":   "he",
	"ji":   "yi",
	"jw":   "jv",
	"mo":   "ro-MD",
	"tl":   "fil",
	"root": "und",

	// Codes replaced by CLDR for sociopolitical reasons.
	"sh":  "sr-Latn",
	"scc": "sr",
	"scr": "hr",

	// Overlong ISO 639-2/3 codes with two-letter equivalents.
	"aar": "aa",
	"afr": "af",
	"ara": "ar",
	"ben": "bn",
	"bod": "bo",
	"bul": "bg",
	"ces": "cs",
	"cym": "cy",
	"dan": "da",
	"deu": "de",
	"ell": "el",
	"eng": "en",
	"est": "et",
	"eus": "eu",
	"fas": "fa",
	"fin": "fi",
	"fra": "fr",
	"gle": "ga",
	"glg": "gl",
	"heb": "he",
	"hin": "hi",
	"hrv": "hr",
	"hun": "hu",
	"hye": "hy",
	"ind": "id",
	"isl": "is",
	"ita": "it",
	"jpn": "ja",
	"kat": "ka",
	"kor": "ko",
	"lav": "lv",
	"lit": "lt",
	"mkd": "mk",
	"mlt": "mt",
	"mya": "my",
	"nld": "nl",
	"nor": "no",
	"pol": "pl",
	"por": "pt",
	"ron": "ro",
	"rus": "ru",
	"slk": "sk",
	"slv": "sl",
	"spa": "es",
	"sqi": "sq",
	"srp": "sr",
	"swe": "sv",
	"tha": "th",
	"tur": "tr",
	"ukr": "uk",
	"urd": "ur",
	"vie": "vi",
	"zho": "zh",

	// Grandfathered whole tags from RFC 3066.
	"art-lojban":  "jbo",
	"cel-gaulish": "xtg-x-cel-gaulish",
	"en-gb-oed":   "en-GB-oxendict",
	"i-ami":       "ami",
	"i-bnn":       "bnn",
	"i-default":   "en-x-i-default",
	"i-enochian":  "und-x-i-enochian",
	"i-hak":       "hak",
	"i-klingon":   "tlh",
	"i-lux":       "lb",
	"i-mingo":     "see-x-i-mingo",
	"i-navajo":    "nv",
	"i-pwn":       "pwn",
	"i-tao":       "tao",
	"i-tay":       "tay",
	"i-tsu":       "tsu",
	"no-bok":      "nb",
	"no-nyn":      "nn",
	"zh-guoyu":    "cmn",
	"zh-hakka":    "hak",
	"zh-min":      "nan-x-zh-min",
	"zh-min-nan":  "nan",
	"zh-xiang":    "hsn",

	// Sign languages, formerly regional variants of the fictitious
	// global sign language "sgn".
	"sgn-be-fr": "sfb",
	"sgn-be-nl": "vgt",
	"sgn-br":    "bzs",
	"sgn-ch-de": "sgg",
	"sgn-de":    "gsg",
	"sgn-dk":    "dsl",
	"sgn-es":    "ssp",
	"sgn-fr":    "fsl",
	"sgn-gb":    "bfi",
	"sgn-gr":    "gss",
	"sgn-ie":    "isg",
	"sgn-it":    "ise",
	"sgn-jp":    "jsl",
	"sgn-mx":    "mfs",
	"sgn-ni":    "ncs",
	"sgn-nl":    "dse",
	"sgn-no":    "nsl",
	"sgn-pt":    "psr",
	"sgn-se":    "swl",
	"sgn-us":    "ase",
	"sgn-za":    "sfs",

	// Language+extlang pairs that collapse to a single modern code.
	"zh-cmn": "cmn",
	"zh-gan": "gan",
	"zh-hak": "hak",
	"zh-hsn": "hsn",
	"zh-nan": "nan",
	"zh-wuu": "wuu",
	"zh-yue": "yue",
}

// TerritoryReplacements maps deprecated territory codes (lowercased)
// to their successors. When a country split, the first-listed
// successor was chosen, matching CLDR's own oversimplification.
var TerritoryReplacements = map[string]string{
	"an": "CW",
	"bu": "MM",
	"cs": "RS",
	"dd": "DE",
	"fx": "FR",
	"nh": "VU",
	"qu": "EU",
	"su": "RU",
	"tp": "TL",
	"uk": "GB",
	"yd": "YE",
	"yu": "RS",
	"zr": "CD",
}

// ScriptReplacements maps deprecated script codes (lowercased) to
// their preferred values.
var ScriptReplacements = map[string]string{
	"qaai": "Zinh",
}
