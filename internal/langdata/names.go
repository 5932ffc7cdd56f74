// Code generated from the IANA language subtag registry (English
// descriptions). DO NOT EDIT.

package langdata

// LanguageNames gives the English name of a language subtag.
var LanguageNames = map[string]string{
	"aa":  "Afar",
	"af":  "Afrikaans",
	"am":  "Amharic",
	"ar":  "Arabic",
	"arb": "Modern Standard Arabic",
	"ary": "Moroccan Arabic",
	"arz": "Egyptian Arabic",
	"as":  "Assamese",
	"az":  "Azerbaijani",
	"be":  "Belarusian",
	"bg":  "Bulgarian",
	"bn":  "Bangla",
	"bo":  "Tibetan",
	"bs":  "Bosnian",
	"ca":  "Catalan",
	"cmn": "Mandarin Chinese",
	"cs":  "Czech",
	"cy":  "Welsh",
	"da":  "Danish",
	"de":  "German",
	"el":  "Greek",
	"en":  "English",
	"eo":  "Esperanto",
	"es":  "Spanish",
	"et":  "Estonian",
	"eu":  "Basque",
	"fa":  "Persian",
	"fi":  "Finnish",
	"fil": "Filipino",
	"fo":  "Faroese",
	"fr":  "French",
	"ga":  "Irish",
	"gl":  "Galician",
	"gsw": "Swiss German",
	"gu":  "Gujarati",
	"ha":  "Hausa",
	"hak": "Hakka Chinese",
	"he":  "Hebrew",
	"hi":  "Hindi",
	"hr":  "Croatian",
	"ht":  "Haitian Creole",
	"hu":  "Hungarian",
	"hy":  "Armenian",
	"id":  "Indonesian",
	"ig":  "Igbo",
	"is":  "Icelandic",
	"it":  "Italian",
	"ja":  "Japanese",
	"jv":  "Javanese",
	"ka":  "Georgian",
	"kk":  "Kazakh",
	"km":  "Khmer",
	"kn":  "Kannada",
	"ko":  "Korean",
	"ku":  "Kurdish",
	"ky":  "Kyrgyz",
	"la":  "Latin",
	"lb":  "Luxembourgish",
	"lo":  "Lao",
	"lol": "Mongo",
	"lt":  "Lithuanian",
	"lv":  "Latvian",
	"mg":  "Malagasy",
	"mk":  "Macedonian",
	"ml":  "Malayalam",
	"mn":  "Mongolian",
	"mr":  "Marathi",
	"ms":  "Malay",
	"mt":  "Maltese",
	"my":  "Burmese",
	"nan": "Min Nan Chinese",
	"nb":  "Norwegian Bokmål",
	"ne":  "Nepali",
	"nl":  "Dutch",
	"nn":  "Norwegian Nynorsk",
	"no":  "Norwegian",
	"or":  "Odia",
	"pa":  "Punjabi",
	"pl":  "Polish",
	"ps":  "Pashto",
	"pt":  "Portuguese",
	"ro":  "Romanian",
	"ru":  "Russian",
	"rw":  "Kinyarwanda",
	"sd":  "Sindhi",
	"si":  "Sinhala",
	"sk":  "Slovak",
	"sl":  "Slovenian",
	"so":  "Somali",
	"sq":  "Albanian",
	"sr":  "Serbian",
	"sv":  "Swedish",
	"sw":  "Swahili",
	"ta":  "Tamil",
	"te":  "Telugu",
	"tg":  "Tajik",
	"th":  "Thai",
	"ti":  "Tigrinya",
	"tlh": "Klingon",
	"tr":  "Turkish",
	"uk":  "Ukrainian",
	"und": "Unknown language",
	"ur":  "Urdu",
	"uz":  "Uzbek",
	"vi":  "Vietnamese",
	"wo":  "Wolof",
	"wuu": "Wu Chinese",
	"xh":  "Xhosa",
	"yi":  "Yiddish",
	"yo":  "Yoruba",
	"yue": "Cantonese",
	"zh":  "Chinese",
	"zu":  "Zulu",
}

// ScriptNames gives the English name of a script subtag.
var ScriptNames = map[string]string{
	"Arab": "Arabic",
	"Armn": "Armenian",
	"Beng": "Bangla",
	"Bopo": "Bopomofo",
	"Cyrl": "Cyrillic",
	"Deva": "Devanagari",
	"Ethi": "Ethiopic",
	"Geor": "Georgian",
	"Grek": "Greek",
	"Gujr": "Gujarati",
	"Guru": "Gurmukhi",
	"Hang": "Hangul",
	"Hani": "Han",
	"Hans": "Simplified",
	"Hant": "Traditional",
	"Hebr": "Hebrew",
	"Jpan": "Japanese",
	"Khmr": "Khmer",
	"Knda": "Kannada",
	"Kore": "Korean",
	"Laoo": "Lao",
	"Latn": "Latin",
	"Mlym": "Malayalam",
	"Mong": "Mongolian",
	"Mymr": "Myanmar",
	"Orya": "Odia",
	"Shaw": "Shavian",
	"Sinh": "Sinhala",
	"Taml": "Tamil",
	"Telu": "Telugu",
	"Thaa": "Thaana",
	"Thai": "Thai",
	"Tibt": "Tibetan",
	"Zinh": "Inherited",
	"Zzzz": "Unknown Script",
}

// TerritoryNames gives the English name of a territory subtag.
var TerritoryNames = map[string]string{
	"001": "world",
	"419": "Latin America",
	"AR":  "Argentina",
	"AT":  "Austria",
	"AU":  "Australia",
	"BD":  "Bangladesh",
	"BE":  "Belgium",
	"BR":  "Brazil",
	"CA":  "Canada",
	"CH":  "Switzerland",
	"CL":  "Chile",
	"CN":  "China",
	"CO":  "Colombia",
	"CZ":  "Czechia",
	"DE":  "Germany",
	"DK":  "Denmark",
	"EE":  "Estonia",
	"EG":  "Egypt",
	"ES":  "Spain",
	"EU":  "European Union",
	"FI":  "Finland",
	"FR":  "France",
	"GB":  "United Kingdom",
	"GR":  "Greece",
	"HK":  "Hong Kong",
	"HR":  "Croatia",
	"HU":  "Hungary",
	"ID":  "Indonesia",
	"IE":  "Ireland",
	"IL":  "Israel",
	"IN":  "India",
	"IR":  "Iran",
	"IT":  "Italy",
	"JP":  "Japan",
	"KR":  "South Korea",
	"LT":  "Lithuania",
	"LU":  "Luxembourg",
	"LV":  "Latvia",
	"MA":  "Morocco",
	"MO":  "Macao",
	"MX":  "Mexico",
	"MY":  "Malaysia",
	"NL":  "Netherlands",
	"NO":  "Norway",
	"NZ":  "New Zealand",
	"PE":  "Peru",
	"PH":  "Philippines",
	"PK":  "Pakistan",
	"PL":  "Poland",
	"PT":  "Portugal",
	"RO":  "Romania",
	"RS":  "Serbia",
	"RU":  "Russia",
	"SA":  "Saudi Arabia",
	"SE":  "Sweden",
	"SI":  "Slovenia",
	"SK":  "Slovakia",
	"TH":  "Thailand",
	"TR":  "Türkiye",
	"TW":  "Taiwan",
	"UA":  "Ukraine",
	"US":  "United States",
	"VN":  "Vietnam",
	"ZA":  "South Africa",
	"ZZ":  "Unknown Region",
}

// VariantNames gives the English name of a variant subtag.
var VariantNames = map[string]string{
	"1901":     "traditional German orthography",
	"1996":     "German orthography of 1996",
	"hepburn":  "Hepburn romanization",
	"oxendict": "Oxford English Dictionary spelling",
	"pinyin":   "Pinyin romanization",
	"valencia": "Valencian",
}

// ExtraNameTags maps additional English names (lowercased) to the full
// tag they denote, for names that resolve to more than one subtag.
var ExtraNameTags = map[string]string{
	"brazilian portuguese": "pt-BR",
	"european portuguese":  "pt-PT",
	"simplified chinese":   "zh-Hans",
	"traditional chinese":  "zh-Hant",
}
