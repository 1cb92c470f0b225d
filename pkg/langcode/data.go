package langcode

// Default table data. Raw locale spellings cover the forms commonly
// reported by operating systems: ISO codes with region and encoding
// suffixes, Windows spellings, and plain English names. All keys are
// lower-case; Normalize lower-cases its input before lookup.
var defaultMappings = map[string]string{
	// Simplified Chinese. The bare "zh" mapping to "zh-cn" is a policy
	// default; supply a custom table to change it.
	"chinese-simplified":   "zh-cn",
	"chinese (simplified)": "zh-cn",
	"chs":                  "zh-cn",
	"zh_cn":                "zh-cn",
	"zh-cn":                "zh-cn",
	"zh_hans":              "zh-cn",
	"zh-hans":              "zh-cn",
	"zh_cn.utf8":           "zh-cn",
	"zh_cn.utf-8":          "zh-cn",
	"zh.utf8":              "zh-cn",
	"zh":                   "zh-cn",
	"chinese":              "zh-cn",
	"zho":                  "zh-cn",
	"zhcn":                 "zh-cn",

	// Traditional Chinese.
	"chinese-traditional":   "zh-tw",
	"chinese (traditional)": "zh-tw",
	"cht":                   "zh-tw",
	"zh_tw":                 "zh-tw",
	"zh-tw":                 "zh-tw",
	"zh_hant":               "zh-tw",
	"zh-hant":               "zh-tw",
	"zh_tw.utf8":            "zh-tw",
	"zh_tw.utf-8":           "zh-tw",
	"zh_hk":                 "zh-tw",
	"zh-hk":                 "zh-tw",
	"zh_mo":                 "zh-tw",
	"zh-mo":                 "zh-tw",
	"zhtw":                  "zh-tw",
	"zhht":                  "zh-tw",

	// Japanese.
	"japanese":    "ja",
	"ja":          "ja",
	"ja_jp":       "ja",
	"ja-jp":       "ja",
	"jpn":         "ja",
	"ja_ja":       "ja",
	"ja-ja":       "ja",
	"ja.utf8":     "ja",
	"ja.utf-8":    "ja",
	"ja_jp.utf8":  "ja",
	"ja_jp.utf-8": "ja",

	// Korean.
	"korean":      "ko",
	"ko":          "ko",
	"ko_kr":       "ko",
	"ko-kr":       "ko",
	"kor":         "ko",
	"ko_ko":       "ko",
	"ko-ko":       "ko",
	"ko.utf8":     "ko",
	"ko.utf-8":    "ko",
	"ko_kr.utf8":  "ko",
	"ko_kr.utf-8": "ko",

	// Vietnamese.
	"vietnamese": "vi",
	"vi":         "vi",
	"vi_vn":      "vi",
	"vi-vn":      "vi",
	"vie":        "vi",
	"vi.utf8":    "vi",
	"vi.utf-8":   "vi",
	"vi_vn.utf8": "vi",

	// Thai.
	"thai":       "th",
	"th":         "th",
	"th_th":      "th",
	"th-th":      "th",
	"tha":        "th",
	"th.utf8":    "th",
	"th_th.utf8": "th",

	// Indonesian.
	"indonesian": "id",
	"id":         "id",
	"id_id":      "id",
	"id-id":      "id",
	"ind":        "id",
	"id.utf8":    "id",
	"id_id.utf8": "id",

	// Malay.
	"malay":      "ms",
	"ms":         "ms",
	"ms_my":      "ms",
	"ms-my":      "ms",
	"msa":        "ms",
	"ms.utf8":    "ms",
	"ms_my.utf8": "ms",

	// Spanish.
	"spanish":    "es",
	"es":         "es",
	"es_es":      "es",
	"es-es":      "es",
	"spa":        "es",
	"es_419":     "es",
	"es-419":     "es",
	"es_mx":      "es",
	"es-mx":      "es",
	"es.utf8":    "es",
	"es_es.utf8": "es",

	// French.
	"french":     "fr",
	"fr":         "fr",
	"fr_fr":      "fr",
	"fr-fr":      "fr",
	"fra":        "fr",
	"fr_ca":      "fr",
	"fr-ca":      "fr",
	"fr_be":      "fr",
	"fr_ch":      "fr",
	"fr.utf8":    "fr",
	"fr_fr.utf8": "fr",

	// German.
	"german":     "de",
	"de":         "de",
	"de_de":      "de",
	"de-de":      "de",
	"deu":        "de",
	"de_at":      "de",
	"de-at":      "de",
	"de_ch":      "de",
	"de.utf8":    "de",
	"de_de.utf8": "de",

	// Italian.
	"italian":    "it",
	"it":         "it",
	"it_it":      "it",
	"it-it":      "it",
	"ita":        "it",
	"it_ch":      "it",
	"it.utf8":    "it",
	"it_it.utf8": "it",
}

// Keyword lists used for fuzzy matching of package identifiers.
// Order matters: FindPackageID synthesizes candidates in list order.
var defaultKeywords = map[string][]string{
	"zh-cn": {
		"zh-cn", "zh_cn", "zhcn",
		"simplified", "简体", "简体中文", "中文", "汉语",
	},
	"zh-tw": {
		"zh-tw", "zh_tw", "zhtw",
		"traditional", "繁體", "繁體中文", "正體", "正體中文",
		"zh-hk", "zh_hk", "香港", "台灣", "澳門",
	},
	"ja": {
		"ja", "jp", "jpn", "japanese",
		"日本語", "日文", "にほんご",
	},
	"ko": {
		"ko", "kr", "kor", "korean",
		"한국어", "韓國語", "조선말",
	},
	"vi": {
		"vi", "vie", "vietnamese",
		"tieng-viet", "tiếng-việt",
	},
	"es": {
		"es", "spa", "spanish",
		"español", "castellano",
		"西班牙语", "西班牙文",
	},
	"fr": {
		"fr", "fra", "french",
		"français", "法语", "法文",
	},
	"de": {
		"de", "deu", "german", "deutsch",
		"德语", "德文",
	},
	"it": {
		"it", "ita", "italian", "italiano",
		"意大利语", "意大利文",
	},
}

// Native display names, shown in selection UI and matched against
// package identifiers as a last resort.
var defaultNativeNames = map[string]string{
	"zh-cn": "简体中文",
	"zh-tw": "繁體中文",
	"ja":    "日本語",
	"ko":    "한국어",

	"vi": "Tiếng Việt",
	"th": "ไทย",
	"id": "Bahasa Indonesia",
	"ms": "Bahasa Melayu",

	"en": "English",
	"es": "Español",
	"fr": "Français",
	"de": "Deutsch",
	"it": "Italiano",
	"pt": "Português",
	"nl": "Nederlands",

	"ru": "Русский",
	"pl": "Polski",
	"uk": "Українська",
	"cs": "Čeština",
	"hu": "Magyar",

	"ar": "العربية",
	"tr": "Türkçe",
	"hi": "हिन्दी",
	"he": "עברית",
}

// Marketplace search strings per language.
var defaultSearchKeywords = map[string]string{
	"zh-cn": "Chinese Simplified 简体中文 中文",
	"zh-tw": "Chinese Traditional 繁體中文 正體中文",
	"ja":    "Japanese 日本語 にほんご",
	"ko":    "Korean 한국어 韓國語",
	"vi":    "Vietnamese Tiếng Việt",
	"th":    "Thai ไทย ภาษาไทย",
	"id":    "Indonesian Bahasa Indonesia",
	"ms":    "Malay Bahasa Melayu Melayu",
	"es":    "Spanish Español Castellano",
	"fr":    "French Français",
	"de":    "German Deutsch",
	"it":    "Italian Italiano",
	"pt":    "Portuguese Português",
	"ru":    "Russian Русский русский язык",
	"pl":    "Polish Polski język polski",
	"ar":    "Arabic العربية",
	"tr":    "Turkish Türkçe",
}

// Right-to-left languages.
var defaultRTL = map[string]bool{
	"ar": true,
	"he": true,
}
