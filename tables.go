package uniname

import "regexp"

// scriptKeywords is the priority-ordered list of script names recognized at
// the start of a registry name. Matching is whole-word against the first
// token, so hyphenated variants such as ARABIC-INDIC deliberately fall
// through to the digit-locale handling.
var scriptKeywords = []string{
	"LATIN",
	"GREEK",
	"COPTIC",
	"CYRILLIC",
	"ARMENIAN",
	"HEBREW",
	"ARABIC",
	"SYRIAC",
	"THAANA",
	"NKO",
	"SAMARITAN",
	"MANDAIC",
	"DEVANAGARI",
	"BENGALI",
	"GURMUKHI",
	"GUJARATI",
	"ORIYA",
	"TAMIL",
	"TELUGU",
	"KANNADA",
	"MALAYALAM",
	"SINHALA",
	"THAI",
	"LAO",
	"TIBETAN",
	"MYANMAR",
	"GEORGIAN",
	"HANGUL",
	"ETHIOPIC",
	"CHEROKEE",
	"CANADIAN",
	"OGHAM",
	"RUNIC",
	"TAGALOG",
	"HANUNOO",
	"BUHID",
	"TAGBANWA",
	"KHMER",
	"MONGOLIAN",
	"LIMBU",
	"TAI",
	"BUGINESE",
	"BALINESE",
	"SUNDANESE",
	"BATAK",
	"LEPCHA",
	"OL",
	"GLAGOLITIC",
	"TIFINAGH",
	"VAI",
	"BAMUM",
	"JAVANESE",
	"CHAM",
	"SAURASHTRA",
	"KAYAH",
	"REJANG",
	"MEETEI",
	"CJK",
	"HIRAGANA",
	"KATAKANA",
	"BOPOMOFO",
	"KANGXI",
	"YI",
	"LISU",
	"VEDIC",
	"PHAGS-PA",
	"BRAILLE",
}

// typeMarkers terminate a multi-word script span. Known limitation: a
// script whose own name contains one of these words cuts its span short
// (NKO HIGH TONE APOSTROPHE spans "NKO HIGH"); the curated output depends
// on the resulting literals, so the rule stays as-is.
var typeMarkers = map[string]bool{
	"LETTER":      true,
	"DIGIT":       true,
	"NUMBER":      true,
	"SYLLABLE":    true,
	"SYLLABICS":   true,
	"CAPITAL":     true,
	"SMALL":       true,
	"COMBINING":   true,
	"SIGN":        true,
	"SYMBOL":      true,
	"PUNCTUATION": true,
	"MARK":        true,
	"VOWEL":       true,
	"CONSONANT":   true,
	"SPACE":       true,
	"TONE":        true,
	"ACCENT":      true,
	"LIGATURE":    true,
	"FRACTION":    true,
	"IDEOGRAPH":   true,
	"RADICAL":     true,
}

// typeKeywords is the semantic-type keyword list, scanned right to left over
// the token sequence. List order matters only for the substring fallback.
var typeKeywords = []string{
	"LETTER",
	"DIGIT",
	"NUMBER",
	"SYMBOL",
	"PUNCTUATION",
	"MARK",
	"ACCENT",
	"TONE",
	"VOWEL",
	"CONSONANT",
	"FIGURE",
	"CHARACTER",
	"SPACE",
	"CONTROL",
	"LIGATURE",
	"SYLLABICS",
	"SYLLABLE",
	"SIGN",
	"ARROW",
	"PARENTHESIS",
	"BRACKET",
	"COMBINING",
	"APOSTROPHE",
}

// categoryWords are recognized as the type itself when no script matched and
// no SIGN qualifier is present, so that DIGIT ZERO does not come out as
// DIGIT DIGIT ZERO.
var categoryWords = map[string]bool{
	"DIGIT":       true,
	"NUMBER":      true,
	"SYMBOL":      true,
	"PUNCTUATION": true,
	"MARK":        true,
	"SPACE":       true,
}

// literalSkipWords are structural qualifiers filtered out of extracted
// literals. The list is an accumulated fixture; do not extend it without
// re-checking the full registry output.
var literalSkipWords = map[string]bool{
	"EXTENDED":      true,
	"SUPPLEMENT":    true,
	"SUPPLEMENTARY": true,
}

// literalFirstBare lists the types assembled literal-before-type when no
// script was recognized.
var literalFirstBare = map[string]bool{
	"sign":        true,
	"parenthesis": true,
	"arrow":       true,
	"bracket":     true,
}

// literalFirstScripted lists the types assembled literal-before-type when a
// script was recognized and the literal is non-empty.
var literalFirstScripted = map[string]bool{
	"tone":       true,
	"apostrophe": true,
	"mark":       true,
}

// signPatterns classify otherwise untyped, unscripted names as signs. Four
// families: operators, diacritic marks, punctuation marks, brackets and
// quotes. Treated as an authoritative fixture.
var signPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(PLUS|MINUS|EQUALS|MULTIPLICATION|DIVISION|SOLIDUS|PERCENT|PER MILLE|ASTERISK|TILDE OPERATOR|INTEGRAL|SUMMATION|PRODUCT|INFINITY|RATIO|PROPORTION)\b`),
	regexp.MustCompile(`\b(ACUTE|GRAVE|CIRCUMFLEX|TILDE|MACRON|OVERLINE|BREVE|DIAERESIS|CARON|CEDILLA|OGONEK|RING ABOVE|DOT ABOVE|DOT BELOW|HOOK|HORN)\b`),
	regexp.MustCompile(`\b(COMMA|COLON|SEMICOLON|FULL STOP|EXCLAMATION|QUESTION|AMPERSAND|COMMERCIAL AT|NUMBER SIGN|SECTION|PILCROW|DAGGER|BULLET|INTERPUNCT|HYPHEN|DASH|LOW LINE|UNDERSCORE)\b`),
	regexp.MustCompile(`\b(BRACKET|PARENTHESIS|BRACE|QUOTATION|GUILLEMET|ANGLE QUOTATION|PRIME|APOSTROPHE)\b`),
}

// scriptSmallRe matches the legacy mathematical script letters whose whole
// name becomes the literal of a symbol entry.
var scriptSmallRe = regexp.MustCompile(`^SCRIPT SMALL [A-Z]$`)

// Arabic-Indic and Extended Arabic-Indic digit ranges carry a locale label
// in the curated output instead of a script name.
const (
	arabicIndicLo = 0x0660
	arabicIndicHi = 0x0669
	extArabicLo   = 0x06F0
	extArabicHi   = 0x06F9
)
