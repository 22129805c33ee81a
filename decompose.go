package uniname

import (
	"strings"
)

// components holds the structural parts recognized in a single registry
// name. A value is owned by one Decompose call; the stages take and return
// it without sharing.
type components struct {
	script      string // uppercase script span, empty when unrecognized
	caseVariant string // "capital", "small" or empty
	semType     string // lowercase semantic type, empty when unrecognized
	literal     string // lowercase descriptive remainder
	modifier    string // lowercase trailing WITH clause
	label       string // display label replacing the script when set
	literalDone bool   // literal fixed by an override, extraction skipped
}

// Decompose rebuilds the curated display name for one raw registry name.
// It is a pure function: no error path exists and the worst case returns
// the uppercased raw name unchanged. The hex argument is the canonical
// 4-digit codepoint key, used only for the digit-locale ranges.
func Decompose(rawName, hex string) string {
	raw := strings.TrimSpace(rawName)
	if raw == "" {
		return ""
	}
	tokens := strings.Fields(raw)

	var c components
	c = detectScript(c, tokens)
	c = detectCase(c, tokens)
	c = detectType(c, tokens, raw)
	c = extractLiteral(c, tokens)
	c = overrideDigitLocale(c, hexToCodepoint(hex))
	c = overrideNkoLabel(c)

	out := assemble(c)
	if out == "" || out == "SIGN" || out == "ARROW" {
		return strings.ToUpper(raw)
	}
	return out
}

// detectScript matches the priority script list against the first token.
// The script span runs from the start up to the first type marker; with no
// marker the whole name is the span. When no script matches, a standalone
// category word becomes the type itself unless a SIGN qualifier is present.
func detectScript(c components, tokens []string) components {
	for _, kw := range scriptKeywords {
		if tokens[0] != kw {
			continue
		}
		end := len(tokens)
		for i := 1; i < len(tokens); i++ {
			if typeMarkers[tokens[i]] {
				end = i
				break
			}
		}
		c.script = strings.Join(tokens[:end], " ")
		return c
	}

	if !hasToken(tokens, "SIGN") {
		for _, t := range tokens {
			if categoryWords[t] {
				c.semType = strings.ToLower(t)
				break
			}
		}
	}
	return c
}

// detectCase records a CAPITAL or SMALL variant; CAPITAL wins when both
// occur.
func detectCase(c components, tokens []string) components {
	if hasToken(tokens, "CAPITAL") {
		c.caseVariant = "capital"
	} else if hasToken(tokens, "SMALL") {
		c.caseVariant = "small"
	}
	return c
}

// detectType picks the semantic type. Token matches are scanned right to
// left so the most specific classifier, empirically the one closest to the
// end, wins. The substring fallback takes the keyword occurring earliest in
// the name. Names with neither type nor script are tested against the
// sign-pattern fixtures.
func detectType(c components, tokens []string, raw string) components {
	if c.semType != "" {
		return c
	}

	// Legacy mathematical script letters keep their whole name.
	if scriptSmallRe.MatchString(raw) {
		c.semType = "symbol"
		c.literal = strings.ToLower(raw)
		c.caseVariant = ""
		c.literalDone = true
		return c
	}

	for i := len(tokens) - 1; i >= 0; i-- {
		for _, kw := range typeKeywords {
			if tokens[i] == kw {
				c.semType = strings.ToLower(kw)
				return c
			}
		}
	}

	best := -1
	for _, kw := range typeKeywords {
		if idx := strings.Index(raw, kw); idx >= 0 && (best < 0 || idx < best) {
			best = idx
			c.semType = strings.ToLower(kw)
		}
	}
	if c.semType != "" {
		return c
	}

	if c.script == "" {
		for _, re := range signPatterns {
			if re.MatchString(raw) {
				c.semType = "sign"
				break
			}
		}
	}
	return c
}

// extractLiteral splits off the trailing WITH clause, then takes the side
// of the type keyword holding the distinguishing tokens: the tokens after
// it when the type sits mid-phrase, the tokens before it when the type is
// the final word. Without a WITH clause the literal is additionally
// filtered of script, case and qualifier words; sign literals skip the
// qualifier filter so technical multi-word literals survive intact.
func extractLiteral(c components, tokens []string) components {
	if c.literalDone {
		return c
	}

	work := tokens
	hasWith := false
	if i := tokenIndex(tokens, "WITH"); i >= 0 {
		c.modifier = strings.ToLower(strings.Join(tokens[i+1:], " "))
		work = tokens[:i]
		hasWith = true
	}

	var lit []string
	typeTok := strings.ToUpper(c.semType)
	idx := -1
	if typeTok != "" {
		idx = lastTokenIndex(work, typeTok)
	}
	switch {
	case idx < 0:
		rest := c.filterTokens(work, c.semType != "sign")
		if len(rest) > 0 {
			lit = rest[len(rest)-1:]
		}
	case idx == len(work)-1:
		lit = work[:idx]
	default:
		lit = work[idx+1:]
	}

	if !hasWith && idx >= 0 {
		lit = c.filterTokens(lit, c.semType != "sign")
	}
	if n := len(lit); n > 0 && lit[n-1] == "FORM" {
		lit = lit[:n-1]
	}

	// Bare structural types must carry a literal or the output degenerates
	// to a single non-descriptive word.
	if len(lit) == 0 && c.script == "" && literalFirstBare[c.semType] {
		for _, t := range work {
			if t != typeTok {
				lit = append(lit, t)
			}
		}
	}

	c.literal = strings.ToLower(strings.Join(lit, " "))
	return c
}

// filterTokens drops script-name tokens, case-variant tokens and, when
// requested, the structural qualifier words from a literal candidate.
func (c components) filterTokens(tokens []string, qualifiers bool) []string {
	scriptWords := map[string]bool{}
	for _, w := range strings.Fields(c.script) {
		scriptWords[w] = true
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if scriptWords[t] || t == "CAPITAL" || t == "SMALL" {
			continue
		}
		if qualifiers && literalSkipWords[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// overrideDigitLocale replaces the script of Arabic-Indic and Extended
// Arabic-Indic digits with a locale label; those ranges use locale-specific
// digit names in the curated output.
func overrideDigitLocale(c components, cp uint32) components {
	if c.semType != "digit" {
		return c
	}
	switch {
	case cp >= arabicIndicLo && cp <= arabicIndicHi:
		c.label = "Arabic"
		c.script = ""
	case cp >= extArabicLo && cp <= extArabicHi:
		c.label = "Farsi"
		c.script = ""
	}
	return c
}

// overrideNkoLabel renders the N'Ko script label per display convention:
// mixed case for letters, plain NKO for everything else.
func overrideNkoLabel(c components) components {
	if c.script != "NKO" {
		return c
	}
	if c.semType == "letter" {
		c.label = "N'Ko"
	} else {
		c.label = "NKO"
	}
	c.script = ""
	return c
}

// assemble concatenates the recognized parts in display order. Literal
// precedes type for bare structural names and for scripted tone, apostrophe
// and mark entries; every word is uppercased except a preserved N'Ko label.
func assemble(c components) string {
	var parts []string

	label := c.label
	if label == "" {
		label = c.script
	}
	if label != "" {
		parts = append(parts, label)
	}
	if c.caseVariant != "" {
		parts = append(parts, c.caseVariant)
	}

	literalFirst := (c.script == "" && c.label == "" && literalFirstBare[c.semType]) ||
		((c.script != "" || c.label != "") && literalFirstScripted[c.semType] && c.literal != "")
	if literalFirst {
		parts = appendNonEmpty(parts, c.literal, c.semType)
	} else {
		parts = appendNonEmpty(parts, c.semType, c.literal)
	}

	if c.modifier != "" {
		parts = append(parts, "with", c.modifier)
	}

	for i, p := range parts {
		if p == "N'Ko" {
			continue
		}
		parts[i] = strings.ToUpper(p)
	}
	return strings.Join(parts, " ")
}

func appendNonEmpty(parts []string, vals ...string) []string {
	for _, v := range vals {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

func hasToken(tokens []string, w string) bool {
	return tokenIndex(tokens, w) >= 0
}

func tokenIndex(tokens []string, w string) int {
	for i, t := range tokens {
		if t == w {
			return i
		}
	}
	return -1
}

func lastTokenIndex(tokens []string, w string) int {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i] == w {
			return i
		}
	}
	return -1
}
