package uniname

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// reservedMarker prefixes the placeholder names of control, unassigned and
// reserved registry entries, e.g. "<control>".
const reservedMarker = "<"

// mismatchPreviewLimit bounds the number of round-trip samples kept for the
// end-of-run report; the total is still counted past the limit.
const mismatchPreviewLimit = 20

// Record is one accepted registry entry. It is consumed by a single
// Decompose call and not retained afterwards.
type Record struct {
	Codepoint uint32
	Hex       string // canonical 4-digit uppercase key
	Name      string
}

// Mismatch describes a codepoint whose hex field does not survive a
// code-unit encode/decode cycle. Such records are skipped, never fatal.
type Mismatch struct {
	Hex      string
	Name     string
	Expected uint32
	Actual   uint32
}

// FilterRecord applies the acceptance rules to one raw field pair. Empty
// and reserved-marker names are silently rejected. A hex field is
// normalized to its canonical key, decoded and re-encoded; a changed value
// rejects the record and returns the diagnostic. Malformed hex fields are
// reported the same way, with a zero actual value.
func FilterRecord(hexField, nameField string) (Record, *Mismatch, bool) {
	name := strings.TrimSpace(nameField)
	if name == "" || strings.HasPrefix(name, reservedMarker) {
		return Record{}, nil, false
	}

	key, cp, err := canonicalHex(hexField)
	if err != nil {
		return Record{}, &Mismatch{Hex: strings.TrimSpace(hexField), Name: name}, false
	}

	// Surrogates and out-of-range values collapse to U+FFFD on the way
	// through a string and fail the round trip.
	r, _ := utf8.DecodeRuneInString(string(rune(cp)))
	if actual := uint32(r); actual != cp {
		return Record{}, &Mismatch{Hex: key, Name: name, Expected: cp, Actual: actual}, false
	}

	return Record{Codepoint: cp, Hex: key, Name: name}, nil, true
}

// canonicalHex uppercases and zero-pads a hex field to the 4-digit key form
// and decodes its numeric value.
func canonicalHex(field string) (string, uint32, error) {
	s := strings.ToUpper(strings.TrimSpace(field))
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%04X", v), uint32(v), nil
}

// hexToCodepoint decodes a canonical key back to its numeric value; keys
// produced by canonicalHex always decode cleanly.
func hexToCodepoint(key string) uint32 {
	v, err := strconv.ParseUint(key, 16, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// splitLine separates one registry line into its hex and name fields.
// Lines with fewer than two fields are unusable.
func splitLine(line string) (hexField, nameField string, ok bool) {
	parts := strings.SplitN(line, ";", 3)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
