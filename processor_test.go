package uniname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testRegistry = `0000;<control>;Cc;0;BN;;;;;N;NULL;;;;
0028;LEFT PARENTHESIS;Ps;0;ON;;;;;Y;OPENING PARENTHESIS;;;;
0030;DIGIT ZERO;Nd;0;EN;;0;0;0;N;;;;;
0048;LATIN CAPITAL LETTER H;Lu;0;L;;;;;N;;;;0068;
00E1;LATIN SMALL LETTER A WITH ACUTE;Ll;0;L;0061 0301;;;;N;;;00C1;;00C1
0660;ARABIC-INDIC DIGIT ZERO;Nd;0;AN;;0;0;0;N;;;;;
D800;<Non Private Use High Surrogate, First>;Cs;0;L;;;;;N;;;;;
D801;BOGUS SURROGATE ENTRY;Cs;0;L;;;;;N;;;;;
1E00;LATIN CAPITAL LETTER A WITH RING BELOW;Lu;0;L;0041 0325;;;;N;;;;1E01;
`

func TestProcessor_Process(t *testing.T) {
	p := &Processor{Workers: 4}

	res, err := p.Process(strings.NewReader(testRegistry))
	assert.NoError(t, err)

	assert.Equal(t, NameTable{
		"0028": "LEFT PARENTHESIS",
		"0030": "DIGIT ZERO",
		"0048": "LATIN CAPITAL LETTER H",
		"00E1": "LATIN SMALL LETTER A WITH ACUTE",
		"0660": "ARABIC DIGIT ZERO",
		"1E00": "LATIN CAPITAL LETTER A WITH RING BELOW",
	}, res.Table)

	// The two surrogate lines: one is a placeholder and skipped silently,
	// the other fails the round trip and is reported.
	assert.Equal(t, 1, res.MismatchCount)
	if assert.Len(t, res.Mismatches, 1) {
		assert.Equal(t, "D801", res.Mismatches[0].Hex)
	}
	assert.Equal(t, 9, res.Lines)
	assert.Equal(t, 3, res.Skipped)
}

func TestProcessor_DeterministicAcrossWorkerCounts(t *testing.T) {
	var tables []NameTable
	for _, workers := range []int{1, 2, 8} {
		p := &Processor{Workers: workers}
		res, err := p.Process(strings.NewReader(testRegistry))
		assert.NoError(t, err)
		tables = append(tables, res.Table)
	}

	assert.Equal(t, tables[0], tables[1])
	assert.Equal(t, tables[0], tables[2])
}

func TestProcessor_KeyUniqueness(t *testing.T) {
	// A duplicated codepoint line cannot produce two entries; map insertion
	// keeps exactly one per key.
	dup := testRegistry + "0048;LATIN CAPITAL LETTER H;Lu;0;L;;;;;N;;;;0068;\n"

	p := &Processor{Workers: 2}
	res, err := p.Process(strings.NewReader(dup))
	assert.NoError(t, err)
	assert.Equal(t, "LATIN CAPITAL LETTER H", res.Table["0048"])
	assert.Len(t, res.Table, 6)
}

func TestProcessor_ReadError(t *testing.T) {
	p := &Processor{Workers: 1}
	_, err := p.Process(failingReader{})
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}
