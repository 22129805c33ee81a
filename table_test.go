package uniname

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() NameTable {
	return NameTable{
		"0048": "LATIN CAPITAL LETTER H",
		"00E1": "LATIN SMALL LETTER A WITH ACUTE",
		"0130": "LATIN CAPITAL LETTER I WITH DOT ABOVE",
		"1E00": "LATIN CAPITAL LETTER A WITH RING BELOW",
	}
}

func TestTable_BlockPartitioning(t *testing.T) {
	blocks := testTable().Blocks()

	assert.Len(t, blocks, 3)
	assert.Len(t, blocks["0"], 2)
	assert.Len(t, blocks["1"], 1)
	assert.Len(t, blocks["1E"], 1)

	// Every entry lands in exactly one block.
	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	assert.Equal(t, len(testTable()), total)
}

func TestTable_WriteBlocks(t *testing.T) {
	dir := t.TempDir()

	n, err := testTable().WriteBlocks(dir)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(filepath.Join(dir, "0.json"))
	if err != nil {
		t.Fatalf("could not read block file: %v", err)
	}

	var block map[string]string
	if err := json.Unmarshal(data, &block); err != nil {
		t.Fatalf("block file is not valid JSON: %v", err)
	}
	assert.Equal(t, "LATIN CAPITAL LETTER H", block["0048"])
	assert.Equal(t, "LATIN SMALL LETTER A WITH ACUTE", block["00E1"])
}

func TestTable_WriteNames(t *testing.T) {
	dir := t.TempDir()
	table := testTable()

	n, err := table.WriteNames(dir, false)
	assert.NoError(t, err)
	assert.Equal(t, len(table), n)

	// The file holds the plain display name with no trailing structure.
	data, err := os.ReadFile(filepath.Join(dir, "1E00"))
	if err != nil {
		t.Fatalf("could not read name file: %v", err)
	}
	assert.Equal(t, "LATIN CAPITAL LETTER A WITH RING BELOW", string(data))
}
