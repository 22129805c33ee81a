package uniname

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NameTable maps canonical uppercase hex codepoint keys to their curated
// display names. One table is built per run and partitioned by high byte
// for publishing.
type NameTable map[string]string

// Blocks partitions the table by the high byte of each codepoint. Block
// keys are unpadded uppercase hex ("0", "1E"); every entry lands in exactly
// one block.
func (t NameTable) Blocks() map[string]NameTable {
	blocks := map[string]NameTable{}
	for key, name := range t {
		bk := fmt.Sprintf("%X", hexToCodepoint(key)>>8)
		if blocks[bk] == nil {
			blocks[bk] = NameTable{}
		}
		blocks[bk][key] = name
	}
	return blocks
}

// WriteBlocks serializes each block partition as a flat JSON object into
// <dir>/<blockhex>.json and reports the number of files written. The
// stdlib encoder emits map keys in sorted order, keeping the files stable
// across runs.
func (t NameTable) WriteBlocks(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, errors.Wrap(err, "unable to create the block output directory")
	}

	blocks := t.Blocks()
	keys := maps.Keys(blocks)
	slices.Sort(keys)

	for _, bk := range keys {
		data, err := json.MarshalIndent(blocks[bk], "", "  ")
		if err != nil {
			return 0, errors.Wrapf(err, "unable to serialize block %s", bk)
		}
		fname := filepath.Join(dir, bk+".json")
		if err := os.WriteFile(fname, append(data, '\n'), 0644); err != nil {
			return 0, errors.Wrapf(err, "unable to write the block file %s", fname)
		}
	}
	return len(keys), nil
}

// WriteNames writes one plain text file per codepoint into dir, named by
// the 4-digit key and containing only the display name. The pass touches
// tens of thousands of small files, so it optionally reports progress on
// stderr.
func (t NameTable) WriteNames(dir string, progress bool) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, errors.Wrap(err, "unable to create the names output directory")
	}

	keys := maps.Keys(t)
	slices.Sort(keys)

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("writing codepoint files"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionShowCount(),
		)
	}

	for _, key := range keys {
		fname := filepath.Join(dir, key)
		if err := os.WriteFile(fname, []byte(t[key]), 0644); err != nil {
			return 0, errors.Wrapf(err, "unable to write the name file %s", fname)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return len(keys), nil
}
