// Package testutil builds small in-memory DINO datasets for tests.
package testutil

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/d3d9/dino2"
)

// DatasetDir is a DINO dataset directory held in memory. File contents are
// given as semicolon-delimited lines, header first.
type DatasetDir struct {
	files fstest.MapFS
}

// NewDatasetDir builds a dataset directory with a single version 1 spanning
// the year 2024 and the default character set.
func NewDatasetDir() *DatasetDir {
	d := &DatasetDir{files: fstest.MapFS{}}
	d.Set("character_set.din", []string{
		"VERSION;CHARACTER_SET;",
		"1;\"WE8MSWIN1252\";",
	})
	d.Set("version.din", []string{
		"VERSION;VERSION_TEXT;TIMETABLE_PERIOD;TT_PERIOD_NAME;PERIOD_DATE_FROM;PERIOD_DATE_TO;NET_ID;PERIOD_PRIORITY;",
		"1;\"test\";\"24\";\"2024\";20240101;20241231;\"tst\";-1;",
	})
	return d
}

// Set replaces one file of the dataset.
func (d *DatasetDir) Set(name string, lines []string) *DatasetDir {
	d.files[name] = &fstest.MapFile{Data: []byte(strings.Join(lines, "\n") + "\n")}
	return d
}

// FS returns the directory as an fs.FS.
func (d *DatasetDir) FS() fstest.MapFS {
	return d.files
}

// MustParse parses the dataset and fails the test on error.
func MustParse(t *testing.T, d *DatasetDir, opts dino2.ParseOptions) *dino2.Dataset {
	t.Helper()
	ds, err := dino2.ParseDataset(d.FS(), opts)
	if err != nil {
		t.Fatalf("failed to parse dataset: %s", err)
	}
	return ds
}
