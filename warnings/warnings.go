// Package warnings defines the non-fatal problems ParseDataset can encounter.
package warnings

import (
	"fmt"

	"github.com/d3d9/dino2/din"
)

// ParseWarning describes a row or column that could not be imported as-is.
type ParseWarning interface {
	File() din.File
	Error() string
}

// MissingColumns is reported when a row lacks values for required columns and
// is skipped.
type MissingColumns struct {
	InFile      din.File
	RowKey      string
	MissingKeys []string
}

func (w MissingColumns) File() din.File {
	return w.InFile
}

func (w MissingColumns) Error() string {
	return fmt.Sprintf("skipping row %s because of missing columns %v", w.RowKey, w.MissingKeys)
}

// DanglingReference is reported when a row references an entity that does not
// exist in the dataset and is skipped.
type DanglingReference struct {
	InFile din.File
	RowKey string
	Target string
}

func (w DanglingReference) File() din.File {
	return w.InFile
}

func (w DanglingReference) Error() string {
	return fmt.Sprintf("skipping row %s: no match for %s", w.RowKey, w.Target)
}

// DuplicateKey is reported when several rows carry the same primary key and
// only a subset of them is kept.
type DuplicateKey struct {
	InFile din.File
	RowKey string
}

func (w DuplicateKey) File() din.File {
	return w.InFile
}

func (w DuplicateKey) Error() string {
	return fmt.Sprintf("dropping duplicate row %s", w.RowKey)
}
