package din

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"golang.org/x/text/encoding/charmap"
)

func TestNewReaderDecodesWindows1252(t *testing.T) {
	// "Düsseldorf" with the ü as the windows-1252 byte 0xFC.
	raw := "1;D\xfcsseldorf\n"
	cr := NewReader(strings.NewReader(raw), charmap.Windows1252)
	rec, err := cr.Read()
	if err != nil {
		t.Fatalf("Read error: %s", err)
	}
	if len(rec) != 2 || rec[1] != "Düsseldorf" {
		t.Errorf("record = %v, want [1 Düsseldorf]", rec)
	}
}

func TestNewReaderBOMOverride(t *testing.T) {
	// A UTF-8 BOM wins over the announced dataset encoding.
	raw := "\xef\xbb\xbf1;Düsseldorf\n"
	cr := NewReader(strings.NewReader(raw), charmap.Windows1252)
	rec, err := cr.Read()
	if err != nil {
		t.Fatalf("Read error: %s", err)
	}
	if rec[1] != "Düsseldorf" {
		t.Errorf("record = %v, want the UTF-8 reading", rec)
	}
}

func TestNewReaderTrailingColumn(t *testing.T) {
	cr := NewReader(strings.NewReader("1;x;\n2;y\n"), nil)
	first, err := cr.Read()
	if err != nil {
		t.Fatalf("Read error: %s", err)
	}
	second, err := cr.Read()
	if err != nil {
		t.Fatalf("Read error: %s", err)
	}
	if len(first) != 3 || len(second) != 2 {
		t.Errorf("field counts = %d, %d; want ragged records to pass", len(first), len(second))
	}
}

func TestIntCell(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Int
		wantPtr *int
	}{
		{"42", Int{Val: 42, Valid: true}, intp(42)},
		{" 7 ", Int{Val: 7, Valid: true}, intp(7)},
		{"-1", Int{Val: -1, Valid: true}, nil},
		{"", Int{}, nil},
	} {
		var got Int
		if err := got.UnmarshalCSV(tc.in); err != nil {
			t.Fatalf("UnmarshalCSV(%q) error: %s", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("UnmarshalCSV(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
		gotPtr := got.Ptr()
		if (gotPtr == nil) != (tc.wantPtr == nil) || (gotPtr != nil && *gotPtr != *tc.wantPtr) {
			t.Errorf("Ptr() of %q = %v, want %v", tc.in, gotPtr, tc.wantPtr)
		}
	}

	var bad Int
	if err := bad.UnmarshalCSV("abc"); err == nil {
		t.Errorf("UnmarshalCSV(abc) did not fail")
	}
}

func TestDateCell(t *testing.T) {
	var d Date
	if err := d.UnmarshalCSV("20240229"); err != nil {
		t.Fatalf("UnmarshalCSV error: %s", err)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !d.Time.Equal(want) {
		t.Errorf("date = %s, want %s", d.Time, want)
	}
	out, err := d.MarshalCSV()
	if err != nil {
		t.Fatalf("MarshalCSV error: %s", err)
	}
	if out != "20240229" {
		t.Errorf("MarshalCSV() = %q", out)
	}

	var empty Date
	if err := empty.UnmarshalCSV(""); err != nil {
		t.Fatalf("UnmarshalCSV error: %s", err)
	}
	if !empty.IsZero() {
		t.Errorf("empty cell did not decode to the zero time")
	}

	var bad Date
	if err := bad.UnmarshalCSV("2024-01-01"); err == nil {
		t.Errorf("UnmarshalCSV(2024-01-01) did not fail")
	}
}

func TestSecondsCell(t *testing.T) {
	var s Seconds
	if err := s.UnmarshalCSV("90"); err != nil {
		t.Fatalf("UnmarshalCSV error: %s", err)
	}
	if p := s.Ptr(); p == nil || *p != 90*time.Second {
		t.Errorf("Ptr() = %v, want 1m30s", p)
	}

	// -1 is the pass-through marker in timing columns.
	var pass Seconds
	if err := pass.UnmarshalCSV("-1"); err != nil {
		t.Fatalf("UnmarshalCSV error: %s", err)
	}
	if !pass.Valid {
		t.Errorf("-1 cell is not Valid")
	}
	if pass.Ptr() != nil {
		t.Errorf("Ptr() of -1 cell is not nil")
	}

	var empty Seconds
	if err := empty.UnmarshalCSV(""); err != nil {
		t.Fatalf("UnmarshalCSV error: %s", err)
	}
	if empty.Valid || empty.Ptr() != nil {
		t.Errorf("empty cell decoded to a value")
	}
}

func TestCoordCell(t *testing.T) {
	var c Coord
	if err := c.UnmarshalCSV(" 7.150000 "); err != nil {
		t.Fatalf("UnmarshalCSV error: %s", err)
	}
	if c != "7.150000" {
		t.Errorf("coord = %q", c)
	}
	var absent Coord
	if err := absent.UnmarshalCSV("-1"); err != nil {
		t.Fatalf("UnmarshalCSV error: %s", err)
	}
	if absent != "" {
		t.Errorf("-1 coord = %q, want empty", absent)
	}
}

func TestBoolCell(t *testing.T) {
	for _, tc := range []struct {
		in      string
		wantPtr *bool
	}{
		{"1", boolp(true)},
		{"0", boolp(false)},
		{"-1", nil},
		{"", nil},
	} {
		var b Bool
		if err := b.UnmarshalCSV(tc.in); err != nil {
			t.Fatalf("UnmarshalCSV(%q) error: %s", tc.in, err)
		}
		got := b.Ptr()
		if (got == nil) != (tc.wantPtr == nil) || (got != nil && *got != *tc.wantPtr) {
			t.Errorf("Ptr() of %q = %v, want %v", tc.in, got, tc.wantPtr)
		}
	}
}

func TestDatasetEncoding(t *testing.T) {
	dir := fstest.MapFS{
		"character_set.din": &fstest.MapFile{Data: []byte("VERSION;CHARACTER_SET\n1;\"WE8MSWIN1252\"\n")},
	}
	enc, err := DatasetEncoding(dir, nil)
	if err != nil {
		t.Fatalf("DatasetEncoding error: %s", err)
	}
	if enc != charmap.Windows1252 {
		t.Errorf("encoding = %v, want windows-1252", enc)
	}
}

func TestDatasetEncodingMissingFile(t *testing.T) {
	enc, err := DatasetEncoding(fstest.MapFS{}, nil)
	if err != nil {
		t.Fatalf("DatasetEncoding error: %s", err)
	}
	if enc != charmap.Windows1252 {
		t.Errorf("encoding = %v, want the windows-1252 fallback", enc)
	}
}

func TestDatasetEncodingUnsupported(t *testing.T) {
	dir := fstest.MapFS{
		"character_set.din": &fstest.MapFile{Data: []byte("VERSION;CHARACTER_SET\n1;\"UTF16\"\n")},
	}
	if _, err := DatasetEncoding(dir, nil); err == nil {
		t.Errorf("unsupported character set did not fail")
	}
}

func TestDatasetEncodingVersionFilter(t *testing.T) {
	dir := fstest.MapFS{
		"character_set.din": &fstest.MapFile{Data: []byte("VERSION;CHARACTER_SET\n1;\"UTF16\"\n2;\"WE8MSWIN1252\"\n")},
	}
	enc, err := DatasetEncoding(dir, map[int]bool{2: true})
	if err != nil {
		t.Fatalf("DatasetEncoding error: %s", err)
	}
	if enc != charmap.Windows1252 {
		t.Errorf("encoding = %v, want windows-1252 of version 2", enc)
	}
}

func TestUnmarshal(t *testing.T) {
	type row struct {
		Version Int  `csv:"VERSION"`
		Name    Text `csv:"STOP_NAME"`
	}
	dir := fstest.MapFS{
		"stop.din": &fstest.MapFile{Data: []byte("VERSION;STOP_NAME\n1;\"K\xf6ln Hbf\"\n")},
	}
	var rows []row
	if err := Unmarshal(dir, StopFile, charmap.Windows1252, &rows); err != nil {
		t.Fatalf("Unmarshal error: %s", err)
	}
	if len(rows) != 1 || rows[0].Name != "Köln Hbf" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestExists(t *testing.T) {
	dir := fstest.MapFS{
		"version.din": &fstest.MapFile{Data: []byte("")},
	}
	if !Exists(dir, VersionFile) {
		t.Errorf("Exists(version.din) = false")
	}
	if Exists(dir, TripFile) {
		t.Errorf("Exists(trip.din) = true")
	}
}

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }
