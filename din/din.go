// Package din reads the flat semicolon-delimited .din files that make up a
// DINO 2.1 dataset.
//
// The files are encoded in a dataset-wide character set announced by
// character_set.din; everything is transformed to UTF-8 before it reaches the
// CSV layer.
package din

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// File names a table file of a DINO 2.1 dataset.
type File string

const (
	CharacterSetFile File = "character_set.din"
	VersionFile      File = "version.din"

	DayTypeFile            File = "day_type.din"
	DayAttributeFile       File = "day_attribute.din"
	DayGroupingFile        File = "day_type_2_day_attribute.din"
	CalendarDayFile        File = "day_type_calendar.din"
	ServiceRestrictionFile File = "service_restriction.din"

	FareZoneFile          File = "fare_zone.din"
	NeighbourFareZoneFile File = "neighbour_fare_zone.din"

	StopFile               File = "stop.din"
	StopAliasPlacenameFile File = "stop_alias_placename.din"
	StopAdditionalNameFile File = "stop_additional_name.din"
	StopAreaFile           File = "stop_area.din"
	StopPointFile          File = "stop_point.din"
	LinkFile               File = "link.din"
	LinkGeometryFile       File = "link_geometry.din"
	LinkForcePointFile     File = "link_force_point.din"

	BranchFile                 File = "branch.din"
	OperatorFile               File = "operator.din"
	OperatorBranchOfficeFile   File = "operator_branch_office.din"
	MeansOfTransportFile       File = "means_of_transport_desc.din"
	VehicleTypeFile            File = "vehicle_type.din"
	VehicleDestinationTextFile File = "vehicle_destination_text.din"

	LineFile          File = "line.din"
	RouteFile         File = "route.din"
	TimingPatternFile File = "timing_pattern.din"

	TripFile              File = "trip.din"
	NoticeFile            File = "notice.din"
	ServiceConstraintFile File = "service_constraint.din"
	TripVDTFile           File = "trip_vdt.din"
)

// encodings maps the CHARACTER_SET values seen in the wild to decoders.
// Datasets without a character_set.din entry default to windows-1252.
var encodings = map[string]encoding.Encoding{
	"WE8MSWIN1252": charmap.Windows1252,
	"":             charmap.Windows1252,
}

// NewReader builds a UTF-8 CSV reader for .din content. The dataset encoding
// is decoded, with any UTF BOM taking precedence over it. The delimiter is
// ';' and records may carry a trailing empty column.
func NewReader(r io.Reader, enc encoding.Encoding) *csv.Reader {
	if enc == nil {
		enc = charmap.Windows1252
	}
	transformer := unicode.BOMOverride(enc.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, transformer))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

type characterSetRow struct {
	Version      Int  `csv:"VERSION"`
	CharacterSet Text `csv:"CHARACTER_SET"`
}

// DatasetEncoding determines the character set of a dataset directory from
// character_set.din. If versionIDs is non-empty, only entries for those
// versions are considered. A missing file or unknown character set falls
// back to windows-1252.
func DatasetEncoding(dir fs.FS, versionIDs map[int]bool) (encoding.Encoding, error) {
	var rows []characterSetRow
	err := Unmarshal(dir, CharacterSetFile, charmap.Windows1252, &rows)
	if err != nil {
		if _, statErr := fs.Stat(dir, string(CharacterSetFile)); statErr != nil {
			return charmap.Windows1252, nil
		}
		return nil, err
	}
	for _, row := range rows {
		if len(versionIDs) > 0 && (!row.Version.Valid || !versionIDs[row.Version.Val]) {
			continue
		}
		if enc, ok := encodings[string(row.CharacterSet)]; ok {
			return enc, nil
		}
		return nil, fmt.Errorf("unsupported character set %q", row.CharacterSet)
	}
	return charmap.Windows1252, nil
}

// Unmarshal reads every record of the named file in dir into out, which must
// be a pointer to a slice of structs with csv tags.
func Unmarshal(dir fs.FS, name File, enc encoding.Encoding, out interface{}) error {
	f, err := dir.Open(string(name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	if err := gocsv.UnmarshalCSV(NewReader(f, enc), out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Exists reports whether the named file is present in the dataset directory.
// Several .din files are optional; an absent file simply contributes no rows.
func Exists(dir fs.FS, name File) bool {
	_, err := fs.Stat(dir, string(name))
	return err == nil
}
