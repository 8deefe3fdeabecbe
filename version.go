// Package dino2 models public-transport timetable data in the DINO 2.1
// interchange format.
//
// A DINO dataset is a directory of semicolon-delimited .din files describing
// timetable versions, calendars, stops, lines/courses, and trips, all related
// by composite keys prefixed with a version id. ParseDataset loads such a
// directory into a Dataset; the calendar machinery (CalendarIndex, Resolver)
// turns the compact day-validity encodings into concrete date sets, and
// Trip.TripStops walks the per-stop timing records of a trip into absolute
// arrival and departure times.
package dino2

import (
	"time"

	"github.com/d3d9/dino2/warnings"
)

// Version is a timetable dataset epoch. Every other entity belongs to exactly
// one version; versions are usually usable on their own, e.g. one per
// timetable period of one operator. Overlapping versions are disambiguated by
// Priority, which is not enforced anywhere in this package.
type Version struct {
	ID         int
	Desc       string
	Period     string
	PeriodName string

	// DateFrom and DateTo bound the timetable period; a zero time means the
	// bound is open.
	DateFrom time.Time
	DateTo   time.Time

	Net      string
	Priority *int
}

// Dataset holds every entity of one imported DINO 2.1 dataset. Entities are
// created in bulk by ParseDataset and are immutable afterwards; re-importing
// from scratch is the only mutation path.
//
// Cross-entity references are resolved into pointers at parse time, so
// traversals like trip -> course -> stops are plain field accesses.
type Dataset struct {
	Versions []Version

	DayTypes      []DayType
	DayAttributes []DayAttribute
	DayGroupings  []DayGrouping
	CalendarDays  []CalendarDay
	Restrictions  []Restriction

	FareZones          []FareZone
	NeighbourFareZones []NeighbourFareZone

	Stops               []Stop
	StopAliasPlacenames []StopAliasPlacename
	StopAdditionalNames []StopAdditionalName
	StopAreas           []StopArea
	StopPoints          []StopPoint
	Links               []Link

	Branches              []Branch
	Operators             []Operator
	OperatorBranchOffices []OperatorBranchOffice
	MeansOfTransport      []MeansOfTransportDesc
	VehicleTypes          []VehicleType
	DestinationTexts      []VehicleDestinationText

	Courses []Course

	Notices     []Notice
	Trips       []Trip
	Constraints []StopConstraint
	VDTChanges  []TripVDT

	// Warnings collects the rows that were skipped or patched during parsing.
	Warnings []warnings.ParseWarning
}

// Version returns the version with the given id, or nil.
func (ds *Dataset) Version(id int) *Version {
	for i := range ds.Versions {
		if ds.Versions[i].ID == id {
			return &ds.Versions[i]
		}
	}
	return nil
}
