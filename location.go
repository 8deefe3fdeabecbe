package dino2

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Stop is a named location vehicles stop at, grouping stop areas and stopping
// points. Keyed by (version, id); datasets may carry several rows for the
// same id with disjoint validity windows, e.g. around a name change.
type Stop struct {
	VersionID int
	ID        int

	Type      *StopType
	Name      string
	NameNoLoc string
	Abbr      string

	PosX string
	PosY string

	Place string
	// OCC is the "official community code" of the stop's municipality.
	OCC *int

	FareZoneIDs []int

	IFOPT   string
	PlaceID string

	ValidFrom time.Time
	ValidTo   time.Time

	GISMOTFlag        *int
	IsCentralStop     *bool
	IsResponsibleStop *bool
	// Interchange quality rating, higher is better.
	InterchangeQuality *int

	Areas           []*StopArea
	Points          []*StopPoint
	AliasPlacenames []*StopAliasPlacename
	AdditionalNames []*StopAdditionalName
	FareZones       []*FareZone
}

// ValidOn reports whether the stop row's validity window covers the date.
// A zero bound is open.
func (s *Stop) ValidOn(date time.Time) bool {
	if !s.ValidFrom.IsZero() && date.Before(s.ValidFrom) {
		return false
	}
	if !s.ValidTo.IsZero() && date.After(s.ValidTo) {
		return false
	}
	return true
}

// StopAliasPlacename is an alternative place name a stop is known under.
type StopAliasPlacename struct {
	VersionID  int
	StopID     int
	AliasPlace string
	AliasOCC   int

	Stop *Stop
}

// StopAdditionalName is an additional search name of a stop.
type StopAdditionalName struct {
	VersionID int
	StopID    int
	Name      string
	NameNoLoc string

	Stop *Stop
}

// StopArea is a part of a stop, e.g. one platform group or an entrance.
// Keyed by (version, stop, id).
type StopArea struct {
	VersionID int
	StopID    int
	ID        int

	PosX string
	PosY string

	Abbr  string
	Name  string
	Level *int
	Type  *StopAreaType

	IFOPT      string
	GISMOTFlag *int

	ValidFrom time.Time
	ValidTo   time.Time

	Stop   *Stop
	Points []*StopPoint
}

// StopPoint is a single platform of a stop a vehicle can stop at.
// Keyed by (version, stop, id).
type StopPoint struct {
	VersionID int
	StopID    int
	AreaID    int
	ID        int

	PosX string
	PosY string

	GISSegmentID   *int
	GISSegmentDist *int
	StopRBLNr      *int

	Name string

	// Purposes this stopping point is exported for: printed timetable,
	// stop timetable, journey planner, central bus stop display.
	PurposeTTB *bool
	PurposeSTT *bool
	PurposeJP  *bool
	PurposeCBS *bool

	IFOPT      string
	GISMOTFlag *int

	ValidFrom time.Time
	ValidTo   time.Time

	PlatformHeight *int
	RailCentreDist *int
	HasMobileRamp  *bool
	BoardingSpace  *int
	StreetAccess   *StreetAccess

	Stop *Stop
	Area *StopArea
}

// Link is a traversable connection between two stopping points, optionally
// carrying a polyline geometry. Keyed by
// (version, id, branch, from stop/area/point, to stop/area/point).
type Link struct {
	VersionID int
	ID        int
	BranchID  int

	FromStopID  int
	FromAreaID  *int
	FromPointID *int
	ToStopID    int
	ToAreaID    *int
	ToPointID   *int

	// Length in meters.
	Length    *int
	GISLength *int

	FromStop  *Stop
	FromPoint *StopPoint
	ToStop    *Stop
	ToPoint   *StopPoint
	Branch    *Branch

	// Geometry and ForcePoints are ordered by their consecutive point
	// number at parse time.
	Geometry    []LinkPoint
	ForcePoints []LinkPoint
}

// LinkPoint is one point of a link polyline, either a geometry point from
// `link_geometry.din` or a force point from `link_force_point.din`.
type LinkPoint struct {
	VersionID  int
	LinkID     int
	ConsecPtNr int
	PosX       string
	PosY       string
}

// points returns the geometry polyline, falling back to the force points for
// links that ship without a full geometry.
func (l *Link) points() []LinkPoint {
	if len(l.Geometry) > 0 {
		return l.Geometry
	}
	return l.ForcePoints
}

// WKT returns the link geometry as a well known text LINESTRING.
func (l *Link) WKT() string {
	var b strings.Builder
	b.WriteString("LINESTRING (")
	for i, p := range l.points() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.PosX)
		b.WriteString(" ")
		b.WriteString(p.PosY)
	}
	b.WriteString(")")
	return b.String()
}

// WKTMeasured returns the link geometry as a LINESTRING M with a unix
// timestamp measure on each point, interpolated linearly over the point index
// between tsStart and tsEnd.
func (l *Link) WKTMeasured(tsStart, tsEnd int64) string {
	pts := l.points()
	var b strings.Builder
	b.WriteString("LINESTRING M (")
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		m := tsStart
		if len(pts) > 1 {
			m = tsStart + int64(i)*(tsEnd-tsStart)/int64(len(pts)-1)
		}
		b.WriteString(p.PosX)
		b.WriteString(" ")
		b.WriteString(p.PosY)
		b.WriteString(" ")
		b.WriteString(strconv.FormatInt(m, 10))
	}
	b.WriteString(")")
	return b.String()
}

// linkKey identifies a link by its endpoint stopping points. Area ids are
// left out on purpose, course stops reference links by stop and point only.
type linkKey struct {
	versionID   int
	fromStopID  int
	fromPointID int
	toStopID    int
	toPointID   int
}

// LinkIndex resolves the link between two consecutive course stops.
type LinkIndex struct {
	links map[linkKey]*Link
}

// NewLinkIndex builds a link lookup over all versions of the dataset. When
// several links share the same endpoints the first one wins.
func NewLinkIndex(ds *Dataset) *LinkIndex {
	ix := &LinkIndex{links: map[linkKey]*Link{}}
	for i := range ds.Links {
		l := &ds.Links[i]
		k := linkKey{versionID: l.VersionID, fromStopID: l.FromStopID, toStopID: l.ToStopID}
		if l.FromPointID != nil {
			k.fromPointID = *l.FromPointID
		}
		if l.ToPointID != nil {
			k.toPointID = *l.ToPointID
		}
		if _, ok := ix.links[k]; !ok {
			ix.links[k] = l
		}
	}
	return ix
}

// Between returns the link connecting two stopping points, or a
// LinkNotFoundError if the dataset has none.
func (ix *LinkIndex) Between(versionID, fromStopID, fromPointID, toStopID, toPointID int) (*Link, error) {
	l, ok := ix.links[linkKey{versionID, fromStopID, fromPointID, toStopID, toPointID}]
	if !ok {
		return nil, LinkNotFoundError{
			FromStopID:  fromStopID,
			FromPointID: fromPointID,
			ToStopID:    toStopID,
			ToPointID:   toPointID,
		}
	}
	return l, nil
}

func (s *Stop) String() string {
	return fmt.Sprintf("stop %d (%s)", s.ID, s.Name)
}
