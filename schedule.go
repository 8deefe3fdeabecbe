package dino2

import (
	"fmt"
	"time"
)

// Notice is an operational note shown with the trips that reference it.
// A notice optionally applies to a single line; Line nil means it applies to
// all lines of its version. Keyed by (version, line, id).
type Notice struct {
	VersionID int
	Line      *int
	ID        string

	Text        string
	ContentType *NoticeContentType
	DisplayType *NoticeDisplayType
}

// TripKey identifies a trip. Trips are keyed by (version, line, id); course
// and direction are carried for context.
type TripKey struct {
	VersionID int
	Line      int
	CourseID  string
	LineDir   int
	TripID    int
}

func (k TripKey) String() string {
	return fmt.Sprintf("trip %d/%s/%d/%d", k.Line, k.CourseID, k.LineDir, k.TripID)
}

// TripStop is a single stop visit of a trip with its resolved constraints,
// destination texts, and times.
type TripStop struct {
	Trip       *Trip
	Stop       *Stop
	StopPoint  *StopPoint
	CourseStop *CourseStop
	StopTiming *CourseStopTiming

	// Constraints is nil when built by TripStopsSimple, an empty non-nil
	// slice when the trip has no constraints at this stop.
	Constraints []*StopConstraint

	// VDTBefore and VDTAfter are the vehicle destination texts shown when
	// arriving at and when departing from this stop.
	VDTBefore *VehicleDestinationText
	VDTAfter  *VehicleDestinationText

	// ArrTime and DepTime are times of day since midnight. Both are nil
	// at stops the trip passes through without stopping.
	ArrTime *time.Duration
	DepTime *time.Duration

	// DistanceTravelled is the distance in meters since the first stop,
	// nil until the first course stop that carries a length.
	DistanceTravelled *int
}

// Trip is one run over a course in a specific timing group, departing at a
// specific time of day. Its valid days are the day attribute's dates, further
// narrowed by the optional restriction. Keyed by (version, line, id).
type Trip struct {
	VersionID int
	Line      int
	CourseID  string
	LineDir   int

	TimingGroup int

	ID         int
	IDPrinting *int

	// DepartureTime is a time of day since midnight.
	DepartureTime time.Duration

	DepStopID      int
	DepStopPointID int
	ArrStopID      int
	ArrStopPointID int

	VehicleTypeID *int

	DayAttributeID int
	RestrictionID  string

	NoticeIDs [5]string

	RoundTripID       *int
	TrainID           *int
	TrainCategoryAbbr string

	OperatorID             string
	OperatorBranchOfficeID string

	GlobalID    string
	BikeAllowed *bool
	PurposeID   *int

	Course       *Course
	DepStop      *Stop
	DepStopPoint *StopPoint
	ArrStop      *Stop
	ArrStopPoint *StopPoint

	VehicleType          *VehicleType
	DayAttribute         *DayAttribute
	Restriction          *Restriction
	Operator             *Operator
	OperatorBranchOffice *OperatorBranchOffice

	// StopTimings holds the course timings of this trip's timing group,
	// ordered by consecutive stop number.
	StopTimings []*CourseStopTiming
	// Constraints and VDTChanges are ordered by consecutive stop number.
	Constraints []*StopConstraint
	VDTChanges  []*TripVDT

	noticeRefs [5]*Notice
}

// Key returns the trip's identity.
func (t *Trip) Key() TripKey {
	return TripKey{
		VersionID: t.VersionID,
		Line:      t.Line,
		CourseID:  t.CourseID,
		LineDir:   t.LineDir,
		TripID:    t.ID,
	}
}

// Notices returns the notices the trip references, in reference order,
// without unresolved entries.
func (t *Trip) Notices() []*Notice {
	var out []*Notice
	for _, n := range t.noticeRefs {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// TripStops walks the trip's timing sequence and returns one TripStop per
// course stop, with a running clock starting at the departure time.
//
// A nil TimeToStop marks a stop the trip passes through: its arrival and
// departure times are nil and neither travel nor stopping time advances the
// clock. Otherwise the stop's arrival is the clock after adding the travel
// time and its departure adds the stopping time on top.
func (t *Trip) TripStops() ([]TripStop, error) {
	return t.tripStops(false)
}

// TripStopsSimple is TripStops without resolving constraints, destination
// texts, and distances. Cheaper when only times are needed.
func (t *Trip) TripStopsSimple() ([]TripStop, error) {
	return t.tripStops(true)
}

func (t *Trip) tripStops(simple bool) ([]TripStop, error) {
	stops := make([]TripStop, 0, len(t.StopTimings))
	current := t.DepartureTime
	var currentVDT *TripVDT
	var distance *int
	ci, vi := 0, 0
	for _, timing := range t.StopTimings {
		cs := timing.CourseStop
		if cs == nil {
			return nil, InvalidTimingSequenceError{
				Trip:   t.Key(),
				Reason: fmt.Sprintf("no course stop for consecutive stop number %d", timing.ConsecStopNr),
			}
		}
		if timing.TimeToStop != nil {
			current += *timing.TimeToStop
		}
		if !simple && cs.Length != nil {
			d := *cs.Length
			if distance != nil {
				d += *distance
			}
			distance = &d
		}
		prevVDT := currentVDT
		var constraints []*StopConstraint
		if !simple {
			for vi < len(t.VDTChanges) && t.VDTChanges[vi].ConsecStopNr <= timing.ConsecStopNr {
				currentVDT = t.VDTChanges[vi]
				vi++
			}
			constraints = []*StopConstraint{}
			for ci < len(t.Constraints) && t.Constraints[ci].ConsecStopNr <= timing.ConsecStopNr {
				if t.Constraints[ci].ConsecStopNr == timing.ConsecStopNr {
					constraints = append(constraints, t.Constraints[ci])
				}
				ci++
			}
		}
		// Each stop owns its own copy of the running distance.
		var stopDistance *int
		if distance != nil {
			d := *distance
			stopDistance = &d
		}
		ts := TripStop{
			Trip:              t,
			Stop:              cs.Stop,
			StopPoint:         cs.StopPoint,
			CourseStop:        cs,
			StopTiming:        timing,
			Constraints:       constraints,
			DistanceTravelled: stopDistance,
		}
		if prevVDT != nil {
			ts.VDTBefore = prevVDT.VDT
		}
		if currentVDT != nil {
			ts.VDTAfter = currentVDT.VDT
		}
		if timing.TimeToStop != nil {
			arr := current
			dep := current + timing.StoppingTime
			ts.ArrTime = &arr
			ts.DepTime = &dep
			current += timing.StoppingTime
		}
		stops = append(stops, ts)
	}
	return stops, nil
}

// WKT returns the trip's path as a MULTILINESTRING M with unix timestamp
// measures, anchored at the trip's departure on the given day. A zero day
// measures time of day only.
func (t *Trip) WKT(ix *LinkIndex, day time.Time) (string, error) {
	if t.Course == nil {
		return "", InvalidTimingSequenceError{Trip: t.Key(), Reason: "trip has no course"}
	}
	return t.Course.WKTMeasured(ix, t.TimingGroup, t.DepartureTime, day)
}

// Duration returns the trip's total duration.
func (t *Trip) Duration() time.Duration {
	if t.Course == nil {
		return 0
	}
	return t.Course.Duration(t.TimingGroup)
}

// StopConstraint restricts how one course stop is served on one trip, e.g.
// alighting only. Keyed by
// (version, line, trip, consecutive stop number, constraint).
type StopConstraint struct {
	VersionID    int
	Line         int
	CourseID     string
	LineDir      *int
	TripID       int
	ConsecStopNr int

	StopID      *int
	StopPointID *int

	Constraint StopConstraintType

	Trip       *Trip
	CourseStop *CourseStop
}

// TripVDT assigns a vehicle destination text to a trip from one course stop
// onwards.
type TripVDT struct {
	VersionID    int
	Period       string
	Line         int
	CourseID     string
	LineDir      *int
	TripID       int
	ConsecStopNr int
	VDTID        int

	Trip       *Trip
	CourseStop *CourseStop
	VDT        *VehicleDestinationText
}
