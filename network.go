package dino2

import (
	"fmt"
	"strings"
	"time"
)

// Course is one "line variant": a concrete stop sequence of a line in one
// direction. There is no model type for a whole line; a line is the set of
// courses sharing the same line number. Keyed by
// (version, line, id, direction).
type Course struct {
	VersionID int
	BranchID  int
	Line      int
	ID        string
	LineDir   int

	Name    string
	LastMod string

	MOTID *int

	ValidFrom time.Time
	ValidTo   time.Time

	OperatorID             string
	OperatorBranchOfficeID string

	Type     *int
	GlobalID string
	BikeRule *BikeRule

	Branch               *Branch
	MOT                  *MeansOfTransportDesc
	Operator             *Operator
	OperatorBranchOffice *OperatorBranchOffice

	// Stops and StopTimings are ordered by consecutive stop number at
	// parse time. StopTimings interleaves all timing groups.
	Stops       []*CourseStop
	StopTimings []*CourseStopTiming
	Trips       []*Trip
	VDTChanges  []*TripVDT
}

// Length returns the course length in meters, summed over the stop-to-stop
// lengths that are present.
func (c *Course) Length() int {
	var sum int
	for _, s := range c.Stops {
		if s.Length != nil {
			sum += *s.Length
		}
	}
	return sum
}

// Duration returns the total travel time of the course for one timing group,
// including stopping times.
func (c *Course) Duration(timingGroup int) time.Duration {
	var sum time.Duration
	for _, t := range c.StopTimings {
		if t.TimingGroup != timingGroup || t.TimeToStop == nil {
			continue
		}
		sum += *t.TimeToStop + t.StoppingTime
	}
	return sum
}

// DateValid reports whether a date is in the validity period of the course.
// Bounds the course leaves open fall back to the version's period.
func (c *Course) DateValid(date time.Time, v *Version) bool {
	from, to := c.ValidFrom, c.ValidTo
	if v != nil {
		if from.IsZero() {
			from = v.DateFrom
		}
		if to.IsZero() {
			to = v.DateTo
		}
	}
	if !from.IsZero() && date.Before(from) {
		return false
	}
	if !to.IsZero() && date.After(to) {
		return false
	}
	return true
}

// WKT returns the course geometry as a well known text MULTILINESTRING, one
// segment per consecutive stop pair, resolved through the link index.
func (c *Course) WKT(ix *LinkIndex) (string, error) {
	var b strings.Builder
	b.WriteString("MULTILINESTRING (")
	for i := 0; i+1 < len(c.Stops); i++ {
		from, to := c.Stops[i], c.Stops[i+1]
		link, err := ix.Between(c.VersionID, from.StopID, from.StopPointID, to.StopID, to.StopPointID)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strings.TrimPrefix(link.WKT(), "LINESTRING "))
	}
	b.WriteString(")")
	return b.String(), nil
}

// WKTMeasured returns the course geometry as a MULTILINESTRING M with a unix
// timestamp measure on each point, for one timing group and an optional start
// time of day and start day. Point measures within a segment are interpolated
// over the point index.
func (c *Course) WKTMeasured(ix *LinkIndex, timingGroup int, start time.Duration, startDay time.Time) (string, error) {
	var timings []*CourseStopTiming
	for _, t := range c.StopTimings {
		if t.TimingGroup == timingGroup {
			timings = append(timings, t)
		}
	}
	if len(timings) != len(c.Stops) {
		return "", InvalidTimingSequenceError{
			Trip:   TripKey{VersionID: c.VersionID, Line: c.Line, CourseID: c.ID, LineDir: c.LineDir},
			Reason: fmt.Sprintf("timing group %d has %d timings for %d stops", timingGroup, len(timings), len(c.Stops)),
		}
	}
	var dayEpoch int64
	if !startDay.IsZero() {
		dayEpoch = Midnight(startDay).Unix()
	}
	ts := func(d time.Duration) int64 {
		return dayEpoch + int64(d/time.Second)
	}
	current := start
	var b strings.Builder
	b.WriteString("MULTILINESTRING M (")
	for i := 0; i+1 < len(c.Stops); i++ {
		from, to := c.Stops[i], c.Stops[i+1]
		if timings[i].TimeToStop != nil {
			current += *timings[i].TimeToStop
		}
		current += timings[i].StoppingTime
		arrival := current
		if timings[i+1].TimeToStop != nil {
			arrival += *timings[i+1].TimeToStop
		}
		link, err := ix.Between(c.VersionID, from.StopID, from.StopPointID, to.StopID, to.StopPointID)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strings.TrimPrefix(link.WKTMeasured(ts(current), ts(arrival)), "LINESTRING M "))
	}
	b.WriteString(")")
	return b.String(), nil
}

// CourseStop is a single stop on a course. Keyed by
// (version, line, course, direction, consecutive stop number).
type CourseStop struct {
	VersionID    int
	Line         int
	CourseID     string
	LineDir      int
	ConsecStopNr int

	StopID      int
	StopPointID int

	Type StopPointType

	// Length in meters from the previous course stop.
	Length *int

	Course    *Course
	Stop      *Stop
	StopPoint *StopPoint
}

// CourseStopTiming is the timing of one course stop in one timing group.
// Keyed by (version, line, course, direction, consecutive stop number,
// timing group).
type CourseStopTiming struct {
	VersionID    int
	Line         int
	CourseID     string
	LineDir      int
	ConsecStopNr int
	TimingGroup  int

	// TimeToStop is the travel time from the previous course stop. Nil
	// marks a stop the timing group passes through without stopping.
	TimeToStop   *time.Duration
	StoppingTime time.Duration

	Course     *Course
	CourseStop *CourseStop
}

func (c *Course) String() string {
	return fmt.Sprintf("course %d/%s/%d (%s)", c.Line, c.ID, c.LineDir, c.Name)
}
