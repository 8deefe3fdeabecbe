package dino2

import "fmt"

// MalformedRestrictionError indicates that a service restriction daystring
// could not be decoded. The restriction's dates are undefined in this case;
// callers must not fall back to an empty set.
type MalformedRestrictionError struct {
	Daystring string
	Reason    string
}

func (e MalformedRestrictionError) Error() string {
	return fmt.Sprintf("malformed restriction daystring %q: %s", e.Daystring, e.Reason)
}

// InvalidTimingSequenceError indicates that the stop timings of a trip do not
// line up with the course stops of its course. This is a data integrity
// violation in the imported dataset.
type InvalidTimingSequenceError struct {
	Trip   TripKey
	Reason string
}

func (e InvalidTimingSequenceError) Error() string {
	return fmt.Sprintf("invalid timing sequence for trip %v: %s", e.Trip, e.Reason)
}

// LinkNotFoundError indicates that no way geometry exists between two stop
// points that are adjacent on a course.
type LinkNotFoundError struct {
	FromStopID  int
	FromPointID int
	ToStopID    int
	ToPointID   int
}

func (e LinkNotFoundError) Error() string {
	return fmt.Sprintf("no link between stop point %d/%d and stop point %d/%d",
		e.FromStopID, e.FromPointID, e.ToStopID, e.ToPointID)
}
