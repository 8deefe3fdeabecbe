package dino2

import (
	"sync"
	"time"
)

// Resolver answers validity questions over a parsed dataset: on which dates a
// trip runs, and which trips run on a date. It builds one calendar index per
// version and memoizes restriction decodes, so it is cheap to query
// repeatedly. Safe for concurrent use.
type Resolver struct {
	ds *Dataset

	calendars map[int]*CalendarIndex

	mu           sync.Mutex
	restrictions map[string]DateSet
}

// NewResolver builds a resolver over the dataset.
func NewResolver(ds *Dataset) *Resolver {
	r := &Resolver{
		ds:           ds,
		calendars:    map[int]*CalendarIndex{},
		restrictions: map[string]DateSet{},
	}
	for i := range ds.Versions {
		v := &ds.Versions[i]
		r.calendars[v.ID] = NewCalendarIndex(ds, v.ID)
	}
	return r
}

// Calendar returns the calendar index of a version, or nil for an unknown
// version.
func (r *Resolver) Calendar(versionID int) *CalendarIndex {
	return r.calendars[versionID]
}

// restrictionDates decodes a restriction's daystring, memoized on the
// daystring itself since identical strings decode identically for the same
// range.
func (r *Resolver) restrictionDates(res *Restriction) (DateSet, error) {
	key := res.Daystring + "\x00" + res.DateFrom.Format("20060102") + res.DateUntil.Format("20060102")
	r.mu.Lock()
	cached, ok := r.restrictions[key]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}
	dates, err := res.Dates()
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.restrictions[key] = dates
	r.mu.Unlock()
	return dates, nil
}

// TripDates returns the set of dates a trip operates on: the dates of its day
// attribute, intersected with its restriction's dates when it has one, and
// clipped to its course's validity period.
func (r *Resolver) TripDates(t *Trip) (DateSet, error) {
	cal := r.calendars[t.VersionID]
	if cal == nil {
		return DateSet{}, nil
	}
	dates := cal.DayAttributeDates(t.DayAttributeID)
	if t.Restriction != nil {
		restricted, err := r.restrictionDates(t.Restriction)
		if err != nil {
			return nil, err
		}
		dates = dates.Intersect(restricted)
	}
	v := r.ds.Version(t.VersionID)
	out := DateSet{}
	for d := range dates {
		if t.Course == nil || t.Course.DateValid(d, v) {
			out[d] = true
		}
	}
	return out, nil
}

// TripValidOn reports whether the trip operates on the date.
func (r *Resolver) TripValidOn(t *Trip, date time.Time) (bool, error) {
	date = Midnight(date)
	cal := r.calendars[t.VersionID]
	if cal == nil {
		return false, nil
	}
	if !cal.DayAttributeDates(t.DayAttributeID)[date] {
		return false, nil
	}
	if t.Restriction != nil {
		restricted, err := r.restrictionDates(t.Restriction)
		if err != nil {
			return false, err
		}
		if !restricted[date] {
			return false, nil
		}
	}
	if t.Course != nil && !t.Course.DateValid(date, r.ds.Version(t.VersionID)) {
		return false, nil
	}
	return true, nil
}

// TripsValidOn returns all trips of the dataset operating on the date, in
// dataset order. Version priorities are not considered.
func (r *Resolver) TripsValidOn(date time.Time) ([]*Trip, error) {
	var out []*Trip
	for i := range r.ds.Trips {
		t := &r.ds.Trips[i]
		ok, err := r.TripValidOn(t, date)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}
