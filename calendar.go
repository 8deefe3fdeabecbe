package dino2

import (
	"strconv"
	"strings"
	"time"
)

// DayType is a named category of days, usually one per day of the week.
// Keyed by (version, id).
type DayType struct {
	VersionID int
	ID        int
	Text      string
	Abbr      string
}

// DayAttribute is a named group of day types, e.g. a grouping "weekend" of
// the day types for Saturday and Sunday. Trips reference a day attribute to
// define the base set of days they operate on, further narrowed by an
// optional Restriction.
type DayAttribute struct {
	VersionID int
	ID        int
	Text      string
	Abbr      string

	// DayTypes lists the grouped day types, wired from the
	// day_type_2_day_attribute rows at parse time.
	DayTypes []*DayType
}

// DayGrouping is one day type -> day attribute association row.
type DayGrouping struct {
	VersionID int
	DayTypeID int
	DayAttrID int
}

// CalendarDay maps one date of a version to its day type. This is the ground
// truth of "what day type is date X".
type CalendarDay struct {
	VersionID int
	Day       time.Time
	DayTypeID int
	Text      string

	DayType *DayType
}

// Restriction narrows the days a trip operates on, e.g. services running only
// during school terms. The valid days are encoded in Daystring, one
// 8-hex-digit chunk per calendar month starting at DateFrom's month.
//
// A restriction optionally applies to a single line; Line nil means it
// applies to all lines of its version.
type Restriction struct {
	VersionID int
	ID        string
	Line      *int

	Text      string
	Daystring string
	DateFrom  time.Time
	DateUntil time.Time
}

// Dates decodes the restriction's daystring into the concrete set of dates it
// marks as valid.
func (r *Restriction) Dates() (DateSet, error) {
	return DecodeRestrictionDays(r.Daystring, r.DateFrom, r.DateUntil)
}

// DecodeRestrictionDays decodes a service restriction daystring for the date
// range [dateFrom, dateUntil].
//
// The daystring consists of consecutive 8-hex-digit chunks, each encoding one
// calendar month as a 32-bit field. Chunk 0 is the month of dateFrom; chunk k
// is that month plus k, rolling over year boundaries. Within a chunk, the
// highest bit is reserved and the remaining 31 bits map
// least-significant-first onto days 1..31. Days before dateFrom in the first
// month and after dateUntil in the last month are excluded.
func DecodeRestrictionDays(daystring string, dateFrom, dateUntil time.Time) (DateSet, error) {
	if len(daystring) == 0 || len(daystring)%8 != 0 {
		return nil, MalformedRestrictionError{
			Daystring: daystring,
			Reason:    "length must be a positive multiple of 8",
		}
	}
	dates := DateSet{}
	year, month := dateFrom.Year(), int(dateFrom.Month())
	firstDay, lastDay := dateFrom.Day(), dateUntil.Day()
	for o := 0; o < len(daystring); o += 8 {
		bits, err := strconv.ParseUint(daystring[o:o+8], 16, 32)
		if err != nil {
			return nil, MalformedRestrictionError{
				Daystring: daystring,
				Reason:    "chunk " + daystring[o:o+8] + " is not a 32-bit hex value",
			}
		}
		if month == 13 {
			month = 1
			year++
		}
		last := o == len(daystring)-8
		for day := 1; day <= daysInMonth(year, time.Month(month)); day++ {
			if o == 0 && day < firstDay {
				continue
			}
			if last && day > lastDay {
				continue
			}
			if bits>>(day-1)&1 == 1 {
				dates[NewDate(year, time.Month(month), day)] = true
			}
		}
		month++
	}
	return dates, nil
}

// TextCalendar renders a human readable month-by-month calendar of the
// restriction's valid days: one row per month, '1' for a valid day, '0' for
// an invalid day inside the range, blank before the range starts.
func (r *Restriction) TextCalendar() (string, error) {
	dates, err := r.Dates()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("\t  0        1         2         3 \n")
	b.WriteString("\t  1234567890123456789012345678901\n")
	b.WriteString("\t   | | | | | | | | | | | | | | | ")
	curr := NewDate(r.DateFrom.Year(), r.DateFrom.Month(), 1)
	for !curr.After(r.DateUntil) {
		if curr.Day() == 1 {
			b.WriteString("\n")
			b.WriteString(curr.Month().String()[:3])
			b.WriteString(" ")
			b.WriteString(strconv.Itoa(curr.Year()))
			b.WriteString("  ")
		}
		switch {
		case curr.Before(r.DateFrom):
			b.WriteString(" ")
		case dates[curr]:
			b.WriteString("1")
		default:
			b.WriteString("0")
		}
		curr = curr.AddDate(0, 0, 1)
	}
	return b.String(), nil
}

// CalendarIndex answers "which dates belong to a day type" and "which dates
// belong to a day attribute" for one version with plain map lookups. It is
// built once per version from the calendar rows; the per-call relationship
// walking this replaces would otherwise recompute the same unions for every
// trip.
type CalendarIndex struct {
	versionID    int
	dayTypeDates map[int]DateSet
	dayAttrDates map[int]DateSet
}

// NewCalendarIndex builds the calendar index for one version of the dataset.
func NewCalendarIndex(ds *Dataset, versionID int) *CalendarIndex {
	ix := &CalendarIndex{
		versionID:    versionID,
		dayTypeDates: map[int]DateSet{},
		dayAttrDates: map[int]DateSet{},
	}
	for i := range ds.CalendarDays {
		cd := &ds.CalendarDays[i]
		if cd.VersionID != versionID {
			continue
		}
		set, ok := ix.dayTypeDates[cd.DayTypeID]
		if !ok {
			set = DateSet{}
			ix.dayTypeDates[cd.DayTypeID] = set
		}
		set[cd.Day] = true
	}
	for i := range ds.DayGroupings {
		g := &ds.DayGroupings[i]
		if g.VersionID != versionID {
			continue
		}
		set, ok := ix.dayAttrDates[g.DayAttrID]
		if !ok {
			set = DateSet{}
			ix.dayAttrDates[g.DayAttrID] = set
		}
		for d := range ix.dayTypeDates[g.DayTypeID] {
			set[d] = true
		}
	}
	return ix
}

// VersionID returns the version this index was built for.
func (ix *CalendarIndex) VersionID() int {
	return ix.versionID
}

// DayTypeDates returns the explicit calendar days of a day type.
func (ix *CalendarIndex) DayTypeDates(dayTypeID int) DateSet {
	return ix.dayTypeDates[dayTypeID]
}

// DayAttributeDates returns the union of the calendar days of all day types
// grouped into the day attribute.
func (ix *CalendarIndex) DayAttributeDates(dayAttrID int) DateSet {
	return ix.dayAttrDates[dayAttrID]
}
