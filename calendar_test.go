package dino2

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRestrictionDays(t *testing.T) {
	for _, tc := range []struct {
		name      string
		daystring string
		dateFrom  time.Time
		dateUntil time.Time
		want      []time.Time
	}{
		{
			name:      "first days of a month",
			daystring: "0000000F",
			dateFrom:  NewDate(2024, time.January, 1),
			dateUntil: NewDate(2024, time.January, 31),
			want: []time.Time{
				NewDate(2024, time.January, 1),
				NewDate(2024, time.January, 2),
				NewDate(2024, time.January, 3),
				NewDate(2024, time.January, 4),
			},
		},
		{
			name:      "every day of a 31 day month",
			daystring: "7FFFFFFF",
			dateFrom:  NewDate(2024, time.January, 1),
			dateUntil: NewDate(2024, time.January, 31),
			want:      fullMonth(2024, time.January, 31),
		},
		{
			name:      "leap year february",
			daystring: "7FFFFFFF",
			dateFrom:  NewDate(2024, time.February, 1),
			dateUntil: NewDate(2024, time.February, 29),
			want:      fullMonth(2024, time.February, 29),
		},
		{
			name:      "non leap year february",
			daystring: "7FFFFFFF",
			dateFrom:  NewDate(2023, time.February, 1),
			dateUntil: NewDate(2023, time.February, 28),
			want:      fullMonth(2023, time.February, 28),
		},
		{
			name: "days before the start are excluded",
			// Bits for days 1-31, but the range starts on the 30th.
			daystring: "7FFFFFFF",
			dateFrom:  NewDate(2024, time.January, 30),
			dateUntil: NewDate(2024, time.January, 31),
			want: []time.Time{
				NewDate(2024, time.January, 30),
				NewDate(2024, time.January, 31),
			},
		},
		{
			name:      "days after the end are excluded",
			daystring: "7FFFFFFF",
			dateFrom:  NewDate(2024, time.January, 1),
			dateUntil: NewDate(2024, time.January, 2),
			want: []time.Time{
				NewDate(2024, time.January, 1),
				NewDate(2024, time.January, 2),
			},
		},
		{
			name:      "year rollover between chunks",
			daystring: "4000000000000001",
			dateFrom:  NewDate(2023, time.December, 1),
			dateUntil: NewDate(2024, time.January, 31),
			want: []time.Time{
				NewDate(2023, time.December, 31),
				NewDate(2024, time.January, 1),
			},
		},
		{
			name:      "unset bits give no dates",
			daystring: "00000000",
			dateFrom:  NewDate(2024, time.January, 1),
			dateUntil: NewDate(2024, time.January, 31),
			want:      nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRestrictionDays(tc.daystring, tc.dateFrom, tc.dateUntil)
			if err != nil {
				t.Fatalf("DecodeRestrictionDays error: %s", err)
			}
			want := DateSet{}
			for _, d := range tc.want {
				want[d] = true
			}
			if diff := cmp.Diff(got, want); diff != "" {
				t.Errorf("got dates != want dates\n%s", diff)
			}
		})
	}
}

func TestDecodeRestrictionDaysMalformed(t *testing.T) {
	for _, tc := range []struct {
		name      string
		daystring string
	}{
		{"empty", ""},
		{"truncated chunk", "7FFFFFF"},
		{"not hex", "7FFFFFFG"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRestrictionDays(tc.daystring, NewDate(2024, time.January, 1), NewDate(2024, time.January, 31))
			if err == nil {
				t.Fatalf("DecodeRestrictionDays(%q) expected error, got none", tc.daystring)
			}
			if _, ok := err.(MalformedRestrictionError); !ok {
				t.Errorf("error has type %T, want MalformedRestrictionError", err)
			}
		})
	}
}

func fullMonth(year int, month time.Month, days int) []time.Time {
	var out []time.Time
	for d := 1; d <= days; d++ {
		out = append(out, NewDate(year, month, d))
	}
	return out
}

func TestRestrictionTextCalendar(t *testing.T) {
	r := &Restriction{
		Daystring: "0000001F",
		DateFrom:  NewDate(2024, time.January, 1),
		DateUntil: NewDate(2024, time.January, 5),
	}
	got, err := r.TextCalendar()
	if err != nil {
		t.Fatalf("TextCalendar error: %s", err)
	}
	want := "\t  0        1         2         3 \n" +
		"\t  1234567890123456789012345678901\n" +
		"\t   | | | | | | | | | | | | | | | \n" +
		"Jan 2024  11111"
	if got != want {
		t.Errorf("got calendar:\n%s\nwant:\n%s", got, want)
	}
}

func TestRestrictionTextCalendarLeadingBlanks(t *testing.T) {
	r := &Restriction{
		// Day 10 valid, day 11 not.
		Daystring: "00000200",
		DateFrom:  NewDate(2024, time.March, 10),
		DateUntil: NewDate(2024, time.March, 11),
	}
	got, err := r.TextCalendar()
	if err != nil {
		t.Fatalf("TextCalendar error: %s", err)
	}
	want := "\t  0        1         2         3 \n" +
		"\t  1234567890123456789012345678901\n" +
		"\t   | | | | | | | | | | | | | | | \n" +
		"Mar 2024           10"
	if got != want {
		t.Errorf("got calendar:\n%s\nwant:\n%s", got, want)
	}
}

func TestCalendarIndex(t *testing.T) {
	mo, di, sa := 1, 2, 6
	weekdays, saturdays := 10, 20
	ds := &Dataset{
		Versions: []Version{{ID: 1}},
		DayGroupings: []DayGrouping{
			{VersionID: 1, DayTypeID: mo, DayAttrID: weekdays},
			{VersionID: 1, DayTypeID: di, DayAttrID: weekdays},
			{VersionID: 1, DayTypeID: sa, DayAttrID: saturdays},
		},
		CalendarDays: []CalendarDay{
			{VersionID: 1, Day: NewDate(2024, time.January, 1), DayTypeID: mo},
			{VersionID: 1, Day: NewDate(2024, time.January, 2), DayTypeID: di},
			{VersionID: 1, Day: NewDate(2024, time.January, 6), DayTypeID: sa},
			{VersionID: 1, Day: NewDate(2024, time.January, 8), DayTypeID: mo},
			// Rows of other versions must not leak into the index.
			{VersionID: 2, Day: NewDate(2024, time.January, 15), DayTypeID: mo},
		},
	}
	ix := NewCalendarIndex(ds, 1)

	if diff := cmp.Diff(ix.DayTypeDates(mo), DateSet{
		NewDate(2024, time.January, 1): true,
		NewDate(2024, time.January, 8): true,
	}); diff != "" {
		t.Errorf("DayTypeDates(monday) mismatch\n%s", diff)
	}
	if diff := cmp.Diff(ix.DayAttributeDates(weekdays), DateSet{
		NewDate(2024, time.January, 1): true,
		NewDate(2024, time.January, 2): true,
		NewDate(2024, time.January, 8): true,
	}); diff != "" {
		t.Errorf("DayAttributeDates(weekdays) mismatch\n%s", diff)
	}
	if diff := cmp.Diff(ix.DayAttributeDates(saturdays), DateSet{
		NewDate(2024, time.January, 6): true,
	}); diff != "" {
		t.Errorf("DayAttributeDates(saturdays) mismatch\n%s", diff)
	}
	if got := ix.DayAttributeDates(99); len(got) != 0 {
		t.Errorf("DayAttributeDates(unknown) = %v, want empty", got)
	}
}
