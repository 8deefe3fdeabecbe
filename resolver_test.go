package dino2

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// resolverDataset builds a one-version dataset with two day types grouped into
// one day attribute and a restriction marking the first three days of January.
func resolverDataset() *Dataset {
	ds := &Dataset{
		Versions: []Version{
			{ID: 1, DateFrom: NewDate(2024, 1, 1), DateTo: NewDate(2024, 1, 31)},
		},
		DayTypes: []DayType{
			{VersionID: 1, ID: 1, Text: "Montag", Abbr: "Mo"},
			{VersionID: 1, ID: 2, Text: "Dienstag", Abbr: "Di"},
		},
		DayAttributes: []DayAttribute{
			{VersionID: 1, ID: 10, Text: "Montag-Dienstag"},
		},
		DayGroupings: []DayGrouping{
			{VersionID: 1, DayTypeID: 1, DayAttrID: 10},
			{VersionID: 1, DayTypeID: 2, DayAttrID: 10},
		},
		CalendarDays: []CalendarDay{
			{VersionID: 1, Day: NewDate(2024, 1, 1), DayTypeID: 1},
			{VersionID: 1, Day: NewDate(2024, 1, 2), DayTypeID: 2},
			{VersionID: 1, Day: NewDate(2024, 1, 8), DayTypeID: 1},
			{VersionID: 1, Day: NewDate(2024, 1, 9), DayTypeID: 2},
		},
		Restrictions: []Restriction{
			{
				VersionID: 1,
				ID:        "A",
				Daystring: "00000007",
				DateFrom:  NewDate(2024, 1, 1),
				DateUntil: NewDate(2024, 1, 31),
			},
		},
	}
	return ds
}

func TestResolverTripDates(t *testing.T) {
	ds := resolverDataset()
	r := NewResolver(ds)

	trip := &Trip{VersionID: 1, Line: 5, ID: 100, DayAttributeID: 10}
	got, err := r.TripDates(trip)
	if err != nil {
		t.Fatalf("TripDates error: %s", err)
	}
	want := DateSet{
		NewDate(2024, 1, 1): true,
		NewDate(2024, 1, 2): true,
		NewDate(2024, 1, 8): true,
		NewDate(2024, 1, 9): true,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("unrestricted trip dates mismatch\n%s", diff)
	}
}

func TestResolverTripDatesWithRestriction(t *testing.T) {
	ds := resolverDataset()
	r := NewResolver(ds)

	trip := &Trip{
		VersionID:      1,
		Line:           5,
		ID:             101,
		DayAttributeID: 10,
		RestrictionID:  "A",
		Restriction:    &ds.Restrictions[0],
	}
	got, err := r.TripDates(trip)
	if err != nil {
		t.Fatalf("TripDates error: %s", err)
	}
	// Day attribute {1, 2, 8, 9} narrowed by restriction {1, 2, 3}.
	want := DateSet{
		NewDate(2024, 1, 1): true,
		NewDate(2024, 1, 2): true,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("restricted trip dates mismatch\n%s", diff)
	}
}

func TestResolverTripDatesClippedByCourse(t *testing.T) {
	ds := resolverDataset()
	r := NewResolver(ds)

	course := &Course{
		VersionID: 1,
		ValidFrom: NewDate(2024, 1, 2),
		ValidTo:   NewDate(2024, 1, 8),
	}
	trip := &Trip{VersionID: 1, Line: 5, ID: 102, DayAttributeID: 10, Course: course}
	got, err := r.TripDates(trip)
	if err != nil {
		t.Fatalf("TripDates error: %s", err)
	}
	want := DateSet{
		NewDate(2024, 1, 2): true,
		NewDate(2024, 1, 8): true,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("course-clipped trip dates mismatch\n%s", diff)
	}
}

func TestResolverTripDatesMalformedRestriction(t *testing.T) {
	ds := resolverDataset()
	ds.Restrictions[0].Daystring = "XYZ"
	r := NewResolver(ds)

	trip := &Trip{VersionID: 1, DayAttributeID: 10, Restriction: &ds.Restrictions[0]}
	_, err := r.TripDates(trip)
	var malformed MalformedRestrictionError
	if !errors.As(err, &malformed) {
		t.Fatalf("TripDates error = %v, want MalformedRestrictionError", err)
	}
}

func TestResolverTripDatesUnknownVersion(t *testing.T) {
	r := NewResolver(resolverDataset())
	trip := &Trip{VersionID: 99, DayAttributeID: 10}
	got, err := r.TripDates(trip)
	if err != nil {
		t.Fatalf("TripDates error: %s", err)
	}
	if len(got) != 0 {
		t.Errorf("trip of unknown version has %d dates, want none", len(got))
	}
}

func TestResolverTripValidOn(t *testing.T) {
	ds := resolverDataset()
	r := NewResolver(ds)

	trip := &Trip{
		VersionID:      1,
		DayAttributeID: 10,
		Restriction:    &ds.Restrictions[0],
	}
	for _, tc := range []struct {
		y, d int
		want bool
	}{
		{2024, 1, true},  // day attribute and restriction
		{2024, 2, true},  // day attribute and restriction
		{2024, 3, false}, // restriction only
		{2024, 8, false}, // day attribute only
		{2024, 15, false},
	} {
		got, err := r.TripValidOn(trip, NewDate(tc.y, 1, tc.d))
		if err != nil {
			t.Fatalf("TripValidOn error: %s", err)
		}
		if got != tc.want {
			t.Errorf("TripValidOn(%d-01-%02d) = %t, want %t", tc.y, tc.d, got, tc.want)
		}
	}
}

func TestResolverTripsValidOn(t *testing.T) {
	ds := resolverDataset()
	ds.Trips = []Trip{
		{VersionID: 1, Line: 5, ID: 100, DayAttributeID: 10},
		{VersionID: 1, Line: 5, ID: 101, DayAttributeID: 10, Restriction: &ds.Restrictions[0]},
	}
	r := NewResolver(ds)

	got, err := r.TripsValidOn(NewDate(2024, 1, 8))
	if err != nil {
		t.Fatalf("TripsValidOn error: %s", err)
	}
	if len(got) != 1 || got[0].ID != 100 {
		t.Fatalf("TripsValidOn(Jan 8) returned %d trips, want only the unrestricted one", len(got))
	}

	got, err = r.TripsValidOn(NewDate(2024, 1, 2))
	if err != nil {
		t.Fatalf("TripsValidOn error: %s", err)
	}
	if len(got) != 2 {
		t.Fatalf("TripsValidOn(Jan 2) returned %d trips, want 2", len(got))
	}
}

func TestResolverCalendar(t *testing.T) {
	r := NewResolver(resolverDataset())
	cal := r.Calendar(1)
	if cal == nil {
		t.Fatal("Calendar(1) is nil")
	}
	if cal.VersionID() != 1 {
		t.Errorf("Calendar(1).VersionID() = %d", cal.VersionID())
	}
	if r.Calendar(99) != nil {
		t.Errorf("Calendar(99) is not nil")
	}
}
