package dino2

import (
	"errors"
	"testing"
	"time"
)

func TestLinkWKT(t *testing.T) {
	l := &Link{
		Geometry: []LinkPoint{
			{ConsecPtNr: 1, PosX: "7.100000", PosY: "51.100000"},
			{ConsecPtNr: 2, PosX: "7.150000", PosY: "51.120000"},
			{ConsecPtNr: 3, PosX: "7.200000", PosY: "51.200000"},
		},
	}
	want := "LINESTRING (7.100000 51.100000, 7.150000 51.120000, 7.200000 51.200000)"
	if got := l.WKT(); got != want {
		t.Errorf("WKT() = %q, want %q", got, want)
	}
}

func TestLinkWKTForcePointFallback(t *testing.T) {
	l := &Link{
		ForcePoints: []LinkPoint{
			{ConsecPtNr: 1, PosX: "7.1", PosY: "51.1"},
			{ConsecPtNr: 2, PosX: "7.2", PosY: "51.2"},
		},
	}
	want := "LINESTRING (7.1 51.1, 7.2 51.2)"
	if got := l.WKT(); got != want {
		t.Errorf("WKT() = %q, want %q", got, want)
	}
}

func TestLinkWKTMeasured(t *testing.T) {
	l := &Link{
		Geometry: []LinkPoint{
			{ConsecPtNr: 1, PosX: "7.1", PosY: "51.1"},
			{ConsecPtNr: 2, PosX: "7.15", PosY: "51.12"},
			{ConsecPtNr: 3, PosX: "7.2", PosY: "51.2"},
		},
	}
	want := "LINESTRING M (7.1 51.1 100, 7.15 51.12 150, 7.2 51.2 200)"
	if got := l.WKTMeasured(100, 200); got != want {
		t.Errorf("WKTMeasured(100, 200) = %q, want %q", got, want)
	}
}

func TestLinkWKTMeasuredSinglePoint(t *testing.T) {
	l := &Link{
		Geometry: []LinkPoint{{ConsecPtNr: 1, PosX: "7.1", PosY: "51.1"}},
	}
	want := "LINESTRING M (7.1 51.1 100)"
	if got := l.WKTMeasured(100, 200); got != want {
		t.Errorf("WKTMeasured(100, 200) = %q, want %q", got, want)
	}
}

func TestLinkIndexBetween(t *testing.T) {
	ds := &Dataset{
		Links: []Link{
			{VersionID: 1, ID: 1, FromStopID: 10, FromPointID: intPtr(1), ToStopID: 20, ToPointID: intPtr(2)},
			{VersionID: 1, ID: 2, FromStopID: 20, FromPointID: intPtr(2), ToStopID: 30, ToPointID: intPtr(1)},
		},
	}
	ix := NewLinkIndex(ds)

	l, err := ix.Between(1, 10, 1, 20, 2)
	if err != nil {
		t.Fatalf("Between error: %s", err)
	}
	if l.ID != 1 {
		t.Errorf("Between returned link %d, want 1", l.ID)
	}

	_, err = ix.Between(1, 10, 1, 30, 1)
	var notFound LinkNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Between error = %v, want LinkNotFoundError", err)
	}
	if notFound.FromStopID != 10 || notFound.ToStopID != 30 {
		t.Errorf("error names stops %d/%d, want 10/30", notFound.FromStopID, notFound.ToStopID)
	}
}

func TestLinkIndexFirstWins(t *testing.T) {
	ds := &Dataset{
		Links: []Link{
			{VersionID: 1, ID: 1, FromStopID: 10, FromPointID: intPtr(1), ToStopID: 20, ToPointID: intPtr(1)},
			{VersionID: 1, ID: 2, FromStopID: 10, FromPointID: intPtr(1), ToStopID: 20, ToPointID: intPtr(1)},
		},
	}
	ix := NewLinkIndex(ds)
	l, err := ix.Between(1, 10, 1, 20, 1)
	if err != nil {
		t.Fatalf("Between error: %s", err)
	}
	if l.ID != 1 {
		t.Errorf("Between returned link %d, want the first one", l.ID)
	}
}

func TestStopValidOn(t *testing.T) {
	s := &Stop{ValidFrom: NewDate(2024, 1, 1), ValidTo: NewDate(2024, 6, 30)}
	for _, tc := range []struct {
		date time.Time
		want bool
	}{
		{NewDate(2023, 12, 31), false},
		{NewDate(2024, 1, 1), true},
		{NewDate(2024, 6, 30), true},
		{NewDate(2024, 7, 1), false},
	} {
		if got := s.ValidOn(tc.date); got != tc.want {
			t.Errorf("ValidOn(%s) = %t, want %t", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}

	open := &Stop{}
	if !open.ValidOn(NewDate(1999, 1, 1)) {
		t.Errorf("stop without validity bounds rejects a date")
	}
}
