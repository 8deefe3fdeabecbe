package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3d9/dino2"
	"github.com/d3d9/dino2/export"
)

func durPtr(d time.Duration) *time.Duration { return &d }
func intPtr(v int) *int                     { return &v }

// exportDataset wires a minimal dataset by hand: one course of line 5 over two
// stops, one trip running on January 1st and 2nd, and the link between the
// stops.
func exportDataset() *dino2.Dataset {
	ds := &dino2.Dataset{
		Versions: []dino2.Version{
			{ID: 1, DateFrom: dino2.NewDate(2024, 1, 1), DateTo: dino2.NewDate(2024, 12, 31)},
		},
		DayTypes: []dino2.DayType{
			{VersionID: 1, ID: 1, Abbr: "Mo"},
			{VersionID: 1, ID: 2, Abbr: "Di"},
		},
		DayAttributes: []dino2.DayAttribute{{VersionID: 1, ID: 10}},
		DayGroupings: []dino2.DayGrouping{
			{VersionID: 1, DayTypeID: 1, DayAttrID: 10},
			{VersionID: 1, DayTypeID: 2, DayAttrID: 10},
		},
		CalendarDays: []dino2.CalendarDay{
			{VersionID: 1, Day: dino2.NewDate(2024, 1, 1), DayTypeID: 1},
			{VersionID: 1, Day: dino2.NewDate(2024, 1, 2), DayTypeID: 2},
		},
		Stops: []dino2.Stop{
			{VersionID: 1, ID: 10, Name: "Wuppertal Hbf", NameNoLoc: "Hbf", Place: "Wuppertal", FareZoneIDs: []int{1, 2}},
			{VersionID: 1, ID: 20, Name: "Wuppertal Endstelle", NameNoLoc: "Endstelle", Place: "Wuppertal"},
		},
		StopPoints: []dino2.StopPoint{
			{VersionID: 1, StopID: 10, ID: 1, Name: "1", PosX: "7.10", PosY: "51.10"},
			{VersionID: 1, StopID: 20, ID: 1, Name: "1", PosX: "7.20", PosY: "51.20"},
		},
		Links: []dino2.Link{
			{
				VersionID: 1, ID: 1,
				FromStopID: 10, FromPointID: intPtr(1), ToStopID: 20, ToPointID: intPtr(1),
				Geometry: []dino2.LinkPoint{
					{ConsecPtNr: 1, PosX: "7.10", PosY: "51.10"},
					{ConsecPtNr: 2, PosX: "7.20", PosY: "51.20"},
				},
			},
		},
	}
	ds.Stops[0].Points = []*dino2.StopPoint{&ds.StopPoints[0]}
	ds.Stops[1].Points = []*dino2.StopPoint{&ds.StopPoints[1]}

	ds.Courses = []dino2.Course{{VersionID: 1, Line: 5, ID: "1", LineDir: 1, Name: "Linie 5"}}
	course := &ds.Courses[0]
	course.Stops = []*dino2.CourseStop{
		{VersionID: 1, Line: 5, CourseID: "1", LineDir: 1, ConsecStopNr: 1, StopID: 10, StopPointID: 1,
			Course: course, Stop: &ds.Stops[0], StopPoint: &ds.StopPoints[0]},
		{VersionID: 1, Line: 5, CourseID: "1", LineDir: 1, ConsecStopNr: 2, StopID: 20, StopPointID: 1,
			Length: intPtr(1000), Course: course, Stop: &ds.Stops[1], StopPoint: &ds.StopPoints[1]},
	}
	course.StopTimings = []*dino2.CourseStopTiming{
		{VersionID: 1, ConsecStopNr: 1, TimingGroup: 1, TimeToStop: durPtr(0),
			Course: course, CourseStop: course.Stops[0]},
		{VersionID: 1, ConsecStopNr: 2, TimingGroup: 1, TimeToStop: durPtr(5 * time.Minute), StoppingTime: time.Minute,
			Course: course, CourseStop: course.Stops[1]},
	}
	ds.Trips = []dino2.Trip{
		{
			VersionID: 1, Line: 5, CourseID: "1", LineDir: 1, TimingGroup: 1, ID: 100,
			DepartureTime:  8 * time.Hour,
			DayAttributeID: 10,
			Course:         course,
			DepStop:        &ds.Stops[0],
			ArrStop:        &ds.Stops[1],
			StopTimings:    course.StopTimings,
		},
	}
	course.Trips = []*dino2.Trip{&ds.Trips[0]}
	return ds
}

func TestStops(t *testing.T) {
	ds := exportDataset()
	var buf bytes.Buffer
	require.NoError(t, export.Stops(ds, &buf))
	want := strings.Join([]string{
		"version;stopid;stopname;placename;stopshortname;stopifopt;areaid;areaname;areaifopt;posid;posname;posifopt;X;Y;farezones",
		"1;10;Wuppertal Hbf;Wuppertal;;;;;;1;1;;7.10;51.10;1,2",
		"1;20;Wuppertal Endstelle;Wuppertal;;;;;;1;1;;7.20;51.20;",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestCourses(t *testing.T) {
	ds := exportDataset()
	dir := t.TempDir()
	require.NoError(t, export.Courses(ds, dir, export.CoursesOptions{}))

	fname := filepath.Join(dir, "dino_Linie 5_1_Hbf_Endstelle.csv")
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "1;;Hbf\n2;;Endstelle\n", string(data))
}

func TestCoursesFullNames(t *testing.T) {
	ds := exportDataset()
	dir := t.TempDir()
	require.NoError(t, export.Courses(ds, dir, export.CoursesOptions{FullName: true}))

	data, err := os.ReadFile(filepath.Join(dir, "dino_Linie 5_1_Hbf_Endstelle.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Wuppertal Hbf")
}

func TestCoursesLineFilter(t *testing.T) {
	ds := exportDataset()
	dir := t.TempDir()
	require.NoError(t, export.Courses(ds, dir, export.CoursesOptions{Lines: []int{99}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTripsForDate(t *testing.T) {
	ds := exportDataset()
	r := dino2.NewResolver(ds)
	ix := dino2.NewLinkIndex(ds)
	var buf bytes.Buffer
	require.NoError(t, export.TripsForDate(ds, r, ix, dino2.NewDate(2024, 1, 1), nil, &buf))

	base := dino2.NewDate(2024, 1, 1).Unix() + 8*3600
	want := strings.Join([]string{
		"lineid;linesymbol;from;to;startt;endt;tripid;wkt",
		"5;Linie 5;Wuppertal Hbf;Wuppertal Endstelle;28800;29160;100;" +
			"MULTILINESTRING M ((7.10 51.10 " + itoa(base) + ", 7.20 51.20 " + itoa(base+300) + "))",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTripsForDateOffDay(t *testing.T) {
	ds := exportDataset()
	r := dino2.NewResolver(ds)
	ix := dino2.NewLinkIndex(ds)
	var buf bytes.Buffer
	require.NoError(t, export.TripsForDate(ds, r, ix, dino2.NewDate(2024, 1, 8), nil, &buf))
	assert.Equal(t, "lineid;linesymbol;from;to;startt;endt;tripid;wkt\n", buf.String())
}

func TestTripsForDateMissingLink(t *testing.T) {
	ds := exportDataset()
	ds.Links = nil
	r := dino2.NewResolver(ds)
	ix := dino2.NewLinkIndex(ds)
	var buf bytes.Buffer
	require.NoError(t, export.TripsForDate(ds, r, ix, dino2.NewDate(2024, 1, 1), nil, &buf))
	// The trip is still exported, only its wkt column stays empty.
	assert.Contains(t, buf.String(), "5;Linie 5;Wuppertal Hbf;Wuppertal Endstelle;28800;29160;100;\n")
}

func TestLineStats(t *testing.T) {
	ds := exportDataset()
	r := dino2.NewResolver(ds)
	var buf bytes.Buffer
	require.NoError(t, export.LineStats(ds, r, &buf))

	// One trip over a 1 km course, running on two days.
	want := strings.Join([]string{
		"version;line;course;km",
		"1;5;1;2.00",
		"1;5;total;2.00",
		"1;total;;2.00",
		"total;;;2.00",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestDepartures(t *testing.T) {
	ds := exportDataset()
	r := dino2.NewResolver(ds)
	var buf bytes.Buffer
	require.NoError(t, export.Departures(ds, r, &ds.Stops[0], dino2.NewDate(2024, 1, 1), 3, &buf))

	want := strings.Join([]string{
		"date;time;plat;linenum;direction",
		"2024-01-01;08:00:00;1;Linie 5;Wuppertal Endstelle",
		"2024-01-02;08:00:00;1;Linie 5;Wuppertal Endstelle",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestDeparturesLastStopExcluded(t *testing.T) {
	ds := exportDataset()
	r := dino2.NewResolver(ds)
	var buf bytes.Buffer
	require.NoError(t, export.Departures(ds, r, &ds.Stops[1], dino2.NewDate(2024, 1, 1), 3, &buf))
	assert.Equal(t, "date;time;plat;linenum;direction\n", buf.String())
}

func TestDepartureStats(t *testing.T) {
	ds := exportDataset()
	trip := &ds.Trips[0]
	var buf bytes.Buffer
	require.NoError(t, export.DepartureStats([]*dino2.Trip{trip, trip}, &buf))

	want := strings.Join([]string{
		"type;version;from/A;l-ifopt;to/B;r-ifopt;count",
		"from-to;1;Wuppertal Hbf;;Wuppertal Endstelle;;2",
		"between;1;Wuppertal Hbf;;Wuppertal Endstelle;;2",
		"from;1;Wuppertal Hbf;;;;2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
