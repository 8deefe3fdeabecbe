// Package export writes tabular reports over a parsed dataset: stop lists,
// per-course stop sequences, trips for a date, line statistics, and departure
// boards. All reports are semicolon-delimited CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/d3d9/dino2"
)

func newWriter(w io.Writer) *gocsv.SafeCSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return gocsv.NewSafeCSVWriter(cw)
}

// StopRow is one stop position of the stops report.
type StopRow struct {
	Version   int    `csv:"version"`
	StopID    int    `csv:"stopid"`
	StopName  string `csv:"stopname"`
	PlaceName string `csv:"placename"`
	ShortName string `csv:"stopshortname"`
	StopIFOPT string `csv:"stopifopt"`
	AreaID    string `csv:"areaid"`
	AreaName  string `csv:"areaname"`
	AreaIFOPT string `csv:"areaifopt"`
	PosID     int    `csv:"posid"`
	PosName   string `csv:"posname"`
	PosIFOPT  string `csv:"posifopt"`
	PosX      string `csv:"X"`
	PosY      string `csv:"Y"`
	FareZones string `csv:"farezones"`
}

// Stops writes one row per stop position.
func Stops(ds *dino2.Dataset, w io.Writer) error {
	var rows []StopRow
	for i := range ds.Stops {
		stop := &ds.Stops[i]
		for _, point := range stop.Points {
			row := StopRow{
				Version:   stop.VersionID,
				StopID:    stop.ID,
				StopName:  stop.Name,
				PlaceName: stop.Place,
				ShortName: stop.Abbr,
				StopIFOPT: stop.IFOPT,
				PosID:     point.ID,
				PosName:   point.Name,
				PosIFOPT:  point.IFOPT,
				PosX:      point.PosX,
				PosY:      point.PosY,
				FareZones: joinInts(stop.FareZoneIDs),
			}
			if point.Area != nil {
				row.AreaID = fmt.Sprintf("%d", point.Area.ID)
				row.AreaName = point.Area.Name
				row.AreaIFOPT = point.Area.IFOPT
			}
			rows = append(rows, row)
		}
	}
	return gocsv.MarshalCSV(&rows, newWriter(w))
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

// CourseStopRow is one stop of a per-course stop sequence file.
type CourseStopRow struct {
	ConsecStopNr int    `csv:"nr"`
	IFOPT        string `csv:"ifopt"`
	Name         string `csv:"name"`
}

// CoursesOptions configures the per-course export.
type CoursesOptions struct {
	// Lines restricts the export to the given line numbers.
	Lines []int
	// FullName exports the full stop name including the locality even
	// when a shorter name is available.
	FullName bool
}

// Courses writes one file per course into dir, named after the course and its
// terminal stops, each listing the course's stop sequence.
func Courses(ds *dino2.Dataset, dir string, opts CoursesOptions) error {
	lines := map[int]bool{}
	for _, l := range opts.Lines {
		lines[l] = true
	}
	for i := range ds.Courses {
		course := &ds.Courses[i]
		if len(lines) > 0 && !lines[course.Line] {
			continue
		}
		if len(course.Stops) == 0 {
			continue
		}
		from := terminalName(course.Stops[0])
		to := terminalName(course.Stops[len(course.Stops)-1])
		fname := filepath.Join(dir, fmt.Sprintf("dino_%s_%s_%s_%s.csv", course.Name, course.ID, from, to))
		if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
			return err
		}
		rows := make([]CourseStopRow, 0, len(course.Stops))
		for _, cs := range course.Stops {
			row := CourseStopRow{ConsecStopNr: cs.ConsecStopNr}
			if cs.StopPoint != nil && cs.StopPoint.IFOPT != "" {
				row.IFOPT = cs.StopPoint.IFOPT
			} else if cs.Stop != nil {
				row.IFOPT = cs.Stop.IFOPT
			}
			if cs.Stop != nil {
				if opts.FullName || cs.Stop.NameNoLoc == "" {
					row.Name = cs.Stop.Name
				} else {
					row.Name = cs.Stop.NameNoLoc
				}
			}
			rows = append(rows, row)
		}
		if err := writeFile(fname, &rows); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(fname string, rows interface{}) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalCSVWithoutHeaders(rows, newWriter(f)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// terminalName derives a short file-name-safe stop name, preferring the name
// without locality and falling back to the part after the place name.
func terminalName(cs *dino2.CourseStop) string {
	if cs.Stop == nil {
		return ""
	}
	name := cs.Stop.NameNoLoc
	if name == "" {
		name = cs.Stop.Name
		if parts := strings.SplitN(name, " ", 2); len(parts) == 2 {
			name = parts[1]
		}
	}
	return strings.NewReplacer("/", "", ".", "").Replace(name)
}

// TripRow is one trip of the trips-for-date report.
type TripRow struct {
	Line       int    `csv:"lineid"`
	LineSymbol string `csv:"linesymbol"`
	From       string `csv:"from"`
	To         string `csv:"to"`
	StartT     int    `csv:"startt"`
	EndT       int    `csv:"endt"`
	TripID     int    `csv:"tripid"`
	WKT        string `csv:"wkt"`
}

// TripsForDate writes all trips valid on the date, with start and end times
// as seconds since midnight and the trip path as measured well known text.
// Trips whose path cannot be resolved get an empty wkt column.
func TripsForDate(ds *dino2.Dataset, r *dino2.Resolver, ix *dino2.LinkIndex, date time.Time, lines []int, w io.Writer) error {
	lineSet := map[int]bool{}
	for _, l := range lines {
		lineSet[l] = true
	}
	trips, err := r.TripsValidOn(date)
	if err != nil {
		return err
	}
	var rows []TripRow
	for _, trip := range trips {
		if len(lineSet) > 0 && !lineSet[trip.Line] {
			continue
		}
		row := TripRow{
			Line:   trip.Line,
			StartT: int(trip.DepartureTime / time.Second),
			EndT:   int((trip.DepartureTime + trip.Duration()) / time.Second),
			TripID: trip.ID,
		}
		if trip.Course != nil {
			row.LineSymbol = trip.Course.Name
		}
		if trip.DepStop != nil {
			row.From = trip.DepStop.Name
		}
		if trip.ArrStop != nil {
			row.To = trip.ArrStop.Name
		}
		if wkt, err := trip.WKT(ix, date); err == nil {
			row.WKT = wkt
		}
		rows = append(rows, row)
	}
	return gocsv.MarshalCSV(&rows, newWriter(w))
}

// LineStatsRow is one aggregate of the line statistics report. Total rows
// carry "total" in the course (per line), line (per version), or version
// (grand total) column.
type LineStatsRow struct {
	Version string `csv:"version"`
	Line    string `csv:"line"`
	Course  string `csv:"course"`
	KM      string `csv:"km"`
}

// LineStats writes year-kilometers per version, line, and course: for every
// trip, the course length times the number of days the trip runs.
func LineStats(ds *dino2.Dataset, r *dino2.Resolver, w io.Writer) error {
	type tripRef struct {
		trip   *dino2.Trip
		course *dino2.Course
	}
	var refs []tripRef
	for i := range ds.Trips {
		t := &ds.Trips[i]
		if t.Course == nil {
			continue
		}
		refs = append(refs, tripRef{t, t.Course})
	}
	sort.SliceStable(refs, func(a, b int) bool {
		ta, tb := refs[a].trip, refs[b].trip
		if ta.VersionID != tb.VersionID {
			return ta.VersionID < tb.VersionID
		}
		if ta.Line != tb.Line {
			return ta.Line < tb.Line
		}
		if ta.LineDir != tb.LineDir {
			return ta.LineDir < tb.LineDir
		}
		return ta.CourseID < tb.CourseID
	})

	var rows []LineStatsRow
	var total, versionTotal, lineTotal, courseTotal float64
	flushCourse := func(version, line int, course string) {
		rows = append(rows, LineStatsRow{
			Version: fmt.Sprintf("%d", version),
			Line:    fmt.Sprintf("%d", line),
			Course:  course,
			KM:      fmt.Sprintf("%.2f", courseTotal),
		})
		lineTotal += courseTotal
		courseTotal = 0
	}
	flushLine := func(version, line int) {
		rows = append(rows, LineStatsRow{
			Version: fmt.Sprintf("%d", version),
			Line:    fmt.Sprintf("%d", line),
			Course:  "total",
			KM:      fmt.Sprintf("%.2f", lineTotal),
		})
		versionTotal += lineTotal
		lineTotal = 0
	}
	flushVersion := func(version int) {
		rows = append(rows, LineStatsRow{
			Version: fmt.Sprintf("%d", version),
			Line:    "total",
			KM:      fmt.Sprintf("%.2f", versionTotal),
		})
		total += versionTotal
		versionTotal = 0
	}
	for i, ref := range refs {
		dates, err := r.TripDates(ref.trip)
		if err != nil {
			return err
		}
		courseTotal += float64(len(dates)) * float64(ref.course.Length()) / 1000
		next := i + 1
		last := next == len(refs)
		if last || refs[next].trip.CourseID != ref.trip.CourseID ||
			refs[next].trip.Line != ref.trip.Line ||
			refs[next].trip.VersionID != ref.trip.VersionID {
			flushCourse(ref.trip.VersionID, ref.trip.Line, ref.trip.CourseID)
		}
		if last || refs[next].trip.Line != ref.trip.Line ||
			refs[next].trip.VersionID != ref.trip.VersionID {
			flushLine(ref.trip.VersionID, ref.trip.Line)
		}
		if last || refs[next].trip.VersionID != ref.trip.VersionID {
			flushVersion(ref.trip.VersionID)
		}
	}
	rows = append(rows, LineStatsRow{Version: "total", KM: fmt.Sprintf("%.2f", total)})
	return gocsv.MarshalCSV(&rows, newWriter(w))
}

// DepartureRow is one departure of a stop's departure board.
type DepartureRow struct {
	Date      string `csv:"date"`
	Time      string `csv:"time"`
	Platform  string `csv:"plat"`
	LineNum   string `csv:"linenum"`
	Direction string `csv:"direction"`
}

// Departures writes the departure board of a stop starting at day, covering
// days consecutive dates. Arrivals at the last stop of a course and
// pass-through stops are not departures and are left out.
func Departures(ds *dino2.Dataset, r *dino2.Resolver, stop *dino2.Stop, day time.Time, days int, w io.Writer) error {
	type departure struct {
		at time.Time
		ts dino2.TripStop
	}
	var deps []departure
	day = dino2.Midnight(day)
	for n := 0; n < days; n++ {
		date := day.AddDate(0, 0, n)
		trips, err := r.TripsValidOn(date)
		if err != nil {
			return err
		}
		for _, trip := range trips {
			if trip.VersionID != stop.VersionID {
				continue
			}
			tripStops, err := trip.TripStopsSimple()
			if err != nil {
				return err
			}
			for i, ts := range tripStops {
				if i == len(tripStops)-1 || ts.Stop != stop || ts.DepTime == nil {
					continue
				}
				deps = append(deps, departure{at: date.Add(*ts.DepTime), ts: ts})
			}
		}
	}
	sort.Slice(deps, func(a, b int) bool {
		return deps[a].at.Before(deps[b].at)
	})
	rows := make([]DepartureRow, 0, len(deps))
	for _, d := range deps {
		row := DepartureRow{
			Date: d.at.Format("2006-01-02"),
			Time: d.at.Format("15:04:05"),
		}
		if d.ts.StopPoint != nil {
			row.Platform = d.ts.StopPoint.Name
		}
		if d.ts.Trip.Course != nil {
			row.LineNum = d.ts.Trip.Course.Name
		}
		if d.ts.Trip.ArrStop != nil {
			row.Direction = d.ts.Trip.ArrStop.Name
		}
		rows = append(rows, row)
	}
	return gocsv.MarshalCSV(&rows, newWriter(w))
}

// DepartureStatsRow is one aggregate of the departure statistics report.
// The type column distinguishes directed pairs ("from-to"), undirected pairs
// ("between"), and per-stop totals ("from").
type DepartureStatsRow struct {
	Type      string `csv:"type"`
	Version   int    `csv:"version"`
	From      string `csv:"from/A"`
	FromIFOPT string `csv:"l-ifopt"`
	To        string `csv:"to/B"`
	ToIFOPT   string `csv:"r-ifopt"`
	Count     int    `csv:"count"`
}

// DepartureStats counts, over the given trips, how often each consecutive
// stop pair is served, both directed and direction-agnostic, plus total
// departures per stop.
func DepartureStats(trips []*dino2.Trip, w io.Writer) error {
	type pair struct {
		from, to *dino2.Stop
	}
	pairs := map[pair]int{}
	for _, trip := range trips {
		if trip.Course == nil {
			continue
		}
		cstops := trip.Course.Stops
		for i := 0; i+1 < len(cstops); i++ {
			pairs[pair{cstops[i].Stop, cstops[i+1].Stop}]++
		}
	}

	var rows []DepartureStatsRow
	appendSorted := func(m map[pair]int, typ string) {
		ordered := make([]pair, 0, len(m))
		for p := range m {
			ordered = append(ordered, p)
		}
		sort.Slice(ordered, func(a, b int) bool {
			if m[ordered[a]] != m[ordered[b]] {
				return m[ordered[a]] > m[ordered[b]]
			}
			return stopName(ordered[a].from)+stopName(ordered[a].to) <
				stopName(ordered[b].from)+stopName(ordered[b].to)
		})
		for _, p := range ordered {
			row := DepartureStatsRow{Type: typ, Count: m[p]}
			if p.from != nil {
				row.Version = p.from.VersionID
				row.From = p.from.Name
				row.FromIFOPT = p.from.IFOPT
			}
			if p.to != nil {
				row.To = p.to.Name
				row.ToIFOPT = p.to.IFOPT
			}
			rows = append(rows, row)
		}
	}
	appendSorted(pairs, "from-to")

	bidi := map[pair]int{}
	for p, count := range pairs {
		if _, ok := bidi[p]; ok {
			continue
		}
		if _, ok := bidi[pair{p.to, p.from}]; ok {
			continue
		}
		bidi[p] = count
		if reverse, ok := pairs[pair{p.to, p.from}]; ok && p.from != p.to {
			bidi[p] += reverse
		}
	}
	appendSorted(bidi, "between")

	fromTotals := map[pair]int{}
	for p, count := range pairs {
		fromTotals[pair{from: p.from}] += count
	}
	appendSorted(fromTotals, "from")

	return gocsv.MarshalCSV(&rows, newWriter(w))
}

func stopName(s *dino2.Stop) string {
	if s == nil {
		return ""
	}
	return s.Name
}
