package dino2

import (
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/d3d9/dino2/din"
	"github.com/d3d9/dino2/warnings"
)

// ParseOptions configures dataset parsing.
type ParseOptions struct {
	// VersionIDs restricts the import to the given versions. Empty means
	// all versions.
	VersionIDs []int

	// Logger receives one event per parse warning. Defaults to a no-op
	// logger.
	Logger *zerolog.Logger

	// Today overrides the reference date used to pick between ambiguous
	// stop rows. Defaults to the current date.
	Today time.Time
}

type parser struct {
	dir    fs.FS
	enc    encoding.Encoding
	filter map[int]bool
	logger zerolog.Logger
	today  time.Time
	ds     *Dataset

	// Course stops, timings, and link points are owned by the parser
	// rather than the Dataset; they are reachable through Course and Link.
	network struct {
		courseStops []CourseStop
		stopTimings []CourseStopTiming
	}
	linkGeometry    []linkPointRow
	linkForcePoints []linkPointRow
}

// ParseDataset reads a DINO 2.1 dataset directory into a Dataset.
//
// Rows that cannot be imported, because required columns are missing, keys
// are duplicated, or references point nowhere, are skipped with a warning
// rather than failing the whole import. Only version.din is required; any
// other absent file contributes no rows.
func ParseDataset(dir fs.FS, opts ParseOptions) (*Dataset, error) {
	filter := map[int]bool{}
	for _, id := range opts.VersionIDs {
		filter[id] = true
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	enc, err := din.DatasetEncoding(dir, filter)
	if err != nil {
		return nil, err
	}
	p := &parser{
		dir:    dir,
		enc:    enc,
		filter: filter,
		logger: logger,
		today:  Midnight(today),
		ds:     &Dataset{},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.ds, nil
}

func (p *parser) warn(w warnings.ParseWarning) {
	p.ds.Warnings = append(p.ds.Warnings, w)
	p.logger.Warn().Str("file", string(w.File())).Msg(w.Error())
}

// keep reports whether a row of the given version passes the version filter.
func (p *parser) keep(version din.Int) bool {
	if !version.Valid {
		return false
	}
	return len(p.filter) == 0 || p.filter[version.Val]
}

// read unmarshals one file into out, tolerating its absence.
func (p *parser) read(name din.File, out interface{}) error {
	if !din.Exists(p.dir, name) {
		return nil
	}
	return din.Unmarshal(p.dir, name, p.enc, out)
}

func (p *parser) parse() error {
	steps := []func() error{
		p.parseVersions,
		p.parseCalendar,
		p.parseFares,
		p.parseLocations,
		p.parseOperational,
		p.parseNetwork,
		p.parseSchedule,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	p.wire()
	return nil
}

func (p *parser) parseVersions() error {
	var rows []versionRow
	if !din.Exists(p.dir, din.VersionFile) {
		return fmt.Errorf("%s not found, not a DINO dataset directory", din.VersionFile)
	}
	if err := din.Unmarshal(p.dir, din.VersionFile, p.enc, &rows); err != nil {
		return err
	}
	for _, row := range rows {
		if !p.keep(row.Version) {
			continue
		}
		p.ds.Versions = append(p.ds.Versions, Version{
			ID:         row.Version.Val,
			Desc:       string(row.Text),
			Period:     string(row.Period),
			PeriodName: string(row.PeriodName),
			DateFrom:   row.DateFrom.Time,
			DateTo:     row.DateTo.Time,
			Net:        string(row.Net),
			Priority:   row.Priority.Ptr(),
		})
	}
	return nil
}

func (p *parser) parseCalendar() error {
	var dayTypes []dayTypeRow
	if err := p.read(din.DayTypeFile, &dayTypes); err != nil {
		return err
	}
	for _, row := range dayTypes {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		p.ds.DayTypes = append(p.ds.DayTypes, DayType{
			VersionID: row.Version.Val,
			ID:        row.ID.Val,
			Text:      string(row.Text),
			Abbr:      string(row.Abbr),
		})
	}

	var dayAttrs []dayAttributeRow
	if err := p.read(din.DayAttributeFile, &dayAttrs); err != nil {
		return err
	}
	for _, row := range dayAttrs {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		p.ds.DayAttributes = append(p.ds.DayAttributes, DayAttribute{
			VersionID: row.Version.Val,
			ID:        row.ID.Val,
			Text:      string(row.Text),
			Abbr:      string(row.Abbr),
		})
	}

	var groupings []dayGroupingRow
	if err := p.read(din.DayGroupingFile, &groupings); err != nil {
		return err
	}
	for _, row := range groupings {
		if !p.keep(row.Version) || !row.DayTypeID.Valid || !row.DayAttrID.Valid {
			continue
		}
		p.ds.DayGroupings = append(p.ds.DayGroupings, DayGrouping{
			VersionID: row.Version.Val,
			DayTypeID: row.DayTypeID.Val,
			DayAttrID: row.DayAttrID.Val,
		})
	}

	var days []calendarDayRow
	if err := p.read(din.CalendarDayFile, &days); err != nil {
		return err
	}
	for _, row := range days {
		if !p.keep(row.Version) || row.Day.IsZero() || !row.DayTypeID.Valid {
			continue
		}
		p.ds.CalendarDays = append(p.ds.CalendarDays, CalendarDay{
			VersionID: row.Version.Val,
			Day:       Midnight(row.Day.Time),
			DayTypeID: row.DayTypeID.Val,
			Text:      string(row.Text),
		})
	}

	var restrictions []restrictionRow
	if err := p.read(din.ServiceRestrictionFile, &restrictions); err != nil {
		return err
	}
	for _, row := range restrictions {
		if !p.keep(row.Version) {
			continue
		}
		if row.ID == "" || row.Daystring == "" || row.DateFrom.IsZero() || row.DateUntil.IsZero() {
			p.warn(warnings.MissingColumns{
				InFile:      din.ServiceRestrictionFile,
				RowKey:      fmt.Sprintf("(%d, %s)", row.Version.Val, row.ID),
				MissingKeys: []string{"RESTRICTION", "RESTRICTION_DAYS", "DATE_FROM", "DATE_UNTIL"},
			})
			continue
		}
		p.ds.Restrictions = append(p.ds.Restrictions, Restriction{
			VersionID: row.Version.Val,
			ID:        string(row.ID),
			Line:      row.Line.Ptr(),
			Text: string(row.Text1) + string(row.Text2) + string(row.Text3) +
				string(row.Text4) + string(row.Text5),
			Daystring: string(row.Daystring),
			DateFrom:  Midnight(row.DateFrom.Time),
			DateUntil: Midnight(row.DateUntil.Time),
		})
	}
	return nil
}

func (p *parser) parseFares() error {
	var zones []fareZoneRow
	if err := p.read(din.FareZoneFile, &zones); err != nil {
		return err
	}
	for _, row := range zones {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		p.ds.FareZones = append(p.ds.FareZones, FareZone{
			VersionID: row.Version.Val,
			ID:        row.ID.Val,
			Name:      string(row.Name),
			Neutral:   row.Neutral.Ptr(),
			Color:     row.Color.Ptr(),
		})
	}

	var neighbours []neighbourFareZoneRow
	if err := p.read(din.NeighbourFareZoneFile, &neighbours); err != nil {
		return err
	}
	for _, row := range neighbours {
		if !p.keep(row.Version) || !row.FareZoneID.Valid {
			continue
		}
		p.ds.NeighbourFareZones = append(p.ds.NeighbourFareZones, NeighbourFareZone{
			VersionID:   row.Version.Val,
			FareZoneID:  row.FareZoneID.Val,
			NeighbourID: row.NeighbourID.Ptr(),
		})
	}
	return nil
}

// dedupStops drops ambiguous stop rows: among rows sharing (version, id),
// the rows valid today are kept, or failing that the last row.
func (p *parser) dedupStops(rows []stopRow) []stopRow {
	type key struct {
		version, id int
	}
	groups := map[key][]int{}
	var order []key
	for i, row := range rows {
		k := key{row.Version.Val, row.ID.Val}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}
	var out []stopRow
	for _, k := range order {
		idxs := groups[k]
		if len(idxs) == 1 {
			out = append(out, rows[idxs[0]])
			continue
		}
		validToday := idxs[:0:0]
		for _, i := range idxs {
			row := rows[i]
			if !row.ValidFrom.IsZero() && p.today.Before(Midnight(row.ValidFrom.Time)) {
				continue
			}
			if !row.ValidTo.IsZero() && p.today.After(Midnight(row.ValidTo.Time)) {
				continue
			}
			validToday = append(validToday, i)
		}
		if len(validToday) == 0 {
			validToday = idxs[len(idxs)-1:]
		}
		for _, i := range validToday {
			out = append(out, rows[i])
		}
		p.warn(warnings.DuplicateKey{
			InFile: din.StopFile,
			RowKey: fmt.Sprintf("(%d, %d)", k.version, k.id),
		})
	}
	return out
}

func (p *parser) parseLocations() error {
	var stops []stopRow
	if err := p.read(din.StopFile, &stops); err != nil {
		return err
	}
	kept := stops[:0:0]
	for _, row := range stops {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		kept = append(kept, row)
	}
	for _, row := range p.dedupStops(kept) {
		s := Stop{
			VersionID:          row.Version.Val,
			ID:                 row.ID.Val,
			Name:               string(row.Name),
			NameNoLoc:          string(row.NameNoLoc),
			Abbr:               string(row.Abbr),
			PosX:               string(row.PosX),
			PosY:               string(row.PosY),
			Place:              string(row.Place),
			OCC:                row.OCC.Ptr(),
			IFOPT:              string(row.IFOPT),
			PlaceID:            string(row.PlaceID),
			ValidFrom:          row.ValidFrom.Time,
			ValidTo:            row.ValidTo.Time,
			GISMOTFlag:         row.GISMOTFlag.Ptr(),
			IsCentralStop:      row.IsCentralStop.Ptr(),
			IsResponsibleStop:  row.IsResponsibleStop.Ptr(),
			InterchangeQuality: row.InterchangeQuality.Ptr(),
		}
		if v := row.Type.Ptr(); v != nil {
			t := StopType(*v)
			s.Type = &t
		}
		for _, fz := range []din.Int{row.FareZone1, row.FareZone2, row.FareZone3, row.FareZone4, row.FareZone5, row.FareZone6} {
			if v := fz.Ptr(); v != nil {
				s.FareZoneIDs = append(s.FareZoneIDs, *v)
			}
		}
		p.ds.Stops = append(p.ds.Stops, s)
	}

	var aliases []stopAliasPlacenameRow
	if err := p.read(din.StopAliasPlacenameFile, &aliases); err != nil {
		return err
	}
	for _, row := range aliases {
		if !p.keep(row.Version) || !row.StopID.Valid {
			continue
		}
		p.ds.StopAliasPlacenames = append(p.ds.StopAliasPlacenames, StopAliasPlacename{
			VersionID:  row.Version.Val,
			StopID:     row.StopID.Val,
			AliasPlace: string(row.AliasPlace),
			AliasOCC:   row.AliasOCC.Val,
		})
	}

	var addNames []stopAdditionalNameRow
	if err := p.read(din.StopAdditionalNameFile, &addNames); err != nil {
		return err
	}
	for _, row := range addNames {
		if !p.keep(row.Version) || !row.StopID.Valid {
			continue
		}
		p.ds.StopAdditionalNames = append(p.ds.StopAdditionalNames, StopAdditionalName{
			VersionID: row.Version.Val,
			StopID:    row.StopID.Val,
			Name:      string(row.Name),
			NameNoLoc: string(row.NameNoLoc),
		})
	}

	var areas []stopAreaRow
	if err := p.read(din.StopAreaFile, &areas); err != nil {
		return err
	}
	for _, row := range areas {
		if !p.keep(row.Version) || !row.StopID.Valid || !row.ID.Valid {
			continue
		}
		a := StopArea{
			VersionID:  row.Version.Val,
			StopID:     row.StopID.Val,
			ID:         row.ID.Val,
			PosX:       string(row.PosX),
			PosY:       string(row.PosY),
			Abbr:       string(row.Abbr),
			Name:       string(row.Name),
			Level:      row.Level.Ptr(),
			IFOPT:      string(row.IFOPT),
			GISMOTFlag: row.GISMOTFlag.Ptr(),
			ValidFrom:  row.ValidFrom.Time,
			ValidTo:    row.ValidTo.Time,
		}
		if v := row.Type.Ptr(); v != nil {
			t := StopAreaType(*v)
			a.Type = &t
		}
		p.ds.StopAreas = append(p.ds.StopAreas, a)
	}

	var points []stopPointRow
	if err := p.read(din.StopPointFile, &points); err != nil {
		return err
	}
	for _, row := range points {
		if !p.keep(row.Version) || !row.StopID.Valid || !row.ID.Valid {
			continue
		}
		sp := StopPoint{
			VersionID:      row.Version.Val,
			StopID:         row.StopID.Val,
			AreaID:         row.AreaID.Val,
			ID:             row.ID.Val,
			PosX:           string(row.PosX),
			PosY:           string(row.PosY),
			GISSegmentID:   row.GISSegmentID.Ptr(),
			GISSegmentDist: row.GISSegmentDist.Ptr(),
			StopRBLNr:      row.StopRBLNr.Ptr(),
			Name:           string(row.Name),
			PurposeTTB:     row.PurposeTTB.Ptr(),
			PurposeSTT:     row.PurposeSTT.Ptr(),
			PurposeJP:      row.PurposeJP.Ptr(),
			PurposeCBS:     row.PurposeCBS.Ptr(),
			IFOPT:          string(row.IFOPT),
			GISMOTFlag:     row.GISMOTFlag.Ptr(),
			ValidFrom:      row.ValidFrom.Time,
			ValidTo:        row.ValidTo.Time,
			PlatformHeight: row.PlatformHeight.Ptr(),
			RailCentreDist: row.RailCentreDist.Ptr(),
			HasMobileRamp:  row.HasMobileRamp.Ptr(),
			BoardingSpace:  row.BoardingSpace.Ptr(),
		}
		if v := row.StreetAccess.Ptr(); v != nil {
			sa := StreetAccess(*v)
			sp.StreetAccess = &sa
		}
		p.ds.StopPoints = append(p.ds.StopPoints, sp)
	}

	var links []linkRow
	if err := p.read(din.LinkFile, &links); err != nil {
		return err
	}
	for _, row := range links {
		if !p.keep(row.Version) || !row.ID.Valid || !row.FromStopID.Valid || !row.ToStopID.Valid {
			continue
		}
		p.ds.Links = append(p.ds.Links, Link{
			VersionID:   row.Version.Val,
			ID:          row.ID.Val,
			BranchID:    row.BranchID.Val,
			FromStopID:  row.FromStopID.Val,
			FromAreaID:  row.FromAreaID.Ptr(),
			FromPointID: row.FromPointID.Ptr(),
			ToStopID:    row.ToStopID.Val,
			ToAreaID:    row.ToAreaID.Ptr(),
			ToPointID:   row.ToPointID.Ptr(),
			Length:      row.Length.Ptr(),
			GISLength:   row.GISLength.Ptr(),
		})
	}

	if err := p.read(din.LinkGeometryFile, &p.linkGeometry); err != nil {
		return err
	}
	return p.read(din.LinkForcePointFile, &p.linkForcePoints)
}

func (p *parser) parseOperational() error {
	var branches []branchRow
	if err := p.read(din.BranchFile, &branches); err != nil {
		return err
	}
	for _, row := range branches {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		p.ds.Branches = append(p.ds.Branches, Branch{
			VersionID: row.Version.Val,
			ID:        row.ID.Val,
			Abbr:      string(row.Abbr),
			Name:      string(row.Name),
		})
	}

	var operators []operatorRow
	if err := p.read(din.OperatorFile, &operators); err != nil {
		return err
	}
	for _, row := range operators {
		if !p.keep(row.Version) || row.ID == "" {
			continue
		}
		p.ds.Operators = append(p.ds.Operators, Operator{
			VersionID:       row.Version.Val,
			ID:              string(row.ID),
			DefaultBranchID: row.DefaultBranchID.Ptr(),
			Abbr:            string(row.Abbr),
			Name:            string(row.Name),
			PubAbbr:         string(row.PubAbbr),
			FullName:        string(row.FullName),
			TradingName:     string(row.TradingName),
			VATRegistered:   row.VATRegistered.Ptr(),
		})
	}

	var offices []operatorBranchOfficeRow
	if err := p.read(din.OperatorBranchOfficeFile, &offices); err != nil {
		return err
	}
	for _, row := range offices {
		if !p.keep(row.Version) || row.OperatorID == "" || row.ID == "" {
			continue
		}
		p.ds.OperatorBranchOffices = append(p.ds.OperatorBranchOffices, OperatorBranchOffice{
			VersionID:      row.Version.Val,
			OperatorID:     string(row.OperatorID),
			ID:             string(row.ID),
			InternalPhone:  string(row.InternalPhone),
			PublicPhone:    string(row.PublicPhone),
			Fax:            string(row.Fax),
			Address:        string(row.Address),
			ContactAddress: string(row.ContactAddress),
			URL:            string(row.URL),
		})
	}

	var mots []meansOfTransportRow
	if err := p.read(din.MeansOfTransportFile, &mots); err != nil {
		return err
	}
	for _, row := range mots {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		p.ds.MeansOfTransport = append(p.ds.MeansOfTransport, MeansOfTransportDesc{
			VersionID: row.Version.Val,
			ID:        row.ID.Val,
			Name:      string(row.Name),
			TMOT:      TransferMOT(row.TMOT.Val),
		})
	}

	var vehTypes []vehicleTypeRow
	if err := p.read(din.VehicleTypeFile, &vehTypes); err != nil {
		return err
	}
	for _, row := range vehTypes {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		vt := VehicleType{
			VersionID:         row.Version.Val,
			ID:                row.ID.Val,
			Seats:             row.Seats.Ptr(),
			Straps:            row.Straps.Ptr(),
			PlacesForDisabled: row.PlacesForDisabled.Ptr(),
			Desc:              string(row.Desc),
			Abbr:              string(row.Abbr),
			DoorWidth:         row.DoorWidth.Ptr(),
			Width:             row.Width.Ptr(),
			Height:            row.Height.Ptr(),
		}
		if v := row.AccessEquip.Ptr(); v != nil {
			ae := AccessibilityEquipment(*v)
			vt.AccessibilityEquipment = &ae
		}
		p.ds.VehicleTypes = append(p.ds.VehicleTypes, vt)
	}

	var vdts []vehicleDestinationTextRow
	if err := p.read(din.VehicleDestinationTextFile, &vdts); err != nil {
		return err
	}
	for _, row := range vdts {
		if !p.keep(row.Version) || !row.ID.Valid {
			continue
		}
		p.ds.DestinationTexts = append(p.ds.DestinationTexts, VehicleDestinationText{
			VersionID:   row.Version.Val,
			BranchID:    row.BranchID.Ptr(),
			ID:          row.ID.Val,
			DriverText1: string(row.DriverText1),
			DriverText2: string(row.DriverText2),
			FrontText1:  string(row.FrontText1),
			FrontText2:  string(row.FrontText2),
			FrontText3:  string(row.FrontText3),
			FrontText4:  string(row.FrontText4),
			SideText1:   string(row.SideText1),
			SideText2:   string(row.SideText2),
			SideText3:   string(row.SideText3),
			SideText4:   string(row.SideText4),
			Name:        string(row.Name),
			ShortName:   string(row.ShortName),
		})
	}
	return nil
}

func (p *parser) parseNetwork() error {
	var courses []courseRow
	if err := p.read(din.LineFile, &courses); err != nil {
		return err
	}
	for _, row := range courses {
		if !p.keep(row.Version) || !row.Line.Valid || row.ID == "" || !row.LineDir.Valid {
			continue
		}
		c := Course{
			VersionID:              row.Version.Val,
			BranchID:               row.BranchID.Val,
			Line:                   row.Line.Val,
			ID:                     string(row.ID),
			LineDir:                row.LineDir.Val,
			Name:                   string(row.Name),
			LastMod:                string(row.LastMod),
			MOTID:                  row.MOTID.Ptr(),
			ValidFrom:              row.ValidFrom.Time,
			ValidTo:                row.ValidTo.Time,
			OperatorID:             string(row.OperatorID),
			OperatorBranchOfficeID: string(row.OperatorBranchOfficeID),
			Type:                   row.Type.Ptr(),
			GlobalID:               string(row.GlobalID),
		}
		if row.BikeRule.Valid {
			// -1 is a meaningful value here (no bicycle carriage).
			br := BikeRule(row.BikeRule.Val)
			c.BikeRule = &br
		}
		p.ds.Courses = append(p.ds.Courses, c)
	}

	var stops []courseStopRow
	if err := p.read(din.RouteFile, &stops); err != nil {
		return err
	}
	for _, row := range stops {
		if !p.keep(row.Version) || !row.Line.Valid || !row.ConsecStopNr.Valid {
			continue
		}
		p.network.courseStops = append(p.network.courseStops, CourseStop{
			VersionID:    row.Version.Val,
			Line:         row.Line.Val,
			CourseID:     string(row.CourseID),
			LineDir:      row.LineDir.Val,
			ConsecStopNr: row.ConsecStopNr.Val,
			StopID:       row.StopID.Val,
			StopPointID:  row.StopPointID.Val,
			Type:         StopPointType(row.Type.Val),
			Length:       row.Length.Ptr(),
		})
	}

	var timings []courseStopTimingRow
	if err := p.read(din.TimingPatternFile, &timings); err != nil {
		return err
	}
	for _, row := range timings {
		if !p.keep(row.Version) || !row.Line.Valid || !row.ConsecStopNr.Valid || !row.TimingGroup.Valid {
			continue
		}
		t := CourseStopTiming{
			VersionID:    row.Version.Val,
			Line:         row.Line.Val,
			CourseID:     string(row.CourseID),
			LineDir:      row.LineDir.Val,
			ConsecStopNr: row.ConsecStopNr.Val,
			TimingGroup:  row.TimingGroup.Val,
			TimeToStop:   row.TimeToStop.Ptr(),
		}
		if row.StoppingTime.Valid {
			t.StoppingTime = row.StoppingTime.Duration
		}
		p.network.stopTimings = append(p.network.stopTimings, t)
	}
	return nil
}

func (p *parser) parseSchedule() error {
	var notices []noticeRow
	if err := p.read(din.NoticeFile, &notices); err != nil {
		return err
	}
	for _, row := range notices {
		if !p.keep(row.Version) || row.ID == "" {
			continue
		}
		n := Notice{
			VersionID: row.Version.Val,
			Line:      row.Line.Ptr(),
			ID:        string(row.ID),
			Text:      string(row.Text),
		}
		if v := row.ContentType.Ptr(); v != nil {
			ct := NoticeContentType(*v)
			n.ContentType = &ct
		}
		if v := row.DisplayType.Ptr(); v != nil {
			dt := NoticeDisplayType(*v)
			n.DisplayType = &dt
		}
		p.ds.Notices = append(p.ds.Notices, n)
	}

	var trips []tripRow
	if err := p.read(din.TripFile, &trips); err != nil {
		return err
	}
	for _, row := range trips {
		if !p.keep(row.Version) || !row.Line.Valid || !row.ID.Valid {
			continue
		}
		if row.CourseID == "" || !row.LineDir.Valid || !row.TimingGroup.Valid || !row.DepartureTime.Valid || !row.DayAttributeID.Valid {
			p.warn(warnings.MissingColumns{
				InFile:      din.TripFile,
				RowKey:      fmt.Sprintf("(%d, %d, %d)", row.Version.Val, row.Line.Val, row.ID.Val),
				MissingKeys: []string{"STR_LINE_VAR", "LINE_DIR_NR", "TIMING_GROUP_NR", "DEPARTURE_TIME", "DAY_ATTRIBUTE_NR"},
			})
			continue
		}
		t := Trip{
			VersionID:              row.Version.Val,
			Line:                   row.Line.Val,
			CourseID:               string(row.CourseID),
			LineDir:                row.LineDir.Val,
			TimingGroup:            row.TimingGroup.Val,
			ID:                     row.ID.Val,
			IDPrinting:             row.IDPrinting.Ptr(),
			DepartureTime:          row.DepartureTime.Duration,
			DepStopID:              row.DepStopID.Val,
			DepStopPointID:         row.DepStopPointID.Val,
			ArrStopID:              row.ArrStopID.Val,
			ArrStopPointID:         row.ArrStopPointID.Val,
			VehicleTypeID:          row.VehicleTypeID.Ptr(),
			DayAttributeID:         row.DayAttributeID.Val,
			RestrictionID:          string(row.RestrictionID),
			RoundTripID:            row.RoundTripID.Ptr(),
			TrainID:                row.TrainID.Ptr(),
			TrainCategoryAbbr:      string(row.TrainCategoryAbbr),
			OperatorID:             string(row.OperatorID),
			OperatorBranchOfficeID: string(row.OperatorBranchOfficeID),
			GlobalID:               string(row.GlobalID),
			BikeAllowed:            row.BikeAllowed.Ptr(),
			PurposeID:              row.PurposeID.Ptr(),
		}
		t.NoticeIDs = [5]string{
			string(row.Notice1), string(row.Notice2), string(row.Notice3),
			string(row.Notice4), string(row.Notice5),
		}
		p.ds.Trips = append(p.ds.Trips, t)
	}

	var constraints []stopConstraintRow
	if err := p.read(din.ServiceConstraintFile, &constraints); err != nil {
		return err
	}
	for _, row := range constraints {
		if !p.keep(row.Version) || !row.Line.Valid || !row.TripID.Valid || !row.ConsecStopNr.Valid {
			continue
		}
		constraint, ok := NewStopConstraintType(string(row.Constraint))
		if !ok {
			p.warn(warnings.MissingColumns{
				InFile:      din.ServiceConstraintFile,
				RowKey:      fmt.Sprintf("(%d, %d, %d, %d)", row.Version.Val, row.Line.Val, row.TripID.Val, row.ConsecStopNr.Val),
				MissingKeys: []string{"SERVICE_INTERDICTION_CODE"},
			})
			continue
		}
		p.ds.Constraints = append(p.ds.Constraints, StopConstraint{
			VersionID:    row.Version.Val,
			Line:         row.Line.Val,
			CourseID:     string(row.CourseID),
			LineDir:      row.LineDir.Ptr(),
			TripID:       row.TripID.Val,
			ConsecStopNr: row.ConsecStopNr.Val,
			StopID:       row.StopID.Ptr(),
			StopPointID:  row.StopPointID.Ptr(),
			Constraint:   constraint,
		})
	}

	var vdtChanges []tripVDTRow
	if err := p.read(din.TripVDTFile, &vdtChanges); err != nil {
		return err
	}
	for _, row := range vdtChanges {
		if !p.keep(row.Version) || !row.Line.Valid || !row.TripID.Valid || !row.ConsecStopNr.Valid || !row.VDTID.Valid {
			continue
		}
		p.ds.VDTChanges = append(p.ds.VDTChanges, TripVDT{
			VersionID:    row.Version.Val,
			Period:       string(row.Period),
			Line:         row.Line.Val,
			CourseID:     string(row.CourseID),
			LineDir:      row.LineDir.Ptr(),
			TripID:       row.TripID.Val,
			ConsecStopNr: row.ConsecStopNr.Val,
			VDTID:        row.VDTID.Val,
		})
	}
	return nil
}

type stopKey struct {
	version, stop int
}

type stopChildKey struct {
	version, stop, id int
}

type idKey struct {
	version, id int
}

type strKey struct {
	version int
	id      string
}

type courseKey struct {
	version, line int
	id            string
	lineDir       int
}

type courseChildKey struct {
	course courseKey
	consec int
}

type tripIDKey struct {
	version, line, trip int
}

// wire resolves all cross references into pointers and sorts the ordered
// collections. Rows whose references point nowhere keep nil pointers; only
// trips without a course are dropped, everything after depends on it.
func (p *parser) wire() {
	ds := p.ds

	stops := map[stopKey]*Stop{}
	for i := range ds.Stops {
		s := &ds.Stops[i]
		k := stopKey{s.VersionID, s.ID}
		if _, ok := stops[k]; !ok {
			stops[k] = s
		}
	}
	areas := map[stopChildKey]*StopArea{}
	for i := range ds.StopAreas {
		a := &ds.StopAreas[i]
		areas[stopChildKey{a.VersionID, a.StopID, a.ID}] = a
		if s := stops[stopKey{a.VersionID, a.StopID}]; s != nil {
			a.Stop = s
			s.Areas = append(s.Areas, a)
		} else {
			p.warn(warnings.DanglingReference{
				InFile: din.StopAreaFile,
				RowKey: fmt.Sprintf("(%d, %d, %d)", a.VersionID, a.StopID, a.ID),
				Target: fmt.Sprintf("stop %d", a.StopID),
			})
		}
	}
	points := map[stopChildKey]*StopPoint{}
	for i := range ds.StopPoints {
		sp := &ds.StopPoints[i]
		points[stopChildKey{sp.VersionID, sp.StopID, sp.ID}] = sp
		if s := stops[stopKey{sp.VersionID, sp.StopID}]; s != nil {
			sp.Stop = s
			s.Points = append(s.Points, sp)
		}
		if a := areas[stopChildKey{sp.VersionID, sp.StopID, sp.AreaID}]; a != nil {
			sp.Area = a
			a.Points = append(a.Points, sp)
		}
	}
	for i := range ds.StopAliasPlacenames {
		ap := &ds.StopAliasPlacenames[i]
		if s := stops[stopKey{ap.VersionID, ap.StopID}]; s != nil {
			ap.Stop = s
			s.AliasPlacenames = append(s.AliasPlacenames, ap)
		}
	}
	for i := range ds.StopAdditionalNames {
		an := &ds.StopAdditionalNames[i]
		if s := stops[stopKey{an.VersionID, an.StopID}]; s != nil {
			an.Stop = s
			s.AdditionalNames = append(s.AdditionalNames, an)
		}
	}

	fareZones := map[idKey]*FareZone{}
	for i := range ds.FareZones {
		fz := &ds.FareZones[i]
		fareZones[idKey{fz.VersionID, fz.ID}] = fz
	}
	for _, n := range ds.NeighbourFareZones {
		if n.NeighbourID == nil {
			continue
		}
		fz := fareZones[idKey{n.VersionID, n.FareZoneID}]
		neighbour := fareZones[idKey{n.VersionID, *n.NeighbourID}]
		if fz != nil && neighbour != nil {
			fz.Neighbours = append(fz.Neighbours, neighbour)
		}
	}
	for i := range ds.Stops {
		s := &ds.Stops[i]
		for _, id := range s.FareZoneIDs {
			if fz := fareZones[idKey{s.VersionID, id}]; fz != nil {
				s.FareZones = append(s.FareZones, fz)
			}
		}
	}

	dayTypes := map[idKey]*DayType{}
	for i := range ds.DayTypes {
		dt := &ds.DayTypes[i]
		dayTypes[idKey{dt.VersionID, dt.ID}] = dt
	}
	dayAttrs := map[idKey]*DayAttribute{}
	for i := range ds.DayAttributes {
		da := &ds.DayAttributes[i]
		dayAttrs[idKey{da.VersionID, da.ID}] = da
	}
	for _, g := range ds.DayGroupings {
		da := dayAttrs[idKey{g.VersionID, g.DayAttrID}]
		dt := dayTypes[idKey{g.VersionID, g.DayTypeID}]
		if da != nil && dt != nil {
			da.DayTypes = append(da.DayTypes, dt)
		}
	}
	for i := range ds.CalendarDays {
		cd := &ds.CalendarDays[i]
		cd.DayType = dayTypes[idKey{cd.VersionID, cd.DayTypeID}]
	}

	restrictions := map[strKey][]*Restriction{}
	for i := range ds.Restrictions {
		r := &ds.Restrictions[i]
		k := strKey{r.VersionID, r.ID}
		restrictions[k] = append(restrictions[k], r)
	}
	notices := map[strKey][]*Notice{}
	for i := range ds.Notices {
		n := &ds.Notices[i]
		k := strKey{n.VersionID, n.ID}
		notices[k] = append(notices[k], n)
	}

	branches := map[idKey]*Branch{}
	for i := range ds.Branches {
		b := &ds.Branches[i]
		branches[idKey{b.VersionID, b.ID}] = b
	}
	operators := map[strKey]*Operator{}
	for i := range ds.Operators {
		op := &ds.Operators[i]
		operators[strKey{op.VersionID, op.ID}] = op
	}
	for i := range ds.OperatorBranchOffices {
		obo := &ds.OperatorBranchOffices[i]
		if op := operators[strKey{obo.VersionID, obo.OperatorID}]; op != nil {
			obo.Operator = op
			op.BranchOffices = append(op.BranchOffices, obo)
		}
	}
	mots := map[idKey]*MeansOfTransportDesc{}
	for i := range ds.MeansOfTransport {
		m := &ds.MeansOfTransport[i]
		mots[idKey{m.VersionID, m.ID}] = m
	}
	vehTypes := map[idKey]*VehicleType{}
	for i := range ds.VehicleTypes {
		vt := &ds.VehicleTypes[i]
		vehTypes[idKey{vt.VersionID, vt.ID}] = vt
	}
	vdts := map[idKey]*VehicleDestinationText{}
	for i := range ds.DestinationTexts {
		v := &ds.DestinationTexts[i]
		k := idKey{v.VersionID, v.ID}
		if _, ok := vdts[k]; !ok {
			vdts[k] = v
		}
	}

	for i := range ds.Links {
		l := &ds.Links[i]
		l.FromStop = stops[stopKey{l.VersionID, l.FromStopID}]
		l.ToStop = stops[stopKey{l.VersionID, l.ToStopID}]
		if l.FromPointID != nil {
			l.FromPoint = points[stopChildKey{l.VersionID, l.FromStopID, *l.FromPointID}]
		}
		if l.ToPointID != nil {
			l.ToPoint = points[stopChildKey{l.VersionID, l.ToStopID, *l.ToPointID}]
		}
		l.Branch = branches[idKey{l.VersionID, l.BranchID}]
	}
	p.wireLinkPoints()

	courses := map[courseKey]*Course{}
	for i := range ds.Courses {
		c := &ds.Courses[i]
		courses[courseKey{c.VersionID, c.Line, c.ID, c.LineDir}] = c
		c.Branch = branches[idKey{c.VersionID, c.BranchID}]
		if c.MOTID != nil {
			c.MOT = mots[idKey{c.VersionID, *c.MOTID}]
		}
		if c.OperatorID != "" {
			c.Operator = operators[strKey{c.VersionID, c.OperatorID}]
		}
		if c.Operator != nil && c.OperatorBranchOfficeID != "" {
			for _, obo := range c.Operator.BranchOffices {
				if obo.ID == c.OperatorBranchOfficeID {
					c.OperatorBranchOffice = obo
					break
				}
			}
		}
	}
	courseStops := map[courseChildKey]*CourseStop{}
	for i := range p.network.courseStops {
		cs := &p.network.courseStops[i]
		k := courseKey{cs.VersionID, cs.Line, cs.CourseID, cs.LineDir}
		c := courses[k]
		if c == nil {
			p.warn(warnings.DanglingReference{
				InFile: din.RouteFile,
				RowKey: fmt.Sprintf("(%d, %d, %s, %d, %d)", cs.VersionID, cs.Line, cs.CourseID, cs.LineDir, cs.ConsecStopNr),
				Target: fmt.Sprintf("course %d/%s/%d", cs.Line, cs.CourseID, cs.LineDir),
			})
			continue
		}
		cs.Course = c
		cs.Stop = stops[stopKey{cs.VersionID, cs.StopID}]
		cs.StopPoint = points[stopChildKey{cs.VersionID, cs.StopID, cs.StopPointID}]
		c.Stops = append(c.Stops, cs)
		courseStops[courseChildKey{k, cs.ConsecStopNr}] = cs
	}
	for i := range p.network.stopTimings {
		t := &p.network.stopTimings[i]
		k := courseKey{t.VersionID, t.Line, t.CourseID, t.LineDir}
		c := courses[k]
		if c == nil {
			p.warn(warnings.DanglingReference{
				InFile: din.TimingPatternFile,
				RowKey: fmt.Sprintf("(%d, %d, %s, %d, %d, %d)", t.VersionID, t.Line, t.CourseID, t.LineDir, t.ConsecStopNr, t.TimingGroup),
				Target: fmt.Sprintf("course %d/%s/%d", t.Line, t.CourseID, t.LineDir),
			})
			continue
		}
		t.Course = c
		t.CourseStop = courseStops[courseChildKey{k, t.ConsecStopNr}]
		c.StopTimings = append(c.StopTimings, t)
	}
	for i := range ds.Courses {
		c := &ds.Courses[i]
		sort.Slice(c.Stops, func(a, b int) bool {
			return c.Stops[a].ConsecStopNr < c.Stops[b].ConsecStopNr
		})
		sort.Slice(c.StopTimings, func(a, b int) bool {
			ta, tb := c.StopTimings[a], c.StopTimings[b]
			if ta.TimingGroup != tb.TimingGroup {
				return ta.TimingGroup < tb.TimingGroup
			}
			return ta.ConsecStopNr < tb.ConsecStopNr
		})
	}

	trips := map[tripIDKey]*Trip{}
	kept := ds.Trips[:0]
	for i := range ds.Trips {
		t := &ds.Trips[i]
		k := courseKey{t.VersionID, t.Line, t.CourseID, t.LineDir}
		c := courses[k]
		if c == nil {
			p.warn(warnings.DanglingReference{
				InFile: din.TripFile,
				RowKey: fmt.Sprintf("(%d, %d, %d)", t.VersionID, t.Line, t.ID),
				Target: fmt.Sprintf("course %d/%s/%d", t.Line, t.CourseID, t.LineDir),
			})
			continue
		}
		kept = append(kept, *t)
	}
	ds.Trips = kept
	for i := range ds.Trips {
		t := &ds.Trips[i]
		k := courseKey{t.VersionID, t.Line, t.CourseID, t.LineDir}
		c := courses[k]
		t.Course = c
		c.Trips = append(c.Trips, t)
		trips[tripIDKey{t.VersionID, t.Line, t.ID}] = t
		t.DepStop = stops[stopKey{t.VersionID, t.DepStopID}]
		t.DepStopPoint = points[stopChildKey{t.VersionID, t.DepStopID, t.DepStopPointID}]
		t.ArrStop = stops[stopKey{t.VersionID, t.ArrStopID}]
		t.ArrStopPoint = points[stopChildKey{t.VersionID, t.ArrStopID, t.ArrStopPointID}]
		if t.VehicleTypeID != nil {
			t.VehicleType = vehTypes[idKey{t.VersionID, *t.VehicleTypeID}]
		}
		t.DayAttribute = dayAttrs[idKey{t.VersionID, t.DayAttributeID}]
		if t.DayAttribute == nil {
			p.warn(warnings.DanglingReference{
				InFile: din.TripFile,
				RowKey: fmt.Sprintf("(%d, %d, %d)", t.VersionID, t.Line, t.ID),
				Target: fmt.Sprintf("day attribute %d", t.DayAttributeID),
			})
		}
		if t.RestrictionID != "" {
			t.Restriction = matchLine(restrictions[strKey{t.VersionID, t.RestrictionID}], t.Line)
			if t.Restriction == nil {
				p.warn(warnings.DanglingReference{
					InFile: din.TripFile,
					RowKey: fmt.Sprintf("(%d, %d, %d)", t.VersionID, t.Line, t.ID),
					Target: fmt.Sprintf("restriction %q", t.RestrictionID),
				})
			}
		}
		if t.OperatorID != "" {
			t.Operator = operators[strKey{t.VersionID, t.OperatorID}]
		}
		if t.Operator != nil && t.OperatorBranchOfficeID != "" {
			for _, obo := range t.Operator.BranchOffices {
				if obo.ID == t.OperatorBranchOfficeID {
					t.OperatorBranchOffice = obo
					break
				}
			}
		}
		for n, id := range t.NoticeIDs {
			if id != "" {
				t.noticeRefs[n] = matchNoticeLine(notices[strKey{t.VersionID, id}], t.Line)
			}
		}
		for _, timing := range c.StopTimings {
			if timing.TimingGroup == t.TimingGroup {
				t.StopTimings = append(t.StopTimings, timing)
			}
		}
	}

	for i := range ds.Constraints {
		sc := &ds.Constraints[i]
		t := trips[tripIDKey{sc.VersionID, sc.Line, sc.TripID}]
		if t == nil {
			p.warn(warnings.DanglingReference{
				InFile: din.ServiceConstraintFile,
				RowKey: fmt.Sprintf("(%d, %d, %d, %d)", sc.VersionID, sc.Line, sc.TripID, sc.ConsecStopNr),
				Target: fmt.Sprintf("trip %d", sc.TripID),
			})
			continue
		}
		sc.Trip = t
		sc.CourseStop = courseStops[courseChildKey{
			courseKey{t.VersionID, t.Line, t.CourseID, t.LineDir},
			sc.ConsecStopNr,
		}]
		t.Constraints = append(t.Constraints, sc)
	}
	for i := range ds.VDTChanges {
		tv := &ds.VDTChanges[i]
		t := trips[tripIDKey{tv.VersionID, tv.Line, tv.TripID}]
		if t == nil {
			p.warn(warnings.DanglingReference{
				InFile: din.TripVDTFile,
				RowKey: fmt.Sprintf("(%d, %d, %d, %d)", tv.VersionID, tv.Line, tv.TripID, tv.ConsecStopNr),
				Target: fmt.Sprintf("trip %d", tv.TripID),
			})
			continue
		}
		tv.Trip = t
		tv.VDT = vdts[idKey{tv.VersionID, tv.VDTID}]
		tv.CourseStop = courseStops[courseChildKey{
			courseKey{t.VersionID, t.Line, t.CourseID, t.LineDir},
			tv.ConsecStopNr,
		}]
		t.VDTChanges = append(t.VDTChanges, tv)
		if t.Course != nil {
			t.Course.VDTChanges = append(t.Course.VDTChanges, tv)
		}
	}
	for i := range ds.Trips {
		t := &ds.Trips[i]
		sort.Slice(t.Constraints, func(a, b int) bool {
			return t.Constraints[a].ConsecStopNr < t.Constraints[b].ConsecStopNr
		})
		sort.Slice(t.VDTChanges, func(a, b int) bool {
			return t.VDTChanges[a].ConsecStopNr < t.VDTChanges[b].ConsecStopNr
		})
	}
}

// wireLinkPoints distributes the geometry and force point rows onto their
// links, ordered by consecutive point number.
func (p *parser) wireLinkPoints() {
	links := map[idKey]*Link{}
	for i := range p.ds.Links {
		l := &p.ds.Links[i]
		k := idKey{l.VersionID, l.ID}
		if _, ok := links[k]; !ok {
			links[k] = l
		}
	}
	load := func(name din.File, rows []linkPointRow, assign func(l *Link, pt LinkPoint)) {
		for _, row := range rows {
			if !p.keep(row.Version) || !row.LinkID.Valid {
				continue
			}
			l := links[idKey{row.Version.Val, row.LinkID.Val}]
			if l == nil {
				p.warn(warnings.DanglingReference{
					InFile: name,
					RowKey: fmt.Sprintf("(%d, %d, %d)", row.Version.Val, row.LinkID.Val, row.ConsecPtNr.Val),
					Target: fmt.Sprintf("link %d", row.LinkID.Val),
				})
				continue
			}
			assign(l, LinkPoint{
				VersionID:  row.Version.Val,
				LinkID:     row.LinkID.Val,
				ConsecPtNr: row.ConsecPtNr.Val,
				PosX:       string(row.PosX),
				PosY:       string(row.PosY),
			})
		}
	}
	load(din.LinkGeometryFile, p.linkGeometry, func(l *Link, pt LinkPoint) {
		l.Geometry = append(l.Geometry, pt)
	})
	load(din.LinkForcePointFile, p.linkForcePoints, func(l *Link, pt LinkPoint) {
		l.ForcePoints = append(l.ForcePoints, pt)
	})
	for _, l := range links {
		sort.Slice(l.Geometry, func(a, b int) bool {
			return l.Geometry[a].ConsecPtNr < l.Geometry[b].ConsecPtNr
		})
		sort.Slice(l.ForcePoints, func(a, b int) bool {
			return l.ForcePoints[a].ConsecPtNr < l.ForcePoints[b].ConsecPtNr
		})
	}
}

// matchLine picks the restriction that applies to a line: an exact line match
// wins over a restriction without a line.
func matchLine(candidates []*Restriction, line int) *Restriction {
	var fallback *Restriction
	for _, r := range candidates {
		if r.Line != nil && *r.Line == line {
			return r
		}
		if r.Line == nil && fallback == nil {
			fallback = r
		}
	}
	return fallback
}

func matchNoticeLine(candidates []*Notice, line int) *Notice {
	var fallback *Notice
	for _, n := range candidates {
		if n.Line != nil && *n.Line == line {
			return n
		}
		if n.Line == nil && fallback == nil {
			fallback = n
		}
	}
	return fallback
}
