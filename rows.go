package dino2

import "github.com/d3d9/dino2/din"

// Row structs mirror the .din files column by column. Parsing maps them onto
// the model types and wires the cross references.

type versionRow struct {
	Version    din.Int  `csv:"VERSION"`
	Text       din.Text `csv:"VERSION_TEXT"`
	Period     din.Text `csv:"TIMETABLE_PERIOD"`
	PeriodName din.Text `csv:"TT_PERIOD_NAME"`
	DateFrom   din.Date `csv:"PERIOD_DATE_FROM"`
	DateTo     din.Date `csv:"PERIOD_DATE_TO"`
	Net        din.Text `csv:"NET_ID"`
	Priority   din.Int  `csv:"PERIOD_PRIORITY"`
}

type dayTypeRow struct {
	Version din.Int  `csv:"VERSION"`
	ID      din.Int  `csv:"DAY_TYPE_NR"`
	Text    din.Text `csv:"DAY_TYPE_TEXT"`
	Abbr    din.Text `csv:"STR_DAY_TYPE"`
}

type dayAttributeRow struct {
	Version din.Int  `csv:"VERSION"`
	ID      din.Int  `csv:"DAY_ATTRIBUTE_NR"`
	Text    din.Text `csv:"DAY_ATTRIBUTE_TEXT"`
	Abbr    din.Text `csv:"STR_DAY_ATTRIBUTE"`
}

type dayGroupingRow struct {
	Version   din.Int `csv:"VERSION"`
	DayTypeID din.Int `csv:"DAY_TYPE_NR"`
	DayAttrID din.Int `csv:"DAY_ATTRIBUTE_NR"`
}

type calendarDayRow struct {
	Version   din.Int  `csv:"VERSION"`
	Day       din.Date `csv:"DAY"`
	DayTypeID din.Int  `csv:"DAY_TYPE_NR"`
	Text      din.Text `csv:"DAY_TEXT"`
}

type restrictionRow struct {
	Version   din.Int  `csv:"VERSION"`
	ID        din.Text `csv:"RESTRICTION"`
	Text1     din.Text `csv:"RESTRICT_TEXT1"`
	Text2     din.Text `csv:"RESTRICT_TEXT2"`
	Text3     din.Text `csv:"RESTRICT_TEXT3"`
	Text4     din.Text `csv:"RESTRICT_TEXT4"`
	Text5     din.Text `csv:"RESTRICT_TEXT5"`
	Daystring din.Text `csv:"RESTRICTION_DAYS"`
	DateFrom  din.Date `csv:"DATE_FROM"`
	DateUntil din.Date `csv:"DATE_UNTIL"`
	Line      din.Int  `csv:"LINE_NR"`
}

type fareZoneRow struct {
	Version din.Int  `csv:"VERSION"`
	ID      din.Int  `csv:"FARE_ZONE_NR"`
	Name    din.Text `csv:"FARE_ZONE_LONG_NAME"`
	Neutral din.Bool `csv:"FARE_ZONE_TYPE"`
	Color   din.Int  `csv:"FARE_ZONE_COLOR"`
}

type neighbourFareZoneRow struct {
	Version     din.Int `csv:"VERSION"`
	FareZoneID  din.Int `csv:"FARE_ZONE"`
	NeighbourID din.Int `csv:"NEIGHBOUR_FARE_ZONE"`
}

type stopRow struct {
	Version            din.Int   `csv:"VERSION"`
	ID                 din.Int   `csv:"STOP_NR"`
	Type               din.Int   `csv:"STOP_TYPE"`
	Name               din.Text  `csv:"STOP_NAME"`
	NameNoLoc          din.Text  `csv:"STOP_NAME_WITHOUT_LOCALITY"`
	Abbr               din.Text  `csv:"STOP_SHORTNAME"`
	PosX               din.Coord `csv:"STOP_POS_X"`
	PosY               din.Coord `csv:"STOP_POS_Y"`
	Place              din.Text  `csv:"PLACE"`
	OCC                din.Int   `csv:"OCC"`
	FareZone1          din.Int   `csv:"FARE_ZONE1_NR"`
	FareZone2          din.Int   `csv:"FARE_ZONE2_NR"`
	FareZone3          din.Int   `csv:"FARE_ZONE3_NR"`
	FareZone4          din.Int   `csv:"FARE_ZONE4_NR"`
	FareZone5          din.Int   `csv:"FARE_ZONE5_NR"`
	FareZone6          din.Int   `csv:"FARE_ZONE6_NR"`
	IFOPT              din.Text  `csv:"GLOBAL_ID"`
	ValidFrom          din.Date  `csv:"VALID_FROM"`
	ValidTo            din.Date  `csv:"VALID_TO"`
	PlaceID            din.Text  `csv:"PLACE_ID"`
	GISMOTFlag         din.Int   `csv:"GIS_MOT_FLAG"`
	IsCentralStop      din.Bool  `csv:"IS_CENTRAL_STOP"`
	IsResponsibleStop  din.Bool  `csv:"IS_RESPONSIBLE_STOP"`
	InterchangeQuality din.Int   `csv:"INTERCHANGE_QUALITY"`
}

type stopAliasPlacenameRow struct {
	Version    din.Int  `csv:"VERSION"`
	StopID     din.Int  `csv:"STOP_NR"`
	AliasPlace din.Text `csv:"ALIAS_PLACE"`
	AliasOCC   din.Int  `csv:"ALIAS_OCC"`
}

type stopAdditionalNameRow struct {
	Version   din.Int  `csv:"VERSION"`
	StopID    din.Int  `csv:"STOP_NR"`
	Name      din.Text `csv:"ADD_STOP_NAME_WITH_LOCALITY"`
	NameNoLoc din.Text `csv:"ADD_STOP_NAME_WITHOUT_LOCALITY"`
}

type stopAreaRow struct {
	Version    din.Int   `csv:"VERSION"`
	StopID     din.Int   `csv:"STOP_NR"`
	ID         din.Int   `csv:"STOP_AREA_NR"`
	PosX       din.Coord `csv:"STOP_AREA_POS_X"`
	PosY       din.Coord `csv:"STOP_AREA_POS_Y"`
	Abbr       din.Text  `csv:"STOP_AREA_SHORT_NAME"`
	Name       din.Text  `csv:"STOP_AREA_LONG_NAME"`
	Level      din.Int   `csv:"STOP_AREA_LEVEL"`
	Type       din.Int   `csv:"STOP_AREA_TYPE"`
	IFOPT      din.Text  `csv:"GLOBAL_ID"`
	GISMOTFlag din.Int   `csv:"GIS_MOT_FLAG"`
	ValidFrom  din.Date  `csv:"VALID_FROM"`
	ValidTo    din.Date  `csv:"VALID_TO"`
}

type stopPointRow struct {
	Version        din.Int   `csv:"VERSION"`
	StopID         din.Int   `csv:"STOP_NR"`
	AreaID         din.Int   `csv:"STOP_AREA_NR"`
	ID             din.Int   `csv:"STOPPING_POINT_NR"`
	PosX           din.Coord `csv:"STOPPING_POINT_POS_X"`
	PosY           din.Coord `csv:"STOPPING_POINT_POS_Y"`
	GISSegmentID   din.Int   `csv:"SEGMENT_ID"`
	GISSegmentDist din.Int   `csv:"SEGMENT_DIST"`
	StopRBLNr      din.Int   `csv:"STOP_RBL_NR"`
	Name           din.Text  `csv:"STOPPING_POINT_SHORTNAME"`
	PurposeTTB     din.Bool  `csv:"PURPOSE_TTB"`
	PurposeSTT     din.Bool  `csv:"PURPOSE_STT"`
	PurposeJP      din.Bool  `csv:"PURPOSE_JP"`
	PurposeCBS     din.Bool  `csv:"PURPOSE_CBS"`
	IFOPT          din.Text  `csv:"GLOBAL_ID"`
	GISMOTFlag     din.Int   `csv:"GIS_MOT_FLAG"`
	ValidFrom      din.Date  `csv:"VALID_FROM"`
	ValidTo        din.Date  `csv:"VALID_TO"`
	PlatformHeight din.Int   `csv:"PLATFORM_HEIGHT"`
	RailCentreDist din.Int   `csv:"DISTANCE_TO_RAIL_CENTRE"`
	HasMobileRamp  din.Bool  `csv:"HAS_MOBILE_RAMP"`
	BoardingSpace  din.Int   `csv:"BOARDING_SPACE"`
	StreetAccess   din.Int   `csv:"STREET_ACCESS"`
}

type linkRow struct {
	Version     din.Int `csv:"VERSION"`
	ID          din.Int `csv:"LINK_ID"`
	BranchID    din.Int `csv:"BRANCH_NR"`
	FromStopID  din.Int `csv:"ORIG_STOP_NR"`
	FromAreaID  din.Int `csv:"ORIG_STOP_AREA_NR"`
	FromPointID din.Int `csv:"STOPPING_POINT_NR"`
	ToStopID    din.Int `csv:"DEST_STOP_NR"`
	ToAreaID    din.Int `csv:"DEST_STOP_AREA_NR"`
	ToPointID   din.Int `csv:"DEST_STOPPING_POINT_NR"`
	Length      din.Int `csv:"LENGTH"`
	GISLength   din.Int `csv:"GIS_LENGTH"`
}

type linkPointRow struct {
	Version    din.Int   `csv:"VERSION"`
	LinkID     din.Int   `csv:"LINK_ID"`
	ConsecPtNr din.Int   `csv:"LINK_CONSEC_PT_NR"`
	PosX       din.Coord `csv:"LINK_PT_X"`
	PosY       din.Coord `csv:"LINK_PT_Y"`
}

type branchRow struct {
	Version din.Int  `csv:"VERSION"`
	ID      din.Int  `csv:"BRANCH_NR"`
	Abbr    din.Text `csv:"STR_BRANCH_NAME"`
	Name    din.Text `csv:"BRANCH_NAME"`
}

type operatorRow struct {
	Version         din.Int  `csv:"VERSION"`
	ID              din.Text `csv:"OP_CODE"`
	DefaultBranchID din.Int  `csv:"OP_BRANCH_NR"`
	Abbr            din.Text `csv:"OP_SHORT_NAME"`
	Name            din.Text `csv:"OP_LONG_NAME"`
	PubAbbr         din.Text `csv:"OP_PUBLIC_SHORT_NAME"`
	FullName        din.Text `csv:"OP_LICENCE_NAME"`
	TradingName     din.Text `csv:"OP_TRADING_NAME"`
	VATRegistered   din.Bool `csv:"OP_VAT_REGISTERED_FLAG"`
}

type operatorBranchOfficeRow struct {
	Version        din.Int  `csv:"VERSION"`
	OperatorID     din.Text `csv:"OP_CODE"`
	ID             din.Text `csv:"OBO_SHORT_NAME"`
	InternalPhone  din.Text `csv:"OBO_INTERNAL_PHONE"`
	PublicPhone    din.Text `csv:"OBO_PUBLIC_PHONE"`
	Fax            din.Text `csv:"OBO_FAX_NR"`
	Address        din.Text `csv:"OBO_ADDRESS"`
	ContactAddress din.Text `csv:"OBO_CONTAC_ADDRESS"`
	URL            din.Text `csv:"OBO_URL"`
}

type meansOfTransportRow struct {
	Version din.Int  `csv:"VERSION"`
	ID      din.Int  `csv:"MOT_NR"`
	Name    din.Text `csv:"MOT_NAME"`
	TMOT    din.Int  `csv:"TMOT_NR"`
}

type vehicleTypeRow struct {
	Version           din.Int  `csv:"VERSION"`
	ID                din.Int  `csv:"VEH_TYPE_NR"`
	Seats             din.Int  `csv:"VEH_TYPE_SEATS"`
	Straps            din.Int  `csv:"VEH_TYPE_STRAPS"`
	PlacesForDisabled din.Int  `csv:"PLACES_FOR_DISABLED_PERSONS"`
	Desc              din.Text `csv:"VEH_TYPE_TEXT"`
	Abbr              din.Text `csv:"STR_VEH_TYPE"`
	DoorWidth         din.Int  `csv:"VEH_TYPE_DOOR_WIDTH"`
	Width             din.Int  `csv:"VEH_TYPE_WIDTH"`
	Height            din.Int  `csv:"VEH_TYPE_HEIGHT"`
	AccessEquip       din.Int  `csv:"VEH_TYPE_ACCESS_EQUIP"`
}

type vehicleDestinationTextRow struct {
	Version     din.Int  `csv:"VERSION"`
	BranchID    din.Int  `csv:"BRANCH_NR"`
	ID          din.Int  `csv:"VDT_NR"`
	DriverText1 din.Text `csv:"VDT_TEXT_DRIVER1"`
	DriverText2 din.Text `csv:"VDT_TEXT_DRIVER2"`
	FrontText1  din.Text `csv:"VDT_TEXT_FRONT1"`
	FrontText2  din.Text `csv:"VDT_TEXT_FRONT2"`
	FrontText3  din.Text `csv:"VDT_TEXT_FRONT3"`
	FrontText4  din.Text `csv:"VDT_TEXT_FRONT4"`
	SideText1   din.Text `csv:"VDT_TEXT_SIDE1"`
	SideText2   din.Text `csv:"VDT_TEXT_SIDE2"`
	SideText3   din.Text `csv:"VDT_TEXT_SIDE3"`
	SideText4   din.Text `csv:"VDT_TEXT_SIDE4"`
	Name        din.Text `csv:"VDT_LONG_NAME"`
	ShortName   din.Text `csv:"VDT_SHORT_NAME"`
}

type courseRow struct {
	Version                din.Int  `csv:"VERSION"`
	BranchID               din.Int  `csv:"BRANCH_NR"`
	Line                   din.Int  `csv:"LINE_NR"`
	ID                     din.Text `csv:"STR_LINE_VAR"`
	Name                   din.Text `csv:"LINE_NAME"`
	LineDir                din.Int  `csv:"LINE_DIR_NR"`
	LastMod                din.Text `csv:"LAST_MODIFIED"`
	MOTID                  din.Int  `csv:"MOT_NR"`
	ValidFrom              din.Date `csv:"VALID_FROM"`
	ValidTo                din.Date `csv:"VALID_TO"`
	OperatorID             din.Text `csv:"OP_CODE"`
	OperatorBranchOfficeID din.Text `csv:"OBO_SHORT_NAME"`
	Type                   din.Int  `csv:"ROUTE_TYPE"`
	GlobalID               din.Text `csv:"GLOBAL_ID"`
	BikeRule               din.Int  `csv:"BIKE_RULE"`
}

type courseStopRow struct {
	Version      din.Int  `csv:"VERSION"`
	Line         din.Int  `csv:"LINE_NR"`
	CourseID     din.Text `csv:"STR_LINE_VAR"`
	LineDir      din.Int  `csv:"LINE_DIR_NR"`
	ConsecStopNr din.Int  `csv:"LINE_CONSEC_NR"`
	StopID       din.Int  `csv:"STOP_NR"`
	StopPointID  din.Int  `csv:"STOPPING_POINT_NR"`
	Type         din.Int  `csv:"STOPPING_POINT_TYPE"`
	Length       din.Int  `csv:"LENGTH"`
}

type courseStopTimingRow struct {
	Version      din.Int     `csv:"VERSION"`
	Line         din.Int     `csv:"LINE_NR"`
	CourseID     din.Text    `csv:"STR_LINE_VAR"`
	LineDir      din.Int     `csv:"LINE_DIR_NR"`
	ConsecStopNr din.Int     `csv:"LINE_CONSEC_NR"`
	TimingGroup  din.Int     `csv:"TIMING_GROUP_NR"`
	TimeToStop   din.Seconds `csv:"TT_REL"`
	StoppingTime din.Seconds `csv:"STOPPING_TIME"`
}

type noticeRow struct {
	Version     din.Int  `csv:"VERSION"`
	Line        din.Int  `csv:"LINE_NR"`
	ID          din.Text `csv:"NOTICE"`
	Text        din.Text `csv:"NOTICE_TEXT"`
	ContentType din.Int  `csv:"CONTENT_TYPE"`
	DisplayType din.Int  `csv:"DISPLAY_TYPE"`
}

type tripRow struct {
	Version                din.Int     `csv:"VERSION"`
	Line                   din.Int     `csv:"LINE_NR"`
	CourseID               din.Text    `csv:"STR_LINE_VAR"`
	LineDir                din.Int     `csv:"LINE_DIR_NR"`
	TimingGroup            din.Int     `csv:"TIMING_GROUP_NR"`
	ID                     din.Int     `csv:"TRIP_ID"`
	IDPrinting             din.Int     `csv:"TRIP_ID_PRINTING"`
	DepartureTime          din.Seconds `csv:"DEPARTURE_TIME"`
	DepStopID              din.Int     `csv:"DEP_STOP_NR"`
	DepStopPointID         din.Int     `csv:"DEP_STOPPING_POINT_NR"`
	ArrStopID              din.Int     `csv:"ARR_STOP_NR"`
	ArrStopPointID         din.Int     `csv:"ARR_STOPPING_POINT_NR"`
	VehicleTypeID          din.Int     `csv:"VEH_TYPE_NR"`
	DayAttributeID         din.Int     `csv:"DAY_ATTRIBUTE_NR"`
	RestrictionID          din.Text    `csv:"RESTRICTION"`
	Notice1                din.Text    `csv:"NOTICE"`
	Notice2                din.Text    `csv:"NOTICE_2"`
	Notice3                din.Text    `csv:"NOTICE_3"`
	Notice4                din.Text    `csv:"NOTICE_4"`
	Notice5                din.Text    `csv:"NOTICE_5"`
	RoundTripID            din.Int     `csv:"ROUND_TRIP_ID"`
	TrainID                din.Int     `csv:"TRAIN_NR"`
	TrainCategoryAbbr      din.Text    `csv:"TRAIN_CATEGORY_SHORT_NAME"`
	OperatorID             din.Text    `csv:"OP_CODE"`
	OperatorBranchOfficeID din.Text    `csv:"OBO_SHORT_NAME"`
	GlobalID               din.Text    `csv:"GLOBAL_ID"`
	BikeAllowed            din.Bool    `csv:"BIKE_ALLOWED"`
	PurposeID              din.Int     `csv:"PURPOSE_NR"`
}

type stopConstraintRow struct {
	Version      din.Int  `csv:"VERSION"`
	Line         din.Int  `csv:"LINE_NR"`
	CourseID     din.Text `csv:"STR_LINE_VAR"`
	LineDir      din.Int  `csv:"LINE_DIR_NR"`
	TripID       din.Int  `csv:"TRIP_ID"`
	ConsecStopNr din.Int  `csv:"LINE_CONSEC_NR"`
	StopID       din.Int  `csv:"STOP_NR"`
	StopPointID  din.Int  `csv:"STOPPING_POINT_NR"`
	Constraint   din.Text `csv:"SERVICE_INTERDICTION_CODE"`
}

type tripVDTRow struct {
	Version      din.Int  `csv:"VERSION"`
	Period       din.Text `csv:"TIMETABLE_PERIOD"`
	Line         din.Int  `csv:"LINE_NR"`
	CourseID     din.Text `csv:"STR_LINE_VAR"`
	LineDir      din.Int  `csv:"LINE_DIR_NR"`
	TripID       din.Int  `csv:"TRIP_ID"`
	ConsecStopNr din.Int  `csv:"LINE_CONSEC_NR"`
	VDTID        din.Int  `csv:"VDT_NR"`
}
