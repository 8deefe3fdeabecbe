package dino2

// StopType classifies how a stop is served.
//
// This is a Go representation of the enum behind the `STOP_TYPE` field of `stop.din`.
type StopType int32

const (
	StopType_Standard            StopType = 0
	StopType_OnRequest           StopType = 1
	StopType_AlightingOnly       StopType = 2
	StopType_HailAndRide         StopType = 3
	StopType_OnRequestOutsideNet StopType = 4
	StopType_TransitionTarif     StopType = 7
	StopType_EinAusBringer       StopType = 8
	StopType_OutsideNet          StopType = 9
	StopType_TimePos             StopType = 10
	StopType_School              StopType = 12
	// Observed in the wild but absent from the format documentation.
	StopType_Undocumented19 StopType = 19
)

func (s StopType) String() string {
	switch s {
	case StopType_Standard:
		return "STANDARD"
	case StopType_OnRequest:
		return "ON_REQUEST"
	case StopType_AlightingOnly:
		return "ALIGHTING_ONLY"
	case StopType_HailAndRide:
		return "HAIL_AND_RIDE"
	case StopType_OnRequestOutsideNet:
		return "ON_REQUEST_OUTSIDE_NET"
	case StopType_TransitionTarif:
		return "TRANSITION_TARIF"
	case StopType_EinAusBringer:
		return "EIN_AUS_BRINGER"
	case StopType_OutsideNet:
		return "OUTSIDE_NET"
	case StopType_TimePos:
		return "TIME_POS"
	case StopType_School:
		return "SCHOOL"
	case StopType_Undocumented19:
		return "UNDOCUMENTED_19"
	default:
		return "UNKNOWN"
	}
}

// StopAreaType classifies the role of a stop area within its stop.
type StopAreaType int32

const (
	StopAreaType_EntranceAndPT     StopAreaType = 0
	StopAreaType_PT                StopAreaType = 1
	StopAreaType_ParkAndRide       StopAreaType = 2
	StopAreaType_BikeAndRide       StopAreaType = 3
	StopAreaType_Taxi              StopAreaType = 4
	StopAreaType_Entrance          StopAreaType = 5
	StopAreaType_AirportTerminal   StopAreaType = 6
	StopAreaType_EntranceAndBR     StopAreaType = 7
	StopAreaType_EntrancePTAndBR   StopAreaType = 8
	StopAreaType_EntranceAndTaxi   StopAreaType = 9
	StopAreaType_EntrancePTAndTaxi StopAreaType = 10
	StopAreaType_Mezzanine         StopAreaType = 11
	StopAreaType_HailAndRide       StopAreaType = 12
)

func (s StopAreaType) String() string {
	switch s {
	case StopAreaType_EntranceAndPT:
		return "ENTRANCE_AND_PT"
	case StopAreaType_PT:
		return "PT"
	case StopAreaType_ParkAndRide:
		return "PARK_AND_RIDE"
	case StopAreaType_BikeAndRide:
		return "BIKE_AND_RIDE"
	case StopAreaType_Taxi:
		return "TAXI"
	case StopAreaType_Entrance:
		return "ENTRANCE"
	case StopAreaType_AirportTerminal:
		return "AIRPORT_TERMINAL"
	case StopAreaType_EntranceAndBR:
		return "ENTRANCE_AND_BR"
	case StopAreaType_EntrancePTAndBR:
		return "ENTRANCE_PT_AND_BR"
	case StopAreaType_EntranceAndTaxi:
		return "ENTRANCE_AND_TAXI"
	case StopAreaType_EntrancePTAndTaxi:
		return "ENTRANCE_PT_AND_TAXI"
	case StopAreaType_Mezzanine:
		return "MEZZANINE"
	case StopAreaType_HailAndRide:
		return "HAIL_AND_RIDE"
	default:
		return "UNKNOWN"
	}
}

// StreetAccess describes the step height between a stop point and the street.
type StreetAccess int32

const (
	StreetAccess_Unknown   StreetAccess = 0
	StreetAccess_Level     StreetAccess = 1
	StreetAccess_SmallStep StreetAccess = 2
	StreetAccess_LargeStep StreetAccess = 3
)

func (s StreetAccess) String() string {
	switch s {
	case StreetAccess_Level:
		return "LEVEL"
	case StreetAccess_SmallStep:
		return "SMALL_STEP"
	case StreetAccess_LargeStep:
		return "LARGE_STEP"
	default:
		return "UNKNOWN"
	}
}

// BikeRule describes the bicycle carriage rule of a course. Most values name
// the network whose tariff rules apply.
type BikeRule int32

const (
	BikeRule_NoBicycle           BikeRule = -1
	BikeRule_VVSRail             BikeRule = 0
	BikeRule_VVSCityrail         BikeRule = 1
	BikeRule_MVV                 BikeRule = 2
	BikeRule_DB                  BikeRule = 3
	BikeRule_GVH                 BikeRule = 4
	BikeRule_IVB                 BikeRule = 5
	BikeRule_TFL                 BikeRule = 6
	BikeRule_VVSEnd              BikeRule = 7
	BikeRule_AlwaysAllowed       BikeRule = 8
	BikeRule_RegulatedPerJourney BikeRule = 9
)

func (b BikeRule) String() string {
	switch b {
	case BikeRule_NoBicycle:
		return "NO_BICYCLE"
	case BikeRule_VVSRail:
		return "VVS_RAIL"
	case BikeRule_VVSCityrail:
		return "VVS_CITYRAIL"
	case BikeRule_MVV:
		return "MVV"
	case BikeRule_DB:
		return "DB"
	case BikeRule_GVH:
		return "GVH"
	case BikeRule_IVB:
		return "IVB"
	case BikeRule_TFL:
		return "TFL"
	case BikeRule_VVSEnd:
		return "VVS_END"
	case BikeRule_AlwaysAllowed:
		return "ALWAYS_ALLOWED"
	case BikeRule_RegulatedPerJourney:
		return "REGULATED_PER_JOURNEY"
	default:
		return "UNKNOWN"
	}
}

// StopPointType describes how a single course stop is served.
type StopPointType int32

const (
	StopPointType_NoStopping      StopPointType = -1
	StopPointType_Standard        StopPointType = 0
	StopPointType_OnRequest       StopPointType = 1
	StopPointType_NoBoarding      StopPointType = 2
	StopPointType_NoAlighting     StopPointType = 3
	StopPointType_NoPlaceInternal StopPointType = 4
	StopPointType_NoPassengers    StopPointType = 5
)

func (s StopPointType) String() string {
	switch s {
	case StopPointType_NoStopping:
		return "NO_STOPPING"
	case StopPointType_Standard:
		return "STANDARD"
	case StopPointType_OnRequest:
		return "ON_REQUEST"
	case StopPointType_NoBoarding:
		return "NO_BOARDING"
	case StopPointType_NoAlighting:
		return "NO_ALIGHTING"
	case StopPointType_NoPlaceInternal:
		return "NO_PLACE_INTERNAL"
	case StopPointType_NoPassengers:
		return "NO_PASSENGERS"
	default:
		return "UNKNOWN"
	}
}

// TransferMOT groups means of transport into the coarse categories used for
// transfer time rules.
type TransferMOT int32

const (
	TransferMOT_Train           TransferMOT = 0
	TransferMOT_CommuterRail    TransferMOT = 1
	TransferMOT_Underground     TransferMOT = 2
	TransferMOT_SuburbanRail    TransferMOT = 3
	TransferMOT_Tram            TransferMOT = 4
	TransferMOT_CityBus         TransferMOT = 5
	TransferMOT_RegionalBus     TransferMOT = 6
	TransferMOT_ExpressBus      TransferMOT = 7
	TransferMOT_CableOrCogWheel TransferMOT = 8
	TransferMOT_Ship            TransferMOT = 9
	TransferMOT_SharedTaxi      TransferMOT = 10
	TransferMOT_Other           TransferMOT = 11
	TransferMOT_Aircraft        TransferMOT = 12
)

func (t TransferMOT) String() string {
	switch t {
	case TransferMOT_Train:
		return "TRAIN"
	case TransferMOT_CommuterRail:
		return "COMMUTER_RAIL"
	case TransferMOT_Underground:
		return "UNDERGROUND"
	case TransferMOT_SuburbanRail:
		return "SUBURBAN_RAIL"
	case TransferMOT_Tram:
		return "TRAM"
	case TransferMOT_CityBus:
		return "CITY_BUS"
	case TransferMOT_RegionalBus:
		return "REGIONAL_BUS"
	case TransferMOT_ExpressBus:
		return "EXPRESS_BUS"
	case TransferMOT_CableOrCogWheel:
		return "CABLE_OR_COG_WHEEL"
	case TransferMOT_Ship:
		return "SHIP"
	case TransferMOT_SharedTaxi:
		return "SHARED_TAXI"
	case TransferMOT_Other:
		return "OTHER"
	case TransferMOT_Aircraft:
		return "AIRCRAFT"
	default:
		return "UNKNOWN"
	}
}

// AccessibilityEquipment describes the vertical access equipment of a vehicle
// type.
type AccessibilityEquipment int32

const (
	AccessibilityEquipment_NoLift     AccessibilityEquipment = 0
	AccessibilityEquipment_Lift       AccessibilityEquipment = 1
	AccessibilityEquipment_LiftOrRamp AccessibilityEquipment = 2
)

func (a AccessibilityEquipment) String() string {
	switch a {
	case AccessibilityEquipment_NoLift:
		return "NO_LIFT"
	case AccessibilityEquipment_Lift:
		return "LIFT"
	case AccessibilityEquipment_LiftOrRamp:
		return "LIFT_OR_RAMP"
	default:
		return "UNKNOWN"
	}
}

// NoticeContentType classifies what a notice text is about.
type NoticeContentType int32

const (
	NoticeContentType_General       NoticeContentType = 0
	NoticeContentType_TrainName     NoticeContentType = 1
	NoticeContentType_OnDemandPhone NoticeContentType = 2
	NoticeContentType_Bicycle       NoticeContentType = 3
	NoticeContentType_Track         NoticeContentType = 4
)

func (n NoticeContentType) String() string {
	switch n {
	case NoticeContentType_General:
		return "GENERAL"
	case NoticeContentType_TrainName:
		return "TRAIN_NAME"
	case NoticeContentType_OnDemandPhone:
		return "ON_DEMAND_PHONE"
	case NoticeContentType_Bicycle:
		return "BICYCLE"
	case NoticeContentType_Track:
		return "TRACK"
	default:
		return "UNKNOWN"
	}
}

// NoticeDisplayType describes when a notice should be shown to passengers.
// The format documentation is ambiguous about the combined values.
type NoticeDisplayType int32

const (
	NoticeDisplayType_Always                NoticeDisplayType = 0
	NoticeDisplayType_OnBoarding            NoticeDisplayType = 1
	NoticeDisplayType_OnAlighting           NoticeDisplayType = 2
	NoticeDisplayType_OnBoard               NoticeDisplayType = 4
	NoticeDisplayType_OnBoardingOrAlighting NoticeDisplayType = 5
	NoticeDisplayType_OnBoardOrAlighting    NoticeDisplayType = 8
)

func (n NoticeDisplayType) String() string {
	switch n {
	case NoticeDisplayType_Always:
		return "ALWAYS"
	case NoticeDisplayType_OnBoarding:
		return "ON_BOARDING"
	case NoticeDisplayType_OnAlighting:
		return "ON_ALIGHTING"
	case NoticeDisplayType_OnBoard:
		return "ON_BOARD"
	case NoticeDisplayType_OnBoardingOrAlighting:
		return "ON_BOARDING_OR_ALIGHTING"
	case NoticeDisplayType_OnBoardOrAlighting:
		return "ON_BOARD_OR_ALIGHTING"
	default:
		return "UNKNOWN"
	}
}

// StopConstraintType is a per-trip stopping constraint at one course stop,
// encoded as a single character in `service_constraint.din`.
type StopConstraintType byte

const (
	StopConstraintType_OnlyAlighting   StopConstraintType = 'A'
	StopConstraintType_OnlyBoarding    StopConstraintType = 'E'
	StopConstraintType_NoPlaceInternal StopConstraintType = 'I'
	// Observed in the wild but absent from the format documentation.
	StopConstraintType_UndocumentedB StopConstraintType = 'B'
)

// NewStopConstraintType converts a `service_constraint.din` character into a
// constraint type. The second return value reports whether the character is
// known.
func NewStopConstraintType(s string) (StopConstraintType, bool) {
	switch s {
	case "A":
		return StopConstraintType_OnlyAlighting, true
	case "E":
		return StopConstraintType_OnlyBoarding, true
	case "I":
		return StopConstraintType_NoPlaceInternal, true
	case "B":
		return StopConstraintType_UndocumentedB, true
	}
	return 0, false
}

func (s StopConstraintType) String() string {
	switch s {
	case StopConstraintType_OnlyAlighting:
		return "ONLY_ALIGHTING"
	case StopConstraintType_OnlyBoarding:
		return "ONLY_BOARDING"
	case StopConstraintType_NoPlaceInternal:
		return "NO_PLACE_INTERNAL"
	case StopConstraintType_UndocumentedB:
		return "UNDOCUMENTED_B"
	default:
		return "UNKNOWN"
	}
}
