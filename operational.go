package dino2

// Branch is an organizational subdivision of the dataset, e.g. one depot or
// operating region. Keyed by (version, id).
type Branch struct {
	VersionID int
	ID        int
	Abbr      string
	Name      string
}

// Operator is a transport operator. Keyed by (version, id).
type Operator struct {
	VersionID int
	ID        string

	DefaultBranchID *int

	Abbr          string
	Name          string
	PubAbbr       string
	FullName      string
	TradingName   string
	VATRegistered *bool

	BranchOffices []*OperatorBranchOffice
}

// OperatorBranchOffice is a branch office of an operator with its contact
// data. Keyed by (version, operator, id).
type OperatorBranchOffice struct {
	VersionID  int
	OperatorID string
	ID         string

	InternalPhone  string
	PublicPhone    string
	Fax            string
	Address        string
	ContactAddress string
	URL            string

	Operator *Operator
}

// MeansOfTransportDesc describes a means of transport, e.g. "Niederflurbus".
// Keyed by (version, id).
type MeansOfTransportDesc struct {
	VersionID int
	ID        int
	Name      string
	TMOT      TransferMOT
}

// VehicleType describes a vehicle type and its capacity and accessibility
// data. Keyed by (version, id).
type VehicleType struct {
	VersionID int
	ID        int

	Seats             *int
	Straps            *int
	PlacesForDisabled *int

	Desc string
	Abbr string

	DoorWidth *int
	Width     *int
	Height    *int

	AccessibilityEquipment *AccessibilityEquipment
}

// VehicleDestinationText is the set of texts shown on a vehicle's displays
// while serving a trip. Keyed by (version, branch, id).
type VehicleDestinationText struct {
	VersionID int
	BranchID  *int
	ID        int

	DriverText1 string
	DriverText2 string

	FrontText1 string
	FrontText2 string
	FrontText3 string
	FrontText4 string

	SideText1 string
	SideText2 string
	SideText3 string
	SideText4 string

	Name      string
	ShortName string
}
