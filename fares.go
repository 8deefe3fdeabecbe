package dino2

// FareZone is a fare zone of the network. Keyed by (version, id).
type FareZone struct {
	VersionID int
	ID        int
	Name      string
	// Neutral zones do not count towards the zone count of a journey.
	Neutral *bool
	Color   *int

	Neighbours []*FareZone
}

// NeighbourFareZone is one fare zone adjacency row.
type NeighbourFareZone struct {
	VersionID   int
	FareZoneID  int
	NeighbourID *int
}
