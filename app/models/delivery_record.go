package models

// DeliveryRecord is one delivery stop observation. The same struct is used
// for raw ingest rows (route_id, raw_address, date, time) and for the
// finalized table, where route_name and sequence_position are filled in by
// the pipeline. Date and time stay as the free text they arrived in; parsing
// happens in the pipeline and is never written back.
type DeliveryRecord struct {
	RouteID          string `csv:"route_id" json:"route_id"`
	RouteName        string `csv:"route_name" json:"route_name"`
	RawAddress       string `csv:"raw_address" json:"raw_address"`
	Date             string `csv:"date" json:"date"`
	Time             string `csv:"time" json:"time"`
	SequencePosition int    `csv:"sequence_position" json:"sequence_position"`
}

// RouteRef identifies a route to the user: canonical id plus display name.
type RouteRef struct {
	ID   string `json:"route_id"`
	Name string `json:"route_name"`
}

// Lookup verdict statuses.
const (
	StatusFound      = "found"       // address belongs to the selected route
	StatusWrongRoute = "wrong_route" // address belongs to another route
	StatusNotFound   = "not_found"   // address unknown in every route
)

// LookupResult is the outcome of matching an address against the finalized
// table for one selected route.
type LookupResult struct {
	Status string `json:"status"`

	// Position is set when Status is StatusFound.
	Position int `json:"sequence_position,omitempty"`

	// AlsoIn lists other routes that contain the same street. Advisory
	// only: it never changes the verdict.
	AlsoIn []RouteRef `json:"also_in,omitempty"`

	// Elsewhere is set when Status is StatusWrongRoute and names the first
	// route that does contain the street.
	Elsewhere *RouteRef `json:"elsewhere,omitempty"`
}

// AcceptedStop is one row of the session table: an address the driver
// submitted that was accepted for the currently selected route.
type AcceptedStop struct {
	Address  string     `json:"address"`
	Position int        `json:"sequence_position"`
	AlsoIn   []RouteRef `json:"also_in,omitempty"`

	// StreetGroup is shared by rows whose addresses normalize to the same
	// street, so the surface can visually group them. Groups are numbered
	// by first appearance in the displayed table.
	StreetGroup int `json:"street_group"`
}
