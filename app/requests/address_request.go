package requests

// LookupAddressRequest asks where an address sits in a route.
type LookupAddressRequest struct {
	Address string `json:"address" binding:"required"`
	RouteID string `json:"route_id" binding:"required"`
}

// SubmitAddressRequest submits a typed or scanned address to a session.
// Address is deliberately not required at binding time: a blank submission
// is an expected outcome handled with a warning, not a malformed request.
type SubmitAddressRequest struct {
	Address string `json:"address"`
	RouteID string `json:"route_id" binding:"required"`
}
