package responses

import (
	"github.com/route-assist/app/models"
)

// ErrorResponse is the uniform error payload: a stable machine code plus a
// user-facing message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RoutesResponse lists the selectable routes.
type RoutesResponse struct {
	Routes []models.RouteRef `json:"routes"`
}

// LookupAddressResponse wraps a lookup verdict.
type LookupAddressResponse struct {
	Result           *models.LookupResult `json:"result"`
	ProcessingTimeMs int64                `json:"processing_time_ms"`
	CacheHit         bool                 `json:"cache_hit"`
}

// CreateSessionResponse returns the id of a freshly created session.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// SubmitAddressResponse carries the verdict for a submitted address and
// whether it was appended to the session's accepted list.
type SubmitAddressResponse struct {
	Result  *models.LookupResult `json:"result"`
	Added   bool                 `json:"added"`
	Message string               `json:"message"`
}

// SessionTableResponse is the accepted-stop table for the currently
// selected route.
type SessionTableResponse struct {
	RouteID string                `json:"route_id"`
	Stops   []models.AcceptedStop `json:"stops"`
}

// CameraResponse reports the camera visibility after a toggle.
type CameraResponse struct {
	ShowCamera bool `json:"show_camera"`
}

// ScanResponse returns the address suggestion recognized on a label photo,
// plus the full recognized text for the user to inspect.
type ScanResponse struct {
	Address string `json:"address"`
	RawText string `json:"raw_text"`
}
