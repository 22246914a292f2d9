package domain

import "time"

// EndpointStatus classifies the reachability of a remote health route.
type EndpointStatus string

const (
	// StatusPending is shown until the first check for an endpoint completes.
	StatusPending EndpointStatus = "PENDING"
	StatusLive    EndpointStatus = "LIVE"
	StatusError   EndpointStatus = "ERROR"
	StatusOffline EndpointStatus = "OFFLINE"
)

const (
	ColorSuccess = "#19e68c"
	ColorFailure = "#ff4d6d"
)

// Color returns the inline text color rendered for the status.
func (s EndpointStatus) Color() string {
	switch s {
	case StatusLive:
		return ColorSuccess
	case StatusError, StatusOffline:
		return ColorFailure
	default:
		return ""
	}
}

// Endpoint is a remote service whose health route is displayed on the page.
type Endpoint struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	ElementID string `json:"element_id"`
}

// StatusUpdate is published every time an endpoint changes status.
type StatusUpdate struct {
	Endpoint  string         `json:"endpoint"`
	Status    EndpointStatus `json:"status"`
	Color     string         `json:"color"`
	CheckedAt time.Time      `json:"checked_at"`
}
