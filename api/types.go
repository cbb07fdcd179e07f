package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler   pageHandler
	liveHandler   liveHandler
	healthHandler healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// Live channel message types.
const (
	msgClick    = "click"
	msgNavigate = "navigate"
	msgHash     = "hash"

	msgRender = "render"
	msgScroll = "scroll"
	msgError  = "error"
)

// clientMessage is an event sent by the browser over the live channel
type clientMessage struct {
	Type string `json:"type"`
	Ref  string `json:"ref,omitempty"`
	Href string `json:"href,omitempty"`
	Hash string `json:"hash,omitempty"`
}

// serverMessage is a render, scroll or error pushed to the browser
type serverMessage struct {
	Type           string `json:"type"`
	HTML           string `json:"html,omitempty"`
	URL            string `json:"url,omitempty"`
	Status         int    `json:"status,omitempty"`
	PreventDefault bool   `json:"preventDefault,omitempty"`
	ID             string `json:"id,omitempty"`
	Error          string `json:"error,omitempty"`
	Field          string `json:"field,omitempty"`
}

// HealthResponse is the body of /healthz
type HealthResponse struct {
	Status         string `json:"status"`
	Uptime         string `json:"uptime"`
	StartupTime    string `json:"startupTime"`
	ActiveSessions int    `json:"activeSessions"`
	Projects       int    `json:"projects"`
	Blogs          int    `json:"blogs"`
	Photos         int    `json:"photos"`
}
