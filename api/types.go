package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	contactHandler contactHandler
	authHandler    authHandler
	systemHandler  systemHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
