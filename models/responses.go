package models

// ErrorResponse is the body written for an unhandled request failure.
type ErrorResponse struct {
	// Message is the failure's message.
	Message string `json:"message"`

	// Stack is the failure's diagnostic trace. It is left out of the body
	// entirely in production.
	Stack string `json:"stack,omitempty"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Env     string `json:"env"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
