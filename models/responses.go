package models

// ErrorResponse is the body of every error response: a single `error`
// string field, never a stack trace or an internal identifier.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by POST /api/login on success.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// HealthResponse is returned by GET /api/healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
