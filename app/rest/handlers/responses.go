package handlers

import (
	"time"

	"tripshare/app/domain"
)

// ErrorResponse is the uniform error body. Denied and unknown trips share
// the exact same payload; nothing in here may leak why a request failed
// the access check.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// unauthorizedBody is the single response body for every read-path denial.
var unauthorizedBody = ErrorResponse{Error: "Unauthorized"}

// LoginResponse carries the session token and the logged-in user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// RegisterPhotoResponse carries the stored photo row and the presigned
// upload URL the client PUTs the bytes to.
type RegisterPhotoResponse struct {
	Photo     *domain.Photo `json:"photo"`
	UploadURL string        `json:"upload_url"`
}

// HealthResponse is the basic health check body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// HealthStatus describes one dependency check.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// ReadinessResponse is the readiness check body with per-dependency detail.
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}
