package schedsdk

import "time"

const (
	PlatformGoogle = "GOOGLE"
	PlatformTeams  = "TEAMS"
	PlatformZoom   = "ZOOM"
)

const (
	StatusPending     = "PENDING"
	StatusAccepted    = "ACCEPTED"
	StatusRejected    = "REJECTED"
	StatusRescheduled = "RESCHEDULED"
)

const (
	ResponsePending  = "PENDING"
	ResponseAccepted = "ACCEPTED"
	ResponseRejected = "REJECTED"
	ResponseProposed = "PROPOSED"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine readable code (e.g., "slot_conflict")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Details maps rejected request fields to a reason. Only set for
	// invalid_request.
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Booking Types
// ============================================================================

// CreateBookingRequest is the body of POST /v1/bookings.
type CreateBookingRequest struct {
	CandidateName   string    `json:"candidate_name"`
	InterviewerName string    `json:"interviewer_name"`
	ProposedAt      time.Time `json:"proposed_at"`
	Platform        string    `json:"platform"`
	RecipientEmail  string    `json:"recipient_email"`
}

// RespondRequest is the body of POST /v1/bookings/{id}/respond.
// ProposedAt is required when ResponseStatus is PROPOSED.
type RespondRequest struct {
	ResponseStatus string     `json:"response_status"`
	ProposedAt     *time.Time `json:"proposed_at,omitempty"`
}

// BookingResponse is a booking together with its invite responses.
type BookingResponse struct {
	ID              string           `json:"id"`
	CandidateName   string           `json:"candidate_name"`
	InterviewerName string           `json:"interviewer_name"`
	ProposedAt      time.Time        `json:"proposed_at"`
	Platform        string           `json:"platform"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Responses       []InviteResponse `json:"responses"`
}

// InviteResponse is the recipient's answer to a booking's invite.
type InviteResponse struct {
	RecipientEmail string     `json:"recipient_email"`
	ResponseStatus string     `json:"response_status"`
	ProposedAt     *time.Time `json:"proposed_at,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
}
