package schedsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/scheduler/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeSlotConflict    = "slot_conflict"
	ErrorCodeBookingNotFound = "booking_not_found"
	ErrorCodeInviteNotFound  = "invite_not_found"
	ErrorCodeRateLimited     = "rate_limit_exceeded"
	ErrorCodeServerError     = "server_error"
)

// APIError is an error response from the scheduler. The server writes it
// with WriteError and the client decodes it back from the body.
type APIError struct {
	StatusCode  int               `json:"-"`
	Code        string            `json:"error"`
	Description string            `json:"error_description"`
	Details     map[string]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as the HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Details:          e.Details,
	})
}

func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or has invalid fields",
	}

	ErrSlotConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeSlotConflict,
		Description: "another interview is already booked at that time",
	}

	ErrBookingNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeBookingNotFound,
		Description: "booking not found",
	}

	ErrInviteNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeInviteNotFound,
		Description: "no invite response exists for this booking",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

func hasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func IsInvalidRequest(err error) bool  { return hasCode(err, ErrorCodeInvalidRequest) }
func IsSlotConflict(err error) bool    { return hasCode(err, ErrorCodeSlotConflict) }
func IsBookingNotFound(err error) bool { return hasCode(err, ErrorCodeBookingNotFound) }
func IsInviteNotFound(err error) bool  { return hasCode(err, ErrorCodeInviteNotFound) }

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies that
// are not ErrorResponse JSON fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Details:     errResp.Details,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
