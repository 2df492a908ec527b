package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/service"
	"github.com/aussiebroadwan/scheduler/pkg/schedsdk"
	"github.com/aussiebroadwan/scheduler/pkg/slogx"
)

func invalidRequest(description string, details map[string]string) *schedsdk.APIError {
	e := schedsdk.NewAPIError(http.StatusBadRequest, schedsdk.ErrorCodeInvalidRequest, description)
	e.Details = details
	return e
}

// writeServiceError maps an engine error to its HTTP response. Anything
// unrecognised is logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		invalidRequest("one or more fields are invalid", verr.Fields).WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		invalidRequest(err.Error(), nil).WriteError(w)
	case errors.Is(err, service.ErrSlotConflict):
		schedsdk.ErrSlotConflict.WriteError(w)
	case errors.Is(err, service.ErrBookingNotFound):
		schedsdk.ErrBookingNotFound.WriteError(w)
	case errors.Is(err, service.ErrInviteNotFound):
		schedsdk.ErrInviteNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		schedsdk.ErrServerError.WriteError(w)
	}
}
