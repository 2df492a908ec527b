package http

import (
	"net/http"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/service"
	"github.com/aussiebroadwan/scheduler/pkg/httpx"
	"github.com/aussiebroadwan/scheduler/pkg/idx"
	"github.com/aussiebroadwan/scheduler/pkg/schedsdk"
)

type CreateBookingHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		Create Booking
//	@Description	Book an interview at an exact instant and send the candidate an invitation.
//	@Description	Fails with 409 when another booking already holds that instant.
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		schedsdk.CreateBookingRequest	true	"Booking request"
//	@Success		201		{object}	schedsdk.BookingResponse
//	@Failure		400		{object}	schedsdk.ErrorResponse	"error, error_description, details"
//	@Failure		409		{object}	schedsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	schedsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	schedsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/bookings [post].
func (h *CreateBookingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req schedsdk.CreateBookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		invalidRequest("invalid JSON body", nil).WriteError(w)
		return
	}

	platform, _ := domain.ParsePlatform(req.Platform)

	view, err := h.BookingService.CreateBooking(r.Context(), domain.CreateBookingRequest{
		CandidateName:   req.CandidateName,
		InterviewerName: req.InterviewerName,
		ProposedAt:      req.ProposedAt,
		Platform:        platform,
		RecipientEmail:  req.RecipientEmail,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toBookingResponse(view))
}

type RespondHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		Respond To Invite
//	@Description	Record the candidate's answer. ACCEPTED and REJECTED set the booking status directly,
//	@Description	PROPOSED (with proposed_at) marks it RESCHEDULED and PENDING resets it.
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Booking ID (ULID)"
//	@Param			request	body		schedsdk.RespondRequest	true	"Invite response"
//	@Success		200		{object}	schedsdk.BookingResponse
//	@Failure		400		{object}	schedsdk.ErrorResponse	"error, error_description, details"
//	@Failure		404		{object}	schedsdk.ErrorResponse	"booking_not_found or invite_not_found"
//	@Failure		429		{object}	schedsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	schedsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/bookings/{id}/respond [post].
func (h *RespondHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	var req schedsdk.RespondRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		invalidRequest("invalid JSON body", nil).WriteError(w)
		return
	}

	rs, ok := domain.ParseResponseStatus(req.ResponseStatus)
	if !ok {
		invalidRequest("one or more fields are invalid", map[string]string{
			"response_status": "must be one of PENDING, ACCEPTED, REJECTED, PROPOSED",
		}).WriteError(w)
		return
	}

	view, err := h.BookingService.RespondToInvite(r.Context(), domain.RespondRequest{
		BookingID:      id,
		ResponseStatus: rs,
		ProposedAt:     req.ProposedAt,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toBookingResponse(view))
}

type BookingStatusHandler struct {
	BookingService *service.BookingService
}

// ServeHTTP godoc
//
//	@Summary		Booking Status
//	@Description	Fetch a booking with its current status and invite response.
//	@Tags			Bookings
//	@Produce		json
//	@Param			id	path		string	true	"Booking ID (ULID)"
//	@Success		200	{object}	schedsdk.BookingResponse
//	@Failure		400	{object}	schedsdk.ErrorResponse	"error, error_description, details"
//	@Failure		404	{object}	schedsdk.ErrorResponse	"booking_not_found or invite_not_found"
//	@Failure		500	{object}	schedsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/bookings/{id}/status [get].
func (h *BookingStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	view, err := h.BookingService.GetBookingStatus(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toBookingResponse(view))
}

// bookingID parses the {id} path value, writing a 400 when it is not a ULID.
func bookingID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		invalidRequest("invalid booking id", map[string]string{
			"id": "must be a ULID",
		}).WriteError(w)
		return "", false
	}
	return id.String(), true
}

func toBookingResponse(v domain.BookingView) schedsdk.BookingResponse {
	responses := make([]schedsdk.InviteResponse, 0, len(v.Responses))
	for _, r := range v.Responses {
		responses = append(responses, schedsdk.InviteResponse{
			RecipientEmail: r.RecipientEmail,
			ResponseStatus: string(r.ResponseStatus),
			ProposedAt:     r.ProposedAt,
		})
	}

	return schedsdk.BookingResponse{
		ID:              v.ID,
		CandidateName:   v.CandidateName,
		InterviewerName: v.InterviewerName,
		ProposedAt:      v.ProposedAt,
		Platform:        string(v.Platform),
		Status:          string(v.Status),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		Responses:       responses,
	}
}
