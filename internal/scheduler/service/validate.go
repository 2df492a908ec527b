package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
)

// maxYear is the last year an RFC 3339 timestamp can carry.
const maxYear = 9999

func validateCreate(req domain.CreateBookingRequest, now time.Time) error {
	var v ValidationError

	if strings.TrimSpace(req.CandidateName) == "" {
		v.add("candidate_name", "must not be blank")
	}
	if strings.TrimSpace(req.InterviewerName) == "" {
		v.add("interviewer_name", "must not be blank")
	}
	if !req.Platform.Valid() {
		v.add("platform", "must be one of GOOGLE, TEAMS, ZOOM")
	}
	if err := validateEmail(req.RecipientEmail); err != "" {
		v.add("recipient_email", err)
	}
	switch {
	case req.ProposedAt.IsZero():
		v.add("proposed_at", "is required")
	case !req.ProposedAt.After(now):
		v.add("proposed_at", "must be in the future")
	case req.ProposedAt.UTC().Year() > maxYear:
		v.add("proposed_at", "must not be after year 9999")
	}

	return v.err()
}

func validateRespond(req domain.RespondRequest) error {
	var v ValidationError

	if strings.TrimSpace(req.BookingID) == "" {
		v.add("booking_id", "is required")
	}
	if _, ok := domain.ParseResponseStatus(string(req.ResponseStatus)); !ok {
		v.add("response_status", "must be one of PENDING, ACCEPTED, REJECTED, PROPOSED")
	}
	switch {
	case req.ResponseStatus == domain.ResponseProposed && (req.ProposedAt == nil || req.ProposedAt.IsZero()):
		v.add("proposed_at", "is required when proposing a new time")
	case req.ProposedAt != nil && req.ProposedAt.UTC().Year() > maxYear:
		v.add("proposed_at", "must not be after year 9999")
	}

	return v.err()
}

// validateEmail returns a reason when s is not a bare RFC 5322 address.
func validateEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "is required"
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return "must be a valid email address"
	}
	return ""
}
