package domain

import "time"

// BookingView is a booking together with its invite responses, the shape every
// engine operation returns. Responses holds exactly one element today.
type BookingView struct {
	Booking
	Responses []InviteView
}

type InviteView struct {
	RecipientEmail string
	ResponseStatus ResponseStatus
	ProposedAt     *time.Time
}

// NewBookingView assembles the view for a booking and its single response.
func NewBookingView(b Booking, r InviteResponse) BookingView {
	return BookingView{
		Booking: b,
		Responses: []InviteView{{
			RecipientEmail: r.RecipientEmail,
			ResponseStatus: r.ResponseStatus,
			ProposedAt:     r.ProposedAt,
		}},
	}
}

// CreateBookingRequest asks for a new interview and its invite.
type CreateBookingRequest struct {
	CandidateName   string
	InterviewerName string
	ProposedAt      time.Time
	Platform        Platform
	RecipientEmail  string
}

// RespondRequest records the recipient's answer. ProposedAt is required when
// ResponseStatus is PROPOSED.
type RespondRequest struct {
	BookingID      string
	ResponseStatus ResponseStatus
	ProposedAt     *time.Time
}
