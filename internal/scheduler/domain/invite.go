package domain

import (
	"strings"
	"time"
)

// ResponseStatus is the recipient's answer to an invite.
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "PENDING"
	ResponseAccepted ResponseStatus = "ACCEPTED"
	ResponseRejected ResponseStatus = "REJECTED"
	ResponseProposed ResponseStatus = "PROPOSED"
)

// ParseResponseStatus matches s case-insensitively against the known statuses.
func ParseResponseStatus(s string) (ResponseStatus, bool) {
	rs := ResponseStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch rs {
	case ResponsePending, ResponseAccepted, ResponseRejected, ResponseProposed:
		return rs, true
	}
	return rs, false
}

// InviteResponse is the recipient-side record of a booking's invite. It is
// owned by exactly one booking and removed with it.
type InviteResponse struct {
	ID             string
	BookingID      string
	RecipientEmail string
	ResponseStatus ResponseStatus
	ProposedAt     *time.Time // set only for counter-proposals
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
