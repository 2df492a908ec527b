package domain

import (
	"strings"
	"time"
)

// Platform is the meeting platform an interview is held on.
type Platform string

const (
	PlatformGoogle Platform = "GOOGLE"
	PlatformTeams  Platform = "TEAMS"
	PlatformZoom   Platform = "ZOOM"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformGoogle, PlatformTeams, PlatformZoom}

// ParsePlatform matches s case-insensitively against the supported platforms.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valid()
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogle, PlatformTeams, PlatformZoom:
		return true
	}
	return false
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending     BookingStatus = "PENDING"
	BookingAccepted    BookingStatus = "ACCEPTED"
	BookingRejected    BookingStatus = "REJECTED"
	BookingRescheduled BookingStatus = "RESCHEDULED"
)

// Booking is an interview occupying a single instant. No two bookings share
// a ProposedAt.
type Booking struct {
	ID              string
	CandidateName   string
	InterviewerName string
	ProposedAt      time.Time
	Platform        Platform
	Status          BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
