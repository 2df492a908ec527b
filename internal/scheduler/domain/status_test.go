package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
	"github.com/stretchr/testify/require"
)

func TestStatusForResponse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   domain.ResponseStatus
		want domain.BookingStatus
	}{
		{domain.ResponseAccepted, domain.BookingAccepted},
		{domain.ResponseRejected, domain.BookingRejected},
		{domain.ResponseProposed, domain.BookingRescheduled},
		{domain.ResponsePending, domain.BookingPending},
		{domain.ResponseStatus(""), domain.BookingPending},
		{domain.ResponseStatus("MAYBE"), domain.BookingPending},
	}

	for _, tc := range cases {
		t.Run(string(tc.in), func(t *testing.T) {
			require.Equal(t, tc.want, domain.StatusForResponse(tc.in))
		})
	}
}

func TestParseResponseStatus(t *testing.T) {
	t.Parallel()

	rs, ok := domain.ParseResponseStatus(" accepted ")
	require.True(t, ok)
	require.Equal(t, domain.ResponseAccepted, rs)

	_, ok = domain.ParseResponseStatus("MAYBE")
	require.False(t, ok)
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	for _, p := range domain.Platforms {
		got, ok := domain.ParsePlatform(string(p))
		require.True(t, ok)
		require.Equal(t, p, got)
	}

	got, ok := domain.ParsePlatform("teams")
	require.True(t, ok)
	require.Equal(t, domain.PlatformTeams, got)

	_, ok = domain.ParsePlatform("SKYPE")
	require.False(t, ok)
}

func TestNewBookingViewHasSingleResponse(t *testing.T) {
	t.Parallel()

	b := domain.Booking{ID: "b1", Status: domain.BookingPending}
	r := domain.InviteResponse{ID: "r1", BookingID: "b1", RecipientEmail: "john@x.com", ResponseStatus: domain.ResponsePending}

	v := domain.NewBookingView(b, r)
	require.Equal(t, b, v.Booking)
	require.Len(t, v.Responses, 1)
	require.Equal(t, "john@x.com", v.Responses[0].RecipientEmail)
	require.Equal(t, domain.ResponsePending, v.Responses[0].ResponseStatus)
	require.Nil(t, v.Responses[0].ProposedAt)
}
