/*
Package schedsdk is a Go client for the interview scheduler HTTP API.

# Overview

The scheduler books interviews at a single instant, sends the candidate an
invitation and tracks the candidate's response. Every endpoint is public; the
client carries no credentials.

	client := schedsdk.NewClient("http://localhost:8080")

	booking, err := client.CreateBooking(ctx, schedsdk.CreateBookingRequest{
		CandidateName:   "John",
		InterviewerName: "Andy",
		ProposedAt:      time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
		Platform:        schedsdk.PlatformGoogle,
		RecipientEmail:  "john@example.com",
	})

	booking, err = client.RespondToInvite(ctx, booking.ID, schedsdk.RespondRequest{
		ResponseStatus: schedsdk.ResponseAccepted,
	})

	booking, err = client.GetBookingStatus(ctx, booking.ID)

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status, the
machine readable code and, for validation failures, per-field details:

	_, err := client.CreateBooking(ctx, req)
	switch {
	case schedsdk.IsSlotConflict(err):
		// pick another time
	case schedsdk.IsInvalidRequest(err):
		var apiErr *schedsdk.APIError
		errors.As(err, &apiErr)
		fmt.Println(apiErr.Details)
	}

# Health

GetLiveness and GetReadiness call /livez and /readyz. Readiness reports
503 with a degraded status when the database cannot be reached; the client
returns that as an *APIError.
*/
package schedsdk
