package schedsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateBooking books an interview and sends the invitation. A booking
// already holding req.ProposedAt yields an error matching IsSlotConflict.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/bookings", req)
	if err != nil {
		return nil, err
	}

	var booking BookingResponse
	if err := decodeJSON(resp, &booking, http.StatusCreated); err != nil {
		return nil, err
	}
	return &booking, nil
}

// RespondToInvite records the recipient's answer for a booking.
func (c *Client) RespondToInvite(ctx context.Context, bookingID string, req RespondRequest) (*BookingResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/bookings/"+url.PathEscape(bookingID)+"/respond", req)
	if err != nil {
		return nil, err
	}

	var booking BookingResponse
	if err := decodeJSON(resp, &booking, http.StatusOK); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookingStatus fetches a booking and its invite response.
func (c *Client) GetBookingStatus(ctx context.Context, bookingID string) (*BookingResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/bookings/"+url.PathEscape(bookingID)+"/status", nil)
	if err != nil {
		return nil, err
	}

	var booking BookingResponse
	if err := decodeJSON(resp, &booking, http.StatusOK); err != nil {
		return nil, err
	}
	return &booking, nil
}
