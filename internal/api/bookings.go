package api

import (
	"context"
	"net/http"
	"net/url"

	"ms-booking-client/internal/models"
)

// CancelResult reports the status of a successful (non-error) cancel call.
// Only StatusOK counts as a confirmed cancellation.
type CancelResult struct {
	Status  int
	Message string
}

func (r CancelResult) Confirmed() bool {
	return r.Status == http.StatusOK
}

func bookingPath(id models.ID) string {
	return "/bookings/" + url.PathEscape(id.String())
}

func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	resp, err := c.do(ctx, http.MethodPost, "/bookings", req, true)
	if err != nil {
		return nil, err
	}
	booking, err := BookingFromBody(resp.Body)
	if err != nil {
		return nil, &ApiError{Status: resp.Status, Err: err}
	}
	return booking, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	resp, err := c.do(ctx, http.MethodGet, "/bookings", nil, true)
	if err != nil {
		return nil, err
	}
	bookings, err := BookingsFromBody(resp.Body)
	if err != nil {
		return nil, &ApiError{Status: resp.Status, Err: err}
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id models.ID) (*models.Booking, error) {
	resp, err := c.do(ctx, http.MethodGet, bookingPath(id), nil, true)
	if err != nil {
		return nil, err
	}
	booking, err := BookingFromBody(resp.Body)
	if err != nil {
		return nil, &ApiError{Status: resp.Status, Err: err}
	}
	return booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, id models.ID) (*CancelResult, error) {
	resp, err := c.do(ctx, http.MethodDelete, bookingPath(id), nil, true)
	if err != nil {
		return nil, err
	}
	return &CancelResult{Status: resp.Status, Message: MessageFromBody(resp.Body)}, nil
}
