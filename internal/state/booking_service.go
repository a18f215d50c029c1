package state

import (
	"context"
	"fmt"

	"ms-booking-client/internal/api"
	"ms-booking-client/internal/logger"
	"ms-booking-client/internal/models"
)

const (
	msgBookingSucceeded    = "Booking Successful!"
	msgBookingCancelled    = "Booking cancelled successfully"
	msgBookingFailed       = "Booking failed"
	msgFetchBookingsFailed = "Failed to fetch bookings"
	msgCancelFailed        = "Failed to cancel booking"
	msgFetchBookingFailed  = "Failed to fetch booking"
)

type BookingAPI interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id models.ID) (*models.Booking, error)
	CancelBooking(ctx context.Context, id models.ID) (*api.CancelResult, error)
}

type BookingService struct {
	Store    *Store
	API      BookingAPI
	Notifier Notifier
	Logger   *logger.Logger
}

func NewBookingService(store *Store, client BookingAPI, notifier Notifier, log *logger.Logger) *BookingService {
	if log == nil {
		log = logger.Discard()
	}
	return &BookingService{Store: store, API: client, Notifier: notifier, Logger: log}
}

func (s *BookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	s.Store.Dispatch(Action{Type: BookingsRequest})
	booking, err := s.API.CreateBooking(ctx, req)
	if err != nil {
		return nil, s.fail(api.MessageOr(err, msgBookingFailed), err, true)
	}
	s.Store.Dispatch(Action{Type: BookingsCreated, Payload: *booking})
	s.Logger.Info("BOOKINGS", fmt.Sprintf("Booked %d seat(s) for event %s as booking %s", req.Seats, req.EventID, booking.Key()))
	if s.Notifier != nil {
		s.Notifier.Success(msgBookingSucceeded)
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	s.Store.Dispatch(Action{Type: BookingsRequest})
	bookings, err := s.API.ListBookings(ctx)
	if err != nil {
		return nil, s.fail(api.MessageOr(err, msgFetchBookingsFailed), err, false)
	}
	s.Store.Dispatch(Action{Type: BookingsListSuccess, Payload: bookings})
	return bookings, nil
}

// Cancel succeeds (nil) only when the server answered 200. Any other outcome
// leaves the collection untouched and records an error message.
func (s *BookingService) Cancel(ctx context.Context, id models.ID) error {
	s.Store.Dispatch(Action{Type: BookingsRequest})
	res, err := s.API.CancelBooking(ctx, id)
	if err != nil {
		return s.fail(api.MessageOr(err, msgCancelFailed), err, true)
	}
	if !res.Confirmed() {
		msg := res.Message
		if msg == "" {
			msg = msgCancelFailed
		}
		return s.fail(msg, fmt.Errorf("unexpected status %d", res.Status), true)
	}

	s.Store.Dispatch(Action{Type: BookingsCancelled, Payload: id})
	s.Logger.Info("BOOKINGS", fmt.Sprintf("Cancelled booking %s", id))
	if s.Notifier != nil {
		s.Notifier.Success(msgBookingCancelled)
	}
	return nil
}

// GetByID loads one booking as the latest, for the confirmation view.
func (s *BookingService) GetByID(ctx context.Context, id models.ID) (*models.Booking, error) {
	s.Store.Dispatch(Action{Type: BookingsRequest})
	booking, err := s.API.GetBooking(ctx, id)
	if err != nil {
		return nil, s.fail(api.MessageOr(err, msgFetchBookingFailed), err, false)
	}
	s.Store.Dispatch(Action{Type: BookingsFetched, Payload: *booking})
	return booking, nil
}

func (s *BookingService) fail(msg string, err error, notify bool) *Failure {
	s.Logger.Error("BOOKINGS", fmt.Sprintf("%s: %v", msg, err))
	s.Store.Dispatch(failure(BookingsFailure, msg))
	if notify && s.Notifier != nil {
		s.Notifier.Error(msg)
	}
	return &Failure{Message: msg, Err: err}
}
