package forms

import (
	"time"

	"ms-booking-client/internal/models"
	"ms-booking-client/internal/views"
)

const (
	MsgSeatsOutOfRange     = "Seats must be between 1 and 10"
	MsgNotEnoughSeats      = "Not enough seats available"
	MsgCannotCancelPast    = "Cannot cancel past events"
	MsgMissingEventForBook = "Event not found"
)

type BookingForm struct {
	EventID models.ID `json:"eventId" validate:"required"`
	Seats   int       `json:"seats" validate:"min=1,max=10"`
}

func (f BookingForm) Validate(available int) error {
	if err := validate.Struct(f); err != nil {
		fields, ferr := fieldErrors(err)
		if ferr != nil {
			return ferr
		}
		if fields["EventID"] != "" {
			return invalid(MsgMissingEventForBook)
		}
		return invalid(MsgSeatsOutOfRange)
	}
	if f.Seats > available {
		return invalid(MsgNotEnoughSeats)
	}
	return nil
}

// ToRequest stamps the booking with now as an ISO-8601 UTC instant.
func (f BookingForm) ToRequest(available int, now time.Time) (models.BookingRequest, error) {
	if err := f.Validate(available); err != nil {
		return models.BookingRequest{}, err
	}
	return models.BookingRequest{
		EventID:     f.EventID,
		Seats:       f.Seats,
		BookingDate: models.FormatISOInstant(now),
	}, nil
}

// ValidateCancellation rejects bookings whose event already started.
func ValidateCancellation(b models.Booking, now time.Time) error {
	if views.MapBooking(b, now).EventDate.Before(now) {
		return invalid(MsgCannotCancelPast)
	}
	return nil
}
