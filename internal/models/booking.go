package models

const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Booking mirrors the API booking payload. Depending on the endpoint the
// identifier arrives as bookingId or id, so both are kept.
type Booking struct {
	BookingID     ID      `json:"bookingId,omitempty"`
	ID            ID      `json:"id,omitempty"`
	EventID       ID      `json:"eventId,omitempty"`
	EventTitle    string  `json:"eventTitle,omitempty"`
	SeatsBooked   int     `json:"seatsBooked,omitempty"`
	Status        string  `json:"status,omitempty"`
	TotalAmount   float64 `json:"totalAmount,omitempty"`
	BookingTime   string  `json:"bookingTime,omitempty"`
	EventDate     string  `json:"eventDate,omitempty"`
	EventLocation string  `json:"eventLocation,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// Key returns bookingId when present, otherwise id.
func (b Booking) Key() ID {
	if b.BookingID != "" {
		return b.BookingID
	}
	return b.ID
}

// Matches reports whether id equals either identifier field.
func (b Booking) Matches(id ID) bool {
	if id == "" {
		return false
	}
	return b.BookingID == id || b.ID == id
}

type BookingRequest struct {
	EventID     ID     `json:"eventId"`
	Seats       int    `json:"seats"`
	BookingDate string `json:"bookingDate"`
}
