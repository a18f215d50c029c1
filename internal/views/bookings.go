package views

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"ms-booking-client/internal/models"
)

// BookingCard is a booking with every display field resolved.
type BookingCard struct {
	ID          models.ID `json:"id"`
	EventTitle  string    `json:"eventTitle"`
	Seats       int       `json:"seats"`
	Status      string    `json:"status"`
	EventDate   time.Time `json:"eventDate"`
	Location    string    `json:"location"`
	Amount      float64   `json:"amount"`
	BookingTime time.Time `json:"bookingTime"`
}

// MapBooking fills missing fields with display defaults. A missing or
// unreadable event date is placed one day after now so the card lands in the
// upcoming bucket.
func MapBooking(b models.Booking, now time.Time) BookingCard {
	card := BookingCard{
		ID:          b.Key(),
		EventTitle:  b.EventTitle,
		Seats:       b.SeatsBooked,
		Status:      NormalizeStatus(b.Status),
		EventDate:   now.Add(24 * time.Hour),
		Location:    b.EventLocation,
		Amount:      b.TotalAmount,
		BookingTime: now,
	}
	if card.EventTitle == "" {
		card.EventTitle = "Unknown Event"
	}
	if card.Location == "" {
		card.Location = "TBD Location"
	}
	if t, err := models.ParseTimestamp(b.EventDate); err == nil {
		card.EventDate = t
	}
	if t, err := models.ParseTimestamp(b.BookingTime); err == nil {
		card.BookingTime = t
	}
	return card
}

// NormalizeStatus capitalizes the first letter and lowercases the rest.
func NormalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.BookingPending
	}
	first, size := utf8.DecodeRuneInString(status)
	return string(unicode.ToUpper(first)) + strings.ToLower(status[size:])
}

type Buckets struct {
	Upcoming []BookingCard `json:"upcoming"`
	Past     []BookingCard `json:"past"`
}

// BucketBookings splits bookings around now: upcoming (event date >= now)
// ascending, past descending. now is sampled once by the caller.
func BucketBookings(bookings []models.Booking, now time.Time) Buckets {
	out := Buckets{Upcoming: []BookingCard{}, Past: []BookingCard{}}
	for _, b := range bookings {
		card := MapBooking(b, now)
		if !card.EventDate.Before(now) {
			out.Upcoming = append(out.Upcoming, card)
		} else {
			out.Past = append(out.Past, card)
		}
	}
	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].EventDate.Before(out.Upcoming[j].EventDate)
	})
	sort.SliceStable(out.Past, func(i, j int) bool {
		return out.Past[i].EventDate.After(out.Past[j].EventDate)
	})
	return out
}
