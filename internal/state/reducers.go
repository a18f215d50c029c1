package state

import (
	"ms-booking-client/internal/models"
)

type AuthState struct {
	Session *models.Session `json:"session"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error,omitempty"`
}

// Status reports one of idle, loading, authenticated or error.
func (s AuthState) Status() string {
	switch {
	case s.Loading:
		return "loading"
	case s.Error != "":
		return "error"
	case s.Session != nil:
		return "authenticated"
	default:
		return "idle"
	}
}

type EventState struct {
	Events   []models.Event `json:"events"`
	Selected *models.Event  `json:"selected"`
	Loading  bool           `json:"loading"`
	Error    string         `json:"error,omitempty"`
}

type BookingState struct {
	Bookings []models.Booking `json:"bookings"`
	Latest   *models.Booking  `json:"latestBooking"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

// Reducers below never modify the slices they receive; every transition that
// touches a collection builds a new one.

func ReduceAuth(s AuthState, a Action) AuthState {
	switch a.Type {
	case AuthLoading:
		s.Loading = true
		s.Error = ""
	case AuthLoginSuccess:
		session, _ := a.Payload.(*models.Session)
		s.Session = session
		s.Loading = false
		s.Error = ""
	case AuthRegistered:
		s.Loading = false
	case AuthFailure:
		s.Loading = false
		s.Error = messagePayload(a)
	case AuthLogout:
		s.Session = nil
		s.Loading = false
		s.Error = ""
	}
	return s
}

func ReduceEvents(s EventState, a Action) EventState {
	switch a.Type {
	case EventsRequest:
		s.Loading = true
		s.Error = ""
	case EventsListSuccess:
		events, _ := a.Payload.([]models.Event)
		s.Events = append([]models.Event{}, events...)
		s.Loading = false
	case EventsGetOne:
		if event, ok := a.Payload.(models.Event); ok {
			s.Selected = &event
		}
		s.Loading = false
	case EventsCreated:
		if event, ok := a.Payload.(models.Event); ok {
			events := make([]models.Event, 0, len(s.Events)+1)
			s.Events = append(append(events, s.Events...), event)
		}
		s.Loading = false
	case EventsUpdated:
		if event, ok := a.Payload.(models.Event); ok {
			events := make([]models.Event, len(s.Events))
			for i, e := range s.Events {
				if e.ID == event.ID {
					e = event
				}
				events[i] = e
			}
			s.Events = events
			if s.Selected != nil && s.Selected.ID == event.ID {
				s.Selected = &event
			}
		}
		s.Loading = false
	case EventsDeleted:
		id, _ := a.Payload.(models.ID)
		events := make([]models.Event, 0, len(s.Events))
		for _, e := range s.Events {
			if e.ID != id {
				events = append(events, e)
			}
		}
		s.Events = events
		s.Loading = false
	case EventsFailure:
		s.Loading = false
		s.Error = messagePayload(a)
	}
	return s
}

func ReduceBookings(s BookingState, a Action) BookingState {
	switch a.Type {
	case BookingsRequest:
		s.Loading = true
		s.Error = ""
	case BookingsCreated:
		if booking, ok := a.Payload.(models.Booking); ok {
			s.Latest = &booking
			if !containsBooking(s.Bookings, booking.Key()) {
				bookings := make([]models.Booking, 0, len(s.Bookings)+1)
				s.Bookings = append(append(bookings, s.Bookings...), booking)
			}
		}
		s.Loading = false
	case BookingsListSuccess:
		bookings, _ := a.Payload.([]models.Booking)
		s.Bookings = append([]models.Booking{}, bookings...)
		s.Loading = false
	case BookingsFetched:
		if booking, ok := a.Payload.(models.Booking); ok {
			s.Latest = &booking
		}
		s.Loading = false
	case BookingsCancelled:
		id, _ := a.Payload.(models.ID)
		bookings := make([]models.Booking, 0, len(s.Bookings))
		for _, b := range s.Bookings {
			if !b.Matches(id) {
				bookings = append(bookings, b)
			}
		}
		s.Bookings = bookings
		if s.Latest != nil && s.Latest.Matches(id) {
			s.Latest = nil
		}
		s.Loading = false
	case BookingsFailure:
		s.Loading = false
		s.Error = messagePayload(a)
	}
	return s
}

func containsBooking(bookings []models.Booking, id models.ID) bool {
	for _, b := range bookings {
		if b.Matches(id) {
			return true
		}
	}
	return false
}
