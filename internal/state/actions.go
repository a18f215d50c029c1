package state

import (
	"strings"

	"ms-booking-client/internal/models"
)

type ActionType string

const (
	AuthLoading      ActionType = "auth/loading"
	AuthLoginSuccess ActionType = "auth/loginSuccess"
	AuthRegistered   ActionType = "auth/registered"
	AuthFailure      ActionType = "auth/error"
	AuthLogout       ActionType = "auth/logout"

	EventsRequest     ActionType = "events/request"
	EventsListSuccess ActionType = "events/listSuccess"
	EventsGetOne      ActionType = "events/getOne"
	EventsCreated     ActionType = "events/created"
	EventsUpdated     ActionType = "events/updated"
	EventsDeleted     ActionType = "events/deleted"
	EventsFailure     ActionType = "events/failure"

	BookingsRequest     ActionType = "bookings/request"
	BookingsCreated     ActionType = "bookings/created"
	BookingsListSuccess ActionType = "bookings/listSuccess"
	BookingsFetched     ActionType = "bookings/fetched"
	BookingsCancelled   ActionType = "bookings/cancelled"
	BookingsFailure     ActionType = "bookings/failure"
)

// Slice names the state slice an action targets.
func (t ActionType) Slice() string {
	slice, _, _ := strings.Cut(string(t), "/")
	return slice
}

// Action is a discrete state transition request. Payload type depends on Type:
// *models.Session, []models.Event, models.Event, []models.Booking,
// models.Booking, models.ID or an error message string.
type Action struct {
	Type    ActionType `json:"type"`
	Payload any        `json:"payload,omitempty"`
}

func loginSuccess(session *models.Session) Action {
	return Action{Type: AuthLoginSuccess, Payload: session}
}

func failure(t ActionType, message string) Action {
	return Action{Type: t, Payload: message}
}

func messagePayload(a Action) string {
	msg, _ := a.Payload.(string)
	return msg
}
