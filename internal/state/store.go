// Package state holds the auth, event and booking slices of the client.
//
// Each slice has a pure reducer. Store composes them under one root and
// applies one action at a time; services perform the API round trips and
// translate their outcome into actions.
package state

import (
	"sync"

	"ms-booking-client/internal/models"
)

type State struct {
	Auth     AuthState    `json:"auth"`
	Events   EventState   `json:"events"`
	Bookings BookingState `json:"bookings"`
}

// Subscriber observes every dispatched action together with the state it
// produced. Subscribers run after the lock is released.
type Subscriber func(action Action, next State)

type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []Subscriber
}

func NewStore(subscribers ...Subscriber) *Store {
	return &Store{
		state: State{
			Events:   EventState{Events: []models.Event{}},
			Bookings: BookingState{Bookings: []models.Booking{}},
		},
		subscribers: subscribers,
	}
}

func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	snapshot := s.state.Clone()
	subscribers := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subscribers {
		sub(a, snapshot)
	}
}

// Reduce routes an action to the slice it targets.
func Reduce(s State, a Action) State {
	switch a.Type.Slice() {
	case "auth":
		s.Auth = ReduceAuth(s.Auth, a)
	case "events":
		s.Events = ReduceEvents(s.Events, a)
	case "bookings":
		s.Bookings = ReduceBookings(s.Bookings, a)
	}
	return s
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Auth() AuthState {
	return s.State().Auth
}

func (s *Store) Events() EventState {
	return s.State().Events
}

func (s *Store) Bookings() BookingState {
	return s.State().Bookings
}

// Session returns a copy of the current session or nil.
func (s *Store) Session() *models.Session {
	return s.Auth().Session
}

// Clone returns a deep copy so callers can never alias store internals.
func (s State) Clone() State {
	out := s
	if s.Auth.Session != nil {
		session := *s.Auth.Session
		out.Auth.Session = &session
	}

	out.Events.Events = make([]models.Event, len(s.Events.Events))
	for i, e := range s.Events.Events {
		out.Events.Events[i] = cloneEvent(e)
	}
	if s.Events.Selected != nil {
		selected := cloneEvent(*s.Events.Selected)
		out.Events.Selected = &selected
	}

	out.Bookings.Bookings = append(make([]models.Booking, 0, len(s.Bookings.Bookings)), s.Bookings.Bookings...)
	if s.Bookings.Latest != nil {
		latest := *s.Bookings.Latest
		out.Bookings.Latest = &latest
	}
	return out
}

func cloneEvent(e models.Event) models.Event {
	if e.Price != nil {
		price := *e.Price
		e.Price = &price
	}
	return e
}
