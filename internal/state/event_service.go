package state

import (
	"context"
	"fmt"

	"ms-booking-client/internal/api"
	"ms-booking-client/internal/logger"
	"ms-booking-client/internal/models"
)

const (
	msgFetchEventsFailed = "Failed to fetch events"
	msgFetchEventFailed  = "Failed to fetch event"
	msgCreateEventFailed = "Failed to create event"
	msgUpdateEventFailed = "Failed to update event"
	msgDeleteEventFailed = "Failed to delete event"
)

type EventAPI interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id models.ID) (*models.Event, error)
	CreateEvent(ctx context.Context, req models.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id models.ID, req models.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id models.ID) error
}

// EventService shares one pending flag across all operations; overlapping
// calls are allowed and the last to finish decides the flag.
type EventService struct {
	Store    *Store
	API      EventAPI
	Notifier Notifier
	Logger   *logger.Logger
}

func NewEventService(store *Store, client EventAPI, notifier Notifier, log *logger.Logger) *EventService {
	if log == nil {
		log = logger.Discard()
	}
	return &EventService{Store: store, API: client, Notifier: notifier, Logger: log}
}

// Every operation records its outcome in the event slice and also returns it;
// a failure comes back as a *Failure carrying the recorded message.

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	s.Store.Dispatch(Action{Type: EventsRequest})
	events, err := s.API.ListEvents(ctx)
	if err != nil {
		return nil, s.fail(api.MessageOr(err, msgFetchEventsFailed), err)
	}
	s.Store.Dispatch(Action{Type: EventsListSuccess, Payload: events})
	return events, nil
}

// Get ignores any server message and always reports the fixed fallback.
func (s *EventService) Get(ctx context.Context, id models.ID) (*models.Event, error) {
	s.Store.Dispatch(Action{Type: EventsRequest})
	event, err := s.API.GetEvent(ctx, id)
	if err != nil {
		return nil, s.fail(msgFetchEventFailed, err)
	}
	s.Store.Dispatch(Action{Type: EventsGetOne, Payload: *event})
	return event, nil
}

func (s *EventService) Create(ctx context.Context, req models.EventRequest) (*models.Event, error) {
	s.Store.Dispatch(Action{Type: EventsRequest})
	event, err := s.API.CreateEvent(ctx, req)
	if err != nil {
		return nil, s.fail(api.MessageOr(err, msgCreateEventFailed), err)
	}
	s.Store.Dispatch(Action{Type: EventsCreated, Payload: *event})
	s.notifySuccess("Event created successfully")
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id models.ID, req models.EventRequest) (*models.Event, error) {
	s.Store.Dispatch(Action{Type: EventsRequest})
	event, err := s.API.UpdateEvent(ctx, id, req)
	if err != nil {
		return nil, s.fail(api.MessageOr(err, msgUpdateEventFailed), err)
	}
	s.Store.Dispatch(Action{Type: EventsUpdated, Payload: *event})
	s.notifySuccess("Event updated successfully")
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id models.ID) error {
	s.Store.Dispatch(Action{Type: EventsRequest})
	if err := s.API.DeleteEvent(ctx, id); err != nil {
		return s.fail(api.MessageOr(err, msgDeleteEventFailed), err)
	}
	s.Store.Dispatch(Action{Type: EventsDeleted, Payload: id})
	s.notifySuccess("Event deleted successfully")
	return nil
}

func (s *EventService) fail(msg string, err error) *Failure {
	s.Logger.Error("EVENTS", fmt.Sprintf("%s: %v", msg, err))
	s.Store.Dispatch(failure(EventsFailure, msg))
	if s.Notifier != nil {
		s.Notifier.Error(msg)
	}
	return &Failure{Message: msg, Err: err}
}

func (s *EventService) notifySuccess(msg string) {
	if s.Notifier != nil {
		s.Notifier.Success(msg)
	}
}
