package state_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ms-booking-client/internal/api"
	"ms-booking-client/internal/models"
	"ms-booking-client/internal/state"
)

func newBookingService(client state.BookingAPI) (*state.BookingService, *state.Store, *state.ToastQueue) {
	store := state.NewStore()
	toasts := state.NewToastQueue(nil)
	return state.NewBookingService(store, client, toasts, nil), store, toasts
}

func seedBookings(store *state.Store, bookings ...models.Booking) {
	store.Dispatch(state.Action{Type: state.BookingsListSuccess, Payload: bookings})
}

func TestCreateBookingSuccess(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, toasts := newBookingService(client)
	req := models.BookingRequest{EventID: "3", Seats: 2, BookingDate: "2026-05-01T12:00:00.000Z"}

	client.On("CreateBooking", mock.Anything, req).Return(&models.Booking{BookingID: "10", EventTitle: "Jazz", SeatsBooked: 2}, nil)

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.ID("10"), created.Key())

	bookings := store.Bookings()
	require.NotNil(t, bookings.Latest)
	assert.Equal(t, models.ID("10"), bookings.Latest.Key())
	assert.False(t, bookings.Loading)

	drained := toasts.Drain()
	require.Len(t, drained, 1)
	assert.Equal(t, state.ToastSuccess, drained[0].Kind)
	assert.Equal(t, "Booking Successful!", drained[0].Message)
}

func TestCreateBookingPrefersServerMessage(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, toasts := newBookingService(client)

	client.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, &api.ApiError{Status: http.StatusBadRequest, Message: "Not enough seats"}).Once()
	_, err := svc.Create(context.Background(), models.BookingRequest{})
	assert.Equal(t, "Not enough seats", state.MessageOf(err))
	assert.Equal(t, "Not enough seats", store.Bookings().Error)

	client.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, &api.ApiError{Err: errors.New("connection refused")}).Once()
	svc.Create(context.Background(), models.BookingRequest{})
	assert.Equal(t, "Booking failed", store.Bookings().Error)

	drained := toasts.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, state.ToastError, drained[1].Kind)
}

func TestListBookingsReplacesCollection(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, _ := newBookingService(client)
	seedBookings(store, models.Booking{BookingID: "old"})

	client.On("ListBookings", mock.Anything).Return([]models.Booking{{BookingID: "1"}, {ID: "2"}}, nil)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	got := store.Bookings().Bookings
	require.Len(t, got, 2)
	assert.Equal(t, models.ID("2"), got[1].Key())
}

func TestListBookingsFailure(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, _ := newBookingService(client)

	client.On("ListBookings", mock.Anything).Return(nil, &api.ApiError{Status: http.StatusInternalServerError})

	svc.List(context.Background())

	assert.Equal(t, "Failed to fetch bookings", store.Bookings().Error)
}

func TestCancelRemovesMatchingBooking(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, _ := newBookingService(client)
	seedBookings(store, models.Booking{BookingID: "1"}, models.Booking{ID: "2"}, models.Booking{BookingID: "3"})
	store.Dispatch(state.Action{Type: state.BookingsFetched, Payload: models.Booking{ID: "2"}})

	client.On("CancelBooking", mock.Anything, models.ID("2")).Return(&api.CancelResult{Status: http.StatusOK}, nil)

	err := svc.Cancel(context.Background(), "2")

	assert.NoError(t, err)
	bookings := store.Bookings()
	require.Len(t, bookings.Bookings, 2)
	assert.Equal(t, models.ID("1"), bookings.Bookings[0].Key())
	assert.Equal(t, models.ID("3"), bookings.Bookings[1].Key())
	assert.Nil(t, bookings.Latest)
}

func TestCancelNon200LeavesCollection(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, _ := newBookingService(client)
	seedBookings(store, models.Booking{BookingID: "1"}, models.Booking{BookingID: "2"})

	client.On("CancelBooking", mock.Anything, models.ID("1")).Return(&api.CancelResult{Status: http.StatusAccepted}, nil)

	err := svc.Cancel(context.Background(), "1")

	assert.Equal(t, "Failed to cancel booking", state.MessageOf(err))
	bookings := store.Bookings()
	assert.Len(t, bookings.Bookings, 2)
	assert.Equal(t, "Failed to cancel booking", bookings.Error)
	assert.False(t, bookings.Loading)
}

func TestCancelErrorUsesServerMessage(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, _ := newBookingService(client)
	seedBookings(store, models.Booking{BookingID: "1"})

	client.On("CancelBooking", mock.Anything, models.ID("1")).
		Return(nil, &api.ApiError{Status: http.StatusBadRequest, Message: "Booking already cancelled"})

	assert.Error(t, svc.Cancel(context.Background(), "1"))
	assert.Equal(t, "Booking already cancelled", store.Bookings().Error)
	assert.Len(t, store.Bookings().Bookings, 1)
}

func TestGetByIDSetsLatest(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, _ := newBookingService(client)

	client.On("GetBooking", mock.Anything, models.ID("4")).Return(&models.Booking{BookingID: "4", Status: "CONFIRMED"}, nil)

	booking, err := svc.GetByID(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, models.ID("4"), booking.Key())

	require.NotNil(t, store.Bookings().Latest)
	assert.Equal(t, "CONFIRMED", store.Bookings().Latest.Status)
}

func TestGetByIDFailure(t *testing.T) {
	client := new(MockBookingAPI)
	svc, store, _ := newBookingService(client)

	client.On("GetBooking", mock.Anything, models.ID("4")).Return(nil, &api.ApiError{Status: http.StatusNotFound})

	booking, err := svc.GetByID(context.Background(), "4")

	assert.Nil(t, booking)
	assert.Equal(t, "Failed to fetch booking", state.MessageOf(err))
	assert.Equal(t, "Failed to fetch booking", store.Bookings().Error)
	assert.Nil(t, store.Bookings().Latest)
}
