package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-booking-client/internal/api"
	"ms-booking-client/internal/credentials"
	"ms-booking-client/internal/models"
)

type fakeServer struct {
	*httptest.Server
	lastAuth   string
	lastBody   []byte
	lastReqID  string
	lastMethod string
}

func newFakeServer(t *testing.T, register func(r chi.Router)) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			fs.lastAuth = strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
			fs.lastReqID = req.Header.Get("X-Request-ID")
			fs.lastMethod = req.Method
			fs.lastBody, _ = io.ReadAll(req.Body)
			next.ServeHTTP(w, req)
		})
	})
	register(r)
	fs.Server = httptest.NewServer(r)
	t.Cleanup(fs.Close)
	return fs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newClient(t *testing.T, url string, token string) *api.Client {
	t.Helper()
	store := credentials.NewMemoryStore()
	if token != "" {
		require.NoError(t, store.Set(context.Background(), token))
	}
	return api.NewClient(url+"/", nil, api.StoreTokens(store), nil)
}

func TestLoginIsSentWithoutBearer(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"token": "tok-1", "type": "Bearer"})
		})
	})
	client := newClient(t, srv.URL, "stale-token")

	resp, err := client.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Empty(t, srv.lastAuth)
	assert.NotEmpty(t, srv.lastReqID)
	assert.JSONEq(t, `{"email":"a@b.c","password":"pw"}`, string(srv.lastBody))
}

func TestRequestIDFollowsGatewayRequest(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []models.Event{})
		})
	})
	client := newClient(t, srv.URL, "")
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "gw-42")

	_, err := client.ListEvents(ctx)

	require.NoError(t, err)
	assert.Equal(t, "gw-42", srv.lastReqID)
}

func TestLoginWithoutTokenFails(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"type": "Bearer"})
		})
	})
	client := newClient(t, srv.URL, "")

	_, err := client.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrMissingToken))
}

func TestErrorResponseCarriesServerMessage(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		})
	})
	client := newClient(t, srv.URL, "")

	_, err := client.Login(context.Background(), models.Credentials{})

	var apiErr *api.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Bad credentials", api.MessageOf(err))
	assert.Equal(t, "Bad credentials", api.MessageOr(err, "Invalid Credentials"))
}

func TestErrorWithoutMessageFallsBack(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		})
	})
	client := newClient(t, srv.URL, "")

	_, err := client.ListEvents(context.Background())

	require.Error(t, err)
	assert.Empty(t, api.MessageOf(err))
	assert.Equal(t, "Failed to fetch events", api.MessageOr(err, "Failed to fetch events"))
}

func TestNetworkFailureIsApiError(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1", nil, nil, nil)

	_, err := client.ListEvents(context.Background())

	var apiErr *api.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Error(t, apiErr.Err)
}

func TestAuthenticatedRequestsAttachBearer(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Get("/api/users/profile", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": 7, "name": "Ada", "role": "ADMIN"})
		})
	})
	client := newClient(t, srv.URL, "tok-9")

	user, err := client.FetchProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-9", srv.lastAuth)
	assert.Equal(t, models.ID("7"), user.ID)
	assert.Equal(t, "ADMIN", user.Role)
}

func TestEventCRUD(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "title": "Jazz", "price": nil}})
		})
		r.Get("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": chi.URLParam(r, "id"), "title": "Jazz", "price": 20})
		})
		r.Post("/events", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, map[string]any{"id": 2, "title": "New"})
		})
		r.Put("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "title": "Renamed"})
		})
		r.Delete("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	client := newClient(t, srv.URL, "tok")
	ctx := context.Background()

	events, err := client.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].Price)

	event, err := client.GetEvent(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, event.PriceOrZero())

	created, err := client.CreateEvent(ctx, models.EventRequest{Title: "New", TotalSeats: 10})
	require.NoError(t, err)
	assert.Equal(t, models.ID("2"), created.ID)
	assert.Contains(t, string(srv.lastBody), `"img":null`)

	updated, err := client.UpdateEvent(ctx, "2", models.EventRequest{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, http.MethodPut, srv.lastMethod)

	require.NoError(t, client.DeleteEvent(ctx, "2"))
	assert.Equal(t, http.MethodDelete, srv.lastMethod)
}

func TestCreateBookingUnwrapsData(t *testing.T) {
	srv := newFakeServer(t, func(r chi.Router) {
		r.Post("/bookings", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"bookingId": 55, "eventTitle": "Jazz", "seatsBooked": 2}})
		})
	})
	client := newClient(t, srv.URL, "tok")

	booking, err := client.CreateBooking(context.Background(), models.BookingRequest{EventID: "1", Seats: 2})

	require.NoError(t, err)
	assert.Equal(t, models.ID("55"), booking.Key())
	assert.Equal(t, 2, booking.SeatsBooked)
	assert.JSONEq(t, `{"eventId":1,"seats":2,"bookingDate":""}`, string(srv.lastBody))
}

func TestListBookingsAcceptsBothShapes(t *testing.T) {
	wrapped := true
	srv := newFakeServer(t, func(r chi.Router) {
		r.Get("/bookings", func(w http.ResponseWriter, r *http.Request) {
			list := []map[string]any{{"bookingId": 1}, {"id": 2}}
			if wrapped {
				writeJSON(w, http.StatusOK, map[string]any{"data": list})
				return
			}
			writeJSON(w, http.StatusOK, list)
		})
	})
	client := newClient(t, srv.URL, "tok")

	got, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	wrapped = false
	got, err = client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, models.ID("2"), got[1].Key())
}

func TestCancelBookingReportsStatus(t *testing.T) {
	status := http.StatusOK
	srv := newFakeServer(t, func(r chi.Router) {
		r.Delete("/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("Booking cancelled successfully"))
		})
	})
	client := newClient(t, srv.URL, "tok")

	res, err := client.CancelBooking(context.Background(), "9")
	require.NoError(t, err)
	assert.True(t, res.Confirmed())

	status = http.StatusAccepted
	res, err = client.CancelBooking(context.Background(), "9")
	require.NoError(t, err)
	assert.False(t, res.Confirmed())
}

func TestBookingsFromBodyRejectsObjects(t *testing.T) {
	_, err := api.BookingsFromBody([]byte(`{"data": {"bookingId": 1}}`))
	assert.Error(t, err)

	_, err = api.BookingsFromBody([]byte(`not json`))
	assert.Error(t, err)
}

func TestBookingFromBodyPrefersData(t *testing.T) {
	b, err := api.BookingFromBody([]byte(`{"data":{"id":"x"},"message":"ok"}`))
	require.NoError(t, err)
	assert.Equal(t, models.ID("x"), b.Key())

	b, err = api.BookingFromBody([]byte(`{"bookingId":3,"message":"Booked"}`))
	require.NoError(t, err)
	assert.Equal(t, "Booked", b.Message)
}
