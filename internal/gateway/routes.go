package gateway

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ms-booking-client/internal/guard"
	"ms-booking-client/internal/models"
)

// RegisterRoutes mounts every gateway endpoint on r. Admin routes are gated
// by the advisory role guard.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Get("/{id}", h.GetEvent)
		r.Post("/{id}/bookings", h.CreateBooking)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.ListBookings)
		r.Get("/{id}", h.GetBooking)
		r.Get("/{id}/qr", h.BookingQR)
		r.Delete("/{id}", h.CancelBooking)
	})

	r.Route("/admin/events", func(r chi.Router) {
		r.Use(guard.RequireRole(h.Store.Session, h.Logger, models.RoleAdmin))
		r.Post("/", h.CreateEvent)
		r.Get("/{id}/form", h.EditForm)
		r.Put("/{id}", h.UpdateEvent)
		r.Delete("/{id}", h.DeleteEvent)
	})

	r.Get("/notifications", h.Notifications)
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.Logger.Debug("HTTP", fmt.Sprintf("[%s] %s %s -> %d (%v)", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, status, time.Since(start)))
	})
}
