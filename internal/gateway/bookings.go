package gateway

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-booking-client/internal/forms"
	"ms-booking-client/internal/models"
	"ms-booking-client/internal/tickets"
	"ms-booking-client/internal/views"
)

type bookingBody struct {
	Seats int `json:"seats"`
}

// CreateBooking reloads the event so the seat check runs against current
// availability, then books.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	eventID := models.ID(chi.URLParam(r, "id"))
	var body bookingBody
	if !h.decode(w, r, &body) {
		return
	}

	event, err := h.Events.Get(r.Context(), eventID)
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}

	req, err := forms.BookingForm{EventID: eventID, Seats: body.Seats}.ToRequest(event.AvailableSeats, h.now())
	if err != nil {
		h.rejectInvalid(w, err)
		return
	}

	booking, err := h.Bookings.Create(r.Context(), req)
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	h.ok(w, http.StatusCreated, "Booking Successful!", booking)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Bookings.List(r.Context())
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	h.ok(w, http.StatusOK, "Bookings retrieved", views.BucketBookings(bookings, h.now()))
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.GetByID(r.Context(), models.ID(chi.URLParam(r, "id")))
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	h.ok(w, http.StatusOK, "Booking retrieved", views.MapBooking(*booking, h.now()))
}

func (h *Handler) BookingQR(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.GetByID(r.Context(), models.ID(chi.URLParam(r, "id")))
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}

	png, err := h.QR.ConfirmationQR(*booking)
	if err != nil {
		h.Logger.Error("BOOKINGS", fmt.Sprintf("QR generation failed for %s: %v", booking.Key(), err))
		h.fail(w, http.StatusInternalServerError, "Failed to generate ticket", codeInternal)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", tickets.FileName(booking.Key())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.Logger.Error("HTTP", fmt.Sprintf("Failed to write QR: %v", err))
	}
}

// CancelBooking refuses bookings for past events before calling the API and
// refreshes the list only after a confirmed cancellation.
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	booking, found := findBooking(h.Store.Bookings().Bookings, id)
	if !found {
		bookings, err := h.Bookings.List(r.Context())
		if err != nil {
			h.upstreamFailure(w, err)
			return
		}
		booking, found = findBooking(bookings, id)
	}
	if !found {
		h.fail(w, http.StatusNotFound, "Booking not found", codeNotFound)
		return
	}

	now := h.now()
	if err := forms.ValidateCancellation(booking, now); err != nil {
		h.rejectInvalid(w, err)
		return
	}

	if err := h.Bookings.Cancel(r.Context(), id); err != nil {
		h.upstreamFailure(w, err)
		return
	}

	// The cancellation stands even when the refresh fails; fall back to the
	// collection it already pruned.
	bookings, err := h.Bookings.List(r.Context())
	if err != nil {
		h.Logger.Warn("BOOKINGS", fmt.Sprintf("Refresh after cancelling %s failed: %v", id, err))
		bookings = h.Store.Bookings().Bookings
	}
	h.ok(w, http.StatusOK, "Booking cancelled successfully", views.BucketBookings(bookings, now))
}

func findBooking(bookings []models.Booking, id models.ID) (models.Booking, bool) {
	for _, b := range bookings {
		if b.Matches(id) {
			return b, true
		}
	}
	return models.Booking{}, false
}
