package gateway

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-booking-client/internal/forms"
	"ms-booking-client/internal/guard"
	"ms-booking-client/internal/models"
	"ms-booking-client/internal/views"
)

type AdminEventForm struct {
	Form   forms.EventForm `json:"form"`
	MapURL string          `json:"mapUrl"`
}

// EditForm pre-fills the admin form for an existing event.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	event, err := h.Events.Get(r.Context(), models.ID(chi.URLParam(r, "id")))
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	h.ok(w, http.StatusOK, "Event form", AdminEventForm{
		Form:   forms.EventFormFromEvent(*event),
		MapURL: views.MapEmbedURL(event.Location, views.AdminMapZoom),
	})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var form forms.EventForm
	if !h.decode(w, r, &form) {
		return
	}
	req, err := form.ToRequest(h.now())
	if err != nil {
		h.rejectInvalid(w, err)
		return
	}

	event, err := h.Events.Create(r.Context(), req)
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	h.logAdmin(r, fmt.Sprintf("created event %s %q", event.ID, event.Title))
	h.ok(w, http.StatusCreated, "Event created successfully", event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))
	var form forms.EventForm
	if !h.decode(w, r, &form) {
		return
	}
	req, err := form.ToRequest(h.now())
	if err != nil {
		h.rejectInvalid(w, err)
		return
	}

	event, err := h.Events.Update(r.Context(), id, req)
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	h.logAdmin(r, fmt.Sprintf("updated event %s", id))
	h.ok(w, http.StatusOK, "Event updated successfully", event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))
	if err := h.Events.Delete(r.Context(), id); err != nil {
		h.upstreamFailure(w, err)
		return
	}
	h.logAdmin(r, fmt.Sprintf("deleted event %s", id))
	h.ok(w, http.StatusOK, "Event deleted successfully", nil)
}

// logAdmin records an admin change against the session the guard let through.
func (h *Handler) logAdmin(r *http.Request, action string) {
	who := "unknown"
	if session := guard.SessionFrom(r.Context()); session != nil {
		who = fmt.Sprintf("%s (%s)", session.Name, session.ID)
	}
	h.Logger.LogSecurity("ADMIN_EVENT", fmt.Sprintf("%s %s", who, action))
}
