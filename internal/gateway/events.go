package gateway

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ms-booking-client/internal/models"
	"ms-booking-client/internal/views"
)

type EventCard struct {
	models.Event
	Capacity views.Capacity `json:"capacity"`
}

type EventDetail struct {
	Event    models.Event   `json:"event"`
	Capacity views.Capacity `json:"capacity"`
	MapURL   string         `json:"mapUrl"`
	Seats    int            `json:"seats"`
	Quote    views.Quote    `json:"quote"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := views.EventFilter{Search: q.Get("search"), Date: q.Get("date")}
	if raw := q.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.fail(w, http.StatusBadRequest, "maxPrice must be a number", codeInvalidRequest)
			return
		}
		filter.MaxPrice = &maxPrice
	}

	events, err := h.Events.List(r.Context())
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	matched := views.FilterEvents(events, filter)
	cards := make([]EventCard, 0, len(matched))
	for _, e := range matched {
		cards = append(cards, EventCard{Event: e, Capacity: views.EventCapacity(e)})
	}
	h.ok(w, http.StatusOK, "Events retrieved", cards)
}

// GetEvent answers the detail view. seats and step drive the seat stepper;
// tier selects the price tier for the quote.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))
	q := r.URL.Query()

	seats := 1
	if raw := q.Get("seats"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.fail(w, http.StatusBadRequest, "seats must be a positive integer", codeInvalidRequest)
			return
		}
		seats = n
	}

	selected, err := h.Events.Get(r.Context(), id)
	if err != nil {
		h.upstreamFailure(w, err)
		return
	}
	event := *selected

	switch q.Get("step") {
	case "up":
		seats = views.IncrementSeats(seats, event.AvailableSeats)
	case "down":
		seats = views.DecrementSeats(seats)
	}

	h.ok(w, http.StatusOK, "Event retrieved", EventDetail{
		Event:    event,
		Capacity: views.EventCapacity(event),
		MapURL:   views.MapEmbedURL(event.Location, views.DetailMapZoom),
		Seats:    seats,
		Quote:    views.QuoteFor(event, views.ParseTier(q.Get("tier")), seats),
	})
}
