package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-booking-client/internal/models"
	"ms-booking-client/internal/views"
)

func ptr(f float64) *float64 { return &f }

var catalog = []models.Event{
	{ID: "1", Title: "Summer Jazz Night", Date: "2026-07-01T19:00:00", Price: ptr(40)},
	{ID: "2", Title: "Rock Arena", Date: "2026-07-15T20:00:00", Price: ptr(120)},
	{ID: "3", Title: "Free Poetry Jam", Date: "2026-07-01T18:00:00"},
}

func ids(events []models.Event) []models.ID {
	out := make([]models.ID, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterBySearchIsCaseInsensitive(t *testing.T) {
	for _, e := range catalog {
		for _, term := range []string{e.Title, e.Title[2:6], ""} {
			got := views.FilterEvents(catalog, views.EventFilter{Search: term})
			assert.Contains(t, ids(got), e.ID, "search %q", term)
		}
	}
	got := views.FilterEvents(catalog, views.EventFilter{Search: "JAZZ"})
	assert.Equal(t, []models.ID{"1"}, ids(got))
}

func TestFilterByDatePrefix(t *testing.T) {
	got := views.FilterEvents(catalog, views.EventFilter{Date: "2026-07-01"})
	assert.Equal(t, []models.ID{"1", "3"}, ids(got))
}

func TestFilterByPriceCeiling(t *testing.T) {
	cases := []struct {
		ceiling float64
		want    []models.ID
	}{
		{0, []models.ID{"3"}},
		{40, []models.ID{"1", "3"}},
		{119.99, []models.ID{"1", "3"}},
		{120, []models.ID{"1", "2", "3"}},
	}
	for _, tc := range cases {
		got := views.FilterEvents(catalog, views.EventFilter{MaxPrice: ptr(tc.ceiling)})
		assert.Equal(t, tc.want, ids(got), "ceiling %v", tc.ceiling)
	}
}

func TestFilterCombinesPredicates(t *testing.T) {
	got := views.FilterEvents(catalog, views.EventFilter{Search: "a", Date: "2026-07", MaxPrice: ptr(50)})
	assert.Equal(t, []models.ID{"1", "3"}, ids(got))
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, views.Capacity{Booked: 75, Percentage: 75, SoldOut: false}, views.CapacityOf(100, 25))
	assert.Equal(t, views.Capacity{Booked: 50, Percentage: 100, SoldOut: true}, views.CapacityOf(50, 0))
	assert.Equal(t, views.Capacity{Booked: 0, Percentage: 0, SoldOut: false}, views.CapacityOf(0, 0))
	assert.Equal(t, 67, views.CapacityOf(3, 1).Percentage)
}

func TestBucketBookingsAroundNow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)
	bookings := []models.Booking{
		{BookingID: "a", EventDate: "2026-06-10T10:00:00"},
		{BookingID: "b", EventDate: "2026-05-01T10:00:00"},
		{BookingID: "c", EventDate: "2026-06-02T10:00:00"},
		{BookingID: "d", EventDate: "2026-05-20T10:00:00"},
		{BookingID: "e", EventDate: "2026-06-01T12:00:00"},
	}

	buckets := views.BucketBookings(bookings, now)

	var upcoming, past []models.ID
	for _, c := range buckets.Upcoming {
		upcoming = append(upcoming, c.ID)
	}
	for _, c := range buckets.Past {
		past = append(past, c.ID)
	}
	assert.Equal(t, []models.ID{"e", "c", "a"}, upcoming)
	assert.Equal(t, []models.ID{"d", "b"}, past)
}

func TestBucketMovesWhenClockPassesEventDate(t *testing.T) {
	event := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{{ID: "x", EventDate: event.Format(time.RFC3339)}}

	before := views.BucketBookings(bookings, event.Add(-time.Second))
	after := views.BucketBookings(bookings, event.Add(time.Second))

	assert.Len(t, before.Upcoming, 1)
	assert.Len(t, after.Past, 1)
}

func TestMapBookingDefaults(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	card := views.MapBooking(models.Booking{ID: "5"}, now)

	assert.Equal(t, models.ID("5"), card.ID)
	assert.Equal(t, "Unknown Event", card.EventTitle)
	assert.Equal(t, "TBD Location", card.Location)
	assert.Equal(t, "Pending", card.Status)
	assert.Equal(t, now.Add(24*time.Hour), card.EventDate)
	assert.Equal(t, now, card.BookingTime)
	assert.Zero(t, card.Seats)
	assert.Zero(t, card.Amount)
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "Confirmed", views.NormalizeStatus("CONFIRMED"))
	assert.Equal(t, "Cancelled", views.NormalizeStatus("cancelled"))
	assert.Equal(t, "Pending", views.NormalizeStatus(""))
	assert.Equal(t, "Émis", views.NormalizeStatus("éMIS"))
	assert.Equal(t, "Ärger", views.NormalizeStatus("ÄRGER"))
}

func TestQuote(t *testing.T) {
	priced := models.Event{Price: ptr(20)}
	unpriced := models.Event{}

	assert.Equal(t, 60.0, views.QuoteFor(priced, views.TierStandard, 3).Total)
	assert.Equal(t, 100.0, views.QuoteFor(priced, views.TierVIP, 2).Total)
	q := views.QuoteFor(unpriced, views.ParseTier("VIP"), 1)
	assert.Equal(t, views.TierVIP, q.Tier)
	assert.Equal(t, 122.5, q.UnitPrice)
	assert.Equal(t, views.TierStandard, views.ParseTier("gold"))
}

func TestSeatStepper(t *testing.T) {
	assert.Equal(t, 2, views.IncrementSeats(1, 5))
	assert.Equal(t, 5, views.IncrementSeats(5, 5))
	assert.Equal(t, 10, views.IncrementSeats(10, 50))
	assert.Equal(t, 1, views.DecrementSeats(1))
	assert.Equal(t, 3, views.DecrementSeats(4))
}

func TestMapEmbedURL(t *testing.T) {
	got := views.MapEmbedURL("Hall 1, O'Brien St & Co (East)", views.DetailMapZoom)
	require.Equal(t,
		"https://maps.google.com/maps?q=Hall%201%2C%20O'Brien%20St%20%26%20Co%20(East)&t=&z=14&ie=UTF8&iwloc=&output=embed",
		got)
	assert.Contains(t, views.MapEmbedURL("x", views.AdminMapZoom), "&z=13&")
}
