// Package views derives presentation data from store state. Everything here
// is a pure function of its inputs and is recomputed on each request.
package views

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"ms-booking-client/internal/models"
)

// EventFilter narrows an event listing. A nil MaxPrice or empty Date disables
// that predicate.
type EventFilter struct {
	Search   string
	Date     string
	MaxPrice *float64
}

func (f EventFilter) Matches(e models.Event) bool {
	if !strings.Contains(strings.ToLower(e.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Date != "" && !strings.HasPrefix(e.Date, f.Date) {
		return false
	}
	if f.MaxPrice != nil && e.PriceOrZero() > *f.MaxPrice {
		return false
	}
	return true
}

// FilterEvents keeps source order.
func FilterEvents(events []models.Event, f EventFilter) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

type Capacity struct {
	Booked     int  `json:"booked"`
	Percentage int  `json:"percentage"`
	SoldOut    bool `json:"soldOut"`
}

func CapacityOf(total, available int) Capacity {
	c := Capacity{Booked: total - available}
	if total > 0 {
		c.Percentage = int(math.Round(float64(c.Booked) / float64(total) * 100))
		c.SoldOut = available == 0
	}
	return c
}

func EventCapacity(e models.Event) Capacity {
	return CapacityOf(e.TotalSeats, e.AvailableSeats)
}

const (
	DetailMapZoom = 14
	AdminMapZoom  = 13
)

// MapEmbedURL builds an embeddable map query for a free-text location.
func MapEmbedURL(location string, zoom int) string {
	return fmt.Sprintf("https://maps.google.com/maps?q=%s&t=&z=%d&ie=UTF8&iwloc=&output=embed", encodeURIComponent(location), zoom)
}

// encodeURIComponent leaves the same characters unescaped as the browser
// function of that name.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
