package views

import (
	"strings"

	"ms-booking-client/internal/models"
)

const (
	DefaultBasePrice   = 49.0
	VIPMultiplier      = 2.5
	MaxSeatsPerBooking = 10
)

type Tier string

const (
	TierStandard Tier = "standard"
	TierVIP      Tier = "vip"
)

// ParseTier falls back to standard for anything unrecognised.
func ParseTier(s string) Tier {
	if Tier(strings.ToLower(strings.TrimSpace(s))) == TierVIP {
		return TierVIP
	}
	return TierStandard
}

type Quote struct {
	Tier      Tier    `json:"tier"`
	UnitPrice float64 `json:"unitPrice"`
	Seats     int     `json:"seats"`
	Total     float64 `json:"total"`
}

// BasePrice is the event price, or DefaultBasePrice when the event has none.
func BasePrice(e models.Event) float64 {
	if e.Price == nil {
		return DefaultBasePrice
	}
	return *e.Price
}

func QuoteFor(e models.Event, tier Tier, seats int) Quote {
	unit := BasePrice(e)
	if tier == TierVIP {
		unit *= VIPMultiplier
	}
	return Quote{Tier: tier, UnitPrice: unit, Seats: seats, Total: unit * float64(seats)}
}

// IncrementSeats steps up while below both availability and the per-booking cap.
func IncrementSeats(seats, available int) int {
	if seats < available && seats < MaxSeatsPerBooking {
		return seats + 1
	}
	return seats
}

func DecrementSeats(seats int) int {
	if seats > 1 {
		return seats - 1
	}
	return seats
}
