package models

import (
	"time"
)

type Event struct {
	ID             ID       `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Date           string   `json:"date"`
	TotalSeats     int      `json:"totalSeats"`
	AvailableSeats int      `json:"availableSeats"`
	Price          *float64 `json:"price"`
	Img            string   `json:"img,omitempty"`
}

// PriceOrZero treats a missing price as free.
func (e Event) PriceOrZero() float64 {
	if e.Price == nil {
		return 0
	}
	return *e.Price
}

func (e Event) StartsAt() (time.Time, error) {
	return ParseTimestamp(e.Date)
}

// EventRequest is the admin create/update payload.
type EventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	TotalSeats  int     `json:"totalSeats"`
	Price       float64 `json:"price"`
	Img         *string `json:"img"`
}
