package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"ms-booking-client/internal/models"
)

// The booking endpoints answer either with the resource itself or with the
// resource wrapped under "data". These helpers are the only place that knows.

// MessageFromBody extracts a top-level "message" string from a JSON body.
func MessageFromBody(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	msg := gjson.GetBytes(body, "message")
	if msg.Type != gjson.String {
		return ""
	}
	return msg.String()
}

// BookingsFromBody accepts a bare array or {"data": [...]}, trying "data" first.
func BookingsFromBody(body []byte) ([]models.Booking, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("bookings response is not valid JSON")
	}
	root := gjson.ParseBytes(body)

	list := root.Get("data")
	if !list.IsArray() {
		list = root
	}
	if !list.IsArray() {
		return nil, errors.New("bookings response is neither an array nor an object with a data array")
	}

	bookings := []models.Booking{}
	if err := json.Unmarshal([]byte(list.Raw), &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// BookingFromBody accepts a booking object or {"data": {...}}.
func BookingFromBody(body []byte) (*models.Booking, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("booking response is not valid JSON")
	}
	root := gjson.ParseBytes(body)

	obj := root.Get("data")
	if !obj.IsObject() {
		obj = root
	}
	if !obj.IsObject() {
		return nil, errors.New("booking response is not an object")
	}

	var booking models.Booking
	if err := json.Unmarshal([]byte(obj.Raw), &booking); err != nil {
		return nil, fmt.Errorf("failed to decode booking: %w", err)
	}
	return &booking, nil
}
