package forms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ms-booking-client/internal/models"
)

const (
	MsgRequiredFields = "Please fill all required fields"
	MsgSeatsPositive  = "Total seats must be greater than zero"
	MsgPriceNegative  = "Price cannot be negative"
	MsgDateInPast     = "Event date must be in the future"

	// FormDateLayout is the local date-time an admin edits.
	FormDateLayout = "2006-01-02T15:04"
	// PayloadDateLayout is the zone-less UTC date-time sent to the API.
	PayloadDateLayout = "2006-01-02T15:04:05"
)

// EventForm is the admin create/edit form. Pointer fields distinguish an
// empty input from zero.
type EventForm struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Date        string   `json:"date" validate:"required,future"`
	TotalSeats  *int     `json:"totalSeats" validate:"required,gt=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Img         string   `json:"img"`
}

// Validate checks required fields first, then seats, price and date, and
// reports only the first failing rule.
func (f EventForm) Validate(now time.Time) error {
	err := validate.StructCtx(withNow(context.Background(), now), f)
	if err == nil {
		return nil
	}
	fields, err := fieldErrors(err)
	if err != nil {
		return fmt.Errorf("failed to validate event form: %w", err)
	}

	switch {
	case hasTag(fields, "required"):
		return invalid(MsgRequiredFields)
	case fields["TotalSeats"] != "":
		return invalid(MsgSeatsPositive)
	case fields["Price"] != "":
		return invalid(MsgPriceNegative)
	default:
		return invalid(MsgDateInPast)
	}
}

// ToRequest validates and converts the form to the API payload. The date is
// sent in UTC; a blank image becomes null.
func (f EventForm) ToRequest(now time.Time) (models.EventRequest, error) {
	if err := f.Validate(now); err != nil {
		return models.EventRequest{}, err
	}
	at, err := models.ParseTimestamp(f.Date)
	if err != nil {
		return models.EventRequest{}, invalid(MsgDateInPast)
	}

	req := models.EventRequest{
		Title:       f.Title,
		Description: f.Description,
		Location:    f.Location,
		Date:        at.UTC().Format(PayloadDateLayout),
		TotalSeats:  *f.TotalSeats,
		Price:       *f.Price,
	}
	if img := strings.TrimSpace(f.Img); img != "" {
		req.Img = &img
	}
	return req, nil
}

// EventFormFromEvent pre-fills the edit form with the event's local date-time.
func EventFormFromEvent(e models.Event) EventForm {
	seats := e.TotalSeats
	price := e.PriceOrZero()
	form := EventForm{
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		TotalSeats:  &seats,
		Price:       &price,
		Img:         e.Img,
	}
	if at, err := e.StartsAt(); err == nil {
		form.Date = at.In(time.Local).Format(FormDateLayout)
	}
	return form
}
