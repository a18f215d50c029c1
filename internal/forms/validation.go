// Package forms validates user input before any network call is made.
// Validation failures carry the exact message shown to the user.
package forms

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"ms-booking-client/internal/models"
)

var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// MessageOf returns the user-facing text of a validation error, or "".
func MessageOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return ""
}

type nowKey struct{}

func withNow(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, nowKey{}, now)
}

func nowFrom(ctx context.Context) time.Time {
	if now, ok := ctx.Value(nowKey{}).(time.Time); ok {
		return now
	}
	return time.Now()
}

// futureDate accepts a timestamp string strictly after the validation clock.
var futureDate validator.FuncCtx = func(ctx context.Context, fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	t, err := models.ParseTimestamp(date)
	if err != nil {
		return false
	}
	return t.After(nowFrom(ctx))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidationCtx("future", futureDate); err != nil {
		panic(err)
	}
	return v
}

// fieldErrors indexes failed fields by struct field name.
func fieldErrors(err error) (map[string]string, error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.StructField()] = fe.Tag()
	}
	return out, nil
}

func hasTag(fields map[string]string, tag string) bool {
	for _, t := range fields {
		if t == tag {
			return true
		}
	}
	return false
}
