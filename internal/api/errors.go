package api

import (
	"errors"
	"fmt"
)

// ErrMissingToken is wrapped when a login response carries no token.
var ErrMissingToken = errors.New("login response carried no token")

// ApiError is the single failure type returned by Client operations. Message
// holds the server's human-readable text when the response body had one.
type ApiError struct {
	Status  int
	Message string
	Err     error
}

func (e *ApiError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("api error (status %d): %v", e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("api request failed: %v", e.Err)
	default:
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// MessageOf returns the server-supplied message carried by err, if any.
func MessageOf(err error) string {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// MessageOr returns the server message carried by err or fallback.
func MessageOr(err error, fallback string) string {
	if msg := MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}
