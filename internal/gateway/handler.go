// Package gateway exposes the client stores and derived views as JSON for a
// UI. It is a presentation layer: the booking API stays the authority for
// every decision, including authorization.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ms-booking-client/internal/forms"
	"ms-booking-client/internal/logger"
	"ms-booking-client/internal/state"
	"ms-booking-client/internal/tickets"
	"ms-booking-client/internal/utils"
)

const (
	codeInvalidRequest = "invalid_request"
	codeValidation     = "validation_failed"
	codeUpstream       = "upstream_error"
	codeUnauthorized   = "unauthorized"
	codeNotFound       = "not_found"
	codeInternal       = "internal_error"
)

type Handler struct {
	Store    *state.Store
	Auth     *state.AuthService
	Events   *state.EventService
	Bookings *state.BookingService
	Toasts   *state.ToastQueue
	QR       *tickets.QRGenerator
	Logger   *logger.Logger
	Now      func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *Handler) respond(w http.ResponseWriter, status int, resp utils.APIResponse) {
	if err := utils.WriteJSON(w, status, resp); err != nil {
		h.Logger.Error("HTTP", fmt.Sprintf("Failed to write response: %v", err))
	}
}

func (h *Handler) ok(w http.ResponseWriter, status int, message string, data interface{}) {
	h.respond(w, status, utils.SuccessResponse(message, data))
}

func (h *Handler) fail(w http.ResponseWriter, status int, message, code string) {
	h.respond(w, status, utils.ErrorResponse(message, code))
}

// upstreamFailure answers a failed store operation with the message that
// operation recorded.
func (h *Handler) upstreamFailure(w http.ResponseWriter, err error) {
	h.fail(w, http.StatusBadGateway, state.MessageOf(err), codeUpstream)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), codeInvalidRequest)
		return false
	}
	return true
}

// rejectInvalid surfaces a pre-network validation failure as a toast and a
// 422 without touching any store.
func (h *Handler) rejectInvalid(w http.ResponseWriter, err error) {
	msg := forms.MessageOf(err)
	if msg == "" {
		h.Logger.Error("HTTP", fmt.Sprintf("Validation error: %v", err))
		h.fail(w, http.StatusInternalServerError, "Validation could not run", codeInternal)
		return
	}
	h.Toasts.Error(msg)
	h.fail(w, http.StatusUnprocessableEntity, msg, codeValidation)
}

func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	h.ok(w, http.StatusOK, "Notifications drained", h.Toasts.Drain())
}
