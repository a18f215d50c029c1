package gateway

import (
	"net/http"

	"ms-booking-client/internal/models"
	"ms-booking-client/internal/state"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !h.decode(w, r, &creds) {
		return
	}

	session, err := h.Auth.Login(r.Context(), creds)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, state.MessageOf(err), codeUnauthorized)
		return
	}
	h.ok(w, http.StatusOK, "Login successful", session.User)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	if err := h.Auth.Register(r.Context(), req); err != nil {
		h.fail(w, http.StatusBadRequest, state.MessageOf(err), codeUpstream)
		return
	}
	h.ok(w, http.StatusCreated, "Registration successful", nil)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(r.Context())
	h.ok(w, http.StatusOK, "Logged out", nil)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	session := h.Store.Session()
	if session == nil {
		h.fail(w, http.StatusUnauthorized, "Not signed in", codeUnauthorized)
		return
	}
	h.ok(w, http.StatusOK, "Current session", session.User)
}
