// Package guard gates admin-only views on the current session's role.
//
// This is a UI convenience only. It reads the client's own session and is not
// a security boundary: the booking API must reject unauthorized requests on
// its own regardless of what this package decides.
package guard

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ms-booking-client/internal/logger"
	"ms-booking-client/internal/models"
)

// RedirectTarget is where denied requests are sent.
const RedirectTarget = "/"

// NormalizeRole upper-cases a role and strips a ROLE_ prefix.
func NormalizeRole(role string) string {
	return strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(role)), "ROLE_")
}

type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Check allows access iff a session exists and its normalized role is one of
// the normalized allowed roles.
func Check(session *models.Session, allowed ...string) Decision {
	if session != nil {
		role := NormalizeRole(session.Role)
		for _, a := range allowed {
			if NormalizeRole(a) == role {
				return Decision{Allowed: true}
			}
		}
	}
	return Decision{RedirectTo: RedirectTarget}
}

// SessionSource returns the current session or nil.
type SessionSource func() *models.Session

type contextKey string

const sessionKey contextKey = "session"

// RequireRole redirects to RedirectTarget unless the current session holds one
// of roles. Allowed requests carry the session in their context.
func RequireRole(sessions SessionSource, log *logger.Logger, roles ...string) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessions()
			decision := Check(session, roles...)
			if !decision.Allowed {
				who := "anonymous"
				if session != nil {
					who = fmt.Sprintf("user %s with role %q", session.ID, session.Role)
				}
				log.LogSecurity("GUARD_REDIRECT", fmt.Sprintf("%s denied %s %s", who, r.Method, r.URL.Path))
				http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session stored by RequireRole.
func SessionFrom(ctx context.Context) *models.Session {
	if s, ok := ctx.Value(sessionKey).(*models.Session); ok {
		return s
	}
	return nil
}
