package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ms-booking-client/internal/auth"
	"ms-booking-client/internal/credentials"
	"ms-booking-client/internal/logger"
	"ms-booking-client/internal/models"
)

const (
	msgInvalidCredentials = "Invalid Credentials"
	msgRegistrationFailed = "Registration Failed"
)

type AuthAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (json.RawMessage, error)
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	FetchProfile(ctx context.Context) (*models.User, error)
}

type AuthService struct {
	Store       *Store
	API         AuthAPI
	Credentials credentials.Store
	Notifier    Notifier
	Logger      *logger.Logger
	Now         func() time.Time
}

func NewAuthService(store *Store, client AuthAPI, creds credentials.Store, notifier Notifier, log *logger.Logger) *AuthService {
	if log == nil {
		log = logger.Discard()
	}
	return &AuthService{Store: store, API: client, Credentials: creds, Notifier: notifier, Logger: log, Now: time.Now}
}

// Login runs two round trips: the credential exchange, then the profile
// fetch. The persisted token and the session are committed together. When the
// profile step fails the credential that was persisted before the call is put
// back, so an existing session keeps the token it was built from.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	s.Store.Dispatch(Action{Type: AuthLoading})

	previous, err := credentials.Token(ctx, s.Credentials)
	if err != nil {
		s.Logger.Warn("AUTH", fmt.Sprintf("Could not read current credential: %v", err))
	}

	// Step 1: exchange credentials for a token and persist it
	resp, err := s.API.Login(ctx, creds)
	if err != nil {
		return nil, s.failLogin(fmt.Sprintf("Login request failed for %s", creds.Email), err)
	}
	if err := s.Credentials.Set(ctx, resp.Token); err != nil {
		return nil, s.failLogin("Failed to persist credential", err)
	}

	// Step 2: load the profile with the new token
	user, err := s.API.FetchProfile(ctx)
	if err != nil {
		s.restoreCredential(ctx, previous)
		return nil, s.failLogin("Profile fetch after login failed", err)
	}

	session := models.NewSession(*user, resp.Token)
	s.Store.Dispatch(loginSuccess(session))
	s.Logger.LogSecurity("LOGIN", fmt.Sprintf("user %s signed in with role %s", user.ID, user.Role))
	return session, nil
}

func (s *AuthService) restoreCredential(ctx context.Context, previous string) {
	var err error
	if previous == "" {
		err = s.Credentials.Delete(ctx)
	} else {
		err = s.Credentials.Set(ctx, previous)
	}
	if err != nil {
		s.Logger.Error("AUTH", fmt.Sprintf("Failed to roll back credential: %v", err))
	}
}

func (s *AuthService) failLogin(detail string, err error) *Failure {
	s.Logger.Warn("AUTH", fmt.Sprintf("%s: %v", detail, err))
	s.Store.Dispatch(failure(AuthFailure, msgInvalidCredentials))
	s.notifyError(msgInvalidCredentials)
	return &Failure{Message: msgInvalidCredentials, Err: err}
}

// Register does not sign the user in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	s.Store.Dispatch(Action{Type: AuthLoading})

	if _, err := s.API.Register(ctx, req); err != nil {
		s.Logger.Warn("AUTH", fmt.Sprintf("Registration failed for %s: %v", req.Email, err))
		s.Store.Dispatch(failure(AuthFailure, msgRegistrationFailed))
		s.notifyError(msgRegistrationFailed)
		return &Failure{Message: msgRegistrationFailed, Err: err}
	}

	s.Store.Dispatch(Action{Type: AuthRegistered})
	s.Logger.Info("AUTH", fmt.Sprintf("Registered %s", req.Email))
	return nil
}

// FetchProfile treats any failure as an expired session: the in-memory session
// is cleared without surfacing an error. The persisted token is left alone.
func (s *AuthService) FetchProfile(ctx context.Context) {
	s.Store.Dispatch(Action{Type: AuthLoading})

	user, err := s.API.FetchProfile(ctx)
	if err != nil {
		s.Logger.Warn("AUTH", fmt.Sprintf("Profile fetch failed, treating session as expired: %v", err))
		s.Store.Dispatch(Action{Type: AuthLogout})
		return
	}

	token, err := credentials.Token(ctx, s.Credentials)
	if err != nil {
		s.Logger.Warn("AUTH", fmt.Sprintf("Could not read credential for session: %v", err))
	}
	s.Store.Dispatch(loginSuccess(models.NewSession(*user, token)))
}

// Logout cannot fail: a storage error is logged and the session cleared anyway.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.Credentials.Delete(ctx); err != nil {
		s.Logger.Error("AUTH", fmt.Sprintf("Failed to delete credential: %v", err))
	}
	s.Store.Dispatch(Action{Type: AuthLogout})
	s.Logger.LogSecurity("LOGOUT", "session cleared")
}

// Rehydrate restores the session from a persisted token at startup. Tokens
// that are readable JWTs past their expiry are discarded without a request.
func (s *AuthService) Rehydrate(ctx context.Context) {
	token, err := credentials.Token(ctx, s.Credentials)
	if err != nil {
		s.Logger.Error("AUTH", fmt.Sprintf("Failed to read persisted credential: %v", err))
		return
	}
	if token == "" {
		s.Logger.Debug("AUTH", "No persisted credential, starting anonymous")
		return
	}

	if info, err := auth.InspectToken(token); err == nil {
		if info.Expired(s.now()) {
			if err := s.Credentials.Delete(ctx); err != nil {
				s.Logger.Error("AUTH", fmt.Sprintf("Failed to delete expired credential: %v", err))
			}
			s.Logger.LogSecurity("TOKEN_EXPIRED", fmt.Sprintf("persisted token for %s expired at %s", info.Subject, info.ExpiresAt.Format(time.RFC3339)))
			return
		}
		s.Logger.Debug("AUTH", fmt.Sprintf("Persisted token for %s (role %q), verifying with profile", info.Subject, info.Role))
	}

	s.FetchProfile(ctx)
}

func (s *AuthService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *AuthService) notifyError(msg string) {
	if s.Notifier != nil {
		s.Notifier.Error(msg)
	}
}
