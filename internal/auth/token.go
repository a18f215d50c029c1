package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can learn from a bearer token without the
// signing key. It is never used to authorize anything.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an exp claim that lies before now.
// Tokens without exp never expire client-side.
func (ti TokenInfo) Expired(now time.Time) bool {
	return !ti.ExpiresAt.IsZero() && !now.Before(ti.ExpiresAt)
}

// InspectToken parses a JWT without verifying its signature.
func InspectToken(tokenString string) (*TokenInfo, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	return info, nil
}

// BearerHeader formats an Authorization header value.
func BearerHeader(token string) string {
	return "Bearer " + token
}
