package api

import (
	"context"
	"encoding/json"
	"net/http"

	"ms-booking-client/internal/models"
)

// Register returns the raw response body; its shape is server-defined.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/register", req, false)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", creds, false)
	if err != nil {
		return nil, err
	}
	out, err := decode[models.LoginResponse](resp, "login response")
	if err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, &ApiError{Status: resp.Status, Err: ErrMissingToken}
	}
	return out, nil
}

func (c *Client) FetchProfile(ctx context.Context) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, true)
	if err != nil {
		return nil, err
	}
	return decode[models.User](resp, "profile")
}
