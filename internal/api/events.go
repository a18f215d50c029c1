package api

import (
	"context"
	"net/http"
	"net/url"

	"ms-booking-client/internal/models"
)

func eventPath(id models.ID) string {
	return "/events/" + url.PathEscape(id.String())
}

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	resp, err := c.do(ctx, http.MethodGet, "/events", nil, true)
	if err != nil {
		return nil, err
	}
	events, err := decode[[]models.Event](resp, "events")
	if err != nil {
		return nil, err
	}
	if *events == nil {
		return []models.Event{}, nil
	}
	return *events, nil
}

func (c *Client) GetEvent(ctx context.Context, id models.ID) (*models.Event, error) {
	resp, err := c.do(ctx, http.MethodGet, eventPath(id), nil, true)
	if err != nil {
		return nil, err
	}
	return decode[models.Event](resp, "event")
}

func (c *Client) CreateEvent(ctx context.Context, req models.EventRequest) (*models.Event, error) {
	resp, err := c.do(ctx, http.MethodPost, "/events", req, true)
	if err != nil {
		return nil, err
	}
	return decode[models.Event](resp, "created event")
}

func (c *Client) UpdateEvent(ctx context.Context, id models.ID, req models.EventRequest) (*models.Event, error) {
	resp, err := c.do(ctx, http.MethodPut, eventPath(id), req, true)
	if err != nil {
		return nil, err
	}
	return decode[models.Event](resp, "updated event")
}

func (c *Client) DeleteEvent(ctx context.Context, id models.ID) error {
	_, err := c.do(ctx, http.MethodDelete, eventPath(id), nil, true)
	return err
}
