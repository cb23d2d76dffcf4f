package api

import (
	"context"
	"net/http"

	"github.com/jotapp/jot/internal/models"
)

type ContentService struct {
	c *Client
}

// Create submits free-form text for classification. The viewer's IANA
// timezone rides along so the backend can resolve relative dates ("tomorrow")
// in the right calendar.
func (s *ContentService) Create(ctx context.Context, text, timezone string) (*models.ContentItem, error) {
	body := map[string]string{"text": text, "timezone": timezone}
	var item models.ContentItem
	if err := s.c.do(ctx, http.MethodPost, "/content", nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every content item (thoughts, todos, habit templates) tagged
// with its kind.
func (s *ContentService) List(ctx context.Context) ([]models.ContentItem, error) {
	var items []models.ContentItem
	if err := s.c.do(ctx, http.MethodGet, "/content", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
