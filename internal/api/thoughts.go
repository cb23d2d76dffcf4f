package api

import (
	"context"
	"net/http"

	"github.com/jotapp/jot/internal/models"
)

type ThoughtService struct {
	c *Client
}

func (s *ThoughtService) List(ctx context.Context) ([]models.Thought, error) {
	var thoughts []models.Thought
	if err := s.c.do(ctx, http.MethodGet, "/thoughts", nil, nil, &thoughts); err != nil {
		return nil, err
	}
	return thoughts, nil
}

func (s *ThoughtService) Get(ctx context.Context, id string) (*models.Thought, error) {
	var thought models.Thought
	if err := s.c.do(ctx, http.MethodGet, "/thoughts/"+id, nil, nil, &thought); err != nil {
		return nil, err
	}
	return &thought, nil
}

func (s *ThoughtService) Create(ctx context.Context, content string) (*models.Thought, error) {
	var thought models.Thought
	body := map[string]string{"content": content}
	if err := s.c.do(ctx, http.MethodPost, "/thoughts", nil, body, &thought); err != nil {
		return nil, err
	}
	return &thought, nil
}

func (s *ThoughtService) Update(ctx context.Context, id, content string) (*models.Thought, error) {
	var thought models.Thought
	body := map[string]string{"content": content}
	if err := s.c.do(ctx, http.MethodPut, "/thoughts/"+id, nil, body, &thought); err != nil {
		return nil, err
	}
	return &thought, nil
}

func (s *ThoughtService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/thoughts/"+id, nil, nil, nil)
}
