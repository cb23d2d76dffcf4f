package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jotapp/jot/internal/models"
)

type TodoService struct {
	c *Client
}

// TodoUpdate carries the fields of a PUT /todos/:id. Nil fields are omitted
// so the backend leaves them untouched.
type TodoUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (s *TodoService) List(ctx context.Context, completed *bool) ([]models.Todo, error) {
	var query url.Values
	if completed != nil {
		query = url.Values{"completed": {strconv.FormatBool(*completed)}}
	}
	var todos []models.Todo
	if err := s.c.do(ctx, http.MethodGet, "/todos", query, nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, id string) (*models.Todo, error) {
	var todo models.Todo
	if err := s.c.do(ctx, http.MethodGet, "/todos/"+id, nil, nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *TodoService) Create(ctx context.Context, title string, description, dueDate *string) (*models.Todo, error) {
	body := map[string]any{"title": title}
	if description != nil {
		body["description"] = *description
	}
	if dueDate != nil {
		body["due_date"] = *dueDate
	}
	var todo models.Todo
	if err := s.c.do(ctx, http.MethodPost, "/todos", nil, body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *TodoService) Update(ctx context.Context, id string, update TodoUpdate) (*models.Todo, error) {
	var todo models.Todo
	if err := s.c.do(ctx, http.MethodPut, "/todos/"+id, nil, update, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// SetCompleted toggles the completion flag, returning the updated todo.
func (s *TodoService) SetCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error) {
	return s.Update(ctx, id, TodoUpdate{Completed: &completed})
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/todos/"+id, nil, nil, nil)
}
