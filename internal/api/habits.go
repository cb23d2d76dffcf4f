package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jotapp/jot/internal/models"
)

type HabitService struct {
	c *Client
}

type HabitCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Frequency   string  `json:"frequency,omitempty"`
	StartDate   string  `json:"start_date,omitempty"`
}

type HabitUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Frequency   *string `json:"frequency,omitempty"`
	DueTime     *string `json:"due_time,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// InstanceUpdate mutates one occurrence, not the template.
type InstanceUpdate struct {
	Completed *bool `json:"completed,omitempty"`
	Skipped   *bool `json:"skipped,omitempty"`
}

func (s *HabitService) List(ctx context.Context, active *bool) ([]models.Habit, error) {
	var query url.Values
	if active != nil {
		query = url.Values{"is_active": {strconv.FormatBool(*active)}}
	}
	var habits []models.Habit
	if err := s.c.do(ctx, http.MethodGet, "/habits", query, nil, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *HabitService) Get(ctx context.Context, id string) (*models.Habit, error) {
	var habit models.Habit
	if err := s.c.do(ctx, http.MethodGet, "/habits/"+id, nil, nil, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *HabitService) Create(ctx context.Context, create HabitCreate) (*models.Habit, error) {
	var habit models.Habit
	if err := s.c.do(ctx, http.MethodPost, "/habits", nil, create, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *HabitService) Update(ctx context.Context, id string, update HabitUpdate) (*models.Habit, error) {
	var habit models.Habit
	if err := s.c.do(ctx, http.MethodPut, "/habits/"+id, nil, update, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

// Delete removes a habit template. deleteAllFuture also removes its not-yet
// completed future instances; past instances always survive.
func (s *HabitService) Delete(ctx context.Context, id string, deleteAllFuture bool) error {
	body := map[string]bool{"delete_all_future": deleteAllFuture}
	return s.c.do(ctx, http.MethodDelete, "/habits/"+id, nil, body, nil)
}

// Instances returns scheduled occurrences between two calendar dates
// (inclusive, YYYY-MM-DD).
func (s *HabitService) Instances(ctx context.Context, startDate, endDate string, completed *bool) ([]models.HabitInstance, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	if completed != nil {
		query.Set("completed", strconv.FormatBool(*completed))
	}
	var instances []models.HabitInstance
	if err := s.c.do(ctx, http.MethodGet, "/habits/instances", query, nil, &instances); err != nil {
		return nil, err
	}
	return instances, nil
}

func (s *HabitService) UpdateInstance(ctx context.Context, id string, update InstanceUpdate) (*models.HabitInstance, error) {
	var instance models.HabitInstance
	if err := s.c.do(ctx, http.MethodPut, "/habits/instances/"+id, nil, update, &instance); err != nil {
		return nil, err
	}
	return &instance, nil
}

func (s *HabitService) DeleteInstance(ctx context.Context, id string, deleteAllFuture bool) error {
	body := map[string]bool{"delete_all_future": deleteAllFuture}
	return s.c.do(ctx, http.MethodDelete, "/habits/instances/"+id, nil, body, nil)
}
