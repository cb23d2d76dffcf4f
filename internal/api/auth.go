package api

import (
	"context"
	"net/http"

	"github.com/jotapp/jot/internal/models"
)

type AuthService struct {
	c *Client
}

// Login exchanges credentials for a token and stores it in the session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	if err := s.c.session.Set(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and stores the returned token in the session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp models.AuthResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/register", nil, body, &resp); err != nil {
		return nil, err
	}
	if err := s.c.session.Set(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the authenticated user.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, current, newPassword string) error {
	body := map[string]string{"current_password": current, "new_password": newPassword}
	return s.c.do(ctx, http.MethodPost, "/auth/change-password", nil, body, nil)
}

func (s *AuthService) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := s.c.do(ctx, http.MethodGet, "/auth/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Logout drops the local session. The token is stateless on the backend, so
// this is purely client-side teardown.
func (s *AuthService) Logout() error {
	return s.c.session.Clear()
}
