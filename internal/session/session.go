// Package session owns the bearer token for the backend API. The token is
// the only piece of client state that survives between runs; it lives in the
// OS keyring, never on disk.
package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/logger"
)

var (
	// ErrNotFound is returned when no token is stored in the keyring
	ErrNotFound = errors.New("no session token in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Session is the process-wide authentication context: loaded once at startup,
// cleared on logout or when the backend rejects the token with a 401.
type Session struct {
	token  string
	loaded bool
}

func New() *Session {
	return &Session{}
}

// Token returns the current bearer token, loading it from the keyring on
// first use. Returns the empty string when no session exists.
func (s *Session) Token() string {
	if !s.loaded {
		if err := s.Load(); err != nil && !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read session token", "error", err)
		}
	}
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Load reads the token from the OS keyring.
func (s *Session) Load() error {
	s.loaded = true
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		s.token = ""
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	s.token = token
	return nil
}

// Set stores a new token in memory and in the OS keyring.
func (s *Session) Set(token string) error {
	if token == "" {
		return errors.New("session token cannot be empty")
	}
	s.token = token
	s.loaded = true
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store session token in keyring: %w", err)
	}
	return nil
}

// Clear drops the token from memory and the keyring. Clearing an already
// empty session is not an error.
func (s *Session) Clear() error {
	s.token = ""
	s.loaded = true
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete session token from keyring: %w", err)
	}
	return nil
}
