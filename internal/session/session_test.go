package session

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndToken(t *testing.T) {
	gokeyring.MockInit()

	s := New()
	if err := s.Set("tok-123"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if got := s.Token(); got != "tok-123" {
		t.Errorf("Token() = %q, want %q", got, "tok-123")
	}
	if !s.Authenticated() {
		t.Error("Authenticated() = false after Set")
	}

	// A fresh session should load the same token from the keyring
	s2 := New()
	if got := s2.Token(); got != "tok-123" {
		t.Errorf("Token() from fresh session = %q, want %q", got, "tok-123")
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()

	s := New()
	if err := s.Set(""); err == nil {
		t.Error("Set(\"\") should return an error")
	}
}

func TestLoadNotFound(t *testing.T) {
	gokeyring.MockInit()

	s := New()
	_ = s.Clear()
	if err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want %v", err, ErrNotFound)
	}
	if s.Authenticated() {
		t.Error("Authenticated() = true with no stored token")
	}
}

func TestClear(t *testing.T) {
	gokeyring.MockInit()

	s := New()
	if err := s.Set("tok-456"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if s.Token() != "" {
		t.Errorf("Token() = %q after Clear, want empty", s.Token())
	}

	// Clearing twice must not error
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() failed: %v", err)
	}
}
