package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/jotapp/jot/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Session) {
	t.Helper()
	gokeyring.MockInit()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New()
	client, err := New(srv.URL+"/api", sess)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, sess
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(map[string]any{"id": "u1", "name": "Ada", "email": "ada@example.com"})
	}))

	if err := sess.Set("tok-abc"); err != nil {
		t.Fatal(err)
	}

	if _, err := client.Auth.Me(context.Background()); err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-abc")
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestNoAuthHeaderWithoutSession(t *testing.T) {
	var gotAuth string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"token": "tok-new", "user": map[string]string{"id": "u1"}})
	}))
	_ = sess.Clear()

	resp, err := client.Auth.Login(context.Background(), "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q on unauthenticated call, want empty", gotAuth)
	}
	if resp.Token != "tok-new" {
		t.Errorf("Token = %q, want tok-new", resp.Token)
	}
	// Login must persist the token for subsequent calls
	if sess.Token() != "tok-new" {
		t.Errorf("session token = %q after login, want tok-new", sess.Token())
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	if err := sess.Set("stale-token"); err != nil {
		t.Fatal(err)
	}

	_, err := client.Auth.Me(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Me() error = %v, want ErrUnauthorized", err)
	}
	if sess.Token() != "" {
		t.Errorf("session token = %q after 401, want cleared", sess.Token())
	}
}

func TestBackendErrorMessageSurfaced(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already in use"})
	}))

	_, err := client.Auth.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "Email already in use" {
		t.Errorf("error = %d %q", apiErr.Status, apiErr.Message)
	}
}

func TestNonJSONErrorFallsBackToStatusText(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := client.Thoughts.List(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestInstancesQueryParams(t *testing.T) {
	var gotPath, gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("[]"))
	}))

	completed := false
	_, err := client.Habits.Instances(context.Background(), "2025-06-16", "2025-06-22", &completed)
	if err != nil {
		t.Fatalf("Instances() error = %v", err)
	}
	if gotPath != "/api/habits/instances" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "completed=false&end_date=2025-06-22&start_date=2025-06-16" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestDeleteInstanceBody(t *testing.T) {
	var gotMethod string
	var gotBody map[string]bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.Habits.DeleteInstance(context.Background(), "inst-1", true); err != nil {
		t.Fatalf("DeleteInstance() error = %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q", gotMethod)
	}
	if !gotBody["delete_all_future"] {
		t.Errorf("body = %v, want delete_all_future=true", gotBody)
	}
}

func TestContentListDecodesKinds(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"type":"thought","data":{"id":"th1","content":"hello","created_at":"2025-06-16T10:00:00Z"}},
			{"type":"todo","data":{"id":"td1","title":"milk","completed":false,"created_at":"2025-06-16T10:00:00Z"}},
			{"type":"habit","data":{"id":"h1","title":"run","frequency":"daily","start_date":"2025-06-16"}}
		]`))
	}))

	items, err := client.Content.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Thought == nil || items[0].Thought.Content != "hello" {
		t.Errorf("thought not decoded: %+v", items[0])
	}
	if items[1].Todo == nil || items[1].Todo.Title != "milk" {
		t.Errorf("todo not decoded: %+v", items[1])
	}
	if items[2].Habit == nil || items[2].Habit.Frequency != "daily" {
		t.Errorf("habit not decoded: %+v", items[2])
	}
}
