// ABOUTME: Tests for the gateway client against httptest servers.
// ABOUTME: Covers credential gating, error classification, and payload decoding.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/harperreed/reps/internal/models"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens string

func (s staticTokens) Token() (string, error) { return string(s), nil }

func TestNoCredentialFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens(""))
	ctx := context.Background()

	calls := map[string]func() error{
		"CurrentUser":   func() error { _, err := client.CurrentUser(ctx); return err },
		"FetchSessions": func() error { _, err := client.FetchSessions(ctx); return err },
		"CreateSession": func() error { _, err := client.CreateSession(ctx, "x", nil); return err },
		"CreateExercise": func() error {
			_, err := client.CreateExercise(ctx, "s1", "SQUAT")
			return err
		},
		"CreateSet": func() error {
			_, err := client.CreateSet(ctx, "e1", models.SetRegular, 60, 5)
			return err
		},
		"DeleteSession":  func() error { return client.DeleteSession(ctx, "s1") },
		"DeleteExercise": func() error { return client.DeleteExercise(ctx, "e1") },
		"DeleteSet":      func() error { return client.DeleteSet(ctx, "t1") },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			var authErr *AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("err = %v, want AuthError", err)
			}
		})
	}

	if n := hits.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		want   string
	}{
		{400, func(err error) bool { var e *ValidationError; return errors.As(err, &e) }, "ValidationError"},
		{401, func(err error) bool { var e *AuthError; return errors.As(err, &e) }, "AuthError"},
		{404, func(err error) bool { var e *NotFoundError; return errors.As(err, &e) }, "NotFoundError"},
		{500, func(err error) bool { var e *RemoteError; return errors.As(err, &e) }, "RemoteError"},
		{503, func(err error) bool { var e *RemoteError; return errors.As(err, &e) }, "RemoteError"},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "server says no"})
		}))

		client := NewClient(srv.URL, staticTokens("tok"))
		_, err := client.FetchSessions(context.Background())
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if !tt.check(err) {
			t.Errorf("status %d: err = %T, want %s", tt.status, err, tt.want)
		}
		if err.Error() != "server says no" {
			t.Errorf("status %d: message = %q, want server says no", tt.status, err.Error())
		}
		srv.Close()
	}
}

func TestErrorMessageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("tok"))
	err := client.DeleteSession(context.Background(), "s1")

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if remote.Message == "" {
		t.Error("expected a generic fallback message")
	}
}

func TestTransportFailureIsRemoteError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, staticTokens("tok"))
	_, err := client.CurrentUser(context.Background())

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not send a bearer credential")
		}

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.c" || body["password"] != "hunter2" {
			t.Errorf("unexpected body: %v", body)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok.abc.xyz",
			"user":  map[string]string{"email": "a@b.c", "firstName": "Ada", "lastName": "L"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens(""))
	tok, user, err := client.Login(context.Background(), "a@b.c", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "tok.abc.xyz" {
		t.Errorf("token = %q", tok)
	}
	if user.FirstName != "Ada" {
		t.Errorf("user = %+v", user)
	}
}

func TestLoginFailurePropagatesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens(""))
	_, _, err := client.Login(context.Background(), "a@b.c", "wrong")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want AuthError", err)
	}
	if authErr.Message != "Invalid credentials" {
		t.Errorf("message = %q", authErr.Message)
	}
}

func TestCreateSetRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/push/set" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}

		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"set": map[string]any{
				"id":         "set-77",
				"exerciseId": body["exerciseId"],
				"type":       body["setType"],
				"weight":     body["weight"],
				"reps":       body["reps"],
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("tok"))
	set, err := client.CreateSet(context.Background(), "e1", models.SetSuperset, 42.5, 12)
	if err != nil {
		t.Fatalf("CreateSet: %v", err)
	}

	want := models.Set{ID: "set-77", ExerciseID: "e1", Type: models.SetSuperset, Weight: 42.5, Reps: 12}
	if set != want {
		t.Errorf("set = %+v, want %+v", set, want)
	}
}

func TestCreateSessionSendsOptionalDate(t *testing.T) {
	var sawDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if d, ok := body["sessionDate"].(string); ok {
			sawDate = d
		}

		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session": map[string]any{
				"id":        "s-1",
				"name":      body["sessionName"],
				"time":      "2026-04-01T09:00:00Z",
				"exercises": []any{},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("tok"))
	ctx := context.Background()

	if _, err := client.CreateSession(ctx, "Leg Day", nil); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sawDate != "" {
		t.Errorf("nil date should omit sessionDate, got %q", sawDate)
	}

	date := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	sess, err := client.CreateSession(ctx, "Leg Day", &date)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sawDate != "2026-04-01T09:00:00Z" {
		t.Errorf("sessionDate = %q", sawDate)
	}
	if sess.Name != "Leg Day" {
		t.Errorf("session = %+v", sess)
	}
}

func TestFetchSessionsRejectsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Session missing its name.
		_, _ = w.Write([]byte(`[{"id": "s1", "time": "2026-01-01T00:00:00Z", "exercises": []}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("tok"))
	_, err := client.FetchSessions(context.Background())

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
}
