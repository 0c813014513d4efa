// ABOUTME: Tests for entity validation and set type checks.
// ABOUTME: Covers required-field enforcement on sessions, exercises, and sets.
package models

import (
	"encoding/json"
	"testing"
	"time"
)

func validSession() Session {
	return Session{
		ID:   "s1",
		Name: "Push Day",
		Time: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
		Exercises: []Exercise{
			{
				ID:        "e1",
				SessionID: "s1",
				Name:      "BENCH_PRESS",
				Sets: []Set{
					{ID: "t1", ExerciseID: "e1", Type: SetWarmup, Weight: 40, Reps: 12},
					{ID: "t2", ExerciseID: "e1", Type: SetRegular, Weight: 80, Reps: 5},
				},
			},
		},
	}
}

func TestIsValidSetType(t *testing.T) {
	for _, st := range SetTypes {
		if !IsValidSetType(string(st)) {
			t.Errorf("IsValidSetType(%q) = false, want true", st)
		}
	}
	for _, bad := range []string{"", "warmup", "DROPSET", "REGULAR "} {
		if IsValidSetType(bad) {
			t.Errorf("IsValidSetType(%q) = true, want false", bad)
		}
	}
}

func TestSessionValidate(t *testing.T) {
	s := validSession()
	if err := s.Validate(); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Session)
	}{
		{"missing id", func(s *Session) { s.ID = "" }},
		{"missing name", func(s *Session) { s.Name = "" }},
		{"zero time", func(s *Session) { s.Time = time.Time{} }},
		{"exercise missing id", func(s *Session) { s.Exercises[0].ID = "" }},
		{"set missing id", func(s *Session) { s.Exercises[0].Sets[0].ID = "" }},
		{"set bad type", func(s *Session) { s.Exercises[0].Sets[0].Type = "DROPSET" }},
		{"set zero weight", func(s *Session) { s.Exercises[0].Sets[0].Weight = 0 }},
		{"set negative reps", func(s *Session) { s.Exercises[0].Sets[1].Reps = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	// The wire format uses camelCase keys and RFC3339 times.
	raw := `{
		"id": "abc",
		"name": "Leg Day",
		"time": "2026-02-10T17:30:00Z",
		"exercises": [
			{"id": "e9", "sessionId": "abc", "name": "SQUAT", "sets": [
				{"id": "t4", "exerciseId": "e9", "type": "REGULAR", "weight": 100.5, "reps": 5}
			]}
		]
	}`

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if s.Exercises[0].Sets[0].Weight != 100.5 {
		t.Errorf("Weight = %v, want 100.5", s.Exercises[0].Sets[0].Weight)
	}
	if s.Time.Hour() != 17 {
		t.Errorf("Time hour = %d, want 17", s.Time.Hour())
	}
}
