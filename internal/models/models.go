// ABOUTME: Entity types for the session/exercise/set tree and the current user.
// ABOUTME: Field names and JSON tags match the remote API payloads exactly.
package models

import (
	"fmt"
	"time"
)

// SetType tags a set as warmup, regular, or superset work.
type SetType string

const (
	SetWarmup   SetType = "WARMUP"
	SetRegular  SetType = "REGULAR"
	SetSuperset SetType = "SUPERSET"
)

// SetTypes lists every valid set type.
var SetTypes = []SetType{SetWarmup, SetRegular, SetSuperset}

// IsValidSetType reports whether s names a known set type.
func IsValidSetType(s string) bool {
	switch SetType(s) {
	case SetWarmup, SetRegular, SetSuperset:
		return true
	}
	return false
}

// User is the authenticated account. Read-only after registration.
type User struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session is a single workout: a named, timestamped container of exercises.
// IDs are assigned server-side; the client never mints them.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Time      time.Time  `json:"time"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is a named movement performed within one session.
type Exercise struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
	Sets      []Set  `json:"sets"`
}

// Set is one performed unit of an exercise.
type Set struct {
	ID         string  `json:"id"`
	ExerciseID string  `json:"exerciseId"`
	Type       SetType `json:"type"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
}

// Validate checks the fields the server is required to populate on a
// session payload. Exercises are validated recursively.
func (s *Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session missing id")
	}
	if s.Name == "" {
		return fmt.Errorf("session %s missing name", s.ID)
	}
	if s.Time.IsZero() {
		return fmt.Errorf("session %s missing time", s.ID)
	}
	for i := range s.Exercises {
		if err := s.Exercises[i].Validate(); err != nil {
			return fmt.Errorf("session %s: %w", s.ID, err)
		}
	}
	return nil
}

// Validate checks required exercise fields and every nested set.
func (e *Exercise) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("exercise missing id")
	}
	if e.Name == "" {
		return fmt.Errorf("exercise %s missing name", e.ID)
	}
	for i := range e.Sets {
		if err := e.Sets[i].Validate(); err != nil {
			return fmt.Errorf("exercise %s: %w", e.ID, err)
		}
	}
	return nil
}

// Validate checks required set fields.
func (s *Set) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("set missing id")
	}
	if !IsValidSetType(string(s.Type)) {
		return fmt.Errorf("set %s has unknown type %q", s.ID, s.Type)
	}
	if s.Weight <= 0 {
		return fmt.Errorf("set %s has non-positive weight %v", s.ID, s.Weight)
	}
	if s.Reps <= 0 {
		return fmt.Errorf("set %s has non-positive reps %d", s.ID, s.Reps)
	}
	return nil
}
