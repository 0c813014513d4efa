// ABOUTME: Create operations for sessions, exercises, and sets.
// ABOUTME: Each returns the server's echo of the created entity, validated.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/harperreed/reps/internal/models"
)

// CreateSession creates a named session. A nil date defaults to the
// server's creation time.
func (c *Client) CreateSession(ctx context.Context, name string, date *time.Time) (models.Session, error) {
	tok, err := c.bearer()
	if err != nil {
		return models.Session{}, err
	}

	body := map[string]any{"sessionName": name}
	if date != nil {
		body["sessionDate"] = date.Format(time.RFC3339)
	}

	var resp struct {
		Session models.Session `json:"session"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/push/session", tok, body, &resp); err != nil {
		return models.Session{}, err
	}
	if err := resp.Session.Validate(); err != nil {
		return models.Session{}, &RemoteError{Message: "malformed session payload", Err: err}
	}
	return resp.Session, nil
}

// CreateExercise adds a named exercise to an existing session.
func (c *Client) CreateExercise(ctx context.Context, sessionID, exerciseName string) (models.Exercise, error) {
	tok, err := c.bearer()
	if err != nil {
		return models.Exercise{}, err
	}

	body := map[string]string{
		"sessionId":    sessionID,
		"exerciseName": exerciseName,
	}

	var resp struct {
		Exercise models.Exercise `json:"exercise"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/push/exercise", tok, body, &resp); err != nil {
		return models.Exercise{}, err
	}
	if err := resp.Exercise.Validate(); err != nil {
		return models.Exercise{}, &RemoteError{Message: "malformed exercise payload", Err: err}
	}
	return resp.Exercise, nil
}

// CreateSet adds a set to an existing exercise.
func (c *Client) CreateSet(ctx context.Context, exerciseID string, setType models.SetType, weight float64, reps int) (models.Set, error) {
	tok, err := c.bearer()
	if err != nil {
		return models.Set{}, err
	}

	body := map[string]any{
		"exerciseId": exerciseID,
		"setType":    setType,
		"weight":     weight,
		"reps":       reps,
	}

	var resp struct {
		Set models.Set `json:"set"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/push/set", tok, body, &resp); err != nil {
		return models.Set{}, err
	}
	if err := resp.Set.Validate(); err != nil {
		return models.Set{}, &RemoteError{Message: "malformed set payload", Err: err}
	}
	return resp.Set, nil
}
