// ABOUTME: Delete operations for sessions, exercises, and sets.
// ABOUTME: Deletes cascade server-side; callers mirror them into the cache.
package api

import (
	"context"
	"net/http"
)

// DeleteSession removes a session and everything under it.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}
	body := map[string]string{"sessionId": sessionID}
	return c.doJSON(ctx, http.MethodDelete, "/drop/session", tok, body, nil)
}

// DeleteExercise removes an exercise and its sets.
func (c *Client) DeleteExercise(ctx context.Context, exerciseID string) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}
	body := map[string]string{"exerciseId": exerciseID}
	return c.doJSON(ctx, http.MethodDelete, "/drop/exercise", tok, body, nil)
}

// DeleteSet removes a single set.
func (c *Client) DeleteSet(ctx context.Context, setID string) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}
	body := map[string]string{"setId": setID}
	return c.doJSON(ctx, http.MethodDelete, "/drop/set", tok, body, nil)
}
