// ABOUTME: Read operation for the full session tree.
// ABOUTME: Sessions arrive nested (exercises and sets) ordered by time descending.
package api

import (
	"context"
	"net/http"

	"github.com/harperreed/reps/internal/models"
)

// FetchSessions retrieves every session owned by the authenticated user,
// with exercises and sets nested, newest session first. Malformed entries
// are rejected rather than cached.
func (c *Client) FetchSessions(ctx context.Context) ([]models.Session, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var sessions []models.Session
	if err := c.doJSON(ctx, http.MethodGet, "/fetch/sessions", tok, nil, &sessions); err != nil {
		return nil, err
	}

	for i := range sessions {
		if err := sessions[i].Validate(); err != nil {
			return nil, &RemoteError{Message: "malformed session payload", Err: err}
		}
	}
	return sessions, nil
}
