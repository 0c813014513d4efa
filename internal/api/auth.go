// ABOUTME: Account operations: register, login, and current-user lookup.
// ABOUTME: Register and login are the only calls made without a credential.
package api

import (
	"context"
	"net/http"

	"github.com/harperreed/reps/internal/models"
)

// Register creates a new account and returns the server-assigned user id.
// It does not establish a session; callers log in afterwards.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
	}

	var resp struct {
		UserID string `json:"userId"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", body, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// Login exchanges credentials for a bearer token and the account profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, models.User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return "", models.User{}, err
	}
	if resp.Token == "" {
		return "", models.User{}, &RemoteError{Message: "login response missing token"}
	}
	return resp.Token, resp.User, nil
}

// CurrentUser fetches the profile for the stored credential.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	tok, err := c.bearer()
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", tok, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
