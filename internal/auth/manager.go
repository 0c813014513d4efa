// ABOUTME: Auth session manager: owns the credential lifecycle and user state.
// ABOUTME: Sole authority for resetting the session cache on logout or expiry.
package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harperreed/reps/internal/api"
	"github.com/harperreed/reps/internal/cache"
	"github.com/harperreed/reps/internal/credential"
	"github.com/harperreed/reps/internal/models"
	"github.com/harperreed/reps/internal/token"
)

// State is the manager's position in the credential lifecycle.
type State int

const (
	StateUnauthenticated State = iota
	StateBootstrapping
	StateAuthenticated
	StateInvalidating
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateBootstrapping:
		return "bootstrapping"
	case StateAuthenticated:
		return "authenticated"
	case StateInvalidating:
		return "invalidating"
	}
	return "unknown"
}

// Manager drives the credential lifecycle: bootstrap on process start,
// explicit login/register/logout, and teardown of both credential and
// cached data when the session ends. Collaborators are injected; there is
// no global instance.
type Manager struct {
	creds *credential.Store
	api   *api.Client
	cache *cache.Store

	mu    sync.Mutex
	state State
	user  *models.User
}

// NewManager wires a manager to its credential store, gateway, and cache.
func NewManager(creds *credential.Store, client *api.Client, store *cache.Store) *Manager {
	return &Manager{
		creds: creds,
		api:   client,
		cache: store,
		state: StateUnauthenticated,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the authenticated user, or nil.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Bootstrap restores a session from the stored credential. Every failure
// path fails closed: the credential and cache are cleared and the manager
// lands in StateUnauthenticated. Errors are never surfaced.
func (m *Manager) Bootstrap(ctx context.Context) State {
	m.setState(StateBootstrapping)

	tok, err := m.creds.Token()
	if err != nil {
		return m.teardown()
	}
	if tok == "" {
		m.setState(StateUnauthenticated)
		return StateUnauthenticated
	}
	if token.IsExpired(tok, time.Now()) {
		return m.teardown()
	}

	// The token looks live; hydrate user and sessions concurrently.
	var (
		user     models.User
		sessions []models.Session
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := m.api.CurrentUser(gctx)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		s, err := m.api.FetchSessions(gctx)
		if err != nil {
			return err
		}
		sessions = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return m.teardown()
	}

	// Cache first, then the state flip: once State reports authenticated,
	// the session tree is already loaded.
	m.cache.SetSessions(sessions)
	m.mu.Lock()
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()
	return StateAuthenticated
}

// Login authenticates, persists the returned credential, and populates the
// user and session cache. Gateway errors propagate untouched and leave the
// manager unauthenticated with no partial credential persisted.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	tok, user, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := m.creds.SetToken(tok); err != nil {
		return err
	}

	sessions, err := m.api.FetchSessions(ctx)
	if err != nil {
		// The credential landed but the hydrate failed; tear back down
		// rather than hold a half-established session.
		m.teardown()
		return err
	}

	// Same ordering as Bootstrap: load the cache before reporting
	// authenticated.
	m.cache.SetSessions(sessions)
	m.mu.Lock()
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()
	return nil
}

// Register creates the account, then establishes the session by delegating
// to Login with the same credentials.
func (m *Manager) Register(ctx context.Context, firstName, lastName, email, password string) error {
	if _, err := m.api.Register(ctx, firstName, lastName, email, password); err != nil {
		return err
	}
	return m.Login(ctx, email, password)
}

// Logout clears the credential, user, and cache. Safe to call when already
// unauthenticated.
func (m *Manager) Logout() error {
	err := m.creds.ClearToken()
	m.mu.Lock()
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()
	m.cache.ClearSessions()
	return err
}

// teardown clears everything and reports the terminal state. Credential
// store failures are ignored; teardown always completes.
func (m *Manager) teardown() State {
	m.setState(StateInvalidating)
	_ = m.creds.ClearToken()
	m.mu.Lock()
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()
	m.cache.ClearSessions()
	return StateUnauthenticated
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
