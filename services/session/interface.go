package session

import (
	"context"

	"staywise/cache"
	"staywise/models"
	"staywise/nav"
	"staywise/notify"
	"staywise/store"
)

// SessionManager owns the authenticated-user lifecycle. It is the sole
// writer of the Session value; consumers such as the route guard only read.
type SessionManager interface {
	// Login attempts a password sign-in. onSettled is invoked exactly once
	// after the attempt settles, success or failure, so the caller can
	// clear transient credential buffers.
	Login(ctx context.Context, email, password string, onSettled func()) (*models.User, error)
	// Signup creates a new, unverified staff account.
	Signup(ctx context.Context, email, password, fullName string) (*models.User, error)
	// Logout invalidates the session; afterwards the route guard treats
	// the user as unauthenticated.
	Logout(ctx context.Context) error
	// CurrentSession resolves the session against the remote store and
	// returns the updated state. Concurrent calls are idempotent; the
	// last writer wins.
	CurrentSession(ctx context.Context) models.Session
	// Snapshot returns the current session belief without a remote call.
	Snapshot() models.Session
	// UpdateCurrentUser applies a partial profile update to the
	// authenticated user.
	UpdateCurrentUser(ctx context.Context, req models.UserUpdateRequest) (*models.User, error)
}

// DefaultSessionManager is the production implementation.
type DefaultSessionManager struct {
	Store    store.Client
	Cache    cache.QueryCache
	Notifier notify.Notifier
	Nav      nav.Navigator

	state sessionState
}

// NewDefaultSessionManager builds a manager in the Unknown state
// (isLoading=true) until the first resolution settles.
func NewDefaultSessionManager(st store.Client, qc cache.QueryCache, n notify.Notifier, navigator nav.Navigator) *DefaultSessionManager {
	m := &DefaultSessionManager{
		Store:    st,
		Cache:    qc,
		Notifier: n,
		Nav:      navigator,
	}
	m.state.set(models.Session{IsLoading: true})
	return m
}
