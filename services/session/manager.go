package session

import (
	"context"
	"errors"
	"sync"

	"staywise/cache"
	"staywise/models"
	"staywise/nav"
	"staywise/store"
	"staywise/utils"

	"go.uber.org/zap"
)

// Fixed user-facing messages. Store details are logged, never shown.
const (
	msgLoginFailed   = "Provided email or password are incorrect"
	msgLoginOK       = "Login successful"
	msgSignupOK      = "Signup successful, please verify the new user account from the user's email"
	msgSignupFailed  = "Failed to signup"
	msgLogoutFailed  = "Failed to log out"
	msgAccountOK     = "Account successfully updated"
	msgAccountFailed = "Failed to update account"
)

// sessionState guards the Session value. Re-entrant resolutions each run
// to completion; the last writer wins.
type sessionState struct {
	mu      sync.RWMutex
	session models.Session
}

func (s *sessionState) set(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

func (s *sessionState) get() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (m *DefaultSessionManager) setAuthenticated(user *models.User) {
	m.state.set(models.Session{User: user, IsAuthenticated: true})
}

func (m *DefaultSessionManager) setUnauthenticated() {
	m.state.set(models.Session{})
}

// Snapshot returns the current session belief without a remote call.
func (m *DefaultSessionManager) Snapshot() models.Session {
	return m.state.get()
}

// Login attempts a password sign-in.
func (m *DefaultSessionManager) Login(ctx context.Context, email, password string, onSettled func()) (*models.User, error) {
	defer func() {
		if onSettled != nil {
			onSettled()
		}
	}()

	data, err := m.Store.SignInWithPassword(ctx, email, password)
	if err != nil {
		utils.GetLogger().Warn("Login failed", zap.String("email", email), zap.Error(err))
		m.setUnauthenticated()
		m.Notifier.Error(msgLoginFailed)
		return nil, err
	}

	m.setAuthenticated(data.User)
	if err := m.Cache.SetEntry(ctx, cache.KeyUser, data.User); err != nil {
		utils.GetLogger().Warn("Login: failed to cache user", zap.Error(err))
	}
	m.Notifier.Success(msgLoginOK)
	m.Nav.GoTo(nav.PathDashboard, true)
	return data.User, nil
}

// Signup creates a new, unverified staff account. The current session is
// untouched: the signed-in operator stays signed in.
func (m *DefaultSessionManager) Signup(ctx context.Context, email, password, fullName string) (*models.User, error) {
	user, err := m.Store.SignUp(ctx, email, password, models.UserMetadata{FullName: fullName})
	if err != nil {
		utils.GetLogger().Warn("Signup failed", zap.String("email", email), zap.Error(err))
		m.Notifier.Error(signupErrorMessage(err))
		return nil, err
	}
	m.Notifier.Success(msgSignupOK)
	return user, nil
}

// signupErrorMessage surfaces the store-provided reason when one exists.
func signupErrorMessage(err error) string {
	var rejection *store.RejectionError
	if errors.As(err, &rejection) && rejection.Reason != "" {
		return rejection.Reason
	}
	return msgSignupFailed
}

// Logout invalidates the session.
func (m *DefaultSessionManager) Logout(ctx context.Context) error {
	if err := m.Store.SignOut(ctx); err != nil {
		utils.GetLogger().Error("Logout failed", zap.Error(err))
		m.Notifier.Error(msgLogoutFailed)
		return err
	}
	m.setUnauthenticated()
	m.Nav.GoTo(nav.PathLogin, true)
	return nil
}

// CurrentSession resolves the session against the remote store. A failed
// resolution silently lands in the unauthenticated state; there is no
// error toast for an expired session.
func (m *DefaultSessionManager) CurrentSession(ctx context.Context) models.Session {
	storeSession, err := m.Store.GetSession(ctx)
	if err != nil {
		utils.GetLogger().Warn("Session resolution failed", zap.Error(err))
		m.setUnauthenticated()
		return m.state.get()
	}
	if storeSession == nil {
		m.setUnauthenticated()
		return m.state.get()
	}

	user, err := m.Store.GetUser(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoSession) {
			utils.GetLogger().Warn("User resolution failed", zap.Error(err))
		}
		m.setUnauthenticated()
		return m.state.get()
	}

	m.setAuthenticated(user)
	return m.state.get()
}

// UpdateCurrentUser applies a partial profile update to the authenticated user.
func (m *DefaultSessionManager) UpdateCurrentUser(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
	user, err := m.Store.UpdateCurrentUser(ctx, req)
	if err != nil {
		utils.GetLogger().Warn("Account update failed", zap.Error(err))
		m.Notifier.Error(msgAccountFailed)
		return nil, err
	}

	m.setAuthenticated(user)
	if err := m.Cache.SetEntry(ctx, cache.KeyUser, user); err != nil {
		utils.GetLogger().Warn("Account update: failed to cache user", zap.Error(err))
	}
	m.Notifier.Success(msgAccountOK)
	return user, nil
}
