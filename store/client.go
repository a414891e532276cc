package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	bookingRepo "staywise/database/repository/booking"
	userRepo "staywise/database/repository/user"
	"staywise/models"
	"staywise/storage"
	"staywise/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// How long an issued session stays valid.
const sessionTTL = 12 * time.Hour

// DefaultClient is the production Client. It holds the current session
// token and attaches it to every request it issues.
type DefaultClient struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Sessions SessionStore
	Storage  storage.Service

	mu    sync.RWMutex
	token string
}

func (c *DefaultClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *DefaultClient) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// SignInWithPassword authenticates staff credentials and establishes a session.
func (c *DefaultClient) SignInWithPassword(ctx context.Context, email, password string) (*models.AuthData, error) {
	user, err := c.Users.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignInWithPassword: failed to fetch user", zap.Error(err))
		return nil, NewRejection("signIn", "store unavailable", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, sessionTTL)
	if err != nil {
		utils.GetLogger().Error("SignInWithPassword: failed to generate token", zap.Error(err))
		return nil, NewRejection("signIn", "failed to establish session", err)
	}

	now := time.Now()
	session := models.StoreSession{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := c.Sessions.Save(ctx, utils.HashToken(token), session); err != nil {
		return nil, NewRejection("signIn", "failed to establish session", err)
	}
	c.setToken(token)

	return &models.AuthData{User: user, Session: &session}, nil
}

// GetSession resolves the active session. An expired or revoked token is
// cleared and reported as no session, not as an error.
func (c *DefaultClient) GetSession(ctx context.Context) (*models.StoreSession, error) {
	token := c.currentToken()
	if token == "" {
		return nil, nil
	}
	if _, err := utils.ValidateToken(token); err != nil {
		c.setToken("")
		return nil, nil
	}

	session, err := c.Sessions.Get(ctx, utils.HashToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		c.setToken("")
		return nil, nil
	}
	return session, nil
}

// GetUser resolves the full identity behind the active session.
func (c *DefaultClient) GetUser(ctx context.Context) (*models.User, error) {
	session, err := c.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}
	user, err := c.Users.GetByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}

// SignOut invalidates the active session. Signing out without one is a no-op.
func (c *DefaultClient) SignOut(ctx context.Context) error {
	token := c.currentToken()
	if token == "" {
		return nil
	}
	if err := c.Sessions.Delete(ctx, utils.HashToken(token)); err != nil {
		return NewRejection("signOut", "failed to invalidate session", err)
	}
	c.setToken("")
	return nil
}

// SignUp creates a new, unverified staff account.
func (c *DefaultClient) SignUp(ctx context.Context, email, password string, metadata models.UserMetadata) (*models.User, error) {
	if email == "" || password == "" {
		return nil, NewRejection("signUp", "email and password are required", nil)
	}

	existing, err := c.Users.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to check for existing user", zap.Error(err))
		return nil, NewRejection("signUp", "store unavailable", err)
	}
	if existing != nil {
		return nil, NewRejection("signUp", "a user with this email already exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to hash password", zap.Error(err))
		return nil, NewRejection("signUp", "failed to create account", err)
	}

	user := models.User{
		ID:            uuid.New().String(),
		FullName:      metadata.FullName,
		Email:         email,
		PasswordHash:  string(hashed),
		Avatar:        metadata.Avatar,
		EmailVerified: false,
	}
	if err := c.Users.Create(&user); err != nil {
		utils.GetLogger().Error("SignUp: failed to create user", zap.Error(err))
		return nil, NewRejection("signUp", "failed to create account", err)
	}
	return &user, nil
}

// UpdateCurrentUser applies a partial profile update to the authenticated user.
func (c *DefaultClient) UpdateCurrentUser(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
	user, err := c.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, NewRejection("updateUser", "failed to update password", err)
		}
		fields["passwordHash"] = string(hashed)
	}
	if req.FullName != "" {
		fields["fullName"] = req.FullName
	}
	if len(req.Avatar) > 0 {
		if c.Storage == nil {
			return nil, NewRejection("updateUser", "avatar storage not configured", nil)
		}
		name := fmt.Sprintf("avatar-%s-%s", user.ID, uuid.New().String())
		url, err := c.Storage.UploadAvatar(ctx, name, req.Avatar)
		if err != nil {
			return nil, NewRejection("updateUser", "failed to upload avatar", err)
		}
		fields["avatar"] = url
	}
	if len(fields) == 0 {
		return user, nil
	}

	updated, err := c.Users.UpdateFields(user.ID, fields)
	if err != nil {
		return nil, NewRejection("updateUser", "failed to update profile", err)
	}
	return updated, nil
}
