package models

import "time"

// Session is the client's belief about the current authenticated identity.
// IsAuthenticated is true iff User is non-nil and the last session check
// succeeded. IsLoading is true only while the initial resolution is in flight.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsLoading       bool  `json:"isLoading"`
}

// StoreSession is the durable session record held by the remote store.
type StoreSession struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthData is what the store returns from a successful password sign-in.
type AuthData struct {
	User    *User         `json:"user"`
	Session *StoreSession `json:"session"`
}
