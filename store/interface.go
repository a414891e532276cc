package store

import (
	"context"
	"time"

	"staywise/models"
)

// Client issues authenticated requests against the remote data store. The
// store is the durable owner of all records; everything the client hands
// back is a non-authoritative mirror.
type Client interface {
	// SignInWithPassword authenticates staff credentials. On refusal it
	// returns ErrInvalidCredentials.
	SignInWithPassword(ctx context.Context, email, password string) (*models.AuthData, error)
	// GetSession resolves the active session, or (nil, nil) when none
	// exists or the previous one expired. It has no side effects beyond
	// clearing an expired token; concurrent calls are idempotent.
	GetSession(ctx context.Context) (*models.StoreSession, error)
	// GetUser resolves the full identity behind the active session.
	GetUser(ctx context.Context) (*models.User, error)
	// SignOut invalidates the active session.
	SignOut(ctx context.Context) error
	// SignUp creates a new, unverified staff account.
	SignUp(ctx context.Context, email, password string, metadata models.UserMetadata) (*models.User, error)
	// UpdateCurrentUser applies a partial profile update to the
	// authenticated user, uploading a new avatar when supplied.
	UpdateCurrentUser(ctx context.Context, req models.UserUpdateRequest) (*models.User, error)

	// GetBooking fetches a single booking by ID.
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	// UpdateBooking applies a partial update. The store is the authority
	// on status transitions and refuses illegal ones with a RejectionError.
	UpdateBooking(ctx context.Context, id int64, update models.BookingUpdate) (*models.Booking, error)
	// BookingsAfterDate lists bookings created at or after the cutoff.
	BookingsAfterDate(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
	// StaysAfterDate lists bookings whose stay starts at or after the cutoff.
	StaysAfterDate(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
}
