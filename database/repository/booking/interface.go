package bookingRepo

import (
	"time"

	"staywise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its numeric ID.
	GetByID(id int64) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateFields applies a partial $set update and returns the updated record.
	UpdateFields(id int64, fields bson.M) (*models.Booking, error)
	// ListCreatedAfter retrieves bookings created at or after the cutoff.
	ListCreatedAfter(cutoff time.Time) ([]models.Booking, error)
	// ListStartingAfter retrieves bookings whose stay starts at or after the cutoff.
	ListStartingAfter(cutoff time.Time) ([]models.Booking, error)
}
