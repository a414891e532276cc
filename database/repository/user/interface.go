package userRepo

import (
	"staywise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for staff user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a partial $set update and returns the updated record.
	UpdateFields(id string, fields bson.M) (*models.User, error)
}
