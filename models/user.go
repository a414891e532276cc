package models

import "time"

// User represents a staff member of the hotel back office.
type User struct {
	ID            string    `bson:"id" json:"id"`
	FullName      string    `bson:"fullName" json:"fullName"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	Avatar        string    `bson:"avatar" json:"avatar"`
	EmailVerified bool      `bson:"emailVerified" json:"emailVerified"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserMetadata carries optional profile fields supplied at signup.
type UserMetadata struct {
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// UserUpdateRequest is a partial update of the current user's profile.
// Zero values mean "leave unchanged"; Avatar is raw image data to upload.
type UserUpdateRequest struct {
	Password   string `json:"password,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	Avatar     []byte `json:"-"`
	AvatarName string `json:"-"`
}
