package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                     // Primary key
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // Bcrypt hash, never serialized
	FullName     string    `json:"full_name" db:"full_name"`       // Display name
	Age          int       `json:"age" db:"age"`                   // Age in years
	Gender       string    `json:"gender" db:"gender"`             // Free-form gender label
	ProfileURL   *string   `json:"profile_url" db:"profile_url"`   // Avatar URL
	PhoneNumber  *string   `json:"phone_number" db:"phone_number"` // Contact phone
	Bio          *string   `json:"bio" db:"bio"`                   // Short bio
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// User is the public projection of a user. It carries no credential material.
// swagger:model User
type User struct {
	UserID      uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	ProfileURL  *string   `json:"profile_url"`
	PhoneNumber *string   `json:"phone_number"`
	Bio         *string   `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Public strips the password hash.
func (u *UserDB) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		UserID:      u.UserID,
		Email:       u.Email,
		FullName:    u.FullName,
		Age:         u.Age,
		Gender:      u.Gender,
		ProfileURL:  u.ProfileURL,
		PhoneNumber: u.PhoneNumber,
		Bio:         u.Bio,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UserSummary is the minimal projection returned by login.
// swagger:model UserSummary
type UserSummary struct {
	UserID   uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

// Summary narrows the projection to what login returns.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{UserID: u.UserID, Email: u.Email, FullName: u.FullName}
}

// UserProfile holds every mutable profile field of a user.
// Updates replace all of them; nil pointers are stored as NULL.
type UserProfile struct {
	Email       string
	FullName    string
	Age         int
	Gender      string
	ProfileURL  *string
	PhoneNumber *string
	Bio         *string
}
