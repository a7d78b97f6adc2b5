// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account with its credentials.
// It owns the users table; the users feature reads a profile projection of it.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name. It must be unique across all users.
	Username string `gorm:"size:150;uniqueIndex;not null"`

	Email string `gorm:"size:255"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// TableName pins the table name shared with the users feature.
func (User) TableName() string { return "users" }
