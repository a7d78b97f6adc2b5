// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to register a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when the username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrWeakPassword is returned when the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password too short")
)
