// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the caller tries to modify another user's profile.
	ErrForbidden = errors.New("cannot modify another user")
)
