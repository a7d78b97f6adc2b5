// Package entity defines the domain models for the users feature.
package entity

// User is the public profile of an account. Credentials are owned by the auth feature.
type User struct {
	ID        uint
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil
}
