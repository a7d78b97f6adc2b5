// Package dto defines the request and response bodies of the users endpoints.
package dto

import "investiguide_backend/internal/feature/users/domain/entity"

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateUserReq is the body of PUT /users/:id. Omitted fields are unchanged.
type UpdateUserReq struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
}

// ToUpdate converts the request to a domain update.
func (r UpdateUserReq) ToUpdate() entity.ProfileUpdate {
	return entity.ProfileUpdate{Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

// NewUserResponse converts a domain user.
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// NewUserResponses converts a slice of users, never returning nil.
func NewUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
