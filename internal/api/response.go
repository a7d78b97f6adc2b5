// Package api defines the JSON envelopes and parameter helpers shared by all HTTP handlers.
package api

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by /register and /login.
type TokenResponse struct {
	Token string `json:"token"`
}
