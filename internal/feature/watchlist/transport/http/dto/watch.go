// Package dto defines the response bodies of the watchlist endpoints.
package dto

import (
	"time"

	"investiguide_backend/internal/feature/watchlist/domain/entity"
)

// WatchResponse is returned by POST /funds/:id/watch.
type WatchResponse struct {
	ID        uint      `json:"id"`
	User      uint      `json:"user"`
	Fund      uint      `json:"fund"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWatchResponse converts a domain watch record.
func NewWatchResponse(w *entity.WatchedSecurity) WatchResponse {
	return WatchResponse{ID: w.ID, User: w.UserID, Fund: w.FundID, CreatedAt: w.CreatedAt}
}
