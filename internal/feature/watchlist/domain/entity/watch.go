// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// WatchedSecurity records that a user is watching a fund.
// A user watches a given fund at most once.
type WatchedSecurity struct {
	ID        uint
	UserID    uint
	FundID    uint
	CreatedAt time.Time
}
