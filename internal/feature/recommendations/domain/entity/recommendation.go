// Package entity defines the domain models for the recommendations feature.
package entity

import "time"

// Recommendation is a directed note from one user to another about a fund.
type Recommendation struct {
	ID            uint
	FundID        uint
	RecommenderID uint
	RecommendeeID uint
	Note          string
	CreatedAt     time.Time
}

// Involves reports whether userID is the recommender or the recommendee.
func (r Recommendation) Involves(userID uint) bool {
	return r.RecommenderID == userID || r.RecommendeeID == userID
}

// Named is an id with a display name, used to embed related records.
type Named struct {
	ID   uint
	Name string
}

// Detail is a recommendation with its fund and users resolved for display.
type Detail struct {
	ID          uint
	Fund        Named
	Recommender Named
	Recommendee Named
	Note        string
	CreatedAt   time.Time
}
