// Package dto defines the request and response bodies of the recommendation endpoints.
package dto

import (
	"time"

	"investiguide_backend/internal/feature/recommendations/domain/entity"
)

// RecommendReq is the body of POST /funds/rec.
type RecommendReq struct {
	FundID uint   `json:"fundId" binding:"required"`
	User   uint   `json:"user" binding:"required"`
	Note   string `json:"note" binding:"max=2000"`
}

// FundRef embeds the recommended fund.
type FundRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// UserRef embeds a recommender or recommendee.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// RecommendationResponse is the JSON representation of a recommendation.
type RecommendationResponse struct {
	ID          uint      `json:"id"`
	Fund        FundRef   `json:"fund"`
	Recommender UserRef   `json:"recommender"`
	Recommendee UserRef   `json:"recommendee"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRecommendationResponse converts a hydrated recommendation.
func NewRecommendationResponse(d entity.Detail) RecommendationResponse {
	return RecommendationResponse{
		ID:          d.ID,
		Fund:        FundRef{ID: d.Fund.ID, Name: d.Fund.Name},
		Recommender: UserRef{ID: d.Recommender.ID, Username: d.Recommender.Name},
		Recommendee: UserRef{ID: d.Recommendee.ID, Username: d.Recommendee.Name},
		Note:        d.Note,
		CreatedAt:   d.CreatedAt,
	}
}

// NewRecommendationResponses converts a slice, never returning nil.
func NewRecommendationResponses(details []entity.Detail) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(details))
	for _, d := range details {
		out = append(out, NewRecommendationResponse(d))
	}
	return out
}
