// Package usecase implements the business logic for the recommendations feature.
package usecase

import "errors"

var (
	// ErrRecommendationNotFound is returned when no recommendation has the requested id.
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrDuplicateRecommendation is returned when duplicates are rejected and the
	// same fund was already recommended to the same user by the caller.
	ErrDuplicateRecommendation = errors.New("recommendation already exists")

	// ErrForbidden is returned when the caller is neither party of the recommendation.
	ErrForbidden = errors.New("not a party to this recommendation")

	// ErrFundNotFound is returned when the recommended fund does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrUserNotFound is returned when the recommendee does not exist.
	ErrUserNotFound = errors.New("user not found")
)
