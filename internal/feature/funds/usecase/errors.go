// Package usecase implements the business logic for the funds feature.
package usecase

import "errors"

var (
	// ErrFundNotFound is returned when no fund has the requested id.
	ErrFundNotFound = errors.New("fund not found")

	// ErrUnknownCatalog is returned for a catalog kind that does not exist.
	ErrUnknownCatalog = errors.New("unknown catalog")
)
