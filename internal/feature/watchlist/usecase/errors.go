// Package usecase implements the business logic for the watchlist feature.
package usecase

import "errors"

var (
	// ErrFundNotFound is returned when the fund to watch or unwatch does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrAlreadyWatching is returned when the caller already watches the fund.
	ErrAlreadyWatching = errors.New("already watching this fund")

	// ErrNotWatching is returned when the caller does not watch the fund.
	ErrNotWatching = errors.New("not watching this fund")
)
