// Package entity defines the domain models for the funds feature.
package entity

import "time"

// Ref is a classification reference (asset class, country, industry, issuer or ESG concern).
type Ref struct {
	ID    uint
	Label string
}

// Fund is an investable security together with its classification references.
type Fund struct {
	ID         uint
	Name       string
	Ticker     string
	AssetClass Ref
	Country    Ref
	Industry   Ref
	Issuer     Ref
	EsgConcern Ref
	CreatedAt  time.Time
}
