package dto

import (
	"time"

	"investiguide_backend/internal/feature/funds/domain/entity"
)

// RefItem is a classification reference in API responses.
type RefItem struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// FundResponse is the JSON representation of a fund.
type FundResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Ticker     string    `json:"ticker"`
	AssetClass RefItem   `json:"asset_class"`
	Country    RefItem   `json:"country"`
	Industry   RefItem   `json:"industry"`
	Issuer     RefItem   `json:"issuer"`
	EsgConcern RefItem   `json:"esg_concern"`
	CreatedAt  time.Time `json:"created_at"`
}

// FundListParams holds the query parameters accepted by GET /funds.
type FundListParams struct {
	AssetClass *uint   `form:"assetclass"`
	Country    *uint   `form:"country"`
	Industry   *uint   `form:"industry"`
	Issuer     *uint   `form:"issuer"`
	Esg        *[]uint `form:"esg"`
	Name       *string `form:"name"`
}

// ToFilter converts the bound parameters to a domain filter.
func (p FundListParams) ToFilter() entity.FundFilter {
	f := entity.FundFilter{
		AssetClassID: p.AssetClass,
		CountryID:    p.Country,
		IndustryID:   p.Industry,
		IssuerID:     p.Issuer,
		NamePrefix:   p.Name,
	}
	if p.Esg != nil {
		f.EsgConcernIDs = *p.Esg
	}
	return f
}

// NewRefItem converts a domain reference.
func NewRefItem(r entity.Ref) RefItem {
	return RefItem{ID: r.ID, Label: r.Label}
}

// NewRefItems converts a slice of references, never returning nil.
func NewRefItems(refs []entity.Ref) []RefItem {
	out := make([]RefItem, 0, len(refs))
	for _, r := range refs {
		out = append(out, NewRefItem(r))
	}
	return out
}

// NewFundResponse converts a domain fund.
func NewFundResponse(f entity.Fund) FundResponse {
	return FundResponse{
		ID:         f.ID,
		Name:       f.Name,
		Ticker:     f.Ticker,
		AssetClass: NewRefItem(f.AssetClass),
		Country:    NewRefItem(f.Country),
		Industry:   NewRefItem(f.Industry),
		Issuer:     NewRefItem(f.Issuer),
		EsgConcern: NewRefItem(f.EsgConcern),
		CreatedAt:  f.CreatedAt,
	}
}

// NewFundResponses converts a slice of funds, never returning nil.
func NewFundResponses(funds []entity.Fund) []FundResponse {
	out := make([]FundResponse, 0, len(funds))
	for _, f := range funds {
		out = append(out, NewFundResponse(f))
	}
	return out
}
