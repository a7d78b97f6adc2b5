package entity

// FundFilter narrows a fund listing. Nil or empty fields are not applied.
// Fields are ANDed together; EsgConcernIDs matches any of its values.
type FundFilter struct {
	AssetClassID  *uint
	CountryID     *uint
	IndustryID    *uint
	IssuerID      *uint
	EsgConcernIDs []uint
	// NamePrefix matches funds whose name begins with the given text.
	NamePrefix *string
}

// IsEmpty reports whether no filter is applied.
func (f FundFilter) IsEmpty() bool {
	return f.AssetClassID == nil && f.CountryID == nil && f.IndustryID == nil &&
		f.IssuerID == nil && len(f.EsgConcernIDs) == 0 && f.NamePrefix == nil
}
