package entity

// CatalogKind identifies one of the classification tables a fund references.
type CatalogKind string

const (
	CatalogAssetClasses CatalogKind = "assetclasses"
	CatalogCountries    CatalogKind = "countries"
	CatalogIndustries   CatalogKind = "industries"
	CatalogIssuers      CatalogKind = "issuers"
	CatalogEsgConcerns  CatalogKind = "esgconcerns"
)

// CatalogKinds lists every catalog in route order.
var CatalogKinds = []CatalogKind{
	CatalogAssetClasses,
	CatalogCountries,
	CatalogIndustries,
	CatalogIssuers,
	CatalogEsgConcerns,
}
