package adapters

import (
	"time"

	"investiguide_backend/internal/feature/funds/domain/entity"
)

// AssetClassModel is the GORM model for the asset_classes table.
type AssetClassModel struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"size:100;not null;uniqueIndex"`
}

func (AssetClassModel) TableName() string { return "asset_classes" }

// CountryModel is the GORM model for the countries table.
type CountryModel struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"size:100;not null;uniqueIndex"`
}

func (CountryModel) TableName() string { return "countries" }

// IndustryModel is the GORM model for the industries table.
type IndustryModel struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"size:100;not null;uniqueIndex"`
}

func (IndustryModel) TableName() string { return "industries" }

// IssuerModel is the GORM model for the issuers table.
type IssuerModel struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"size:100;not null;uniqueIndex"`
}

func (IssuerModel) TableName() string { return "issuers" }

// EsgConcernModel is the GORM model for the esg_concerns table.
type EsgConcernModel struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"size:100;not null;uniqueIndex"`
}

func (EsgConcernModel) TableName() string { return "esg_concerns" }

// FundModel is the GORM model for the funds table.
type FundModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null;index"`
	Ticker       string `gorm:"size:16;index"`
	AssetClassID uint   `gorm:"not null;index"`
	AssetClass   AssetClassModel
	CountryID    uint `gorm:"not null;index"`
	Country      CountryModel
	IndustryID   uint `gorm:"not null;index"`
	Industry     IndustryModel
	IssuerID     uint `gorm:"not null;index"`
	Issuer       IssuerModel
	EsgConcernID uint `gorm:"not null;index"`
	EsgConcern   EsgConcernModel
	CreatedAt    time.Time
}

func (FundModel) TableName() string { return "funds" }

// Models returns every model of the funds feature in migration order.
func Models() []any {
	return []any{
		&AssetClassModel{},
		&CountryModel{},
		&IndustryModel{},
		&IssuerModel{},
		&EsgConcernModel{},
		&FundModel{},
	}
}

// catalogTables maps each catalog kind to its table.
var catalogTables = map[entity.CatalogKind]string{
	entity.CatalogAssetClasses: AssetClassModel{}.TableName(),
	entity.CatalogCountries:    CountryModel{}.TableName(),
	entity.CatalogIndustries:   IndustryModel{}.TableName(),
	entity.CatalogIssuers:      IssuerModel{}.TableName(),
	entity.CatalogEsgConcerns:  EsgConcernModel{}.TableName(),
}

// ToEntity converts the GORM model (with preloaded references) to a domain entity.
func (m *FundModel) ToEntity() entity.Fund {
	return entity.Fund{
		ID:         m.ID,
		Name:       m.Name,
		Ticker:     m.Ticker,
		AssetClass: entity.Ref{ID: m.AssetClassID, Label: m.AssetClass.Label},
		Country:    entity.Ref{ID: m.CountryID, Label: m.Country.Label},
		Industry:   entity.Ref{ID: m.IndustryID, Label: m.Industry.Label},
		Issuer:     entity.Ref{ID: m.IssuerID, Label: m.Issuer.Label},
		EsgConcern: entity.Ref{ID: m.EsgConcernID, Label: m.EsgConcern.Label},
		CreatedAt:  m.CreatedAt,
	}
}
