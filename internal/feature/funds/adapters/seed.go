package adapters

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fixtures is the YAML document loaded by cmd/seed.
type Fixtures struct {
	AssetClasses []string      `yaml:"asset_classes"`
	Countries    []string      `yaml:"countries"`
	Industries   []string      `yaml:"industries"`
	Issuers      []string      `yaml:"issuers"`
	EsgConcerns  []string      `yaml:"esg_concerns"`
	Funds        []FundFixture `yaml:"funds"`
}

// FundFixture references its classifications by label.
type FundFixture struct {
	Name       string `yaml:"name"`
	Ticker     string `yaml:"ticker"`
	AssetClass string `yaml:"asset_class"`
	Country    string `yaml:"country"`
	Industry   string `yaml:"industry"`
	Issuer     string `yaml:"issuer"`
	EsgConcern string `yaml:"esg_concern"`
}

// LoadFixtures decodes a fixtures document, rejecting unknown keys.
func LoadFixtures(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var fx Fixtures
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &fx, nil
}

// SeedResult reports how many rows a seed run touched.
type SeedResult struct {
	CatalogEntries int
	Funds          int
}

// Seeder upserts fixtures into the funds tables.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder for the given connection.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Seed upserts catalog labels and funds in one transaction. Running it twice is a no-op.
func (s *Seeder) Seed(ctx context.Context, fx *Fixtures) (SeedResult, error) {
	var res SeedResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		catalogs := []struct {
			labels []string
			table  string
			ids    map[string]uint
		}{
			{fx.AssetClasses, AssetClassModel{}.TableName(), nil},
			{fx.Countries, CountryModel{}.TableName(), nil},
			{fx.Industries, IndustryModel{}.TableName(), nil},
			{fx.Issuers, IssuerModel{}.TableName(), nil},
			{fx.EsgConcerns, EsgConcernModel{}.TableName(), nil},
		}
		for i := range catalogs {
			ids, err := upsertLabels(tx, catalogs[i].table, catalogs[i].labels)
			if err != nil {
				return err
			}
			catalogs[i].ids = ids
			res.CatalogEntries += len(catalogs[i].labels)
		}

		for _, f := range fx.Funds {
			m := FundModel{Name: f.Name, Ticker: f.Ticker}
			refs := []struct {
				label string
				ids   map[string]uint
				dst   *uint
			}{
				{f.AssetClass, catalogs[0].ids, &m.AssetClassID},
				{f.Country, catalogs[1].ids, &m.CountryID},
				{f.Industry, catalogs[2].ids, &m.IndustryID},
				{f.Issuer, catalogs[3].ids, &m.IssuerID},
				{f.EsgConcern, catalogs[4].ids, &m.EsgConcernID},
			}
			for _, ref := range refs {
				id, ok := ref.ids[ref.label]
				if !ok {
					return fmt.Errorf("fund %q references unknown label %q", f.Name, ref.label)
				}
				*ref.dst = id
			}

			var existing FundModel
			err := tx.Where(map[string]any{"name": m.Name, "ticker": m.Ticker}).
				Assign(map[string]any{
					"asset_class_id": m.AssetClassID,
					"country_id":     m.CountryID,
					"industry_id":    m.IndustryID,
					"issuer_id":      m.IssuerID,
					"esg_concern_id": m.EsgConcernID,
				}).
				FirstOrCreate(&existing).Error
			if err != nil {
				return fmt.Errorf("failed to upsert fund %q: %w", f.Name, err)
			}
			res.Funds++
		}
		return nil
	})
	return res, err
}

// upsertLabels inserts missing labels into table and returns label -> id for all of them.
func upsertLabels(tx *gorm.DB, table string, labels []string) (map[string]uint, error) {
	ids := make(map[string]uint, len(labels))
	if len(labels) == 0 {
		return ids, nil
	}
	rows := make([]map[string]any, 0, len(labels))
	for _, l := range labels {
		rows = append(rows, map[string]any{"label": l})
	}
	if err := tx.Table(table).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "label"}}, DoNothing: true}).
		Create(rows).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert %s: %w", table, err)
	}

	var found []struct {
		ID    uint
		Label string
	}
	if err := tx.Table(table).Select("id, label").Where("label IN ?", labels).Scan(&found).Error; err != nil {
		return nil, err
	}
	for _, f := range found {
		ids[f.Label] = f.ID
	}
	return ids, nil
}
