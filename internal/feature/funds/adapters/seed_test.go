package adapters

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investiguide_backend/internal/feature/funds/domain/entity"
	"investiguide_backend/internal/platform/db/dbtest"
)

const fixturesYAML = `
asset_classes: [Equity, Bond]
countries: [United States]
industries: [Technology]
issuers: [Vanguard]
esg_concerns: [None, Climate]
funds:
  - name: Vanguard 500
    ticker: VFIAX
    asset_class: Equity
    country: United States
    industry: Technology
    issuer: Vanguard
    esg_concern: None
  - name: Vanguard Total Bond
    ticker: VBTLX
    asset_class: Bond
    country: United States
    industry: Technology
    issuer: Vanguard
    esg_concern: Climate
`

func TestLoadFixtures(t *testing.T) {
	t.Parallel()

	fx, err := LoadFixtures(strings.NewReader(fixturesYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Equity", "Bond"}, fx.AssetClasses)
	require.Len(t, fx.Funds, 2)
	assert.Equal(t, "VFIAX", fx.Funds[0].Ticker)
	assert.Equal(t, "Climate", fx.Funds[1].EsgConcern)
}

// TestLoadFixtures_UnknownField は未知のキーがエラーになることを検証します。
func TestLoadFixtures_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := LoadFixtures(strings.NewReader("sectors: [Tech]\n"))
	assert.Error(t, err)
}

// TestSeeder_Seed はシードが冪等であり、分類参照が解決されることを検証します。
func TestSeeder_Seed(t *testing.T) {
	t.Parallel()

	db := dbtest.NewSQLite(t, Models()...)
	fx, err := LoadFixtures(strings.NewReader(fixturesYAML))
	require.NoError(t, err)

	seeder := NewSeeder(db)
	res, err := seeder.Seed(context.Background(), fx)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{CatalogEntries: 7, Funds: 2}, res)

	// 2回目の実行で行が増えないこと
	_, err = seeder.Seed(context.Background(), fx)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&FundModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
	require.NoError(t, db.Model(&AssetClassModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	funds, err := NewFundRepository(db).List(context.Background(), entity.FundFilter{})
	require.NoError(t, err)
	require.Len(t, funds, 2)
	assert.Equal(t, "Vanguard 500", funds[0].Name)
	assert.Equal(t, "Equity", funds[0].AssetClass.Label)
	assert.Equal(t, "Bond", funds[1].AssetClass.Label)
	assert.Equal(t, "Climate", funds[1].EsgConcern.Label)
}

// TestSeeder_Seed_UnknownLabel は未定義ラベルを参照するとロールバックされることを検証します。
func TestSeeder_Seed_UnknownLabel(t *testing.T) {
	t.Parallel()

	db := dbtest.NewSQLite(t, Models()...)
	fx := &Fixtures{
		AssetClasses: []string{"Equity"},
		Countries:    []string{"Japan"},
		Industries:   []string{"Energy"},
		Issuers:      []string{"Nomura"},
		EsgConcerns:  []string{"None"},
		Funds: []FundFixture{{
			Name: "Broken", AssetClass: "Equity", Country: "Japan", Industry: "Energy",
			Issuer: "Nomura", EsgConcern: "Weapons",
		}},
	}

	_, err := NewSeeder(db).Seed(context.Background(), fx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Weapons")

	var count int64
	require.NoError(t, db.Model(&AssetClassModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "transaction should be rolled back")
}
