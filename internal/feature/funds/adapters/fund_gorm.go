// Package adapters はfundsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"investiguide_backend/internal/feature/funds/domain/entity"
	"investiguide_backend/internal/feature/funds/usecase"
)

// fundGorm はFundRepositoryインターフェースのGORM実装です。
type fundGorm struct {
	db *gorm.DB
}

// fundGormがFundRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FundRepository = (*fundGorm)(nil)

// NewFundRepository は指定されたDB接続でfundGormリポジトリの新しいインスタンスを生成します。
func NewFundRepository(db *gorm.DB) *fundGorm {
	return &fundGorm{db: db}
}

// withRefs は分類テーブルをプリロードするクエリを返します。
func (r *fundGorm) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("AssetClass").
		Preload("Country").
		Preload("Industry").
		Preload("Issuer").
		Preload("EsgConcern")
}

// FindByID はIDでファンドを取得します。
// 存在しない場合、usecase.ErrFundNotFoundを返します。
func (r *fundGorm) FindByID(ctx context.Context, id uint) (*entity.Fund, error) {
	var m FundModel
	if err := r.withRefs(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFundNotFound
		}
		return nil, err
	}
	f := m.ToEntity()
	return &f, nil
}

// FindByIDs は指定されたIDのファンドをidsの順序で返します。存在しないIDは無視します。
func (r *fundGorm) FindByIDs(ctx context.Context, ids []uint) ([]entity.Fund, error) {
	if len(ids) == 0 {
		return []entity.Fund{}, nil
	}
	var rows []FundModel
	if err := r.withRefs(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*FundModel, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	out := make([]entity.Fund, 0, len(rows))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m.ToEntity())
		}
	}
	return out, nil
}

// List はフィルタに一致するファンドをID順に返します。
// 各条件はANDで結合され、ESGはいずれかに一致すれば対象になります。
func (r *fundGorm) List(ctx context.Context, f entity.FundFilter) ([]entity.Fund, error) {
	q := r.withRefs(ctx).Model(&FundModel{})
	if f.AssetClassID != nil {
		q = q.Where("asset_class_id = ?", *f.AssetClassID)
	}
	if f.CountryID != nil {
		q = q.Where("country_id = ?", *f.CountryID)
	}
	if f.IndustryID != nil {
		q = q.Where("industry_id = ?", *f.IndustryID)
	}
	if f.IssuerID != nil {
		q = q.Where("issuer_id = ?", *f.IssuerID)
	}
	if len(f.EsgConcernIDs) > 0 {
		q = q.Where("esg_concern_id IN ?", f.EsgConcernIDs)
	}
	if f.NamePrefix != nil {
		q = q.Where(`name LIKE ? ESCAPE '\'`, escapeLike(*f.NamePrefix)+"%")
	}

	var rows []FundModel
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Fund, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// ListCatalog は分類テーブルの全エントリをラベル順に返します。
func (r *fundGorm) ListCatalog(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return nil, usecase.ErrUnknownCatalog
	}
	var rows []entity.Ref
	if err := r.db.WithContext(ctx).
		Table(table).
		Select("id, label").
		Order("label ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []entity.Ref{}
	}
	return rows, nil
}

// escapeLike はLIKEパターンの特殊文字をエスケープします。
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
