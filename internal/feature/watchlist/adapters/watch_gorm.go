// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"investiguide_backend/internal/feature/watchlist/domain/entity"
	"investiguide_backend/internal/feature/watchlist/usecase"
	"investiguide_backend/internal/platform/db"
)

// WatchModel is the GORM model for the watched_securities table.
type WatchModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_watch_user_fund"`
	FundID    uint `gorm:"not null;uniqueIndex:idx_watch_user_fund;index"`
	CreatedAt time.Time
}

func (WatchModel) TableName() string { return "watched_securities" }

// Models returns every model of the watchlist feature.
func Models() []any {
	return []any{&WatchModel{}}
}

// watchGorm はWatchRepositoryインターフェースのGORM実装です。
type watchGorm struct {
	db *gorm.DB
}

// watchGormがWatchRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WatchRepository = (*watchGorm)(nil)

// NewWatchRepository は指定されたDB接続でwatchGormの新しいインスタンスを生成します。
func NewWatchRepository(db *gorm.DB) *watchGorm {
	return &watchGorm{db: db}
}

// Create はウォッチを追加し、採番されたIDと作成日時をwに書き戻します。
// 一意制約違反はusecase.ErrAlreadyWatchingに変換します。
func (r *watchGorm) Create(ctx context.Context, w *entity.WatchedSecurity) error {
	m := WatchModel{UserID: w.UserID, FundID: w.FundID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrAlreadyWatching
		}
		return err
	}
	w.ID = m.ID
	w.CreatedAt = m.CreatedAt
	return nil
}

// Delete は(userID, fundID)のウォッチを削除します。
func (r *watchGorm) Delete(ctx context.Context, userID, fundID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND fund_id = ?", userID, fundID).
		Delete(&WatchModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotWatching
	}
	return nil
}

// ListFundIDs はウォッチした順にファンドIDを返します。
func (r *watchGorm) ListFundIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&WatchModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Pluck("fund_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
