// Package adapters はrecommendationsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"investiguide_backend/internal/feature/recommendations/domain/entity"
	"investiguide_backend/internal/feature/recommendations/usecase"
)

// RecommendationModel is the GORM model for the recommendations table.
type RecommendationModel struct {
	ID            uint   `gorm:"primaryKey"`
	FundID        uint   `gorm:"not null;index"`
	RecommenderID uint   `gorm:"not null;index"`
	RecommendeeID uint   `gorm:"not null;index"`
	Note          string `gorm:"type:text"`
	CreatedAt     time.Time
}

func (RecommendationModel) TableName() string { return "recommendations" }

// Models returns every model of the recommendations feature.
func Models() []any {
	return []any{&RecommendationModel{}}
}

func (m *RecommendationModel) toEntity() entity.Recommendation {
	return entity.Recommendation{
		ID:            m.ID,
		FundID:        m.FundID,
		RecommenderID: m.RecommenderID,
		RecommendeeID: m.RecommendeeID,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}

// recommendationGorm はRecommendationRepositoryインターフェースのGORM実装です。
type recommendationGorm struct {
	db *gorm.DB
}

// recommendationGormがRecommendationRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecommendationRepository = (*recommendationGorm)(nil)

// NewRecommendationRepository は指定されたDB接続でrecommendationGormの新しいインスタンスを生成します。
func NewRecommendationRepository(db *gorm.DB) *recommendationGorm {
	return &recommendationGorm{db: db}
}

// Create は推薦を追加し、採番されたIDと作成日時をrに書き戻します。
func (r *recommendationGorm) Create(ctx context.Context, rec *entity.Recommendation) error {
	m := RecommendationModel{
		FundID:        rec.FundID,
		RecommenderID: rec.RecommenderID,
		RecommendeeID: rec.RecommendeeID,
		Note:          rec.Note,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	rec.ID = m.ID
	rec.CreatedAt = m.CreatedAt
	return nil
}

// FindByID はIDで推薦を取得します。
func (r *recommendationGorm) FindByID(ctx context.Context, id uint) (*entity.Recommendation, error) {
	var m RecommendationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecommendationNotFound
		}
		return nil, err
	}
	rec := m.toEntity()
	return &rec, nil
}

// Delete はIDで推薦を削除します。
func (r *recommendationGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RecommendationModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrRecommendationNotFound
	}
	return nil
}

// ListByParticipant は1回のクエリで送信・受信両方の推薦を新しい順に返します。
// 自分自身への推薦も1件として返ります。
func (r *recommendationGorm) ListByParticipant(ctx context.Context, userID uint) ([]entity.Recommendation, error) {
	var rows []RecommendationModel
	err := r.db.WithContext(ctx).
		Where("recommender_id = ? OR recommendee_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.Recommendation, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// Exists は同じ組み合わせの推薦が存在するかを返します。
func (r *recommendationGorm) Exists(ctx context.Context, fundID, recommenderID, recommendeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RecommendationModel{}).
		Where("fund_id = ? AND recommender_id = ? AND recommendee_id = ?", fundID, recommenderID, recommendeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
