package usecase

import (
	"context"
	"errors"
	"fmt"

	fundentity "investiguide_backend/internal/feature/funds/domain/entity"
	fundusecase "investiguide_backend/internal/feature/funds/usecase"
	"investiguide_backend/internal/feature/recommendations/domain/entity"
	userentity "investiguide_backend/internal/feature/users/domain/entity"
	userusecase "investiguide_backend/internal/feature/users/usecase"
)

// RecommendationRepository は推薦レコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RecommendationRepository interface {
	Create(ctx context.Context, r *entity.Recommendation) error
	// FindByID は存在しない場合ErrRecommendationNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Recommendation, error)
	// Delete は存在しない場合ErrRecommendationNotFoundを返します。
	Delete(ctx context.Context, id uint) error
	// ListByParticipant はuserIDが推薦者または被推薦者である推薦を新しい順に返します。
	ListByParticipant(ctx context.Context, userID uint) ([]entity.Recommendation, error)
	// Exists は同じファンド・推薦者・被推薦者の推薦が存在するかを返します。
	Exists(ctx context.Context, fundID, recommenderID, recommendeeID uint) (bool, error)
}

// FundReader はファンドの取得を行います。
type FundReader interface {
	FindByID(ctx context.Context, id uint) (*fundentity.Fund, error)
	FindByIDs(ctx context.Context, ids []uint) ([]fundentity.Fund, error)
}

// UserReader はユーザーの取得を行います。
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*userentity.User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]userentity.User, error)
}

// NewRecommendation is the input of Recommend.
type NewRecommendation struct {
	FundID        uint
	RecommendeeID uint
	Note          string
}

// RecommendationUsecase は推薦の作成・一覧・削除を実装します。
type RecommendationUsecase struct {
	recs             RecommendationRepository
	funds            FundReader
	users            UserReader
	rejectDuplicates bool
}

// NewRecommendationUsecase は新しいRecommendationUsecaseを生成します。
// rejectDuplicatesがtrueの場合、同じ組み合わせの推薦はErrDuplicateRecommendationになります。
func NewRecommendationUsecase(recs RecommendationRepository, funds FundReader, users UserReader, rejectDuplicates bool) *RecommendationUsecase {
	return &RecommendationUsecase{recs: recs, funds: funds, users: users, rejectDuplicates: rejectDuplicates}
}

// Recommend は呼び出し元ユーザーから被推薦者へファンドを推薦します。
func (u *RecommendationUsecase) Recommend(ctx context.Context, callerID uint, in NewRecommendation) (*entity.Detail, error) {
	if _, err := u.funds.FindByID(ctx, in.FundID); err != nil {
		if errors.Is(err, fundusecase.ErrFundNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to look up fund %d: %w", in.FundID, err)
	}
	if _, err := u.users.FindByID(ctx, in.RecommendeeID); err != nil {
		if errors.Is(err, userusecase.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user %d: %w", in.RecommendeeID, err)
	}

	if u.rejectDuplicates {
		exists, err := u.recs.Exists(ctx, in.FundID, callerID, in.RecommendeeID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateRecommendation
		}
	}

	rec := &entity.Recommendation{
		FundID:        in.FundID,
		RecommenderID: callerID,
		RecommendeeID: in.RecommendeeID,
		Note:          in.Note,
	}
	if err := u.recs.Create(ctx, rec); err != nil {
		return nil, err
	}
	details, err := u.hydrate(ctx, []entity.Recommendation{*rec})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// List は呼び出し元ユーザーが送った、または受け取った推薦を返します。
func (u *RecommendationUsecase) List(ctx context.Context, callerID uint) ([]entity.Detail, error) {
	recs, err := u.recs.ListByParticipant(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return u.hydrate(ctx, recs)
}

// Unrecommend はIDで指定された推薦を削除します。推薦者か被推薦者のみが削除できます。
func (u *RecommendationUsecase) Unrecommend(ctx context.Context, callerID, id uint) error {
	rec, err := u.recs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !rec.Involves(callerID) {
		return ErrForbidden
	}
	return u.recs.Delete(ctx, id)
}

// hydrate はファンド名とユーザー名を解決します。削除済みの参照は名前が空になります。
func (u *RecommendationUsecase) hydrate(ctx context.Context, recs []entity.Recommendation) ([]entity.Detail, error) {
	out := make([]entity.Detail, 0, len(recs))
	if len(recs) == 0 {
		return out, nil
	}

	fundIDs := make([]uint, 0, len(recs))
	userIDs := make([]uint, 0, len(recs)*2)
	for _, r := range recs {
		fundIDs = append(fundIDs, r.FundID)
		userIDs = append(userIDs, r.RecommenderID, r.RecommendeeID)
	}

	funds, err := u.funds.FindByIDs(ctx, fundIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load funds: %w", err)
	}
	users, err := u.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	fundNames := make(map[uint]string, len(funds))
	for _, f := range funds {
		fundNames[f.ID] = f.Name
	}
	usernames := make(map[uint]string, len(users))
	for _, usr := range users {
		usernames[usr.ID] = usr.Username
	}

	for _, r := range recs {
		out = append(out, entity.Detail{
			ID:          r.ID,
			Fund:        entity.Named{ID: r.FundID, Name: fundNames[r.FundID]},
			Recommender: entity.Named{ID: r.RecommenderID, Name: usernames[r.RecommenderID]},
			Recommendee: entity.Named{ID: r.RecommendeeID, Name: usernames[r.RecommendeeID]},
			Note:        r.Note,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}
