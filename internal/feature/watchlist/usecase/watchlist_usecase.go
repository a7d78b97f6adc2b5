package usecase

import (
	"context"
	"errors"
	"fmt"

	fundentity "investiguide_backend/internal/feature/funds/domain/entity"
	fundusecase "investiguide_backend/internal/feature/funds/usecase"
	"investiguide_backend/internal/feature/watchlist/domain/entity"
)

// WatchRepository はウォッチレコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type WatchRepository interface {
	// Create は既に同じ組み合わせが存在する場合ErrAlreadyWatchingを返します。
	Create(ctx context.Context, w *entity.WatchedSecurity) error
	// Delete は該当レコードが存在しない場合ErrNotWatchingを返します。
	Delete(ctx context.Context, userID, fundID uint) error
	// ListFundIDs はユーザーがウォッチしているファンドIDをウォッチした順に返します。
	ListFundIDs(ctx context.Context, userID uint) ([]uint, error)
}

// FundFinder はファンドの存在確認と取得を行います。
type FundFinder interface {
	FindByID(ctx context.Context, id uint) (*fundentity.Fund, error)
	FindByIDs(ctx context.Context, ids []uint) ([]fundentity.Fund, error)
}

// WatchlistUsecase はウォッチリスト操作のビジネスロジックを実装します。
type WatchlistUsecase struct {
	watches WatchRepository
	funds   FundFinder
}

// NewWatchlistUsecase は新しいWatchlistUsecaseを生成します。
func NewWatchlistUsecase(watches WatchRepository, funds FundFinder) *WatchlistUsecase {
	return &WatchlistUsecase{watches: watches, funds: funds}
}

// ensureFund はファンドが存在することを確認します。
func (u *WatchlistUsecase) ensureFund(ctx context.Context, fundID uint) error {
	if _, err := u.funds.FindByID(ctx, fundID); err != nil {
		if errors.Is(err, fundusecase.ErrFundNotFound) {
			return ErrFundNotFound
		}
		return fmt.Errorf("failed to look up fund %d: %w", fundID, err)
	}
	return nil
}

// Watch は呼び出し元ユーザーにファンドをウォッチさせます。
func (u *WatchlistUsecase) Watch(ctx context.Context, callerID, fundID uint) (*entity.WatchedSecurity, error) {
	if err := u.ensureFund(ctx, fundID); err != nil {
		return nil, err
	}
	w := &entity.WatchedSecurity{UserID: callerID, FundID: fundID}
	if err := u.watches.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Unwatch は呼び出し元ユーザーのウォッチを解除します。
func (u *WatchlistUsecase) Unwatch(ctx context.Context, callerID, fundID uint) error {
	if err := u.ensureFund(ctx, fundID); err != nil {
		return err
	}
	return u.watches.Delete(ctx, callerID, fundID)
}

// Watchlist は呼び出し元ユーザーがウォッチしているファンドを返します。
func (u *WatchlistUsecase) Watchlist(ctx context.Context, callerID uint) ([]fundentity.Fund, error) {
	ids, err := u.watches.ListFundIDs(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watches: %w", err)
	}
	return u.funds.FindByIDs(ctx, ids)
}
