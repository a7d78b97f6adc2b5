package usecase

import (
	"context"

	"investiguide_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザープロフィールの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// List は全ユーザーをユーザー名の昇順で返します。
	List(ctx context.Context) ([]entity.User, error)
	// FindByID はユーザーが存在しない場合ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// Update はプロフィールを更新し、更新後の値を返します。
	Update(ctx context.Context, id uint, upd entity.ProfileUpdate) (*entity.User, error)
}

// UserUsecase はユーザー参照と自身のプロフィール更新を提供します。
type UserUsecase struct {
	repo UserRepository
}

// NewUserUsecase は新しいUserUsecaseを生成します。
func NewUserUsecase(r UserRepository) *UserUsecase {
	return &UserUsecase{repo: r}
}

// ListUsers は全ユーザーをユーザー名順で返します。
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.repo.List(ctx)
}

// GetUser はIDでユーザーを返します。
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.repo.FindByID(ctx, id)
}

// UpdateProfile は呼び出し元ユーザー自身のプロフィールを更新します。
// 他人のプロフィールはErrForbiddenになります。
func (u *UserUsecase) UpdateProfile(ctx context.Context, callerID, id uint, upd entity.ProfileUpdate) (*entity.User, error) {
	if callerID != id {
		return nil, ErrForbidden
	}
	if upd.IsEmpty() {
		return u.repo.FindByID(ctx, id)
	}
	return u.repo.Update(ctx, id, upd)
}
