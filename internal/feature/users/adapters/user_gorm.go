// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"investiguide_backend/internal/feature/users/domain/entity"
	"investiguide_backend/internal/feature/users/usecase"
)

// UserModel is the profile projection of the users table.
// The table itself, including credentials, is migrated by the auth feature.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:150;not null;uniqueIndex"`
	Email     string `gorm:"size:255"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) toEntity() entity.User {
	return entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
	}
}

// userGorm はUserRepositoryインターフェースのGORM実装です。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository は指定されたDB接続でuserGormの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// List は全ユーザーをユーザー名の昇順で返します。
func (r *userGorm) List(ctx context.Context) ([]entity.User, error) {
	var rows []UserModel
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	u := m.toEntity()
	return &u, nil
}

// FindByIDs は指定されたIDのユーザーを返します。存在しないIDは無視します。
func (r *userGorm) FindByIDs(ctx context.Context, ids []uint) ([]entity.User, error) {
	if len(ids) == 0 {
		return []entity.User{}, nil
	}
	var rows []UserModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// Update は指定されたフィールドのみを更新します。
func (r *userGorm) Update(ctx context.Context, id uint, upd entity.ProfileUpdate) (*entity.User, error) {
	var out *entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m UserModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}

		changes := map[string]any{}
		if upd.Email != nil {
			changes["email"] = *upd.Email
		}
		if upd.FirstName != nil {
			changes["first_name"] = *upd.FirstName
		}
		if upd.LastName != nil {
			changes["last_name"] = *upd.LastName
		}
		if len(changes) > 0 {
			if err := tx.Model(&UserModel{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
				return err
			}
		}
		u := m.toEntity()
		out = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
