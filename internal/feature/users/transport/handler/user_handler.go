// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"investiguide_backend/internal/api"
	"investiguide_backend/internal/feature/users/domain/entity"
	"investiguide_backend/internal/feature/users/transport/http/dto"
	"investiguide_backend/internal/feature/users/usecase"
	jwtmw "investiguide_backend/internal/platform/jwt"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, callerID, id uint, upd entity.ProfileUpdate) (*entity.User, error)
}

// UserHandler はユーザーのHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler は新しい UserHandler を作成します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List は全ユーザーをユーザー名順で返すAPIです。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Retrieve はIDで指定されたユーザーを返すAPIです。
func (h *UserHandler) Retrieve(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		return
	}
	user, err := h.uc.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// Update は呼び出し元ユーザー自身のプロフィールを更新するAPIです。
// - 不正なボディは400
// - 他人のプロフィールは403
// - 存在しないユーザーは404
func (h *UserHandler) Update(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "unauthorized"})
		return
	}
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		return
	}
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user update validation failed", "error", err, "user_id", id)
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}

	user, err := h.uc.UpdateProfile(c.Request.Context(), callerID, id, req.ToUpdate())
	if err != nil {
		writeError(c, err, id)
		return
	}
	slog.Info("user profile updated", "user_id", id)
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

func writeError(c *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, api.MessageResponse{Message: err.Error()})
	default:
		slog.Error("user operation failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
	}
}
