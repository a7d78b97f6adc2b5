// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"investiguide_backend/internal/api"
	"investiguide_backend/internal/feature/auth/transport/http/dto"
	"investiguide_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、JWTトークンを返します。
	Register(ctx context.Context, in usecase.Registration) (string, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー名重複時は409を返却
// - 成功時はJWTトークン付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}
	token, err := h.auth.Register(c.Request.Context(), usecase.Registration{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			slog.Warn("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.MessageResponse{Message: err.Error()})
		case errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		default:
			slog.Error("register failed", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		}
		return
	}
	slog.Info("user registered", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.TokenResponse{Token: token})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "invalid username or password"})
			return
		}
		slog.Error("login failed", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
