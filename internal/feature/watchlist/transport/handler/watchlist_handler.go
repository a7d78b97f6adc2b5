// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"investiguide_backend/internal/api"
	fundentity "investiguide_backend/internal/feature/funds/domain/entity"
	funddto "investiguide_backend/internal/feature/funds/transport/http/dto"
	"investiguide_backend/internal/feature/watchlist/domain/entity"
	"investiguide_backend/internal/feature/watchlist/transport/http/dto"
	"investiguide_backend/internal/feature/watchlist/usecase"
	jwtmw "investiguide_backend/internal/platform/jwt"
)

// WatchlistUsecase はウォッチリスト操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type WatchlistUsecase interface {
	Watch(ctx context.Context, callerID, fundID uint) (*entity.WatchedSecurity, error)
	Unwatch(ctx context.Context, callerID, fundID uint) error
	Watchlist(ctx context.Context, callerID uint) ([]fundentity.Fund, error)
}

// WatchlistHandler はウォッチリストのHTTPリクエストを処理します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は新しい WatchlistHandler を作成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// callerAndFund は呼び出し元ユーザーIDとパスのファンドIDを取り出します。
// 失敗時はレスポンスを書き込み、falseを返します。
func callerAndFund(c *gin.Context) (uint, uint, bool) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "unauthorized"})
		return 0, 0, false
	}
	fundID, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		return 0, 0, false
	}
	return callerID, fundID, true
}

// writeError はユースケースのエラーをHTTPステータスに変換します。
func writeError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrFundNotFound), errors.Is(err, usecase.ErrNotWatching):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: err.Error()})
	case errors.Is(err, usecase.ErrAlreadyWatching):
		c.JSON(http.StatusConflict, api.MessageResponse{Message: err.Error()})
	default:
		slog.Error("watchlist operation failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
	}
}

// Watch はファンドをウォッチリストに追加するAPIです。
// - ファンドが存在しない場合は404を返却
// - 既にウォッチ済みの場合は409を返却
// - 成功時は201とウォッチレコードを返却
func (h *WatchlistHandler) Watch(c *gin.Context) {
	callerID, fundID, ok := callerAndFund(c)
	if !ok {
		return
	}
	w, err := h.uc.Watch(c.Request.Context(), callerID, fundID)
	if err != nil {
		writeError(c, err, "watch")
		return
	}
	slog.Info("fund watched", "user_id", callerID, "fund_id", fundID)
	c.JSON(http.StatusCreated, dto.NewWatchResponse(w))
}

// Unwatch はファンドをウォッチリストから外すAPIです。成功時は204（ボディなし）を返却します。
func (h *WatchlistHandler) Unwatch(c *gin.Context) {
	callerID, fundID, ok := callerAndFund(c)
	if !ok {
		return
	}
	if err := h.uc.Unwatch(c.Request.Context(), callerID, fundID); err != nil {
		writeError(c, err, "unwatch")
		return
	}
	c.Status(http.StatusNoContent)
}

// List は呼び出し元ユーザーのウォッチリストを返すAPIです。
func (h *WatchlistHandler) List(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "unauthorized"})
		return
	}
	funds, err := h.uc.Watchlist(c.Request.Context(), callerID)
	if err != nil {
		writeError(c, err, "watchlist")
		return
	}
	c.JSON(http.StatusOK, funddto.NewFundResponses(funds))
}
