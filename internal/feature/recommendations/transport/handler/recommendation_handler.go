// Package handler はrecommendationsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"investiguide_backend/internal/api"
	"investiguide_backend/internal/feature/recommendations/domain/entity"
	"investiguide_backend/internal/feature/recommendations/transport/http/dto"
	"investiguide_backend/internal/feature/recommendations/usecase"
	jwtmw "investiguide_backend/internal/platform/jwt"
)

// RecommendationUsecase は推薦操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type RecommendationUsecase interface {
	Recommend(ctx context.Context, callerID uint, in usecase.NewRecommendation) (*entity.Detail, error)
	List(ctx context.Context, callerID uint) ([]entity.Detail, error)
	Unrecommend(ctx context.Context, callerID, id uint) error
}

// RecommendationHandler は推薦のHTTPリクエストを処理します。
type RecommendationHandler struct {
	uc RecommendationUsecase
}

// NewRecommendationHandler は新しい RecommendationHandler を作成します。
func NewRecommendationHandler(uc RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func writeError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrFundNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrRecommendationNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: err.Error()})
	case errors.Is(err, usecase.ErrDuplicateRecommendation):
		c.JSON(http.StatusConflict, api.MessageResponse{Message: err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, api.MessageResponse{Message: err.Error()})
	default:
		slog.Error("recommendation operation failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
	}
}

// Recommend は呼び出し元ユーザーから他のユーザーへファンドを推薦するAPIです。
// - ボディが不正な場合は400
// - ファンドまたはユーザーが存在しない場合は404
// - 重複を拒否する設定で同じ推薦がある場合は409
// - 成功時は201と推薦を返却
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "unauthorized"})
		return
	}
	var req dto.RecommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("recommendation validation failed", "error", err, "user_id", callerID)
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}

	d, err := h.uc.Recommend(c.Request.Context(), callerID, usecase.NewRecommendation{
		FundID:        req.FundID,
		RecommendeeID: req.User,
		Note:          req.Note,
	})
	if err != nil {
		writeError(c, err, "recommend")
		return
	}
	slog.Info("fund recommended", "recommendation_id", d.ID, "fund_id", req.FundID, "from", callerID, "to", req.User)
	c.JSON(http.StatusCreated, dto.NewRecommendationResponse(*d))
}

// List は呼び出し元ユーザーが送信・受信した推薦を返すAPIです。
func (h *RecommendationHandler) List(c *gin.Context) {
	callerID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "unauthorized"})
		return
	}
	details, err := h.uc.List(c.Request.Context(), callerID)
	if err != nil {
		writeError(c, err, "reclist")
		return
	}
	c.JSON(http.StatusOK, dto.NewRecommendationResponses(details))
}

// Unrecommend はパスのIDの推薦を削除するAPIです。成功時は204を返却します。
func (h *RecommendationHandler) Unrecommend(c *gin.Context) {
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
	if err := h.uc.Unrecommend(c.Request.Context(), callerID, id); err != nil {
		writeError(c, err, "unrec")
		return
	}
	c.Status(http.StatusNoContent)
}
