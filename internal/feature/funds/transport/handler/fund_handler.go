// Package handler はfundsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"investiguide_backend/internal/api"
	"investiguide_backend/internal/feature/funds/domain/entity"
	"investiguide_backend/internal/feature/funds/transport/http/dto"
	"investiguide_backend/internal/feature/funds/usecase"
)

// FundUsecase はファンド参照のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type FundUsecase interface {
	ListFunds(ctx context.Context, filter entity.FundFilter) ([]entity.Fund, error)
	GetFund(ctx context.Context, id uint) (*entity.Fund, error)
	ListCatalog(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error)
}

// FundHandler はファンドと分類マスタのHTTPリクエストを処理します。
type FundHandler struct {
	uc FundUsecase
}

// NewFundHandler は新しい FundHandler を作成します。
func NewFundHandler(uc FundUsecase) *FundHandler {
	return &FundHandler{uc: uc}
}

// bindListParams はGET /fundsのクエリパラメータをバインドします。
// 未知のキーは無視し、IDが数値でない場合はエラーを返します。
func bindListParams(c *gin.Context) (dto.FundListParams, error) {
	var p dto.FundListParams
	q := c.Request.URL.Query()

	ids := []struct {
		name string
		dst  **uint
	}{
		{"assetclass", &p.AssetClass},
		{"country", &p.Country},
		{"industry", &p.Industry},
		{"issuer", &p.Issuer},
	}
	for _, id := range ids {
		if err := runtime.BindQueryParameter("form", false, false, id.name, q, id.dst); err != nil {
			return p, err
		}
	}
	// esg=1,2,3 はいずれかに一致
	if err := runtime.BindQueryParameter("form", false, false, "esg", q, &p.Esg); err != nil {
		return p, err
	}
	if name, ok := c.GetQuery("name"); ok {
		p.Name = &name
	}
	return p, nil
}

// List はフィルタ条件に一致するファンド一覧を返すAPIです。
// - クエリパラメータが不正な場合は400を返却
// - Usecaseでエラーが発生した場合は500を返却
func (h *FundHandler) List(c *gin.Context) {
	params, err := bindListParams(c)
	if err != nil {
		slog.Warn("invalid fund filter", "error", err, "query", c.Request.URL.RawQuery)
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		return
	}

	funds, err := h.uc.ListFunds(c.Request.Context(), params.ToFilter())
	if err != nil {
		slog.Error("failed to list funds", "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewFundResponses(funds))
}

// Retrieve はIDで指定されたファンドを返すAPIです。
func (h *FundHandler) Retrieve(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		return
	}

	fund, err := h.uc.GetFund(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrFundNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "fund not found"})
			return
		}
		slog.Error("failed to get fund", "error", err, "fund_id", id)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewFundResponse(*fund))
}

// Catalog は指定された分類マスタの一覧を返すハンドラーを生成します。
func (h *FundHandler) Catalog(kind entity.CatalogKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		refs, err := h.uc.ListCatalog(c.Request.Context(), kind)
		if err != nil {
			if errors.Is(err, usecase.ErrUnknownCatalog) {
				c.JSON(http.StatusNotFound, api.MessageResponse{Message: err.Error()})
				return
			}
			slog.Error("failed to list catalog", "error", err, "catalog", string(kind))
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
			return
		}
		c.JSON(http.StatusOK, dto.NewRefItems(refs))
	}
}
