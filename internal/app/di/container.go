// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "investiguide_backend/internal/feature/auth/adapters"
	authhandler "investiguide_backend/internal/feature/auth/transport/handler"
	authusecase "investiguide_backend/internal/feature/auth/usecase"
	fundadapters "investiguide_backend/internal/feature/funds/adapters"
	fundhandler "investiguide_backend/internal/feature/funds/transport/handler"
	fundusecase "investiguide_backend/internal/feature/funds/usecase"
	recadapters "investiguide_backend/internal/feature/recommendations/adapters"
	rechandler "investiguide_backend/internal/feature/recommendations/transport/handler"
	recusecase "investiguide_backend/internal/feature/recommendations/usecase"
	useradapters "investiguide_backend/internal/feature/users/adapters"
	userhandler "investiguide_backend/internal/feature/users/transport/handler"
	userusecase "investiguide_backend/internal/feature/users/usecase"
	watchadapters "investiguide_backend/internal/feature/watchlist/adapters"
	watchhandler "investiguide_backend/internal/feature/watchlist/transport/handler"
	watchusecase "investiguide_backend/internal/feature/watchlist/usecase"
	"investiguide_backend/internal/platform/config"
	platformhandler "investiguide_backend/internal/platform/http/handler"
	jwtmw "investiguide_backend/internal/platform/jwt"
)

// Models はマイグレーション対象の全モデルを返します。
// usersテーブルはauthのエンティティが所有し、usersフィーチャーは同じテーブルの射影を読みます。
func Models() []any {
	var models []any
	models = append(models, authadapters.Models()...)
	models = append(models, fundadapters.Models()...)
	models = append(models, watchadapters.Models()...)
	models = append(models, recadapters.Models()...)
	return models
}

// Handlers はルーターに渡すHTTPハンドラー一式です。
type Handlers struct {
	Auth           *authhandler.AuthHandler
	Fund           *fundhandler.FundHandler
	Watchlist      *watchhandler.WatchlistHandler
	Recommendation *rechandler.RecommendationHandler
	User           *userhandler.UserHandler
	Readiness      *platformhandler.ReadinessHandler
}

// NewHandlers はRepository → Usecase → Handlerの順に組み立てます。
// rdbがnilの場合、ファンドはキャッシュなしで読み込まれます。
func NewHandlers(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Handlers {
	// Repository
	fundRepo := NewFundRepository(rdb, db, cfg.Redis.FundTTL)
	userRepo := useradapters.NewUserRepository(db)
	authRepo := authadapters.NewUserRepository(db)
	watchRepo := watchadapters.NewWatchRepository(db)
	recRepo := recadapters.NewRecommendationRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(authRepo, jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration))
	fundUC := fundusecase.NewFundUsecase(fundRepo)
	userUC := userusecase.NewUserUsecase(userRepo)
	watchUC := watchusecase.NewWatchlistUsecase(watchRepo, fundRepo)
	recUC := recusecase.NewRecommendationUsecase(recRepo, fundRepo, userRepo,
		cfg.Recommendation.Duplicates == config.DuplicatesReject)

	// Handler
	return &Handlers{
		Auth:           authhandler.NewAuthHandler(authUC),
		Fund:           fundhandler.NewFundHandler(fundUC),
		Watchlist:      watchhandler.NewWatchlistHandler(watchUC),
		Recommendation: rechandler.NewRecommendationHandler(recUC),
		User:           userhandler.NewUserHandler(userUC),
		Readiness:      platformhandler.NewReadinessHandler(db, rdb),
	}
}
