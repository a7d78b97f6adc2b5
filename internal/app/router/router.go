package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"investiguide_backend/internal/app/di"
	"investiguide_backend/internal/feature/funds/domain/entity"
	platformhandler "investiguide_backend/internal/platform/http/handler"
	"investiguide_backend/internal/platform/http/middleware"
	jwtmw "investiguide_backend/internal/platform/jwt"
	"investiguide_backend/internal/shared/ratelimiter"
)

// Options はルーター全体に適用するミドルウェアの設定です。
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	// Limiter がnilの場合はレート制限を行いません。
	Limiter ratelimiter.RateLimiterInterface
	// Metrics がnilの場合は /metrics を公開しません。
	Metrics *middleware.Metrics
}

func NewRouter(h *di.Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", opts.Metrics.Handler())
	}
	if len(opts.AllowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = opts.AllowedOrigins
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderRequestID)
		cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
		r.Use(cors.New(cfg))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.GET("/readyz", h.Readiness.Ready)

	public := r.Group("/")
	if opts.Limiter != nil {
		public.Use(middleware.RateLimit(opts.Limiter))
	}
	// 新規ユーザー登録
	public.POST("/register", h.Auth.Register)
	// ログイン（JWT 発行）
	public.POST("/login", h.Auth.Login)

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	auth := public.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		funds := auth.Group("/funds")
		funds.GET("", h.Fund.List)
		// 静的セグメントは :id より優先される
		funds.GET("/watchlist", h.Watchlist.List)
		funds.GET("/reclist", h.Recommendation.List)
		funds.POST("/rec", h.Recommendation.Recommend)
		funds.GET("/:id", h.Fund.Retrieve)
		funds.POST("/:id/watch", h.Watchlist.Watch)
		funds.DELETE("/:id/unwatch", h.Watchlist.Unwatch)
		funds.DELETE("/:id/unrec", h.Recommendation.Unrecommend)

		users := auth.Group("/users")
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Retrieve)
		users.PUT("/:id", h.User.Update)

		// /assetclasses, /countries, /industries, /issuers, /esgconcerns
		for _, kind := range entity.CatalogKinds {
			auth.GET("/"+string(kind), h.Fund.Catalog(kind))
		}
	}

	return r
}
