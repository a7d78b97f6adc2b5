// Package jwtmw はJWTの発行と検証を行い、リクエストの呼び出し元ユーザーを解決します。
package jwtmw

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"investiguide_backend/internal/api"
)

// ContextUserID は検証済みの呼び出し元ユーザーIDを保存するgin.Contextのキーです。
const ContextUserID = "userID"

// AuthRequired はJWTトークンを検証し、認証済みユーザーのみアクセスを許可するGinミドルウェアを返します。
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーを取得
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. シークレット未設定はサーバーの設定ミス
		if secret == "" {
			slog.Error("JWT secret is not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.MessageResponse{Message: "server misconfigured"})
			return
		}

		// 3. 署名を検証（HMACのみ許可）
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "invalid token"})
			return
		}

		// 4. subクレームから呼び出し元を解決
		sub, err := token.Claims.GetSubject()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "invalid token"})
			return
		}
		userID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "invalid token"})
			return
		}
		c.Set(ContextUserID, uint(userID))

		c.Next()
	}
}
