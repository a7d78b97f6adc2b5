// Package middleware はすべてのルートに共通するginミドルウェアを提供します。
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID はリクエストIDを伝播するヘッダー名です。
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID はginコンテキストにリクエストIDを保存するキーです。
	ContextRequestID = "requestID"
)

// RequestID は受信したX-Request-IDを引き継ぎ、無ければ新しく発行します。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID はginコンテキストからリクエストIDを取得します。
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
