package jwtmw

import "github.com/gin-gonic/gin"

// CallerID はAuthRequiredが設定した呼び出し元ユーザーIDを返します。
// 未認証のコンテキストではfalseを返します。
func CallerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
