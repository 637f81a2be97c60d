package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader はリクエスト ID を受け渡すヘッダーです。
	RequestIDHeader = "X-Request-ID"

	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// RequestID はリクエストごとに ID を割り当て、レスポンスヘッダーにも設定します。
// クライアントが妥当な ID を送ってきた場合はそれを引き継ぎます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom はコンテキストに格納されたリクエスト ID を返します。
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
