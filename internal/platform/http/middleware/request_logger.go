// Package middleware はGinの共通ミドルウェアを提供します。
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID はリクエストIDを運ぶヘッダー名です。
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID はgin.Contextに保存するリクエストIDのキーです。
	ContextRequestID = "requestID"
)

// RequestLogger はリクエストIDを付与し、1リクエストにつき1行のアクセスログを出力します。
// クライアントがX-Request-IDを送った場合はそれを引き継ぎます。
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ContextRequestID, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		logger.Info("request",
			"request_id", rid,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"remote_addr", c.ClientIP(),
		)
	}
}
