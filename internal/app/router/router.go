package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "user_service/internal/feature/auth/transport/handler"
	usershandler "user_service/internal/feature/users/transport/handler"
	platformhandler "user_service/internal/platform/http/handler"
	"user_service/internal/platform/http/middleware"
)

// NewRouter はすべてのエンドポイントを登録したgin.Engineを返します。
// 認証が必要なルートはありません。
func NewRouter(logger *slog.Logger, users *usershandler.UserHandler, auth *authhandler.AuthHandler) *gin.Engine {
	r := gin.New()
	// 既知のパスへの未対応メソッドは404ではなく405
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	// ブラウザのフロントエンドは別オリジンから呼び出す
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/", platformhandler.Home)
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	// ユーザー管理
	r.GET("/users", users.List)
	r.POST("/users", users.Create)
	r.GET("/user/:id", users.Get)
	r.PUT("/user/:id", users.Update)
	r.DELETE("/user/:id", users.Delete)
	r.GET("/search", users.Search)

	// ログイン
	r.POST("/login", auth.Login)

	return r
}
