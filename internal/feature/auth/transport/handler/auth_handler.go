// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"user_service/internal/feature/auth/transport/http/dto"
	"user_service/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にユーザーIDを返します。
	Login(ctx context.Context, email, password string) (uint, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - JSONでない場合は400を返却
// - メールアドレスまたはパスワードが欠けている場合は400を返却
// - 認証失敗時は401を返却（ユーザー未登録とパスワード不一致を区別しない）
// - 認証成功時はユーザーID付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Missing email or password"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Invalid or missing JSON"})
		return
	}

	userID, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Missing email or password"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// ユーザー列挙攻撃を防止するため、原因を区別しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.LoginFailureRes{Status: "failed", Error: "Invalid credentials"})
		default:
			slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		}
		return
	}

	slog.Info("user login successful", "user_id", userID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginSuccessRes{Status: "success", UserID: userID})
}
