// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"user_service/internal/feature/users/domain/entity"
	usersusecase "user_service/internal/feature/users/usecase"
)

// dummyHash はユーザーが存在しない場合に比較するbcryptハッシュです。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はログインに必要なユーザー検索を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、usersusecase.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// Login はメールアドレスとパスワードを検証し、成功時にユーザーIDを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (uint, error) {
	email = usersusecase.NormalizeEmail(email)
	if email == "" || password == "" {
		return 0, ErrMissingCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, usersusecase.ErrUserNotFound) {
		return 0, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := usersusecase.ComparePassword(passwordHash, password)

	// ユーザー未検出またはパスワード不一致の場合、同じエラーを返す
	if err != nil || compareErr != nil {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}
