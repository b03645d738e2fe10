// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// メールアドレスの形式はここでは検証しません（作成時に検証済み）。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginSuccessRes はログイン成功時のレスポンスです。
type LoginSuccessRes struct {
	Status string `json:"status"`
	UserID uint   `json:"user_id"`
}

// LoginFailureRes はログイン失敗時のレスポンスです。
// ユーザー未登録とパスワード不一致で同じ形になります。
type LoginFailureRes struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ErrorRes はリクエスト不正時のエラーレスポンスです。
type ErrorRes struct {
	Error string `json:"error"`
}
