package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// UserIDKey は認証済みユーザーIDをコンテキストに格納するキーです。
const UserIDKey contextKey = "userID"

// RegisterRequest はユーザー登録APIのリクエストボディ
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// JWTCustomClaims はJWTに含めるクレーム
type JWTCustomClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
