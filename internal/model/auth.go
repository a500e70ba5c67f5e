package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserMetadata は認証プロバイダがトークンに載せるプロフィール情報
type UserMetadata struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AccessTokenClaims は認証プロバイダが発行するアクセストークンのクレーム
type AccessTokenClaims struct {
	Email        string       `json:"email,omitempty"`
	Role         string       `json:"role,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims      // 標準クレーム (iss, sub, aud, exp など)
}
