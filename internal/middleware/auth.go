package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は認証プロバイダが発行した Bearer トークンを検証し、
// 呼び出し元 (model.Caller) をコンテキストに格納するミドルウェア
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if cfg.JWT.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.JWT.Audience))
	}
	parser := jwt.NewParser(parserOpts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			// 1. Authorization ヘッダーからトークンを取得
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, unauthenticated("Authorizationヘッダーが必要です。"))
				return
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, unauthenticated("Authorizationヘッダーの形式が正しくありません。"))
				return
			}

			// 2. 署名・有効期限・audience を検証
			claims := &model.AccessTokenClaims{}
			token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, unauthenticated("トークンが無効です。"))
				return
			}

			// 3. subject をユーザーIDとして取得
			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, unauthenticated("トークンのユーザー情報が不正です。"))
				return
			}

			caller := model.Caller{
				UserID:    userID,
				Email:     claims.Email,
				FirstName: claims.UserMetadata.FirstName,
				LastName:  claims.UserMetadata.LastName,
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// WithCaller は呼び出し元をコンテキストに格納し、リクエストロガーに user_id を付与する
func WithCaller(ctx context.Context, caller model.Caller) context.Context {
	ctx = context.WithValue(ctx, model.CallerKey, caller)
	return context.WithValue(ctx, logCtxKey{}, GetLogger(ctx).With("user_id", caller.UserID.String()))
}

// GetCallerFromContext はミドルウェアが格納した呼び出し元を取り出す
func GetCallerFromContext(ctx context.Context) (model.Caller, error) {
	caller, ok := ctx.Value(model.CallerKey).(model.Caller)
	if !ok || caller.UserID == uuid.Nil {
		return model.Caller{}, unauthenticated("認証情報が見つかりません。")
	}
	return caller, nil
}

func unauthenticated(message string) *model.AppError {
	return model.NewAppError("UNAUTHORIZED", message, "", model.ErrUnauthenticated)
}
