// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーからUUIDを抽出し、呼び出し元としてコンテキストに設定します。
// トークン検証は行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.HandleError(w, logger, unauthenticated("[DEV] X-User-ID ヘッダーが必要です。"))
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "x_user_id", userIDStr)
			webutil.HandleError(w, logger, unauthenticated("[DEV] X-User-ID の形式が正しくありません。"))
			return
		}

		caller := model.Caller{
			UserID:    userID,
			Email:     r.Header.Get("X-User-Email"),
			FirstName: r.Header.Get("X-User-First-Name"),
			LastName:  r.Header.Get("X-User-Last-Name"),
		}
		logger.Debug("[DEV AUTH] Caller set to context (no validation)", "user_id", userID)
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}
