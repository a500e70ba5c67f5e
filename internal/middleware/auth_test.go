package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims model.AccessTokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

// captureCaller は次のハンドラに渡った呼び出し元を記録する
func captureCaller(got *model.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := GetCallerFromContext(r.Context())
		if err == nil {
			*got = caller
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := config.Defaults()
	cfg.JWT.SecretKey = testSecret
	cfg.JWT.Audience = "authenticated"

	userID := uuid.New()
	validClaims := func() model.AccessTokenClaims {
		return model.AccessTokenClaims{
			Email:        "learner@example.com",
			UserMetadata: model.UserMetadata{FirstName: "Ada", LastName: "Lovelace"},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				Audience:  jwt.ClaimStrings{"authenticated"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name           string
		header         func(t *testing.T) string
		expectedStatus int
	}{
		{
			name: "正常系: 有効なトークン",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "異常系: ヘッダーなし",
			header:         func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: Bearer でない",
			header:         func(t *testing.T) string { return "Basic abc" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: 署名鍵が違う",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: 期限切れ",
			header: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), c)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: audience が違う",
			header: func(t *testing.T) string {
				c := validClaims()
				c.Audience = jwt.ClaimStrings{"anon"}
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), c)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: subject がUUIDでない",
			header: func(t *testing.T) string {
				c := validClaims()
				c.Subject = "user-1"
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), c)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Caller
			handler := JWTAuthMiddleware(cfg)(captureCaller(&got))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Equal(t, userID, got.UserID)
				assert.Equal(t, "learner@example.com", got.Email)
				assert.Equal(t, "Ada Lovelace", got.DisplayName())
			} else {
				assert.Equal(t, uuid.Nil, got.UserID)
				assert.Contains(t, rr.Body.String(), `"code":"UNAUTHORIZED"`)
			}
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userIDHeader   string
		expectedStatus int
	}{
		{name: "正常系", userIDHeader: userID.String(), expectedStatus: http.StatusNoContent},
		{name: "異常系: ヘッダーなし", userIDHeader: "", expectedStatus: http.StatusUnauthorized},
		{name: "異常系: UUIDでない", userIDHeader: "42", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Caller
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userIDHeader != "" {
				req.Header.Set("X-User-ID", tt.userIDHeader)
			}
			req.Header.Set("X-User-Email", "dev@example.com")
			rr := httptest.NewRecorder()
			DevUserContextMiddleware(captureCaller(&got)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Equal(t, userID, got.UserID)
				assert.Equal(t, "dev", got.DisplayName())
			}
		})
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	_, err := GetCallerFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}
