package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(authEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Enabled = authEnabled
	cfg.JWT = config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: time.Hour}
	return cfg
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, sub string, expiresAt time.Time) string {
	t.Helper()
	claims := model.JWTCustomClaims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// userIDEcho はコンテキストのユーザーIDをボディに書き出します。
var userIDEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, err := GetUserIDFromContext(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(strconv.FormatUint(uint64(id), 10)))
})

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := testConfig(true)
	handler := JWTAuthMiddleware(cfg)(userIDEcho)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "有効なトークン",
			header:     "Bearer " + signToken(t, "test-secret", jwt.SigningMethodHS256, "7", time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
			wantBody:   "7",
		},
		{
			name:       "ヘッダーなし",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Bearer 以外の形式",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "署名鍵が異なる",
			header:     "Bearer " + signToken(t, "other-secret", jwt.SigningMethodHS256, "7", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "有効期限切れ",
			header:     "Bearer " + signToken(t, "test-secret", jwt.SigningMethodHS256, "7", time.Now().Add(-time.Minute)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "HS256 以外のアルゴリズム",
			header:     "Bearer " + signToken(t, "test-secret", jwt.SigningMethodHS512, "7", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "sub が正の整数でない",
			header:     "Bearer " + signToken(t, "test-secret", jwt.SigningMethodHS256, "0", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestAuthIfEnabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("無効の場合は素通し", func(t *testing.T) {
		rr := httptest.NewRecorder()
		AuthIfEnabled(testConfig(false))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/courses", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("有効の場合はトークン必須", func(t *testing.T) {
		rr := httptest.NewRecorder()
		AuthIfEnabled(testConfig(true))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/courses", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
