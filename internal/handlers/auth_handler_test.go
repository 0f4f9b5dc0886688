package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go_5_course_keep/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, sub string) string {
	t.Helper()
	claims := model.JWTCustomClaims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(app *testApp)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系",
			body: model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"},
			setupMock: func(app *testApp) {
				app.auth.On("Register", mock.Anything, mock.MatchedBy(func(req *model.RegisterRequest) bool {
					return req.Email == "alice@example.com"
				})).Return(&model.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "hashed"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: パスワードが短い",
			body:           model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "short"},
			setupMock:      func(app *testApp) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: メールアドレスの形式",
			body:           model.RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "password123"},
			setupMock:      func(app *testApp) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: メールアドレス重複",
			body: model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"},
			setupMock: func(app *testApp) {
				app.auth.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t, newTestConfig(false))
			tt.setupMock(app)

			status, body := sendRequest(t, app, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/users/register", Body: tt.body})

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedCode != "" {
				assertErrorCode(t, body, tt.expectedCode)
				return
			}
			// パスワードハッシュは出力しない
			assert.NotContains(t, string(body), "hashed")
			assert.NotContains(t, string(body), "password")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		app := setupTestApp(t, newTestConfig(false))
		app.auth.On("Login", mock.Anything, &model.LoginRequest{Email: "alice@example.com", Password: "password123"}).
			Return(&model.LoginResponse{User: &model.User{ID: 1, Email: "alice@example.com"}, Token: "signed-token"}, nil).Once()

		status, body := sendRequest(t, app, httpRequestDetails{
			Method: http.MethodPost,
			Path:   "/api/v1/users/login",
			Body:   model.LoginRequest{Email: "alice@example.com", Password: "password123"},
		})

		require.Equal(t, http.StatusOK, status)
		var resp model.LoginResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("認証失敗", func(t *testing.T) {
		app := setupTestApp(t, newTestConfig(false))
		app.auth.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)).Once()

		status, body := sendRequest(t, app, httpRequestDetails{
			Method: http.MethodPost,
			Path:   "/api/v1/users/login",
			Body:   model.LoginRequest{Email: "alice@example.com", Password: "wrong"},
		})

		assert.Equal(t, http.StatusUnauthorized, status)
		assertErrorCode(t, body, "AUTHENTICATION_FAILED")
	})
}

func TestAuthHandler_GetMe(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		app := setupTestApp(t, newTestConfig(false))
		app.auth.On("GetUser", mock.Anything, uint(7)).Return(&model.User{ID: 7, Name: "Alice"}, nil).Once()

		status, body := sendRequest(t, app, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/users/me",
			Headers: map[string]string{"Authorization": "Bearer " + signTestToken(t, "7")},
		})

		require.Equal(t, http.StatusOK, status)
		var user model.User
		require.NoError(t, json.Unmarshal(body, &user))
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("トークンなし", func(t *testing.T) {
		app := setupTestApp(t, newTestConfig(false))

		status, body := sendRequest(t, app, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/users/me"})

		assert.Equal(t, http.StatusUnauthorized, status)
		assertErrorCode(t, body, "UNAUTHORIZED")
	})

	t.Run("サービスエラー", func(t *testing.T) {
		app := setupTestApp(t, newTestConfig(false))
		app.auth.On("GetUser", mock.Anything, uint(7)).Return(nil, errors.New("boom")).Once()

		status, body := sendRequest(t, app, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/users/me",
			Headers: map[string]string{"Authorization": "Bearer " + signTestToken(t, "7")},
		})

		assert.Equal(t, http.StatusInternalServerError, status)
		assertErrorCode(t, body, "INTERNAL_SERVER_ERROR")
	})
}

func TestHealthHandler(t *testing.T) {
	app := setupTestApp(t, newTestConfig(false))

	status, body := sendRequest(t, app, httpRequestDetails{Method: http.MethodGet, Path: "/health"})
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	app.pinger.err = errors.New("connection refused")
	status, body = sendRequest(t, app, httpRequestDetails{Method: http.MethodGet, Path: "/health"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assertErrorCode(t, body, "INTERNAL_SERVER_ERROR")
}
