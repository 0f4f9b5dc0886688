// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/handlers"
	"go_5_course_keep/internal/model"
	svc_mocks "go_5_course_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

// fakePinger は PingContext の結果を固定で返します。
type fakePinger struct {
	err error
}

func (p *fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

// testApp はモックサービスを組み込んだルーター一式です。
type testApp struct {
	server     *httptest.Server
	course     *svc_mocks.MockCourseService
	module     *svc_mocks.MockModuleService
	lesson     *svc_mocks.MockLessonService
	completion *svc_mocks.MockCompletionService
	auth       *svc_mocks.MockAuthService
	pinger     *fakePinger
}

func newTestConfig(authEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Enabled = authEnabled
	cfg.JWT = config.JWTConfig{SecretKey: testSecret, AccessTokenTTL: time.Hour}
	return cfg
}

func setupTestApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()

	app := &testApp{
		course:     svc_mocks.NewMockCourseService(t),
		module:     svc_mocks.NewMockModuleService(t),
		lesson:     svc_mocks.NewMockLessonService(t),
		completion: svc_mocks.NewMockCompletionService(t),
		auth:       svc_mocks.NewMockAuthService(t),
		pinger:     &fakePinger{},
	}

	r := chi.NewRouter()
	handlers.RegisterRoutes(r, &handlers.Handlers{
		Course:     handlers.NewCourseHandler(app.course),
		Module:     handlers.NewModuleHandler(app.module),
		Lesson:     handlers.NewLessonHandler(app.lesson),
		Completion: handlers.NewCompletionHandler(app.completion),
		Auth:       handlers.NewAuthHandler(app.auth),
		Health:     handlers.NewHealthHandler(app.pinger),
	}, cfg)

	app.server = httptest.NewServer(r)
	t.Cleanup(app.server.Close)
	return app
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// sendRequest はリクエストを送信し、ステータスコードとボディを返します。
func sendRequest(t *testing.T, app *testApp, details httpRequestDetails) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(b)
		}
	}

	req, err := http.NewRequest(details.Method, app.server.URL+details.Path, reqBody)
	require.NoError(t, err)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range details.Headers {
		req.Header.Set(k, v)
	}

	resp, err := app.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

// assertErrorCode はエラーレスポンスの code を検証します。
func assertErrorCode(t *testing.T, body []byte, code string) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", string(body))
	assert.Equal(t, code, resp.Error.Code)
	return resp.Error
}
