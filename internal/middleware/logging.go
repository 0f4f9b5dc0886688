package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type logCtxKey struct{}

const maskedValue = "[MASKED]"

// ログに値を残さないヘッダーとJSONキー (小文字)
var (
	sensitiveHeaders = map[string]bool{
		"authorization": true,
		"cookie":        true,
		"set-cookie":    true,
		"x-api-key":     true,
		"x-csrf-token":  true,
	}
	sensitiveBodyFields = map[string]bool{
		"password": true,
		"token":    true,
	}
)

// LoggingMiddleware はリクエストIDを付けたロガーをコンテキストに格納し、
// 処理完了時にステータスに応じたレベルでアクセスログを出します。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(slog.String("req_id", middleware.GetReqID(r.Context())))
			ctx := WithLogger(r.Context(), reqLogger)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				reqLogger.LogAttrs(ctx, statusLevel(status), "Request completed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
					slog.Int("status", status),
					slog.Int("bytes_out", ww.BytesWritten()),
					slog.Duration("latency", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// WithLogger はロガーを格納したコンテキストを返します。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストのロガーを返します。未設定なら slog.Default() です。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = maskedValue
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}

// maskJSONBody は機密キーの値を伏せたJSON文字列を返します。JSONでなければそのまま返します。
func maskJSONBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}
	maskValue(data)
	masked, err := json.Marshal(data)
	if err != nil {
		return string(body)
	}
	return string(masked)
}

func maskValue(v interface{}) {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			if sensitiveBodyFields[strings.ToLower(k)] {
				t[k] = maskedValue
				continue
			}
			maskValue(child)
		}
	case []interface{}:
		for _, child := range t {
			maskValue(child)
		}
	}
}
