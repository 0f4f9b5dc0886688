package middleware

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.statusCode = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestDetailLoggingMiddleware はリクエストヘッダーを記録し、4xx/5xx の場合はボディも記録します。
// ボディ内の password などはマスキングされます。
func RequestDetailLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := chimiddleware.GetReqID(r.Context())

			var bodyBytes []byte
			if r.Body != nil && r.ContentLength != 0 {
				b, err := io.ReadAll(r.Body)
				if err != nil {
					logger.ErrorContext(r.Context(), "Failed to read request body in middleware",
						slog.Any("error", err), slog.String("request_id", requestID))
				} else {
					bodyBytes = b
				}
				r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			}

			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			attrs := []slog.Attr{
				slog.String("request_id", requestID),
				slog.String("type", "request_detail_log"),
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status_code", rec.statusCode),
			}

			headers := formatHeaders(r.Header)
			if len(headers) > 0 {
				headerAttrs := make([]interface{}, 0, len(headers))
				for k, v := range headers {
					headerAttrs = append(headerAttrs, slog.String(strings.ToLower(strings.ReplaceAll(k, "-", "_")), v))
				}
				attrs = append(attrs, slog.Group("request_headers", headerAttrs...))
			}

			level := slog.LevelDebug
			if rec.statusCode >= 500 {
				level = slog.LevelError
			} else if rec.statusCode >= 400 {
				level = slog.LevelWarn
			}

			if rec.statusCode >= 400 && len(bodyBytes) > 0 {
				if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
					attrs = append(attrs, slog.String("request_body", maskJSONBody(bodyBytes)))
				} else {
					attrs = append(attrs, slog.String("request_body_info",
						fmt.Sprintf("[Non-JSON body: %d bytes, Content-Type: %s]", len(bodyBytes), r.Header.Get("Content-Type"))))
				}
			}

			logger.LogAttrs(r.Context(), level, "HTTP request detail", attrs...)
		})
	}
}
