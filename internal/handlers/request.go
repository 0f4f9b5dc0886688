package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// decodeAndValidate はボディをデコードし、validate タグを検証します。失敗時は AppError を返します。
func decodeAndValidate(r *http.Request, logger *slog.Logger, dst interface{}) error {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			return webutil.NewValidationErrorResponse(validationErrors)
		}
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		return err
	}
	return nil
}

// pathID はURLパラメータを正の整数のIDとして取り出します。
func pathID(r *http.Request, param string) (uint, error) {
	raw := chi.URLParam(r, param)
	id, ok := model.ParseID(raw)
	if !ok {
		return 0, model.NewAppError("INVALID_URL_PARAM", param+"は正の整数で指定してください。", param, model.ErrInvalidInput)
	}
	return id, nil
}

// queryID はクエリパラメータのIDを返します。指定なしまたは不正な値の場合は nil です。
func queryID(r *http.Request, key string, logger *slog.Logger) *uint {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	id, ok := model.ParseID(raw)
	if !ok {
		logger.Warn("Ignoring invalid id filter", slog.String("key", key), slog.String("value", raw))
		return nil
	}
	return &id
}
