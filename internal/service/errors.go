package service

import (
	"errors"

	"go_5_course_keep/internal/model"
)

const internalErrorMessage = "サーバー内部でエラーが発生しました。"

func internalError(err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", internalErrorMessage, "", err)
}

func validationError(code, message, field string) error {
	return model.NewAppError(code, message, field, model.ErrInvalidInput)
}

func notFoundError(code, message string) error {
	return model.NewAppError(code, message, "", model.ErrNotFound)
}

// passAppError は AppError をそのまま返し、それ以外を内部エラーとして包みます。
func passAppError(err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return internalError(err)
}

// writeError はリポジトリの書き込みエラーを AppError に変換します。
func writeError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return validationError("REFERENCE_NOT_FOUND", "参照先のリソースが存在しません。", "")
	case errors.Is(err, model.ErrConflict):
		return model.NewAppError("CONFLICT", "リソースが既に存在します。", "", model.ErrConflict)
	default:
		return passAppError(err)
	}
}
