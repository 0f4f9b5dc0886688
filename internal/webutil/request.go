package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go_5_course_keep/internal/model"
)

// DecodeJSONBody はリクエストボディを dst にデコードします。未知のフィールドはエラーです。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body: %w", model.ErrInvalidInput)
		}
		return fmt.Errorf("%v: %w", err, model.ErrInvalidInput)
	}
	if decoder.More() {
		return fmt.Errorf("request body must contain a single JSON object: %w", model.ErrInvalidInput)
	}
	return nil
}
