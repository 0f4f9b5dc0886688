package webutil

import (
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_course_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "正常", body: `{"title":"C1","description":"intro"}`},
		{name: "空のボディ", body: ``, wantErr: true},
		{name: "未知のフィールド", body: `{"title":"C1","unknown":1}`, wantErr: true},
		{name: "JSONでない", body: `title=C1`, wantErr: true},
		{name: "複数のオブジェクト", body: `{"title":"a"}{"title":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/v1/courses", strings.NewReader(tt.body))
			var dst model.CreateCourseRequest
			err := DecodeJSONBody(r, &dst)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "C1", dst.Title)
		})
	}
}
