package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go_5_course_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestDB はテストごとに独立したインメモリ SQLite を返します。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB("sqlite://file:"+uuid.NewString()+"?mode=memory&cache=shared", discardLogger)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	user   *model.User
	course *model.Course
	root   *model.Module
	lesson *model.Lesson
}

// seedFixture は User, Course, ルートモジュール, レッスンを1件ずつ作成します。
func seedFixture(t *testing.T, ctx context.Context, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		user:   &model.User{Name: "Alice", Email: uuid.NewString() + "@example.com", PasswordHash: "x"},
		course: &model.Course{Title: "C1"},
	}
	require.NoError(t, NewGormUserRepository().Create(ctx, db, f.user))
	require.NoError(t, NewGormCourseRepository().Create(ctx, db, f.course))

	f.root = model.NewModule("M1", f.course.ID, nil)
	require.NoError(t, NewGormModuleRepository().Create(ctx, db, f.root))

	f.lesson = &model.Lesson{Title: "L1", ModuleID: f.root.ID}
	require.NoError(t, NewGormLessonRepository().Create(ctx, db, f.lesson))
	return f
}
