package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupTestDB はテストごとに独立したインメモリ SQLite を返します。
func setupTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB("sqlite://file:"+uuid.NewString()+"?mode=memory&cache=shared", testLogger)
	require.NoError(t, err)
	if migrate {
		require.NoError(t, repository.Migrate(db))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// testEnv は実際のリポジトリで組み立てたサービス一式です。
type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	courses     CourseService
	modules     ModuleService
	lessons     LessonService
	completions CompletionService
	userRepo    repository.UserRepository
}

func newTestEnv(t *testing.T, requireSameCourseParent bool) *testEnv {
	t.Helper()
	db := setupTestDB(t, true)

	cfg := &config.Config{}
	cfg.App.Name = config.AppName
	cfg.App.RequireSameCourseParent = requireSameCourseParent

	userRepo := repository.NewGormUserRepository()
	courseRepo := repository.NewGormCourseRepository()
	moduleRepo := repository.NewGormModuleRepository()
	lessonRepo := repository.NewGormLessonRepository()
	completionRepo := repository.NewGormCompletionRepository()

	return &testEnv{
		db:          db,
		cfg:         cfg,
		courses:     NewCourseService(db, courseRepo, moduleRepo, lessonRepo, completionRepo),
		modules:     NewModuleService(db, courseRepo, moduleRepo, lessonRepo, completionRepo, cfg),
		lessons:     NewLessonService(db, moduleRepo, lessonRepo, completionRepo),
		completions: NewCompletionService(db, userRepo, lessonRepo, completionRepo),
		userRepo:    userRepo,
	}
}

func (e *testEnv) createUser(t *testing.T) *model.User {
	t.Helper()
	u := &model.User{Name: "learner", Email: uuid.NewString() + "@example.com", PasswordHash: "x"}
	require.NoError(t, e.userRepo.Create(context.Background(), e.db, u))
	return u
}

func (e *testEnv) createCourse(t *testing.T, title string) *model.Course {
	t.Helper()
	c, err := e.courses.CreateCourse(context.Background(), &model.CreateCourseRequest{Title: title})
	require.NoError(t, err)
	return c
}

func (e *testEnv) createModule(t *testing.T, title string, courseID uint, parentID *uint) *model.Module {
	t.Helper()
	req := &model.CreateModuleRequest{Title: title, CourseID: model.IDValue(courseID)}
	if parentID != nil {
		req.ModuleID = model.IDValue(*parentID)
	}
	m, err := e.modules.CreateModule(context.Background(), req)
	require.NoError(t, err)
	return m
}

func (e *testEnv) createLesson(t *testing.T, title string, moduleID uint) *model.Lesson {
	t.Helper()
	l, err := e.lessons.CreateLesson(context.Background(), &model.CreateLessonRequest{Title: title, ModuleID: model.IDValue(moduleID)})
	require.NoError(t, err)
	return l
}

func (e *testEnv) record(t *testing.T, userID, lessonID uint, progress float64) *model.Completion {
	t.Helper()
	c, err := e.completions.RecordCompletion(context.Background(), &model.CreateCompletionRequest{
		UserID:             model.IDValue(userID),
		LessonID:           model.IDValue(lessonID),
		ProgressPercentage: &progress,
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) count(t *testing.T, value interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(value).Count(&n).Error)
	return n
}

// assertAppError はエラーコードと分類 (sentinel) を検証します。
func assertAppError(t *testing.T, err error, sentinel error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Detail.Code)
	assert.ErrorIs(t, err, sentinel)
}

func ptr[T any](v T) *T { return &v }
