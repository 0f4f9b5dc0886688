package service

import (
	"context"
	"testing"

	"go_5_course_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseService_CRUD(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	_, err := env.courses.CreateCourse(ctx, &model.CreateCourseRequest{Title: " "})
	assertAppError(t, err, model.ErrInvalidInput, "VALIDATION_ERROR")

	course, err := env.courses.CreateCourse(ctx, &model.CreateCourseRequest{Title: " C1 ", Description: "intro"})
	require.NoError(t, err)
	assert.Equal(t, "C1", course.Title)
	assert.Equal(t, "intro", course.Description)

	updated, err := env.courses.UpdateCourse(ctx, course.ID, &model.UpdateCourseRequest{Description: ptr("changed")})
	require.NoError(t, err)
	assert.Equal(t, "C1", updated.Title)
	assert.Equal(t, "changed", updated.Description)

	_, err = env.courses.UpdateCourse(ctx, course.ID, &model.UpdateCourseRequest{Title: ptr("")})
	assertAppError(t, err, model.ErrInvalidInput, "VALIDATION_ERROR")

	_, err = env.courses.UpdateCourse(ctx, 9999, &model.UpdateCourseRequest{Title: ptr("X")})
	assertAppError(t, err, model.ErrNotFound, "COURSE_NOT_FOUND")

	got, err := env.courses.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Description)

	list, err := env.courses.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = env.courses.GetCourse(ctx, 9999)
	assertAppError(t, err, model.ErrNotFound, "COURSE_NOT_FOUND")
}

// コース作成からモジュール、レッスン、進捗記録、コース削除までの一連の流れ
func TestCourseService_EndToEndCascade(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	user := env.createUser(t)

	c1 := env.createCourse(t, "C1")
	m1 := env.createModule(t, "M1", c1.ID, nil)
	assert.True(t, m1.IsRootModule)
	child := env.createModule(t, "Child", c1.ID, &m1.ID)
	l1 := env.createLesson(t, "L1", m1.ID)
	l2 := env.createLesson(t, "L2", child.ID)

	completion, err := env.completions.RecordCompletion(ctx, &model.CreateCompletionRequest{
		UserID:             model.IDValue(user.ID),
		LessonID:           model.IDValue(l1.ID),
		ProgressPercentage: ptr(80.0),
	})
	require.NoError(t, err)
	assert.NotZero(t, completion.ID)
	assert.Equal(t, 80.0, completion.ProgressPercentage)
	env.record(t, user.ID, l2.ID, 40)

	_, err = env.completions.RecordCompletion(ctx, &model.CreateCompletionRequest{
		UserID:   model.IDValue(user.ID),
		LessonID: model.IDValue(l1.ID),
	})
	assertAppError(t, err, model.ErrConflict, "DUPLICATE_COMPLETION")

	// 別コースの内容は残る
	c2 := env.createCourse(t, "C2")
	m2 := env.createModule(t, "M2", c2.ID, nil)
	env.createLesson(t, "L3", m2.ID)

	require.NoError(t, env.courses.DeleteCourse(ctx, c1.ID))

	_, err = env.courses.GetCourse(ctx, c1.ID)
	assertAppError(t, err, model.ErrNotFound, "COURSE_NOT_FOUND")
	_, err = env.modules.GetModule(ctx, m1.ID)
	assertAppError(t, err, model.ErrNotFound, "MODULE_NOT_FOUND")
	_, err = env.modules.GetModule(ctx, child.ID)
	assertAppError(t, err, model.ErrNotFound, "MODULE_NOT_FOUND")
	_, err = env.lessons.GetLesson(ctx, l1.ID)
	assertAppError(t, err, model.ErrNotFound, "LESSON_NOT_FOUND")
	_, err = env.completions.GetCompletion(ctx, completion.ID)
	assertAppError(t, err, model.ErrNotFound, "COMPLETION_NOT_FOUND")

	assert.Equal(t, int64(1), env.count(t, &model.Module{}))
	assert.Equal(t, int64(1), env.count(t, &model.Lesson{}))
	assert.Equal(t, int64(0), env.count(t, &model.Completion{}))

	err = env.courses.DeleteCourse(ctx, c1.ID)
	assertAppError(t, err, model.ErrNotFound, "COURSE_NOT_FOUND")
}
