package service

import (
	"context"
	"testing"

	"go_5_course_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionService_RecordCompletion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	user := env.createUser(t)
	course := env.createCourse(t, "C1")
	m := env.createModule(t, "M1", course.ID, nil)

	tests := []struct {
		name          string
		userID        model.OptionalID
		progress      *float64
		missingLesson bool
		wantProgress  float64
		wantErr       error
		wantCode      string
	}{
		{name: "省略時は100", userID: model.IDValue(user.ID), wantProgress: 100},
		{name: "範囲内はそのまま", userID: model.IDValue(user.ID), progress: ptr(80.0), wantProgress: 80},
		{name: "150 は 100 に丸められる", userID: model.IDValue(user.ID), progress: ptr(150.0), wantProgress: 100},
		{name: "-20 は 0 に丸められる", userID: model.IDValue(user.ID), progress: ptr(-20.0), wantProgress: 0},
		{name: "小数点以下2桁", userID: model.IDValue(user.ID), progress: ptr(33.336), wantProgress: 33.34},
		{name: "数値文字列のID", userID: model.OptionalID{Set: true, Raw: "1"}, progress: ptr(10.0), wantProgress: 10},
		{name: "userId が不正", userID: model.OptionalID{Set: true, Raw: "abc"}, wantErr: model.ErrInvalidInput, wantCode: "INVALID_ID"},
		{name: "userId が null", userID: model.NullID(), wantErr: model.ErrInvalidInput, wantCode: "INVALID_ID"},
		{name: "ユーザーが存在しない", userID: model.IDValue(9999), wantErr: model.ErrInvalidInput, wantCode: "USER_NOT_FOUND"},
		{name: "レッスンが存在しない", userID: model.IDValue(user.ID), missingLesson: true, wantErr: model.ErrInvalidInput, wantCode: "LESSON_NOT_FOUND"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ケースごとに新しいレッスンを使い、重複を避ける
			lesson := env.createLesson(t, "L", m.ID)
			lessonID := model.IDValue(lesson.ID)
			if tt.missingLesson {
				lessonID = model.IDValue(lesson.ID + 1000)
			}
			before := env.count(t, &model.Completion{})

			c, err := env.completions.RecordCompletion(ctx, &model.CreateCompletionRequest{
				UserID:             tt.userID,
				LessonID:           lessonID,
				ProgressPercentage: tt.progress,
			})
			if tt.wantErr != nil {
				assertAppError(t, err, tt.wantErr, tt.wantCode)
				assert.Equal(t, before, env.count(t, &model.Completion{}))
				return
			}

			require.NoError(t, err, "case %d", i)
			assert.NotZero(t, c.ID)
			assert.Equal(t, tt.wantProgress, c.ProgressPercentage)

			stored, err := env.completions.GetCompletion(ctx, c.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProgress, stored.ProgressPercentage)
			assert.GreaterOrEqual(t, stored.ProgressPercentage, 0.0)
			assert.LessOrEqual(t, stored.ProgressPercentage, 100.0)
		})
	}
}

func TestCompletionService_Duplicate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	user := env.createUser(t)
	course := env.createCourse(t, "C1")
	m := env.createModule(t, "M1", course.ID, nil)
	lesson := env.createLesson(t, "L1", m.ID)

	first := env.record(t, user.ID, lesson.ID, 40)

	_, err := env.completions.RecordCompletion(ctx, &model.CreateCompletionRequest{
		UserID:             model.IDValue(user.ID),
		LessonID:           model.IDValue(lesson.ID),
		ProgressPercentage: ptr(90.0),
	})
	assertAppError(t, err, model.ErrConflict, "DUPLICATE_COMPLETION")

	stored, err := env.completions.GetCompletion(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, stored.ProgressPercentage)
	assert.Equal(t, int64(1), env.count(t, &model.Completion{}))
}

func TestCompletionService_UpdateCompletion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)
	user := env.createUser(t)
	course := env.createCourse(t, "C1")
	m := env.createModule(t, "M1", course.ID, nil)
	lesson := env.createLesson(t, "L1", m.ID)
	c := env.record(t, user.ID, lesson.ID, 40)

	updated, err := env.completions.UpdateCompletion(ctx, c.ID, &model.UpdateCompletionRequest{ProgressPercentage: ptr(250.0)})
	require.NoError(t, err)
	assert.Equal(t, 100.0, updated.ProgressPercentage)

	updated, err = env.completions.UpdateCompletion(ctx, c.ID, &model.UpdateCompletionRequest{ProgressPercentage: ptr(-1.0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.ProgressPercentage)

	stored, err := env.completions.GetCompletion(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.ProgressPercentage)

	_, err = env.completions.UpdateCompletion(ctx, c.ID, &model.UpdateCompletionRequest{})
	assertAppError(t, err, model.ErrInvalidInput, "VALIDATION_ERROR")

	_, err = env.completions.UpdateCompletion(ctx, 9999, &model.UpdateCompletionRequest{ProgressPercentage: ptr(10.0)})
	assertAppError(t, err, model.ErrNotFound, "COMPLETION_NOT_FOUND")

	require.NoError(t, env.completions.DeleteCompletion(ctx, c.ID))
	err = env.completions.DeleteCompletion(ctx, c.ID)
	assertAppError(t, err, model.ErrNotFound, "COMPLETION_NOT_FOUND")
}

func TestCompletionService_ComputeUserProgress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, false)

	t.Run("進捗なし", func(t *testing.T) {
		user := env.createUser(t)

		progress, err := env.completions.ComputeUserProgress(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, progress.TotalCompletions)
		assert.Equal(t, 0.0, progress.AverageProgress)
		assert.NotNil(t, progress.Completions)
		assert.Empty(t, progress.Completions)
	})

	t.Run("不正なID", func(t *testing.T) {
		_, err := env.completions.ComputeUserProgress(ctx, 0)
		assertAppError(t, err, model.ErrInvalidInput, "INVALID_ID")
	})

	t.Run("平均と階層の表示名", func(t *testing.T) {
		user := env.createUser(t)
		other := env.createUser(t)
		course := env.createCourse(t, "Go入門")
		m := env.createModule(t, "基礎", course.ID, nil)
		l1 := env.createLesson(t, "変数", m.ID)
		l2 := env.createLesson(t, "関数", m.ID)
		l3 := env.createLesson(t, "構造体", m.ID)

		env.record(t, user.ID, l1.ID, 100)
		env.record(t, user.ID, l2.ID, 50)
		env.record(t, user.ID, l3.ID, 25)
		env.record(t, other.ID, l1.ID, 10)

		progress, err := env.completions.ComputeUserProgress(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, progress.TotalCompletions)
		assert.InDelta(t, 175.0/3.0, progress.AverageProgress, 1e-9)
		require.Len(t, progress.Completions, 3)

		titles := map[string]bool{}
		for _, e := range progress.Completions {
			titles[e.LessonTitle] = true
			assert.Equal(t, "基礎", e.ModuleTitle)
			assert.Equal(t, "Go入門", e.CourseTitle)
		}
		assert.Equal(t, map[string]bool{"変数": true, "関数": true, "構造体": true}, titles)
	})
}
