//go:build integration

package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"go_5_course_keep/internal/model"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pgDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=course_keep",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	url := fmt.Sprintf("postgres://user:secret@%s:%s/course_keep?sslmode=disable", host, resource.GetPort("5432/tcp"))

	if err := pool.Retry(func() error {
		var errRetry error
		pgDB, errRetry = NewDB(url, discardLogger)
		return errRetry
	}); err != nil {
		pool.Purge(resource)
		log.Fatalf("Could not connect to PostgreSQL: %s", err)
	}

	if err := Migrate(pgDB); err != nil {
		pool.Purge(resource)
		log.Fatalf("Could not migrate: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func TestPostgres_CompletionUniqueConstraint(t *testing.T) {
	ctx := context.Background()
	f := seedFixture(t, ctx, pgDB)
	repo := NewGormCompletionRepository()

	require.NoError(t, repo.Create(ctx, pgDB, &model.Completion{UserID: f.user.ID, LessonID: f.lesson.ID, ProgressPercentage: 80}))
	err := repo.Create(ctx, pgDB, &model.Completion{UserID: f.user.ID, LessonID: f.lesson.ID, ProgressPercentage: 10})
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestPostgres_ForeignKeyViolation(t *testing.T) {
	ctx := context.Background()
	err := NewGormLessonRepository().Create(ctx, pgDB, &model.Lesson{Title: "orphan", ModuleID: 999999})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPostgres_CourseDeleteCascades(t *testing.T) {
	ctx := context.Background()
	f := seedFixture(t, ctx, pgDB)
	c := &model.Completion{UserID: f.user.ID, LessonID: f.lesson.ID, ProgressPercentage: 80}
	require.NoError(t, NewGormCompletionRepository().Create(ctx, pgDB, c))

	// 外部キーの ON DELETE CASCADE だけで子孫が消える
	require.NoError(t, NewGormCourseRepository().Delete(ctx, pgDB, f.course.ID))

	exists, err := NewGormModuleRepository().Exists(ctx, pgDB, f.root.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = NewGormLessonRepository().Exists(ctx, pgDB, f.lesson.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	_, err = NewGormCompletionRepository().FindByID(ctx, pgDB, c.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
