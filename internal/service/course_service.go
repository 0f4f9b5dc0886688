//go:generate mockery --name CourseService --structname MockCourseService --filename mock_course_service.go --output ./mocks --outpkg mocks
// internal/service/course_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/repository"

	"gorm.io/gorm"
)

type CourseService interface {
	ListCourses(ctx context.Context) ([]*model.Course, error)
	GetCourse(ctx context.Context, courseID uint) (*model.Course, error)
	CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error)
	UpdateCourse(ctx context.Context, courseID uint, req *model.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, courseID uint) error
}

type courseService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
	cascade    *contentCascade
}

func NewCourseService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	moduleRepo repository.ModuleRepository,
	lessonRepo repository.LessonRepository,
	completionRepo repository.CompletionRepository,
) CourseService {
	return &courseService{
		db:         db,
		courseRepo: courseRepo,
		cascade:    newContentCascade(moduleRepo, lessonRepo, completionRepo),
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]*model.Course, error) {
	courses, err := s.courseRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, internalError(err)
	}
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, courseNotFound()
		}
		return nil, internalError(err)
	}
	return course, nil
}

func (s *courseService) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationError("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
	}

	course := &model.Course{Title: title, Description: req.Description}
	if err := s.courseRepo.Create(ctx, s.db, course); err != nil {
		return nil, writeError(err)
	}

	logger.Info("Course created", slog.Uint64("course_id", uint64(course.ID)))
	return course, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, courseID uint, req *model.UpdateCourseRequest) (*model.Course, error) {
	var updated *model.Course

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.FindByID(ctx, tx, courseID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return courseNotFound()
			}
			return internalError(err)
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return validationError("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
			}
			course.Title = title
		}
		if req.Description != nil {
			course.Description = *req.Description
		}

		if err := s.courseRepo.Update(ctx, tx, course); err != nil {
			return writeError(err)
		}
		updated = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCourse はコースと配下のモジュール、レッスン、進捗をまとめて削除します。
func (s *courseService) DeleteCourse(ctx context.Context, courseID uint) error {
	logger := middleware.GetLogger(ctx).With(slog.Uint64("course_id", uint64(courseID)))

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.courseRepo.Exists(ctx, tx, courseID)
		if err != nil {
			return internalError(err)
		}
		if !exists {
			return courseNotFound()
		}

		res, err := s.cascade.deleteCourseContent(ctx, tx, courseID)
		if err != nil {
			logger.Error("Failed to cascade course deletion", "error", err)
			return internalError(err)
		}
		if err := s.courseRepo.Delete(ctx, tx, courseID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return courseNotFound()
			}
			return internalError(err)
		}

		logger.Info("Course deleted",
			slog.Int64("modules", res.Modules),
			slog.Int64("lessons", res.Lessons),
			slog.Int64("completions", res.Completions),
		)
		return nil
	})
}

func courseNotFound() error {
	return notFoundError("COURSE_NOT_FOUND", "コースが見つかりません。")
}
