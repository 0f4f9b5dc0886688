//go:generate mockery --name LessonService --structname MockLessonService --filename mock_lesson_service.go --output ./mocks --outpkg mocks
// internal/service/lesson_service.go
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

type LessonService interface {
	ListLessons(ctx context.Context, filter model.LessonFilter) ([]*model.Lesson, error)
	GetLesson(ctx context.Context, lessonID uint) (*model.Lesson, error)
	CreateLesson(ctx context.Context, req *model.CreateLessonRequest) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID uint, req *model.UpdateLessonRequest) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uint) error
}

type lessonService struct {
	db         *gorm.DB
	moduleRepo repository.ModuleRepository
	lessonRepo repository.LessonRepository
	cascade    *contentCascade
}

func NewLessonService(
	db *gorm.DB,
	moduleRepo repository.ModuleRepository,
	lessonRepo repository.LessonRepository,
	completionRepo repository.CompletionRepository,
) LessonService {
	return &lessonService{
		db:         db,
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		cascade:    newContentCascade(moduleRepo, lessonRepo, completionRepo),
	}
}

func (s *lessonService) ListLessons(ctx context.Context, filter model.LessonFilter) ([]*model.Lesson, error) {
	lessons, err := s.lessonRepo.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, internalError(err)
	}
	return lessons, nil
}

func (s *lessonService) GetLesson(ctx context.Context, lessonID uint) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, lessonNotFound()
		}
		return nil, internalError(err)
	}
	return lesson, nil
}

func (s *lessonService) CreateLesson(ctx context.Context, req *model.CreateLessonRequest) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationError("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
	}
	moduleID, ok := req.ModuleID.ID()
	if !ok {
		return nil, validationError("INVALID_MODULE_ID", "moduleIdは正の整数で指定してください。", "moduleId")
	}

	lesson := &model.Lesson{Title: title, Content: req.Content, ModuleID: moduleID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireModule(ctx, tx, moduleID); err != nil {
			return err
		}
		if err := s.lessonRepo.Create(ctx, tx, lesson); err != nil {
			return writeError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Lesson created", slog.Uint64("lesson_id", uint64(lesson.ID)), slog.Uint64("module_id", uint64(moduleID)))
	return lesson, nil
}

func (s *lessonService) UpdateLesson(ctx context.Context, lessonID uint, req *model.UpdateLessonRequest) (*model.Lesson, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := s.lessonRepo.FindByID(ctx, tx, lessonID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return lessonNotFound()
			}
			return internalError(err)
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return validationError("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
			}
			lesson.Title = title
		}
		if req.Content != nil {
			lesson.Content = *req.Content
		}
		if req.ModuleID.Set {
			moduleID, ok := req.ModuleID.ID()
			if !ok {
				return validationError("INVALID_MODULE_ID", "moduleIdは正の整数で指定してください。", "moduleId")
			}
			if err := s.requireModule(ctx, tx, moduleID); err != nil {
				return err
			}
			lesson.ModuleID = moduleID
			lesson.Module = nil
		}

		if err := s.lessonRepo.Update(ctx, tx, lesson); err != nil {
			return writeError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetLesson(ctx, lessonID)
}

// DeleteLesson はレッスンと、そのレッスンに対する全ての進捗を削除します。
func (s *lessonService) DeleteLesson(ctx context.Context, lessonID uint) error {
	logger := middleware.GetLogger(ctx).With(slog.Uint64("lesson_id", uint64(lessonID)))

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.lessonRepo.Exists(ctx, tx, lessonID)
		if err != nil {
			return internalError(err)
		}
		if !exists {
			return lessonNotFound()
		}

		res, err := s.cascade.deleteLessonContent(ctx, tx, lessonID)
		if err != nil {
			return internalError(err)
		}
		if err := s.lessonRepo.Delete(ctx, tx, lessonID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return lessonNotFound()
			}
			return internalError(err)
		}

		logger.Info("Lesson deleted", slog.Int64("completions", res.Completions))
		return nil
	})
}

func (s *lessonService) requireModule(ctx context.Context, tx *gorm.DB, moduleID uint) error {
	exists, err := s.moduleRepo.Exists(ctx, tx, moduleID)
	if err != nil {
		return internalError(err)
	}
	if !exists {
		return validationError("MODULE_NOT_FOUND", "指定されたモジュールが存在しません。", "moduleId")
	}
	return nil
}

func lessonNotFound() error {
	return notFoundError("LESSON_NOT_FOUND", "レッスンが見つかりません。")
}
