//go:generate mockery --name CompletionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository interface {
	Create(ctx context.Context, db *gorm.DB, completion *model.Completion) error
	FindByID(ctx context.Context, db *gorm.DB, completionID uint) (*model.Completion, error)
	FindAll(ctx context.Context, db *gorm.DB, filter model.CompletionFilter) ([]*model.Completion, error)
	FindByUserAndLesson(ctx context.Context, db *gorm.DB, userID, lessonID uint) (*model.Completion, error)
	// FindByUserWithHierarchy は Lesson -> Module -> Course まで読み込んだ一覧を返します。
	FindByUserWithHierarchy(ctx context.Context, db *gorm.DB, userID uint) ([]*model.Completion, error)
	Update(ctx context.Context, db *gorm.DB, completion *model.Completion) error
	Delete(ctx context.Context, db *gorm.DB, completionID uint) error
	DeleteByLessonIDs(ctx context.Context, db *gorm.DB, lessonIDs []uint) (int64, error)
}

type gormCompletionRepository struct{}

func NewGormCompletionRepository() CompletionRepository {
	return &gormCompletionRepository{}
}

// Create は (user_id, lesson_id) の一意制約違反を model.ErrConflict として返します。
func (r *gormCompletionRepository) Create(ctx context.Context, db *gorm.DB, completion *model.Completion) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Omit(clause.Associations).Create(completion)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create completion",
				"error", result.Error,
				"user_id", completion.UserID,
				"lesson_id", completion.LessonID,
			)
			return model.ErrConflict
		}
		if isForeignKeyViolation(result.Error) {
			logger.Warn("Foreign key violation on create completion", "error", result.Error)
			return fmt.Errorf("gormCompletionRepository.Create: %w", model.ErrInvalidInput)
		}
		logger.Error("Error creating completion in DB", "error", result.Error, "user_id", completion.UserID)
		return fmt.Errorf("gormCompletionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCompletionRepository) FindByID(ctx context.Context, db *gorm.DB, completionID uint) (*model.Completion, error) {
	logger := middleware.GetLogger(ctx)
	var completion model.Completion

	result := db.WithContext(ctx).Preload("User").Preload("Lesson").First(&completion, completionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding completion by ID in DB", "error", result.Error, "completion_id", completionID)
		return nil, fmt.Errorf("gormCompletionRepository.FindByID: %w", result.Error)
	}
	return &completion, nil
}

func (r *gormCompletionRepository) FindAll(ctx context.Context, db *gorm.DB, filter model.CompletionFilter) ([]*model.Completion, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).Preload("User").Preload("Lesson")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.LessonID != nil {
		query = query.Where("lesson_id = ?", *filter.LessonID)
	}

	var completions []*model.Completion
	if err := query.Order("completed_at DESC").Order("id DESC").Find(&completions).Error; err != nil {
		logger.Error("Error listing completions in DB", "error", err)
		return nil, fmt.Errorf("gormCompletionRepository.FindAll: %w", err)
	}
	return completions, nil
}

func (r *gormCompletionRepository) FindByUserAndLesson(ctx context.Context, db *gorm.DB, userID, lessonID uint) (*model.Completion, error) {
	logger := middleware.GetLogger(ctx)
	var completion model.Completion

	result := db.WithContext(ctx).Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&completion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding completion by user and lesson", "error", result.Error, "user_id", userID, "lesson_id", lessonID)
		return nil, fmt.Errorf("gormCompletionRepository.FindByUserAndLesson: %w", result.Error)
	}
	return &completion, nil
}

func (r *gormCompletionRepository) FindByUserWithHierarchy(ctx context.Context, db *gorm.DB, userID uint) ([]*model.Completion, error) {
	logger := middleware.GetLogger(ctx)
	var completions []*model.Completion

	err := db.WithContext(ctx).
		Preload("Lesson.Module.Course").
		Where("user_id = ?", userID).
		Order("completed_at DESC").Order("id DESC").
		Find(&completions).Error
	if err != nil {
		logger.Error("Error loading completions with hierarchy", "error", err, "user_id", userID)
		return nil, fmt.Errorf("gormCompletionRepository.FindByUserWithHierarchy: %w", err)
	}
	return completions, nil
}

func (r *gormCompletionRepository) Update(ctx context.Context, db *gorm.DB, completion *model.Completion) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(completion).Error; err != nil {
		logger.Error("Error updating completion in DB", "error", err, "completion_id", completion.ID)
		return fmt.Errorf("gormCompletionRepository.Update: %w", err)
	}
	return nil
}

func (r *gormCompletionRepository) Delete(ctx context.Context, db *gorm.DB, completionID uint) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Delete(&model.Completion{}, completionID)
	if result.Error != nil {
		logger.Error("Error deleting completion in DB", "error", result.Error, "completion_id", completionID)
		return fmt.Errorf("gormCompletionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCompletionRepository) DeleteByLessonIDs(ctx context.Context, db *gorm.DB, lessonIDs []uint) (int64, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).Where("lesson_id IN ?", lessonIDs).Delete(&model.Completion{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting completions by lessons", "error", result.Error)
		return 0, fmt.Errorf("gormCompletionRepository.DeleteByLessonIDs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
