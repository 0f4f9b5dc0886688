//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
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

type LessonRepository interface {
	Create(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error
	FindByID(ctx context.Context, db *gorm.DB, lessonID uint) (*model.Lesson, error)
	FindAll(ctx context.Context, db *gorm.DB, filter model.LessonFilter) ([]*model.Lesson, error)
	Update(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error
	Delete(ctx context.Context, db *gorm.DB, lessonID uint) error
	Exists(ctx context.Context, db *gorm.DB, lessonID uint) (bool, error)
	FindIDsByModuleIDs(ctx context.Context, db *gorm.DB, moduleIDs []uint) ([]uint, error)
	DeleteByModuleIDs(ctx context.Context, db *gorm.DB, moduleIDs []uint) (int64, error)
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) Create(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(lesson).Error; err != nil {
		if isForeignKeyViolation(err) {
			logger.Warn("Foreign key violation on create lesson", "error", err, "module_id", lesson.ModuleID)
			return fmt.Errorf("gormLessonRepository.Create: %w", model.ErrInvalidInput)
		}
		logger.Error("Error creating lesson in DB", "error", err, "title", lesson.Title)
		return fmt.Errorf("gormLessonRepository.Create: %w", err)
	}
	return nil
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uint) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lesson model.Lesson

	result := db.WithContext(ctx).Preload("Module").First(&lesson, lessonID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson by ID in DB", "error", result.Error, "lesson_id", lessonID)
		return nil, fmt.Errorf("gormLessonRepository.FindByID: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) FindAll(ctx context.Context, db *gorm.DB, filter model.LessonFilter) ([]*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).Preload("Module")
	if filter.ModuleID != nil {
		query = query.Where("module_id = ?", *filter.ModuleID)
	}

	var lessons []*model.Lesson
	if err := query.Order("id ASC").Find(&lessons).Error; err != nil {
		logger.Error("Error listing lessons in DB", "error", err)
		return nil, fmt.Errorf("gormLessonRepository.FindAll: %w", err)
	}
	return lessons, nil
}

func (r *gormLessonRepository) Update(ctx context.Context, db *gorm.DB, lesson *model.Lesson) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(lesson).Error; err != nil {
		if isForeignKeyViolation(err) {
			logger.Warn("Foreign key violation on update lesson", "error", err, "lesson_id", lesson.ID)
			return fmt.Errorf("gormLessonRepository.Update: %w", model.ErrInvalidInput)
		}
		logger.Error("Error updating lesson in DB", "error", err, "lesson_id", lesson.ID)
		return fmt.Errorf("gormLessonRepository.Update: %w", err)
	}
	return nil
}

func (r *gormLessonRepository) Delete(ctx context.Context, db *gorm.DB, lessonID uint) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Delete(&model.Lesson{}, lessonID)
	if result.Error != nil {
		logger.Error("Error deleting lesson in DB", "error", result.Error, "lesson_id", lessonID)
		return fmt.Errorf("gormLessonRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLessonRepository) Exists(ctx context.Context, db *gorm.DB, lessonID uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Lesson{}).Where("id = ?", lessonID).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error checking lesson existence", "error", err, "lesson_id", lessonID)
		return false, fmt.Errorf("gormLessonRepository.Exists: %w", err)
	}
	return count > 0, nil
}

func (r *gormLessonRepository) FindIDsByModuleIDs(ctx context.Context, db *gorm.DB, moduleIDs []uint) ([]uint, error) {
	var ids []uint
	if len(moduleIDs) == 0 {
		return ids, nil
	}
	if err := db.WithContext(ctx).Model(&model.Lesson{}).Where("module_id IN ?", moduleIDs).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding lessons by modules", "error", err)
		return nil, fmt.Errorf("gormLessonRepository.FindIDsByModuleIDs: %w", err)
	}
	return ids, nil
}

func (r *gormLessonRepository) DeleteByModuleIDs(ctx context.Context, db *gorm.DB, moduleIDs []uint) (int64, error) {
	if len(moduleIDs) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).Where("module_id IN ?", moduleIDs).Delete(&model.Lesson{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting lessons by modules", "error", result.Error)
		return 0, fmt.Errorf("gormLessonRepository.DeleteByModuleIDs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
