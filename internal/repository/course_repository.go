//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
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

type CourseRepository interface {
	Create(ctx context.Context, db *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, courseID uint) (*model.Course, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Course, error)
	Update(ctx context.Context, db *gorm.DB, course *model.Course) error
	Delete(ctx context.Context, db *gorm.DB, courseID uint) error
	Exists(ctx context.Context, db *gorm.DB, courseID uint) (bool, error)
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, db *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(course).Error; err != nil {
		logger.Error("Error creating course in DB", "error", err, "title", course.Title)
		return fmt.Errorf("gormCourseRepository.Create: %w", err)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, courseID uint) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course

	result := db.WithContext(ctx).First(&course, courseID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by ID in DB", "error", result.Error, "course_id", courseID)
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var courses []*model.Course

	if err := db.WithContext(ctx).Order("id ASC").Find(&courses).Error; err != nil {
		logger.Error("Error listing courses in DB", "error", err)
		return nil, fmt.Errorf("gormCourseRepository.FindAll: %w", err)
	}
	return courses, nil
}

func (r *gormCourseRepository) Update(ctx context.Context, db *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(course).Error; err != nil {
		logger.Error("Error updating course in DB", "error", err, "course_id", course.ID)
		return fmt.Errorf("gormCourseRepository.Update: %w", err)
	}
	return nil
}

func (r *gormCourseRepository) Delete(ctx context.Context, db *gorm.DB, courseID uint) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Delete(&model.Course{}, courseID)
	if result.Error != nil {
		logger.Error("Error deleting course in DB", "error", result.Error, "course_id", courseID)
		return fmt.Errorf("gormCourseRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) Exists(ctx context.Context, db *gorm.DB, courseID uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Course{}).Where("id = ?", courseID).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error checking course existence", "error", err, "course_id", courseID)
		return false, fmt.Errorf("gormCourseRepository.Exists: %w", err)
	}
	return count > 0, nil
}
