//go:generate mockery --name ModuleRepository --output ./mocks --outpkg mocks --case=underscore
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

type ModuleRepository interface {
	Create(ctx context.Context, db *gorm.DB, module *model.Module) error
	FindByID(ctx context.Context, db *gorm.DB, moduleID uint) (*model.Module, error)
	FindAll(ctx context.Context, db *gorm.DB, filter model.ModuleFilter) ([]*model.Module, error)
	Update(ctx context.Context, db *gorm.DB, module *model.Module) error
	Exists(ctx context.Context, db *gorm.DB, moduleID uint) (bool, error)
	// FindChildIDs は parentIDs のいずれかを親に持つモジュールのIDを返します。
	FindChildIDs(ctx context.Context, db *gorm.DB, parentIDs []uint) ([]uint, error)
	FindIDsByCourse(ctx context.Context, db *gorm.DB, courseID uint) ([]uint, error)
	DeleteByIDs(ctx context.Context, db *gorm.DB, moduleIDs []uint) (int64, error)
}

type gormModuleRepository struct{}

func NewGormModuleRepository() ModuleRepository {
	return &gormModuleRepository{}
}

func (r *gormModuleRepository) Create(ctx context.Context, db *gorm.DB, module *model.Module) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(module).Error; err != nil {
		if isForeignKeyViolation(err) {
			logger.Warn("Foreign key violation on create module", "error", err, "course_id", module.CourseID)
			return fmt.Errorf("gormModuleRepository.Create: %w", model.ErrInvalidInput)
		}
		logger.Error("Error creating module in DB", "error", err, "title", module.Title)
		return fmt.Errorf("gormModuleRepository.Create: %w", err)
	}
	return nil
}

func (r *gormModuleRepository) FindByID(ctx context.Context, db *gorm.DB, moduleID uint) (*model.Module, error) {
	logger := middleware.GetLogger(ctx)
	var module model.Module

	result := db.WithContext(ctx).Preload("Course").First(&module, moduleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding module by ID in DB", "error", result.Error, "module_id", moduleID)
		return nil, fmt.Errorf("gormModuleRepository.FindByID: %w", result.Error)
	}
	return &module, nil
}

func (r *gormModuleRepository) FindAll(ctx context.Context, db *gorm.DB, filter model.ModuleFilter) ([]*model.Module, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).Preload("Course")

	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.ParentModuleID != nil {
		query = query.Where("module_id = ?", *filter.ParentModuleID)
	}
	if filter.RootOnly {
		query = query.Where("module_id IS NULL")
	}

	var modules []*model.Module
	if err := query.Order("id ASC").Find(&modules).Error; err != nil {
		logger.Error("Error listing modules in DB", "error", err)
		return nil, fmt.Errorf("gormModuleRepository.FindAll: %w", err)
	}
	return modules, nil
}

func (r *gormModuleRepository) Update(ctx context.Context, db *gorm.DB, module *model.Module) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(module).Error; err != nil {
		if isForeignKeyViolation(err) {
			logger.Warn("Foreign key violation on update module", "error", err, "module_id", module.ID)
			return fmt.Errorf("gormModuleRepository.Update: %w", model.ErrInvalidInput)
		}
		logger.Error("Error updating module in DB", "error", err, "module_id", module.ID)
		return fmt.Errorf("gormModuleRepository.Update: %w", err)
	}
	return nil
}

func (r *gormModuleRepository) Exists(ctx context.Context, db *gorm.DB, moduleID uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Module{}).Where("id = ?", moduleID).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error checking module existence", "error", err, "module_id", moduleID)
		return false, fmt.Errorf("gormModuleRepository.Exists: %w", err)
	}
	return count > 0, nil
}

func (r *gormModuleRepository) FindChildIDs(ctx context.Context, db *gorm.DB, parentIDs []uint) ([]uint, error) {
	var ids []uint
	if len(parentIDs) == 0 {
		return ids, nil
	}
	if err := db.WithContext(ctx).Model(&model.Module{}).Where("module_id IN ?", parentIDs).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding child modules", "error", err)
		return nil, fmt.Errorf("gormModuleRepository.FindChildIDs: %w", err)
	}
	return ids, nil
}

func (r *gormModuleRepository) FindIDsByCourse(ctx context.Context, db *gorm.DB, courseID uint) ([]uint, error) {
	var ids []uint
	if err := db.WithContext(ctx).Model(&model.Module{}).Where("course_id = ?", courseID).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding modules by course", "error", err, "course_id", courseID)
		return nil, fmt.Errorf("gormModuleRepository.FindIDsByCourse: %w", err)
	}
	return ids, nil
}

func (r *gormModuleRepository) DeleteByIDs(ctx context.Context, db *gorm.DB, moduleIDs []uint) (int64, error) {
	if len(moduleIDs) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).Where("id IN ?", moduleIDs).Delete(&model.Module{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting modules in DB", "error", result.Error, "count", len(moduleIDs))
		return 0, fmt.Errorf("gormModuleRepository.DeleteByIDs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
