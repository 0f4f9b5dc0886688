//go:generate mockery --name ModuleService --structname MockModuleService --filename mock_module_service.go --output ./mocks --outpkg mocks
// internal/service/module_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/repository"

	"gorm.io/gorm"
)

// ModuleService はコースごとのモジュールツリーを管理します。
//
// ツリーの不変条件:
//   - IsRootModule は ParentID == nil と常に一致する
//   - モジュールは自分自身や自分の子孫を親にできない
//   - app.require_same_course_parent が true の場合、親は同じコースに属する
//
// モジュールを削除すると、子孫モジュールとそれらのレッスン、進捗も削除されます。
type ModuleService interface {
	ListModules(ctx context.Context, filter model.ModuleFilter) ([]*model.Module, error)
	GetModule(ctx context.Context, moduleID uint) (*model.Module, error)
	CreateModule(ctx context.Context, req *model.CreateModuleRequest) (*model.Module, error)
	UpdateModule(ctx context.Context, moduleID uint, req *model.UpdateModuleRequest) (*model.Module, error)
	DeleteModule(ctx context.Context, moduleID uint) error
}

type moduleService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
	moduleRepo repository.ModuleRepository
	cascade    *contentCascade
	cfg        *config.Config
}

func NewModuleService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	moduleRepo repository.ModuleRepository,
	lessonRepo repository.LessonRepository,
	completionRepo repository.CompletionRepository,
	cfg *config.Config,
) ModuleService {
	return &moduleService{
		db:         db,
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
		cascade:    newContentCascade(moduleRepo, lessonRepo, completionRepo),
		cfg:        cfg,
	}
}

func (s *moduleService) ListModules(ctx context.Context, filter model.ModuleFilter) ([]*model.Module, error) {
	modules, err := s.moduleRepo.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, internalError(err)
	}
	return modules, nil
}

func (s *moduleService) GetModule(ctx context.Context, moduleID uint) (*model.Module, error) {
	module, err := s.moduleRepo.FindByID(ctx, s.db, moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, moduleNotFound()
		}
		return nil, internalError(err)
	}
	return module, nil
}

func (s *moduleService) CreateModule(ctx context.Context, req *model.CreateModuleRequest) (*model.Module, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "ModuleService.CreateModule"))

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationError("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
	}
	courseID, ok := req.CourseID.ID()
	if !ok {
		return nil, validationError("INVALID_COURSE_ID", "courseIdは正の整数で指定してください。", "courseId")
	}
	var parentID *uint
	if req.ModuleID.Present() {
		id, ok := req.ModuleID.ID()
		if !ok {
			return nil, validationError("INVALID_MODULE_ID", "moduleIdは正の整数で指定してください。", "moduleId")
		}
		parentID = &id
	}
	if req.IsRootModule != nil && *req.IsRootModule != (parentID == nil) {
		logger.Warn("Ignoring isRootModule hint that contradicts the parent reference",
			slog.Bool("hint", *req.IsRootModule), slog.Bool("has_parent", parentID != nil))
	}

	var created *model.Module
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if parentID != nil {
			parent, err := s.findParent(ctx, tx, *parentID)
			if err != nil {
				return err
			}
			if err := s.checkSameCourse(parent, courseID); err != nil {
				return err
			}
		}

		module := model.NewModule(title, courseID, parentID)
		if err := s.moduleRepo.Create(ctx, tx, module); err != nil {
			return writeError(err)
		}
		created = module
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Module created",
		slog.Uint64("module_id", uint64(created.ID)),
		slog.Uint64("course_id", uint64(created.CourseID)),
		slog.Bool("is_root_module", created.IsRootModule),
	)
	return created, nil
}

func (s *moduleService) UpdateModule(ctx context.Context, moduleID uint, req *model.UpdateModuleRequest) (*model.Module, error) {
	logger := middleware.GetLogger(ctx).With(
		slog.String("service", "ModuleService.UpdateModule"),
		slog.Uint64("module_id", uint64(moduleID)),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.moduleRepo.FindByID(ctx, tx, moduleID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return moduleNotFound()
			}
			return internalError(err)
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return validationError("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
			}
			module.Title = title
		}

		if req.CourseID.Set {
			courseID, ok := req.CourseID.ID()
			if !ok {
				return validationError("INVALID_COURSE_ID", "courseIdは正の整数で指定してください。", "courseId")
			}
			if err := s.requireCourse(ctx, tx, courseID); err != nil {
				return err
			}
			module.CourseID = courseID
			module.Course = nil
		}

		if req.ModuleID.Set {
			if err := s.reparent(ctx, tx, module, req.ModuleID); err != nil {
				return err
			}
		}

		if s.cfg.App.RequireSameCourseParent && module.ParentID != nil && (req.CourseID.Set || req.ModuleID.Set) {
			parent, err := s.findParent(ctx, tx, *module.ParentID)
			if err != nil {
				return err
			}
			if err := s.checkSameCourse(parent, module.CourseID); err != nil {
				return err
			}
		}

		if req.IsRootModule != nil && *req.IsRootModule != module.IsRootModule {
			logger.Warn("Ignoring isRootModule value that contradicts the parent reference",
				slog.Bool("requested", *req.IsRootModule), slog.Bool("is_root_module", module.IsRootModule))
		}

		if err := s.moduleRepo.Update(ctx, tx, module); err != nil {
			return writeError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Module updated")
	return s.GetModule(ctx, moduleID)
}

// reparent は親参照を付け替えます。null なら親を外し、値なら存在、自己参照、循環を検査します。
func (s *moduleService) reparent(ctx context.Context, tx *gorm.DB, module *model.Module, raw model.OptionalID) error {
	if raw.Null {
		module.SetParent(nil)
		return nil
	}
	parentID, ok := raw.ID()
	if !ok {
		return validationError("INVALID_MODULE_ID", "moduleIdは正の整数で指定してください。", "moduleId")
	}
	if parentID == module.ID {
		return model.NewAppError("SELF_REFERENCE", "モジュール自身を親に指定することはできません。", "moduleId",
			fmt.Errorf("%w: %w", model.ErrInvalidInput, model.ErrSelfReference))
	}
	parent, err := s.findParent(ctx, tx, parentID)
	if err != nil {
		return err
	}
	if err := s.ensureNoCycle(ctx, tx, module.ID, parent); err != nil {
		return err
	}
	module.SetParent(&parentID)
	return nil
}

// ensureNoCycle は parent から祖先を辿り、moduleID が現れないことを確認します。
func (s *moduleService) ensureNoCycle(ctx context.Context, tx *gorm.DB, moduleID uint, parent *model.Module) error {
	visited := map[uint]bool{}
	current := parent
	for current != nil {
		if current.ID == moduleID {
			return model.NewAppError("MODULE_CYCLE", "子孫のモジュールを親に指定することはできません。", "moduleId",
				fmt.Errorf("%w: %w", model.ErrInvalidInput, model.ErrModuleCycle))
		}
		if current.ParentID == nil || visited[current.ID] {
			return nil
		}
		visited[current.ID] = true

		next, err := s.moduleRepo.FindByID(ctx, tx, *current.ParentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil
			}
			return internalError(err)
		}
		current = next
	}
	return nil
}

func (s *moduleService) DeleteModule(ctx context.Context, moduleID uint) error {
	logger := middleware.GetLogger(ctx).With(slog.Uint64("module_id", uint64(moduleID)))

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.moduleRepo.Exists(ctx, tx, moduleID)
		if err != nil {
			return internalError(err)
		}
		if !exists {
			return moduleNotFound()
		}

		res, err := s.cascade.deleteModules(ctx, tx, []uint{moduleID})
		if err != nil {
			logger.Error("Failed to cascade module deletion", "error", err)
			return internalError(err)
		}

		logger.Info("Module deleted",
			slog.Int64("modules", res.Modules),
			slog.Int64("lessons", res.Lessons),
			slog.Int64("completions", res.Completions),
		)
		return nil
	})
}

func (s *moduleService) requireCourse(ctx context.Context, tx *gorm.DB, courseID uint) error {
	exists, err := s.courseRepo.Exists(ctx, tx, courseID)
	if err != nil {
		return internalError(err)
	}
	if !exists {
		return validationError("COURSE_NOT_FOUND", "指定されたコースが存在しません。", "courseId")
	}
	return nil
}

func (s *moduleService) findParent(ctx context.Context, tx *gorm.DB, parentID uint) (*model.Module, error) {
	parent, err := s.moduleRepo.FindByID(ctx, tx, parentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, validationError("PARENT_MODULE_NOT_FOUND", "指定された親モジュールが存在しません。", "moduleId")
		}
		return nil, internalError(err)
	}
	return parent, nil
}

func (s *moduleService) checkSameCourse(parent *model.Module, courseID uint) error {
	if s.cfg.App.RequireSameCourseParent && parent.CourseID != courseID {
		return validationError("PARENT_COURSE_MISMATCH", "親モジュールは同じコースに属している必要があります。", "moduleId")
	}
	return nil
}

func moduleNotFound() error {
	return notFoundError("MODULE_NOT_FOUND", "モジュールが見つかりません。")
}
