//go:generate mockery --name CompletionService --structname MockCompletionService --filename mock_completion_service.go --output ./mocks --outpkg mocks
// internal/service/completion_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/repository"

	"gorm.io/gorm"
)

// CompletionService はユーザーごとのレッスン進捗を記録し、集計します。
// 進捗率は常に [0,100] に丸められ、(userId, lessonId) ごとに1件までです。
type CompletionService interface {
	ListCompletions(ctx context.Context, filter model.CompletionFilter) ([]*model.Completion, error)
	GetCompletion(ctx context.Context, completionID uint) (*model.Completion, error)
	RecordCompletion(ctx context.Context, req *model.CreateCompletionRequest) (*model.Completion, error)
	UpdateCompletion(ctx context.Context, completionID uint, req *model.UpdateCompletionRequest) (*model.Completion, error)
	DeleteCompletion(ctx context.Context, completionID uint) error
	ComputeUserProgress(ctx context.Context, userID uint) (*model.UserProgress, error)
}

type completionService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	lessonRepo     repository.LessonRepository
	completionRepo repository.CompletionRepository
}

func NewCompletionService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	lessonRepo repository.LessonRepository,
	completionRepo repository.CompletionRepository,
) CompletionService {
	return &completionService{
		db:             db,
		userRepo:       userRepo,
		lessonRepo:     lessonRepo,
		completionRepo: completionRepo,
	}
}

func (s *completionService) ListCompletions(ctx context.Context, filter model.CompletionFilter) ([]*model.Completion, error) {
	completions, err := s.completionRepo.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, internalError(err)
	}
	return completions, nil
}

func (s *completionService) GetCompletion(ctx context.Context, completionID uint) (*model.Completion, error) {
	completion, err := s.completionRepo.FindByID(ctx, s.db, completionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, completionNotFound()
		}
		return nil, internalError(err)
	}
	return completion, nil
}

func (s *completionService) RecordCompletion(ctx context.Context, req *model.CreateCompletionRequest) (*model.Completion, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "CompletionService.RecordCompletion"))

	userID, okUser := req.UserID.ID()
	lessonID, okLesson := req.LessonID.ID()
	if !okUser || !okLesson {
		field := "userId"
		if okUser {
			field = "lessonId"
		}
		return nil, validationError("INVALID_ID", "userIdとlessonIdは正の整数で指定してください。", field)
	}

	progress := model.DefaultProgressPercentage
	if req.ProgressPercentage != nil {
		progress = *req.ProgressPercentage
	}
	completion := &model.Completion{
		UserID:             userID,
		LessonID:           lessonID,
		ProgressPercentage: model.ClampProgress(progress),
	}
	if completion.ProgressPercentage != progress {
		logger.Debug("Progress percentage clamped", slog.Float64("input", progress), slog.Float64("stored", completion.ProgressPercentage))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userExists, err := s.userRepo.Exists(ctx, tx, userID)
		if err != nil {
			return internalError(err)
		}
		if !userExists {
			return validationError("USER_NOT_FOUND", "指定されたユーザーが存在しません。", "userId")
		}

		lessonExists, err := s.lessonRepo.Exists(ctx, tx, lessonID)
		if err != nil {
			return internalError(err)
		}
		if !lessonExists {
			return validationError("LESSON_NOT_FOUND", "指定されたレッスンが存在しません。", "lessonId")
		}

		_, err = s.completionRepo.FindByUserAndLesson(ctx, tx, userID, lessonID)
		if err == nil {
			return duplicateCompletion()
		}
		if !errors.Is(err, model.ErrNotFound) {
			return internalError(err)
		}

		if err := s.completionRepo.Create(ctx, tx, completion); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 同時に記録された場合は一意制約で検出される
				return duplicateCompletion()
			}
			return writeError(err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Completion already recorded", slog.Uint64("user_id", uint64(userID)), slog.Uint64("lesson_id", uint64(lessonID)))
		}
		return nil, err
	}

	logger.Info("Completion recorded",
		slog.Uint64("completion_id", uint64(completion.ID)),
		slog.Uint64("user_id", uint64(userID)),
		slog.Uint64("lesson_id", uint64(lessonID)),
		slog.Float64("progress", completion.ProgressPercentage),
	)
	return completion, nil
}

func (s *completionService) UpdateCompletion(ctx context.Context, completionID uint, req *model.UpdateCompletionRequest) (*model.Completion, error) {
	if req.ProgressPercentage == nil {
		return nil, validationError("VALIDATION_ERROR", "進捗率は必須項目です。", "progressPercentage")
	}

	var updated *model.Completion
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completion, err := s.completionRepo.FindByID(ctx, tx, completionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return completionNotFound()
			}
			return internalError(err)
		}

		completion.ProgressPercentage = model.ClampProgress(*req.ProgressPercentage)
		if err := s.completionRepo.Update(ctx, tx, completion); err != nil {
			return writeError(err)
		}
		updated = completion
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *completionService) DeleteCompletion(ctx context.Context, completionID uint) error {
	if err := s.completionRepo.Delete(ctx, s.db, completionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return completionNotFound()
		}
		return internalError(err)
	}
	middleware.GetLogger(ctx).Info("Completion deleted", slog.Uint64("completion_id", uint64(completionID)))
	return nil
}

// ComputeUserProgress はユーザーの進捗を集計します。進捗が1件もない場合、平均は 0 です。
func (s *completionService) ComputeUserProgress(ctx context.Context, userID uint) (*model.UserProgress, error) {
	if userID == 0 {
		return nil, validationError("INVALID_ID", "userIdは正の整数で指定してください。", "userId")
	}

	completions, err := s.completionRepo.FindByUserWithHierarchy(ctx, s.db, userID)
	if err != nil {
		return nil, internalError(err)
	}

	progress := &model.UserProgress{
		TotalCompletions: len(completions),
		Completions:      make([]model.ProgressEntry, 0, len(completions)),
	}
	var sum float64
	for _, c := range completions {
		sum += c.ProgressPercentage
		progress.Completions = append(progress.Completions, model.NewProgressEntry(c))
	}
	if len(completions) > 0 {
		progress.AverageProgress = sum / float64(len(completions))
	}
	return progress, nil
}

func duplicateCompletion() error {
	return model.NewAppError("DUPLICATE_COMPLETION", "このレッスンの進捗は既に記録されています。", "lessonId", model.ErrConflict)
}

func completionNotFound() error {
	return notFoundError("COMPLETION_NOT_FOUND", "進捗が見つかりません。")
}
