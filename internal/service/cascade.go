package service

import (
	"context"
	"fmt"

	"go_5_course_keep/internal/repository"

	"gorm.io/gorm"
)

// cascadeResult は削除された行数です。
type cascadeResult struct {
	Modules     int64
	Lessons     int64
	Completions int64
}

// contentCascade は Course -> Module(子孫を含む) -> Lesson -> Completion の順に
// 所有関係を辿って削除します。呼び出し側のトランザクション内で使います。
type contentCascade struct {
	moduleRepo     repository.ModuleRepository
	lessonRepo     repository.LessonRepository
	completionRepo repository.CompletionRepository
}

func newContentCascade(moduleRepo repository.ModuleRepository, lessonRepo repository.LessonRepository, completionRepo repository.CompletionRepository) *contentCascade {
	return &contentCascade{
		moduleRepo:     moduleRepo,
		lessonRepo:     lessonRepo,
		completionRepo: completionRepo,
	}
}

// collectSubtree は rootIDs とその全ての子孫モジュールのIDを返します。
func (c *contentCascade) collectSubtree(ctx context.Context, tx *gorm.DB, rootIDs []uint) ([]uint, error) {
	visited := make(map[uint]bool, len(rootIDs))
	all := make([]uint, 0, len(rootIDs))
	frontier := make([]uint, 0, len(rootIDs))
	for _, id := range rootIDs {
		if !visited[id] {
			visited[id] = true
			all = append(all, id)
			frontier = append(frontier, id)
		}
	}

	for len(frontier) > 0 {
		children, err := c.moduleRepo.FindChildIDs(ctx, tx, frontier)
		if err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, id := range children {
			if visited[id] {
				continue
			}
			visited[id] = true
			all = append(all, id)
			frontier = append(frontier, id)
		}
	}
	return all, nil
}

// deleteModules は rootIDs を根とする部分木をレッスンと進捗ごと削除します。
func (c *contentCascade) deleteModules(ctx context.Context, tx *gorm.DB, rootIDs []uint) (cascadeResult, error) {
	var res cascadeResult

	moduleIDs, err := c.collectSubtree(ctx, tx, rootIDs)
	if err != nil {
		return res, fmt.Errorf("collect module subtree: %w", err)
	}

	lessonIDs, err := c.lessonRepo.FindIDsByModuleIDs(ctx, tx, moduleIDs)
	if err != nil {
		return res, fmt.Errorf("find lessons: %w", err)
	}

	if res.Completions, err = c.completionRepo.DeleteByLessonIDs(ctx, tx, lessonIDs); err != nil {
		return res, fmt.Errorf("delete completions: %w", err)
	}
	if res.Lessons, err = c.lessonRepo.DeleteByModuleIDs(ctx, tx, moduleIDs); err != nil {
		return res, fmt.Errorf("delete lessons: %w", err)
	}
	if res.Modules, err = c.moduleRepo.DeleteByIDs(ctx, tx, moduleIDs); err != nil {
		return res, fmt.Errorf("delete modules: %w", err)
	}
	return res, nil
}

// deleteCourseContent はコース配下の全モジュールを削除します。コース自体は削除しません。
func (c *contentCascade) deleteCourseContent(ctx context.Context, tx *gorm.DB, courseID uint) (cascadeResult, error) {
	rootIDs, err := c.moduleRepo.FindIDsByCourse(ctx, tx, courseID)
	if err != nil {
		return cascadeResult{}, fmt.Errorf("find course modules: %w", err)
	}
	if len(rootIDs) == 0 {
		return cascadeResult{}, nil
	}
	return c.deleteModules(ctx, tx, rootIDs)
}

// deleteLessonContent はレッスンに紐づく進捗を削除します。
func (c *contentCascade) deleteLessonContent(ctx context.Context, tx *gorm.DB, lessonID uint) (cascadeResult, error) {
	n, err := c.completionRepo.DeleteByLessonIDs(ctx, tx, []uint{lessonID})
	if err != nil {
		return cascadeResult{}, fmt.Errorf("delete completions: %w", err)
	}
	return cascadeResult{Completions: n}, nil
}
