// internal/model/progress.go
package model

import "time"

// 関連が欠けている場合の表示名
const (
	UnknownModuleTitle = "Unknown Module"
	UnknownCourseTitle = "Unknown Course"
)

// UserProgress はユーザーの学習進捗の集計ビューです。
type UserProgress struct {
	TotalCompletions int             `json:"totalCompletions"`
	AverageProgress  float64         `json:"averageProgress"`
	Completions      []ProgressEntry `json:"completions"`
}

type ProgressEntry struct {
	ID                 uint      `json:"id"`
	LessonTitle        string    `json:"lessonTitle"`
	ModuleTitle        string    `json:"moduleTitle"`
	CourseTitle        string    `json:"courseTitle"`
	ProgressPercentage float64   `json:"progressPercentage"`
	CompletedAt        time.Time `json:"completedAt"`
}

// NewProgressEntry は Completion -> Lesson -> Module -> Course を辿って表示用の行を作ります。
func NewProgressEntry(c *Completion) ProgressEntry {
	entry := ProgressEntry{
		ID:                 c.ID,
		ModuleTitle:        UnknownModuleTitle,
		CourseTitle:        UnknownCourseTitle,
		ProgressPercentage: c.ProgressPercentage,
		CompletedAt:        c.CompletedAt,
	}
	if c.Lesson == nil {
		return entry
	}
	entry.LessonTitle = c.Lesson.Title
	if c.Lesson.Module == nil {
		return entry
	}
	entry.ModuleTitle = c.Lesson.Module.Title
	if c.Lesson.Module.Course != nil {
		entry.CourseTitle = c.Lesson.Module.Course.Title
	}
	return entry
}
