// internal/model/completion.go
package model

import (
	"math"
	"time"
)

// DefaultProgressPercentage は進捗率が省略された場合の値です。
const DefaultProgressPercentage = 100.0

// Completion はユーザーとレッスンの組ごとの進捗記録です。(UserID, LessonID) は一意です。
type Completion struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;uniqueIndex:idx_completion_user_lesson" json:"userId"`
	LessonID           uint      `gorm:"not null;uniqueIndex:idx_completion_user_lesson;index" json:"lessonId"`
	ProgressPercentage float64   `gorm:"type:decimal(5,2);not null" json:"progressPercentage"`
	CompletedAt        time.Time `gorm:"autoCreateTime" json:"completedAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Lesson *Lesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"lesson,omitempty"`
}

// ClampProgress は進捗率を [0,100] に収め、小数点以下2桁に丸めます。
func ClampProgress(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(100, v))
	return math.Round(v*100) / 100
}

type CreateCompletionRequest struct {
	UserID             OptionalID `json:"userId"`
	LessonID           OptionalID `json:"lessonId"`
	ProgressPercentage *float64   `json:"progressPercentage,omitempty"`
}

type UpdateCompletionRequest struct {
	ProgressPercentage *float64 `json:"progressPercentage" validate:"required"`
}

type CompletionFilter struct {
	UserID   *uint
	LessonID *uint
}
