// internal/model/lesson.go
package model

import "time"

type Lesson struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null;default:''" json:"content"`
	ModuleID  uint      `gorm:"not null;index" json:"moduleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Module *Module `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"module,omitempty"`
}

type CreateLessonRequest struct {
	Title    string     `json:"title" validate:"required,max=255"`
	Content  string     `json:"content"`
	ModuleID OptionalID `json:"moduleId"`
}

type UpdateLessonRequest struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content  *string    `json:"content,omitempty"`
	ModuleID OptionalID `json:"moduleId,omitzero"`
}

type LessonFilter struct {
	ModuleID *uint
}
