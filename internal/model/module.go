// internal/model/module.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Module はコース内のツリー構造のノードです。
// IsRootModule は常に ParentID == nil と一致します。値の変更は SetParent 経由で行います。
// 親は module_id 列に保存されます。
type Module struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	IsRootModule bool      `gorm:"not null" json:"isRootModule"`
	ParentID     *uint     `gorm:"column:module_id;index" json:"moduleId"`
	CourseID     uint      `gorm:"not null;index" json:"courseId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// 関連 (Preload用)
	Course   *Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Children []Module `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

// NewModule は親の有無から IsRootModule を決めたモジュールを返します。
func NewModule(title string, courseID uint, parentID *uint) *Module {
	m := &Module{Title: title, CourseID: courseID}
	m.SetParent(parentID)
	return m
}

// SetParent は親参照とルートフラグを同時に更新します。
func (m *Module) SetParent(parentID *uint) {
	if parentID == nil {
		m.ParentID = nil
		m.IsRootModule = true
		return
	}
	id := *parentID
	m.ParentID = &id
	m.IsRootModule = false
}

// Validate はツリーノード単体の不変条件を検査します。
func (m *Module) Validate() error {
	if m.IsRootModule != (m.ParentID == nil) {
		return ErrRootFlagMismatch
	}
	if m.ID != 0 && m.ParentID != nil && *m.ParentID == m.ID {
		return ErrSelfReference
	}
	return nil
}

// BeforeSave は不整合な行が保存されるのを防ぎます。
func (m *Module) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}

type CreateModuleRequest struct {
	Title        string     `json:"title" validate:"required,max=255"`
	CourseID     OptionalID `json:"courseId"`
	ModuleID     OptionalID `json:"moduleId,omitzero"`
	IsRootModule *bool      `json:"isRootModule,omitempty"`
}

// UpdateModuleRequest は部分更新用です。
// ModuleID に null を指定すると親を外してルートモジュールになります。
type UpdateModuleRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	CourseID     OptionalID `json:"courseId,omitzero"`
	ModuleID     OptionalID `json:"moduleId,omitzero"`
	IsRootModule *bool      `json:"isRootModule,omitempty"`
}

// ModuleFilter の各条件は AND で結合されます。
type ModuleFilter struct {
	CourseID       *uint
	ParentModuleID *uint
	RootOnly       bool
}
