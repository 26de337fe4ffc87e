package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskMeta struct {
	NoteId      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Note        Note       `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	Priority    string     `gorm:"type:varchar(20);not null;default:'medium';index:idx_task_meta_status_priority,priority:2;index:idx_task_meta_priority_due,priority:1"`
	Status      string     `gorm:"type:varchar(20);not null;default:'todo';index:idx_task_meta_status_priority,priority:1;index:idx_task_meta_due_status,priority:2"`
	DueDate     *time.Time `gorm:"index:idx_task_meta_due_status,priority:1;index:idx_task_meta_priority_due,priority:2"`
	CompletedAt *time.Time
}

func (TaskMeta) TableName() string {
	return "task_meta"
}
