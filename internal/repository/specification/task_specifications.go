package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTaskStatus struct {
	Status string
}

func (s ByTaskStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("task_meta.status = ?", s.Status)
}

type ByTaskPriority struct {
	Priority string
}

func (s ByTaskPriority) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("task_meta.priority = ?", s.Priority)
}

type DueBefore struct {
	Deadline time.Time
}

func (s DueBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("task_meta.due_date IS NOT NULL AND task_meta.due_date < ?", s.Deadline)
}

type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("task_meta.note_id = ?", s.NoteID)
}

// TaskOwnedBy joins through notes so task metadata can be filtered by the
// owning user without a second round trip.
type TaskOwnedBy struct {
	TelegramID int64
}

func (s TaskOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN notes ON notes.id = task_meta.note_id").
		Where("notes.owner_id = ?", s.TelegramID)
}
