package specification

import (
	"tg-notegraph-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedBy struct {
	TelegramID int64
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.owner_id = ?", s.TelegramID)
}

type ByNoteType struct {
	NoteType string
}

func (s ByNoteType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.note_type = ?", s.NoteType)
}

// NotDeleted keeps only active notes. Soft delete is an explicit flag, so
// every "active" view opts in through this specification.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.ExcludeSoftDeleted)
}

type Archived struct {
	Archived bool
}

func (s Archived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.is_archived = ?", s.Archived)
}

// HasTag filters notes through the notes_tags association table.
type HasTag struct {
	TagID uuid.UUID
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN notes_tags ON notes_tags.note_id = notes.id").
		Where("notes_tags.tag_id = ?", s.TagID)
}
