package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySourceNote struct {
	NoteID uuid.UUID
}

func (s BySourceNote) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_note_id = ?", s.NoteID)
}

type ByTargetNote struct {
	NoteID uuid.UUID
}

func (s ByTargetNote) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("target_note_id = ?", s.NoteID)
}

type ByLinkType struct {
	LinkType string
}

func (s ByLinkType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("link_type = ?", s.LinkType)
}

// ByEdge pins down a single edge by its unique triple.
type ByEdge struct {
	SourceID uuid.UUID
	TargetID uuid.UUID
	LinkType string
}

func (s ByEdge) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_note_id = ? AND target_note_id = ? AND link_type = ?",
		s.SourceID, s.TargetID, s.LinkType)
}
