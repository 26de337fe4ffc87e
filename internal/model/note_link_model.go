package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteLink struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceNoteId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_links_edge,priority:1;index:idx_note_links_source_type,priority:1"`
	TargetNoteId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_links_edge,priority:2;index:idx_note_links_target_type,priority:1"`
	LinkType     string    `gorm:"type:varchar(20);not null;default:'reference';uniqueIndex:idx_note_links_edge,priority:3;index:idx_note_links_source_type,priority:2;index:idx_note_links_target_type,priority:2"`
	SourceNote   Note      `gorm:"foreignKey:SourceNoteId;constraint:OnDelete:CASCADE"`
	TargetNote   Note      `gorm:"foreignKey:TargetNoteId;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (NoteLink) TableName() string {
	return "note_links"
}
