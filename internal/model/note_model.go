package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"type:varchar(500);not null;index"`
	Content    string    `gorm:"type:text"`
	NoteType   string    `gorm:"type:varchar(20);not null;default:'note';index:idx_notes_owner_type,priority:2;index:idx_notes_type_created,priority:1"`
	OwnerId    int64     `gorm:"not null;index:idx_notes_owner_type,priority:1;index:idx_notes_owner_created,priority:1;index:idx_notes_owner_updated,priority:1"`
	Owner      User      `gorm:"foreignKey:OwnerId;references:TelegramId;constraint:OnDelete:CASCADE"`
	Tags       []Tag     `gorm:"many2many:notes_tags;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_notes_owner_created,priority:2;index:idx_notes_type_created,priority:2"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index:idx_notes_owner_updated,priority:2"`
	IsArchived bool      `gorm:"not null;default:false;index:idx_notes_archived_deleted,priority:1"`
	IsDeleted  bool      `gorm:"not null;default:false;index:idx_notes_archived_deleted,priority:2"`
}

func (Note) TableName() string {
	return "notes"
}
