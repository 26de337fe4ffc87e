package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoteType string

const (
	NoteTypeNote    NoteType = "note"
	NoteTypeTask    NoteType = "task"
	NoteTypeProject NoteType = "project"
)

func (t NoteType) Valid() bool {
	switch t {
	case NoteTypeNote, NoteTypeTask, NoteTypeProject:
		return true
	}
	return false
}

type Note struct {
	Id         uuid.UUID
	Title      string
	Content    string // markdown
	NoteType   NoteType
	OwnerId    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsArchived bool
	IsDeleted  bool

	// Populated on demand by the accessor layer, not by every query.
	Tags     []*Tag
	TaskMeta *TaskMeta
}
