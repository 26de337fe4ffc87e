package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	OwnerId  int64  `json:"owner_id" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required,max=500"`
	Content  string `json:"content"`
	NoteType string `json:"note_type" validate:"omitempty,oneof=note task project"`
}

type UpdateNoteRequest struct {
	Id       uuid.UUID
	Title    *string `json:"title" validate:"omitempty,max=500"`
	Content  *string `json:"content"`
	NoteType *string `json:"note_type" validate:"omitempty,oneof=note task project"`
}

type ListNotesQuery struct {
	OwnerId        int64   `validate:"required,gt=0"`
	NoteType       *string `validate:"omitempty,oneof=note task project"`
	Archived       *bool
	IncludeDeleted bool
	TagId          *uuid.UUID
	Limit          int `validate:"omitempty,min=1,max=200"`
	Offset         int `validate:"omitempty,min=0"`
}

type NoteResponse struct {
	Id         uuid.UUID         `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	NoteType   string            `json:"note_type"`
	OwnerId    int64             `json:"owner_id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	IsArchived bool              `json:"is_archived"`
	IsDeleted  bool              `json:"is_deleted"`
	Tags       []TagResponse     `json:"tags,omitempty"`
	TaskMeta   *TaskMetaResponse `json:"task_meta,omitempty"`
}
