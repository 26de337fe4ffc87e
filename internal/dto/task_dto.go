package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertTaskMetaRequest struct {
	NoteId      uuid.UUID
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress blocked completed cancelled"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
}

type ListTasksQuery struct {
	OwnerId   int64   `validate:"required,gt=0"`
	Status    *string `validate:"omitempty,oneof=todo in_progress blocked completed cancelled"`
	Priority  *string `validate:"omitempty,oneof=low medium high urgent"`
	DueBefore *time.Time
}

type TaskMetaResponse struct {
	NoteId      uuid.UUID  `json:"note_id"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
}
