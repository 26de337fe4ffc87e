package dto

import (
	"time"

	"github.com/google/uuid"
)

type LinkNotesRequest struct {
	SourceNoteId uuid.UUID `json:"source_note_id" validate:"required"`
	TargetNoteId uuid.UUID `json:"target_note_id" validate:"required"`
	LinkType     string    `json:"link_type" validate:"omitempty,oneof=reference parent child related"`
}

type UnlinkRequest struct {
	SourceNoteId uuid.UUID `json:"source_note_id" validate:"required"`
	TargetNoteId uuid.UUID `json:"target_note_id" validate:"required"`
	LinkType     string    `json:"link_type" validate:"omitempty,oneof=reference parent child related"`
}

type NoteLinkResponse struct {
	Id           uuid.UUID `json:"id"`
	SourceNoteId uuid.UUID `json:"source_note_id"`
	TargetNoteId uuid.UUID `json:"target_note_id"`
	LinkType     string    `json:"link_type"`
	CreatedAt    time.Time `json:"created_at"`
}
