package entity

import (
	"time"

	"github.com/google/uuid"
)

type LinkType string

const (
	LinkTypeReference LinkType = "reference"
	LinkTypeParent    LinkType = "parent"
	LinkTypeChild     LinkType = "child"
	LinkTypeRelated   LinkType = "related"
)

func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeReference, LinkTypeParent, LinkTypeChild, LinkTypeRelated:
		return true
	}
	return false
}

// NoteLink is a directed, typed edge in the note graph. Edges are immutable
// once created: they are only ever created or deleted, never updated.
// The (source, target, link_type) triple is unique.
type NoteLink struct {
	Id           uuid.UUID
	SourceNoteId uuid.UUID
	TargetNoteId uuid.UUID
	LinkType     LinkType
	CreatedAt    time.Time
}
