package mapper

import (
	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/model"
)

type NoteLinkMapper struct{}

func NewNoteLinkMapper() *NoteLinkMapper {
	return &NoteLinkMapper{}
}

func (m *NoteLinkMapper) ToEntity(l *model.NoteLink) *entity.NoteLink {
	if l == nil {
		return nil
	}
	return &entity.NoteLink{
		Id:           l.Id,
		SourceNoteId: l.SourceNoteId,
		TargetNoteId: l.TargetNoteId,
		LinkType:     entity.LinkType(l.LinkType),
		CreatedAt:    l.CreatedAt,
	}
}

func (m *NoteLinkMapper) ToModel(l *entity.NoteLink) *model.NoteLink {
	if l == nil {
		return nil
	}
	return &model.NoteLink{
		Id:           l.Id,
		SourceNoteId: l.SourceNoteId,
		TargetNoteId: l.TargetNoteId,
		LinkType:     string(l.LinkType),
		CreatedAt:    l.CreatedAt,
	}
}

func (m *NoteLinkMapper) ToEntities(links []*model.NoteLink) []*entity.NoteLink {
	entities := make([]*entity.NoteLink, len(links))
	for i, l := range links {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
