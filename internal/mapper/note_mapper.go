package mapper

import (
	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/model"
)

type NoteMapper struct {
	tagMapper *TagMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{
		tagMapper: NewTagMapper(),
	}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var tags []*entity.Tag
	if len(n.Tags) > 0 {
		tags = make([]*entity.Tag, len(n.Tags))
		for i := range n.Tags {
			tags[i] = m.tagMapper.ToEntity(&n.Tags[i])
		}
	}

	return &entity.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		NoteType:   entity.NoteType(n.NoteType),
		OwnerId:    n.OwnerId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		IsArchived: n.IsArchived,
		IsDeleted:  n.IsDeleted,
		Tags:       tags,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	// Tags are deliberately not mapped back: the association table is
	// mutated through AttachTag/DetachTag only, never by note saves.
	return &model.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		NoteType:   string(n.NoteType),
		OwnerId:    n.OwnerId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		IsArchived: n.IsArchived,
		IsDeleted:  n.IsDeleted,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
