package mapper

import (
	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/model"
)

type TaskMetaMapper struct{}

func NewTaskMetaMapper() *TaskMetaMapper {
	return &TaskMetaMapper{}
}

func (m *TaskMetaMapper) ToEntity(t *model.TaskMeta) *entity.TaskMeta {
	if t == nil {
		return nil
	}
	return &entity.TaskMeta{
		NoteId:      t.NoteId,
		Priority:    entity.TaskPriority(t.Priority),
		Status:      entity.TaskStatus(t.Status),
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
	}
}

func (m *TaskMetaMapper) ToModel(t *entity.TaskMeta) *model.TaskMeta {
	if t == nil {
		return nil
	}
	return &model.TaskMeta{
		NoteId:      t.NoteId,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
	}
}

func (m *TaskMetaMapper) ToEntities(metas []*model.TaskMeta) []*entity.TaskMeta {
	entities := make([]*entity.TaskMeta, len(metas))
	for i, t := range metas {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
