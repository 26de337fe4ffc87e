package service

import (
	"context"
	"time"

	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/pkg/logger"
	"tg-notegraph-be/internal/repository/specification"
	"tg-notegraph-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	// Upsert creates or updates the metadata in place; the one-to-one
	// invariant is held by the note_id primary key. Fails with
	// InvalidState when the note is not task-typed.
	Upsert(ctx context.Context, req *dto.UpsertTaskMetaRequest) (*dto.TaskMetaResponse, error)
	Show(ctx context.Context, noteId uuid.UUID) (*dto.TaskMetaResponse, error)
	List(ctx context.Context, q *dto.ListTasksQuery) ([]*dto.TaskMetaResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *taskService) Upsert(ctx context.Context, req *dto.UpsertTaskMetaRequest) (*dto.TaskMetaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note %s", req.NoteId)
	}
	if note.NoteType != entity.NoteTypeTask {
		return nil, apperror.InvalidState("note %s is a %s, not a task", note.Id, note.NoteType)
	}

	existing, err := uow.TaskMetaRepository().FindOne(ctx, specification.ByNoteID{NoteID: req.NoteId})
	if err != nil {
		return nil, err
	}

	meta := entity.TaskMeta{
		NoteId:   req.NoteId,
		Priority: entity.TaskPriorityMedium,
		Status:   entity.TaskStatusTodo,
	}
	if existing != nil {
		meta = *existing
	}

	if req.Priority != "" {
		p := entity.TaskPriority(req.Priority)
		if !p.Valid() {
			return nil, apperror.InvalidArgument("unknown priority %q", req.Priority)
		}
		meta.Priority = p
	}
	prevStatus := meta.Status
	if req.Status != "" {
		st := entity.TaskStatus(req.Status)
		if !st.Valid() {
			return nil, apperror.InvalidArgument("unknown status %q", req.Status)
		}
		meta.Status = st
	}
	if req.DueDate != nil {
		meta.DueDate = req.DueDate
	}

	// completed_at follows the status transition unless the caller pins it.
	switch {
	case req.CompletedAt != nil:
		meta.CompletedAt = req.CompletedAt
	case meta.Status == entity.TaskStatusCompleted && prevStatus != entity.TaskStatusCompleted:
		now := time.Now()
		meta.CompletedAt = &now
	case meta.Status != entity.TaskStatusCompleted:
		meta.CompletedAt = nil
	}

	if err := uow.TaskMetaRepository().Save(ctx, &meta); err != nil {
		return nil, err
	}
	return toTaskMetaResponse(&meta), nil
}

func (s *taskService) Show(ctx context.Context, noteId uuid.UUID) (*dto.TaskMetaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	meta, err := uow.TaskMetaRepository().FindOne(ctx, specification.ByNoteID{NoteID: noteId})
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, apperror.NotFound("task metadata for note %s", noteId)
	}
	return toTaskMetaResponse(meta), nil
}

func (s *taskService) List(ctx context.Context, q *dto.ListTasksQuery) ([]*dto.TaskMetaResponse, error) {
	specs := []specification.Specification{
		specification.TaskOwnedBy{TelegramID: q.OwnerId},
	}
	if q.Status != nil {
		specs = append(specs, specification.ByTaskStatus{Status: *q.Status})
	}
	if q.Priority != nil {
		specs = append(specs, specification.ByTaskPriority{Priority: *q.Priority})
	}
	if q.DueBefore != nil {
		specs = append(specs, specification.DueBefore{Deadline: *q.DueBefore})
	}
	specs = append(specs, specification.OrderBy{Field: "task_meta.due_date", Desc: false})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	metas, err := uow.TaskMetaRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TaskMetaResponse, len(metas))
	for i, m := range metas {
		out[i] = toTaskMetaResponse(m)
	}
	return out, nil
}

func toTaskMetaResponse(m *entity.TaskMeta) *dto.TaskMetaResponse {
	return &dto.TaskMetaResponse{
		NoteId:      m.NoteId,
		Priority:    string(m.Priority),
		Status:      string(m.Status),
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
	}
}
