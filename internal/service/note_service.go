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

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	// Show loads the note with its tags, and its task metadata when the
	// note is task-typed.
	Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	// SoftDelete flips is_deleted; links and tag associations stay in
	// place. Active views exclude soft-deleted notes through List filters.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	Archive(ctx context.Context, id uuid.UUID) error
	Unarchive(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error)
	AttachTag(ctx context.Context, noteId, tagId uuid.UUID) error
	DetachTag(ctx context.Context, noteId, tagId uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	noteType := entity.NoteType(req.NoteType)
	if req.NoteType == "" {
		noteType = entity.NoteTypeNote
	}
	if !noteType.Valid() {
		return nil, apperror.InvalidArgument("unknown note_type %q", req.NoteType)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner, err := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: req.OwnerId})
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NotFound("owner %d", req.OwnerId)
	}

	now := time.Now()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		NoteType:  noteType,
		OwnerId:   req.OwnerId,
		CreatedAt: now,
		UpdatedAt: now, // equal to created_at until the first mutation
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}
	return toNoteResponse(&note), nil
}

func (s *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note %s", id)
	}

	tags, err := uow.NoteRepository().FindTags(ctx, id)
	if err != nil {
		return nil, err
	}
	note.Tags = tags

	if note.NoteType == entity.NoteTypeTask {
		meta, err := uow.TaskMetaRepository().FindOne(ctx, specification.ByNoteID{NoteID: id})
		if err != nil {
			return nil, err
		}
		note.TaskMeta = meta
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note %s", req.Id)
	}

	wasTask := note.NoteType == entity.NoteTypeTask
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.NoteType != nil {
		newType := entity.NoteType(*req.NoteType)
		if !newType.Valid() {
			return nil, apperror.InvalidArgument("unknown note_type %q", *req.NoteType)
		}
		note.NoteType = newType
	}

	// Retyping a task drops its metadata in the same transaction, so a
	// TaskMeta row never outlives the task-ness of its note.
	if wasTask && note.NoteType != entity.NoteTypeTask {
		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		if err := uow.TaskMetaRepository().Delete(ctx, note.Id); err != nil {
			uow.Rollback()
			return nil, err
		}
		if err := uow.NoteRepository().Update(ctx, note); err != nil {
			uow.Rollback()
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return toNoteResponse(note), nil
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.setFlag(ctx, id, func(n *entity.Note) bool {
		if n.IsDeleted {
			return false
		}
		n.IsDeleted = true
		return true
	})
}

func (s *noteService) Restore(ctx context.Context, id uuid.UUID) error {
	return s.setFlag(ctx, id, func(n *entity.Note) bool {
		if !n.IsDeleted {
			return false
		}
		n.IsDeleted = false
		return true
	})
}

func (s *noteService) Archive(ctx context.Context, id uuid.UUID) error {
	return s.setFlag(ctx, id, func(n *entity.Note) bool {
		if n.IsArchived {
			return false
		}
		n.IsArchived = true
		return true
	})
}

func (s *noteService) Unarchive(ctx context.Context, id uuid.UUID) error {
	return s.setFlag(ctx, id, func(n *entity.Note) bool {
		if !n.IsArchived {
			return false
		}
		n.IsArchived = false
		return true
	})
}

func (s *noteService) setFlag(ctx context.Context, id uuid.UUID, mutate func(*entity.Note) bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("note %s", id)
	}
	if !mutate(note) {
		return nil // already in the requested state
	}
	return uow.NoteRepository().Update(ctx, note)
}

func (s *noteService) List(ctx context.Context, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	specs := []specification.Specification{
		specification.OwnedBy{TelegramID: q.OwnerId},
	}
	if !q.IncludeDeleted {
		specs = append(specs, specification.NotDeleted{})
	}
	if q.NoteType != nil {
		specs = append(specs, specification.ByNoteType{NoteType: *q.NoteType})
	}
	if q.Archived != nil {
		specs = append(specs, specification.Archived{Archived: *q.Archived})
	}
	if q.TagId != nil {
		specs = append(specs, specification.HasTag{TagID: *q.TagId})
	}
	specs = append(specs, specification.OrderBy{Field: "notes.updated_at", Desc: true})
	if q.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: q.Limit, Offset: q.Offset})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out, nil
}

func (s *noteService) AttachTag(ctx context.Context, noteId, tagId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkNoteAndTag(ctx, uow, noteId, tagId); err != nil {
		return err
	}
	return uow.NoteRepository().AttachTag(ctx, noteId, tagId)
}

func (s *noteService) DetachTag(ctx context.Context, noteId, tagId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkNoteAndTag(ctx, uow, noteId, tagId); err != nil {
		return err
	}
	return uow.NoteRepository().DetachTag(ctx, noteId, tagId)
}

func (s *noteService) checkNoteAndTag(ctx context.Context, uow unitofwork.UnitOfWork, noteId, tagId uuid.UUID) error {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("note %s", noteId)
	}
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: tagId})
	if err != nil {
		return err
	}
	if tag == nil {
		return apperror.NotFound("tag %s", tagId)
	}
	return nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	res := &dto.NoteResponse{
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
	for _, t := range n.Tags {
		res.Tags = append(res.Tags, *toTagResponse(t))
	}
	if n.TaskMeta != nil {
		res.TaskMeta = toTaskMetaResponse(n.TaskMeta)
	}
	return res
}
