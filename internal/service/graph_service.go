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

// IGraphService maintains the directed, typed edge set between notes.
// An edge from A to B never implies one from B to A; "backlinks" are the
// incoming view computed by querying edges where the note is the target.
type IGraphService interface {
	Link(ctx context.Context, req *dto.LinkNotesRequest) (*dto.NoteLinkResponse, error)
	// Unlink removes the edge and fails with NotFound when the triple does
	// not exist.
	Unlink(ctx context.Context, req *dto.UnlinkRequest) error
	Outgoing(ctx context.Context, noteId uuid.UUID, linkType *string) ([]*dto.NoteLinkResponse, error)
	Incoming(ctx context.Context, noteId uuid.UUID, linkType *string) ([]*dto.NoteLinkResponse, error)
}

type graphService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewGraphService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IGraphService {
	return &graphService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *graphService) Link(ctx context.Context, req *dto.LinkNotesRequest) (*dto.NoteLinkResponse, error) {
	linkType := entity.LinkType(req.LinkType)
	if req.LinkType == "" {
		linkType = entity.LinkTypeReference
	}
	if !linkType.Valid() {
		return nil, apperror.InvalidArgument("unknown link_type %q", req.LinkType)
	}
	if req.SourceNoteId == req.TargetNoteId {
		return nil, apperror.InvalidArgument("a note cannot link to itself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	for _, id := range []uuid.UUID{req.SourceNoteId, req.TargetNoteId} {
		note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if note == nil {
			return nil, apperror.NotFound("note %s", id)
		}
	}

	link := entity.NoteLink{
		Id:           uuid.New(),
		SourceNoteId: req.SourceNoteId,
		TargetNoteId: req.TargetNoteId,
		LinkType:     linkType,
		CreatedAt:    time.Now(),
	}

	// Duplicate detection is left to the unique (source, target, type)
	// index so concurrent linkers cannot slip past a pre-check.
	if err := uow.NoteLinkRepository().Create(ctx, &link); err != nil {
		if isDuplicateKey(err) {
			return nil, apperror.DuplicateEdge("%s -> %s (%s) already exists",
				req.SourceNoteId, req.TargetNoteId, linkType)
		}
		if isForeignKeyViolation(err) {
			return nil, apperror.NotFound("link endpoint vanished")
		}
		return nil, err
	}
	return toNoteLinkResponse(&link), nil
}

func (s *graphService) Unlink(ctx context.Context, req *dto.UnlinkRequest) error {
	linkType := entity.LinkType(req.LinkType)
	if req.LinkType == "" {
		linkType = entity.LinkTypeReference
	}
	if !linkType.Valid() {
		return apperror.InvalidArgument("unknown link_type %q", req.LinkType)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.NoteLinkRepository().DeleteEdge(ctx, req.SourceNoteId, req.TargetNoteId, string(linkType))
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("edge %s -> %s (%s)", req.SourceNoteId, req.TargetNoteId, linkType)
	}
	return nil
}

func (s *graphService) Outgoing(ctx context.Context, noteId uuid.UUID, linkType *string) ([]*dto.NoteLinkResponse, error) {
	return s.adjacency(ctx, specification.BySourceNote{NoteID: noteId}, linkType)
}

func (s *graphService) Incoming(ctx context.Context, noteId uuid.UUID, linkType *string) ([]*dto.NoteLinkResponse, error) {
	return s.adjacency(ctx, specification.ByTargetNote{NoteID: noteId}, linkType)
}

func (s *graphService) adjacency(ctx context.Context, endpoint specification.Specification, linkType *string) ([]*dto.NoteLinkResponse, error) {
	specs := []specification.Specification{endpoint}
	if linkType != nil {
		lt := entity.LinkType(*linkType)
		if !lt.Valid() {
			return nil, apperror.InvalidArgument("unknown link_type %q", *linkType)
		}
		specs = append(specs, specification.ByLinkType{LinkType: *linkType})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	links, err := uow.NoteLinkRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NoteLinkResponse, len(links))
	for i, l := range links {
		out[i] = toNoteLinkResponse(l)
	}
	return out, nil
}

func toNoteLinkResponse(l *entity.NoteLink) *dto.NoteLinkResponse {
	return &dto.NoteLinkResponse{
		Id:           l.Id,
		SourceNoteId: l.SourceNoteId,
		TargetNoteId: l.TargetNoteId,
		LinkType:     string(l.LinkType),
		CreatedAt:    l.CreatedAt,
	}
}
