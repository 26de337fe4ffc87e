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

type ITagService interface {
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error)
	List(ctx context.Context) ([]*dto.TagResponse, error)
	// Delete removes the tag and its note associations; notes survive.
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewTagService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITagService {
	return &tagService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	if req.Name == "" {
		return nil, apperror.InvalidArgument("tag name must not be empty")
	}

	color := req.Color
	if color == "" {
		color = entity.DefaultTagColor
	}
	if !entity.ValidHexColor(color) {
		return nil, apperror.InvalidArgument("color %q is not a hex color code", color)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag := entity.Tag{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     color,
		CreatedAt: time.Now(),
	}

	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		if isDuplicateKey(err) {
			return nil, apperror.DuplicateIdentity("tag %q already exists", req.Name)
		}
		return nil, err
	}
	return toTagResponse(&tag), nil
}

func (s *tagService) Show(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperror.NotFound("tag %s", id)
	}
	return toTagResponse(tag), nil
}

func (s *tagService) List(ctx context.Context) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TagResponse, len(tags))
	for i, t := range tags {
		out[i] = toTagResponse(t)
	}
	return out, nil
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if tag == nil {
		return apperror.NotFound("tag %s", id)
	}

	if err := uow.TagRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("tag", "tag deleted with associations cleared", map[string]interface{}{"tag": tag.Name})
	return nil
}

func toTagResponse(t *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		Id:        t.Id,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}
