package implementation

import (
	"context"
	"errors"

	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/mapper"
	"tg-notegraph-be/internal/model"
	"tg-notegraph-be/internal/repository/contract"
	"tg-notegraph-be/internal/repository/scope"
	"tg-notegraph-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteLinkMapper
}

func NewNoteLinkRepository(db *gorm.DB) contract.NoteLinkRepository {
	return &NoteLinkRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteLinkMapper(),
	}
}

func (r *NoteLinkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteLinkRepositoryImpl) Create(ctx context.Context, link *entity.NoteLink) error {
	m := r.mapper.ToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteLinkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NoteLink{}, "id = ?", id).Error
}

func (r *NoteLinkRepositoryImpl) DeleteEdge(ctx context.Context, sourceId, targetId uuid.UUID, linkType string) (int64, error) {
	edge := specification.ByEdge{SourceID: sourceId, TargetID: targetId, LinkType: linkType}
	res := edge.Apply(r.db.WithContext(ctx)).Delete(&model.NoteLink{})
	return res.RowsAffected, res.Error
}

func (r *NoteLinkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLink, error) {
	var m model.NoteLink
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// FindAll returns edges newest first. Edges are immutable, so created_at
// is the only meaningful ordering.
func (r *NoteLinkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLink, error) {
	var models []*model.NoteLink
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteLinkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteLink{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
