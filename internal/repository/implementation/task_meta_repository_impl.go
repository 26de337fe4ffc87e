package implementation

import (
	"context"
	"errors"

	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/mapper"
	"tg-notegraph-be/internal/model"
	"tg-notegraph-be/internal/repository/contract"
	"tg-notegraph-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskMetaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TaskMetaMapper
}

func NewTaskMetaRepository(db *gorm.DB) contract.TaskMetaRepository {
	return &TaskMetaRepositoryImpl{
		db:     db,
		mapper: mapper.NewTaskMetaMapper(),
	}
}

func (r *TaskMetaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Save upserts on the note_id primary key. The conflict clause keeps the
// one-to-one invariant inside the storage engine instead of a racy
// find-then-insert in application code.
func (r *TaskMetaRepositoryImpl) Save(ctx context.Context, meta *entity.TaskMeta) error {
	m := r.mapper.ToModel(meta)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "note_id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*meta = *r.mapper.ToEntity(m)
	return nil
}

func (r *TaskMetaRepositoryImpl) Delete(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TaskMeta{}, "note_id = ?", noteId).Error
}

func (r *TaskMetaRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TaskMeta, error) {
	var m model.TaskMeta
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TaskMetaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TaskMeta, error) {
	var models []*model.TaskMeta
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TaskMeta{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TaskMetaRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TaskMeta{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
