package contract

import (
	"context"

	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TaskMetaRepository interface {
	// Save upserts on the note_id primary key at the storage engine, so two
	// concurrent upserts can never produce a second row for the same note.
	Save(ctx context.Context, meta *entity.TaskMeta) error
	Delete(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TaskMeta, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TaskMeta, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
