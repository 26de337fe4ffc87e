package contract

import (
	"context"

	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// Delete removes the row physically. Normal deletion is the soft flag;
	// this exists for owner-cascade cleanup and admin tooling.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Association-table mutations; both are idempotent.
	AttachTag(ctx context.Context, noteId, tagId uuid.UUID) error
	DetachTag(ctx context.Context, noteId, tagId uuid.UUID) error
	FindTags(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error)
}
