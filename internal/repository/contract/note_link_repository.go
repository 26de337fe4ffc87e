package contract

import (
	"context"

	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteLinkRepository interface {
	// Create inserts the edge; the unique (source, target, link_type) index
	// is the only duplicate guard, so concurrent writers race safely.
	Create(ctx context.Context, link *entity.NoteLink) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteEdge removes one edge by its triple and reports how many rows
	// went away (0 or 1).
	DeleteEdge(ctx context.Context, sourceId, targetId uuid.UUID, linkType string) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLink, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLink, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
