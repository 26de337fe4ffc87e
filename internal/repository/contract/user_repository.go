package contract

import (
	"context"

	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	// Delete is a hard delete; the storage engine cascades to the user's
	// notes and from there to links, task metadata and tag associations.
	Delete(ctx context.Context, telegramId int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
