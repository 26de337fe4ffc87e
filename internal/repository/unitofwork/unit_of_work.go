package unitofwork

import (
	"context"

	"tg-notegraph-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteLinkRepository() contract.NoteLinkRepository
	TaskMetaRepository() contract.TaskMetaRepository
}
