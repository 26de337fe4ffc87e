package service

import (
	"context"
	"path/filepath"
	"testing"

	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/model"
	"tg-notegraph-be/internal/pkg/logger"
	"tg-notegraph-be/internal/repository/unitofwork"
	"tg-notegraph-be/pkg/database"

	"gorm.io/gorm"
)

// testEnv wires the full service stack against a throwaway sqlite file so
// cascade rules and unique indexes behave like the real storage engine.
type testEnv struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory

	users IUserService
	notes INoteService
	tags  ITagService
	graph IGraphService
	tasks ITaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "notegraph_test.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	log := logger.NewNopLogger()

	return &testEnv{
		db:         db,
		uowFactory: uowFactory,
		users:      NewUserService(uowFactory, log),
		notes:      NewNoteService(uowFactory, log),
		tags:       NewTagService(uowFactory, log),
		graph:      NewGraphService(uowFactory, log),
		tasks:      NewTaskService(uowFactory, log),
	}
}

func (e *testEnv) registerUser(t *testing.T, telegramId int64) *dto.UserResponse {
	t.Helper()
	user, err := e.users.Register(context.Background(), &dto.RegisterUserRequest{TelegramId: telegramId})
	if err != nil {
		t.Fatalf("Failed to register user %d: %v", telegramId, err)
	}
	return user
}

func (e *testEnv) createNote(t *testing.T, ownerId int64, title, noteType string) *dto.NoteResponse {
	t.Helper()
	note, err := e.notes.Create(context.Background(), &dto.CreateNoteRequest{
		OwnerId:  ownerId,
		Title:    title,
		NoteType: noteType,
	})
	if err != nil {
		t.Fatalf("Failed to create note %q: %v", title, err)
	}
	return note
}

func (e *testEnv) createTag(t *testing.T, name string) *dto.TagResponse {
	t.Helper()
	tag, err := e.tags.Create(context.Background(), &dto.CreateTagRequest{Name: name})
	if err != nil {
		t.Fatalf("Failed to create tag %q: %v", name, err)
	}
	return tag
}
