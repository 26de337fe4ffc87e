package service

import (
	"context"
	"testing"
	"time"

	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)

	t.Run("defaults to plain note type", func(t *testing.T) {
		note, err := env.notes.Create(ctx, &dto.CreateNoteRequest{OwnerId: 7, Title: "Ideas"})
		assert.NoError(t, err)
		assert.Equal(t, "note", note.NoteType)
		assert.False(t, note.IsArchived)
		assert.False(t, note.IsDeleted)
	})

	t.Run("timestamps start equal", func(t *testing.T) {
		note, err := env.notes.Create(ctx, &dto.CreateNoteRequest{OwnerId: 7, Title: "Journal"})
		assert.NoError(t, err)
		assert.True(t, note.CreatedAt.Equal(note.UpdatedAt))
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := env.notes.Create(ctx, &dto.CreateNoteRequest{OwnerId: 7, Title: "X", NoteType: "memo"})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})

	t.Run("unknown owner rejected", func(t *testing.T) {
		_, err := env.notes.Create(ctx, &dto.CreateNoteRequest{OwnerId: 999, Title: "X"})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestNoteUpdateRefreshesUpdatedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	note := env.createNote(t, 7, "Draft", "note")

	time.Sleep(20 * time.Millisecond)

	title := "Draft v2"
	updated, err := env.notes.Update(ctx, &dto.UpdateNoteRequest{Id: note.Id, Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Draft v2", updated.Title)
	assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(note.CreatedAt))
}

// Retyping a task note away from "task" drops its metadata so the row
// cannot linger semantically orphaned.
func TestNoteRetypeDropsTaskMeta(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	note := env.createNote(t, 7, "Chores", "task")

	_, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: note.Id, Priority: "low"})
	assert.NoError(t, err)

	newType := "note"
	_, err = env.notes.Update(ctx, &dto.UpdateNoteRequest{Id: note.Id, NoteType: &newType})
	assert.NoError(t, err)

	_, err = env.tasks.Show(ctx, note.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNoteSoftDeleteAndRestore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	note := env.createNote(t, 7, "Scratch", "note")

	assert.NoError(t, env.notes.SoftDelete(ctx, note.Id))

	active, err := env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7})
	assert.NoError(t, err)
	assert.Empty(t, active)

	all, err := env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7, IncludeDeleted: true})
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.True(t, all[0].IsDeleted)

	// the row is still there, delete is logical
	shown, err := env.notes.Show(ctx, note.Id)
	assert.NoError(t, err)
	assert.True(t, shown.IsDeleted)

	assert.NoError(t, env.notes.Restore(ctx, note.Id))
	active, err = env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7})
	assert.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestNoteArchiveFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	keep := env.createNote(t, 7, "Keep", "note")
	old := env.createNote(t, 7, "Old", "note")

	assert.NoError(t, env.notes.Archive(ctx, old.Id))

	archived := true
	res, err := env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7, Archived: &archived})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, old.Id, res[0].Id)

	archived = false
	res, err = env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7, Archived: &archived})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, keep.Id, res[0].Id)

	assert.NoError(t, env.notes.Unarchive(ctx, old.Id))
	res, err = env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7})
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestNoteListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	env.registerUser(t, 8)

	env.createNote(t, 7, "A", "note")
	env.createNote(t, 7, "B", "task")
	env.createNote(t, 8, "C", "task")

	taskType := "task"
	res, err := env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7, NoteType: &taskType})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "B", res[0].Title)

	res, err = env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 8})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "C", res[0].Title)
}

func TestNoteTagAssociation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	note := env.createNote(t, 7, "Groceries", "note")
	env.createNote(t, 7, "Untagged", "note")
	tag := env.createTag(t, "errands")

	assert.NoError(t, env.notes.AttachTag(ctx, note.Id, tag.Id))
	// attaching twice is a no-op, not an error
	assert.NoError(t, env.notes.AttachTag(ctx, note.Id, tag.Id))

	shown, err := env.notes.Show(ctx, note.Id)
	assert.NoError(t, err)
	assert.Len(t, shown.Tags, 1)
	assert.Equal(t, "errands", shown.Tags[0].Name)

	tagId := tag.Id
	res, err := env.notes.List(ctx, &dto.ListNotesQuery{OwnerId: 7, TagId: &tagId})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, note.Id, res[0].Id)

	assert.NoError(t, env.notes.DetachTag(ctx, note.Id, tag.Id))
	shown, err = env.notes.Show(ctx, note.Id)
	assert.NoError(t, err)
	assert.Empty(t, shown.Tags)

	assert.ErrorIs(t, env.notes.AttachTag(ctx, uuid.New(), tag.Id), apperror.ErrNotFound)
	assert.ErrorIs(t, env.notes.AttachTag(ctx, note.Id, uuid.New()), apperror.ErrNotFound)
}

func TestNoteShowIncludesTaskMeta(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	note := env.createNote(t, 7, "Chores", "task")

	_, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: note.Id, Priority: "urgent"})
	assert.NoError(t, err)

	shown, err := env.notes.Show(ctx, note.Id)
	assert.NoError(t, err)
	assert.NotNil(t, shown.TaskMeta)
	assert.Equal(t, "urgent", shown.TaskMeta.Priority)
}
