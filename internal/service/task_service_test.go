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

func TestTaskUpsert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	task := env.createNote(t, 7, "Chores", "task")
	plain := env.createNote(t, 7, "Ideas", "note")

	t.Run("defaults to medium todo", func(t *testing.T) {
		meta, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: task.Id})
		assert.NoError(t, err)
		assert.Equal(t, "medium", meta.Priority)
		assert.Equal(t, "todo", meta.Status)
		assert.Nil(t, meta.DueDate)
	})

	t.Run("updates in place", func(t *testing.T) {
		due := time.Now().Add(48 * time.Hour)
		meta, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{
			NoteId:   task.Id,
			Priority: "high",
			DueDate:  &due,
		})
		assert.NoError(t, err)
		assert.Equal(t, "high", meta.Priority)
		assert.Equal(t, "todo", meta.Status)
		assert.NotNil(t, meta.DueDate)

		count, err := env.uowFactory.NewUnitOfWork(ctx).TaskMetaRepository().Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects non task notes", func(t *testing.T) {
		_, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: plain.Id})
		assert.ErrorIs(t, err, apperror.ErrInvalidState)
	})

	t.Run("rejects unknown note", func(t *testing.T) {
		_, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: uuid.New()})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("rejects unknown enum values", func(t *testing.T) {
		_, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: task.Id, Priority: "critical"})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

		_, err = env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: task.Id, Status: "paused"})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}

func TestTaskCompletedAtTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	task := env.createNote(t, 7, "Chores", "task")

	meta, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: task.Id, Status: "in_progress"})
	assert.NoError(t, err)
	assert.Nil(t, meta.CompletedAt)

	// moving into completed stamps the time
	meta, err = env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: task.Id, Status: "completed"})
	assert.NoError(t, err)
	assert.NotNil(t, meta.CompletedAt)
	assert.WithinDuration(t, time.Now(), *meta.CompletedAt, 5*time.Second)

	// leaving completed clears it again
	meta, err = env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: task.Id, Status: "todo"})
	assert.NoError(t, err)
	assert.Nil(t, meta.CompletedAt)

	// an explicit caller value always wins
	pinned := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	meta, err = env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{
		NoteId:      task.Id,
		Status:      "completed",
		CompletedAt: &pinned,
	})
	assert.NoError(t, err)
	assert.True(t, pinned.Equal(*meta.CompletedAt))
}

func TestTaskList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	env.registerUser(t, 8)

	soon := env.createNote(t, 7, "Soon", "task")
	later := env.createNote(t, 7, "Later", "task")
	theirs := env.createNote(t, 8, "Theirs", "task")

	dueSoon := time.Now().Add(24 * time.Hour)
	dueLater := time.Now().Add(14 * 24 * time.Hour)

	_, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: soon.Id, Priority: "high", DueDate: &dueSoon})
	assert.NoError(t, err)
	_, err = env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: later.Id, Status: "blocked", DueDate: &dueLater})
	assert.NoError(t, err)
	_, err = env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: theirs.Id})
	assert.NoError(t, err)

	t.Run("scoped to owner", func(t *testing.T) {
		res, err := env.tasks.List(ctx, &dto.ListTasksQuery{OwnerId: 7})
		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		blocked := "blocked"
		res, err := env.tasks.List(ctx, &dto.ListTasksQuery{OwnerId: 7, Status: &blocked})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, later.Id, res[0].NoteId)
	})

	t.Run("filter by priority", func(t *testing.T) {
		high := "high"
		res, err := env.tasks.List(ctx, &dto.ListTasksQuery{OwnerId: 7, Priority: &high})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, soon.Id, res[0].NoteId)
	})

	t.Run("filter by deadline", func(t *testing.T) {
		cutoff := time.Now().Add(7 * 24 * time.Hour)
		res, err := env.tasks.List(ctx, &dto.ListTasksQuery{OwnerId: 7, DueBefore: &cutoff})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, soon.Id, res[0].NoteId)
	})
}

func TestTaskShow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	task := env.createNote(t, 7, "Chores", "task")

	_, err := env.tasks.Show(ctx, task.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: task.Id})
	assert.NoError(t, err)

	meta, err := env.tasks.Show(ctx, task.Id)
	assert.NoError(t, err)
	assert.Equal(t, task.Id, meta.NoteId)
}
