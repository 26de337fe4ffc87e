package service

import (
	"context"
	"testing"
	"time"

	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestUserRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("rejects non-positive telegram id", func(t *testing.T) {
		_, err := env.users.Register(ctx, &dto.RegisterUserRequest{TelegramId: 0})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})

	t.Run("creates active user with join timestamp", func(t *testing.T) {
		username := "alice"
		user, err := env.users.Register(ctx, &dto.RegisterUserRequest{
			TelegramId: 1001,
			Username:   &username,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1001), user.TelegramId)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.WithinDuration(t, time.Now(), user.DateJoined, 5*time.Second)
		assert.Nil(t, user.LastLogin)
	})

	t.Run("duplicate telegram id conflicts", func(t *testing.T) {
		_, err := env.users.Register(ctx, &dto.RegisterUserRequest{TelegramId: 1001})
		assert.ErrorIs(t, err, apperror.ErrDuplicateIdentity)
	})
}

func TestUserEnsureIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.users.Ensure(ctx, &dto.RegisterUserRequest{TelegramId: 42})
	assert.NoError(t, err)

	second, err := env.users.Ensure(ctx, &dto.RegisterUserRequest{TelegramId: 42})
	assert.NoError(t, err)
	assert.Equal(t, first.TelegramId, second.TelegramId)

	count, err := env.uowFactory.NewUnitOfWork(ctx).UserRepository().Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)

	first := "Bob"
	updated, err := env.users.UpdateProfile(ctx, &dto.UpdateUserProfileRequest{
		TelegramId: 7,
		FirstName:  &first,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Bob", *updated.FirstName)

	_, err = env.users.UpdateProfile(ctx, &dto.UpdateUserProfileRequest{TelegramId: 999})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRecordLoginAndDeactivate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)

	assert.NoError(t, env.users.RecordLogin(ctx, 7))
	user, err := env.users.Show(ctx, 7)
	assert.NoError(t, err)
	assert.NotNil(t, user.LastLogin)

	assert.NoError(t, env.users.Deactivate(ctx, 7))
	user, err = env.users.Show(ctx, 7)
	assert.NoError(t, err)
	assert.False(t, user.IsActive)

	assert.ErrorIs(t, env.users.Deactivate(ctx, 999), apperror.ErrNotFound)
}

// Deleting a user must take down everything hanging off their notes: the
// notes themselves, edges touching those notes and task metadata.
func TestUserDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)

	groceries := env.createNote(t, 7, "Groceries", "task")
	mealPlan := env.createNote(t, 7, "Meal Plan", "project")

	_, err := env.tasks.Upsert(ctx, &dto.UpsertTaskMetaRequest{NoteId: groceries.Id, Priority: "high"})
	assert.NoError(t, err)

	_, err = env.graph.Link(ctx, &dto.LinkNotesRequest{
		SourceNoteId: mealPlan.Id,
		TargetNoteId: groceries.Id,
		LinkType:     "parent",
	})
	assert.NoError(t, err)

	assert.NoError(t, env.users.Delete(ctx, 7))

	uow := env.uowFactory.NewUnitOfWork(ctx)
	for name, count := range map[string]func() (int64, error){
		"notes":     func() (int64, error) { return uow.NoteRepository().Count(ctx) },
		"links":     func() (int64, error) { return uow.NoteLinkRepository().Count(ctx) },
		"task meta": func() (int64, error) { return uow.TaskMetaRepository().Count(ctx) },
	} {
		n, err := count()
		assert.NoError(t, err)
		assert.Zero(t, n, "expected no %s rows after owner deletion", name)
	}

	assert.ErrorIs(t, env.users.Delete(ctx, 7), apperror.ErrNotFound)
}
