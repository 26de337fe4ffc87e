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

func TestGraphLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	a := env.createNote(t, 7, "A", "note")
	b := env.createNote(t, 7, "B", "note")

	t.Run("defaults to reference type", func(t *testing.T) {
		link, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: b.Id})
		assert.NoError(t, err)
		assert.Equal(t, "reference", link.LinkType)
	})

	t.Run("identical triple conflicts", func(t *testing.T) {
		_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: b.Id})
		assert.ErrorIs(t, err, apperror.ErrDuplicateEdge)
	})

	t.Run("same endpoints with another type succeed", func(t *testing.T) {
		_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: b.Id, LinkType: "related"})
		assert.NoError(t, err)
	})

	t.Run("self links rejected", func(t *testing.T) {
		_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: a.Id})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})

	t.Run("unknown link type rejected", func(t *testing.T) {
		_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: b.Id, LinkType: "sibling"})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})

	t.Run("missing endpoint rejected", func(t *testing.T) {
		_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: uuid.New()})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

// The graph is directed: A -> B shows up in A's outgoing view and B's
// incoming view, never the other way around.
func TestGraphAdjacencyIsDirected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	a := env.createNote(t, 7, "A", "note")
	b := env.createNote(t, 7, "B", "note")

	_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: b.Id, LinkType: "parent"})
	assert.NoError(t, err)

	out, err := env.graph.Outgoing(ctx, a.Id, nil)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, b.Id, out[0].TargetNoteId)

	in, err := env.graph.Incoming(ctx, b.Id, nil)
	assert.NoError(t, err)
	assert.Len(t, in, 1)
	assert.Equal(t, a.Id, in[0].SourceNoteId)

	// no implied reverse edge
	rev, err := env.graph.Outgoing(ctx, b.Id, nil)
	assert.NoError(t, err)
	assert.Empty(t, rev)

	rev, err = env.graph.Incoming(ctx, a.Id, nil)
	assert.NoError(t, err)
	assert.Empty(t, rev)
}

func TestGraphAdjacencyFilterAndOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	hub := env.createNote(t, 7, "Hub", "note")
	first := env.createNote(t, 7, "First", "note")
	second := env.createNote(t, 7, "Second", "note")

	_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: hub.Id, TargetNoteId: first.Id, LinkType: "reference"})
	assert.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: hub.Id, TargetNoteId: second.Id, LinkType: "related"})
	assert.NoError(t, err)

	out, err := env.graph.Outgoing(ctx, hub.Id, nil)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	// newest first
	assert.Equal(t, second.Id, out[0].TargetNoteId)
	assert.Equal(t, first.Id, out[1].TargetNoteId)

	related := "related"
	out, err = env.graph.Outgoing(ctx, hub.Id, &related)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, second.Id, out[0].TargetNoteId)

	bogus := "sibling"
	_, err = env.graph.Outgoing(ctx, hub.Id, &bogus)
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
}

func TestGraphUnlink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	a := env.createNote(t, 7, "A", "note")
	b := env.createNote(t, 7, "B", "note")

	_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: b.Id, LinkType: "parent"})
	assert.NoError(t, err)

	assert.NoError(t, env.graph.Unlink(ctx, &dto.UnlinkRequest{SourceNoteId: a.Id, TargetNoteId: b.Id, LinkType: "parent"}))

	out, err := env.graph.Outgoing(ctx, a.Id, nil)
	assert.NoError(t, err)
	assert.Empty(t, out)

	err = env.graph.Unlink(ctx, &dto.UnlinkRequest{SourceNoteId: a.Id, TargetNoteId: b.Id, LinkType: "parent"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

// Edges must not outlive either endpoint.
func TestGraphEdgesCascadeWithNote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, 7)
	a := env.createNote(t, 7, "A", "note")
	b := env.createNote(t, 7, "B", "note")

	_, err := env.graph.Link(ctx, &dto.LinkNotesRequest{SourceNoteId: a.Id, TargetNoteId: b.Id})
	assert.NoError(t, err)

	// hard delete the target through the repository; soft delete must NOT
	// remove edges
	assert.NoError(t, env.notes.SoftDelete(ctx, b.Id))
	in, err := env.graph.Incoming(ctx, b.Id, nil)
	assert.NoError(t, err)
	assert.Len(t, in, 1)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	assert.NoError(t, uow.NoteRepository().Delete(ctx, b.Id))

	count, err := uow.NoteLinkRepository().Count(ctx)
	assert.NoError(t, err)
	assert.Zero(t, count)
}
