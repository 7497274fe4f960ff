package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"barplexity-be/internal/constant"
	"barplexity-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatbotService(factory *fakeFactory, gen *fakeGenerator) IChatbotService {
	return NewChatbotService(factory, gen, nopLogger{})
}

func TestCreateSession(t *testing.T) {
	factory := newFakeFactory()
	svc := newChatbotService(factory, &fakeGenerator{reply: "hi"})

	res, err := svc.CreateSession(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, constant.SessionSummaryNew, res.Summary)
}

func TestListSessions(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	gen := &fakeGenerator{reply: "hello"}
	svc := newChatbotService(factory, gen)
	userId := uuid.New()

	used, err := svc.CreateSession(ctx, userId)
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, userId) // stays empty
	require.NoError(t, err)
	otherSession, err := svc.CreateSession(ctx, uuid.New())
	require.NoError(t, err)

	_, err = svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: used.Id, Message: "hi"})
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, userId)
	require.NoError(t, err)

	// Empty sessions and other users' sessions stay out of the listing.
	require.Len(t, sessions, 1)
	assert.Equal(t, used.Id, sessions[0].Id)
	assert.NotEqual(t, otherSession.Id, sessions[0].Id)
}

func TestGetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("returns turns oldest first", func(t *testing.T) {
		factory := newFakeFactory()
		gen := &fakeGenerator{reply: "answer"}
		svc := newChatbotService(factory, gen)
		userId := uuid.New()

		created, err := svc.CreateSession(ctx, userId)
		require.NoError(t, err)

		_, err = svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "first"})
		require.NoError(t, err)
		_, err = svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "second"})
		require.NoError(t, err)

		res, err := svc.GetSession(ctx, userId, created.Id)
		require.NoError(t, err)
		require.Len(t, res.Turns, 2)
		assert.Equal(t, "first", res.Turns[0].Question)
		assert.Equal(t, "second", res.Turns[1].Question)
	})

	t.Run("unknown session", func(t *testing.T) {
		factory := newFakeFactory()
		svc := newChatbotService(factory, &fakeGenerator{})

		_, err := svc.GetSession(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrChatSessionNotFound)
	})

	t.Run("someone else's session", func(t *testing.T) {
		factory := newFakeFactory()
		svc := newChatbotService(factory, &fakeGenerator{})
		owner := uuid.New()

		created, err := svc.CreateSession(ctx, owner)
		require.NoError(t, err)

		_, err = svc.GetSession(ctx, uuid.New(), created.Id)
		assert.ErrorIs(t, err, ErrChatSessionForbidden)
	})
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the session and its turns", func(t *testing.T) {
		factory := newFakeFactory()
		gen := &fakeGenerator{reply: "bye"}
		svc := newChatbotService(factory, gen)
		userId := uuid.New()

		created, err := svc.CreateSession(ctx, userId)
		require.NoError(t, err)
		_, err = svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "hi"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteSession(ctx, userId, created.Id))
		assert.Empty(t, factory.store.sessions)
		assert.Empty(t, factory.store.turns)
	})

	t.Run("someone else's session", func(t *testing.T) {
		factory := newFakeFactory()
		svc := newChatbotService(factory, &fakeGenerator{})
		owner := uuid.New()

		created, err := svc.CreateSession(ctx, owner)
		require.NoError(t, err)

		err = svc.DeleteSession(ctx, uuid.New(), created.Id)
		assert.ErrorIs(t, err, ErrChatSessionForbidden)
		assert.Len(t, factory.store.sessions, 1)
	})

	t.Run("unknown session", func(t *testing.T) {
		factory := newFakeFactory()
		svc := newChatbotService(factory, &fakeGenerator{})

		err := svc.DeleteSession(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrChatSessionNotFound)
	})
}

func TestSendChat(t *testing.T) {
	ctx := context.Background()

	t.Run("replays history oldest first in the prompt", func(t *testing.T) {
		factory := newFakeFactory()
		gen := &fakeGenerator{reply: "42"}
		svc := newChatbotService(factory, gen)
		userId := uuid.New()

		created, err := svc.CreateSession(ctx, userId)
		require.NoError(t, err)

		_, err = svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "first question"})
		require.NoError(t, err)
		_, err = svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "second question"})
		require.NoError(t, err)

		want := "User: first question\nBot: 42\nUser: second question\nBot:"
		assert.Equal(t, want, gen.lastPrompt)
	})

	t.Run("first message names the session once", func(t *testing.T) {
		factory := newFakeFactory()
		gen := &fakeGenerator{reply: "ok"}
		svc := newChatbotService(factory, gen)
		userId := uuid.New()

		created, err := svc.CreateSession(ctx, userId)
		require.NoError(t, err)

		long := strings.Repeat("x", 80)
		res, err := svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: long})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("x", constant.SessionSummaryMaxLen), res.Summary)

		res, err = svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "a different topic"})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("x", constant.SessionSummaryMaxLen), res.Summary)
	})

	t.Run("short first message is kept whole", func(t *testing.T) {
		factory := newFakeFactory()
		svc := newChatbotService(factory, &fakeGenerator{reply: "ok"})
		userId := uuid.New()

		created, err := svc.CreateSession(ctx, userId)
		require.NoError(t, err)

		res, err := svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "hello", res.Summary)
	})

	t.Run("provider failure becomes part of the conversation", func(t *testing.T) {
		factory := newFakeFactory()
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		svc := newChatbotService(factory, gen)
		userId := uuid.New()

		created, err := svc.CreateSession(ctx, userId)
		require.NoError(t, err)

		res, err := svc.SendChat(ctx, userId, &dto.SendChatRequest{SessionId: created.Id, Message: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "Error: quota exceeded", res.Answer)

		// The failed turn is persisted like any other.
		require.Len(t, factory.store.turns, 1)
		assert.Equal(t, "Error: quota exceeded", factory.store.turns[0].Answer)
	})

	t.Run("someone else's session", func(t *testing.T) {
		factory := newFakeFactory()
		svc := newChatbotService(factory, &fakeGenerator{reply: "ok"})
		owner := uuid.New()

		created, err := svc.CreateSession(ctx, owner)
		require.NoError(t, err)

		_, err = svc.SendChat(ctx, uuid.New(), &dto.SendChatRequest{SessionId: created.Id, Message: "hi"})
		assert.ErrorIs(t, err, ErrChatSessionForbidden)
		assert.Empty(t, factory.store.turns)
	})

	t.Run("missing session id opens a fresh session", func(t *testing.T) {
		factory := newFakeFactory()
		svc := newChatbotService(factory, &fakeGenerator{reply: "welcome"})
		userId := uuid.New()

		res, err := svc.SendChat(ctx, userId, &dto.SendChatRequest{Message: "open sesame"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.SessionId)
		assert.Equal(t, "open sesame", res.Summary)
		assert.Equal(t, "welcome", res.Answer)

		require.Len(t, factory.store.sessions, 1)
		assert.Equal(t, userId, factory.store.sessions[0].UserId)
		require.Len(t, factory.store.turns, 1)
		assert.Equal(t, res.SessionId, factory.store.turns[0].ChatSessionId)
	})
}
