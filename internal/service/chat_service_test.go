package service

import (
	"context"
	"testing"

	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func TestChatCachesReplies(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gen := &fakeGenerator{responses: []string{"the answer"}}
	svc := NewChatService(repository.NewProjectRepository(db), gen, rdb)

	ctx := context.Background()
	reply, err := svc.Respond(ctx, project.ID, 1, "what is a vector?")
	require.NoError(t, err)
	require.Equal(t, "the answer", reply)

	reply, err = svc.Respond(ctx, project.ID, 1, "what is a vector?")
	require.NoError(t, err)
	require.Equal(t, "the answer", reply)
	require.Equal(t, 1, gen.calls)
}

func TestChatDistinctQuestionsMissCache(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gen := &fakeGenerator{responses: []string{"first", "second"}}
	svc := NewChatService(repository.NewProjectRepository(db), gen, rdb)

	ctx := context.Background()
	reply, err := svc.Respond(ctx, project.ID, 1, "question one")
	require.NoError(t, err)
	require.Equal(t, "first", reply)

	reply, err = svc.Respond(ctx, project.ID, 1, "question two")
	require.NoError(t, err)
	require.Equal(t, "second", reply)
	require.Equal(t, 2, gen.calls)
}

func TestChatWorksWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)

	gen := &fakeGenerator{responses: []string{"reply"}}
	svc := NewChatService(repository.NewProjectRepository(db), gen, nil)

	reply, err := svc.Respond(context.Background(), project.ID, 1, "hello")
	require.NoError(t, err)
	require.Equal(t, "reply", reply)
}

func TestChatForeignProject(t *testing.T) {
	db := newTestDB(t)
	project := createTestProject(t, db, 1)

	gen := &fakeGenerator{}
	svc := NewChatService(repository.NewProjectRepository(db), gen, nil)

	_, err := svc.Respond(context.Background(), project.ID, 2, "hello")
	require.ErrorIs(t, err, util.ErrProjectNotFound)
	require.Zero(t, gen.calls)
}
