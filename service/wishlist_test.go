package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "conference-central/errors"
	"conference-central/model"
)

func createSession(t *testing.T, env *testEnv, conferenceID, name, speaker string) *model.Session {
	t.Helper()
	session, err := env.sessions.Create(context.Background(), ident("organizer"), conferenceID, model.SessionForm{
		Name:    name,
		Speaker: speaker,
	})
	require.NoError(t, err)
	return session
}

func TestWishlistAddAndList(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	conf := createConference(t, env, "organizer", 10)
	first := createSession(t, env, conf.ID, "Generics Deep Dive", "Ada")
	second := createSession(t, env, conf.ID, "Channels in Anger", "Rob")
	attendee := ident("attendee")

	ok, err := env.wishlists.Add(ctx, attendee, second.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = env.wishlists.Add(ctx, attendee, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	sessions, err := env.wishlists.Sessions(ctx, attendee)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// wishlist keeps insertion order
	assert.Equal(t, "Channels in Anger", sessions[0].Name)
	assert.Equal(t, "Generics Deep Dive", sessions[1].Name)
}

func TestWishlistAddUnknownSession(t *testing.T) {
	env := newTestEnv()

	_, err := env.wishlists.Add(context.Background(), ident("attendee"), "missing")
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestWishlistDoubleAdd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	conf := createConference(t, env, "organizer", 10)
	session := createSession(t, env, conf.ID, "Generics Deep Dive", "Ada")
	attendee := ident("attendee")

	_, err := env.wishlists.Add(ctx, attendee, session.ID)
	require.NoError(t, err)

	_, err = env.wishlists.Add(ctx, attendee, session.ID)
	var conflictErr *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestWishlistRemove(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	conf := createConference(t, env, "organizer", 10)
	session := createSession(t, env, conf.ID, "Generics Deep Dive", "Ada")
	attendee := ident("attendee")

	_, err := env.wishlists.Add(ctx, attendee, session.ID)
	require.NoError(t, err)

	ok, err := env.wishlists.Remove(ctx, attendee, session.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	sessions, err := env.wishlists.Sessions(ctx, attendee)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	_, err = env.wishlists.Remove(ctx, attendee, session.ID)
	var conflictErr *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflictErr, "removing an absent session is a conflict")
}

func TestWishlistRequiresIdentity(t *testing.T) {
	env := newTestEnv()

	_, err := env.wishlists.Add(context.Background(), model.Identity{}, "any")
	var authErr *apperrors.AuthenticationError
	assert.ErrorAs(t, err, &authErr)

	_, err = env.wishlists.Sessions(context.Background(), model.Identity{})
	assert.ErrorAs(t, err, &authErr)
}
