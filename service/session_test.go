package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "conference-central/errors"
	"conference-central/model"
)

func TestCreateSessionDefaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	conf := createConference(t, env, "organizer", 10)

	session, err := env.sessions.Create(ctx, ident("organizer"), conf.ID, model.SessionForm{
		Name: "Intro to Go",
	})
	require.NoError(t, err)
	assert.Equal(t, "Workshop", session.TypeOfSession)
	assert.Equal(t, "09:00", session.StartTime)
	assert.Equal(t, conf.ID, session.ConferenceID)
}

func TestCreateSessionValidation(t *testing.T) {
	env := newTestEnv()
	conf := createConference(t, env, "organizer", 10)

	_, err := env.sessions.Create(context.Background(), ident("organizer"), conf.ID, model.SessionForm{})
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = env.sessions.Create(context.Background(), model.Identity{}, conf.ID, model.SessionForm{Name: "X"})
	var authErr *apperrors.AuthenticationError
	assert.ErrorAs(t, err, &authErr)
}

func TestSessionListings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	conf := createConference(t, env, "organizer", 10)
	other := createConference(t, env, "organizer", 10)

	create := func(confID, name, typeOfSession, speaker string) {
		_, err := env.sessions.Create(ctx, ident("organizer"), confID, model.SessionForm{
			Name: name, TypeOfSession: typeOfSession, Speaker: speaker,
		})
		require.NoError(t, err)
	}
	create(conf.ID, "Keynote", "Keynote", "Ada")
	create(conf.ID, "Workshop A", "Workshop", "Rob")
	create(other.ID, "Workshop B", "Workshop", "Ada")

	sessions, err := env.sessions.ByConference(ctx, conf.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	sessions, err = env.sessions.ByConferenceAndType(ctx, conf.ID, "Workshop")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Workshop A", sessions[0].Name)

	sessions, err = env.sessions.BySpeaker(ctx, "Ada")
	require.NoError(t, err)
	assert.Len(t, sessions, 2, "speaker listing spans conferences")
}

func TestFeaturedSpeakerNeedsTwoSessions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	conf := createConference(t, env, "organizer", 10)

	_, err := env.sessions.Create(ctx, ident("organizer"), conf.ID, model.SessionForm{
		Name: "Talk One", Speaker: "Ada",
	})
	require.NoError(t, err)
	_, err = env.sessions.Create(ctx, ident("organizer"), conf.ID, model.SessionForm{
		Name: "Solo Talk", Speaker: "Rob",
	})
	require.NoError(t, err)
	_, err = env.sessions.Create(ctx, ident("organizer"), conf.ID, model.SessionForm{
		Name: "Talk Two", Speaker: "Ada",
	})
	require.NoError(t, err)
	env.drain()

	featured := env.announcements.FeaturedSpeakers(ctx)
	require.Contains(t, featured, "Ada")
	assert.ElementsMatch(t, []string{"Talk One", "Talk Two"}, featured["Ada"])
	assert.NotContains(t, featured, "Rob", "one session does not make a featured speaker")
}
