package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conference-central/model"
)

func putConference(t *testing.T, env *testEnv, name string, maxAttendees, seats int) {
	t.Helper()
	require.NoError(t, env.store.PutConference(context.Background(), &model.Conference{
		ID:              name,
		Name:            name,
		MaxAttendees:    maxAttendees,
		SeatsAvailable:  seats,
		Topics:          []string{"Default", "Topic"},
		OrganizerUserID: "organizer",
	}))
}

func TestRecomputeSelectsNearlySoldOut(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	putConference(t, env, "Tight", 6, 3)
	putConference(t, env, "Gone", 6, 0)
	putConference(t, env, "Roomy", 8, 6)
	putConference(t, env, "Close", 6, 2)

	announcement, err := env.announcements.Recompute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Last chance to attend! The following conferences are nearly sold out: Close, Tight", announcement)
	assert.Equal(t, announcement, env.announcements.Announcement(ctx))
}

func TestRecomputeDeletesWhenNothingQualifies(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	putConference(t, env, "Tight", 6, 3)
	_, err := env.announcements.Recompute(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, env.announcements.Announcement(ctx))

	putConference(t, env, "Tight", 6, 6)
	announcement, err := env.announcements.Recompute(ctx)
	require.NoError(t, err)
	assert.Empty(t, announcement)
	assert.Empty(t, env.announcements.Announcement(ctx), "stale cache entry removed")
}

func TestAnnouncementEmptyWhenUncached(t *testing.T) {
	env := newTestEnv()
	assert.Empty(t, env.announcements.Announcement(context.Background()))
	assert.Empty(t, env.announcements.FeaturedSpeakers(context.Background()))
}
