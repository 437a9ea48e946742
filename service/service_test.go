package service

import (
	"go.uber.org/zap"

	"conference-central/cache"
	"conference-central/database"
	"conference-central/model"
	"conference-central/tasks"
)

type testEnv struct {
	store         *database.MemoryStore
	cache         *cache.MemoryCache
	queue         *tasks.Queue
	profiles      *ProfileService
	announcements *AnnouncementService
	conferences   *ConferenceService
	sessions      *SessionService
	registrations *RegistrationService
	wishlists     *WishlistService
}

func newTestEnv() *testEnv {
	log := zap.NewNop().Sugar()
	store := database.NewMemoryStore()
	memCache := cache.NewMemoryCache()
	queue := tasks.NewQueue(log, 2, 256)

	profiles := NewProfileService(store, log)
	announcements := NewAnnouncementService(store, memCache, log)

	return &testEnv{
		store:         store,
		cache:         memCache,
		queue:         queue,
		profiles:      profiles,
		announcements: announcements,
		conferences:   NewConferenceService(store, profiles, announcements, queue, log),
		sessions:      NewSessionService(store, announcements, queue, log),
		registrations: NewRegistrationService(store, announcements, queue, log),
		wishlists:     NewWishlistService(store, log),
	}
}

// drain waits for queued side effects, so asserts on cache state are
// deterministic. The env cannot enqueue afterwards.
func (e *testEnv) drain() {
	e.queue.Close()
}

func ident(userID string) model.Identity {
	return model.Identity{
		UserID:      userID,
		Email:       userID + "@example.com",
		DisplayName: "User " + userID,
	}
}
