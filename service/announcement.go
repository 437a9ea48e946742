package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"conference-central/cache"
	"conference-central/database"
)

const (
	AnnouncementCacheKey    = "RECENT_ANNOUNCEMENTS"
	FeaturedSpeakerCacheKey = "FEATURED_SPEAKER"

	announcementTemplate = "Last chance to attend! The following conferences are nearly sold out: %s"
)

// AnnouncementService derives the "nearly sold out" announcement and the
// featured-speaker map from store state and mirrors them into the cache.
// The cache is never authoritative; reads fall back to empty values.
type AnnouncementService struct {
	store database.Store
	cache cache.Cache
	log   *zap.SugaredLogger
}

func NewAnnouncementService(store database.Store, c cache.Cache, log *zap.SugaredLogger) *AnnouncementService {
	return &AnnouncementService{store: store, cache: c, log: log}
}

// Recompute rebuilds the announcement from current conference state,
// caching the result or deleting the stale entry when nothing qualifies.
func (s *AnnouncementService) Recompute(ctx context.Context) (string, error) {
	names, err := s.store.AlmostSoldOutConferenceNames(ctx)
	if err != nil {
		return "", err
	}

	if len(names) == 0 {
		if err := s.cache.Delete(ctx, AnnouncementCacheKey); err != nil {
			return "", err
		}
		return "", nil
	}

	announcement := fmt.Sprintf(announcementTemplate, strings.Join(names, ", "))
	if err := s.cache.Set(ctx, AnnouncementCacheKey, announcement, 0); err != nil {
		return "", err
	}
	return announcement, nil
}

// Announcement returns the cached announcement, empty when absent. Cache
// failures are logged, not surfaced.
func (s *AnnouncementService) Announcement(ctx context.Context) string {
	val, ok, err := s.cache.Get(ctx, AnnouncementCacheKey)
	if err != nil {
		s.log.Warnw("announcement cache read failed", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return val
}

// SetFeaturedSpeaker marks a speaker as featured once they have at least
// two sessions within the same conference, merging into the cached map.
func (s *AnnouncementService) SetFeaturedSpeaker(ctx context.Context, conferenceID, speaker, sessionName string) error {
	if speaker == "" {
		return nil
	}

	featured := s.FeaturedSpeakers(ctx)
	if names, ok := featured[speaker]; ok {
		for _, n := range names {
			if n == sessionName {
				return nil
			}
		}
		featured[speaker] = append(names, sessionName)
		return s.writeFeatured(ctx, featured)
	}

	sessions, err := s.store.SessionsBySpeakerInConference(ctx, conferenceID, speaker)
	if err != nil {
		return err
	}
	if len(sessions) < 2 {
		return nil
	}
	names := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		names = append(names, sess.Name)
	}
	featured[speaker] = names
	return s.writeFeatured(ctx, featured)
}

// FeaturedSpeakers returns the cached speaker map, empty when absent.
func (s *AnnouncementService) FeaturedSpeakers(ctx context.Context) map[string][]string {
	featured := map[string][]string{}
	val, ok, err := s.cache.Get(ctx, FeaturedSpeakerCacheKey)
	if err != nil {
		s.log.Warnw("featured speaker cache read failed", "error", err)
		return featured
	}
	if !ok {
		return featured
	}
	if err := json.Unmarshal([]byte(val), &featured); err != nil {
		s.log.Warnw("featured speaker cache entry malformed", "error", err)
		return map[string][]string{}
	}
	return featured
}

func (s *AnnouncementService) writeFeatured(ctx context.Context, featured map[string][]string) error {
	raw, err := json.Marshal(featured)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, FeaturedSpeakerCacheKey, string(raw), 0)
}
