package service

import (
	"context"

	"go.uber.org/zap"

	"conference-central/database"
	"conference-central/errors"
	"conference-central/model"
	"conference-central/tasks"
)

// RegistrationService owns the (profile, conference) attendance state
// machine. Both sides of a transition, the membership list and the seat
// counter, commit in one transaction so the count can never drift.
type RegistrationService struct {
	store         database.Store
	announcements *AnnouncementService
	queue         *tasks.Queue
	log           *zap.SugaredLogger
}

func NewRegistrationService(store database.Store, announcements *AnnouncementService,
	queue *tasks.Queue, log *zap.SugaredLogger) *RegistrationService {
	return &RegistrationService{
		store:         store,
		announcements: announcements,
		queue:         queue,
		log:           log,
	}
}

// Register registers the caller for a conference, taking one seat.
func (s *RegistrationService) Register(ctx context.Context, ident model.Identity, conferenceID string) (bool, error) {
	if ident.UserID == "" {
		return false, errors.Unauthenticatedf("authorization required")
	}

	err := s.store.RunTransaction(ctx, func(tx database.Tx) error {
		profile, err := tx.GetProfile(ident.UserID)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = model.NewProfile(ident)
		}

		conf, err := tx.GetConference(conferenceID)
		if err != nil {
			return err
		}
		if conf == nil {
			return errors.NotFoundf("no conference found with key: %s", conferenceID)
		}

		if profile.HasConference(conferenceID) {
			return errors.Conflictf("you have already registered for this conference")
		}
		if conf.SeatsAvailable <= 0 {
			return errors.Conflictf("there are no seats available")
		}

		profile.ConferenceKeysToAttend = append(profile.ConferenceKeysToAttend, conferenceID)
		conf.SeatsAvailable--

		if err := tx.PutProfile(profile); err != nil {
			return err
		}
		return tx.PutConference(conf)
	})
	if err != nil {
		return false, err
	}

	s.log.Infow("registered for conference", "conference_id", conferenceID)
	s.enqueueAnnouncementRecompute()
	return true, nil
}

// Unregister gives the seat back. Unregistering while not registered is
// not an error; it returns false.
func (s *RegistrationService) Unregister(ctx context.Context, ident model.Identity, conferenceID string) (bool, error) {
	if ident.UserID == "" {
		return false, errors.Unauthenticatedf("authorization required")
	}

	registered := false
	err := s.store.RunTransaction(ctx, func(tx database.Tx) error {
		profile, err := tx.GetProfile(ident.UserID)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = model.NewProfile(ident)
		}

		conf, err := tx.GetConference(conferenceID)
		if err != nil {
			return err
		}
		if conf == nil {
			return errors.NotFoundf("no conference found with key: %s", conferenceID)
		}

		if !profile.HasConference(conferenceID) {
			return nil
		}
		registered = true

		profile.RemoveConference(conferenceID)
		conf.SeatsAvailable++

		if err := tx.PutProfile(profile); err != nil {
			return err
		}
		return tx.PutConference(conf)
	})
	if err != nil {
		return false, err
	}

	if registered {
		s.enqueueAnnouncementRecompute()
	}
	return registered, nil
}

// ConferencesToAttend lists the conferences the caller registered for, in
// registration order, joined with organizer display names.
func (s *RegistrationService) ConferencesToAttend(ctx context.Context, ident model.Identity) ([]model.ConferenceView, error) {
	if ident.UserID == "" {
		return nil, errors.Unauthenticatedf("authorization required")
	}

	profile, err := s.store.GetProfile(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []model.ConferenceView{}, nil
	}

	conferences, err := s.store.ConferencesByIDs(ctx, profile.ConferenceKeysToAttend)
	if err != nil {
		return nil, err
	}
	return organizerViews(ctx, s.store, conferences)
}

func (s *RegistrationService) enqueueAnnouncementRecompute() {
	s.queue.Enqueue("recompute-announcement", func(ctx context.Context) error {
		_, err := s.announcements.Recompute(ctx)
		return err
	})
}
