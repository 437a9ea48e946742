package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"conference-central/database"
	"conference-central/errors"
	"conference-central/model"
	"conference-central/query"
	"conference-central/tasks"
)

type ConferenceService struct {
	store         database.Store
	profiles      *ProfileService
	announcements *AnnouncementService
	queue         *tasks.Queue
	log           *zap.SugaredLogger
}

func NewConferenceService(store database.Store, profiles *ProfileService,
	announcements *AnnouncementService, queue *tasks.Queue, log *zap.SugaredLogger) *ConferenceService {
	return &ConferenceService{
		store:         store,
		profiles:      profiles,
		announcements: announcements,
		queue:         queue,
		log:           log,
	}
}

// Create stores a new conference owned by the caller and enqueues the
// confirmation email. The enqueue is best effort and cannot fail the
// create.
func (s *ConferenceService) Create(ctx context.Context, ident model.Identity, form model.ConferenceForm) (*model.ConferenceView, error) {
	profile, err := s.profiles.GetOrCreate(ctx, ident)
	if err != nil {
		return nil, err
	}

	conf, err := model.NewConferenceFromForm(uuid.NewString(), ident.UserID, form)
	if err != nil {
		return nil, err
	}
	if err := s.store.PutConference(ctx, conf); err != nil {
		return nil, err
	}
	s.log.Infow("created conference", "conference_id", conf.ID, "name", conf.Name)

	email := profile.MainEmail
	name := conf.Name
	s.queue.Enqueue("send-confirmation-email", func(ctx context.Context) error {
		// email delivery is an external collaborator; the side effect
		// here is handing the message off
		s.log.Infow("sending confirmation email", "to", email, "conference", name)
		return nil
	})
	s.enqueueAnnouncementRecompute()

	return &model.ConferenceView{Conference: *conf, OrganizerDisplayName: profile.DisplayName}, nil
}

// Update applies the supplied fields inside a transaction. Only the
// recorded organizer may update a conference.
func (s *ConferenceService) Update(ctx context.Context, ident model.Identity, conferenceID string, form model.ConferenceUpdateForm) (*model.ConferenceView, error) {
	if ident.UserID == "" {
		return nil, errors.Unauthenticatedf("authorization required")
	}

	var updated *model.Conference
	err := s.store.RunTransaction(ctx, func(tx database.Tx) error {
		conf, err := tx.GetConference(conferenceID)
		if err != nil {
			return err
		}
		if conf == nil {
			return errors.NotFoundf("no conference found with key: %s", conferenceID)
		}
		if conf.OrganizerUserID != ident.UserID {
			return errors.Permissionf("only the owner can update the conference")
		}
		if err := conf.ApplyUpdate(form); err != nil {
			return err
		}
		updated = conf
		return tx.PutConference(conf)
	})
	if err != nil {
		return nil, err
	}
	s.enqueueAnnouncementRecompute()

	return s.withOrganizerName(ctx, updated)
}

// Get returns a conference joined with its organizer's display name.
func (s *ConferenceService) Get(ctx context.Context, conferenceID string) (*model.ConferenceView, error) {
	conf, err := s.store.GetConference(ctx, conferenceID)
	if err != nil {
		return nil, err
	}
	if conf == nil {
		return nil, errors.NotFoundf("no conference found with key: %s", conferenceID)
	}
	return s.withOrganizerName(ctx, conf)
}

// CreatedBy lists the conferences organized by the caller.
func (s *ConferenceService) CreatedBy(ctx context.Context, ident model.Identity) ([]model.ConferenceView, error) {
	profile, err := s.profiles.GetOrCreate(ctx, ident)
	if err != nil {
		return nil, err
	}
	conferences, err := s.store.ConferencesByOrganizer(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	views := make([]model.ConferenceView, 0, len(conferences))
	for _, conf := range conferences {
		views = append(views, model.ConferenceView{Conference: conf, OrganizerDisplayName: profile.DisplayName})
	}
	return views, nil
}

// Query compiles untrusted filters and runs them against the store,
// joining organizer display names with a single batched profile lookup.
func (s *ConferenceService) Query(ctx context.Context, filters []query.Filter) ([]model.ConferenceView, error) {
	q, err := query.CompileConferenceFilters(filters)
	if err != nil {
		return nil, err
	}
	conferences, err := s.store.QueryConferences(ctx, q)
	if err != nil {
		return nil, err
	}
	return organizerViews(ctx, s.store, conferences)
}

func (s *ConferenceService) withOrganizerName(ctx context.Context, conf *model.Conference) (*model.ConferenceView, error) {
	displayName := ""
	organizer, err := s.store.GetProfile(ctx, conf.OrganizerUserID)
	if err != nil {
		return nil, err
	}
	if organizer != nil {
		displayName = organizer.DisplayName
	}
	return &model.ConferenceView{Conference: *conf, OrganizerDisplayName: displayName}, nil
}

func (s *ConferenceService) enqueueAnnouncementRecompute() {
	s.queue.Enqueue("recompute-announcement", func(ctx context.Context) error {
		_, err := s.announcements.Recompute(ctx)
		return err
	})
}

// organizerViews joins conferences with organizer display names using one
// batched profile lookup.
func organizerViews(ctx context.Context, store database.Store, conferences []model.Conference) ([]model.ConferenceView, error) {
	seen := map[string]bool{}
	ids := make([]string, 0, len(conferences))
	for _, conf := range conferences {
		if !seen[conf.OrganizerUserID] {
			seen[conf.OrganizerUserID] = true
			ids = append(ids, conf.OrganizerUserID)
		}
	}

	profiles, err := store.ProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.UserID] = p.DisplayName
	}

	views := make([]model.ConferenceView, 0, len(conferences))
	for _, conf := range conferences {
		views = append(views, model.ConferenceView{
			Conference:           conf,
			OrganizerDisplayName: names[conf.OrganizerUserID],
		})
	}
	return views, nil
}
