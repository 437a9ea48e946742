package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"conference-central/database"
	"conference-central/errors"
	"conference-central/model"
	"conference-central/tasks"
)

type SessionService struct {
	store         database.Store
	announcements *AnnouncementService
	queue         *tasks.Queue
	log           *zap.SugaredLogger
}

func NewSessionService(store database.Store, announcements *AnnouncementService,
	queue *tasks.Queue, log *zap.SugaredLogger) *SessionService {
	return &SessionService{
		store:         store,
		announcements: announcements,
		queue:         queue,
		log:           log,
	}
}

// Create stores a new session under a conference and schedules the
// featured-speaker recompute. Any authenticated caller may add sessions;
// there is no organizer check on this path.
func (s *SessionService) Create(ctx context.Context, ident model.Identity, conferenceID string, form model.SessionForm) (*model.Session, error) {
	if ident.UserID == "" {
		return nil, errors.Unauthenticatedf("authorization required")
	}

	session, err := model.NewSessionFromForm(uuid.NewString(), conferenceID, form)
	if err != nil {
		return nil, err
	}
	if err := s.store.PutSession(ctx, session); err != nil {
		return nil, err
	}
	s.log.Infow("created session", "session_id", session.ID, "conference_id", conferenceID)

	if session.Speaker != "" {
		speaker, name := session.Speaker, session.Name
		s.queue.Enqueue("set-featured-speaker", func(ctx context.Context) error {
			return s.announcements.SetFeaturedSpeaker(ctx, conferenceID, speaker, name)
		})
	}

	return session, nil
}

// ByConference lists all sessions of a conference.
func (s *SessionService) ByConference(ctx context.Context, conferenceID string) ([]model.Session, error) {
	return s.store.SessionsByConference(ctx, conferenceID)
}

// ByConferenceAndType lists a conference's sessions of one type.
func (s *SessionService) ByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]model.Session, error) {
	return s.store.SessionsByConferenceAndType(ctx, conferenceID, typeOfSession)
}

// BySpeaker lists a speaker's sessions across all conferences.
func (s *SessionService) BySpeaker(ctx context.Context, speaker string) ([]model.Session, error) {
	return s.store.SessionsBySpeaker(ctx, speaker)
}
