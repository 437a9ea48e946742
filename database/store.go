package database

import (
	"context"

	"conference-central/model"
	"conference-central/query"
)

// Tx exposes the entities that may take part in one atomic
// read-modify-write. Either every Put in the callback commits or none do.
type Tx interface {
	GetProfile(userID string) (*model.Profile, error)
	PutProfile(profile *model.Profile) error
	GetConference(id string) (*model.Conference, error)
	PutConference(conference *model.Conference) error
}

// Store is the durable entity store. Lookups return (nil, nil) when the
// entity does not exist; callers decide whether that is an error.
type Store interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	PutProfile(ctx context.Context, profile *model.Profile) error
	ProfilesByIDs(ctx context.Context, userIDs []string) ([]model.Profile, error)

	GetConference(ctx context.Context, id string) (*model.Conference, error)
	PutConference(ctx context.Context, conference *model.Conference) error
	ConferencesByOrganizer(ctx context.Context, organizerUserID string) ([]model.Conference, error)
	ConferencesByIDs(ctx context.Context, ids []string) ([]model.Conference, error)
	QueryConferences(ctx context.Context, q *query.Query) ([]model.Conference, error)
	// AlmostSoldOutConferenceNames projects the names of conferences with
	// 0 < seatsAvailable <= 5.
	AlmostSoldOutConferenceNames(ctx context.Context) ([]string, error)

	GetSession(ctx context.Context, id string) (*model.Session, error)
	PutSession(ctx context.Context, session *model.Session) error
	SessionsByConference(ctx context.Context, conferenceID string) ([]model.Session, error)
	SessionsByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]model.Session, error)
	SessionsBySpeaker(ctx context.Context, speaker string) ([]model.Session, error)
	SessionsBySpeakerInConference(ctx context.Context, conferenceID, speaker string) ([]model.Session, error)
	SessionsByIDs(ctx context.Context, ids []string) ([]model.Session, error)

	AccountByLogin(ctx context.Context, login string) (*model.Account, error)
	PutAccount(ctx context.Context, account *model.Account) error

	// RunTransaction executes fn atomically against the entity group it
	// touches. Store-level contention is retried a bounded number of
	// times by the backend before surfacing an error.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error
}

const almostSoldOutThreshold = 5
