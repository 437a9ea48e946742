package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"conference-central/model"
	"conference-central/query"
)

// MongoStore is the production Store. Ancestor scoping is an indexed
// foreign key (organizer_user_id, conference_id); multi-entity mutations
// run in a driver transaction, which retries transient commit errors.
type MongoStore struct {
	client      *mongo.Client
	profiles    *mongo.Collection
	conferences *mongo.Collection
	sessions    *mongo.Collection
	accounts    *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	db := client.Database(dbName)
	s := &MongoStore{
		client:      client,
		profiles:    db.Collection("profiles"),
		conferences: db.Collection("conferences"),
		sessions:    db.Collection("sessions"),
		accounts:    db.Collection("accounts"),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("cannot create indexes: %w", err)
	}
	return s, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.conferences.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "organizer_user_id", Value: 1}}},
		{Keys: bson.D{{Key: "seats_available", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = s.sessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "conference_id", Value: 1}, {Key: "type_of_session", Value: 1}}},
		{Keys: bson.D{{Key: "speaker", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = s.accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoStore) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := s.profiles.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *MongoStore) PutProfile(ctx context.Context, profile *model.Profile) error {
	return replaceOne(ctx, s.profiles, profile.UserID, profile)
}

func (s *MongoStore) ProfilesByIDs(ctx context.Context, userIDs []string) ([]model.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	cur, err := s.profiles.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: userIDs}}}})
	if err != nil {
		return nil, err
	}
	var profiles []model.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *MongoStore) GetConference(ctx context.Context, id string) (*model.Conference, error) {
	var conference model.Conference
	err := s.conferences.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&conference)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conference, nil
}

func (s *MongoStore) PutConference(ctx context.Context, conference *model.Conference) error {
	return replaceOne(ctx, s.conferences, conference.ID, conference)
}

func (s *MongoStore) ConferencesByOrganizer(ctx context.Context, organizerUserID string) ([]model.Conference, error) {
	return s.findConferences(ctx,
		bson.D{{Key: "organizer_user_id", Value: organizerUserID}},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (s *MongoStore) ConferencesByIDs(ctx context.Context, ids []string) ([]model.Conference, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.findConferences(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}, options.Find())
	if err != nil {
		return nil, err
	}
	// preserve the order of the requested ids
	byID := make(map[string]model.Conference, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	ordered := make([]model.Conference, 0, len(found))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

var mongoOps = map[string]string{
	"=":  "$eq",
	">":  "$gt",
	">=": "$gte",
	"<":  "$lt",
	"<=": "$lte",
	"!=": "$ne",
}

func (s *MongoStore) QueryConferences(ctx context.Context, q *query.Query) ([]model.Conference, error) {
	filter := bson.D{}
	for _, cond := range q.Conditions {
		op, ok := mongoOps[cond.Op]
		if !ok {
			return nil, fmt.Errorf("unsupported operator %q", cond.Op)
		}
		filter = append(filter, bson.E{Key: cond.Field, Value: bson.D{{Key: op, Value: cond.Value}}})
	}
	sort := bson.D{}
	for _, field := range q.Order {
		sort = append(sort, bson.E{Key: field, Value: 1})
	}
	return s.findConferences(ctx, filter, options.Find().SetSort(sort))
}

func (s *MongoStore) AlmostSoldOutConferenceNames(ctx context.Context) ([]string, error) {
	cur, err := s.conferences.Find(ctx,
		bson.D{{Key: "seats_available", Value: bson.D{
			{Key: "$gt", Value: 0},
			{Key: "$lte", Value: almostSoldOutThreshold},
		}}},
		options.Find().
			SetProjection(bson.D{{Key: "name", Value: 1}}).
			SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

func (s *MongoStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := s.sessions.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MongoStore) PutSession(ctx context.Context, session *model.Session) error {
	return replaceOne(ctx, s.sessions, session.ID, session)
}

func (s *MongoStore) SessionsByConference(ctx context.Context, conferenceID string) ([]model.Session, error) {
	return s.findSessions(ctx, bson.D{{Key: "conference_id", Value: conferenceID}})
}

func (s *MongoStore) SessionsByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]model.Session, error) {
	return s.findSessions(ctx, bson.D{
		{Key: "conference_id", Value: conferenceID},
		{Key: "type_of_session", Value: typeOfSession},
	})
}

func (s *MongoStore) SessionsBySpeaker(ctx context.Context, speaker string) ([]model.Session, error) {
	return s.findSessions(ctx, bson.D{{Key: "speaker", Value: speaker}})
}

func (s *MongoStore) SessionsBySpeakerInConference(ctx context.Context, conferenceID, speaker string) ([]model.Session, error) {
	return s.findSessions(ctx, bson.D{
		{Key: "conference_id", Value: conferenceID},
		{Key: "speaker", Value: speaker},
	})
}

func (s *MongoStore) SessionsByIDs(ctx context.Context, ids []string) ([]model.Session, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.findSessions(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Session, len(found))
	for _, sess := range found {
		byID[sess.ID] = sess
	}
	ordered := make([]model.Session, 0, len(found))
	for _, id := range ids {
		if sess, ok := byID[id]; ok {
			ordered = append(ordered, sess)
		}
	}
	return ordered, nil
}

func (s *MongoStore) AccountByLogin(ctx context.Context, login string) (*model.Account, error) {
	var account model.Account
	err := s.accounts.FindOne(ctx, bson.D{{Key: "login", Value: login}}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *MongoStore) PutAccount(ctx context.Context, account *model.Account) error {
	return replaceOne(ctx, s.accounts, account.ID, account)
}

func (s *MongoStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(&mongoTx{store: s, ctx: sc})
	})
	return err
}

// mongoTx binds Store reads and writes to the session context of one
// driver transaction.
type mongoTx struct {
	store *MongoStore
	ctx   mongo.SessionContext
}

func (t *mongoTx) GetProfile(userID string) (*model.Profile, error) {
	return t.store.GetProfile(t.ctx, userID)
}

func (t *mongoTx) PutProfile(profile *model.Profile) error {
	return t.store.PutProfile(t.ctx, profile)
}

func (t *mongoTx) GetConference(id string) (*model.Conference, error) {
	return t.store.GetConference(t.ctx, id)
}

func (t *mongoTx) PutConference(conference *model.Conference) error {
	return t.store.PutConference(t.ctx, conference)
}

func (s *MongoStore) findConferences(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]model.Conference, error) {
	cur, err := s.conferences.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var conferences []model.Conference
	if err := cur.All(ctx, &conferences); err != nil {
		return nil, err
	}
	return conferences, nil
}

func (s *MongoStore) findSessions(ctx context.Context, filter bson.D) ([]model.Session, error) {
	cur, err := s.sessions.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var sessions []model.Session
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func replaceOne(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	_, err := coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: id}}, doc, options.Replace().SetUpsert(true))
	return err
}
