package database

import (
	"context"
	"sort"
	"strings"
	"sync"

	"conference-central/model"
	"conference-central/query"
)

// MemoryStore keeps every entity in process memory. It backs tests and
// local development; transactions serialize on one mutex and stage their
// writes so a failed callback leaves no partial state behind.
type MemoryStore struct {
	mu          sync.Mutex
	profiles    map[string]*model.Profile
	conferences map[string]*model.Conference
	sessions    map[string]*model.Session
	accounts    map[string]*model.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:    map[string]*model.Profile{},
		conferences: map[string]*model.Conference{},
		sessions:    map[string]*model.Session{},
		accounts:    map[string]*model.Account{},
	}
}

func (s *MemoryStore) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[userID]; ok {
		return p.Clone(), nil
	}
	return nil, nil
}

func (s *MemoryStore) PutProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile.Clone()
	return nil
}

func (s *MemoryStore) ProfilesByIDs(ctx context.Context, userIDs []string) ([]model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var profiles []model.Profile
	for _, id := range userIDs {
		if p, ok := s.profiles[id]; ok {
			profiles = append(profiles, *p.Clone())
		}
	}
	return profiles, nil
}

func (s *MemoryStore) GetConference(ctx context.Context, id string) (*model.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conferences[id]; ok {
		return c.Clone(), nil
	}
	return nil, nil
}

func (s *MemoryStore) PutConference(ctx context.Context, conference *model.Conference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conferences[conference.ID] = conference.Clone()
	return nil
}

func (s *MemoryStore) ConferencesByOrganizer(ctx context.Context, organizerUserID string) ([]model.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var conferences []model.Conference
	for _, c := range s.conferences {
		if c.OrganizerUserID == organizerUserID {
			conferences = append(conferences, *c.Clone())
		}
	}
	sortConferences(conferences, []string{"name"})
	return conferences, nil
}

func (s *MemoryStore) ConferencesByIDs(ctx context.Context, ids []string) ([]model.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var conferences []model.Conference
	for _, id := range ids {
		if c, ok := s.conferences[id]; ok {
			conferences = append(conferences, *c.Clone())
		}
	}
	return conferences, nil
}

func (s *MemoryStore) QueryConferences(ctx context.Context, q *query.Query) ([]model.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var conferences []model.Conference
	for _, c := range s.conferences {
		if matchesConference(c, q.Conditions) {
			conferences = append(conferences, *c.Clone())
		}
	}
	sortConferences(conferences, q.Order)
	return conferences, nil
}

func (s *MemoryStore) AlmostSoldOutConferenceNames(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for _, c := range s.conferences {
		if c.SeatsAvailable > 0 && c.SeatsAvailable <= almostSoldOutThreshold {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess.Clone(), nil
	}
	return nil, nil
}

func (s *MemoryStore) PutSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *MemoryStore) SessionsByConference(ctx context.Context, conferenceID string) ([]model.Session, error) {
	return s.filterSessions(func(sess *model.Session) bool {
		return sess.ConferenceID == conferenceID
	})
}

func (s *MemoryStore) SessionsByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]model.Session, error) {
	return s.filterSessions(func(sess *model.Session) bool {
		return sess.ConferenceID == conferenceID && sess.TypeOfSession == typeOfSession
	})
}

func (s *MemoryStore) SessionsBySpeaker(ctx context.Context, speaker string) ([]model.Session, error) {
	return s.filterSessions(func(sess *model.Session) bool {
		return sess.Speaker == speaker
	})
}

func (s *MemoryStore) SessionsBySpeakerInConference(ctx context.Context, conferenceID, speaker string) ([]model.Session, error) {
	return s.filterSessions(func(sess *model.Session) bool {
		return sess.ConferenceID == conferenceID && sess.Speaker == speaker
	})
}

func (s *MemoryStore) SessionsByIDs(ctx context.Context, ids []string) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sessions []model.Session
	for _, id := range ids {
		if sess, ok := s.sessions[id]; ok {
			sessions = append(sessions, *sess.Clone())
		}
	}
	return sessions, nil
}

func (s *MemoryStore) AccountByLogin(ctx context.Context, login string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Login == login {
			account := *a
			return &account, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) PutAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *account
	s.accounts[account.ID] = &cp
	return nil
}

func (s *MemoryStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{
		store:       s,
		profiles:    map[string]*model.Profile{},
		conferences: map[string]*model.Conference{},
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// memoryTx stages writes so they only land in the store when the callback
// succeeds. Reads see the staged state.
type memoryTx struct {
	store       *MemoryStore
	profiles    map[string]*model.Profile
	conferences map[string]*model.Conference
}

func (t *memoryTx) GetProfile(userID string) (*model.Profile, error) {
	if p, ok := t.profiles[userID]; ok {
		return p.Clone(), nil
	}
	if p, ok := t.store.profiles[userID]; ok {
		return p.Clone(), nil
	}
	return nil, nil
}

func (t *memoryTx) PutProfile(profile *model.Profile) error {
	t.profiles[profile.UserID] = profile.Clone()
	return nil
}

func (t *memoryTx) GetConference(id string) (*model.Conference, error) {
	if c, ok := t.conferences[id]; ok {
		return c.Clone(), nil
	}
	if c, ok := t.store.conferences[id]; ok {
		return c.Clone(), nil
	}
	return nil, nil
}

func (t *memoryTx) PutConference(conference *model.Conference) error {
	t.conferences[conference.ID] = conference.Clone()
	return nil
}

func (t *memoryTx) commit() {
	for id, p := range t.profiles {
		t.store.profiles[id] = p
	}
	for id, c := range t.conferences {
		t.store.conferences[id] = c
	}
}

func (s *MemoryStore) filterSessions(keep func(*model.Session) bool) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sessions []model.Session
	for _, sess := range s.sessions {
		if keep(sess) {
			sessions = append(sessions, *sess.Clone())
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Name < sessions[j].Name })
	return sessions, nil
}

// conferenceField maps a store property name onto the entity field. The
// mapping is deliberately explicit rather than reflective.
func conferenceField(c *model.Conference, property string) any {
	switch property {
	case "name":
		return c.Name
	case "city":
		return c.City
	case "topics":
		return c.Topics
	case "month":
		return c.Month
	case "max_attendees":
		return c.MaxAttendees
	case "seats_available":
		return c.SeatsAvailable
	default:
		return nil
	}
}

func matchesConference(c *model.Conference, conditions []query.Condition) bool {
	for _, cond := range conditions {
		if !matchValue(conferenceField(c, cond.Field), cond.Op, cond.Value) {
			return false
		}
	}
	return true
}

func matchValue(got any, op string, want any) bool {
	// repeated properties match when any element does, except that "!="
	// requires no element to be equal
	if elems, ok := got.([]string); ok {
		if op == "!=" {
			for _, e := range elems {
				if matchValue(e, "=", want) {
					return false
				}
			}
			return true
		}
		for _, e := range elems {
			if matchValue(e, op, want) {
				return true
			}
		}
		return false
	}

	cmp, ok := compareValues(got, want)
	if !ok {
		return false
	}
	switch op {
	case "=":
		return cmp == 0
	case "!=":
		return cmp != 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	default:
		return false
	}
}

func compareValues(a, b any) (int, bool) {
	switch av := a.(type) {
	case int:
		bv, ok := b.(int)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	default:
		return 0, false
	}
}

func sortConferences(conferences []model.Conference, order []string) {
	sort.SliceStable(conferences, func(i, j int) bool {
		for _, field := range order {
			cmp, ok := compareValues(
				conferenceField(&conferences[i], field),
				conferenceField(&conferences[j], field))
			if !ok || cmp == 0 {
				continue
			}
			return cmp < 0
		}
		return false
	})
}
