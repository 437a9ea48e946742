package model

import (
	"strings"
	"time"

	"conference-central/errors"
)

const (
	DefaultSessionType      = "Workshop"
	DefaultSessionStartTime = "09:00"
)

// Session lives under its parent conference; conference_id is the indexed
// parent reference.
type Session struct {
	ID            string     `json:"_id" bson:"_id"`
	ConferenceID  string     `json:"conference_id" bson:"conference_id"`
	Name          string     `json:"name" bson:"name"`
	Highlights    string     `json:"highlights" bson:"highlights"`
	Speaker       string     `json:"speaker" bson:"speaker"`
	Duration      int        `json:"duration" bson:"duration"`
	TypeOfSession string     `json:"type_of_session" bson:"type_of_session"`
	Date          *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	StartTime     string     `json:"start_time" bson:"start_time"`
}

type SessionForm struct {
	Name          string `json:"name"`
	Highlights    string `json:"highlights"`
	Speaker       string `json:"speaker"`
	Duration      int    `json:"duration"`
	TypeOfSession string `json:"type_of_session"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
}

// NewSessionFromForm validates the form and applies session defaults.
func NewSessionFromForm(id, conferenceID string, form SessionForm) (*Session, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, errors.Validationf("session 'name' field required")
	}

	session := &Session{
		ID:            id,
		ConferenceID:  conferenceID,
		Name:          name,
		Highlights:    form.Highlights,
		Speaker:       form.Speaker,
		Duration:      form.Duration,
		TypeOfSession: form.TypeOfSession,
		StartTime:     form.StartTime,
	}

	if session.TypeOfSession == "" {
		session.TypeOfSession = DefaultSessionType
	}
	if session.StartTime == "" {
		session.StartTime = DefaultSessionStartTime
	}

	if form.Date != "" {
		date, err := ParseDate(form.Date)
		if err != nil {
			return nil, err
		}
		session.Date = &date
	}

	return session, nil
}

func (s *Session) Clone() *Session {
	cp := *s
	if s.Date != nil {
		date := *s.Date
		cp.Date = &date
	}
	return &cp
}
