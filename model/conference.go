package model

import (
	"strings"
	"time"

	"conference-central/errors"
)

const dateLayout = "2006-01-02"

var defaultTopics = []string{"Default", "Topic"}

const defaultCity = "Default City"

// Conference is owned by its organizer profile; organizer_user_id is the
// indexed parent reference that scopes ancestor queries.
type Conference struct {
	ID              string     `json:"_id" bson:"_id"`
	Name            string     `json:"name" bson:"name"`
	Description     string     `json:"description" bson:"description"`
	Topics          []string   `json:"topics" bson:"topics"`
	City            string     `json:"city" bson:"city"`
	StartDate       *time.Time `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Month           int        `json:"month" bson:"month"`
	MaxAttendees    int        `json:"max_attendees" bson:"max_attendees"`
	SeatsAvailable  int        `json:"seats_available" bson:"seats_available"`
	OrganizerUserID string     `json:"organizer_user_id" bson:"organizer_user_id"`
}

// ConferenceView is a conference joined with its organizer's display name.
type ConferenceView struct {
	Conference
	OrganizerDisplayName string `json:"organizer_display_name"`
}

type ConferenceForm struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees int      `json:"max_attendees"`
}

// ConferenceUpdateForm carries partial update semantics: zero values mean
// "field not supplied" and leave the stored value untouched.
type ConferenceUpdateForm struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees *int     `json:"max_attendees"`
}

// ParseDate accepts ISO date strings, ignoring any time-of-day suffix.
func ParseDate(value string) (time.Time, error) {
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.Validationf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return d, nil
}

// NewConferenceFromForm validates the form, applies creation defaults and
// derives month and seatsAvailable.
func NewConferenceFromForm(id, organizerUserID string, form ConferenceForm) (*Conference, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, errors.Validationf("conference 'name' field required")
	}

	conf := &Conference{
		ID:              id,
		Name:            name,
		Description:     form.Description,
		Topics:          form.Topics,
		City:            form.City,
		MaxAttendees:    form.MaxAttendees,
		OrganizerUserID: organizerUserID,
	}

	if conf.City == "" {
		conf.City = defaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = append([]string(nil), defaultTopics...)
	}

	if form.StartDate != "" {
		start, err := ParseDate(form.StartDate)
		if err != nil {
			return nil, err
		}
		conf.StartDate = &start
		conf.Month = int(start.Month())
	}
	if form.EndDate != "" {
		end, err := ParseDate(form.EndDate)
		if err != nil {
			return nil, err
		}
		conf.EndDate = &end
	}

	// seatsAvailable mirrors maxAttendees at creation time only
	if conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}

	return conf, nil
}

// ApplyUpdate copies only the supplied fields onto the conference,
// re-deriving month when the start date changes.
func (c *Conference) ApplyUpdate(form ConferenceUpdateForm) error {
	if name := strings.TrimSpace(form.Name); name != "" {
		c.Name = name
	}
	if form.Description != "" {
		c.Description = form.Description
	}
	if len(form.Topics) > 0 {
		c.Topics = form.Topics
	}
	if form.City != "" {
		c.City = form.City
	}
	if form.StartDate != "" {
		start, err := ParseDate(form.StartDate)
		if err != nil {
			return err
		}
		c.StartDate = &start
		c.Month = int(start.Month())
	}
	if form.EndDate != "" {
		end, err := ParseDate(form.EndDate)
		if err != nil {
			return err
		}
		c.EndDate = &end
	}
	if form.MaxAttendees != nil {
		c.MaxAttendees = *form.MaxAttendees
		// Shrinking capacity below the free seats would leave the seat
		// counter out of range.
		if c.SeatsAvailable > c.MaxAttendees {
			c.SeatsAvailable = c.MaxAttendees
		}
	}
	return nil
}

func (c *Conference) Clone() *Conference {
	cp := *c
	cp.Topics = append([]string(nil), c.Topics...)
	if c.StartDate != nil {
		start := *c.StartDate
		cp.StartDate = &start
	}
	if c.EndDate != nil {
		end := *c.EndDate
		cp.EndDate = &end
	}
	return &cp
}
