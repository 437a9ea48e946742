package model

const TeeShirtNotSpecified = "NOT_SPECIFIED"

var TeeShirtSizes = map[string]bool{
	"NOT_SPECIFIED": true,
	"XS_M":          true,
	"XS_W":          true,
	"S_M":           true,
	"S_W":           true,
	"M_M":           true,
	"M_W":           true,
	"L_M":           true,
	"L_W":           true,
	"XL_M":          true,
	"XL_W":          true,
	"XXL_M":         true,
	"XXL_W":         true,
	"XXXL_M":        true,
	"XXXL_W":        true,
}

// Profile is keyed by the opaque user id from the identity provider and
// created lazily on first authenticated access.
type Profile struct {
	UserID                 string   `json:"user_id" bson:"_id"`
	DisplayName            string   `json:"display_name" bson:"display_name"`
	MainEmail              string   `json:"main_email" bson:"main_email"`
	TeeShirtSize           string   `json:"tee_shirt_size" bson:"tee_shirt_size"`
	ConferenceKeysToAttend []string `json:"conference_keys_to_attend" bson:"conference_keys_to_attend"`
	SessionKeysToAttend    []string `json:"session_keys_to_attend" bson:"session_keys_to_attend"`
}

type ProfileForm struct {
	DisplayName  string `json:"display_name"`
	TeeShirtSize string `json:"tee_shirt_size"`
}

// NewProfile builds the default profile for a first-time caller.
func NewProfile(ident Identity) *Profile {
	return &Profile{
		UserID:                 ident.UserID,
		DisplayName:            ident.DisplayName,
		MainEmail:              ident.Email,
		TeeShirtSize:           TeeShirtNotSpecified,
		ConferenceKeysToAttend: []string{},
		SessionKeysToAttend:    []string{},
	}
}

func (p *Profile) HasConference(key string) bool {
	for _, k := range p.ConferenceKeysToAttend {
		if k == key {
			return true
		}
	}
	return false
}

func (p *Profile) RemoveConference(key string) {
	for i, k := range p.ConferenceKeysToAttend {
		if k == key {
			p.ConferenceKeysToAttend = append(p.ConferenceKeysToAttend[:i], p.ConferenceKeysToAttend[i+1:]...)
			return
		}
	}
}

func (p *Profile) HasSession(key string) bool {
	for _, k := range p.SessionKeysToAttend {
		if k == key {
			return true
		}
	}
	return false
}

func (p *Profile) RemoveSession(key string) {
	for i, k := range p.SessionKeysToAttend {
		if k == key {
			p.SessionKeysToAttend = append(p.SessionKeysToAttend[:i], p.SessionKeysToAttend[i+1:]...)
			return
		}
	}
}

func (p *Profile) Clone() *Profile {
	cp := *p
	cp.ConferenceKeysToAttend = append([]string(nil), p.ConferenceKeysToAttend...)
	cp.SessionKeysToAttend = append([]string(nil), p.SessionKeysToAttend...)
	return &cp
}
