package model

// Account backs the login endpoint. It is the local face of the external
// identity provider: credentials never reach the core services, which
// only see the resolved Identity claims.
type Account struct {
	ID             string `json:"_id" bson:"_id"`
	Login          string `json:"login" bson:"login,omitempty"`
	HashedPassword string `json:"-" bson:"password_hash,omitempty"`
	DisplayName    string `json:"display_name" bson:"display_name,omitempty"`
	Email          string `json:"email" bson:"email,omitempty"`
}
