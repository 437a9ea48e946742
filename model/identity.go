package model

// Identity is the resolved caller identity handed over by the auth
// middleware. The core never sees credentials, only these claims.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}
