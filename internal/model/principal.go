package model

// Principal is the authenticated identity and role attached to a
// request. It is decoded from the bearer token by the JWT middleware
// and passed explicitly into every service operation; services never
// read ambient request state.
type Principal struct {
	UserID  string
	IsAdmin bool
}
